// Package optional provides a sentinel-coded optional value.
//
// Sentinel[T] represents "maybe a T" in exactly sizeof(T) storage by
// reserving one value of T to mean absent, the way C APIs reserve -1 as
// an error return. The trade-off is that the reserved value is excluded
// from the representable domain: storing it is silently indistinguishable
// from emptying the container. Choose a sentinel the data can never take.
//
//	port := optional.New[int32](-1)
//	port.IsPresent() // false
//	port.Get()       // -1
//
//	port.Set(8080)
//	port.IsPresent() // true
//
//	port.Set(-1)     // aliases the sentinel: container reads as empty
//
// The zero value of Sentinel[T] is usable: it is empty with T's zero
// value reserved.
package optional

// Package handle provides the handle table for by-reference arguments.
//
// Go pointers cannot be placed inside raw byte buffers: the garbage
// collector would not see them. Instead, the caller registers the target
// cell here and embeds the resulting 4-byte handle in the argument
// record; invocation resolves the handle back to the registered pointer.
//
//	table := handle.NewTable()
//
//	cell := int32(42)
//	h := table.Register(&cell)
//
//	// ... h travels through the argument buffer ...
//
//	v, ok := table.Get(h) // v.(*int32) == &cell
//	table.Remove(h)
//
// Handle 0 is reserved and never issued. Removed slots are recycled
// through a free list, so a removed handle may later identify a
// different cell; callers own the registration lifecycle around each
// invocation, mirroring their ownership of the buffer itself.
package handle

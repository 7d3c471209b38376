package optional

// Sentinel is an optional value of type T that spends no storage on a
// presence flag: one reserved value of T stands for "absent". The reserved
// value itself can never be stored as real data; Set with the sentinel
// leaves the container indistinguishable from empty.
type Sentinel[T comparable] struct {
	value   T
	invalid T
}

// New returns an empty Sentinel that reserves invalid as its absent marker.
func New[T comparable](invalid T) Sentinel[T] {
	return Sentinel[T]{value: invalid, invalid: invalid}
}

// IsPresent reports whether a value other than the sentinel is stored.
func (o Sentinel[T]) IsPresent() bool {
	return o.value != o.invalid
}

// Get returns the stored value regardless of presence. Callers that care
// about the distinction check IsPresent first; an empty container returns
// the sentinel.
func (o Sentinel[T]) Get() T {
	return o.value
}

// Set stores v. Storing the sentinel empties the container.
func (o *Sentinel[T]) Set(v T) {
	o.value = v
}

// Reset empties the container. Idempotent.
func (o *Sentinel[T]) Reset() {
	o.value = o.invalid
}

// Invalid returns the reserved sentinel value.
func (o Sentinel[T]) Invalid() T {
	return o.invalid
}

package handle

import (
	"sync"

	"github.com/wippyai/callbuf/optional"
)

// Handle identifies a registered cell. Handle 0 is never issued and never
// resolves; encoders can use it as an unset marker.
type Handle uint32

type entry struct {
	value any
	next  int32 // next vacant slot index when this slot is free
	valid bool
}

// Table maps integer handles to registered Go values so that by-reference
// arguments can cross an untyped buffer as 4-byte handles instead of raw
// pointers. Safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries []entry

	// head of the vacant slot list; the index -1 is reserved for "none"
	free optional.Sentinel[int32]
	n    int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make([]entry, 0, 16),
		free:    optional.New[int32](-1),
	}
}

// Register stores a value and returns its handle. Vacant slots left by
// Remove are reused before the table grows.
func (t *Table) Register(value any) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.n++

	if t.free.IsPresent() {
		idx := t.free.Get()
		e := &t.entries[idx]
		t.free.Set(e.next)
		e.value = value
		e.valid = true
		e.next = -1
		return Handle(idx + 1)
	}

	t.entries = append(t.entries, entry{value: value, valid: true, next: -1})
	return Handle(len(t.entries))
}

// Get retrieves a registered value by handle.
func (t *Table) Get(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}
	return t.entries[idx].value, true
}

// Remove drops a registration and returns (value, true) if it was present.
// The slot joins the free list and its handle may be reissued.
func (t *Table) Remove(h Handle) (any, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(h) - 1
	if idx >= len(t.entries) || !t.entries[idx].valid {
		return nil, false
	}

	e := &t.entries[idx]
	value := e.value
	e.value = nil
	e.valid = false
	e.next = t.free.Get()
	t.free.Set(int32(idx))
	t.n--

	return value, true
}

// Len returns the number of active registrations.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.n
}

// Clear drops all registrations and resets the free list.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = t.entries[:0]
	t.free.Reset()
	t.n = 0
}

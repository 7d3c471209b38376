package handle

import (
	"sync"
	"testing"
)

func TestRegisterGet(t *testing.T) {
	table := NewTable()

	cell := int32(42)
	h := table.Register(&cell)
	if h == 0 {
		t.Fatal("handle 0 must never be issued")
	}

	v, ok := table.Get(h)
	if !ok {
		t.Fatal("registered handle should resolve")
	}
	if p, ok := v.(*int32); !ok || p != &cell {
		t.Errorf("resolved %T, want the registered *int32", v)
	}
}

func TestGetInvalid(t *testing.T) {
	table := NewTable()

	if _, ok := table.Get(0); ok {
		t.Error("handle 0 must not resolve")
	}
	if _, ok := table.Get(99); ok {
		t.Error("unissued handle must not resolve")
	}
}

func TestRemove(t *testing.T) {
	table := NewTable()

	cell := "payload"
	h := table.Register(&cell)

	v, ok := table.Remove(h)
	if !ok {
		t.Fatal("remove of a live handle should succeed")
	}
	if v.(*string) != &cell {
		t.Error("remove should return the registered value")
	}

	if _, ok := table.Get(h); ok {
		t.Error("removed handle must not resolve")
	}
	if _, ok := table.Remove(h); ok {
		t.Error("double remove should fail")
	}
}

func TestSlotReuse(t *testing.T) {
	table := NewTable()

	a, b, c := 1, 2, 3
	ha := table.Register(&a)
	hb := table.Register(&b)
	table.Register(&c)

	table.Remove(ha)
	table.Remove(hb)

	// Most recently freed slot comes back first.
	d := 4
	hd := table.Register(&d)
	if hd != hb {
		t.Errorf("reused handle: got %d, want %d", hd, hb)
	}

	e := 5
	he := table.Register(&e)
	if he != ha {
		t.Errorf("reused handle: got %d, want %d", he, ha)
	}

	// Free list drained: next registration grows the table.
	f := 6
	hf := table.Register(&f)
	if hf != 4 {
		t.Errorf("fresh handle: got %d, want 4", hf)
	}
}

func TestLenClear(t *testing.T) {
	table := NewTable()

	x, y := 1, 2
	hx := table.Register(&x)
	table.Register(&y)

	if got := table.Len(); got != 2 {
		t.Errorf("Len: got %d, want 2", got)
	}

	table.Remove(hx)
	if got := table.Len(); got != 1 {
		t.Errorf("Len after remove: got %d, want 1", got)
	}

	table.Clear()
	if got := table.Len(); got != 0 {
		t.Errorf("Len after clear: got %d, want 0", got)
	}
	if _, ok := table.Get(2); ok {
		t.Error("handles must not survive Clear")
	}
}

func TestConcurrentRegister(t *testing.T) {
	table := NewTable()

	var wg sync.WaitGroup
	const n = 64
	handles := make([]Handle, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v := i
			handles[i] = table.Register(&v)
		}(i)
	}
	wg.Wait()

	if got := table.Len(); got != n {
		t.Fatalf("Len: got %d, want %d", got, n)
	}
	seen := make(map[Handle]bool, n)
	for _, h := range handles {
		if h == 0 {
			t.Fatal("issued handle 0")
		}
		if seen[h] {
			t.Fatalf("handle %d issued twice", h)
		}
		seen[h] = true
	}
}

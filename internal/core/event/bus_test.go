package event

import "testing"

type testEvent struct{ n int }

func TestBusDoubleBuffering(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(e testEvent) { got = append(got, e.n) })

	Emit(b, testEvent{1})
	b.DispatchAll()
	if len(got) != 0 {
		t.Fatal("event delivered in the tick it was emitted")
	}

	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 || got[0] != 1 {
		t.Fatalf("got %v, want [1]", got)
	}

	// The buffer drains after swap; re-dispatching the same front buffer is
	// the caller's mistake, but the next swap must clear it.
	b.SwapBuffers()
	b.DispatchAll()
	if len(got) != 1 {
		t.Fatalf("stale events redelivered: %v", got)
	}
}

func TestBusMultipleHandlersAndTypes(t *testing.T) {
	type otherEvent struct{ s string }

	b := NewBus()
	var ints, more []int
	var strs []string
	Subscribe(b, func(e testEvent) { ints = append(ints, e.n) })
	Subscribe(b, func(e testEvent) { more = append(more, e.n) })
	Subscribe(b, func(e otherEvent) { strs = append(strs, e.s) })

	Emit(b, testEvent{7})
	Emit(b, otherEvent{"x"})
	b.SwapBuffers()
	b.DispatchAll()

	if len(ints) != 1 || len(more) != 1 {
		t.Errorf("testEvent handlers got %v / %v, want one each", ints, more)
	}
	if len(strs) != 1 || strs[0] != "x" {
		t.Errorf("otherEvent handler got %v", strs)
	}
}

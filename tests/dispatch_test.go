// Copyright (c) 2025 Visvasity LLC

package tests

import (
	"fmt"
	"testing"

	"github.com/visvasity/dyngen/input"
	"github.com/visvasity/dyngen/output"
)

func TestBumperDispatch(t *testing.T) {
	v := input.Level(15)
	r := output.NewLevelBumperRef(&v)

	if x := r.Deref().Bump(); x != 16 {
		t.Fatalf("wanted Bump() == 16, got %d", x)
	}
	if x := r.Deref().Base(); x != 10 {
		t.Fatalf("wanted default Base() == 10, got %d", x)
	}
}

func TestCounterMutationThroughHandle(t *testing.T) {
	x := input.Counter(15)
	r := output.NewCounterSpamRefMut(&x)

	if v := r.Deref().Ham(); v != 16 {
		t.Fatalf("wanted Ham() == 16, got %d", v)
	}
	if x != 17 {
		t.Fatalf("wanted the referenced value to advance to 17, got %d", x)
	}
	if v := r.Deref().Eggs(); v != 10 {
		t.Fatalf("wanted default Eggs() == 10, got %d", v)
	}

	// A shared reborrow reads the same storage.
	shared := r.AsRef()
	if v := shared.Deref().Eggs(); v != 10 {
		t.Fatalf("wanted Eggs() == 10 through the reborrow, got %d", v)
	}
}

func TestDefaultThroughSharedHandleIsReadOnly(t *testing.T) {
	x := input.Counter(15)
	r := output.NewCounterSpamRef(&x)

	// Eggs is defaulted; dispatching it through a shared handle must
	// leave the backing value untouched.
	if v := r.Deref().Eggs(); v != 10 {
		t.Fatalf("wanted default Eggs() == 10, got %d", v)
	}
	if x != 15 {
		t.Fatalf("wanted the referenced value to stay at 15, got %d", x)
	}
}

func TestCellArgumentForwarding(t *testing.T) {
	c := input.Register{V: 5}
	r := output.NewRegisterCellRefMut(&c)

	r.Deref().Set(9)
	if c.V != 9 {
		t.Fatalf("wanted Set(9) to land in the value, got %d", c.V)
	}
	if got := r.Deref().Get(); got != 9 {
		t.Fatalf("wanted Get() == 9, got %d", got)
	}

	// The default Add body calls Get and Set on self; both dispatch
	// through Register's table, and delta is forwarded through the slot.
	if got := r.Deref().Add(3); got != 12 {
		t.Fatalf("wanted Add(3) == 12, got %d", got)
	}
	if c.V != 12 {
		t.Fatalf("wanted the value to end at 12, got %d", c.V)
	}

	// The shared view carries Get only; Set and Add are not reachable
	// through it.
	shared := r.AsRef()
	if got := shared.Deref().Get(); got != 12 {
		t.Fatalf("wanted Get() == 12 through the reborrow, got %d", got)
	}
}

func TestSharedHandleIsCopyable(t *testing.T) {
	x := input.Counter(1)
	r1 := output.NewCounterSpamRef(&x)
	r2 := r1

	if a, b := r1.Deref().Eggs(), r2.Deref().Eggs(); a != b {
		t.Fatalf("wanted both copies to dispatch alike, got %d and %d", a, b)
	}
}

func TestShapeSlotIntegrity(t *testing.T) {
	c := input.Circle{Radius: 1}
	s := input.Square{Side: 3}

	cr := output.NewCircleShapeRef(&c)
	sr := output.NewSquareShapeRef(&s)

	// Same slot, different tables; each handle must reach its own
	// type's method.
	if name := cr.Deref().Name(); name != "circle" {
		t.Fatalf("wanted circle, got %q", name)
	}
	if name := sr.Deref().Name(); name != "square" {
		t.Fatalf("wanted square, got %q", name)
	}
	if area := sr.Deref().Area(); area != 9 {
		t.Fatalf("wanted area 9, got %g", area)
	}
}

func TestShapeDefaultDispatchesThroughTable(t *testing.T) {
	c := input.Circle{Radius: 2}
	cr := output.NewCircleShapeRef(&c)

	// The default Describe body calls Name and Area on self; both must
	// resolve through Circle's table.
	want := fmt.Sprintf("%s of area %g", c.Name(), c.Area())
	if got := cr.Deref().Describe(); got != want {
		t.Fatalf("wanted %q, got %q", want, got)
	}

	s := input.Square{Side: 2}
	sr := output.NewSquareShapeRef(&s)
	if got, want := sr.Deref().Describe(), s.Describe(); got != want {
		t.Fatalf("wanted the override %q, got %q", want, got)
	}
}

func TestWaggerPerTypeDispatch(t *testing.T) {
	p := input.Pupper{Excitement: 2}
	w := input.Woofer{}

	pr := output.NewPupperWaggerRef(&p)
	wr := output.NewWooferWaggerRef(&w)

	if got, want := pr.Deref().Wag(), p.Wag(); got != want {
		t.Fatalf("wanted %q, got %q", want, got)
	}
	if got, want := wr.Deref().Wag(), w.Wag(); got != want {
		t.Fatalf("wanted %q, got %q", want, got)
	}
}

func TestMutableHandleOrdering(t *testing.T) {
	x := input.Counter(0)
	r := output.NewCounterSpamRefMut(&x)

	// Repeated dispatch accumulates in the referenced value.
	var got []int32
	for i := 0; i < 3; i++ {
		got = append(got, r.Deref().Ham())
	}
	want := []int32{1, 3, 5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("wanted %v, got %v", want, got)
		}
	}
	if x != 6 {
		t.Fatalf("wanted the value to end at 6, got %d", x)
	}
}

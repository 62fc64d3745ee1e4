// Copyright (c) 2025 Visvasity LLC

package dyn

import (
	"testing"
	"unsafe"
)

func TestEraseRoundTrip(t *testing.T) {
	x := int32(42)
	s := SelfOf(&x)
	if p := As[int32](s); p != &x {
		t.Fatalf("wanted erased self to unerase to &x, got %p != %p", p, &x)
	}
	*AsMut[int32](SelfMutOf(&x)) = 7
	if x != 7 {
		t.Fatalf("wanted write through unerased pointer to land in x, got %d", x)
	}
}

func TestSelfMutWeakening(t *testing.T) {
	x := uint64(1)
	m := SelfMutOf(&x)
	if p := As[uint64](m.Shared()); p != &x {
		t.Fatalf("Shared changed the address: %p != %p", p, &x)
	}
}

func TestHandleFromErasedSelf(t *testing.T) {
	type vtable struct {
		get func(Self) int32
	}
	vt := &vtable{
		get: func(s Self) int32 { return *As[int32](s) },
	}

	x := int32(4)
	r := RefFromSelf(SelfOf(&x), vt)
	if got := r.Meta().get(r.Self()); got != 4 {
		t.Fatalf("rebuilt shared handle: got %d, want 4", got)
	}
	m := RefMutFromSelf(SelfMutOf(&x), vt)
	if got := m.Meta().get(m.Self()); got != 4 {
		t.Fatalf("rebuilt mutable handle: got %d, want 4", got)
	}
}

func TestRefCarriesMetadata(t *testing.T) {
	type vtable struct {
		get func(Self) int32
	}
	vt := &vtable{
		get: func(s Self) int32 { return *As[int32](s) },
	}

	x := int32(15)
	r := NewRef(&x, vt)
	if got := r.Meta().get(r.Self()); got != 15 {
		t.Fatalf("dispatch through table slot: got %d, want 15", got)
	}

	// A Ref is a plain value; copies dispatch to the same data.
	r2 := r
	x = 16
	if got := r2.Meta().get(r2.Self()); got != 16 {
		t.Fatalf("copied handle sees stale data: got %d, want 16", got)
	}
}

func TestRefMutReborrow(t *testing.T) {
	type vtable struct {
		bump func(SelfMut)
		get  func(Self) int32
	}
	vt := &vtable{
		bump: func(s SelfMut) { *AsMut[int32](s)++ },
		get:  func(s Self) int32 { return *As[int32](s) },
	}

	x := int32(10)
	m := NewRefMut(&x, vt)
	m.Meta().bump(m.SelfMut())

	r := m.Ref()
	if got := r.Meta().get(r.Self()); got != 11 {
		t.Fatalf("reborrowed handle: got %d, want 11", got)
	}
	if x != 11 {
		t.Fatalf("mutation not visible through original variable: %d", x)
	}
}

func TestInlineMetadata(t *testing.T) {
	// Single-method form: the func is the metadata, no table behind it.
	x := int32(3)
	r := NewRef(&x, func(s Self) int32 { return *As[int32](s) * 2 })
	if got := r.Meta()(r.Self()); got != 6 {
		t.Fatalf("inline dispatch: got %d, want 6", got)
	}
	if size := unsafe.Sizeof(r); size != 2*unsafe.Sizeof(uintptr(0)) {
		t.Fatalf("inline handle is %d bytes, want two words", size)
	}
}

func TestPlatformCheck(t *testing.T) {
	if err := PlatformCheck(); err != nil {
		t.Fatal(err)
	}
}

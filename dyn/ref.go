// Copyright (c) 2025 Visvasity LLC

package dyn

import "unsafe"

// Ref is a shared fat pointer to a type-erased value: a data address and
// the dispatch metadata M selected for the value's concrete type. M is
// either a pointer to a static vtable struct or, for single-method
// traits, the erased method func stored inline.
//
// A Ref is a read-only view and may be freely copied, like any shared
// reference. It owns nothing and never deallocates.
type Ref[M any] struct {
	data unsafe.Pointer
	meta M
}

// NewRef builds a shared handle over v with the given dispatch metadata.
// The metadata must have been constructed for v's concrete type T; the
// generator is the only sound source of such pairs.
func NewRef[M any, T any](v *T, meta M) Ref[M] {
	return Ref[M]{data: unsafe.Pointer(v), meta: meta}
}

// Self returns the erased receiver for dispatch calls.
func (r Ref[M]) Self() Self {
	return Self{p: r.data}
}

// Meta returns the dispatch metadata.
func (r Ref[M]) Meta() M {
	return r.meta
}

// RefMut is an exclusive, mutable fat pointer to a type-erased value.
//
// A RefMut must not be aliased while in use; like an exclusive borrow,
// exclusivity is the caller's discipline. Pass it along by value to
// transfer it, or reborrow a shared view with Ref.
type RefMut[M any] struct {
	data unsafe.Pointer
	meta M
}

// NewRefMut builds a mutable handle over v with the given dispatch
// metadata. v must be safe to mutate through for the handle's lifetime.
func NewRefMut[M any, T any](v *T, meta M) RefMut[M] {
	return RefMut[M]{data: unsafe.Pointer(v), meta: meta}
}

// Self returns the erased receiver for non-mutating dispatch calls.
func (r RefMut[M]) Self() Self {
	return Self{p: r.data}
}

// SelfMut returns the erased receiver for mutating dispatch calls.
func (r RefMut[M]) SelfMut() SelfMut {
	return SelfMut{p: r.data}
}

// Meta returns the dispatch metadata.
func (r RefMut[M]) Meta() M {
	return r.meta
}

// Ref reborrows the handle as a shared view. There is no conversion in
// the other direction.
func (r RefMut[M]) Ref() Ref[M] {
	return Ref[M]{data: r.data, meta: r.meta}
}

// RefFromSelf rebuilds a shared handle from an erased receiver that is
// already in flight inside a dispatch slot. Generated default-method
// shims for non-mutating slots use it to hand the trait's default body
// a view that dispatches through the table; it is not for general use.
func RefFromSelf[M any](self Self, meta M) Ref[M] {
	return Ref[M]{data: self.p, meta: meta}
}

// RefMutFromSelf is the mutable counterpart of RefFromSelf, used by the
// generated shims of mutating defaulted slots.
func RefMutFromSelf[M any](self SelfMut, meta M) RefMut[M] {
	return RefMut[M]{data: self.p, meta: meta}
}

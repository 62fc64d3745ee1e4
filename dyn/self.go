// Copyright (c) 2025 Visvasity LLC

// Package dyn holds the runtime support types for code emitted by the
// dyngen tool.
//
// A dyngen handle is a fat pointer: one word of data address and one word
// of dispatch metadata. For traits with two or more methods the metadata
// is a pointer to a static, per-(trait, type) vtable struct shared by
// every handle of that pair. For single-method traits the metadata is the
// erased method func itself, stored inline, with no table behind it.
//
// Handles are non-owning views. They never allocate, never free, and must
// not outlive the value they were constructed from.
package dyn

import "unsafe"

// Self is the erased receiver passed to non-mutating dispatch slots. It
// stands in for the concrete receiver pointer the slot was specialized
// for; As recovers it.
type Self struct {
	p unsafe.Pointer
}

// SelfMut is the erased receiver passed to mutating dispatch slots.
type SelfMut struct {
	p unsafe.Pointer
}

// SelfOf erases the concrete receiver pointer.
func SelfOf[T any](v *T) Self {
	return Self{p: unsafe.Pointer(v)}
}

// SelfMutOf erases the concrete receiver pointer for mutating slots.
func SelfMutOf[T any](v *T) SelfMut {
	return SelfMut{p: unsafe.Pointer(v)}
}

// As recovers the concrete receiver from an erased self. The caller must
// pass the same T the self was erased from; there is no runtime check.
// This conversion, together with SelfOf, is the only unsafe primitive in
// the dispatch scheme.
func As[T any](s Self) *T {
	return (*T)(s.p)
}

// AsMut recovers the concrete receiver from an erased mutable self. The
// caller must pass the same T the self was erased from.
func AsMut[T any](s SelfMut) *T {
	return (*T)(s.p)
}

// Shared weakens a mutable erased receiver to a shared one. Mutating
// slots may call non-mutating ones, never the reverse.
func (s SelfMut) Shared() Self {
	return Self{p: s.p}
}

// Copyright (c) 2025 Visvasity LLC

package tests

import (
	"reflect"
	"testing"
	"unsafe"

	"github.com/visvasity/dyngen/output"
)

func TestHandleLayout(t *testing.T) {
	wordSize := unsafe.Sizeof(uintptr(0))

	// Every handle is two words: the data address plus one word of
	// dispatch metadata.
	if s := unsafe.Sizeof(output.SpamRef{}); s != 2*wordSize {
		t.Fatalf("wanted a two-word handle, got %d bytes", s)
	}
	if s := unsafe.Sizeof(output.WaggerRef{}); s != 2*wordSize {
		t.Fatalf("wanted a two-word handle, got %d bytes", s)
	}
}

func TestSingleMethodMetadataIsInline(t *testing.T) {
	// A single-method contract stores the erased method func directly
	// in the handle; there is no table to point at.
	ref := reflect.TypeOf(output.WaggerRef{}).Field(0).Type
	meta, ok := ref.FieldByName("meta")
	if !ok {
		t.Fatalf("wanted a meta field in %v", ref)
	}
	if kind := meta.Type.Kind(); kind != reflect.Func {
		t.Fatalf("wanted an inline func, got %v", kind)
	}

	ref = reflect.TypeOf(output.SpamRef{}).Field(0).Type
	meta, _ = ref.FieldByName("meta")
	if kind := meta.Type.Kind(); kind != reflect.Pointer {
		t.Fatalf("wanted a table pointer, got %v", kind)
	}
}

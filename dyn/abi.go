// Copyright (c) 2025 Visvasity LLC

package dyn

import (
	"fmt"
	"unsafe"
)

// The dispatch scheme leans on three layout facts: an erased receiver is
// exactly one pointer word, a Go func value is exactly one pointer word,
// and a fat pointer is exactly two. These hold on every platform the gc
// toolchain targets; the guards below turn a platform where they do not
// into a build failure rather than a corrupted call.

const (
	wordSize = unsafe.Sizeof(uintptr(0))

	selfSize    = unsafe.Sizeof(Self{})
	selfMutSize = unsafe.Sizeof(SelfMut{})
	funcSize    = unsafe.Sizeof((func(Self))(nil))
	refSize     = unsafe.Sizeof(Ref[*struct{}]{})
)

// Out-of-range constant indexes reject bad layouts at compile time.
var (
	_ = [1]struct{}{}[selfSize-wordSize]
	_ = [1]struct{}{}[selfMutSize-wordSize]
	_ = [1]struct{}{}[funcSize-wordSize]
	_ = [1]struct{}{}[refSize-2*wordSize]
)

// PlatformCheck reports whether the target platform satisfies the layout
// assumptions above. The generator refuses to emit code when it fails.
func PlatformCheck() error {
	if selfSize != wordSize || selfMutSize != wordSize {
		return fmt.Errorf("erased receiver is %d bytes, want pointer word %d", selfSize, wordSize)
	}
	if funcSize != wordSize {
		return fmt.Errorf("func value is %d bytes, want pointer word %d", funcSize, wordSize)
	}
	if refSize != 2*wordSize {
		return fmt.Errorf("fat pointer is %d bytes, want %d", refSize, 2*wordSize)
	}
	return nil
}

func init() {
	if err := PlatformCheck(); err != nil {
		panic("dyn: unsupported platform: " + err.Error())
	}
}

// Copyright (c) 2025 Visvasity LLC

package input

// Bumper is a read-only contract over small counters.
type Bumper interface {
	// Bump reports the successor of the value.
	Bump() int32

	// Base reports the baseline. Defaults to 10.
	Base() int32
}

// BumperDefaultBase is the default body for Base.
func BumperDefaultBase(self Bumper) int32 {
	return 10
}

// Level implements Bumper with the default Base.
type Level int32

func (v Level) Bump() int32 {
	return int32(v) + 1
}

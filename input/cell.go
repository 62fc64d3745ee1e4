// Copyright (c) 2025 Visvasity LLC

package input

// Cell is a contract over a mutable integer slot. Its methods carry
// value arguments.
type Cell interface {
	Get() int32

	//dyngen:mut
	Set(v int32)

	// Add bumps the value by delta and reports the result. The default
	// composes Get and Set.
	//
	//dyngen:mut
	Add(delta int32) int32
}

// CellDefaultAdd is the default body for Add. Add is mutating, so the
// body may receive the full contract.
func CellDefaultAdd(self Cell, delta int32) int32 {
	self.Set(self.Get() + delta)
	return self.Get()
}

// Register implements Cell with the default Add.
type Register struct {
	V int32
}

func (r Register) Get() int32 { return r.V }

func (r *Register) Set(v int32) { r.V = v }

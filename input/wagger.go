// Copyright (c) 2025 Visvasity LLC

package input

// Wagger has exactly one method, so its handles store the erased method
// pointer inline with no vtable.
type Wagger interface {
	Wag() string
}

// Pupper wags proportionally to its excitement.
type Pupper struct {
	Excitement int
}

func (p Pupper) Wag() string {
	tail := "wag"
	for i := 0; i < p.Excitement; i++ {
		tail += "-wag"
	}
	return "pupper: " + tail
}

// Woofer wags exactly once.
type Woofer struct{}

func (Woofer) Wag() string {
	return "woofer: wag"
}

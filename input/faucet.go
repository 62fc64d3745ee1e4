// Copyright (c) 2025 Visvasity LLC

package input

// Faucet declares a mutating method, so a default body for its
// non-mutating Drips may only receive the read-only side of the
// contract. FaucetDefaultDrips demands the full contract instead, which
// would let a shared handle reach Open; generation for Faucet must be
// refused.
type Faucet interface {
	//dyngen:mut
	Open()

	Drips() int32
}

// FaucetDefaultDrips is an invalid default body for Drips.
func FaucetDefaultDrips(self Faucet) int32 {
	return 0
}

// Copyright (c) 2025 Visvasity LLC

// Package input holds the trait contracts and implementing types that the
// repository's committed generator output is produced from. It doubles as
// the fixture package for the typecheck and end-to-end tests.
package input

// Spam is a contract with one mutating method and one defaulted method.
type Spam interface {
	// Ham advances the value by two and reports the intermediate count.
	//
	//dyngen:mut
	Ham() int32

	// Eggs reports a tuning constant. Implementations may rely on the
	// default.
	Eggs() int32
}

// SpamDefaultEggs is the default body for Eggs. Eggs does not mutate,
// so the body receives only the read-only side of the contract.
func SpamDefaultEggs(self interface{ Eggs() int32 }) int32 {
	return 10
}

// Counter implements Spam with the default Eggs.
type Counter int32

func (c *Counter) Ham() int32 {
	*c += 2
	return int32(*c) - 1
}

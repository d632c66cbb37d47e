package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a function formula.
func ID(formula string) uint64 {
	return xxhash.Sum64String(formula)
}

// Verify reports whether id is the hash of formula.
func Verify(formula string, id uint64) bool {
	return ID(formula) == id
}

package Go_Hats

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// Log2 is the floor of the base 2 logarithm of v. v must be positive.
func Log2[U constraints.Unsigned](v U) uint {
	return uint(bits.Len64(uint64(v))) - 1
}

// IsPow2 reports whether v is a power of 2.
func IsPow2[U constraints.Unsigned](v U) bool {
	return v != 0 && v&(v-1) == 0
}

package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, uint64(0xef46db3751d8e999), ID(""), "xxHash64 of the empty string")
	require.Equal(t, uint64(0x4fdcca5ddb678139), ID("test"))

	formulas := []string{
		"Linear f(x) = 2x + 3",
		"Linear f(x) = 3x + 2",
		"Quadratic f(x) = 1x^2 + 5x + 8",
		"Trigonometric f(x) = sin(x)",
	}
	seen := make(map[uint64]string, len(formulas))
	for _, f := range formulas {
		id := ID(f)
		require.Equal(t, id, ID(f), "hash must be deterministic")
		_, dup := seen[id]
		require.False(t, dup, "unexpected collision for %q", f)
		seen[id] = f
	}
}

func TestVerify(t *testing.T) {
	id := ID("Power f(x) = x^2")
	require.True(t, Verify("Power f(x) = x^2", id))
	require.False(t, Verify("Power f(x) = x^3", id))
}

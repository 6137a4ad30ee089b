package codes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateDrawsFromAlphabet(t *testing.T) {
	t.Parallel()

	for range 200 {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, Length)

		for _, r := range code {
			require.Contains(t, Alphabet, string(r))
		}
	}
}

func TestAlphabetExcludesAmbiguousCharacters(t *testing.T) {
	t.Parallel()

	require.Len(t, Alphabet, 32)
	for _, forbidden := range []string{"0", "O", "1", "I"} {
		require.NotContains(t, Alphabet, forbidden)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, "K7M3P9", Normalize("  k7m3p9\n"))
	require.Equal(t, "ABC234", Normalize("abc234"))
	require.Equal(t, "", Normalize("   "))
}

func TestGenerateIsNotConstant(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}
	require.Greater(t, len(seen), 1, "expected distinct codes across draws")
}

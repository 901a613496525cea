package auth_test

import (
	"testing"

	"github.com/flickstack/rental-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewToken_NotEmpty(t *testing.T) {
	tok, err := auth.NewToken(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

func TestNewToken_AvoidsTakenSet(t *testing.T) {
	taken := []string{"aaaaaaaaa", "bbbbbbbbb", ""}

	for i := 0; i < 100; i++ {
		tok, err := auth.NewToken(taken)
		require.NoError(t, err)
		assert.NotContains(t, taken, tok)
	}
}

func TestNewToken_IgnoresEmptyStrings(t *testing.T) {
	tok, err := auth.NewToken([]string{"", "", ""})
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

func TestNewToken_SuccessiveTokensDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok, err := auth.NewToken(nil)
		require.NoError(t, err)
		assert.False(t, seen[tok], "token repeated: %s", tok)
		seen[tok] = true
	}
}

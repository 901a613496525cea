// Package auth generates opaque session tokens.
package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 32

// NewToken returns a session token guaranteed not to be a member of taken.
// Empty strings in taken are ignored (they mean "no session"). The token
// space is large enough that the retry loop is practically a single pass,
// but the uniqueness contract is enforced either way.
func NewToken(taken []string) (string, error) {
	used := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		if t != "" {
			used[t] = struct{}{}
		}
	}

	for {
		buf := make([]byte, tokenBytes)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("token randomness: %w", err)
		}
		tok := base64.RawURLEncoding.EncodeToString(buf)
		if _, clash := used[tok]; !clash {
			return tok, nil
		}
	}
}

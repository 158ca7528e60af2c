package reward

import (
	"crypto/rand"
)

// Redemption codes are short, human-readable and high-entropy. The alphabet
// drops 0/O/1/I/L to avoid transcription mistakes; 10 characters over 31
// symbols is roughly 50 bits, so collisions are rare but still possible.
// The database unique constraint is the actual guarantee, and inserts retry
// on collision.
const (
	CodeLength   = 10
	codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

func NewCode() (string, error) {
	// Bytes past the largest multiple of the alphabet size are rejected,
	// otherwise the low symbols would be slightly over-represented.
	const limit = 256 - 256%len(codeAlphabet)

	code := make([]byte, 0, CodeLength)
	buf := make([]byte, CodeLength)
	for {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			code = append(code, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(code) == CodeLength {
				return string(code), nil
			}
		}
	}
}

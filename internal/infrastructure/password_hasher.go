package infrastructure

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with an explicit work factor so the cost is
// configuration rather than an ambient global. Digests embed their own
// parameters, so raising the cost later keeps existing users verifiable.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. The comparison cost
// depends on the digest's embedded parameters, not on match or mismatch.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}

package auth

import (
	"golang.org/x/crypto/bcrypt"

	"todoapi/internal/apperr"
)

// PasswordCost is the bcrypt work factor used for every new hash.
const PasswordCost = 10

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return &Hasher{cost: PasswordCost}
}

// Hash returns a salted bcrypt hash. The salt is random per call and stored
// inside the returned string.
func (h *Hasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", apperr.Wrap(apperr.KindHashing, "Error hashing password.", err)
	}
	return string(b), nil
}

// Verify never fails loudly: a mismatch and a malformed hash both yield false.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

package service

import "golang.org/x/crypto/bcrypt"

// defaultBcryptCost deliberately sits above bcrypt.DefaultCost; hashing is
// meant to be slow.
const defaultBcryptCost = 12

// BcryptHasher hashes and verifies passwords with bcrypt. Each Hash call
// salts independently, so equal plaintexts never produce equal hashes.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher builds a hasher with the given work factor. Out-of-range
// costs fall back to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify fails closed: a malformed stored hash compares the same as a wrong
// password.
func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

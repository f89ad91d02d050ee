package ports

// PasswordHasher performs the one-way transform on plaintext passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches the stored hash. It returns
	// false on any mismatch or malformed hash, never an error.
	Verify(plaintext, hash string) bool
}

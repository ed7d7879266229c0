package interfaces

// Hasher derives and verifies salted password hashes.
type Hasher interface {
	GenerateSalt() ([]byte, error)
	Derive(password string, salt []byte, iterations int) ([]byte, error)
	Verify(password string, expectedHash, salt []byte, iterations int) (bool, error)
	DefaultIterations() int
	// NeedsRehash reports whether a stored iteration count is below the default.
	NeedsRehash(iterations int) bool
}

// CredentialValidator rejects syntactically unacceptable input before hashing.
type CredentialValidator interface {
	ValidateUsername(raw string) (string, error)
	ValidatePassword(raw string) (string, error)
}

package hasher

const (
	// AlgorithmSHA256 selects PBKDF2-HMAC-SHA256.
	AlgorithmSHA256 = "sha256"
	// AlgorithmSHA512 selects PBKDF2-HMAC-SHA512.
	AlgorithmSHA512 = "sha512"

	DefaultAlgorithm  = AlgorithmSHA256
	DefaultSaltLength = 16
	DefaultKeyLength  = 32
	DefaultIterations = 120_000

	// Error messages for hasher operations
	ErrMsgReadSalt   = "failed to read salt from random source"
	ErrMsgSelfTest   = "known-answer self-test failed"
	ErrMsgUnknownAlg = "unsupported derivation algorithm"
)

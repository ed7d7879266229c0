package hasher

import "errors"

var (
	// ErrDerivationUnavailable means the derivation primitive is missing or
	// misconfigured. It is a fatal configuration error, not a retryable one.
	ErrDerivationUnavailable = errors.New("password derivation primitive unavailable")

	// ErrInvalidParameters is returned for non-positive iteration counts,
	// empty salts or bad lengths.
	ErrInvalidParameters = errors.New("invalid derivation parameters")

	// ErrWeakSalt is returned when the random source produced an all-zero salt.
	ErrWeakSalt = errors.New("random source produced a zero-filled salt")
)

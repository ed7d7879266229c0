package userservice

import (
	"errors"

	"github.com/haguru/credkeeper/internal/credvalidator"
)

var (
	// ErrInvalid wraps every validation rejection. Use errors.As with
	// *credvalidator.ValidationError for the user-facing reason.
	ErrInvalid = credvalidator.ErrInvalid

	// ErrDuplicateUsername is an expected business outcome of Register.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrAuthenticationRejected is the single message shown for every failed
	// sign-in, whatever the cause.
	ErrAuthenticationRejected = errors.New("invalid username or password")

	// ErrStoreUnavailable wraps infrastructure faults from the credential store.
	// It is not retried here.
	ErrStoreUnavailable = errors.New("credential store unavailable")

	// ErrDerivationFailure wraps hasher faults. A healthy deployment catches
	// these at startup.
	ErrDerivationFailure = errors.New("password derivation failed")
)

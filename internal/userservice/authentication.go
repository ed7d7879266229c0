// Package userservice orchestrates sign-in and sign-up over a credential store.
package userservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/haguru/credkeeper/internal/hasher"
	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/models"
	"github.com/haguru/credkeeper/pkg/helper"
)

// AuthenticationService verifies sign-in attempts. It holds no mutable state
// and is safe for concurrent use.
type AuthenticationService struct {
	Store  interfaces.CredentialStore
	Hasher interfaces.Hasher
	Logger interfaces.Logger

	// decoy is verified against when the username is unknown so both
	// rejection paths pay for one derivation. nil disables it.
	decoy *models.Credential
}

// AuthOptions tunes AuthenticationService.
type AuthOptions struct {
	EqualizeTiming bool
}

// NewAuthenticationService creates a new AuthenticationService instance.
func NewAuthenticationService(store interfaces.CredentialStore, h interfaces.Hasher,
	logger interfaces.Logger, opts AuthOptions,
) (*AuthenticationService, error) {
	s := &AuthenticationService{
		Store:  store,
		Hasher: h,
		Logger: logger,
	}

	if opts.EqualizeTiming {
		salt, err := h.GenerateSalt()
		if err != nil {
			return nil, fmt.Errorf("%s: %w: %w", ErrMsgGenerateSalt, ErrDerivationFailure, err)
		}
		s.decoy = &models.Credential{
			PasswordSalt: salt,
			PasswordHash: make([]byte, len(salt)),
			Iterations:   h.DefaultIterations(),
		}
	}

	return s, nil
}

// Authenticate checks username and password against the store. Unknown users
// and wrong passwords produce the same Rejected outcome. Only store and hasher
// faults are returned as errors.
func (s *AuthenticationService) Authenticate(ctx context.Context, username, password string) (interfaces.AuthOutcome, error) {
	funcName := helper.GetFuncName()
	rejected := interfaces.AuthOutcome{Status: interfaces.StatusRejected}

	if username == "" || password == "" {
		s.Logger.Debug(ErrMsgMissingInput, "func", funcName)
		return rejected, nil
	}

	s.Logger.Debug("Entering function", "func", funcName, "user", username)
	credential, err := s.Store.GetByUsername(ctx, username)
	if err != nil {
		s.Logger.Error(ErrMsgRetrievingUser, "func", funcName, "user", username, "error", err)
		return rejected, fmt.Errorf("%s: %w: %w", ErrMsgRetrievingUser, ErrStoreUnavailable, err)
	}

	if credential == nil {
		if s.decoy != nil {
			_, _ = s.Hasher.Verify(password, s.decoy.PasswordHash, s.decoy.PasswordSalt, s.decoy.Iterations)
		}
		s.Logger.Info("Authentication rejected", "func", funcName, "user", username, logKeyReason, ErrMsgUserNotFound)
		return rejected, nil
	}

	ok, err := s.Hasher.Verify(password, credential.PasswordHash, credential.PasswordSalt, credential.Iterations)
	if errors.Is(err, hasher.ErrInvalidParameters) {
		// a stored record without salt or iterations can never verify
		s.Logger.Warn(ErrMsgCorruptCredential, "func", funcName, "user", username, "error", err)
		return rejected, nil
	}
	if err != nil {
		s.Logger.Error(ErrMsgVerifyPassword, "func", funcName, "user", username, "error", err)
		return rejected, fmt.Errorf("%s: %w: %w", ErrMsgVerifyPassword, ErrDerivationFailure, err)
	}
	if !ok {
		s.Logger.Info("Authentication rejected", "func", funcName, "user", username, logKeyReason, ErrMsgInvalidPassword)
		return rejected, nil
	}

	if s.Hasher.NeedsRehash(credential.Iterations) {
		// no rehash path is offered; the record keeps verifying with its own count
		s.Logger.Info("Credential iteration count below current default", "func", funcName, "user", username,
			"iterations", credential.Iterations)
	}
	s.Logger.Info("User authenticated successfully", "func", funcName, "user", username)
	return interfaces.AuthOutcome{Status: interfaces.StatusAuthenticated, Credential: credential}, nil
}

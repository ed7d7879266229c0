package userservice

import (
	"context"
	"fmt"

	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/models"
	"github.com/haguru/credkeeper/pkg/helper"
)

// RegistrationService creates credentials. Validation runs before hashing and
// hashing runs before the store write.
type RegistrationService struct {
	Store     interfaces.CredentialStore
	Hasher    interfaces.Hasher
	Validator interfaces.CredentialValidator
	Logger    interfaces.Logger
}

// NewRegistrationService creates a new RegistrationService instance.
func NewRegistrationService(store interfaces.CredentialStore, hasher interfaces.Hasher,
	validator interfaces.CredentialValidator, logger interfaces.Logger,
) *RegistrationService {
	return &RegistrationService{
		Store:     store,
		Hasher:    hasher,
		Validator: validator,
		Logger:    logger,
	}
}

// Register validates the input, hashes the password and inserts the new
// credential. Validation failures satisfy errors.Is(err, ErrInvalid); a taken
// username returns ErrDuplicateUsername.
func (s *RegistrationService) Register(ctx context.Context, username, password string) (*models.Credential, error) {
	funcName := helper.GetFuncName()
	s.Logger.Debug("Entering function", "func", funcName)

	canonical, err := s.Validator.ValidateUsername(username)
	if err != nil {
		s.Logger.Info(ErrMsgValidationFailed, "func", funcName, "error", err)
		return nil, err
	}

	password, err = s.Validator.ValidatePassword(password)
	if err != nil {
		s.Logger.Info(ErrMsgValidationFailed, "func", funcName, "user", canonical, "error", err)
		return nil, err
	}

	s.Logger.Info("Registering user", "func", funcName, "user", canonical)
	salt, err := s.Hasher.GenerateSalt()
	if err != nil {
		s.Logger.Error(ErrMsgGenerateSalt, "func", funcName, "user", canonical, "error", err)
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgGenerateSalt, ErrDerivationFailure, err)
	}

	iterations := s.Hasher.DefaultIterations()
	hash, err := s.Hasher.Derive(password, salt, iterations)
	if err != nil {
		s.Logger.Error(ErrMsgHashPassword, "func", funcName, "user", canonical, "error", err)
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgHashPassword, ErrDerivationFailure, err)
	}

	credential := models.NewCredential(canonical, salt, hash, iterations)
	status, err := s.Store.Insert(ctx, credential)
	if err != nil {
		s.Logger.Error(ErrMsgRegisterCredential, "func", funcName, "user", canonical, "error", err)
		return nil, fmt.Errorf("%s: %w: %w", ErrMsgRegisterCredential, ErrStoreUnavailable, err)
	}
	if status == interfaces.InsertDuplicateUsername {
		s.Logger.Info(ErrMsgDuplicateUsername, "func", funcName, "user", canonical)
		return nil, ErrDuplicateUsername
	}

	s.Logger.Info("User registered successfully", "func", funcName, "user", canonical, "ID", credential.ID)
	return credential, nil
}

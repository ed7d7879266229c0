// Package credvalidator holds the syntactic rules for usernames and passwords.
// It runs before any hashing so that bad input is rejected cheaply.
package credvalidator

import (
	"fmt"
	"regexp"
	"strings"

	structValidator "github.com/go-playground/validator/v10"
)

// Policy is the configurable credential policy.
type Policy struct {
	UsernameMinLength int    `yaml:"username_min_length" validate:"omitempty,min=1"`
	UsernameMaxLength int    `yaml:"username_max_length" validate:"omitempty,min=1"`
	UsernamePattern   string `yaml:"username_pattern"`
	PasswordMinLength int    `yaml:"password_min_length" validate:"omitempty,min=1"`
}

// WithDefaults fills unset fields with the default policy.
func (p Policy) WithDefaults() Policy {
	if p.UsernameMinLength == 0 {
		p.UsernameMinLength = DefaultUsernameMinLength
	}
	if p.UsernameMaxLength == 0 {
		p.UsernameMaxLength = DefaultUsernameMaxLength
	}
	if p.UsernamePattern == "" {
		p.UsernamePattern = DefaultUsernamePattern
	}
	if p.PasswordMinLength == 0 {
		p.PasswordMinLength = DefaultPasswordMinLength
	}
	return p
}

// Validator checks usernames and passwords. It has no side effects.
type Validator struct {
	policy       Policy
	validate     *structValidator.Validate
	usernameTags string
	passwordTags string
}

// New builds a Validator for the given policy.
func New(policy Policy) (*Validator, error) {
	policy = policy.WithDefaults()
	if policy.UsernameMinLength > policy.UsernameMaxLength {
		return nil, fmt.Errorf("username min length %d exceeds max length %d",
			policy.UsernameMinLength, policy.UsernameMaxLength)
	}

	charset, err := regexp.Compile(policy.UsernamePattern)
	if err != nil {
		return nil, fmt.Errorf("invalid username pattern: %w", err)
	}

	validate := structValidator.New()
	err = validate.RegisterValidation(charsetTag, func(fl structValidator.FieldLevel) bool {
		return charset.MatchString(fl.Field().String())
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register %s validation: %w", charsetTag, err)
	}

	return &Validator{
		policy:       policy,
		validate:     validate,
		usernameTags: fmt.Sprintf("min=%d,max=%d,%s", policy.UsernameMinLength, policy.UsernameMaxLength, charsetTag),
		passwordTags: fmt.Sprintf("min=%d", policy.PasswordMinLength),
	}, nil
}

// Policy returns the effective policy.
func (v *Validator) Policy() Policy {
	return v.policy
}

// ValidateUsername trims raw and returns the canonical username.
func (v *Validator) ValidateUsername(raw string) (string, error) {
	username := strings.TrimSpace(raw)
	if username == "" {
		return "", newValidationError(FieldUsername, ReasonEmpty, "Username cannot be empty.")
	}

	if err := v.validate.Var(username, v.usernameTags); err != nil {
		return "", v.usernameError(err)
	}

	return username, nil
}

// ValidatePassword checks the trimmed length of raw and returns raw unchanged,
// since the password feeds directly into hashing.
func (v *Validator) ValidatePassword(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", newValidationError(FieldPassword, ReasonEmpty, "Password cannot be empty.")
	}

	if err := v.validate.Var(trimmed, v.passwordTags); err != nil {
		return "", newValidationError(FieldPassword, ReasonTooShort,
			"Password must be at least %d characters.", v.policy.PasswordMinLength)
	}

	return raw, nil
}

func (v *Validator) usernameError(err error) *ValidationError {
	var tag string
	if errs, ok := err.(structValidator.ValidationErrors); ok && len(errs) > 0 {
		tag = errs[0].Tag()
	}

	switch tag {
	case "min":
		return newValidationError(FieldUsername, ReasonTooShort,
			"Username is too short. Must be at least %d characters.", v.policy.UsernameMinLength)
	case "max":
		return newValidationError(FieldUsername, ReasonTooLong,
			"Username is too long. Must be at most %d characters.", v.policy.UsernameMaxLength)
	default:
		return newValidationError(FieldUsername, ReasonInvalidCharacter, "Username contains invalid characters.")
	}
}

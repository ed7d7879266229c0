package credvalidator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := New(Policy{})
	require.NoError(t, err)
	return v
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		wantErr bool
	}{
		{name: "defaults", policy: Policy{}},
		{name: "custom", policy: Policy{UsernameMinLength: 3, UsernameMaxLength: 10, PasswordMinLength: 12}},
		{name: "min above max", policy: Policy{UsernameMinLength: 30, UsernameMaxLength: 10}, wantErr: true},
		{name: "bad pattern", policy: Policy{UsernamePattern: "^[a-z"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.policy)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				assert.NotNil(t, v)
			}
		})
	}
}

func TestPolicy_WithDefaults(t *testing.T) {
	assert.Equal(t, Policy{
		UsernameMinLength: DefaultUsernameMinLength,
		UsernameMaxLength: DefaultUsernameMaxLength,
		UsernamePattern:   DefaultUsernamePattern,
		PasswordMinLength: DefaultPasswordMinLength,
	}, Policy{}.WithDefaults())
}

func TestValidator_ValidateUsername(t *testing.T) {
	v := newTestValidator(t)
	tests := []struct {
		name       string
		raw        string
		want       string
		wantReason Reason
	}{
		{name: "valid", raw: "alice01", want: "alice01"},
		{name: "trimmed", raw: "  alice01\t", want: "alice01"},
		{name: "case preserved", raw: "Alice01", want: "Alice01"},
		{name: "punctuation allowed", raw: "a.b_c-d", want: "a.b_c-d"},
		{name: "exactly min", raw: strings.Repeat("a", DefaultUsernameMinLength), want: strings.Repeat("a", DefaultUsernameMinLength)},
		{name: "exactly max", raw: strings.Repeat("a", DefaultUsernameMaxLength), want: strings.Repeat("a", DefaultUsernameMaxLength)},
		{name: "empty", raw: "", wantReason: ReasonEmpty},
		{name: "whitespace only", raw: "   ", wantReason: ReasonEmpty},
		{name: "below min", raw: strings.Repeat("a", DefaultUsernameMinLength-1), wantReason: ReasonTooShort},
		{name: "short after trim", raw: "  ab  ", wantReason: ReasonTooShort},
		{name: "above max", raw: strings.Repeat("a", DefaultUsernameMaxLength+1), wantReason: ReasonTooLong},
		{name: "space inside", raw: "alice 01", wantReason: ReasonInvalidCharacter},
		{name: "symbol", raw: "alice@01", wantReason: ReasonInvalidCharacter},
		{name: "non ascii letter", raw: "alicé01", wantReason: ReasonInvalidCharacter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidateUsername(tt.raw)
			if tt.wantReason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, ErrInvalid)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, FieldUsername, vErr.Field)
			assert.Equal(t, tt.wantReason, vErr.Reason)
			assert.NotEmpty(t, vErr.Message)
		})
	}
}

func TestValidator_ValidatePassword(t *testing.T) {
	v := newTestValidator(t)
	tests := []struct {
		name       string
		raw        string
		wantReason Reason
	}{
		{name: "valid", raw: "correcthorse"},
		{name: "exactly min", raw: strings.Repeat("p", DefaultPasswordMinLength)},
		{name: "surrounding spaces kept", raw: "  secret99  "},
		{name: "mixed case kept", raw: "CorrectHorse"},
		{name: "empty", raw: "", wantReason: ReasonEmpty},
		{name: "whitespace only", raw: "        ", wantReason: ReasonEmpty},
		{name: "below min", raw: strings.Repeat("p", DefaultPasswordMinLength-1), wantReason: ReasonTooShort},
		{name: "short after trim", raw: "  abc  ", wantReason: ReasonTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.ValidatePassword(tt.raw)
			if tt.wantReason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.raw, got)
				return
			}

			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, ErrInvalid)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, FieldPassword, vErr.Field)
			assert.Equal(t, tt.wantReason, vErr.Reason)
		})
	}
}

func TestValidator_CustomPolicy(t *testing.T) {
	v, err := New(Policy{UsernameMinLength: 2, UsernameMaxLength: 4, UsernamePattern: `^[a-z]+$`, PasswordMinLength: 10})
	require.NoError(t, err)

	_, err = v.ValidateUsername("ab")
	assert.NoError(t, err)
	_, err = v.ValidateUsername("abcde")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = v.ValidateUsername("AB")
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = v.ValidatePassword("123456789")
	assert.ErrorIs(t, err, ErrInvalid)
	_, err = v.ValidatePassword("1234567890")
	assert.NoError(t, err)
	assert.Equal(t, 10, v.Policy().PasswordMinLength)
}

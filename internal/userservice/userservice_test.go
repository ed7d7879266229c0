package userservice

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/haguru/credkeeper/internal/credentialstore/memory"
	"github.com/haguru/credkeeper/internal/credvalidator"
	"github.com/haguru/credkeeper/internal/hasher"
	"github.com/haguru/credkeeper/pkg/zerolog"
)

const testIterations = 1000

type fixture struct {
	store    *memory.Store
	auth     *AuthenticationService
	register *RegistrationService
}

func newTestHasher(t *testing.T) *hasher.Hasher {
	t.Helper()
	h, err := hasher.New(hasher.Config{Iterations: testIterations}.WithDefaults(), rand.Reader)
	require.NoError(t, err)
	return h
}

func newTestValidator(t *testing.T) *credvalidator.Validator {
	t.Helper()
	v, err := credvalidator.New(credvalidator.Policy{})
	require.NoError(t, err)
	return v
}

// newFixture wires both services over one memory store and a real hasher.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	h := newTestHasher(t)
	logger := zerolog.NewNopLogger()

	auth, err := NewAuthenticationService(store, h, logger, AuthOptions{EqualizeTiming: true})
	require.NoError(t, err)

	return &fixture{
		store:    store,
		auth:     auth,
		register: NewRegistrationService(store, h, newTestValidator(t), logger),
	}
}

// fixedSalt is returned by mocked hashers; it is never all zeroes.
var fixedSalt = bytes.Repeat([]byte{0x5a}, 16)

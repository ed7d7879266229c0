package interfaces

import (
	"context"

	"github.com/haguru/credkeeper/internal/models"
)

// AuthStatus is the terminal state of an authentication attempt.
type AuthStatus int

const (
	StatusRejected AuthStatus = iota
	StatusAuthenticated
)

func (s AuthStatus) String() string {
	if s == StatusAuthenticated {
		return "authenticated"
	}
	return "rejected"
}

// AuthOutcome is the result of a sign-in. A rejected outcome never carries a
// credential and looks the same whether the user is unknown or the password is wrong.
type AuthOutcome struct {
	Status     AuthStatus
	Credential *models.Credential
}

// Authenticated reports whether the outcome grants access.
func (o AuthOutcome) Authenticated() bool {
	return o.Status == StatusAuthenticated
}

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (AuthOutcome, error)
}

type Registrar interface {
	Register(ctx context.Context, username, password string) (*models.Credential, error)
}

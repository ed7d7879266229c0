package interfaces

import (
	"context"

	"github.com/haguru/credkeeper/internal/models"
)

// InsertStatus is the business outcome of a store insert.
type InsertStatus int

const (
	// InsertCreated means the credential was durably created.
	InsertCreated InsertStatus = iota
	// InsertDuplicateUsername means the uniqueness constraint on username rejected the record.
	InsertDuplicateUsername
)

func (s InsertStatus) String() string {
	switch s {
	case InsertCreated:
		return "created"
	case InsertDuplicateUsername:
		return "duplicate_username"
	default:
		return "unknown"
	}
}

// CredentialStore defines the contract for storing and retrieving credentials.
// It is the sole enforcer of username uniqueness; Insert must be atomic.
type CredentialStore interface {
	// GetByUsername is an exact-match lookup. It returns nil, nil when no
	// credential exists. A non-nil error is an infrastructure fault.
	GetByUsername(ctx context.Context, username string) (*models.Credential, error)
	// Insert creates the credential and sets its ID. A uniqueness violation is
	// reported as InsertDuplicateUsername with a nil error.
	Insert(ctx context.Context, credential *models.Credential) (InsertStatus, error)
	EnsureIndices(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

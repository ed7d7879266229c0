package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/haguru/credkeeper/internal/credentialstore"
	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/models"
)

// Store is an in-process CredentialStore. Records are copied on the way in
// and out so callers never share salt or hash slices with the store.
type Store struct {
	mu          sync.RWMutex
	credentials map[string]*models.Credential
	closed      bool
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{credentials: make(map[string]*models.Credential)}
}

// GetByUsername returns a copy of the stored credential, or nil if none exists.
func (s *Store) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, credentialstore.ErrClosed
	}
	return s.credentials[username].Clone(), nil
}

// Insert stores a copy of credential under its username and sets credential.ID.
func (s *Store) Insert(ctx context.Context, credential *models.Credential) (interfaces.InsertStatus, error) {
	if err := ctx.Err(); err != nil {
		return interfaces.InsertCreated, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return interfaces.InsertCreated, credentialstore.ErrClosed
	}
	if _, exists := s.credentials[credential.Username]; exists {
		return interfaces.InsertDuplicateUsername, nil
	}
	credential.ID = uuid.NewString()
	s.credentials[credential.Username] = credential.Clone()
	return interfaces.InsertCreated, nil
}

// EnsureIndices is a no-op; the map key is the unique index.
func (s *Store) EnsureIndices(ctx context.Context) error {
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return credentialstore.ErrClosed
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len reports how many credentials are stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.credentials)
}

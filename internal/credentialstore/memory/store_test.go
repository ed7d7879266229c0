package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haguru/credkeeper/internal/credentialstore"
	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/models"
)

var _ interfaces.CredentialStore = (*Store)(nil)

func TestStore_InsertAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	cred := models.NewCredential("alice01", []byte("salt"), []byte("hash"), 1000)
	status, err := s.Insert(ctx, cred)
	require.NoError(t, err)
	assert.Equal(t, interfaces.InsertCreated, status)
	assert.NotEmpty(t, cred.ID)

	got, err := s.GetByUsername(ctx, "alice01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cred.ID, got.ID)
	assert.Equal(t, []byte("salt"), got.PasswordSalt)
	assert.Equal(t, []byte("hash"), got.PasswordHash)
	assert.Equal(t, 1000, got.Iterations)

	missing, err := s.GetByUsername(ctx, "bob0001")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_LookupIsExactMatch(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	_, err := s.Insert(ctx, models.NewCredential("alice01", []byte("s"), []byte("h"), 1))
	require.NoError(t, err)

	for _, name := range []string{"Alice01", "alice01 ", " alice01", "alice0"} {
		got, err := s.GetByUsername(ctx, name)
		require.NoError(t, err)
		assert.Nil(t, got, name)
	}
}

func TestStore_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first := models.NewCredential("alice01", []byte("s1"), []byte("h1"), 1)
	_, err := s.Insert(ctx, first)
	require.NoError(t, err)

	status, err := s.Insert(ctx, models.NewCredential("alice01", []byte("s2"), []byte("h2"), 1))
	require.NoError(t, err)
	assert.Equal(t, interfaces.InsertDuplicateUsername, status)

	got, err := s.GetByUsername(ctx, "alice01")
	require.NoError(t, err)
	assert.Equal(t, []byte("h1"), got.PasswordHash)
	assert.Equal(t, 1, s.Len())
}

func TestStore_CopiesMaterial(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	cred := models.NewCredential("alice01", []byte("salt"), []byte("hash"), 1)
	_, err := s.Insert(ctx, cred)
	require.NoError(t, err)
	cred.PasswordHash[0] = 'X'

	got, err := s.GetByUsername(ctx, "alice01")
	require.NoError(t, err)
	got.PasswordSalt[0] = 'X'

	again, err := s.GetByUsername(ctx, "alice01")
	require.NoError(t, err)
	assert.Equal(t, []byte("salt"), again.PasswordSalt)
	assert.Equal(t, []byte("hash"), again.PasswordHash)
}

func TestStore_ConcurrentInsertSameUsername(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			status, err := s.Insert(ctx, models.NewCredential("alice01", []byte(fmt.Sprint(i)), []byte("h"), 1))
			assert.NoError(t, err)
			if status == interfaces.InsertCreated {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Closed(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	require.NoError(t, s.Ping(ctx))
	require.NoError(t, s.EnsureIndices(ctx))
	require.NoError(t, s.Close(ctx))

	_, err := s.GetByUsername(ctx, "alice01")
	assert.ErrorIs(t, err, credentialstore.ErrClosed)
	_, err = s.Insert(ctx, models.NewCredential("alice01", nil, nil, 1))
	assert.ErrorIs(t, err, credentialstore.ErrClosed)
	assert.ErrorIs(t, s.Ping(ctx), credentialstore.ErrClosed)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewStore()

	_, err := s.GetByUsername(ctx, "alice01")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Insert(ctx, models.NewCredential("alice01", nil, nil, 1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, s.Len())
}

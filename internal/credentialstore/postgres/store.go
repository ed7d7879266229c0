package postgres

import (
	"context"
	"fmt"
	"regexp"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/haguru/credkeeper/internal/credentialstore"
	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/models"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

const createTableStmt = `CREATE TABLE IF NOT EXISTS %s (
	id UUID PRIMARY KEY,
	username TEXT NOT NULL UNIQUE,
	password_salt BYTEA NOT NULL,
	password_hash BYTEA NOT NULL,
	iterations INTEGER NOT NULL CHECK (iterations > 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// PostgresCredentialStore implements CredentialStore on a PostgreSQL table
// whose username column carries a UNIQUE constraint.
type PostgresCredentialStore struct {
	dbClient interfaces.DBClient
	table    string
}

// NewPostgresCredentialStore creates a new PostgreSQL store instance.
func NewPostgresCredentialStore(dbClient interfaces.DBClient, table string) (*PostgresCredentialStore, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if table == "" {
		table = credentialstore.CredentialsCollection
	}
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &PostgresCredentialStore{dbClient: dbClient, table: table}, nil
}

// Insert writes the credential. A unique_violation on username is reported
// as InsertDuplicateUsername.
func (r *PostgresCredentialStore) Insert(ctx context.Context, credential *models.Credential) (interfaces.InsertStatus, error) {
	doc := map[string]any{
		credentialstore.FieldUsername:     credential.Username,
		credentialstore.FieldPasswordSalt: credential.PasswordSalt,
		credentialstore.FieldPasswordHash: credential.PasswordHash,
		credentialstore.FieldIterations:   credential.Iterations,
		credentialstore.FieldCreatedAt:    credential.CreatedAt,
	}
	// The client's InsertOne will generate the ID if not present

	insertedID, err := r.dbClient.InsertOne(ctx, r.table, doc)
	if err != nil {
		if isUniqueViolation(err) {
			return interfaces.InsertDuplicateUsername, nil
		}
		return interfaces.InsertCreated, errors.Wrap(err, "failed to insert credential into PostgreSQL")
	}
	strID, ok := insertedID.(string)
	if !ok {
		return interfaces.InsertCreated, errors.New("failed to assert inserted ID to string (expected UUID)")
	}
	credential.ID = strID
	return interfaces.InsertCreated, nil
}

// GetByUsername retrieves a credential by exact username.
func (r *PostgresCredentialStore) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	var credential models.Credential
	filter := map[string]any{credentialstore.FieldUsername: username}
	found, err := r.dbClient.FindOne(ctx, r.table, filter, &credential)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get credential by username from PostgreSQL")
	}
	if !found {
		return nil, nil
	}
	return &credential, nil
}

// EnsureIndices creates the table with its unique username constraint.
func (r *PostgresCredentialStore) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, r.table, CreateTableStatement(r.table))
}

func (r *PostgresCredentialStore) Ping(ctx context.Context) error {
	return r.dbClient.Ping(ctx)
}

// Close closes the PostgreSQL database connection.
func (r *PostgresCredentialStore) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

// CreateTableStatement returns the DDL for the credentials table.
func CreateTableStatement(table string) string {
	return fmt.Sprintf(createTableStmt, table)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

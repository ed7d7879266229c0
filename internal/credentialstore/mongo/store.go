package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongosdk "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/haguru/credkeeper/internal/credentialstore"
	"github.com/haguru/credkeeper/internal/interfaces"
	"github.com/haguru/credkeeper/internal/models"
)

const usernameIndexName = "username_unique"

// credentialDocument is the BSON shape of a stored credential.
type credentialDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordSalt []byte             `bson:"password_salt"`
	PasswordHash []byte             `bson:"password_hash"`
	Iterations   int                `bson:"iterations"`
	CreatedAt    time.Time          `bson:"created_at"`
}

// MongoCredentialStore implements CredentialStore using the generic DBClient.
// Uniqueness relies on the unique index created by EnsureIndices.
type MongoCredentialStore struct {
	dbClient   interfaces.DBClient
	collection string
}

// NewMongoCredentialStore creates a new MongoDB store instance.
func NewMongoCredentialStore(dbClient interfaces.DBClient, collection string) (*MongoCredentialStore, error) {
	if dbClient == nil {
		return nil, fmt.Errorf("dbClient cannot be nil")
	}
	if collection == "" {
		collection = credentialstore.CredentialsCollection
	}
	return &MongoCredentialStore{dbClient: dbClient, collection: collection}, nil
}

// Insert saves a new credential; MongoDB generates the ObjectID.
func (r *MongoCredentialStore) Insert(ctx context.Context, credential *models.Credential) (interfaces.InsertStatus, error) {
	doc := bson.M{
		credentialstore.FieldUsername:     credential.Username,
		credentialstore.FieldPasswordSalt: credential.PasswordSalt,
		credentialstore.FieldPasswordHash: credential.PasswordHash,
		credentialstore.FieldIterations:   credential.Iterations,
		credentialstore.FieldCreatedAt:    credential.CreatedAt,
	}

	insertedID, err := r.dbClient.InsertOne(ctx, r.collection, doc)
	if err != nil {
		if mongosdk.IsDuplicateKeyError(err) {
			return interfaces.InsertDuplicateUsername, nil
		}
		return interfaces.InsertCreated, errors.Wrap(err, "failed to insert credential into MongoDB")
	}

	objID, ok := insertedID.(primitive.ObjectID)
	if !ok {
		return interfaces.InsertCreated, errors.New("failed to assert inserted ID to ObjectID")
	}
	credential.ID = objID.Hex()
	return interfaces.InsertCreated, nil
}

// GetByUsername retrieves a credential by exact username.
func (r *MongoCredentialStore) GetByUsername(ctx context.Context, username string) (*models.Credential, error) {
	var doc credentialDocument
	filter := bson.M{credentialstore.FieldUsername: username}
	found, err := r.dbClient.FindOne(ctx, r.collection, filter, &doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get credential by username from MongoDB")
	}
	if !found {
		return nil, nil
	}

	return &models.Credential{
		ID:           doc.ID.Hex(),
		Username:     doc.Username,
		PasswordSalt: doc.PasswordSalt,
		PasswordHash: doc.PasswordHash,
		Iterations:   doc.Iterations,
		CreatedAt:    doc.CreatedAt,
	}, nil
}

// EnsureIndices creates the unique index on username.
func (r *MongoCredentialStore) EnsureIndices(ctx context.Context) error {
	return r.dbClient.EnsureSchema(ctx, r.collection, UsernameIndex())
}

func (r *MongoCredentialStore) Ping(ctx context.Context) error {
	return r.dbClient.Ping(ctx)
}

// Close disconnects the MongoDB client.
func (r *MongoCredentialStore) Close(ctx context.Context) error {
	return r.dbClient.Disconnect(ctx)
}

// UsernameIndex is the unique index that enforces one credential per username.
func UsernameIndex() mongosdk.IndexModel {
	return mongosdk.IndexModel{
		Keys:    bson.D{{Key: credentialstore.FieldUsername, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(usernameIndexName),
	}
}

package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/haguru/credkeeper/config"
	"github.com/haguru/credkeeper/internal/interfaces"
)

const (
	MAXPOOLSIZE = 20
	IDFIELD     = "_id"
)

// MongoDBClient implements the interfaces.DBClient interface for MongoDB operations.
type MongoDBClient struct {
	ServerOpts       *options.ServerAPIOptions
	client           *mongo.Client
	db               *mongo.Database
	timeout          time.Duration
	validCollections map[string]bool // A map to validate collection names
	validFields      map[string]bool // A map to validate field names
	logger           interfaces.Logger
}

// NewMongoDB returns a MongoDB client built from the configuration.
func NewMongoDB(dbConfig *config.MongoDBConfig, logger interfaces.Logger) (*MongoDBClient, error) {
	if dbConfig == nil {
		return nil, fmt.Errorf("MongoDBClient: config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("MongoDBClient: logger cannot be nil")
	}

	db := &MongoDBClient{
		timeout:          dbConfig.Timeout,
		ServerOpts:       config.BuildServerAPIOptions(dbConfig.Options),
		validCollections: config.ListToMap(dbConfig.ValidCollections),
		validFields:      config.ListToMap(dbConfig.ValidFields),
		logger:           logger,
	}

	return db, nil
}

// Connect establishes a connection to the MongoDB database using the provided DSN (Data Source Name).
// The DSN should be in the format "mongodb://<host>:<port>/<database>"; the
// database name is taken from its path.
func (m *MongoDBClient) Connect(ctx context.Context, dsn string) error {
	if err := validateDSN(dsn); err != nil {
		return err
	}
	databaseName, err := getDBNameFromMongoDSN(dsn)
	if err != nil {
		return fmt.Errorf("MongoDBClient: Failed to extract database name from datasource name(dsn): %w", err)
	}

	// Set a timeout for the connection
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	clientOptions := options.Client().ApplyURI(dsn)

	// Set the server API options if provided
	if m.ServerOpts != nil {
		clientOptions.SetServerAPIOptions(m.ServerOpts)
	}
	clientOptions.SetMaxPoolSize(MAXPOOLSIZE)
	clientOptions.SetReadPreference(readpref.PrimaryPreferred())

	m.logger.Info("MongoDBClient: connecting", "database", databaseName)
	m.client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	if err = m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("MongoDBClient: Failed to connect to MongoDB server: %w", err)
	}
	m.logger.Info("MongoDBClient: connected to MongoDB server successfully")

	m.db = m.client.Database(databaseName)
	return nil
}

// Disconnect closes the connection to the MongoDB database.
func (m *MongoDBClient) Disconnect(ctx context.Context) error {
	m.logger.Info("MongoDBClient: disconnecting")
	if m.client != nil {
		return m.client.Disconnect(ctx)
	}

	return nil
}

// InsertOne inserts a document and returns its ID. Driver errors are wrapped
// so callers can still classify them with mongo.IsDuplicateKeyError.
func (m *MongoDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (any, error) {
	if err := m.checkCollection(collectionName); err != nil {
		return nil, err
	}
	m.logger.Debug("MongoDBClient: inserting one", "collection", collectionName)

	sanitizedDocument := m.sanitizeDocument(document)
	if sanitizedDocument == nil {
		return nil, fmt.Errorf("MongoDBClient: document for %s is empty after sanitizing", collectionName)
	}

	res, err := m.db.Collection(collectionName).InsertOne(ctx, sanitizedDocument)
	if err != nil {
		return nil, fmt.Errorf("MongoDBClient: Failed to insert one into %s: %w", collectionName, err)
	}

	return res.InsertedID, nil
}

// FindOne decodes the first document matching filter into result.
// It returns false with a nil error when no document matches.
func (m *MongoDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) (bool, error) {
	if err := m.checkCollection(collectionName); err != nil {
		return false, err
	}
	// filter values are never logged; they may carry user input
	m.logger.Debug("MongoDBClient: finding one", "collection", collectionName)

	sanitizedFilter := m.sanitizeDocument(filter)
	if sanitizedFilter == nil {
		return false, fmt.Errorf("MongoDBClient: filter for %s is empty after sanitizing", collectionName)
	}

	err := m.db.Collection(collectionName).FindOne(ctx, sanitizedFilter).Decode(result)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("MongoDBClient: Failed to find one in %s: %w", collectionName, err)
	}

	return true, nil
}

// Ping verifies the MongoDB connection health using a ping command.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}
	return m.client.Ping(ctx, nil)
}

// EnsureSchema creates the index given as a mongo.IndexModel on the collection.
// If the collection does not exist, it will be created automatically.
func (m *MongoDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	if m.db == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}

	model, ok := schema.(mongo.IndexModel)
	if !ok {
		return fmt.Errorf("EnsureSchema: expected mongo.IndexModel for MongoDB")
	}
	_, err := m.db.Collection(collectionName).Indexes().CreateOne(ctx, model)
	return err
}

func (m *MongoDBClient) checkCollection(collectionName string) error {
	if m.db == nil {
		return fmt.Errorf("MongoDBClient is not connected to a database")
	}
	if collectionName == "" {
		return fmt.Errorf("MongoDBClient: Collection name cannot be empty")
	}
	if !m.validCollections[collectionName] {
		return fmt.Errorf("MongoDBClient: Invalid collection name: %s", collectionName)
	}
	return nil
}

func validateDSN(dsn string) error {
	if dsn == "" {
		return fmt.Errorf("MongoDBClient: DSN is empty")
	}
	if !strings.HasPrefix(dsn, "mongodb://") && !strings.HasPrefix(dsn, "mongodb+srv://") {
		return fmt.Errorf("MongoDBClient: Invalid DSN format, expected 'mongodb://' or 'mongodb+srv://'")
	}
	return nil
}

// getDBNameFromMongoDSN extracts the database name from a MongoDB DSN.
func getDBNameFromMongoDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse MongoDB DSN: %w", err)
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("no database name found in MongoDB DSN path")
	}

	// If the path contains additional segments (e.g., /db/collection), use only the first as the database name.
	if idx := strings.Index(dbName, "/"); idx != -1 {
		dbName = dbName[:idx]
	}

	return dbName, nil
}

// sanitizeDocument drops the ID field, unknown fields and keys that could
// carry operators ("$" or "."). It returns nil when nothing usable is left.
func (m *MongoDBClient) sanitizeDocument(document interfaces.Document) bson.M {
	var docMap map[string]any
	switch d := document.(type) {
	case bson.M:
		docMap = d
	case map[string]any:
		docMap = d
	default:
		m.logger.Warn("MongoDBClient: document is not a map, cannot sanitize", "type", fmt.Sprintf("%T", document))
		return nil
	}

	sanitized := bson.M{}
	for key, value := range docMap {
		if key == IDFIELD {
			continue
		}
		if !m.validFields[key] || strings.ContainsAny(key, "$.") {
			m.logger.Warn("MongoDBClient: skipping invalid or unsafe field name", "field", key)
			continue
		}
		sanitized[key] = value
	}
	if len(sanitized) == 0 {
		return nil
	}

	return sanitized
}

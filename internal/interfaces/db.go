package interfaces

import "context"

// Document is a generic interface to represent data that can be stored
// and retrieved from the database. It could be a struct, a map[string]any,
// or any type that can be marshaled/unmarshaled by the specific database driver.
type Document interface{}

// DBClient defines the interface for a generic database client.
// It abstracts the operations the credential stores need across database types.
type DBClient interface {
	// Connect establishes a connection to the database using a DSN (Data Source Name).
	Connect(ctx context.Context, dsn string) error

	// Disconnect closes the database connection.
	Disconnect(ctx context.Context) error

	// InsertOne inserts a single document into the specified collection/table
	// and returns the ID of the inserted document.
	InsertOne(ctx context.Context, collectionName string, document Document) (any, error)

	// FindOne retrieves a single document matching filter into result.
	// It returns found=false with a nil error when nothing matches.
	FindOne(ctx context.Context, collectionName string, filter Document, result Document) (bool, error)

	// EnsureSchema creates the collection/table and its indices. The schema
	// document is database specific.
	EnsureSchema(ctx context.Context, collectionName string, schema Document) error

	// Ping checks the health of the database connection.
	Ping(ctx context.Context) error
}

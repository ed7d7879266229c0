package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // PostgreSQL driver for database/sql

	"github.com/haguru/credkeeper/internal/interfaces"
)

const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database.
	DefaultMaxOpenConns = 10
	// DefaultMaxIdleConns is the default maximum number of idle connections to the database.
	DefaultMaxIdleConns = 5
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused.
	DefaultConnMaxLifetime = 30 * time.Second

	driverName = "postgres"
	columnTag  = "db"
)

// PostgresDatabaseClient implements the DBClient interface for PostgreSQL databases.
type PostgresDatabaseClient struct {
	db              *sql.DB
	MaxOpenConns    int           // MaxOpenConns is the maximum number of open connections to the database
	MaxIdleConns    int           // MaxIdleConns is the maximum number of idle connections to the database
	ConnMaxLifetime time.Duration // ConnMaxLifetime is the maximum amount of time a connection may be reused
}

// NewPostgresDatabaseClient creates a client; zero values fall back to the defaults.
func NewPostgresDatabaseClient(maxOpenConns, maxIdleConns int, connMaxLifetime time.Duration) *PostgresDatabaseClient {
	if maxOpenConns <= 0 {
		maxOpenConns = DefaultMaxOpenConns
	}
	if maxIdleConns <= 0 {
		maxIdleConns = DefaultMaxIdleConns
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = DefaultConnMaxLifetime
	}
	return &PostgresDatabaseClient{
		MaxOpenConns:    maxOpenConns,
		MaxIdleConns:    maxIdleConns,
		ConnMaxLifetime: connMaxLifetime,
	}
}

// Connect establishes a connection to a PostgreSQL database.
func (p *PostgresDatabaseClient) Connect(ctx context.Context, dsn string) error {
	var err error
	p.db, err = sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open PostgreSQL database: %w", err)
	}

	p.db.SetMaxOpenConns(p.MaxOpenConns)
	p.db.SetMaxIdleConns(p.MaxIdleConns)
	p.db.SetConnMaxLifetime(p.ConnMaxLifetime)

	return p.Ping(ctx)
}

// Disconnect closes the PostgreSQL database connection.
func (p *PostgresDatabaseClient) Disconnect(ctx context.Context) error {
	if p.db != nil {
		return p.db.Close()
	}
	return nil
}

// InsertOne inserts a single document into a PostgreSQL table.
// 'document' is expected to be a map[string]any.
// It dynamically builds the INSERT query and generates a UUID id if absent.
func (p *PostgresDatabaseClient) InsertOne(ctx context.Context, tableName string, document interfaces.Document) (any, error) {
	if p.db == nil {
		return nil, fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	docMap, ok := document.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("PostgreSQL InsertOne expects document to be map[string]any")
	}

	if _, exists := docMap["id"]; !exists {
		docMap["id"] = uuid.New().String()
	}

	columns := make([]string, 0, len(docMap))
	placeholders := make([]string, 0, len(docMap))
	values := make([]any, 0, len(docMap))

	i := 1
	for col, val := range docMap {
		columns = append(columns, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i))
		values = append(values, val)
		i++
	}

	query := BuildInsertQuery(tableName, columns, placeholders)

	var insertedID string
	err := p.db.QueryRowContext(ctx, query, values...).Scan(&insertedID)
	if err != nil {
		return nil, err
	}
	return insertedID, nil
}

// BuildInsertQuery returns the INSERT ... RETURNING id statement.
// This is a safe use of fmt.Sprintf for SQL query construction, as the table
// and column names are controlled and not user input.
func BuildInsertQuery(tableName string, columns, placeholders []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id",
		tableName,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	) // #nosec G201
}

// FindOne retrieves a single row from a PostgreSQL table.
// 'filter' is expected to be a map[string]any for the WHERE clause.
// 'result' is a pointer to a struct; columns come from its `db` tags.
// It returns false with a nil error when no row matches.
func (p *PostgresDatabaseClient) FindOne(ctx context.Context, tableName string, filter interfaces.Document, result interfaces.Document) (bool, error) {
	if p.db == nil {
		return false, fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	filterMap, ok := filter.(map[string]any)
	if !ok {
		return false, fmt.Errorf("PostgreSQL FindOne expects filter to be map[string]any")
	}
	if len(filterMap) == 0 {
		return false, fmt.Errorf("PostgreSQL FindOne requires a non-empty filter")
	}

	whereClauses := make([]string, 0, len(filterMap))
	whereValues := make([]any, 0, len(filterMap))
	paramCount := 1
	for col, val := range filterMap {
		whereClauses = append(whereClauses, fmt.Sprintf("%s = $%d", col, paramCount))
		whereValues = append(whereValues, val)
		paramCount++
	}

	columns, fieldPointers, err := ScanTargets(result)
	if err != nil {
		return false, err
	}

	// This is a safe use of fmt.Sprintf for SQL query construction, as the table name is controlled and not user input.
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s LIMIT 1",
		strings.Join(columns, ", "),
		tableName,
		strings.Join(whereClauses, " AND "),
	) // #nosec G201

	err = p.db.QueryRowContext(ctx, query, whereValues...).Scan(fieldPointers...)
	if err == sql.ErrNoRows {
		// Reset the struct so it doesn't contain partial data
		elem := reflect.ValueOf(result).Elem()
		elem.Set(reflect.Zero(elem.Type()))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ScanTargets maps the `db`-tagged fields of the struct result points to into
// column names and scan destinations. Untagged fields and "-" are skipped.
func ScanTargets(result interfaces.Document) ([]string, []any, error) {
	resultValue := reflect.ValueOf(result)
	if resultValue.Kind() != reflect.Ptr || resultValue.Elem().Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("result must be a pointer to a struct")
	}
	elem := resultValue.Elem()

	columns := make([]string, 0, elem.NumField())
	fieldPointers := make([]any, 0, elem.NumField())
	for i := 0; i < elem.NumField(); i++ {
		tag := elem.Type().Field(i).Tag.Get(columnTag)
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tag)
		fieldPointers = append(fieldPointers, elem.Field(i).Addr().Interface())
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("result struct has no %q tagged fields", columnTag)
	}
	return columns, fieldPointers, nil
}

// Ping checks the health of the PostgreSQL connection.
func (p *PostgresDatabaseClient) Ping(ctx context.Context) error {
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}
	return p.db.PingContext(ctx)
}

// EnsureSchema executes the CREATE TABLE / CREATE INDEX statement given as schema.
// For true schema generality, you'd need a separate mechanism (e.g., migrations).
func (p *PostgresDatabaseClient) EnsureSchema(ctx context.Context, tableName string, schema interfaces.Document) error {
	// check if p.db is nil
	if p.db == nil {
		return fmt.Errorf("PostgresDatabaseClient is not connected to a database")
	}

	createStmt, ok := schema.(string)
	if !ok || createStmt == "" {
		return fmt.Errorf("EnsureSchema expects schema for %s to be a CREATE TABLE statement string", tableName)
	}
	_, err := p.db.ExecContext(ctx, createStmt)
	return err
}

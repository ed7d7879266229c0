package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/haguru/credkeeper/config"
	"github.com/haguru/credkeeper/pkg/zerolog"
)

func newTestClient(t *testing.T) *MongoDBClient {
	t.Helper()
	c, err := NewMongoDB(&config.MongoDBConfig{
		DSN:              "mongodb://localhost:27017/credkeeper",
		Collection:       "credentials",
		Timeout:          time.Second,
		ValidCollections: []string{"credentials"},
		ValidFields:      []string{"username", "password_hash"},
	}, zerolog.NewNopLogger())
	require.NoError(t, err)
	return c
}

func TestNewMongoDB(t *testing.T) {
	_, err := NewMongoDB(nil, zerolog.NewNopLogger())
	assert.Error(t, err)

	_, err = NewMongoDB(&config.MongoDBConfig{}, nil)
	assert.Error(t, err)

	c := newTestClient(t)
	assert.True(t, c.validCollections["credentials"])
	assert.True(t, c.validFields["username"])
	assert.Equal(t, time.Second, c.timeout)
}

func TestValidateDSN(t *testing.T) {
	tests := []struct {
		dsn     string
		wantErr bool
	}{
		{dsn: "", wantErr: true},
		{dsn: "postgres://localhost/db", wantErr: true},
		{dsn: "mongodb://localhost:27017/credkeeper"},
		{dsn: "mongodb+srv://cluster.example.com/credkeeper"},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			err := validateDSN(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestGetDBNameFromMongoDSN(t *testing.T) {
	tests := []struct {
		name    string
		dsn     string
		want    string
		wantErr bool
	}{
		{name: "simple", dsn: "mongodb://localhost:27017/credkeeper", want: "credkeeper"},
		{name: "with query", dsn: "mongodb://u:p@localhost:27017/credkeeper?authSource=admin", want: "credkeeper"},
		{name: "extra segments", dsn: "mongodb://localhost/credkeeper/credentials", want: "credkeeper"},
		{name: "missing", dsn: "mongodb://localhost:27017/", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getDBNameFromMongoDSN(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeDocument(t *testing.T) {
	c := newTestClient(t)

	tests := []struct {
		name string
		doc  any
		want bson.M
	}{
		{
			name: "bson.M keeps known fields",
			doc:  bson.M{"_id": "x", "username": "alice01", "role": "admin"},
			want: bson.M{"username": "alice01"},
		},
		{
			name: "plain map",
			doc:  map[string]any{"username": "alice01", "password_hash": []byte{1}},
			want: bson.M{"username": "alice01", "password_hash": []byte{1}},
		},
		{
			name: "operator keys are dropped",
			doc:  bson.M{"$where": "1", "username.x": "y"},
			want: nil,
		},
		{
			name: "non map",
			doc:  struct{ Username string }{"alice01"},
			want: nil,
		},
		{
			name: "nil",
			doc:  nil,
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.sanitizeDocument(tt.doc))
		})
	}
}

func TestMongoDBClient_NotConnected(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.InsertOne(ctx, "credentials", bson.M{"username": "alice01"})
	assert.Error(t, err)
	_, err = c.FindOne(ctx, "credentials", bson.M{"username": "alice01"}, &bson.M{})
	assert.Error(t, err)
	assert.Error(t, c.Ping(ctx))
	assert.Error(t, c.EnsureSchema(ctx, "credentials", nil))
	assert.NoError(t, c.Disconnect(ctx))
}

package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCredential(t *testing.T) {
	type args struct {
		username   string
		salt       []byte
		hash       []byte
		iterations int
	}
	tests := []struct {
		name string
		args args
	}{
		{
			name: "Create new credential with material",
			args: args{
				username:   "testuser",
				salt:       []byte{1, 2, 3},
				hash:       []byte{4, 5, 6},
				iterations: 1000,
			},
		},
		{
			name: "Create new credential with empty material",
			args: args{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCredential(tt.args.username, tt.args.salt, tt.args.hash, tt.args.iterations)
			assert.Empty(t, got.ID) // left for the store to populate
			assert.Equal(t, tt.args.username, got.Username)
			assert.Equal(t, tt.args.salt, got.PasswordSalt)
			assert.Equal(t, tt.args.hash, got.PasswordHash)
			assert.Equal(t, tt.args.iterations, got.Iterations)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestCredential_DoesNotExposeMaterial(t *testing.T) {
	c := NewCredential("alice01", []byte("saltsaltsalt"), []byte("hashhashhash"), 10)
	c.ID = "abc"

	s := c.String()
	assert.NotContains(t, s, "saltsaltsalt")
	assert.NotContains(t, s, "hashhashhash")
	assert.Contains(t, s, "alice01")

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	body := string(raw)
	assert.False(t, strings.Contains(body, "password_salt") || strings.Contains(body, "password_hash"))
	assert.NotContains(t, body, "iterations")
}

func TestCredential_Clone(t *testing.T) {
	c := NewCredential("alice01", []byte{1, 2}, []byte{3, 4}, 10)
	cp := c.Clone()
	cp.PasswordSalt[0] = 9
	cp.PasswordHash[0] = 9

	assert.Equal(t, byte(1), c.PasswordSalt[0])
	assert.Equal(t, byte(3), c.PasswordHash[0])

	var nilCred *Credential
	assert.Nil(t, nilCred.Clone())
	assert.Equal(t, "Credential(nil)", nilCred.String())
}

// Package credentialstore holds what the credential store adapters share.
package credentialstore

import "errors"

const (
	// CredentialsCollection is the default collection/table name.
	CredentialsCollection = "credentials"

	FieldID           = "id"
	FieldUsername     = "username"
	FieldPasswordSalt = "password_salt"
	FieldPasswordHash = "password_hash"
	FieldIterations   = "iterations"
	FieldCreatedAt    = "created_at"
)

// ErrClosed is returned by a store used after Close.
var ErrClosed = errors.New("credential store is closed")

package models

import (
	"fmt"
	"time"
)

// Credential represents the stored authentication record for a user.
// Salt, hash and iteration count are kept together so every record
// describes how to re-derive its own hash.
type Credential struct {
	ID           string    `bson:"-" mapstructure:"id" db:"id" json:"id"`
	Username     string    `bson:"username" mapstructure:"username" db:"username" json:"username"`
	PasswordSalt []byte    `bson:"password_salt" mapstructure:"password_salt" db:"password_salt" json:"-"`
	PasswordHash []byte    `bson:"password_hash" mapstructure:"password_hash" db:"password_hash" json:"-"`
	Iterations   int       `bson:"iterations" mapstructure:"iterations" db:"iterations" json:"-"`
	CreatedAt    time.Time `bson:"created_at" mapstructure:"created_at" db:"created_at" json:"created_at"`
}

// NewCredential creates a new Credential with the given material.
// Note: No validation is performed here.
func NewCredential(username string, salt, hash []byte, iterations int) *Credential {
	return &Credential{
		Username:     username,
		PasswordSalt: salt,
		PasswordHash: hash,
		Iterations:   iterations,
		CreatedAt:    time.Now().UTC(),
	}
}

// String never renders the salt or hash.
func (c *Credential) String() string {
	if c == nil {
		return "Credential(nil)"
	}
	return fmt.Sprintf("Credential(id=%q, username=%q, iterations=%d)", c.ID, c.Username, c.Iterations)
}

// Clone returns a deep copy so callers cannot mutate stored material.
func (c *Credential) Clone() *Credential {
	if c == nil {
		return nil
	}
	out := *c
	out.PasswordSalt = append([]byte(nil), c.PasswordSalt...)
	out.PasswordHash = append([]byte(nil), c.PasswordHash...)
	return &out
}

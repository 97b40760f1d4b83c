package models

import "time"

// DefaultSecretType is used when a secret is stored without a type.
const DefaultSecretType = "note"

// Secret is an opaque payload owned by exactly one user. EncryptedData is
// stored and returned as-is.
type Secret struct {
	ID            string
	UserID        string
	Title         string
	Type          string
	EncryptedData string
	LastAccessed  time.Time
}

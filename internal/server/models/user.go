// Package models defines server-side data models persisted in the database.
package models

import (
	"time"

	"github.com/dmitrijs2005/dialkeeper/internal/angles"
)

// User is a registered identity together with its dial credential.
type User struct {
	ID         string
	Name       string
	Email      string
	Credential angles.Credential
	CreatedAt  time.Time
}

// VerifiedUser is the public part of a user returned after a successful
// authentication.
type VerifiedUser struct {
	ID    string
	Name  string
	Email string
}

// Public strips the credential from u.
func (u *User) Public() *VerifiedUser {
	return &VerifiedUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

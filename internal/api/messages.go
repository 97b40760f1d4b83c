// Package api defines the VaultService wire contract: request and response
// messages, the CBOR codec they travel in, and the gRPC service descriptor
// with its client stub.
package api

// Angles travel as a list of arbitrary CBOR values so the server can report
// a wrong count or a non-numeric entry as invalid input rather than a
// decoding failure.

type RegisterRequest struct {
	Name   string `cbor:"name"`
	Email  string `cbor:"email"`
	Angles []any  `cbor:"angles"`
}

type RegisterResponse struct {
	Success bool   `cbor:"success"`
	UserID  string `cbor:"user_id"`
}

type AuthenticateRequest struct {
	Email  string `cbor:"email"`
	Angles []any  `cbor:"angles"`
}

type AuthenticateResponse struct {
	Success bool      `cbor:"success"`
	Token   string    `cbor:"token"`
	User    *UserInfo `cbor:"user,omitempty"`
}

// UserInfo is the public part of a verified user.
type UserInfo struct {
	ID    string `cbor:"id"`
	Name  string `cbor:"name"`
	Email string `cbor:"email"`
}

type ListSecretsRequest struct{}

type ListSecretsResponse struct {
	Secrets []SecretSummary `cbor:"secrets"`
}

// SecretSummary is a listing entry; it never carries the payload.
// LastAccessed is unix milliseconds.
type SecretSummary struct {
	ID           string `cbor:"id"`
	Title        string `cbor:"title"`
	Type         string `cbor:"type"`
	LastAccessed int64  `cbor:"last_accessed"`
}

type AddSecretRequest struct {
	Title string `cbor:"title"`
	Type  string `cbor:"type"`
	Data  string `cbor:"data"`
}

type AddSecretResponse struct {
	ID string `cbor:"id"`
}

type RevealSecretRequest struct {
	ID string `cbor:"id"`
}

type RevealSecretResponse struct {
	Secret SecretDetail `cbor:"secret"`
}

// SecretDetail is a secret with its opaque payload.
type SecretDetail struct {
	ID           string `cbor:"id"`
	Title        string `cbor:"title"`
	Type         string `cbor:"type"`
	Data         string `cbor:"data"`
	LastAccessed int64  `cbor:"last_accessed"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `cbor:"status"`
}

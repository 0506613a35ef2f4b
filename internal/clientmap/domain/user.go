package domain

import "time"

// User is an account identity. Records are scoped by the user id; the API
// surface only ever exposes id, email and display name.
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultScopes are the permission scopes minted into every access token.
// There is a single role: an authenticated user managing their own records.
var DefaultScopes = []string{"profile:read", "profile:write", "records:read", "records:write"}

package domain

import "time"

// Session is a server-side login session, identified by the fingerprint of
// its opaque refresh token. Refresh rotates the token in place; logout
// revokes the session.
type Session struct {
	ID        string
	UserID    string
	TokenHash string

	ExpiresAt time.Time
	Revoked   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PasswordReset is a single-use password reset token, stored hashed.
type PasswordReset struct {
	ID        string
	UserID    string
	TokenHash string

	ExpiresAt time.Time
	UsedAt    *time.Time

	CreatedAt time.Time
}

// Package service implements the application logic between the HTTP handlers
// and the store: auth and sessions, record CRUD with coordinate
// normalisation, list queries, and CSV import/export.
package service

import (
	"errors"
	"fmt"

	"clientmap/internal/clientmap/store"
	"clientmap/pkg/jwtx"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable to a caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmailTaken = errors.New("email already registered")

	// ErrSessionInvalid covers unknown, expired and revoked refresh tokens.
	ErrSessionInvalid = errors.New("session invalid or expired")

	// ErrResetInvalid covers unknown, expired and already-used reset tokens.
	ErrResetInvalid = errors.New("password reset token invalid or expired")

	ErrNotFound = errors.New("not found")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// Service wires the store, token keys and mailer together. One instance
// serves all requests.
type Service struct {
	store  store.Store
	keys   *jwtx.KeyManager
	issuer string
	mailer Mailer
}

func New(st store.Store, keys *jwtx.KeyManager, issuer string, mailer Mailer) *Service {
	if mailer == nil {
		mailer = &LogMailer{}
	}
	return &Service{store: st, keys: keys, issuer: issuer, mailer: mailer}
}

// Store exposes the underlying store for health checks.
func (s *Service) Store() store.Store { return s.store }

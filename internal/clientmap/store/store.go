package store

import (
	"context"
	"errors"
	"time"

	"clientmap/internal/clientmap/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement it. Sub-repositories keep concerns tidy and let tests
// fake one collection at a time.
type Store interface {
	Users() Users
	Records() Records
	Sessions() Sessions
	PasswordResets() PasswordResets

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transaction-scoped view of the store.
type Tx interface {
	Users() Users
	Records() Records
	Sessions() Sessions
	PasswordResets() PasswordResets
}

type Users interface {
	// GetByID returns a user by id.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmail is used during login and reset-request.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// Create inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when the email is taken.
	Create(ctx context.Context, u domain.User) error

	// UpdatePasswordHash sets the password hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error
}

type Records interface {
	// GetByID returns a record by id, regardless of owner; callers enforce
	// ownership.
	GetByID(ctx context.Context, id string) (domain.ClientRecord, error)

	// ListByOwner returns the owner's full record set ordered by id, which
	// for ULIDs is creation order. Downstream ordering is the pipeline's
	// concern.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.ClientRecord, error)

	// Create inserts a new record.
	Create(ctx context.Context, r domain.ClientRecord) error

	// Update applies a partial update and bumps updated_at.
	Update(ctx context.Context, id string, p domain.ClientPatch) error

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}

type Sessions interface {
	Create(ctx context.Context, s domain.Session) error

	// GetByTokenHash looks a session up by its refresh-token fingerprint.
	GetByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// RotateToken swaps the token fingerprint and extends expiry.
	RotateToken(ctx context.Context, id, newHash string, expiresAt time.Time) error

	// Revoke marks a session revoked.
	Revoke(ctx context.Context, id string) error

	// DeleteExpired removes sessions past their expiry, returning the count.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type PasswordResets interface {
	Create(ctx context.Context, pr domain.PasswordReset) error

	GetByTokenHash(ctx context.Context, hash string) (domain.PasswordReset, error)

	// MarkUsed stamps the token as consumed; a used token never verifies
	// again.
	MarkUsed(ctx context.Context, id string) error

	// DeleteExpired removes reset tokens past their expiry.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

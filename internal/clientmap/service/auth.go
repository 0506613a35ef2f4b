package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"clientmap/internal/clientmap/domain"
	"clientmap/internal/clientmap/store"
	"clientmap/pkg/cryptox"
	"clientmap/pkg/idx"
	"clientmap/pkg/jwtx"
	"clientmap/pkg/slogx"
)

const (
	minPasswordLength = 8
	resetTokenTTL     = 30 * time.Minute
)

// TokenPair is what login and refresh hand back: a short-lived access token
// and the opaque refresh token that carries the session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// Register creates a new account. The email is lowercased so logins are
// case-insensitive.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	displayName = strings.TrimSpace(displayName)

	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, invalid("email", "must be a valid email address")
	}
	if len(password) < minPasswordLength {
		return domain.User{}, invalid("password", "must be at least 8 characters")
	}
	if displayName == "" {
		displayName = email[:strings.Index(email, "@")]
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrEmailTaken
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login verifies credentials and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, err
	}

	refreshToken, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return TokenPair{}, err
	}

	now := time.Now().UTC()
	session := domain.Session{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(refreshToken),
		ExpiresAt: now.Add(jwtx.DefaultRefreshTokenTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Sessions().Create(ctx, session); err != nil {
		return TokenPair{}, err
	}

	access, err := s.mintAccessToken(user, session.ID, now)
	if err != nil {
		return TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("user logged in",
		slog.String("user_id", user.ID),
		slog.String("session_id", session.ID),
	)

	return TokenPair{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(jwtx.DefaultAccessTokenTTL.Seconds()),
	}, nil
}

// Refresh rotates the refresh token and mints a fresh access token. The old
// refresh token stops working immediately.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	session, err := s.lookupSession(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, err
	}

	user, err := s.store.Users().GetByID(ctx, session.UserID)
	if err != nil {
		return TokenPair{}, err
	}

	newToken, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return TokenPair{}, err
	}

	now := time.Now().UTC()
	newExpiry := now.Add(jwtx.DefaultRefreshTokenTTL)
	if err := s.store.Sessions().RotateToken(ctx, session.ID, cryptox.FingerprintToken(newToken), newExpiry); err != nil {
		return TokenPair{}, err
	}

	access, err := s.mintAccessToken(user, session.ID, now)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  access,
		RefreshToken: newToken,
		ExpiresIn:    int64(jwtx.DefaultAccessTokenTTL.Seconds()),
	}, nil
}

// Logout revokes the session behind a refresh token. Unknown tokens succeed
// silently; logout is idempotent.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.lookupSession(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrSessionInvalid) {
			return nil
		}
		return err
	}
	return s.store.Sessions().Revoke(ctx, session.ID)
}

// ChangePassword re-verifies the current password before applying the new
// one.
func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return invalid("new_password", "must be at least 8 characters")
	}

	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return ErrInvalidCredentials
		}
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.store.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", userID))
	return nil
}

// RequestPasswordReset issues a reset token for the account. Unknown emails
// succeed silently so the endpoint cannot be used to probe for accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	reset := domain.PasswordReset{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(resetTokenTTL),
		CreatedAt: now,
	}
	if err := s.store.PasswordResets().Create(ctx, reset); err != nil {
		return err
	}

	return s.mailer.SendPasswordReset(ctx, email, token)
}

// ConfirmPasswordReset consumes a reset token and sets the new password. All
// of the user's sessions stay valid; only the password changes.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return invalid("new_password", "must be at least 8 characters")
	}

	reset, err := s.store.PasswordResets().GetByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrResetInvalid
		}
		return err
	}
	if reset.UsedAt != nil || time.Now().UTC().After(reset.ExpiresAt) {
		return ErrResetInvalid
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, reset.UserID, hash); err != nil {
			return err
		}
		return tx.PasswordResets().MarkUsed(ctx, reset.ID)
	})
}

// GetUser returns the account behind an id.
func (s *Service) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *Service) lookupSession(ctx context.Context, refreshToken string) (domain.Session, error) {
	session, err := s.store.Sessions().GetByTokenHash(ctx, cryptox.FingerprintToken(refreshToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrSessionInvalid
		}
		return domain.Session{}, err
	}
	if session.Revoked || time.Now().UTC().After(session.ExpiresAt) {
		return domain.Session{}, ErrSessionInvalid
	}
	return session, nil
}

func (s *Service) mintAccessToken(user domain.User, sessionID string, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(
		user.ID, sessionID,
		domain.DefaultScopes,
		jwtx.DefaultAccessTokenTTL,
		s.issuer, user.Email, user.DisplayName,
		now,
	)
	return s.keys.GetSigner().Sign(claims)
}

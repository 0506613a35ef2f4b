package service

import (
	"context"
	"log/slog"

	"clientmap/pkg/slogx"
)

// Mailer delivers password reset tokens out of band. The deployment decides
// the transport; the service only hands over the raw token.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, token string) error
}

// LogMailer writes the reset token to the structured log instead of sending
// mail. Suitable for development and for tests that fish the token out of
// the log stream.
type LogMailer struct{}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	slogx.FromContext(ctx).Info("password reset requested",
		slog.String("email", email),
		slog.String("reset_token", token),
	)
	return nil
}

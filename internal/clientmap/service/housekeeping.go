package service

import (
	"context"
	"log/slog"
	"time"

	"clientmap/pkg/slogx"
)

// DefaultHousekeepingInterval is how often expired sessions and reset tokens
// are purged.
const DefaultHousekeepingInterval = time.Hour

// RunHousekeeping purges expired sessions and password reset tokens on a
// fixed interval until the context is cancelled. Meant to run as a
// goroutine next to the HTTP server.
func (s *Service) RunHousekeeping(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultHousekeepingInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.purgeExpired(ctx)
		}
	}
}

func (s *Service) purgeExpired(ctx context.Context) {
	now := time.Now().UTC()
	log := slogx.FromContext(ctx)

	sessions, err := s.store.Sessions().DeleteExpired(ctx, now)
	if err != nil {
		log.Error("failed to purge expired sessions", slog.String("error", err.Error()))
	}
	resets, err := s.store.PasswordResets().DeleteExpired(ctx, now)
	if err != nil {
		log.Error("failed to purge expired reset tokens", slog.String("error", err.Error()))
	}

	if sessions > 0 || resets > 0 {
		log.Info("purged expired auth state",
			slog.Int64("sessions", sessions),
			slog.Int64("reset_tokens", resets),
		)
	}
}

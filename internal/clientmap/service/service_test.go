package service

import (
	"context"
	"sync"
	"testing"

	"clientmap/internal/clientmap/domain"
	"clientmap/internal/clientmap/store/drivers/sqlite"
	"clientmap/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

// captureMailer records reset tokens instead of delivering them.
type captureMailer struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (m *captureMailer) SendPasswordReset(_ context.Context, email, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tokens == nil {
		m.tokens = make(map[string]string)
	}
	m.tokens[email] = token
	return nil
}

func (m *captureMailer) token(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[email]
}

func newTestService(t *testing.T) (*Service, *captureMailer) {
	t.Helper()

	st, err := sqlite.NewStore("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	keys, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "clientmap-test", NumKeys: 1})
	require.NoError(t, err)

	mailer := &captureMailer{}
	return New(st, keys, "clientmap-test", mailer), mailer
}

func registerUser(t *testing.T, svc *Service, email string) domain.User {
	t.Helper()

	user, err := svc.Register(context.Background(), email, "hunter2hunter2", "Test User")
	require.NoError(t, err)
	return user
}

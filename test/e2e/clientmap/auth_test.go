package clientmap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"clientmap/pkg/crmsdk"
)

func TestAuthFlow(t *testing.T) {
	api := startServer(t)
	ctx := context.Background()

	tokens := register(t, api, "auth@example.com")

	t.Run("me reflects the registered profile", func(t *testing.T) {
		me, err := api.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "auth@example.com", me.Email)
		require.Equal(t, "E2E", me.DisplayName)
	})

	t.Run("refresh rotation invalidates the old token", func(t *testing.T) {
		next, err := api.Refresh(ctx, tokens.RefreshToken)
		require.NoError(t, err)

		_, err = api.Refresh(ctx, tokens.RefreshToken)
		require.True(t, crmsdk.IsStatus(err, 401))

		tokens = next
	})

	t.Run("password change requires the current password", func(t *testing.T) {
		err := api.ChangePassword(ctx, crmsdk.ChangePasswordRequest{
			CurrentPassword: "wrong", NewPassword: "a-brand-new-pass",
		})
		require.True(t, crmsdk.IsStatus(err, 401))

		err = api.ChangePassword(ctx, crmsdk.ChangePasswordRequest{
			CurrentPassword: "hunter2hunter2", NewPassword: "a-brand-new-pass",
		})
		require.NoError(t, err)

		_, err = api.Login(ctx, crmsdk.LoginRequest{
			Email: "auth@example.com", Password: "a-brand-new-pass",
		})
		require.NoError(t, err)
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		require.NoError(t, api.Logout(ctx, tokens.RefreshToken))
		_, err := api.Refresh(ctx, tokens.RefreshToken)
		require.True(t, crmsdk.IsStatus(err, 401))
	})
}

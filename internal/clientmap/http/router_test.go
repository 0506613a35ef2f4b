package http

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"clientmap/internal/clientmap/metrics"
	"clientmap/internal/clientmap/service"
	"clientmap/internal/clientmap/store/drivers/sqlite"
	"clientmap/pkg/crmsdk"
	"clientmap/pkg/jwtx"
	"clientmap/pkg/slogx"

	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	keys, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{Issuer: "clientmap-test", NumKeys: 1})
	require.NoError(t, err)

	svc := service.New(st, keys, "clientmap-test", &service.LogMailer{})
	mux := NewRouter(RouterConfig{
		Service:  svc,
		Verifier: keys.Verifier,
		KeySet:   keys.KeySet,
		Metrics:  metrics.New(),
	})

	log := slogx.New(slogx.Config{Service: "clientmap-test", Format: "text", Level: "error"})
	srv := httptest.NewServer(slogx.HTTPMiddleware(log)(mux))
	t.Cleanup(srv.Close)
	return srv
}

func loginTestUser(t *testing.T, api *crmsdk.Client, email string) crmsdk.TokenResponse {
	t.Helper()
	ctx := context.Background()

	_, err := api.Register(ctx, crmsdk.RegisterRequest{
		Email: email, Password: "hunter2hunter2", DisplayName: "Test",
	})
	require.NoError(t, err)

	tokens, err := api.Login(ctx, crmsdk.LoginRequest{Email: email, Password: "hunter2hunter2"})
	require.NoError(t, err)
	api.SetAccessToken(tokens.AccessToken)
	return tokens
}

func TestAuthEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	api := crmsdk.NewClient(srv.URL)
	ctx := context.Background()

	t.Run("register login me", func(t *testing.T) {
		tokens := loginTestUser(t, api, "ana@example.com")
		require.Equal(t, "Bearer", tokens.TokenType)

		me, err := api.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, "ana@example.com", me.Email)
	})

	t.Run("protected route without token", func(t *testing.T) {
		anon := crmsdk.NewClient(srv.URL)
		_, err := anon.Me(ctx)
		require.Error(t, err)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		_, err := api.Register(ctx, crmsdk.RegisterRequest{
			Email: "ana@example.com", Password: "hunter2hunter2",
		})
		require.True(t, crmsdk.IsStatus(err, 409), "expected 409, got %v", err)
	})

	t.Run("refresh and logout", func(t *testing.T) {
		tokens, err := api.Login(ctx, crmsdk.LoginRequest{
			Email: "ana@example.com", Password: "hunter2hunter2",
		})
		require.NoError(t, err)

		next, err := api.Refresh(ctx, tokens.RefreshToken)
		require.NoError(t, err)
		require.NotEqual(t, tokens.RefreshToken, next.RefreshToken)

		require.NoError(t, api.Logout(ctx, next.RefreshToken))
		_, err = api.Refresh(ctx, next.RefreshToken)
		require.True(t, crmsdk.IsStatus(err, 401), "expected 401, got %v", err)
	})
}

func TestClientEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	api := crmsdk.NewClient(srv.URL)
	ctx := context.Background()
	loginTestUser(t, api, "records@example.com")

	created, err := api.CreateClient(ctx, crmsdk.CreateClientRequest{
		FirstName: "Ana", LastName: "Alvarez",
		Phone: "2954123456",
		Lat:   "-36,6384", Lng: "-64,2745",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Lat)
	require.InDelta(t, -36.6384, *created.Lat, 1e-9)

	t.Run("get and list", func(t *testing.T) {
		got, err := api.GetClient(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, "Ana", got.FirstName)

		list, err := api.ListClients(ctx, crmsdk.ListClientsQuery{Search: "alva"})
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
	})

	t.Run("patch clears a half-updated pair", func(t *testing.T) {
		lat := "-36.63"
		got, err := api.UpdateClient(ctx, created.ID, crmsdk.UpdateClientRequest{Lat: &lat})
		require.NoError(t, err)
		require.Nil(t, got.Lat)
		require.Nil(t, got.Lng)
	})

	t.Run("stats and normalize", func(t *testing.T) {
		_, err := api.CreateClient(ctx, crmsdk.CreateClientRequest{FirstName: "Ben Benitez"})
		require.NoError(t, err)

		stats, err := api.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, 2, stats.Total)

		report, err := api.NormalizeNames(ctx)
		require.NoError(t, err)
		require.Equal(t, 1, report.Updated)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		_, err := api.GetClient(ctx, "01JUNKJUNKJUNKJUNKJUNKJUNK")
		require.True(t, crmsdk.IsStatus(err, 404), "expected 404, got %v", err)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, api.DeleteClient(ctx, created.ID))
		_, err := api.GetClient(ctx, created.ID)
		require.True(t, crmsdk.IsStatus(err, 404))
	})
}

func TestImportExportEndpoints(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	api := crmsdk.NewClient(srv.URL)
	ctx := context.Background()
	loginTestUser(t, api, "bulk@example.com")

	csv := "Nombre,Apellido,Latitud,Longitud\n" +
		`Ana,Alvarez,"-36,6384","-64,2745"` + "\n" +
		"Ben,Benitez,,\n" +
		",,,\n"

	report, err := api.ImportClients(ctx, "clients.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 2, report.Imported)
	require.Equal(t, 1, report.Skipped)

	body, filename, err := api.ExportClients(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(filename, "clients_"))

	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "first_name,last_name,phone,address,lat,lng,notes", lines[0])
	require.Contains(t, lines[1], "Ana")
}

func TestMapStateEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t)
	api := crmsdk.NewClient(srv.URL)
	ctx := context.Background()
	loginTestUser(t, api, "map@example.com")

	located, err := api.CreateClient(ctx, crmsdk.CreateClientRequest{
		FirstName: "Ana", LastName: "Alvarez",
		Lat: "-36.6384", Lng: "-64.2745",
	})
	require.NoError(t, err)
	_, err = api.CreateClient(ctx, crmsdk.CreateClientRequest{FirstName: "Ben", LastName: "Benitez"})
	require.NoError(t, err)

	t.Run("markers at street zoom", func(t *testing.T) {
		state, err := api.MapState(ctx, "", 16)
		require.NoError(t, err)
		require.Len(t, state.Markers, 1)
		require.Nil(t, state.FlyTo)
	})

	t.Run("selection flies the camera", func(t *testing.T) {
		state, err := api.MapState(ctx, located.ID, 16)
		require.NoError(t, err)
		require.NotNil(t, state.FlyTo)
		require.Equal(t, 16, state.FlyTo.Zoom)
		require.True(t, state.FlyTo.Animate)
	})
}

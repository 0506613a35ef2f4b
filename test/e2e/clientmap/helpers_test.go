package clientmap_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"clientmap/pkg/crmsdk"
)

// startServer builds the service image from the repo root and runs it with
// in-memory sqlite and relaxed rate limits so the suite isn't throttled.
func startServer(t *testing.T) *crmsdk.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping e2e in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		FromDockerfile: testcontainers.FromDockerfile{
			Context:    "../../..",
			Dockerfile: "Dockerfile",
		},
		ExposedPorts: []string{"8080/tcp"},
		Env: map[string]string{
			"CLIENTMAP_DB_DSN":            "file::memory:?cache=shared",
			"CLIENTMAP_LOG_FORMAT":        "text",
			"RATELIMIT_STRICT_REQUESTS":   "1000",
			"RATELIMIT_MODERATE_REQUESTS": "1000",
			"RATELIMIT_LENIENT_REQUESTS":  "1000",
		},
		WaitingFor: wait.ForHTTP("/readyz").WithPort("8080/tcp").
			WithStartupTimeout(2 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "8080/tcp")
	require.NoError(t, err)

	return crmsdk.NewClient(fmt.Sprintf("http://%s:%s", host, port.Port()))
}

func register(t *testing.T, api *crmsdk.Client, email string) crmsdk.TokenResponse {
	t.Helper()
	ctx := context.Background()

	_, err := api.Register(ctx, crmsdk.RegisterRequest{
		Email: email, Password: "hunter2hunter2", DisplayName: "E2E",
	})
	require.NoError(t, err)

	tokens, err := api.Login(ctx, crmsdk.LoginRequest{Email: email, Password: "hunter2hunter2"})
	require.NoError(t, err)
	api.SetAccessToken(tokens.AccessToken)
	return tokens
}

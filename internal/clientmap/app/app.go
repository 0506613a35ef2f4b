// Package app assembles the service: configuration, store, keys, HTTP server
// and background housekeeping.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	clientmaphttp "clientmap/internal/clientmap/http"
	"clientmap/internal/clientmap/metrics"
	"clientmap/internal/clientmap/service"
	"clientmap/internal/clientmap/store"
	"clientmap/internal/clientmap/store/drivers/postgres"
	"clientmap/internal/clientmap/store/drivers/sqlite"
	"clientmap/pkg/cryptox"
	"clientmap/pkg/jwtx"
	"clientmap/pkg/slogx"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// App owns the assembled service and its lifecycle.
type App struct {
	cfg    Config
	log    *slog.Logger
	store  store.Store
	server *http.Server

	cancelHousekeeping context.CancelFunc
}

// New wires everything up but does not start listening.
func New(cfg Config) (*App, error) {
	log := slogx.New(slogx.Config{
		Service: "clientmap",
		Version: Version,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	if cfg.PepperFile != "" {
		cryptox.SetPepperPath(cfg.PepperFile)
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	keys, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumJWTKeys,
	})
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("generate signing keys: %w", err)
	}

	svc := service.New(st, keys, cfg.Issuer, nil)
	m := metrics.New()

	mux := clientmaphttp.NewRouter(clientmaphttp.RouterConfig{
		Service:       svc,
		Verifier:      keys.Verifier,
		KeySet:        keys.KeySet,
		Metrics:       m,
		EnableSwagger: cfg.EnableSwagger,
	})

	hkCtx, cancel := context.WithCancel(context.Background())
	hkCtx = slogx.WithContext(hkCtx, log)
	go svc.RunHousekeeping(hkCtx, cfg.HousekeepingInterval)

	return &App{
		cfg:   cfg,
		log:   log,
		store: st,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           slogx.HTTPMiddleware(log)(mux),
			ReadHeaderTimeout: 5 * time.Second,
		},
		cancelHousekeeping: cancel,
	}, nil
}

// Run blocks serving HTTP until the server is shut down.
func (a *App) Run() error {
	a.log.Info("listening",
		slog.String("addr", a.cfg.Addr),
		slog.String("db_driver", a.cfg.DBDriver),
	)

	if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within the configured grace period,
// stops housekeeping and closes the store.
func (a *App) Shutdown() error {
	a.cancelHousekeeping()

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownGrace)
	defer cancel()

	err := a.server.Shutdown(ctx)
	if closeErr := a.store.Close(); err == nil {
		err = closeErr
	}
	return err
}

func openStore(cfg Config) (store.Store, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return sqlite.NewStore(cfg.DBDSN)
	case "postgres":
		return postgres.NewStore(cfg.DBDSN)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}
}

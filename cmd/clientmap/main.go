package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"clientmap/internal/clientmap/app"
)

//	@title			Clientmap API
//	@version		1.0
//	@description	Client records with search, map positions and CSV import/export.
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer access token from /v1/auth/login.
func main() {
	a, err := app.New(app.LoadConfig())
	if err != nil {
		slog.Error("startup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		slog.Info("shutting down")
		if err := a.Shutdown(); err != nil {
			slog.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	if err := a.Run(); err != nil {
		slog.Error("server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

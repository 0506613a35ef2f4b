package http

import (
	"net/http"

	"clientmap/internal/clientmap/metrics"
	"clientmap/internal/clientmap/service"
	"clientmap/pkg/httpx"
	"clientmap/pkg/jwtx"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "clientmap/api/clientmap" // swagger docs registration
)

// RouterConfig wires the router's collaborators.
type RouterConfig struct {
	Service  *service.Service
	Verifier jwtx.Verifier
	KeySet   *jwtx.KeySet
	Metrics  *metrics.Metrics

	// EnableSwagger mounts /swagger/ with the generated API docs.
	EnableSwagger bool
}

// NewRouter builds the full route table. Method-qualified patterns keep the
// mux strict: a wrong method 405s instead of falling through.
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	registerOpsRoutes(mux, cfg)
	registerAuthRoutes(mux, cfg)
	registerProfileRoutes(mux, cfg)
	registerClientRoutes(mux, cfg)
	registerMapRoutes(mux, cfg)

	if cfg.EnableSwagger {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}

	return mux
}

func registerOpsRoutes(mux *http.ServeMux, cfg RouterConfig) {
	h := &OpsHandler{Service: cfg.Service, KeySet: cfg.KeySet}

	handle(mux, cfg, "GET /livez", h.Livez,
		httpx.RateLimitByIP(httpx.LenientLimit))
	handle(mux, cfg, "GET /readyz", h.Readyz,
		httpx.RateLimitByIP(httpx.LenientLimit))
	handle(mux, cfg, "GET /.well-known/jwks.json", h.JWKS,
		httpx.RateLimitByIP(httpx.PublicLimit))

	mux.Handle("GET /metrics", cfg.Metrics.Handler())
}

func registerAuthRoutes(mux *http.ServeMux, cfg RouterConfig) {
	h := &AuthHandler{Service: cfg.Service}

	// Credential endpoints are the brute-force surface; strict IP limits.
	handle(mux, cfg, "POST /v1/auth/register", h.Register,
		httpx.RateLimitByIP(httpx.StrictLimit))
	handle(mux, cfg, "POST /v1/auth/login", h.Login,
		httpx.RateLimitByIP(httpx.StrictLimit))
	handle(mux, cfg, "POST /v1/auth/password-reset", h.RequestPasswordReset,
		httpx.RateLimitByIP(httpx.StrictLimit))
	handle(mux, cfg, "POST /v1/auth/password-reset/confirm", h.ConfirmPasswordReset,
		httpx.RateLimitByIP(httpx.StrictLimit))

	handle(mux, cfg, "POST /v1/auth/refresh", h.Refresh,
		httpx.RateLimitByIP(httpx.ModerateLimit))
	handle(mux, cfg, "POST /v1/auth/logout", h.Logout,
		httpx.RateLimitByIP(httpx.ModerateLimit))
}

func registerProfileRoutes(mux *http.ServeMux, cfg RouterConfig) {
	h := &MeHandler{Service: cfg.Service}

	handle(mux, cfg, "GET /v1/me", h.Me,
		httpx.Authenticate(cfg.Verifier),
		httpx.RequireAnyScope("profile:read"),
		httpx.RateLimitByUser(httpx.LenientLimit))
	handle(mux, cfg, "POST /v1/me/password", h.ChangePassword,
		httpx.Authenticate(cfg.Verifier),
		httpx.RequireAnyScope("profile:write"),
		httpx.RateLimitByUser(httpx.StrictLimit))
}

func registerClientRoutes(mux *http.ServeMux, cfg RouterConfig) {
	h := &ClientsHandler{Service: cfg.Service, Metrics: cfg.Metrics}
	ie := &ImportExportHandler{Service: cfg.Service, Metrics: cfg.Metrics}

	read := []httpx.Middleware{
		httpx.Authenticate(cfg.Verifier),
		httpx.RequireAnyScope("records:read"),
		httpx.RateLimitByUser(httpx.LenientLimit),
	}
	write := []httpx.Middleware{
		httpx.Authenticate(cfg.Verifier),
		httpx.RequireAnyScope("records:write"),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	}

	handle(mux, cfg, "GET /v1/clients", h.List, read...)
	handle(mux, cfg, "GET /v1/clients/stats", h.Stats, read...)
	handle(mux, cfg, "GET /v1/clients/export", ie.Export, read...)
	handle(mux, cfg, "GET /v1/clients/{id}", h.Get, read...)

	handle(mux, cfg, "POST /v1/clients", h.Create, write...)
	handle(mux, cfg, "POST /v1/clients/import", ie.Import, write...)
	handle(mux, cfg, "POST /v1/clients/normalize", h.Normalize, write...)
	handle(mux, cfg, "PATCH /v1/clients/{id}", h.Update, write...)
	handle(mux, cfg, "DELETE /v1/clients/{id}", h.Delete, write...)
}

func registerMapRoutes(mux *http.ServeMux, cfg RouterConfig) {
	h := &MapHandler{Service: cfg.Service}

	handle(mux, cfg, "GET /v1/map/state", h.State,
		httpx.Authenticate(cfg.Verifier),
		httpx.RequireAnyScope("records:read"),
		httpx.RateLimitByUser(httpx.LenientLimit))
}

// handle mounts a handler with its middleware chain and instrumentation.
func handle(mux *http.ServeMux, cfg RouterConfig, pattern string, fn http.HandlerFunc, mw ...httpx.Middleware) {
	mux.Handle(pattern, cfg.Metrics.Instrument(pattern, httpx.Chain(fn, mw...)))
}

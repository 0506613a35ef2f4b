package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"clientmap/internal/clientmap/service"
	"clientmap/pkg/jwtx"
)

// OpsHandler serves the operational endpoints: liveness, readiness and the
// JWKS document.
type OpsHandler struct {
	Service *service.Service
	KeySet  *jwtx.KeySet
}

// Livez godoc
//
//	@Summary	Liveness probe
//	@Tags		ops
//	@Success	200	{string}	string	"ok"
//	@Router		/livez [get]
func (h *OpsHandler) Livez(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Readyz godoc
//
//	@Summary	Readiness probe, checks database connectivity
//	@Tags		ops
//	@Success	200	{string}	string	"ok"
//	@Failure	503	{string}	string	"database unavailable"
//	@Router		/readyz [get]
func (h *OpsHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.Service.Store().Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("database unavailable"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// JWKS godoc
//
//	@Summary	Public signing keys
//	@Tags		ops
//	@Produce	json
//	@Success	200	{object}	jwtx.JWKS
//	@Router		/.well-known/jwks.json [get]
func (h *OpsHandler) JWKS(w http.ResponseWriter, r *http.Request) {
	// Keys are stable for the process lifetime; allow short-lived caching.
	w.Header().Set("Cache-Control", "public, max-age=300")
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.KeySet.JWKS())
}

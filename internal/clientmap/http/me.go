package http

import (
	"net/http"

	"clientmap/internal/clientmap/service"
	"clientmap/pkg/crmsdk"
	"clientmap/pkg/httpx"
)

// MeHandler serves the authenticated user's own profile.
type MeHandler struct {
	Service *service.Service
}

// Me godoc
//
//	@Summary		Get the authenticated user's profile
//	@Tags			profile
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	crmsdk.UserResponse
//	@Failure		401	{object}	crmsdk.APIError
//	@Router			/v1/me [get]
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUser(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserDTO(user))
}

// ChangePassword godoc
//
//	@Summary		Change the password, re-verifying the current one
//	@Tags			profile
//	@Accept			json
//	@Security		BearerAuth
//	@Success		204
//	@Failure		401	{object}	crmsdk.APIError
//	@Router			/v1/me/password [post]
func (h *MeHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.Service.ChangePassword(r.Context(), httpx.UserID(r.Context()), req.CurrentPassword, req.NewPassword)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

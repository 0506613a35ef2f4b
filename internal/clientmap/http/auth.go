package http

import (
	"net/http"

	"clientmap/internal/clientmap/service"
	"clientmap/pkg/crmsdk"
	"clientmap/pkg/httpx"
)

// AuthHandler serves registration, login and the session endpoints.
type AuthHandler struct {
	Service *service.Service
}

// Register godoc
//
//	@Summary		Register a new account
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	crmsdk.UserResponse
//	@Failure		400		{object}	crmsdk.APIError
//	@Failure		409		{object}	crmsdk.APIError
//	@Router			/v1/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.Service.Register(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserDTO(user))
}

// Login godoc
//
//	@Summary		Exchange credentials for a token pair
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	crmsdk.TokenResponse
//	@Failure		401		{object}	crmsdk.APIError
//	@Router			/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

// Refresh godoc
//
//	@Summary		Rotate a refresh token
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		crmsdk.RefreshRequest	true	"Current refresh token"
//	@Success		200		{object}	crmsdk.TokenResponse
//	@Failure		401		{object}	crmsdk.APIError
//	@Router			/v1/auth/refresh [post]
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pair, err := h.Service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tokenResponse(pair))
}

// Logout godoc
//
//	@Summary		Revoke the session behind a refresh token
//	@Tags			auth
//	@Accept			json
//	@Success		204
//	@Router			/v1/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.LogoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Service.Logout(r.Context(), req.RefreshToken); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RequestPasswordReset godoc
//
//	@Summary		Request a password reset token
//	@Description	Always returns 204, whether or not the email is known.
//	@Tags			auth
//	@Accept			json
//	@Success		204
//	@Router			/v1/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.PasswordResetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ConfirmPasswordReset godoc
//
//	@Summary		Consume a reset token and set a new password
//	@Tags			auth
//	@Accept			json
//	@Success		204
//	@Failure		400	{object}	crmsdk.APIError
//	@Router			/v1/auth/password-reset/confirm [post]
func (h *AuthHandler) ConfirmPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.PasswordResetConfirmRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.Service.ConfirmPasswordReset(r.Context(), req.Token, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func tokenResponse(pair service.TokenPair) crmsdk.TokenResponse {
	return crmsdk.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    pair.ExpiresIn,
	}
}

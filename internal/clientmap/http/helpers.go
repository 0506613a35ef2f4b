// Package http holds the HTTP surface: handlers, routing and the mapping
// between service errors and wire errors.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"clientmap/internal/clientmap/domain"
	"clientmap/internal/clientmap/pipeline"
	"clientmap/internal/clientmap/service"
	"clientmap/pkg/crmsdk"
	"clientmap/pkg/slogx"
)

const maxBodyBytes = 1 << 20 // 1 MiB for JSON bodies

// decodeJSON reads a JSON request body into v, rejecting unknown fields. It
// writes the error response itself and reports success.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		crmsdk.WriteError(w, http.StatusBadRequest, crmsdk.CodeInvalidRequest, "malformed JSON body")
		return false
	}
	return true
}

// writeServiceError translates service-level errors into wire errors. Unknown
// errors are logged and surface as a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		crmsdk.WriteError(w, http.StatusBadRequest, crmsdk.CodeInvalidRequest, vErr.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		crmsdk.WriteError(w, http.StatusUnauthorized, crmsdk.CodeUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrSessionInvalid):
		crmsdk.WriteError(w, http.StatusUnauthorized, crmsdk.CodeUnauthorized, "session invalid or expired")
	case errors.Is(err, service.ErrResetInvalid):
		crmsdk.WriteError(w, http.StatusBadRequest, crmsdk.CodeInvalidRequest, "reset token invalid or expired")
	case errors.Is(err, service.ErrEmailTaken):
		crmsdk.WriteError(w, http.StatusConflict, crmsdk.CodeConflict, "email already registered")
	case errors.Is(err, service.ErrNotFound):
		crmsdk.WriteError(w, http.StatusNotFound, crmsdk.CodeNotFound, "not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", slog.String("error", err.Error()))
		crmsdk.WriteError(w, http.StatusInternalServerError, crmsdk.CodeInternal, "internal error")
	}
}

func toRecordDTO(rec domain.ClientRecord) crmsdk.ClientRecord {
	out := crmsdk.ClientRecord{
		ID:        rec.ID,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Phone:     rec.Phone,
		Address:   rec.Address,
		Notes:     rec.Notes,
		CreatedAt: rec.CreatedAt.UnixMilli(),
		UpdatedAt: rec.UpdatedAt.UnixMilli(),
	}
	if rec.Position != nil {
		lat, lng := rec.Position.Lat, rec.Position.Lng
		out.Lat, out.Lng = &lat, &lng
	}
	return out
}

func toPageDTO(page pipeline.Page) crmsdk.ListClientsResponse {
	items := make([]crmsdk.ClientRecord, 0, len(page.Items))
	for _, rec := range page.Items {
		items = append(items, toRecordDTO(rec))
	}
	return crmsdk.ListClientsResponse{
		Items:      items,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		RangeStart: page.RangeStart,
		RangeEnd:   page.RangeEnd,
	}
}

func toUserDTO(u domain.User) crmsdk.UserResponse {
	return crmsdk.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.UnixMilli(),
	}
}

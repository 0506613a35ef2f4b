package http

import (
	"net/http"
	"strconv"

	"clientmap/internal/clientmap/metrics"
	"clientmap/internal/clientmap/pipeline"
	"clientmap/internal/clientmap/service"
	"clientmap/pkg/crmsdk"
	"clientmap/pkg/httpx"
)

// ClientsHandler serves the client record CRUD and list endpoints.
type ClientsHandler struct {
	Service *service.Service
	Metrics *metrics.Metrics
}

// Create godoc
//
//	@Summary		Create a client record
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		crmsdk.CreateClientRequest	true	"Record fields"
//	@Success		201		{object}	crmsdk.ClientRecord
//	@Failure		400		{object}	crmsdk.APIError
//	@Router			/v1/clients [post]
func (h *ClientsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.CreateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.Service.CreateRecord(r.Context(), httpx.UserID(r.Context()), service.RecordInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Address:   req.Address,
		LatText:   req.Lat,
		LngText:   req.Lng,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.Metrics.RecordsCreated.Inc()
	httpx.WriteJSON(w, http.StatusCreated, toRecordDTO(rec))
}

// Get godoc
//
//	@Summary		Fetch one client record
//	@Tags			clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Record id"
//	@Success		200	{object}	crmsdk.ClientRecord
//	@Failure		404	{object}	crmsdk.APIError
//	@Router			/v1/clients/{id} [get]
func (h *ClientsHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Service.GetRecord(r.Context(), httpx.UserID(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRecordDTO(rec))
}

// List godoc
//
//	@Summary		List client records
//	@Description	Search, filter, sort and paginate the caller's records. Pages are fixed at 50 items.
//	@Tags			clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			search		query		string	false	"Case-insensitive name or phone substring"
//	@Param			location	query		string	false	"all, with-location or without-location"
//	@Param			sort		query		string	false	"name-asc, name-desc, coords-first or address-asc"
//	@Param			page		query		int		false	"1-based page number"
//	@Success		200			{object}	crmsdk.ListClientsResponse
//	@Failure		400			{object}	crmsdk.APIError
//	@Router			/v1/clients [get]
func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		crmsdk.WriteError(w, http.StatusBadRequest, crmsdk.CodeInvalidRequest, err.Error())
		return
	}

	page, err := h.Service.ListRecords(r.Context(), httpx.UserID(r.Context()), q)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toPageDTO(page))
}

// Update godoc
//
//	@Summary		Partially update a client record
//	@Tags			clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Record id"
//	@Param			request	body		crmsdk.UpdateClientRequest	true	"Fields to change"
//	@Success		200		{object}	crmsdk.ClientRecord
//	@Failure		404		{object}	crmsdk.APIError
//	@Router			/v1/clients/{id} [patch]
func (h *ClientsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req crmsdk.UpdateClientRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.Service.UpdateRecord(r.Context(), httpx.UserID(r.Context()), r.PathValue("id"), service.RecordPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		LatText:   req.Lat,
		LngText:   req.Lng,
		Notes:     req.Notes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toRecordDTO(rec))
}

// Delete godoc
//
//	@Summary		Delete a client record
//	@Tags			clients
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Record id"
//	@Success		204
//	@Failure		404	{object}	crmsdk.APIError
//	@Router			/v1/clients/{id} [delete]
func (h *ClientsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteRecord(r.Context(), httpx.UserID(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats godoc
//
//	@Summary		Count records by location presence
//	@Tags			clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	crmsdk.StatsResponse
//	@Router			/v1/clients/stats [get]
func (h *ClientsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.RecordStats(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.StatsResponse{
		Total:           stats.Total,
		WithLocation:    stats.WithLocation,
		WithoutLocation: stats.WithoutLocation,
	})
}

// Normalize godoc
//
//	@Summary		Split multi-word first names into first/last
//	@Tags			clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	crmsdk.NormalizeReport
//	@Router			/v1/clients/normalize [post]
func (h *ClientsHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	updated, err := h.Service.NormalizeNames(r.Context(), httpx.UserID(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, crmsdk.NormalizeReport{Updated: updated})
}

func parseListQuery(r *http.Request) (pipeline.Query, error) {
	values := r.URL.Query()

	location, err := pipeline.ParseLocationFilter(values.Get("location"))
	if err != nil {
		return pipeline.Query{}, err
	}
	sortMode, err := pipeline.ParseSortMode(values.Get("sort"))
	if err != nil {
		return pipeline.Query{}, err
	}

	page := 1
	if raw := values.Get("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return pipeline.Query{}, err
		}
	}

	return pipeline.Query{
		Text:     values.Get("search"),
		Location: location,
		Sort:     sortMode,
		Page:     page,
	}, nil
}

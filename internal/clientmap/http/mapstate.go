package http

import (
	"net/http"
	"strconv"

	"clientmap/internal/clientmap/mapview"
	"clientmap/internal/clientmap/pipeline"
	"clientmap/internal/clientmap/service"
	"clientmap/pkg/crmsdk"
	"clientmap/pkg/geo"
	"clientmap/pkg/httpx"
)

// MapHandler derives the map presentation state server-side so every client
// renders the same markers, clusters and camera moves.
type MapHandler struct {
	Service *service.Service
}

// State godoc
//
//	@Summary		Derive the map state for the caller's records
//	@Description	Returns markers (or clusters at low zoom) plus an optional fly-to camera when a located record is selected. A draft position supplied as lat/lng text renders as a draggable pin.
//	@Tags			map
//	@Produce		json
//	@Security		BearerAuth
//	@Param			selected	query		string	false	"Selected record id"
//	@Param			zoom		query		int		false	"Current zoom level"
//	@Param			draft_lat	query		string	false	"Draft latitude text"
//	@Param			draft_lng	query		string	false	"Draft longitude text"
//	@Success		200			{object}	crmsdk.MapStateResponse
//	@Router			/v1/map/state [get]
func (h *MapHandler) State(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	values := r.URL.Query()

	zoom := 0
	if raw := values.Get("zoom"); raw != "" {
		z, err := strconv.Atoi(raw)
		if err != nil {
			crmsdk.WriteError(w, http.StatusBadRequest, crmsdk.CodeInvalidRequest, "zoom must be an integer")
			return
		}
		zoom = z
	}

	var draft *mapview.Draft
	if values.Has("draft_lat") || values.Has("draft_lng") {
		draft = &mapview.Draft{}
		draft.SetFromText(values.Get("draft_lat"), values.Get("draft_lng"))
	}

	records, err := h.Service.AllRecords(ctx, httpx.UserID(ctx), pipeline.SortLastNameAsc)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	state := mapview.Build(records, values.Get("selected"), draft, zoom)
	httpx.WriteJSON(w, http.StatusOK, toMapStateDTO(state))
}

func toMapStateDTO(state mapview.State) crmsdk.MapStateResponse {
	out := crmsdk.MapStateResponse{Zoom: state.Zoom}
	for _, m := range state.Markers {
		out.Markers = append(out.Markers, toMarkerDTO(m))
	}
	for _, c := range state.Clusters {
		cluster := crmsdk.MapCluster{Pos: toPointDTO(c.Pos), Count: c.Count}
		for _, m := range c.Markers {
			cluster.Markers = append(cluster.Markers, toMarkerDTO(m))
		}
		out.Clusters = append(out.Clusters, cluster)
	}
	if state.FlyTo != nil {
		out.FlyTo = &crmsdk.MapCamera{
			Center:  toPointDTO(state.FlyTo.Center),
			Zoom:    state.FlyTo.Zoom,
			Animate: state.FlyTo.Animate,
		}
	}
	return out
}

func toMarkerDTO(m mapview.Marker) crmsdk.MapMarker {
	return crmsdk.MapMarker{
		ID:        m.ID,
		Pos:       toPointDTO(m.Pos),
		Icon:      string(m.Icon),
		Popup:     m.Popup,
		Draggable: m.Draggable,
	}
}

func toPointDTO(p geo.Point) crmsdk.MapPoint {
	return crmsdk.MapPoint{Lat: p.Lat, Lng: p.Lng}
}

// Package mapview derives the map presentation state from an owner's records:
// which markers to draw, how to group them at low zoom, and where the camera
// should fly when a record is selected.
package mapview

import (
	"fmt"
	"sort"

	"clientmap/internal/clientmap/domain"
	"clientmap/pkg/geo"
)

// DefaultCenter is where the map opens before any record is selected.
var DefaultCenter = geo.Point{Lat: -36.6167, Lng: -64.2833}

const (
	// DefaultZoom is the initial zoom level.
	DefaultZoom = 13
	// SelectZoom is the zoom the camera flies to when a located record is
	// selected.
	SelectZoom = 16
	// ClusterZoomThreshold is the zoom below which markers group into
	// grid clusters. At or above it every record gets its own marker.
	ClusterZoomThreshold = 14
)

// IconVariant selects the marker rendering.
type IconVariant string

const (
	IconDefault  IconVariant = "default"
	IconSelected IconVariant = "selected"
	IconDraft    IconVariant = "draft"
)

// Marker is a single pin on the map.
type Marker struct {
	ID        string      `json:"id"`
	Pos       geo.Point   `json:"pos"`
	Icon      IconVariant `json:"icon"`
	Popup     string      `json:"popup"`
	Draggable bool        `json:"draggable"`
}

// Cluster is a group of nearby markers collapsed into one symbol. Pos is the
// centroid of the grouped markers.
type Cluster struct {
	Pos     geo.Point `json:"pos"`
	Count   int       `json:"count"`
	Markers []Marker  `json:"markers"`
}

// Camera describes a requested view change. Animate distinguishes a fly-to
// from an instant jump.
type Camera struct {
	Center  geo.Point `json:"center"`
	Zoom    int       `json:"zoom"`
	Animate bool      `json:"animate"`
}

// State is the full derived map state for one build.
type State struct {
	Markers  []Marker  `json:"markers"`
	Clusters []Cluster `json:"clusters"`
	// FlyTo is nil when the camera should stay where it is.
	FlyTo *Camera `json:"fly_to,omitempty"`
	Zoom  int     `json:"zoom"`
}

// Build derives the map state. Records without coordinates contribute no
// marker. Selecting a record without coordinates leaves the camera untouched.
func Build(records []domain.ClientRecord, selectedID string, draft *Draft, zoom int) State {
	if zoom <= 0 {
		zoom = DefaultZoom
	}

	markers := make([]Marker, 0, len(records))
	var flyTo *Camera

	for _, rec := range records {
		selected := rec.ID == selectedID
		if !rec.HasLocation() {
			continue
		}

		icon := IconDefault
		if selected {
			icon = IconSelected
			flyTo = &Camera{Center: *rec.Position, Zoom: SelectZoom, Animate: true}
		}
		markers = append(markers, Marker{
			ID:    rec.ID,
			Pos:   *rec.Position,
			Icon:  icon,
			Popup: popupText(rec),
		})
	}

	state := State{Zoom: zoom, FlyTo: flyTo}

	if zoom < ClusterZoomThreshold {
		state.Clusters = clusterMarkers(markers, zoom)
	} else {
		state.Markers = markers
	}

	// The draft pin never clusters and always renders on top.
	if p := draft.Position(); p != nil {
		state.Markers = append(state.Markers, Marker{
			ID:        "draft",
			Pos:       *p,
			Icon:      IconDraft,
			Draggable: true,
		})
	}

	return state
}

func popupText(rec domain.ClientRecord) string {
	if rec.Address == "" {
		return rec.FullName()
	}
	return rec.FullName() + "\n" + rec.Address
}

// clusterMarkers groups markers into grid cells whose size halves with each
// zoom step. Singleton cells stay clusters of one so the caller renders a
// consistent symbol set at low zoom.
func clusterMarkers(markers []Marker, zoom int) []Cluster {
	if len(markers) == 0 {
		return nil
	}

	cell := cellSize(zoom)
	buckets := make(map[string][]Marker)
	for _, m := range markers {
		key := fmt.Sprintf("%d:%d",
			int(m.Pos.Lat/cell),
			int(m.Pos.Lng/cell))
		buckets[key] = append(buckets[key], m)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Cluster, 0, len(keys))
	for _, k := range keys {
		group := buckets[k]
		var latSum, lngSum float64
		for _, m := range group {
			latSum += m.Pos.Lat
			lngSum += m.Pos.Lng
		}
		out = append(out, Cluster{
			Pos: geo.Point{
				Lat: latSum / float64(len(group)),
				Lng: lngSum / float64(len(group)),
			},
			Count:   len(group),
			Markers: group,
		})
	}
	return out
}

func cellSize(zoom int) float64 {
	size := 360.0
	for i := 0; i < zoom; i++ {
		size /= 2
	}
	return size
}

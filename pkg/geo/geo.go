// Package geo holds the coordinate primitives shared by the record store,
// the list pipeline and the map view. A location is only ever handled as a
// complete latitude/longitude pair; a lone coordinate is treated as no
// location at all.
package geo

import (
	"math"
	"strconv"
	"strings"
)

// Point is a WGS84 latitude/longitude pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether both components are finite and within range.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) {
		return false
	}
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// ParseCoord parses a single textual coordinate. Both decimal-point and
// decimal-comma separators are accepted ("-36,6384" and "-36.6384" parse to
// the same value). Empty or unparseable input reports ok=false rather than
// defaulting to zero.
func ParseCoord(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParsePair parses a textual latitude/longitude pair. The pair is atomic:
// unless both sides parse and the resulting point is valid, the result is
// nil (no location), never a partial or zeroed point.
func ParsePair(latText, lngText string) *Point {
	lat, okLat := ParseCoord(latText)
	lng, okLng := ParseCoord(lngText)
	if !okLat || !okLng {
		return nil
	}
	p := Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return nil
	}
	return &p
}

// PairOf combines two optional coordinate values into a point. If either
// side is missing or the pair is out of range, it returns nil. This is the
// write-boundary normalisation: a lone coordinate is nulled out rather than
// stored half-present.
func PairOf(lat, lng *float64) *Point {
	if lat == nil || lng == nil {
		return nil
	}
	p := Point{Lat: *lat, Lng: *lng}
	if !p.Valid() {
		return nil
	}
	return &p
}

// FormatCoord renders a coordinate with minimal digits, decimal point.
func FormatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

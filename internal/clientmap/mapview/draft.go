package mapview

import (
	"sync"

	"clientmap/pkg/geo"
)

// Draft holds the provisional position for the record being edited. Map
// clicks, pin drags and typed coordinates all converge on Set, so the last
// input wins regardless of which channel it arrived through.
//
// The zero value is ready to use and holds no position.
type Draft struct {
	mu  sync.Mutex
	pos *geo.Point
}

// Set replaces the draft position.
func (d *Draft) Set(p geo.Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pos = &p
}

// SetFromText parses typed coordinate fields and stores the pair if both
// sides are valid. Invalid or partial input leaves the draft unchanged and
// returns false.
func (d *Draft) SetFromText(latText, lngText string) bool {
	p := geo.ParsePair(latText, lngText)
	if p == nil {
		return false
	}
	d.Set(*p)
	return true
}

// Clear drops the draft position entirely. A cleared draft is absent, not a
// pin at the origin.
func (d *Draft) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.pos = nil
}

// Position returns a copy of the current draft position, or nil when unset.
// Safe to call on a nil Draft.
func (d *Draft) Position() *geo.Point {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pos == nil {
		return nil
	}
	p := *d.pos
	return &p
}

package domain

import (
	"strings"
	"time"

	"clientmap/pkg/geo"
)

// ClientRecord is a single client/customer entry with contact details and an
// optional location. A record is owned by exactly one user and only visible
// to that owner.
type ClientRecord struct {
	ID      string
	OwnerID string

	FirstName string
	LastName  string
	Phone     string
	Address   string

	// Position is the geocoded location. The pair is atomic: it is either
	// fully present or nil; the write boundary nulls out lone coordinates.
	Position *geo.Point

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLocation reports whether the record carries a valid coordinate pair.
func (r ClientRecord) HasLocation() bool {
	return r.Position != nil && r.Position.Valid()
}

// FullName renders "first last" for display and search.
func (r ClientRecord) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// ClientPatch is a partial update to a record. Nil fields are untouched.
// Setting Position replaces the pair; ClearPosition removes it.
type ClientPatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	Notes     *string

	Position      *geo.Point
	ClearPosition bool
}

// SplitFullName splits a free-form full name on the final space: everything
// before it is the first name, the last word is the last name. A single word
// is all first name.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.Fields(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"clientmap/internal/clientmap/domain"
	"clientmap/internal/clientmap/pipeline"
	"clientmap/internal/clientmap/store"
	"clientmap/pkg/geo"
	"clientmap/pkg/idx"
	"clientmap/pkg/slogx"
)

// RecordInput is the raw material for a new record. Coordinates arrive as
// text so decimal commas from form fields parse the same as decimal points.
// FullName is an alternative to the split fields: when FirstName is empty it
// is split on the final space.
type RecordInput struct {
	FirstName string
	LastName  string
	FullName  string
	Phone     string
	Address   string
	LatText   string
	LngText   string
	Notes     string
}

// RecordPatch is a partial update. Nil fields stay untouched. When either
// coordinate field is supplied the pair is re-evaluated as a whole: both
// valid sets the position, anything else clears it.
type RecordPatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Address   *string
	LatText   *string
	LngText   *string
	Notes     *string
}

// RecordStats is the per-owner location breakdown.
type RecordStats struct {
	Total           int
	WithLocation    int
	WithoutLocation int
}

// CreateRecord validates and stores a new record for the owner.
func (s *Service) CreateRecord(ctx context.Context, ownerID string, in RecordInput) (domain.ClientRecord, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	if first == "" && in.FullName != "" {
		first, last = domain.SplitFullName(in.FullName)
	}
	if first == "" {
		return domain.ClientRecord{}, invalid("first_name", "a name is required")
	}

	phone := strings.TrimSpace(in.Phone)
	if err := validatePhone(phone); err != nil {
		return domain.ClientRecord{}, err
	}

	now := time.Now().UTC()
	rec := domain.ClientRecord{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Address:   strings.TrimSpace(in.Address),
		Position:  geo.ParsePair(in.LatText, in.LngText),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.Records().Create(ctx, rec); err != nil {
		return domain.ClientRecord{}, err
	}

	slogx.FromContext(ctx).Info("record created",
		slog.String("record_id", rec.ID),
		slog.Bool("has_location", rec.HasLocation()),
	)
	return rec, nil
}

// GetRecord fetches one record, enforcing ownership. A record owned by
// someone else reads as not found.
func (s *Service) GetRecord(ctx context.Context, ownerID, recordID string) (domain.ClientRecord, error) {
	rec, err := s.store.Records().GetByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ClientRecord{}, ErrNotFound
		}
		return domain.ClientRecord{}, err
	}
	if rec.OwnerID != ownerID {
		return domain.ClientRecord{}, ErrNotFound
	}
	return rec, nil
}

// ListRecords runs the list pipeline over the owner's full record set.
func (s *Service) ListRecords(ctx context.Context, ownerID string, q pipeline.Query) (pipeline.Page, error) {
	records, err := s.store.Records().ListByOwner(ctx, ownerID)
	if err != nil {
		return pipeline.Page{}, err
	}
	return pipeline.Apply(records, q), nil
}

// AllRecords returns the owner's records in the given sort order without
// paging. Export and the map view consume this.
func (s *Service) AllRecords(ctx context.Context, ownerID string, mode pipeline.SortMode) ([]domain.ClientRecord, error) {
	records, err := s.store.Records().ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return pipeline.Sorted(records, mode), nil
}

// UpdateRecord applies a partial update, enforcing ownership.
func (s *Service) UpdateRecord(ctx context.Context, ownerID, recordID string, p RecordPatch) (domain.ClientRecord, error) {
	if _, err := s.GetRecord(ctx, ownerID, recordID); err != nil {
		return domain.ClientRecord{}, err
	}

	patch := domain.ClientPatch{
		Address: trimPtr(p.Address),
		Notes:   trimPtr(p.Notes),
	}

	if p.FirstName != nil {
		first := strings.TrimSpace(*p.FirstName)
		if first == "" {
			return domain.ClientRecord{}, invalid("first_name", "a name is required")
		}
		patch.FirstName = &first
	}
	if p.LastName != nil {
		patch.LastName = trimPtr(p.LastName)
	}
	if p.Phone != nil {
		phone := strings.TrimSpace(*p.Phone)
		if err := validatePhone(phone); err != nil {
			return domain.ClientRecord{}, err
		}
		patch.Phone = &phone
	}

	// Touching either coordinate re-evaluates the pair as a whole.
	if p.LatText != nil || p.LngText != nil {
		var latText, lngText string
		if p.LatText != nil {
			latText = *p.LatText
		}
		if p.LngText != nil {
			lngText = *p.LngText
		}
		if pos := geo.ParsePair(latText, lngText); pos != nil {
			patch.Position = pos
		} else {
			patch.ClearPosition = true
		}
	}

	if err := s.store.Records().Update(ctx, recordID, patch); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ClientRecord{}, ErrNotFound
		}
		return domain.ClientRecord{}, err
	}

	return s.GetRecord(ctx, ownerID, recordID)
}

// DeleteRecord removes a record, enforcing ownership.
func (s *Service) DeleteRecord(ctx context.Context, ownerID, recordID string) error {
	if _, err := s.GetRecord(ctx, ownerID, recordID); err != nil {
		return err
	}
	if err := s.store.Records().Delete(ctx, recordID); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("record deleted", slog.String("record_id", recordID))
	return nil
}

// RecordStats counts the owner's records by location presence.
func (s *Service) RecordStats(ctx context.Context, ownerID string) (RecordStats, error) {
	records, err := s.store.Records().ListByOwner(ctx, ownerID)
	if err != nil {
		return RecordStats{}, err
	}

	stats := RecordStats{Total: len(records)}
	for _, rec := range records {
		if rec.HasLocation() {
			stats.WithLocation++
		} else {
			stats.WithoutLocation++
		}
	}
	return stats, nil
}

// NormalizeNames splits multi-word first names into first/last for records
// whose last name is empty. Returns how many records were updated.
func (s *Service) NormalizeNames(ctx context.Context, ownerID string) (int, error) {
	records, err := s.store.Records().ListByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, rec := range records {
		if rec.LastName != "" || !strings.Contains(strings.TrimSpace(rec.FirstName), " ") {
			continue
		}
		first, last := domain.SplitFullName(rec.FirstName)
		if last == "" {
			continue
		}
		patch := domain.ClientPatch{FirstName: &first, LastName: &last}
		if err := s.store.Records().Update(ctx, rec.ID, patch); err != nil {
			return updated, err
		}
		updated++
	}

	if updated > 0 {
		slogx.FromContext(ctx).Info("names normalised", slog.Int("updated", updated))
	}
	return updated, nil
}

// validatePhone accepts empty phones and loosely numeric ones: digits plus
// the usual separators.
func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '+' || r == '(' || r == ')' || r == '.':
		default:
			return invalid("phone", "may only contain digits and separators")
		}
	}
	if digits == 0 {
		return invalid("phone", "must contain at least one digit")
	}
	return nil
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

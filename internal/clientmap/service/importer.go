package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"clientmap/internal/clientmap/domain"
	"clientmap/pkg/sheet"
	"clientmap/pkg/slogx"
)

// ImportReport summarises one bulk import: rows that became records and rows
// that were passed over.
type ImportReport struct {
	Imported int
	Skipped  int
}

// ImportRecords reads a CSV document and creates one record per usable row.
// Rows are processed sequentially in file order; a row without any name is
// skipped, as is a row that fails validation. A multi-word name in the first
// name column with no last name is split on the final space, same as manual
// entry.
func (s *Service) ImportRecords(ctx context.Context, ownerID string, r io.Reader) (ImportReport, error) {
	rows, err := sheet.Parse(r)
	if err != nil {
		return ImportReport{}, invalid("file", "could not parse CSV document")
	}

	var report ImportReport
	for _, row := range rows {
		first := row[sheet.FieldFirstName]
		last := row[sheet.FieldLastName]
		if first == "" && last == "" {
			report.Skipped++
			continue
		}
		if last == "" {
			first, last = domain.SplitFullName(first)
		}

		_, err := s.CreateRecord(ctx, ownerID, RecordInput{
			FirstName: first,
			LastName:  last,
			Phone:     row[sheet.FieldPhone],
			Address:   row[sheet.FieldAddress],
			LatText:   row[sheet.FieldLat],
			LngText:   row[sheet.FieldLng],
			Notes:     row[sheet.FieldNotes],
		})
		if err != nil {
			var vErr *ValidationError
			if errors.As(err, &vErr) {
				report.Skipped++
				continue
			}
			return report, err
		}
		report.Imported++
	}

	slogx.FromContext(ctx).Info("records imported",
		slog.Int("imported", report.Imported),
		slog.Int("skipped", report.Skipped),
	)
	return report, nil
}

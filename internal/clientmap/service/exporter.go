package service

import (
	"context"
	"io"
	"time"

	"clientmap/internal/clientmap/domain"
	"clientmap/internal/clientmap/pipeline"
	"clientmap/pkg/geo"
	"clientmap/pkg/sheet"
)

// ExportRecords writes the owner's full record set as CSV in list order
// (last name, then first name). Records without a location export with empty
// coordinate cells.
func (s *Service) ExportRecords(ctx context.Context, ownerID string, w io.Writer) error {
	records, err := s.AllRecords(ctx, ownerID, pipeline.SortLastNameAsc)
	if err != nil {
		return err
	}

	rows := make([]sheet.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, exportRow(rec))
	}
	return sheet.Write(w, rows)
}

// ExportFilename is the date-stamped attachment name for today's export.
func (s *Service) ExportFilename() string {
	return sheet.Filename("clients", time.Now())
}

func exportRow(rec domain.ClientRecord) sheet.Row {
	row := sheet.Row{
		sheet.FieldFirstName: rec.FirstName,
		sheet.FieldLastName:  rec.LastName,
		sheet.FieldPhone:     rec.Phone,
		sheet.FieldAddress:   rec.Address,
		sheet.FieldNotes:     rec.Notes,
	}
	if rec.HasLocation() {
		row[sheet.FieldLat] = geo.FormatCoord(rec.Position.Lat)
		row[sheet.FieldLng] = geo.FormatCoord(rec.Position.Lng)
	}
	return row
}

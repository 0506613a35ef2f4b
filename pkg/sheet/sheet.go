// Package sheet is the tabular codec used for bulk import/export. It reads
// and writes CSV with a fixed canonical column set, resolving the header
// spellings that show up in real spreadsheets (Spanish/English, accented,
// mixed case) onto canonical field names.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"
)

// Canonical field names. Export always emits exactly these, in this order.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldLat       = "lat"
	FieldLng       = "lng"
	FieldNotes     = "notes"
)

// ExportHeader is the fixed column order for exports.
var ExportHeader = []string{
	FieldFirstName, FieldLastName, FieldPhone, FieldAddress,
	FieldLat, FieldLng, FieldNotes,
}

// Row maps canonical field names to raw cell values for one spreadsheet row.
type Row map[string]string

// headerAliases maps normalised header spellings to canonical fields.
var headerAliases = map[string]string{
	"nombre": FieldFirstName, "firstname": FieldFirstName, "first": FieldFirstName, "name": FieldFirstName,
	"apellido": FieldLastName, "lastname": FieldLastName, "last": FieldLastName, "surname": FieldLastName,
	"telefono": FieldPhone, "phone": FieldPhone, "tel": FieldPhone,
	"direccion": FieldAddress, "address": FieldAddress,
	"latitud": FieldLat, "lat": FieldLat, "latitude": FieldLat,
	"longitud": FieldLng, "lng": FieldLng, "lon": FieldLng, "long": FieldLng, "longitude": FieldLng,
	"notas": FieldNotes, "notes": FieldNotes, "nota": FieldNotes,
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u", "ñ", "n",
	"Á", "a", "É", "e", "Í", "i", "Ó", "o", "Ú", "u", "Ü", "u", "Ñ", "n",
)

// canonicalField resolves a raw header cell onto a canonical field name.
func canonicalField(header string) (string, bool) {
	h := accentReplacer.Replace(strings.TrimSpace(header))
	h = strings.ToLower(h)
	h = strings.NewReplacer(" ", "", "_", "", "-", "", ".", "").Replace(h)
	field, ok := headerAliases[h]
	return field, ok
}

// Parse reads a CSV document into rows keyed by canonical field name. The
// first record is the header; unrecognised columns are ignored. Cell values
// are trimmed. A document with no recognisable columns yields no rows rather
// than an error.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("sheet: read header: %w", err)
	}

	fields := make(map[int]string, len(header))
	for i, cell := range header {
		if f, ok := canonicalField(cell); ok {
			fields[i] = f
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("sheet: read row: %w", err)
		}

		row := make(Row, len(fields))
		for i, f := range fields {
			if i < len(record) {
				row[f] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Write serialises rows in the fixed export column order, header first.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("sheet: write header: %w", err)
	}
	record := make([]string, len(ExportHeader))
	for _, row := range rows {
		for i, f := range ExportHeader {
			record[i] = row[f]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("sheet: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Filename builds the date-stamped attachment name for an export, e.g.
// "clients_2026-08-29.csv".
func Filename(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, t.Format("2006-01-02"))
}

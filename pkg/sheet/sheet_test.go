package sheet

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseResolvesHeaderAliases(t *testing.T) {
	t.Parallel()

	in := "Nombre,Apellido,Teléfono,Dirección,Latitud,Longitud,Notas\n" +
		"Ana,Pérez,2954111222,Av. Luro 100,-36.6,-64.2,vip\n"

	rows, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ana", rows[0][FieldFirstName])
	require.Equal(t, "Pérez", rows[0][FieldLastName])
	require.Equal(t, "2954111222", rows[0][FieldPhone])
	require.Equal(t, "Av. Luro 100", rows[0][FieldAddress])
	require.Equal(t, "-36.6", rows[0][FieldLat])
	require.Equal(t, "-64.2", rows[0][FieldLng])
	require.Equal(t, "vip", rows[0][FieldNotes])
}

func TestParseAcceptsEnglishAndMixedCase(t *testing.T) {
	t.Parallel()

	in := "First Name,LAST_NAME,phone,address,lat,lng,notes\nBen,Gómez,123,,,,\n"
	rows, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ben", rows[0][FieldFirstName])
	require.Equal(t, "Gómez", rows[0][FieldLastName])
	require.Empty(t, rows[0][FieldLat])
}

func TestParseIgnoresUnknownColumns(t *testing.T) {
	t.Parallel()

	in := "Nombre,Zona,Apellido\nAna,Norte,Pérez\n"
	rows, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "Ana", rows[0][FieldFirstName])
	require.Equal(t, "Pérez", rows[0][FieldLastName])
	_, hasZone := rows[0]["Zona"]
	require.False(t, hasZone)
}

func TestParseEmptyDocument(t *testing.T) {
	t.Parallel()

	rows, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestWriteThenParseRoundTrips(t *testing.T) {
	t.Parallel()

	in := []Row{
		{
			FieldFirstName: "Ana", FieldLastName: "Pérez", FieldPhone: "111",
			FieldAddress: "Av. Luro 100", FieldLat: "-36.6", FieldLng: "-64.2", FieldNotes: "vip",
		},
		{FieldFirstName: "Ben", FieldLastName: "Gómez", FieldPhone: "222"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, in))

	out, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Equal(t, "Ana", out[0][FieldFirstName])
	require.Equal(t, "-64.2", out[0][FieldLng])
	require.Equal(t, "Ben", out[1][FieldFirstName])
	require.Empty(t, out[1][FieldLat])
}

func TestFilename(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	require.Equal(t, "clients_2026-08-29.csv", Filename("clients", at))
}

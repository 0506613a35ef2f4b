package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"clientmap/internal/clientmap/pipeline"

	"github.com/stretchr/testify/require"
)

func TestImportRecords(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := registerUser(t, svc, "import@example.com")

	t.Run("spanish headers and comma decimals", func(t *testing.T) {
		csv := strings.Join([]string{
			"Nombre,Apellido,Teléfono,Dirección,Latitud,Longitud,Notas",
			`Ana,Alvarez,2954123456,Calle 1,"-36,6384","-64,2745",vip`,
			"Ben,Benitez,,,,,",
			",,,,,,",
			"Carla,Cruz,not-a-phone,,,,",
		}, "\n")

		report, err := svc.ImportRecords(ctx, owner.ID, strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, 2, report.Imported)
		require.Equal(t, 2, report.Skipped)

		page, err := svc.ListRecords(ctx, owner.ID, pipeline.Query{Text: "alvarez"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.True(t, page.Items[0].HasLocation())
	})

	t.Run("full name in the name column is split", func(t *testing.T) {
		csv := "name,phone\nDiego Armando Diaz,2954999999\n"
		report, err := svc.ImportRecords(ctx, owner.ID, strings.NewReader(csv))
		require.NoError(t, err)
		require.Equal(t, 1, report.Imported)

		page, err := svc.ListRecords(ctx, owner.ID, pipeline.Query{Text: "diaz"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, "Diego Armando", page.Items[0].FirstName)
		require.Equal(t, "Diaz", page.Items[0].LastName)
	})

	t.Run("empty document imports nothing", func(t *testing.T) {
		report, err := svc.ImportRecords(ctx, owner.ID, strings.NewReader(""))
		require.NoError(t, err)
		require.Zero(t, report.Imported)
		require.Zero(t, report.Skipped)
	})
}

func TestExportRecords(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := registerUser(t, svc, "export@example.com")

	_, err := svc.CreateRecord(ctx, owner.ID, RecordInput{
		FirstName: "Carla", LastName: "Cruz",
	})
	require.NoError(t, err)
	_, err = svc.CreateRecord(ctx, owner.ID, RecordInput{
		FirstName: "Ana", LastName: "Alvarez",
		LatText: "-36.6384", LngText: "-64.2745",
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportRecords(ctx, owner.ID, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "first_name,last_name,phone,address,lat,lng,notes", lines[0])

	// List order: Alvarez before Cruz.
	require.True(t, strings.HasPrefix(lines[1], "Ana,Alvarez,"))
	require.Contains(t, lines[1], "-36.6384")
	require.True(t, strings.HasPrefix(lines[2], "Carla,Cruz,"))

	t.Run("round trip re-imports cleanly", func(t *testing.T) {
		other := registerUser(t, svc, "roundtrip@example.com")
		report, err := svc.ImportRecords(ctx, other.ID, bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, 2, report.Imported)
		require.Zero(t, report.Skipped)
	})

	t.Run("filename carries the date stamp", func(t *testing.T) {
		name := svc.ExportFilename()
		require.True(t, strings.HasPrefix(name, "clients_"))
		require.True(t, strings.HasSuffix(name, ".csv"))
	})
}

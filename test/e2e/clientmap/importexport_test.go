package clientmap_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"clientmap/pkg/crmsdk"
)

func TestImportExportRoundTrip(t *testing.T) {
	api := startServer(t)
	ctx := context.Background()
	register(t, api, "bulk@example.com")

	csv := strings.Join([]string{
		"Nombre,Apellido,Teléfono,Dirección,Latitud,Longitud,Notas",
		`Ana,Alvarez,2954123456,Calle 1,"-36,6384","-64,2745",vip`,
		"Diego Armando Diaz,,2954999999,,,,",
		",,,,,,",
	}, "\n")

	report, err := api.ImportClients(ctx, "clients.csv", strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 2, report.Imported)
	require.Equal(t, 1, report.Skipped)

	t.Run("imported full name was split", func(t *testing.T) {
		list, err := api.ListClients(ctx, crmsdk.ListClientsQuery{Search: "diaz"})
		require.NoError(t, err)
		require.Equal(t, 1, list.Total)
		require.Equal(t, "Diego Armando", list.Items[0].FirstName)
		require.Equal(t, "Diaz", list.Items[0].LastName)
	})

	t.Run("export round trips", func(t *testing.T) {
		body, filename, err := api.ExportClients(ctx)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(filename, "clients_"))
		require.True(t, strings.HasSuffix(filename, ".csv"))

		other := crmsdk.NewClient(api.BaseURL())
		register(t, other, "reimport@example.com")

		again, err := other.ImportClients(ctx, filename, bytes.NewReader(body))
		require.NoError(t, err)
		require.Equal(t, 2, again.Imported)
		require.Zero(t, again.Skipped)
	})
}

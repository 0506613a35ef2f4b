package clientmap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"clientmap/pkg/crmsdk"
)

func TestMapState(t *testing.T) {
	api := startServer(t)
	ctx := context.Background()
	register(t, api, "map@example.com")

	located, err := api.CreateClient(ctx, crmsdk.CreateClientRequest{
		FirstName: "Ana", LastName: "Alvarez",
		Lat: "-36.6384", Lng: "-64.2745",
	})
	require.NoError(t, err)
	_, err = api.CreateClient(ctx, crmsdk.CreateClientRequest{
		FirstName: "Ben", LastName: "Benitez",
	})
	require.NoError(t, err)

	t.Run("only located records produce markers", func(t *testing.T) {
		state, err := api.MapState(ctx, "", 16)
		require.NoError(t, err)
		require.Len(t, state.Markers, 1)
		require.Equal(t, located.ID, state.Markers[0].ID)
	})

	t.Run("selecting a located record flies to it at zoom 16", func(t *testing.T) {
		state, err := api.MapState(ctx, located.ID, 13)
		require.NoError(t, err)
		require.NotNil(t, state.FlyTo)
		require.Equal(t, 16, state.FlyTo.Zoom)
		require.True(t, state.FlyTo.Animate)
		require.InDelta(t, -36.6384, state.FlyTo.Center.Lat, 1e-6)
	})

	t.Run("low zoom clusters", func(t *testing.T) {
		for _, c := range []crmsdk.CreateClientRequest{
			{FirstName: "Cerca", LastName: "Uno", Lat: "-36.6385", Lng: "-64.2746"},
			{FirstName: "Cerca", LastName: "Dos", Lat: "-36.6386", Lng: "-64.2747"},
		} {
			_, err := api.CreateClient(ctx, c)
			require.NoError(t, err)
		}

		state, err := api.MapState(ctx, "", 8)
		require.NoError(t, err)
		require.NotEmpty(t, state.Clusters)

		total := 0
		for _, c := range state.Clusters {
			total += c.Count
		}
		require.Equal(t, 3, total)
	})
}

package geo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCoord(t *testing.T) {
	t.Parallel()

	t.Run("decimal point", func(t *testing.T) {
		v, ok := ParseCoord("-36.6384")
		require.True(t, ok)
		require.InDelta(t, -36.6384, v, 1e-9)
	})

	t.Run("decimal comma", func(t *testing.T) {
		v, ok := ParseCoord("-64,2745")
		require.True(t, ok)
		require.InDelta(t, -64.2745, v, 1e-9)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		v, ok := ParseCoord("  12.5 ")
		require.True(t, ok)
		require.InDelta(t, 12.5, v, 1e-9)
	})

	t.Run("empty is absent not zero", func(t *testing.T) {
		_, ok := ParseCoord("")
		require.False(t, ok)
	})

	t.Run("garbage is absent", func(t *testing.T) {
		_, ok := ParseCoord("calle falsa 123")
		require.False(t, ok)
	})
}

func TestParsePair(t *testing.T) {
	t.Parallel()

	t.Run("comma separated pair", func(t *testing.T) {
		p := ParsePair("-36,6384", "-64,2745")
		require.NotNil(t, p)
		require.InDelta(t, -36.6384, p.Lat, 1e-9)
		require.InDelta(t, -64.2745, p.Lng, 1e-9)
	})

	t.Run("both empty yields nil", func(t *testing.T) {
		require.Nil(t, ParsePair("", ""))
	})

	t.Run("one side missing yields nil", func(t *testing.T) {
		require.Nil(t, ParsePair("-36.6", ""))
		require.Nil(t, ParsePair("", "-64.2"))
	})

	t.Run("out of range yields nil", func(t *testing.T) {
		require.Nil(t, ParsePair("91", "0"))
		require.Nil(t, ParsePair("0", "181"))
	})
}

func TestPairOf(t *testing.T) {
	t.Parallel()

	lat, lng := -36.6167, -64.2833
	require.NotNil(t, PairOf(&lat, &lng))
	require.Nil(t, PairOf(&lat, nil))
	require.Nil(t, PairOf(nil, &lng))
	require.Nil(t, PairOf(nil, nil))

	bad := 200.0
	require.Nil(t, PairOf(&bad, &lng))
}

func TestPointValid(t *testing.T) {
	t.Parallel()

	require.True(t, Point{Lat: 1, Lng: 2}.Valid())
	require.True(t, Point{Lat: -90, Lng: 180}.Valid())
	require.False(t, Point{Lat: 90.0001, Lng: 0}.Valid())
}

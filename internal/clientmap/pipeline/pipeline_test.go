package pipeline

import (
	"fmt"
	"testing"

	"clientmap/internal/clientmap/domain"
	"clientmap/pkg/geo"

	"github.com/stretchr/testify/require"
)

func rec(first, last, phone, address string, pos *geo.Point) domain.ClientRecord {
	return domain.ClientRecord{
		ID:        first + "-" + last,
		FirstName: first,
		LastName:  last,
		Phone:     phone,
		Address:   address,
		Position:  pos,
	}
}

func names(p Page) []string {
	out := make([]string, len(p.Items))
	for i, r := range p.Items {
		out[i] = r.FirstName
	}
	return out
}

func TestParseLocationFilter(t *testing.T) {
	t.Parallel()

	f, err := ParseLocationFilter("")
	require.NoError(t, err)
	require.Equal(t, FilterAll, f)

	f, err = ParseLocationFilter("with-location")
	require.NoError(t, err)
	require.Equal(t, FilterWithLocation, f)

	_, err = ParseLocationFilter("nearby")
	require.Error(t, err)
}

func TestParseSortMode(t *testing.T) {
	t.Parallel()

	m, err := ParseSortMode("")
	require.NoError(t, err)
	require.Equal(t, SortLastNameAsc, m)

	m, err = ParseSortMode("coords-first")
	require.NoError(t, err)
	require.Equal(t, SortCoordsFirst, m)

	_, err = ParseSortMode("random")
	require.Error(t, err)
}

func TestApplySearch(t *testing.T) {
	t.Parallel()

	records := []domain.ClientRecord{
		rec("Ana", "Alvarez", "2954123456", "", nil),
		rec("Ben", "Benitez", "2954987654", "", nil),
		rec("Carla", "Cruz", "1155550000", "", nil),
	}

	t.Run("matches full display name", func(t *testing.T) {
		p := Apply(records, Query{Text: "ana alva"})
		require.Equal(t, []string{"Ana"}, names(p))
	})

	t.Run("matches phone substring", func(t *testing.T) {
		p := Apply(records, Query{Text: "5555"})
		require.Equal(t, []string{"Carla"}, names(p))
	})

	t.Run("case insensitive", func(t *testing.T) {
		p := Apply(records, Query{Text: "BENITEZ"})
		require.Equal(t, []string{"Ben"}, names(p))
	})

	t.Run("no match", func(t *testing.T) {
		p := Apply(records, Query{Text: "zzz"})
		require.Empty(t, p.Items)
		require.Equal(t, 0, p.RangeStart)
		require.Equal(t, 0, p.RangeEnd)
		require.Equal(t, 1, p.TotalPages)
	})
}

func TestApplyLocationFilterPartitions(t *testing.T) {
	t.Parallel()

	records := []domain.ClientRecord{
		rec("Ana", "Alvarez", "", "", &geo.Point{Lat: -36.6, Lng: -64.2}),
		rec("Ben", "Benitez", "", "", nil),
		rec("Carla", "Cruz", "", "", &geo.Point{Lat: -36.7, Lng: -64.3}),
	}

	all := Apply(records, Query{Location: FilterAll})
	with := Apply(records, Query{Location: FilterWithLocation})
	without := Apply(records, Query{Location: FilterWithoutLocation})

	// with and without partition all
	require.Equal(t, all.Total, with.Total+without.Total)
	require.Equal(t, []string{"Ana", "Carla"}, names(with))
	require.Equal(t, []string{"Ben"}, names(without))
}

func TestApplySortModes(t *testing.T) {
	t.Parallel()

	records := []domain.ClientRecord{
		rec("Carla", "Cruz", "", "Mitre 300", nil),
		rec("Ana", "Alvarez", "", "Belgrano 100", &geo.Point{Lat: -36.6, Lng: -64.2}),
		rec("Ben", "Benitez", "", "Alsina 200", nil),
		rec("Diego", "Diaz", "", "", &geo.Point{Lat: -36.7, Lng: -64.3}),
	}

	t.Run("name asc orders by last then first", func(t *testing.T) {
		p := Apply(records, Query{Sort: SortLastNameAsc})
		require.Equal(t, []string{"Ana", "Ben", "Carla", "Diego"}, names(p))
	})

	t.Run("name desc is the reversal of asc", func(t *testing.T) {
		asc := Apply(records, Query{Sort: SortLastNameAsc})
		desc := Apply(records, Query{Sort: SortLastNameDesc})
		for i := range asc.Items {
			require.Equal(t, asc.Items[i].ID, desc.Items[len(desc.Items)-1-i].ID)
		}
	})

	t.Run("coords first puts located records ahead", func(t *testing.T) {
		p := Apply(records, Query{Sort: SortCoordsFirst})
		require.Equal(t, []string{"Ana", "Diego", "Ben", "Carla"}, names(p))
	})

	t.Run("address asc ignores names", func(t *testing.T) {
		p := Apply(records, Query{Sort: SortAddressAsc})
		require.Equal(t, []string{"Diego", "Ben", "Ana", "Carla"}, names(p))
	})

	t.Run("shared last name breaks tie on first name", func(t *testing.T) {
		sibs := []domain.ClientRecord{
			rec("Zoe", "Alvarez", "", "", nil),
			rec("Ana", "Alvarez", "", "", nil),
		}
		p := Apply(sibs, Query{Sort: SortLastNameAsc})
		require.Equal(t, []string{"Ana", "Zoe"}, names(p))
	})
}

func TestApplyPagination(t *testing.T) {
	t.Parallel()

	records := make([]domain.ClientRecord, 0, 120)
	for i := 0; i < 120; i++ {
		records = append(records, rec(
			fmt.Sprintf("First%03d", i),
			fmt.Sprintf("Last%03d", i),
			"", "", nil))
	}

	t.Run("first page", func(t *testing.T) {
		p := Apply(records, Query{Page: 1})
		require.Len(t, p.Items, PageSize)
		require.Equal(t, 120, p.Total)
		require.Equal(t, 3, p.TotalPages)
		require.Equal(t, 1, p.RangeStart)
		require.Equal(t, 50, p.RangeEnd)
	})

	t.Run("short last page", func(t *testing.T) {
		p := Apply(records, Query{Page: 3})
		require.Len(t, p.Items, 20)
		require.Equal(t, 101, p.RangeStart)
		require.Equal(t, 120, p.RangeEnd)
	})

	t.Run("page beyond range clamps to last", func(t *testing.T) {
		p := Apply(records, Query{Page: 99})
		require.Equal(t, 3, p.Page)
		require.Len(t, p.Items, 20)
	})

	t.Run("zero and negative pages clamp to first", func(t *testing.T) {
		p := Apply(records, Query{Page: 0})
		require.Equal(t, 1, p.Page)
		p = Apply(records, Query{Page: -4})
		require.Equal(t, 1, p.Page)
	})

	t.Run("filter changes shrink the page count", func(t *testing.T) {
		p := Apply(records, Query{Text: "first00", Page: 3})
		require.Equal(t, 1, p.Page)
		require.Equal(t, 10, p.Total)
	})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	records := []domain.ClientRecord{
		rec("Carla", "Cruz", "", "", nil),
		rec("Ana", "Alvarez", "", "", nil),
	}
	_ = Apply(records, Query{Sort: SortLastNameAsc})
	require.Equal(t, "Carla", records[0].FirstName)
}

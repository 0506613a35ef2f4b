package service

import (
	"context"
	"testing"

	"clientmap/internal/clientmap/pipeline"

	"github.com/stretchr/testify/require"
)

func TestCreateRecord(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := registerUser(t, svc, "records@example.com")

	t.Run("with comma coordinates", func(t *testing.T) {
		rec, err := svc.CreateRecord(ctx, owner.ID, RecordInput{
			FirstName: "Ana",
			LastName:  "Alvarez",
			Phone:     "2954 123456",
			LatText:   "-36,6384",
			LngText:   "-64,2745",
		})
		require.NoError(t, err)
		require.True(t, rec.HasLocation())
		require.InDelta(t, -36.6384, rec.Position.Lat, 1e-9)
	})

	t.Run("lone coordinate is dropped", func(t *testing.T) {
		rec, err := svc.CreateRecord(ctx, owner.ID, RecordInput{
			FirstName: "Ben",
			LatText:   "-36.62",
		})
		require.NoError(t, err)
		require.Nil(t, rec.Position)
	})

	t.Run("full name splits on final space", func(t *testing.T) {
		rec, err := svc.CreateRecord(ctx, owner.ID, RecordInput{
			FullName: "Maria del Carmen Gomez",
		})
		require.NoError(t, err)
		require.Equal(t, "Maria del Carmen", rec.FirstName)
		require.Equal(t, "Gomez", rec.LastName)
	})

	t.Run("name is required", func(t *testing.T) {
		_, err := svc.CreateRecord(ctx, owner.ID, RecordInput{Phone: "12345"})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "first_name", vErr.Field)
	})

	t.Run("phone must be loosely numeric", func(t *testing.T) {
		_, err := svc.CreateRecord(ctx, owner.ID, RecordInput{
			FirstName: "Carla",
			Phone:     "call me maybe",
		})
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		require.Equal(t, "phone", vErr.Field)

		_, err = svc.CreateRecord(ctx, owner.ID, RecordInput{
			FirstName: "Carla",
			Phone:     "+54 (2954) 12-3456",
		})
		require.NoError(t, err)
	})
}

func TestUpdateRecordCoordinates(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := registerUser(t, svc, "update@example.com")

	rec, err := svc.CreateRecord(ctx, owner.ID, RecordInput{
		FirstName: "Ana", LastName: "Alvarez",
		LatText: "-36.62", LngText: "-64.29",
	})
	require.NoError(t, err)

	strPtr := func(s string) *string { return &s }

	t.Run("updating one side with a valid pair moves the pin", func(t *testing.T) {
		got, err := svc.UpdateRecord(ctx, owner.ID, rec.ID, RecordPatch{
			LatText: strPtr("-36,6384"),
			LngText: strPtr("-64,2745"),
		})
		require.NoError(t, err)
		require.True(t, got.HasLocation())
		require.InDelta(t, -36.6384, got.Position.Lat, 1e-9)
	})

	t.Run("touching coordinates with a partial pair clears the position", func(t *testing.T) {
		got, err := svc.UpdateRecord(ctx, owner.ID, rec.ID, RecordPatch{
			LatText: strPtr("-36.63"),
		})
		require.NoError(t, err)
		require.Nil(t, got.Position)
	})

	t.Run("untouched coordinates stay put", func(t *testing.T) {
		_, err := svc.UpdateRecord(ctx, owner.ID, rec.ID, RecordPatch{
			LatText: strPtr("-36.60"), LngText: strPtr("-64.28"),
		})
		require.NoError(t, err)

		got, err := svc.UpdateRecord(ctx, owner.ID, rec.ID, RecordPatch{
			Phone: strPtr("2954111111"),
		})
		require.NoError(t, err)
		require.True(t, got.HasLocation())
	})

	t.Run("empty coordinate texts clear the position", func(t *testing.T) {
		got, err := svc.UpdateRecord(ctx, owner.ID, rec.ID, RecordPatch{
			LatText: strPtr(""), LngText: strPtr(""),
		})
		require.NoError(t, err)
		require.Nil(t, got.Position)
	})
}

func TestRecordOwnership(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	alice := registerUser(t, svc, "alice@example.com")
	mallory := registerUser(t, svc, "mallory@example.com")

	rec, err := svc.CreateRecord(ctx, alice.ID, RecordInput{FirstName: "Secret", LastName: "Client"})
	require.NoError(t, err)

	t.Run("another user's record reads as not found", func(t *testing.T) {
		_, err := svc.GetRecord(ctx, mallory.ID, rec.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("another user cannot update or delete", func(t *testing.T) {
		name := "Hacked"
		_, err := svc.UpdateRecord(ctx, mallory.ID, rec.ID, RecordPatch{FirstName: &name})
		require.ErrorIs(t, err, ErrNotFound)

		err = svc.DeleteRecord(ctx, mallory.ID, rec.ID)
		require.ErrorIs(t, err, ErrNotFound)

		got, err := svc.GetRecord(ctx, alice.ID, rec.ID)
		require.NoError(t, err)
		require.Equal(t, "Secret", got.FirstName)
	})

	t.Run("lists are scoped to the owner", func(t *testing.T) {
		page, err := svc.ListRecords(ctx, mallory.ID, pipeline.Query{})
		require.NoError(t, err)
		require.Zero(t, page.Total)
	})
}

func TestRecordStatsAndNormalize(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()
	owner := registerUser(t, svc, "stats@example.com")

	_, err := svc.CreateRecord(ctx, owner.ID, RecordInput{
		FirstName: "Ana", LastName: "Alvarez",
		LatText: "-36.62", LngText: "-64.29",
	})
	require.NoError(t, err)
	_, err = svc.CreateRecord(ctx, owner.ID, RecordInput{FirstName: "Ben Benitez"})
	require.NoError(t, err)
	_, err = svc.CreateRecord(ctx, owner.ID, RecordInput{FirstName: "Solo"})
	require.NoError(t, err)

	t.Run("stats partition by location", func(t *testing.T) {
		stats, err := svc.RecordStats(ctx, owner.ID)
		require.NoError(t, err)
		require.Equal(t, 3, stats.Total)
		require.Equal(t, 1, stats.WithLocation)
		require.Equal(t, 2, stats.WithoutLocation)
	})

	t.Run("normalize splits space-bearing first names", func(t *testing.T) {
		updated, err := svc.NormalizeNames(ctx, owner.ID)
		require.NoError(t, err)
		require.Equal(t, 1, updated)

		page, err := svc.ListRecords(ctx, owner.ID, pipeline.Query{Text: "benitez"})
		require.NoError(t, err)
		require.Equal(t, 1, page.Total)
		require.Equal(t, "Ben", page.Items[0].FirstName)
		require.Equal(t, "Benitez", page.Items[0].LastName)

		// Running it again finds nothing left to fix.
		updated, err = svc.NormalizeNames(ctx, owner.ID)
		require.NoError(t, err)
		require.Zero(t, updated)
	})
}

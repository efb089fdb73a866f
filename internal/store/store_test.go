package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "wizard.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCatalogRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	saved, err := s.SaveCatalog(ctx, "spring.csv", "course_id\nA\n")
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := s.GetCatalog(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved.Name, got.Name)
	require.Equal(t, saved.Data, got.Data)
	require.True(t, saved.CreatedAt.Equal(got.CreatedAt))

	_, err = s.GetCatalog(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSchedules(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	clock := time.Unix(1700000000, 0)
	s.now = func() time.Time { return clock }

	cat, err := s.SaveCatalog(ctx, "catalog.csv", "")
	require.NoError(t, err)

	first, err := s.SaveSchedule(ctx, Schedule{CatalogID: cat.ID, Request: "{}", Data: "rank\n", Status: StatusSuccess, Report: "ok"})
	require.NoError(t, err)
	clock = clock.Add(time.Minute)
	second, err := s.SaveSchedule(ctx, Schedule{CatalogID: cat.ID, Request: "{}", Status: StatusFailed, Report: "boom"})
	require.NoError(t, err)

	list, err := s.ListSchedules(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
	require.Empty(t, list[1].Data)

	got, err := s.GetSchedule(ctx, first.ID)
	require.NoError(t, err)
	require.Equal(t, "rank\n", got.Data)
	require.Equal(t, StatusSuccess, got.Status)

	require.NoError(t, s.DeleteSchedule(ctx, first.ID))
	_, err = s.GetSchedule(ctx, first.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, s.DeleteSchedule(ctx, first.ID), ErrNotFound)
}

func TestOpenMemory(t *testing.T) {
	s, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer s.Close()

	list, err := s.ListSchedules(context.Background())
	require.NoError(t, err)
	require.Empty(t, list)
}

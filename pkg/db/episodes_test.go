package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?cache=shared&mode=rwc"
	store, err := New(context.Background(), Config{Mode: ModeSQLite, DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleEpisode(id string, nr int, status int, publishDate time.Time) *domain.Episode {
	return &domain.Episode{
		EpisodeID:    id,
		EpisodeNr:    nr,
		Title:        "Episode " + id,
		Description:  "description of " + id,
		Status:       status,
		PublishDate:  publishDate,
		Duration:     "01:02:03",
		EnclosureURL: "https://example.com/" + id + ".mp3",
		SeasonNr:     1,
		Link:         "https://example.com/" + id,
		ImageURL:     "https://example.com/" + id + ".jpg",
	}
}

func TestDB_UpsertAndGetEpisode(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	publishDate := time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC)
	ep := sampleEpisode("ep-1", 1, domain.StatusScheduled, publishDate)
	require.NoError(t, store.UpsertEpisode(ctx, ep))

	got, err := store.GetEpisode(ctx, "ep-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Episode ep-1", got.Title)
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.True(t, got.PublishDate.Equal(publishDate), "got %s", got.PublishDate)
	assert.Equal(t, int64(0), got.Donations)
}

func TestDB_GetEpisode_NotFound(t *testing.T) {
	store := setupTestDB(t)

	got, err := store.GetEpisode(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDB_Upsert_PreservesDonations(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	publishDate := time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC)
	ep := sampleEpisode("ep-1", 1, domain.StatusScheduled, publishDate)
	require.NoError(t, store.UpsertEpisode(ctx, ep))
	require.NoError(t, store.UpdateDonations(ctx, "ep-1", 21000))

	// sync refreshes metadata but the tracked donation total stays
	ep.Title = "updated title"
	ep.PublishDate = publishDate.Add(-2 * time.Hour)
	require.NoError(t, store.UpsertEpisode(ctx, ep))

	got, err := store.GetEpisode(ctx, "ep-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "updated title", got.Title)
	assert.True(t, got.PublishDate.Equal(publishDate.Add(-2*time.Hour)))
	assert.Equal(t, int64(21000), got.Donations)
}

func TestDB_ListEpisodes(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertEpisode(ctx, sampleEpisode("ep-2", 2, domain.StatusScheduled, base.AddDate(0, 0, 7))))
	require.NoError(t, store.UpsertEpisode(ctx, sampleEpisode("ep-1", 1, domain.StatusPublished, base)))

	episodes, err := store.ListEpisodes(ctx)
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, 1, episodes[0].EpisodeNr, "ordered by episode number")
	assert.Equal(t, 2, episodes[1].EpisodeNr)
}

func TestDB_GetNextScheduled(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertEpisode(ctx, sampleEpisode("ep-1", 1, domain.StatusPublished, base)))
	require.NoError(t, store.UpsertEpisode(ctx, sampleEpisode("ep-3", 3, domain.StatusScheduled, base.AddDate(0, 0, 14))))
	require.NoError(t, store.UpsertEpisode(ctx, sampleEpisode("ep-2", 2, domain.StatusScheduled, base.AddDate(0, 0, 7))))

	next, err := store.GetNextScheduled(ctx)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, "ep-2", next.EpisodeID, "earliest scheduled episode wins")
}

func TestDB_GetNextScheduled_NoneScheduled(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertEpisode(ctx, sampleEpisode("ep-1", 1, domain.StatusPublished, base)))

	next, err := store.GetNextScheduled(ctx)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestDB_UpdateDonations(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	ep := sampleEpisode("ep-1", 1, domain.StatusScheduled, time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC))
	require.NoError(t, store.UpsertEpisode(ctx, ep))

	require.NoError(t, store.UpdateDonations(ctx, "ep-1", 5000))
	got, err := store.GetEpisode(ctx, "ep-1")
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.Donations)

	// missing episode is an error
	err = store.UpdateDonations(ctx, "missing", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDB_UpdatePublishDate(t *testing.T) {
	store := setupTestDB(t)
	ctx := context.Background()

	original := time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpsertEpisode(ctx, sampleEpisode("ep-1", 1, domain.StatusScheduled, original)))

	moved := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.UpdatePublishDate(ctx, "ep-1", moved))

	got, err := store.GetEpisode(ctx, "ep-1")
	require.NoError(t, err)
	assert.True(t, got.PublishDate.Equal(moved), "got %s", got.PublishDate)
}

func TestDB_SQLiteFallback(t *testing.T) {
	// postgres mode with an unreachable server falls back to sqlite
	dsn := "file:" + filepath.Join(t.TempDir(), "fallback.db") + "?cache=shared&mode=rwc"
	store, err := New(context.Background(), Config{
		Mode:        ModePostgres,
		PostgresDSN: "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1",
		DSN:         dsn,
	})
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, "sqlite", store.Driver())
	require.NoError(t, store.Ping(context.Background()))
}

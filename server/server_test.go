package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodesignal/boostwatch/pkg/domain"
	"github.com/nodesignal/boostwatch/server/mocks"
)

func testServer(t *testing.T) (*Server, *mocks.DatabaseMock, *mocks.EpisodeSourceMock, *httptest.Server) {
	t.Helper()

	db := &mocks.DatabaseMock{
		ListEpisodesFunc:     func(context.Context) ([]domain.Episode, error) { return nil, nil },
		GetNextScheduledFunc: func(context.Context) (*domain.Episode, error) { return nil, nil },
		UpsertEpisodeFunc:    func(context.Context, *domain.Episode) error { return nil },
		UpdateDonationsFunc:  func(context.Context, string, int64) error { return nil },
	}
	source := &mocks.EpisodeSourceMock{
		EpisodesFunc: func(context.Context) ([]domain.Episode, error) { return nil, nil },
	}
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
		GetAPITokenFunc:     func() string { return "secret-key" },
	}

	srv := New(cfg, db, source, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return srv, db, source, ts
}

func authedRequest(t *testing.T, method, url string, body string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("X-API-KEY", "secret-key")
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func TestServer_Health(t *testing.T) {
	_, _, _, ts := testServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "test", body["version"])
}

func TestServer_AuthRequired(t *testing.T) {
	_, _, _, ts := testServer(t)

	t.Run("missing key", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/api/v1/episodes")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong key", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/episodes", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("X-API-KEY", "wrong")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid key", func(t *testing.T) {
		resp, err := http.DefaultClient.Do(authedRequest(t, http.MethodGet, ts.URL+"/api/v1/episodes", ""))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestServer_UpdateDonations(t *testing.T) {
	_, db, _, ts := testServer(t)

	resp, err := http.DefaultClient.Do(authedRequest(t, http.MethodPost, ts.URL+"/api/v1/donations",
		`{"episode_id": "ep-1", "amount": 21000}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, db.UpdateDonationsCalls(), 1)
	assert.Equal(t, "ep-1", db.UpdateDonationsCalls()[0].EpisodeID)
	assert.Equal(t, int64(21000), db.UpdateDonationsCalls()[0].Amount)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "ep-1", body["episode_id"])
}

func TestServer_UpdateDonations_Validation(t *testing.T) {
	_, db, _, ts := testServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `not json`},
		{"missing episode id", `{"amount": 100}`},
		{"negative amount", `{"episode_id": "ep-1", "amount": -5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.DefaultClient.Do(authedRequest(t, http.MethodPost, ts.URL+"/api/v1/donations", tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
	assert.Empty(t, db.UpdateDonationsCalls())
}

func TestServer_Sync(t *testing.T) {
	_, db, source, ts := testServer(t)
	source.EpisodesFunc = func(context.Context) ([]domain.Episode, error) {
		return []domain.Episode{
			{EpisodeID: "ep-1", PublishDate: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)},
			{EpisodeID: "ep-2", PublishDate: time.Date(2024, 2, 1, 22, 0, 0, 0, time.UTC)},
		}, nil
	}

	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			resp, err := http.DefaultClient.Do(authedRequest(t, method, ts.URL+"/api/v1/sync", ""))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, float64(2), body["count"])
		})
	}
	assert.Len(t, db.UpsertEpisodeCalls(), 4, "two episodes per sync call")
}

func TestServer_Sync_SourceFailure(t *testing.T) {
	_, _, source, ts := testServer(t)
	source.EpisodesFunc = func(context.Context) ([]domain.Episode, error) {
		return nil, errors.New("hosting api down")
	}

	resp, err := http.DefaultClient.Do(authedRequest(t, http.MethodPost, ts.URL+"/api/v1/sync", ""))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestServer_ListEpisodes(t *testing.T) {
	_, db, _, ts := testServer(t)
	db.ListEpisodesFunc = func(context.Context) ([]domain.Episode, error) {
		return []domain.Episode{
			{EpisodeID: "ep-1", EpisodeNr: 1, Title: "First", Donations: 1500,
				PublishDate: time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)},
		}, nil
	}

	resp, err := http.DefaultClient.Do(authedRequest(t, http.MethodGet, ts.URL+"/api/v1/episodes", ""))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var episodes []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&episodes))
	require.Len(t, episodes, 1)
	assert.Equal(t, "ep-1", episodes[0]["episode_id"])
	assert.Equal(t, float64(1500), episodes[0]["donations"])
}

func TestServer_NextEpisode(t *testing.T) {
	_, db, _, ts := testServer(t)

	t.Run("found", func(t *testing.T) {
		db.GetNextScheduledFunc = func(context.Context) (*domain.Episode, error) {
			return &domain.Episode{EpisodeID: "ep-2", Status: domain.StatusScheduled,
				PublishDate: time.Date(2024, 2, 1, 22, 0, 0, 0, time.UTC)}, nil
		}

		resp, err := http.DefaultClient.Do(authedRequest(t, http.MethodGet, ts.URL+"/api/v1/episodes/next", ""))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ep-2", body["episode_id"])
	})

	t.Run("none scheduled", func(t *testing.T) {
		db.GetNextScheduledFunc = func(context.Context) (*domain.Episode, error) { return nil, nil }

		resp, err := http.DefaultClient.Do(authedRequest(t, http.MethodGet, ts.URL+"/api/v1/episodes/next", ""))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestServer_RunAndShutdown(t *testing.T) {
	srv, _, _, _ := testServer(t) //nolint:dogsled // only the server is needed here

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}

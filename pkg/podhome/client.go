// Package podhome implements a client for the episode hosting API.
// It lists scheduled episodes and pushes reschedule and publish-now
// requests back to the host.
package podhome

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

// Client talks to the episode hosting API, authenticated with an API key
type Client struct {
	client        *http.Client
	apiKey        string
	episodesURL   string
	rescheduleURL string
}

// New creates a hosting API client
func New(apiKey, episodesURL, rescheduleURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		client:        &http.Client{Timeout: timeout},
		apiKey:        apiKey,
		episodesURL:   episodesURL,
		rescheduleURL: rescheduleURL,
	}
}

// episodeResp mirrors the wire format of the hosting API episode list
type episodeResp struct {
	EpisodeID    string `json:"episode_id"`
	EpisodeNr    int    `json:"episode_nr"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       int    `json:"status"`
	PublishDate  string `json:"publish_date"`
	Duration     string `json:"duration"`
	EnclosureURL string `json:"enclosure_url"`
	SeasonNr     int    `json:"season_nr"`
	Link         string `json:"link"`
	ImageURL     string `json:"image_url"`
	Donations    int64  `json:"donations"`
}

// publishDateFormats covers the timestamp variants the hosting API emits.
// Naive timestamps are interpreted as UTC.
var publishDateFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parsePublishDate(s string) (time.Time, error) {
	for _, format := range publishDateFormats {
		if ts, err := time.Parse(format, s); err == nil {
			return ts.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized publish date %q", s)
}

// Episodes returns all episodes known to the host, sorted by publish date
// with the earliest first
func (c *Client) Episodes(ctx context.Context) ([]domain.Episode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.episodesURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create episodes request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request episodes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("episodes request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var wire []episodeResp
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, fmt.Errorf("decode episodes response: %w", err)
	}

	episodes := make([]domain.Episode, 0, len(wire))
	for _, e := range wire {
		publishDate, err := parsePublishDate(e.PublishDate)
		if err != nil {
			return nil, fmt.Errorf("episode %s: %w", e.EpisodeID, err)
		}
		episodes = append(episodes, domain.Episode{
			EpisodeID:    e.EpisodeID,
			EpisodeNr:    e.EpisodeNr,
			Title:        e.Title,
			Description:  e.Description,
			Status:       e.Status,
			PublishDate:  publishDate,
			Duration:     e.Duration,
			EnclosureURL: e.EnclosureURL,
			SeasonNr:     e.SeasonNr,
			Link:         e.Link,
			ImageURL:     e.ImageURL,
			Donations:    e.Donations,
		})
	}

	sort.Slice(episodes, func(i, j int) bool { return episodes[i].PublishDate.Before(episodes[j].PublishDate) })
	return episodes, nil
}

// NextScheduled returns the scheduled episode with the earliest publish date,
// or nil when nothing is scheduled
func (c *Client) NextScheduled(ctx context.Context) (*domain.Episode, error) {
	episodes, err := c.Episodes(ctx)
	if err != nil {
		return nil, err
	}
	for i := range episodes {
		if episodes[i].Status == domain.StatusScheduled {
			return &episodes[i], nil
		}
	}
	return nil, nil
}

// Reschedule moves an episode to the given publish time
func (c *Client) Reschedule(ctx context.Context, episodeID string, publishDate time.Time) error {
	payload := map[string]any{
		"episode_id":   episodeID,
		"publish_date": publishDate.UTC().Format(time.RFC3339),
	}
	return c.post(ctx, payload)
}

// PublishNow asks the host to publish an episode immediately
func (c *Client) PublishNow(ctx context.Context, episodeID string) error {
	payload := map[string]any{
		"episode_id":  episodeID,
		"publish_now": true,
	}
	return c.post(ctx, payload)
}

func (c *Client) post(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rescheduleURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create reschedule request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send reschedule request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("reschedule request failed with status %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

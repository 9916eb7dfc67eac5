package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
	<title>Test Podcast</title>
	<item>
		<title>Episode 42 - Latest</title>
		<description><![CDATA[<p>Newest episode</p>]]></description>
		<enclosure url="https://example.com/ep42.mp3" type="audio/mpeg" length="123"/>
		<pubDate>Sat, 06 Jan 2024 08:00:00 GMT</pubDate>
	</item>
	<item>
		<title>Episode 41 - Older</title>
		<description><![CDATA[<p>Older episode</p>]]></description>
		<enclosure url="https://example.com/ep41.mp3" type="audio/mpeg" length="123"/>
		<pubDate>Sat, 30 Dec 2023 08:00:00 GMT</pubDate>
	</item>
</channel>
</rss>`

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParser_Episodes(t *testing.T) {
	srv := feedServer(t)
	parser := NewParser(time.Second, "test-agent")

	items, err := parser.Episodes(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Episode 42 - Latest", items[0].Title)
	assert.Contains(t, items[0].Description, "Newest episode")
	assert.Equal(t, "https://example.com/ep42.mp3", items[0].EnclosureURL)
	assert.Equal(t, time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC), items[0].Published.UTC())
}

func TestParser_Episode(t *testing.T) {
	srv := feedServer(t)
	parser := NewParser(time.Second, "test-agent")

	item, err := parser.Episode(context.Background(), srv.URL, 2)
	require.NoError(t, err)
	assert.Equal(t, "Episode 41 - Older", item.Title)

	_, err = parser.Episode(context.Background(), srv.URL, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = parser.Episode(context.Background(), srv.URL, 0)
	require.Error(t, err)
}

func TestParser_FindByTitle(t *testing.T) {
	srv := feedServer(t)
	parser := NewParser(time.Second, "test-agent")

	item, err := parser.FindByTitle(context.Background(), srv.URL, "episode 41")
	require.NoError(t, err)
	assert.Equal(t, "Episode 41 - Older", item.Title)

	_, err = parser.FindByTitle(context.Background(), srv.URL, "does not exist")
	require.Error(t, err)
}

func TestParser_FetchErrors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusGone)
		}))
		defer srv.Close()

		parser := NewParser(time.Second, "test-agent")
		_, err := parser.Episodes(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "410")
	})

	t.Run("invalid xml", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not a feed at all"))
		}))
		defer srv.Close()

		parser := NewParser(time.Second, "test-agent")
		_, err := parser.Episodes(context.Background(), srv.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse feed")
	})
}

// Package feed fetches the podcast RSS feed and looks up episode metadata
// for downstream publishing.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is the episode metadata pulled from the podcast feed
type Item struct {
	Title        string
	Description  string
	EnclosureURL string
	Published    time.Time
}

// Parser fetches and parses the podcast RSS feed
type Parser struct {
	client    *http.Client
	userAgent string
}

// NewParser creates a new feed parser
func NewParser(timeout time.Duration, userAgent string) *Parser {
	return &Parser{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Episodes fetches the feed and returns all items in feed order, newest
// first for a typical podcast feed
func (p *Parser) Episodes(ctx context.Context, feedURL string) ([]Item, error) {
	body, err := p.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		item := Item{
			Title:       it.Title,
			Description: it.Description,
		}
		if item.Description == "" {
			item.Description = it.Content
		}
		if len(it.Enclosures) > 0 {
			item.EnclosureURL = it.Enclosures[0].URL
		}
		if it.PublishedParsed != nil {
			item.Published = *it.PublishedParsed
		}
		items = append(items, item)
	}
	return items, nil
}

// Episode returns a single item by 1-based position in the feed
func (p *Parser) Episode(ctx context.Context, feedURL string, position int) (*Item, error) {
	items, err := p.Episodes(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	if position < 1 || position > len(items) {
		return nil, fmt.Errorf("episode position %d not found in feed with %d items", position, len(items))
	}
	item := items[position-1]
	return &item, nil
}

// FindByTitle returns the first item whose title contains the query,
// case-insensitive
func (p *Parser) FindByTitle(ctx context.Context, feedURL, query string) (*Item, error) {
	items, err := p.Episodes(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	lower := strings.ToLower(query)
	for i := range items {
		if strings.Contains(strings.ToLower(items[i].Title), lower) {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("no episode matching %q in feed", query)
}

// fetch retrieves content from a URL
func (p *Parser) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return resp.Body, nil
}

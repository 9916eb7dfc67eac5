package observer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

// Snapshotter fetches a funding page and reduces it to a stable text snapshot
type Snapshotter interface {
	Snapshot(ctx context.Context, pageURL string) (string, error)
}

// Scrape observes a crowdfunding page by snapshotting its relevant text.
// Transient fetch failures are retried with a fixed delay before the
// observation is reported as failed.
type Scrape struct {
	snapshotter Snapshotter
	pageURL     string
	attempts    int
	delay       time.Duration
}

// NewScrape creates a page-scraping observer for the given funding page
func NewScrape(snapshotter Snapshotter, pageURL string, attempts int, delay time.Duration) *Scrape {
	if attempts < 1 {
		attempts = 1
	}
	return &Scrape{snapshotter: snapshotter, pageURL: pageURL, attempts: attempts, delay: delay}
}

// Observe fetches the funding page and returns its text snapshot
func (s *Scrape) Observe(ctx context.Context) (domain.Observation, error) {
	var snapshot string
	err := repeater.NewFixed(s.attempts, s.delay).Do(ctx, func() error {
		var e error
		snapshot, e = s.snapshotter.Snapshot(ctx, s.pageURL)
		return e
	})
	if err != nil {
		return domain.Observation{}, fmt.Errorf("fetch funding page: %w", err)
	}
	return domain.Observation{Snapshot: snapshot, Source: domain.SourceScrapedText}, nil
}

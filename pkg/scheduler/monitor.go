// Package scheduler runs the release boosting loop: observe the donation
// total, detect changes, recompute the publish time and push the result to
// the hosting API, the episode store and the notification sink.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/nodesignal/boostwatch/pkg/boost"
	"github.com/nodesignal/boostwatch/pkg/domain"
)

//go:generate moq -out mocks/observer.go -pkg mocks -skip-ensure -fmt goimports . Observer
//go:generate moq -out mocks/episode_api.go -pkg mocks -skip-ensure -fmt goimports . EpisodeAPI
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Observer yields the current donation observation
type Observer interface {
	Observe(ctx context.Context) (domain.Observation, error)
}

// EpisodeAPI covers the hosting API operations the monitor needs
type EpisodeAPI interface {
	NextScheduled(ctx context.Context) (*domain.Episode, error)
	Reschedule(ctx context.Context, episodeID string, publishDate time.Time) error
	PublishNow(ctx context.Context, episodeID string) error
}

// Store persists episodes and their tracked donation totals
type Store interface {
	UpsertEpisode(ctx context.Context, ep *domain.Episode) error
	GetEpisode(ctx context.Context, episodeID string) (*domain.Episode, error)
	UpdateDonations(ctx context.Context, episodeID string, amount int64) error
	UpdatePublishDate(ctx context.Context, episodeID string, publishDate time.Time) error
}

// Notifier announces boosting actions
type Notifier interface {
	Notify(ctx context.Context, episodeTitle, action string) error
}

// Config holds monitor configuration
type Config struct {
	Interval          time.Duration
	NotifyThreshold   int64
	DisplayTimezone   string
	Policy            boost.ReductionPolicy
	EmptySnapshotDone bool // treat an empty snapshot as campaign complete
}

// Monitor drives the periodic boosting cycle. One instance watches one
// campaign and the next scheduled episode.
type Monitor struct {
	observer  Observer
	api       EpisodeAPI
	store     Store
	notifier  Notifier
	policy    boost.ReductionPolicy
	extractor boost.Extractor
	detector  boost.Detector
	interval  time.Duration
	threshold int64
	display   *time.Location

	lastSnapshot string // previous page snapshot, scrape mode only
	now          func() time.Time

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewMonitor creates a monitor. The notifier may be nil when notifications
// are disabled.
func NewMonitor(observer Observer, api EpisodeAPI, store Store, notifier Notifier, cfg Config) *Monitor {
	if cfg.Interval == 0 {
		cfg.Interval = 30 * time.Second
	}

	display := time.UTC
	if cfg.DisplayTimezone != "" {
		loc, err := time.LoadLocation(cfg.DisplayTimezone)
		if err != nil {
			lgr.Printf("[WARN] unknown display timezone %q, using UTC: %v", cfg.DisplayTimezone, err)
		} else {
			display = loc
		}
	}

	return &Monitor{
		observer:  observer,
		api:       api,
		store:     store,
		notifier:  notifier,
		policy:    cfg.Policy,
		extractor: boost.Extractor{FinalGoal: cfg.Policy.FinalGoal},
		detector:  boost.Detector{EmptyMeansComplete: cfg.EmptySnapshotDone},
		interval:  cfg.Interval,
		threshold: cfg.NotifyThreshold,
		display:   display,
		now:       time.Now,
	}
}

// Start begins the monitor loop
func (m *Monitor) Start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go m.loop(ctx)

	lgr.Printf("[INFO] boosting monitor started with interval %v, goal %d sats", m.interval, m.policy.FinalGoal)
}

// Stop gracefully stops the monitor
func (m *Monitor) Stop() {
	lgr.Printf("[INFO] stopping boosting monitor...")
	if m.cancel != nil {
		m.cancel()
	}
	m.wg.Wait()
	lgr.Printf("[INFO] boosting monitor stopped")
}

func (m *Monitor) loop(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	// run immediately on start
	m.runCycle(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.runCycle(ctx)
		}
	}
}

// runCycle performs one observation cycle. Errors are logged, never fatal,
// so a bad fetch or API hiccup only skips one cycle.
func (m *Monitor) runCycle(ctx context.Context) {
	episode, err := m.api.NextScheduled(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to get next scheduled episode: %v", err)
		return
	}
	if episode == nil {
		lgr.Printf("[DEBUG] no scheduled episode, nothing to boost")
		return
	}

	if err := m.store.UpsertEpisode(ctx, episode); err != nil {
		lgr.Printf("[ERROR] failed to store episode %s: %v", episode.EpisodeID, err)
		return
	}

	obs, err := m.observer.Observe(ctx)
	if err != nil {
		lgr.Printf("[ERROR] observation failed: %v", err)
		return
	}

	switch obs.Source {
	case domain.SourceScrapedText:
		m.processSnapshot(ctx, episode, obs.Snapshot)
	case domain.SourceWalletBalance:
		m.processBalance(ctx, episode, obs.Amount)
	default:
		lgr.Printf("[ERROR] unknown observation source %q", obs.Source)
	}
}

// processSnapshot handles a scraped page snapshot. The first snapshot seeds
// the baseline without triggering an action.
func (m *Monitor) processSnapshot(ctx context.Context, episode *domain.Episode, snapshot string) {
	if m.lastSnapshot == "" {
		lgr.Printf("[INFO] first snapshot captured, %d bytes", len(snapshot))
		m.lastSnapshot = snapshot
		return
	}

	if !m.detector.Changed(m.lastSnapshot, snapshot) {
		lgr.Printf("[DEBUG] no changes detected")
		return
	}
	lgr.Printf("[INFO] campaign change detected for episode %d", episode.EpisodeNr)

	amount := m.extractor.DonationAmount(snapshot)
	if amount <= 0 {
		lgr.Printf("[WARN] change detected but no donation amount extracted")
		m.lastSnapshot = snapshot
		return
	}

	m.applyDonation(ctx, episode, amount, m.detector.GoalReached(snapshot))
	m.lastSnapshot = snapshot
}

// processBalance handles a wallet balance observation. The stored donation
// total is the baseline, so a restart does not replay old boosts.
func (m *Monitor) processBalance(ctx context.Context, episode *domain.Episode, balance int64) {
	stored, err := m.store.GetEpisode(ctx, episode.EpisodeID)
	if err != nil {
		lgr.Printf("[ERROR] failed to load stored episode %s: %v", episode.EpisodeID, err)
		return
	}
	if stored != nil && stored.Donations == balance {
		lgr.Printf("[DEBUG] no changes detected, balance %d sats", balance)
		return
	}
	lgr.Printf("[INFO] wallet balance changed to %d sats for episode %d", balance, episode.EpisodeNr)

	m.applyDonation(ctx, episode, balance, m.policy.GoalReached(balance))
}

// applyDonation recomputes the publish time for the donation total and pushes
// the resulting action to the hosting API, the store and the notifier.
func (m *Monitor) applyDonation(ctx context.Context, episode *domain.Episode, amount int64, goalReached bool) {
	adjusted, changed := m.policy.AdjustedTime(amount, episode.PublishDate)

	lgr.Printf("[INFO] donation amount: %d sats, reduction: %d minutes", amount, m.policy.Reduction(amount))

	recorded := amount
	var action string
	switch {
	case goalReached && changed && !m.now().UTC().Before(adjusted):
		// publish immediately, the campaign is complete and the adjusted
		// time is already in the past
		lgr.Printf("[INFO] goal reached for episode %d, publishing now", episode.EpisodeNr)
		if err := m.api.PublishNow(ctx, episode.EpisodeID); err != nil {
			lgr.Printf("[ERROR] failed to publish episode %s: %v", episode.EpisodeID, err)
			return
		}
		recorded = m.policy.FinalGoal
		action = "Published immediately"

	case changed:
		if err := m.api.Reschedule(ctx, episode.EpisodeID, adjusted); err != nil {
			lgr.Printf("[ERROR] failed to reschedule episode %s: %v", episode.EpisodeID, err)
			return
		}
		if err := m.store.UpdatePublishDate(ctx, episode.EpisodeID, adjusted); err != nil {
			lgr.Printf("[ERROR] failed to store publish date for %s: %v", episode.EpisodeID, err)
		}
		action = fmt.Sprintf("Rescheduled to %s", adjusted.Format(time.RFC3339))
		lgr.Printf("[INFO] episode %d rescheduled to %s (%s local)", episode.EpisodeNr,
			adjusted.Format(time.RFC3339), adjusted.In(m.display).Format("2006-01-02 15:04:05 MST"))

	default:
		lgr.Printf("[DEBUG] publish time unchanged at %s", episode.PublishDate.Format(time.RFC3339))
	}

	if err := m.store.UpdateDonations(ctx, episode.EpisodeID, recorded); err != nil {
		lgr.Printf("[ERROR] failed to update donations for %s: %v", episode.EpisodeID, err)
	}

	if action != "" && m.notifier != nil && recorded >= m.threshold {
		if err := m.notifier.Notify(ctx, episode.Title, action); err != nil {
			lgr.Printf("[ERROR] failed to send notification: %v", err)
		}
	}
}

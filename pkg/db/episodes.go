package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

// episodeRow maps the episodes table
type episodeRow struct {
	EpisodeID    string    `db:"episode_id"`
	EpisodeNr    int       `db:"episode_nr"`
	Title        string    `db:"title"`
	Description  string    `db:"description"`
	Status       int       `db:"status"`
	PublishDate  time.Time `db:"publish_date"`
	Duration     string    `db:"duration"`
	EnclosureURL string    `db:"enclosure_url"`
	SeasonNr     int       `db:"season_nr"`
	Link         string    `db:"link"`
	ImageURL     string    `db:"image_url"`
	Donations    int64     `db:"donations"`
}

func (r *episodeRow) toDomain() domain.Episode {
	return domain.Episode{
		EpisodeID:    r.EpisodeID,
		EpisodeNr:    r.EpisodeNr,
		Title:        r.Title,
		Description:  r.Description,
		Status:       r.Status,
		PublishDate:  r.PublishDate.UTC(),
		Duration:     r.Duration,
		EnclosureURL: r.EnclosureURL,
		SeasonNr:     r.SeasonNr,
		Link:         r.Link,
		ImageURL:     r.ImageURL,
		Donations:    r.Donations,
	}
}

// UpsertEpisode inserts an episode or refreshes its metadata. Donations are
// tracked by the monitor and never overwritten on sync.
func (d *DB) UpsertEpisode(ctx context.Context, ep *domain.Episode) error {
	query := d.conn.Rebind(`
		INSERT INTO episodes (
			episode_id, episode_nr, title, description, status, publish_date,
			duration, enclosure_url, season_nr, link, image_url, donations
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (episode_id) DO UPDATE SET
			episode_nr = excluded.episode_nr,
			title = excluded.title,
			description = excluded.description,
			status = excluded.status,
			publish_date = excluded.publish_date,
			duration = excluded.duration,
			enclosure_url = excluded.enclosure_url,
			season_nr = excluded.season_nr,
			link = excluded.link,
			image_url = excluded.image_url
	`)

	return d.withWriteRetry(ctx, func() error {
		_, err := d.conn.ExecContext(ctx, query,
			ep.EpisodeID, ep.EpisodeNr, ep.Title, ep.Description, ep.Status, ep.PublishDate.UTC(),
			ep.Duration, ep.EnclosureURL, ep.SeasonNr, ep.Link, ep.ImageURL, ep.Donations)
		if err != nil {
			return fmt.Errorf("upsert episode %s: %w", ep.EpisodeID, err)
		}
		return nil
	})
}

// GetEpisode retrieves a single episode by ID, nil when not found
func (d *DB) GetEpisode(ctx context.Context, episodeID string) (*domain.Episode, error) {
	query := d.conn.Rebind(`SELECT * FROM episodes WHERE episode_id = ?`)

	var row episodeRow
	err := d.conn.GetContext(ctx, &row, query, episodeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get episode %s: %w", episodeID, err)
	}
	ep := row.toDomain()
	return &ep, nil
}

// ListEpisodes returns all episodes ordered by episode number
func (d *DB) ListEpisodes(ctx context.Context) ([]domain.Episode, error) {
	var rows []episodeRow
	err := d.conn.SelectContext(ctx, &rows, `SELECT * FROM episodes ORDER BY episode_nr`)
	if err != nil {
		return nil, fmt.Errorf("list episodes: %w", err)
	}

	episodes := make([]domain.Episode, len(rows))
	for i := range rows {
		episodes[i] = rows[i].toDomain()
	}
	return episodes, nil
}

// GetNextScheduled returns the scheduled episode with the earliest publish
// date, nil when nothing is scheduled
func (d *DB) GetNextScheduled(ctx context.Context) (*domain.Episode, error) {
	query := d.conn.Rebind(`
		SELECT * FROM episodes
		WHERE status = ?
		ORDER BY publish_date ASC
		LIMIT 1
	`)

	var row episodeRow
	err := d.conn.GetContext(ctx, &row, query, domain.StatusScheduled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get next scheduled episode: %w", err)
	}
	ep := row.toDomain()
	return &ep, nil
}

// UpdateDonations sets the tracked donation total for an episode
func (d *DB) UpdateDonations(ctx context.Context, episodeID string, amount int64) error {
	query := d.conn.Rebind(`UPDATE episodes SET donations = ? WHERE episode_id = ?`)

	return d.withWriteRetry(ctx, func() error {
		res, err := d.conn.ExecContext(ctx, query, amount, episodeID)
		if err != nil {
			return fmt.Errorf("update donations for %s: %w", episodeID, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("rows affected for %s: %w", episodeID, err)
		}
		if affected == 0 {
			return fmt.Errorf("episode %s not found", episodeID)
		}
		return nil
	})
}

// UpdatePublishDate moves an episode to a new publish time
func (d *DB) UpdatePublishDate(ctx context.Context, episodeID string, publishDate time.Time) error {
	query := d.conn.Rebind(`UPDATE episodes SET publish_date = ? WHERE episode_id = ?`)

	return d.withWriteRetry(ctx, func() error {
		_, err := d.conn.ExecContext(ctx, query, publishDate.UTC(), episodeID)
		if err != nil {
			return fmt.Errorf("update publish date for %s: %w", episodeID, err)
		}
		return nil
	})
}

// withWriteRetry retries writes on SQLite lock contention, other errors abort
func (d *DB) withWriteRetry(ctx context.Context, fn func() error) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if err := fn(); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: err}
		}
		return nil
	})
}

package domain

import "time"

// EpisodeStatus values as used by the episode API and the local store.
const (
	StatusDraft     = 0
	StatusScheduled = 1
	StatusPublished = 2
)

// Episode represents a podcast episode being adjusted
type Episode struct {
	EpisodeID    string    `json:"episode_id"`
	EpisodeNr    int       `json:"episode_nr"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       int       `json:"status"`
	PublishDate  time.Time `json:"publish_date"` // UTC
	Duration     string    `json:"duration"`
	EnclosureURL string    `json:"enclosure_url"`
	SeasonNr     int       `json:"season_nr"`
	Link         string    `json:"link"`
	ImageURL     string    `json:"image_url"`
	Donations    int64     `json:"donations"` // satoshis recorded at last reschedule
}

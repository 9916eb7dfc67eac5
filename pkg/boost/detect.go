package boost

import (
	"regexp"
	"strings"
)

var goalMarkerRe = regexp.MustCompile(`(?i)100%|abgeschlossen|completed`)

// Detector compares funding snapshots between poll cycles and recognizes
// completed campaigns.
type Detector struct {
	// EmptyMeansComplete treats an empty snapshot as the funding page itself
	// reporting completion. Off by default: an empty extraction is far more
	// likely a transient scrape failure than a finished campaign, and firing
	// an immediate publish on it would be wrong.
	EmptyMeansComplete bool
}

// Changed reports whether the current snapshot differs from the previous
// one. The first cycle has no previous snapshot and reports no change; an
// empty current snapshot means no new data and is retried next cycle.
func (d Detector) Changed(previous, current string) bool {
	if previous == "" || current == "" {
		return false
	}
	return previous != current
}

// GoalReached reports whether the snapshot signals a fully funded campaign.
func (d Detector) GoalReached(content string) bool {
	if strings.TrimSpace(content) == "" {
		return d.EmptyMeansComplete
	}
	return goalMarkerRe.MatchString(content)
}

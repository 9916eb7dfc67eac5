package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetector_Changed(t *testing.T) {
	d := Detector{}

	tests := []struct {
		name     string
		previous string
		current  string
		want     bool
	}{
		{"first run without previous", "", "Goal: 1000", false},
		{"empty current means no new data", "Goal: 1000", "", false},
		{"identical snapshots", "Goal: 1000 | Current: 500", "Goal: 1000 | Current: 500", false},
		{"different snapshots", "Goal: 1000 | Current: 500", "Goal: 1000 | Current: 600", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Changed(tt.previous, tt.current))
		})
	}
}

func TestDetector_GoalReached(t *testing.T) {
	d := Detector{}

	assert.True(t, d.GoalReached("funded 100% of the goal"))
	assert.True(t, d.GoalReached("Kampagne abgeschlossen"))
	assert.True(t, d.GoalReached("campaign COMPLETED yesterday"))
	assert.False(t, d.GoalReached("raised 95% so far"))

	// empty content is a transient scrape failure unless explicitly configured
	assert.False(t, d.GoalReached("   "))
	guarded := Detector{EmptyMeansComplete: true}
	assert.True(t, guarded.GoalReached(""))
}

// Package observer provides the pluggable donation observation capability.
// The monitor loop does not care whether the total comes from a scraped
// funding page or a wallet balance endpoint; both variants satisfy the same
// interface and are selected by configuration.
package observer

import (
	"context"

	"github.com/nodesignal/boostwatch/pkg/domain"
)

// Observer yields a point-in-time donation observation
type Observer interface {
	Observe(ctx context.Context) (domain.Observation, error)
}

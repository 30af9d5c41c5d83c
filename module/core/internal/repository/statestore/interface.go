package statestore

import (
	"context"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

// Store backs the trip detector's per-device transition state. The
// shipped implementation is in-memory, so state does not survive a
// restart; a shared keyed store can be injected for multi-instance
// deployments without touching the detector.
type Store interface {
	Get(ctx context.Context, deviceID string) (domain.TripState, error)
	Put(ctx context.Context, deviceID string, state domain.TripState) error
}

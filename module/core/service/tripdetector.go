package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/database"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/publisher"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/statestore"
)

// TripDetector turns a stream of per-device location samples into
// completed trips. A trip is recorded only for a transition between two
// different zones; leaving all zones clears the state without
// evaluating a trip, so zone-to-open-space movement never produces one.
type TripDetector struct {
	states  statestore.Store
	trips   database.TripRepository
	pub     publisher.TripPublisher
	fences  []domain.Geofence
	minTime time.Duration
	minDist float64

	// serializes samples per device; distinct devices run in parallel
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewTripDetector(states statestore.Store, trips database.TripRepository, pub publisher.TripPublisher, fences []domain.Geofence, minTime time.Duration, minDist float64) *TripDetector {
	return &TripDetector{
		states:  states,
		trips:   trips,
		pub:     pub,
		fences:  fences,
		minTime: minTime,
		minDist: minDist,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Process applies one sample to the device's state machine. It returns
// the trip that was recorded, or nil when the sample did not complete a
// qualifying zone-to-zone transition. A transition that fails the
// minimum duration or distance still re-anchors the entry point at the
// new zone; the short movement is silently dropped.
func (d *TripDetector) Process(ctx context.Context, deviceID string, p domain.Point, ts time.Time) (*domain.Trip, error) {
	lock := d.deviceLock(deviceID)
	lock.Lock()
	defer lock.Unlock()

	state, err := d.states.Get(ctx, deviceID)
	if err != nil {
		return nil, fmt.Errorf("get trip state: %w", err)
	}

	zone, inZone := ResolveZone(p, d.fences)

	switch {
	case state.Outside() && inZone:
		// first entry into a zone
		state = enteredState(zone, p, ts)

	case !inZone:
		// outside -> outside is a no-op; leaving a zone clears the
		// state without recording a trip
		if state.Outside() {
			return nil, nil
		}
		state = domain.TripState{}

	case state.Zone == zone:
		// still in the same zone, entry snapshot kept
		return nil, nil

	default:
		// zone -> different zone
		trip, err := d.finishTrip(ctx, deviceID, state, p, ts)
		if err != nil {
			return nil, err
		}
		state = enteredState(zone, p, ts)
		if err := d.states.Put(ctx, deviceID, state); err != nil {
			return trip, fmt.Errorf("put trip state: %w", err)
		}
		return trip, nil
	}

	if err := d.states.Put(ctx, deviceID, state); err != nil {
		return nil, fmt.Errorf("put trip state: %w", err)
	}
	return nil, nil
}

// finishTrip evaluates the completed transition and records the trip
// when it meets both thresholds.
func (d *TripDetector) finishTrip(ctx context.Context, deviceID string, state domain.TripState, p domain.Point, ts time.Time) (*domain.Trip, error) {
	duration := ts.Sub(time.Unix(state.EnteredAt, 0))
	distance := Distance(state.EntryPos, p)
	if duration < d.minTime || distance < d.minDist {
		return nil, nil
	}

	trip := &domain.Trip{
		DeviceID:  deviceID,
		StartTime: time.Unix(state.EnteredAt, 0).UTC(),
		EndTime:   ts.UTC(),
		StartLat:  state.EntryPos.Lat,
		StartLon:  state.EntryPos.Lon,
		EndLat:    p.Lat,
		EndLon:    p.Lon,
		DistanceM: distance,
		DurationS: duration.Seconds(),
	}

	if err := d.trips.Insert(ctx, trip); err != nil {
		return nil, fmt.Errorf("insert trip: %w", err)
	}

	if d.pub != nil {
		if err := d.pub.PublishTrip(ctx, trip); err != nil {
			log.Printf("publish trip event: %v", err)
		}
	}

	return trip, nil
}

func (d *TripDetector) deviceLock(deviceID string) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()
	lock, ok := d.locks[deviceID]
	if !ok {
		lock = &sync.Mutex{}
		d.locks[deviceID] = lock
	}
	return lock
}

func enteredState(zone string, p domain.Point, ts time.Time) domain.TripState {
	return domain.TripState{
		Zone:      zone,
		EnteredAt: ts.Unix(),
		EntryPos:  p,
	}
}

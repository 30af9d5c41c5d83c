package database

import (
	"context"
	"time"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

type DeviceRepository interface {
	// Upsert creates the device on first sight and bumps last_seen on
	// every later call.
	Upsert(ctx context.Context, deviceID, name string, lastSeen time.Time) error
}

type LocationRepository interface {
	Insert(ctx context.Context, sample *domain.LocationSample) error
	// LatestPerDevice returns one sample per device ever seen, the one
	// with the maximum timestamp.
	LatestPerDevice(ctx context.Context) ([]domain.LocationSample, error)
}

type TripRepository interface {
	Insert(ctx context.Context, trip *domain.Trip) error
	// GroupedByDay aggregates trips by calendar date of start_time,
	// ascending.
	GroupedByDay(ctx context.Context) ([]domain.DayStat, error)
	// ListRecent returns up to limit trips, newest start_time first.
	ListRecent(ctx context.Context, limit int) ([]domain.Trip, error)
}

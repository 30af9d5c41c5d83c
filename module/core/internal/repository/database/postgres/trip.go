package postgres

import (
	"context"
	"database/sql"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/database"
)

var _ database.TripRepository = (*TripRepo)(nil)

type TripRepo struct {
	db *sql.DB
}

func NewTripRepo(db *sql.DB) *TripRepo {
	return &TripRepo{db: db}
}

func (r *TripRepo) Insert(ctx context.Context, trip *domain.Trip) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO trips (device_id, start_time, end_time, start_lat, start_lon, end_lat, end_lon, distance_m, duration_s)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		trip.DeviceID, trip.StartTime, trip.EndTime,
		trip.StartLat, trip.StartLon, trip.EndLat, trip.EndLon,
		trip.DistanceM, trip.DurationS,
	)
	return err
}

func (r *TripRepo) GroupedByDay(ctx context.Context) ([]domain.DayStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT to_char(start_time::date, 'YYYY-MM-DD'), COUNT(*), COALESCE(SUM(distance_m), 0)
		 FROM trips GROUP BY start_time::date ORDER BY start_time::date`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.DayStat
	for rows.Next() {
		var d domain.DayStat
		if err := rows.Scan(&d.Day, &d.Trips, &d.DistanceM); err != nil {
			return nil, err
		}
		results = append(results, d)
	}
	return results, rows.Err()
}

func (r *TripRepo) ListRecent(ctx context.Context, limit int) ([]domain.Trip, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT device_id, start_time, end_time, start_lat, start_lon, end_lat, end_lon, distance_m, duration_s
		 FROM trips ORDER BY start_time DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.Trip
	for rows.Next() {
		var t domain.Trip
		if err := rows.Scan(&t.DeviceID, &t.StartTime, &t.EndTime, &t.StartLat, &t.StartLon, &t.EndLat, &t.EndLon, &t.DistanceM, &t.DurationS); err != nil {
			return nil, err
		}
		results = append(results, t)
	}
	return results, rows.Err()
}

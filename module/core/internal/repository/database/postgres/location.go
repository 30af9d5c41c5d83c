package postgres

import (
	"context"
	"database/sql"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/database"
)

var _ database.LocationRepository = (*LocationRepo)(nil)

type LocationRepo struct {
	db *sql.DB
}

func NewLocationRepo(db *sql.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

func (r *LocationRepo) Insert(ctx context.Context, sample *domain.LocationSample) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO locations (device_id, lat, lon, speed_kmh, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		sample.DeviceID, sample.Lat, sample.Lon, sample.SpeedKmh, sample.Timestamp,
	)
	return err
}

func (r *LocationRepo) LatestPerDevice(ctx context.Context) ([]domain.LocationSample, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT ON (device_id) device_id, lat, lon, speed_kmh, timestamp
		 FROM locations ORDER BY device_id, timestamp DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var results []domain.LocationSample
	for rows.Next() {
		var s domain.LocationSample
		if err := rows.Scan(&s.DeviceID, &s.Lat, &s.Lon, &s.SpeedKmh, &s.Timestamp); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

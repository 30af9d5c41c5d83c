package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/database"
)

var _ database.DeviceRepository = (*DeviceRepo)(nil)

type DeviceRepo struct {
	db *sql.DB
}

func NewDeviceRepo(db *sql.DB) *DeviceRepo {
	return &DeviceRepo{db: db}
}

func (r *DeviceRepo) Upsert(ctx context.Context, deviceID, name string, lastSeen time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO devices (device_id, name, last_seen) VALUES ($1, $2, $3)
		 ON CONFLICT (device_id) DO UPDATE SET last_seen = EXCLUDED.last_seen`,
		deviceID, name, lastSeen,
	)
	return err
}

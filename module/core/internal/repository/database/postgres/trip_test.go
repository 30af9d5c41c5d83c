package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

func testTrip() *domain.Trip {
	return &domain.Trip{
		DeviceID:  "buggy-001",
		StartTime: time.Unix(1715000000, 0),
		EndTime:   time.Unix(1715000040, 0),
		StartLat:  12.9710,
		StartLon:  77.5946,
		EndLat:    12.9720,
		EndLon:    77.5956,
		DistanceM: 155.4,
		DurationS: 40,
	}
}

func TestTripInsert_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	trip := testTrip()
	mock.ExpectExec(`INSERT INTO trips`).
		WithArgs(trip.DeviceID, trip.StartTime, trip.EndTime,
			trip.StartLat, trip.StartLon, trip.EndLat, trip.EndLon,
			trip.DistanceM, trip.DurationS).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewTripRepo(db)
	if err := repo.Insert(context.Background(), trip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestTripInsert_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectExec(`INSERT INTO trips`).
		WillReturnError(sqlmock.ErrCancelled)

	repo := NewTripRepo(db)
	if err := repo.Insert(context.Background(), testTrip()); err == nil {
		t.Fatal("expected error")
	}
}

func TestGroupedByDay_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"day", "count", "sum"}).
		AddRow("2026-08-24", 3, 1500.0).
		AddRow("2026-08-25", 2, 500.0)

	mock.ExpectQuery(`SELECT to_char\(start_time::date, 'YYYY-MM-DD'\), COUNT\(\*\), COALESCE\(SUM\(distance_m\), 0\)`).
		WillReturnRows(rows)

	repo := NewTripRepo(db)
	results, err := repo.GroupedByDay(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(results))
	}
	if results[0].Day != "2026-08-24" {
		t.Errorf("expected 2026-08-24, got %s", results[0].Day)
	}
	if results[0].Trips != 3 {
		t.Errorf("expected 3 trips, got %d", results[0].Trips)
	}
	if results[1].DistanceM != 500.0 {
		t.Errorf("expected 500.0, got %f", results[1].DistanceM)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListRecent_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	ts1 := time.Unix(1715005000, 0)
	ts2 := time.Unix(1715000000, 0)
	rows := sqlmock.NewRows([]string{"device_id", "start_time", "end_time", "start_lat", "start_lon", "end_lat", "end_lon", "distance_m", "duration_s"}).
		AddRow("buggy-001", ts1, ts1.Add(40*time.Second), 12.9710, 77.5946, 12.9720, 77.5956, 155.4, 40.0).
		AddRow("buggy-002", ts2, ts2.Add(60*time.Second), 12.9720, 77.5956, 12.9710, 77.5946, 155.4, 60.0)

	mock.ExpectQuery(`SELECT device_id, start_time, end_time, start_lat, start_lon, end_lat, end_lon, distance_m, duration_s FROM trips ORDER BY start_time DESC LIMIT`).
		WithArgs(200).
		WillReturnRows(rows)

	repo := NewTripRepo(db)
	results, err := repo.ListRecent(context.Background(), 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(results))
	}
	if results[0].DeviceID != "buggy-001" {
		t.Errorf("expected buggy-001 first, got %s", results[0].DeviceID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestListRecent_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = db.Close() }()

	rows := sqlmock.NewRows([]string{"device_id", "start_time", "end_time", "start_lat", "start_lon", "end_lat", "end_lon", "distance_m", "duration_s"})
	mock.ExpectQuery(`SELECT device_id, start_time, end_time`).
		WithArgs(200).
		WillReturnRows(rows)

	repo := NewTripRepo(db)
	results, err := repo.ListRecent(context.Background(), 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected 0 trips, got %d", len(results))
	}
}

package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/database"
)

type tripProcessor interface {
	Process(ctx context.Context, deviceID string, p domain.Point, ts time.Time) (*domain.Trip, error)
}

// IngestService persists one validated location sample: device upsert,
// append-only location write, then trip detection. A detector failure
// is logged and swallowed so ingestion never fails on it.
type IngestService struct {
	devices   database.DeviceRepository
	locations database.LocationRepository
	detector  tripProcessor
}

func NewIngestService(devices database.DeviceRepository, locations database.LocationRepository, detector tripProcessor) *IngestService {
	return &IngestService{devices: devices, locations: locations, detector: detector}
}

func (s *IngestService) Ingest(ctx context.Context, sample *domain.LocationSample) error {
	if err := s.devices.Upsert(ctx, sample.DeviceID, sample.DeviceID, sample.Timestamp); err != nil {
		return fmt.Errorf("upsert device: %w", err)
	}

	if err := s.locations.Insert(ctx, sample); err != nil {
		return fmt.Errorf("insert location: %w", err)
	}

	if _, err := s.detector.Process(ctx, sample.DeviceID, sample.Point(), sample.Timestamp); err != nil {
		log.Printf("trip detect error for %s: %v", sample.DeviceID, err)
	}

	return nil
}

// LatestPositions returns the most recent sample for every device that
// has ever reported.
func (s *IngestService) LatestPositions(ctx context.Context) ([]domain.LocationSample, error) {
	return s.locations.LatestPerDevice(ctx)
}

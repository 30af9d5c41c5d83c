package service

import (
	"context"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/database"
)

const defaultTripListLimit = 200

// SummaryService answers the query side: per-day trip statistics with
// running totals and estimated emissions savings, plus the recent trip
// list. Everything is computed on demand from the store, no caching.
type SummaryService struct {
	trips          database.TripRepository
	emissionFactor float64 // kg CO2 saved per km
}

func NewSummaryService(trips database.TripRepository, emissionFactor float64) *SummaryService {
	return &SummaryService{trips: trips, emissionFactor: emissionFactor}
}

func (s *SummaryService) Summary(ctx context.Context) (*domain.TripSummary, error) {
	days, err := s.trips.GroupedByDay(ctx)
	if err != nil {
		return nil, err
	}

	if days == nil {
		days = []domain.DayStat{}
	}

	summary := &domain.TripSummary{Days: days}
	var totalMeters float64
	for _, d := range days {
		summary.TotalTrips += d.Trips
		totalMeters += d.DistanceM
	}
	summary.TotalKm = totalMeters / 1000
	summary.CO2SavedKg = summary.TotalKm * s.emissionFactor
	return summary, nil
}

func (s *SummaryService) ListRecent(ctx context.Context) ([]domain.Trip, error) {
	return s.trips.ListRecent(ctx, defaultTripListLimit)
}

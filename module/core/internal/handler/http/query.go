package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

type locationQueryService interface {
	LatestPositions(ctx context.Context) ([]domain.LocationSample, error)
}

type tripQueryService interface {
	Summary(ctx context.Context) (*domain.TripSummary, error)
	ListRecent(ctx context.Context) ([]domain.Trip, error)
}

type latestResponse struct {
	DeviceID  string  `json:"device_id"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	SpeedKmh  float64 `json:"speed_kmh"`
	Timestamp string  `json:"timestamp"`
}

type QueryHandler struct {
	locationSvc locationQueryService
	tripSvc     tripQueryService
}

func NewQueryHandler(locationSvc locationQueryService, tripSvc tripQueryService) *QueryHandler {
	return &QueryHandler{locationSvc: locationSvc, tripSvc: tripSvc}
}

func (h *QueryHandler) Register(r *gin.RouterGroup) {
	r.GET("/api/devices/latest", h.GetLatestPositions)
	r.GET("/api/trips/summary", h.GetTripSummary)
	r.GET("/api/trips/list", h.GetTripList)
}

func (h *QueryHandler) GetLatestPositions(c *gin.Context) {
	samples, err := h.locationSvc.LatestPositions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch latest positions"})
		return
	}

	results := make([]latestResponse, len(samples))
	for i, s := range samples {
		results[i] = latestResponse{
			DeviceID:  s.DeviceID,
			Lat:       s.Lat,
			Lon:       s.Lon,
			SpeedKmh:  s.SpeedKmh,
			Timestamp: s.Timestamp.UTC().Format(time.RFC3339),
		}
	}
	c.JSON(http.StatusOK, results)
}

func (h *QueryHandler) GetTripSummary(c *gin.Context) {
	summary, err := h.tripSvc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trip summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *QueryHandler) GetTripList(c *gin.Context) {
	trips, err := h.tripSvc.ListRecent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch trips"})
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	c.JSON(http.StatusOK, trips)
}

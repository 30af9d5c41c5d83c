package core

import (
	"database/sql"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
	handler "github.com/Sws10436/Smart-E-Buggy/module/core/internal/handler/http"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/handler/subscriber"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/database/postgres"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/publisher/rabbitmq"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/statestore"
	"github.com/Sws10436/Smart-E-Buggy/module/core/service"
)

// Options carries the static trip-detection configuration.
type Options struct {
	Geofences             []domain.Geofence
	APIKey                string
	MinTripTime           time.Duration
	MinTripDistanceM      float64
	EmissionFactorKgPerKm float64
}

type Module struct {
	IngestSvc  *service.IngestService
	SummarySvc *service.SummaryService
	Detector   *service.TripDetector
	ingestHdl  *handler.IngestHandler
	queryHdl   *handler.QueryHandler
	subscriber *subscriber.LocationSubscriber
}

func Build(db *sql.DB, amqpConn *amqp.Connection, mqttClient mqtt.Client, opts Options) (*Module, error) {
	deviceRepo := postgres.NewDeviceRepo(db)
	locationRepo := postgres.NewLocationRepo(db)
	tripRepo := postgres.NewTripRepo(db)

	tripPub, err := rabbitmq.NewTripPublisher(amqpConn)
	if err != nil {
		return nil, fmt.Errorf("trip publisher: %w", err)
	}

	detector := service.NewTripDetector(
		statestore.NewMemoryStore(),
		tripRepo,
		tripPub,
		opts.Geofences,
		opts.MinTripTime,
		opts.MinTripDistanceM,
	)

	ingestSvc := service.NewIngestService(deviceRepo, locationRepo, detector)
	summarySvc := service.NewSummaryService(tripRepo, opts.EmissionFactorKgPerKm)

	return &Module{
		IngestSvc:  ingestSvc,
		SummarySvc: summarySvc,
		Detector:   detector,
		ingestHdl:  handler.NewIngestHandler(ingestSvc, opts.APIKey),
		queryHdl:   handler.NewQueryHandler(ingestSvc, summarySvc),
		subscriber: subscriber.NewLocationSubscriber(mqttClient, ingestSvc),
	}, nil
}

func (m *Module) RegisterRoutes(r *gin.RouterGroup) {
	m.ingestHdl.Register(r)
	m.queryHdl.Register(r)
}

func (m *Module) StartSubscribers() error {
	return m.subscriber.Start()
}

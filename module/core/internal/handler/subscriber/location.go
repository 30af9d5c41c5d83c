package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

const topicPattern = "/ebuggy/device/+/location"

type ingestService interface {
	Ingest(ctx context.Context, sample *domain.LocationSample) error
}

type locationMessage struct {
	DeviceID  string  `json:"device_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	SpeedKmh  float64 `json:"speed_kmh"`
	Timestamp int64   `json:"timestamp"`
}

// LocationSubscriber feeds MQTT location reports into the same ingest
// path as the HTTP endpoint. Broker access control stands in for the
// API key on this path.
type LocationSubscriber struct {
	client    mqtt.Client
	ingestSvc ingestService
}

func NewLocationSubscriber(client mqtt.Client, ingestSvc ingestService) *LocationSubscriber {
	return &LocationSubscriber{client: client, ingestSvc: ingestSvc}
}

func (s *LocationSubscriber) Start() error {
	token := s.client.Subscribe(topicPattern, 1, s.handleMessage)
	token.Wait()
	return token.Error()
}

func (s *LocationSubscriber) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var raw locationMessage
	if err := json.Unmarshal(msg.Payload(), &raw); err != nil {
		log.Printf("invalid location message: %v", err)
		return
	}

	if err := validateLocationMessage(&raw); err != nil {
		log.Printf("validation error: %v", err)
		return
	}

	sample := &domain.LocationSample{
		DeviceID:  raw.DeviceID,
		Lat:       raw.Latitude,
		Lon:       raw.Longitude,
		SpeedKmh:  raw.SpeedKmh,
		Timestamp: time.Unix(raw.Timestamp, 0).UTC(),
	}

	if err := s.ingestSvc.Ingest(context.Background(), sample); err != nil {
		log.Printf("ingest error: %v", err)
	}
}

func validateLocationMessage(msg *locationMessage) error {
	if msg.DeviceID == "" {
		return fmt.Errorf("device_id: required")
	}
	if msg.Latitude < -90 || msg.Latitude > 90 {
		return fmt.Errorf("latitude: must be between -90 and 90")
	}
	if msg.Longitude < -180 || msg.Longitude > 180 {
		return fmt.Errorf("longitude: must be between -180 and 180")
	}
	if msg.Timestamp <= 0 {
		return fmt.Errorf("timestamp: must be positive")
	}
	return nil
}

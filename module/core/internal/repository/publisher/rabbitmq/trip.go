package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
	"github.com/Sws10436/Smart-E-Buggy/module/core/internal/repository/publisher"
)

var _ publisher.TripPublisher = (*TripPublisher)(nil)

const (
	exchangeName = "ebuggy.events"
	queueName    = "trip_events"
)

type TripPublisher struct {
	ch *amqp.Channel
}

func NewTripPublisher(conn *amqp.Connection) (*TripPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &TripPublisher{ch: ch}, nil
}

type tripMessage struct {
	Event     string  `json:"event"`
	DeviceID  string  `json:"device_id"`
	StartTime int64   `json:"start_time"`
	EndTime   int64   `json:"end_time"`
	StartLat  float64 `json:"start_lat"`
	StartLon  float64 `json:"start_lon"`
	EndLat    float64 `json:"end_lat"`
	EndLon    float64 `json:"end_lon"`
	DistanceM float64 `json:"distance_m"`
	DurationS float64 `json:"duration_s"`
}

func (p *TripPublisher) PublishTrip(ctx context.Context, trip *domain.Trip) error {
	msg := tripMessage{
		Event:     "trip_completed",
		DeviceID:  trip.DeviceID,
		StartTime: trip.StartTime.Unix(),
		EndTime:   trip.EndTime.Unix(),
		StartLat:  trip.StartLat,
		StartLon:  trip.StartLon,
		EndLat:    trip.EndLat,
		EndLon:    trip.EndLon,
		DistanceM: trip.DistanceM,
		DurationS: trip.DurationS,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal trip event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
}

package subscriber

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

type mockIngestSvc struct {
	ingestFn func(ctx context.Context, sample *domain.LocationSample) error
}

func (m *mockIngestSvc) Ingest(ctx context.Context, sample *domain.LocationSample) error {
	return m.ingestFn(ctx, sample)
}

type fakeMQTTMessage struct {
	payload []byte
}

func (f *fakeMQTTMessage) Duplicate() bool   { return false }
func (f *fakeMQTTMessage) Qos() byte         { return 0 }
func (f *fakeMQTTMessage) Retained() bool    { return false }
func (f *fakeMQTTMessage) Topic() string     { return "/ebuggy/device/buggy-001/location" }
func (f *fakeMQTTMessage) MessageID() uint16 { return 0 }
func (f *fakeMQTTMessage) Payload() []byte   { return f.payload }
func (f *fakeMQTTMessage) Ack()              {}

func TestHandleMessage_Success(t *testing.T) {
	var ingested *domain.LocationSample
	svc := &mockIngestSvc{
		ingestFn: func(_ context.Context, sample *domain.LocationSample) error {
			ingested = sample
			return nil
		},
	}

	sub := &LocationSubscriber{ingestSvc: svc}

	msg := locationMessage{
		DeviceID:  "buggy-001",
		Latitude:  12.9710,
		Longitude: 77.5946,
		SpeedKmh:  8.5,
		Timestamp: 1715003456,
	}
	payload, _ := json.Marshal(msg)
	sub.handleMessage(nil, &fakeMQTTMessage{payload: payload})

	if ingested == nil {
		t.Fatal("expected Ingest to be called")
	}
	if ingested.DeviceID != "buggy-001" {
		t.Errorf("expected buggy-001, got %s", ingested.DeviceID)
	}
	if ingested.Lat != 12.9710 {
		t.Errorf("expected 12.9710, got %f", ingested.Lat)
	}
	if ingested.SpeedKmh != 8.5 {
		t.Errorf("expected 8.5, got %f", ingested.SpeedKmh)
	}
	expectedTs := time.Unix(1715003456, 0).UTC()
	if !ingested.Timestamp.Equal(expectedTs) {
		t.Errorf("expected %v, got %v", expectedTs, ingested.Timestamp)
	}
}

func TestHandleMessage_InvalidJSON(t *testing.T) {
	svc := &mockIngestSvc{
		ingestFn: func(_ context.Context, _ *domain.LocationSample) error {
			t.Fatal("Ingest should not be called")
			return nil
		},
	}

	sub := &LocationSubscriber{ingestSvc: svc}
	sub.handleMessage(nil, &fakeMQTTMessage{payload: []byte("invalid")})
}

func TestHandleMessage_ValidationError(t *testing.T) {
	svc := &mockIngestSvc{
		ingestFn: func(_ context.Context, _ *domain.LocationSample) error {
			t.Fatal("Ingest should not be called")
			return nil
		},
	}

	sub := &LocationSubscriber{ingestSvc: svc}

	// empty device_id
	msg := locationMessage{Latitude: 12.9710, Longitude: 77.5946, Timestamp: 1715003456}
	payload, _ := json.Marshal(msg)
	sub.handleMessage(nil, &fakeMQTTMessage{payload: payload})
}

func TestHandleMessage_IngestError_Logged(t *testing.T) {
	svc := &mockIngestSvc{
		ingestFn: func(_ context.Context, _ *domain.LocationSample) error {
			return errors.New("db error")
		},
	}

	sub := &LocationSubscriber{ingestSvc: svc}

	msg := locationMessage{DeviceID: "buggy-001", Latitude: 12.9710, Longitude: 77.5946, Timestamp: 1715003456}
	payload, _ := json.Marshal(msg)
	// must not panic; error is logged and dropped
	sub.handleMessage(nil, &fakeMQTTMessage{payload: payload})
}

func TestValidateLocationMessage(t *testing.T) {
	tests := []struct {
		name    string
		msg     locationMessage
		wantErr bool
	}{
		{"valid", locationMessage{DeviceID: "X", Latitude: 0, Longitude: 0, Timestamp: 1}, false},
		{"empty device_id", locationMessage{Latitude: 0, Longitude: 0, Timestamp: 1}, true},
		{"lat too low", locationMessage{DeviceID: "X", Latitude: -91, Longitude: 0, Timestamp: 1}, true},
		{"lat too high", locationMessage{DeviceID: "X", Latitude: 91, Longitude: 0, Timestamp: 1}, true},
		{"lon too low", locationMessage{DeviceID: "X", Latitude: 0, Longitude: -181, Timestamp: 1}, true},
		{"lon too high", locationMessage{DeviceID: "X", Latitude: 0, Longitude: 181, Timestamp: 1}, true},
		{"zero timestamp", locationMessage{DeviceID: "X", Latitude: 0, Longitude: 0, Timestamp: 0}, true},
		{"negative timestamp", locationMessage{DeviceID: "X", Latitude: 0, Longitude: 0, Timestamp: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLocationMessage(&tt.msg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateLocationMessage() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

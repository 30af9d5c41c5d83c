package domain

import "time"

// Device is a tracked e-buggy. Created on the first sample from an
// unseen identifier, never deleted.
type Device struct {
	DeviceID string    `json:"device_id"`
	Name     string    `json:"name"`
	LastSeen time.Time `json:"last_seen"`
}

// LocationSample is one raw position report. Append-only once written.
type LocationSample struct {
	DeviceID  string    `json:"device_id"`
	Lat       float64   `json:"lat"`
	Lon       float64   `json:"lon"`
	SpeedKmh  float64   `json:"speed_kmh"`
	Timestamp time.Time `json:"timestamp"`
}

// Point returns the sample position.
func (s LocationSample) Point() Point {
	return Point{Lat: s.Lat, Lon: s.Lon}
}

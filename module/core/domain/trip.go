package domain

import "time"

// Trip is a completed movement between two different zones that met the
// minimum duration and distance thresholds. Written exactly once by the
// trip detector, immutable afterwards.
type Trip struct {
	DeviceID  string    `json:"device_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	StartLat  float64   `json:"start_lat"`
	StartLon  float64   `json:"start_lon"`
	EndLat    float64   `json:"end_lat"`
	EndLon    float64   `json:"end_lon"`
	DistanceM float64   `json:"distance_m"`
	DurationS float64   `json:"duration_s"`
}

// DayStat is one row of the trips-grouped-by-day aggregation.
type DayStat struct {
	Day       string  `json:"day"` // YYYY-MM-DD of start_time
	Trips     int     `json:"trips"`
	DistanceM float64 `json:"distance_m"`
}

// TripSummary is the on-demand aggregate over all recorded trips.
type TripSummary struct {
	Days       []DayStat `json:"days"`
	TotalTrips int       `json:"total_trips"`
	TotalKm    float64   `json:"total_km"`
	CO2SavedKg float64   `json:"co2_saved_kg"`
}

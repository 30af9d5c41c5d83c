package domain

// Point is a WGS 84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geofence is a named circular zone. Fences are startup configuration,
// shared and read-only at runtime. Overlapping fences are resolved by
// declaration order, first match wins.
type Geofence struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	RadiusM float64 `json:"radius_m"`
}

// Center returns the fence center as a Point.
func (g Geofence) Center() Point {
	return Point{Lat: g.Lat, Lon: g.Lon}
}

// TripState is the per-device transition state kept between samples.
// Zone == "" means the device is outside every fence; EnteredAt and
// EntryPos are meaningful only while Zone is set.
type TripState struct {
	Zone      string
	EnteredAt int64 // unix seconds
	EntryPos  Point
}

// Outside reports whether the device is currently in no zone.
func (s TripState) Outside() bool {
	return s.Zone == ""
}

package service

import (
	"math"

	"github.com/Sws10436/Smart-E-Buggy/module/core/domain"
)

const earthRadiusMeters = 6371000

// Distance returns the haversine great-circle distance in meters
// between two points on a spherical earth.
func Distance(a, b domain.Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMeters * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Inside reports whether p falls within the fence. The boundary is
// inclusive: a point at exactly the radius counts as inside.
func Inside(p domain.Point, fence domain.Geofence) bool {
	return Distance(p, fence.Center()) <= fence.RadiusM
}

// ResolveZone returns the name of the first fence, in declaration
// order, that contains p. ok is false when no fence contains it.
func ResolveZone(p domain.Point, fences []domain.Geofence) (name string, ok bool) {
	for _, f := range fences {
		if Inside(p, f) {
			return f.Name, true
		}
	}
	return "", false
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

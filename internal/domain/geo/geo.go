// Package geo contains the pure geographic math shared by the map queries:
// great-circle distance for radius filtering and the bounding-box co-location
// test for clustering. The two tests are intentionally different and must not
// be substituted for each other.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// ColocationTolerance is the bounding-box tolerance in degrees (roughly 100m)
// inside which points count toward the same cluster.
const ColocationTolerance = 0.001

// DistanceKm computes the great-circle distance between two points using the
// haversine formula. Coordinates follow orb convention: (longitude, latitude)
// in degrees. The result is symmetric and zero for identical points.
func DistanceKm(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Colocated reports whether two points fall within the clustering bounding
// box: both latitude and longitude differ by less than ColocationTolerance.
// This is a degree-space test, not a distance in kilometers.
func Colocated(a, b orb.Point) bool {
	return math.Abs(a.Lat()-b.Lat()) < ColocationTolerance &&
		math.Abs(a.Lon()-b.Lon()) < ColocationTolerance
}

// ValidCoordinate reports whether lat/lon form a real geographic coordinate.
func ValidCoordinate(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// Package geo holds the great-circle math used by provider search.
package geo

import (
	"math"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// EarthRadiusKm is the mean Earth radius used for distance computation.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between a and b in kilometres.
func HaversineKm(a, b entity.GeoPoint) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push h a hair above 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// RoundKm rounds a distance to one decimal place.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// BoundAround returns a box enclosing the circle of radiusKm around p. It
// over-approximates the circle, so hits still need an exact distance check.
func BoundAround(p entity.GeoPoint, radiusKm float64) orb.Bound {
	// orb's spherical model is slightly larger than ours; pad so the box
	// always contains the haversine circle.
	return orbgeo.NewBoundAroundPoint(p.Orb(), radiusKm*1000*1.01)
}

// Within reports whether p lies inside the box, tolerating boxes that wrap
// around the antimeridian or are clamped at the poles.
func Within(bound orb.Bound, p entity.GeoPoint) bool {
	if p.Latitude < bound.Min.Lat() || p.Latitude > bound.Max.Lat() {
		return false
	}

	if bound.Min.Lon() <= -180 || bound.Max.Lon() >= 180 || bound.Min.Lon() > bound.Max.Lon() {
		return true
	}

	return p.Longitude >= bound.Min.Lon() && p.Longitude <= bound.Max.Lon()
}

// ValidatePoint rejects out-of-range coordinates, naming the offending field.
func ValidatePoint(p entity.GeoPoint) error {
	if !p.LongitudeInRange() {
		return domainerrors.NewValidationError("longitude", "must be between -180 and 180")
	}
	if !p.LatitudeInRange() {
		return domainerrors.NewValidationError("latitude", "must be between -90 and 90")
	}

	return nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

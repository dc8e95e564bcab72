// Package entity contains the core business objects of the project.
package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Valid coordinate ranges for a WGS84 position.
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
)

// GeoPoint is a geographic position. Longitude comes first, matching the
// GeoJSON and geospatial index convention.
type GeoPoint struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// NewGeoPoint builds a GeoPoint from longitude and latitude.
func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Longitude: lon, Latitude: lat}
}

// GeoPointFromOrb converts an orb.Point ([lon, lat]) to a GeoPoint.
func GeoPointFromOrb(p orb.Point) GeoPoint {
	return GeoPoint{Longitude: p.Lon(), Latitude: p.Lat()}
}

// Orb returns the point in orb's [lon, lat] layout.
func (p GeoPoint) Orb() orb.Point {
	return orb.Point{p.Longitude, p.Latitude}
}

// LongitudeInRange reports whether the longitude is finite and within [-180, 180].
func (p GeoPoint) LongitudeInRange() bool {
	return isFinite(p.Longitude) && p.Longitude >= MinLongitude && p.Longitude <= MaxLongitude
}

// LatitudeInRange reports whether the latitude is finite and within [-90, 90].
func (p GeoPoint) LatitudeInRange() bool {
	return isFinite(p.Latitude) && p.Latitude >= MinLatitude && p.Latitude <= MaxLatitude
}

// IsValid reports whether both coordinates are within range.
func (p GeoPoint) IsValid() bool {
	return p.LongitudeInRange() && p.LatitudeInRange()
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package geo

import (
	"math"
	"testing"

	"locator/internal/domain/entity"
	domainerrors "locator/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b entity.GeoPoint
		want float64
	}{
		{
			name: "same point",
			a:    entity.NewGeoPoint(-73.9857, 40.7484),
			b:    entity.NewGeoPoint(-73.9857, 40.7484),
			want: 0,
		},
		{
			name: "one degree of latitude",
			a:    entity.NewGeoPoint(0, 0),
			b:    entity.NewGeoPoint(0, 1),
			want: 111.19,
		},
		{
			name: "new york to london",
			a:    entity.NewGeoPoint(-74.0060, 40.7128),
			b:    entity.NewGeoPoint(-0.1278, 51.5074),
			want: 5570.2,
		},
		{
			name: "antipodal",
			a:    entity.NewGeoPoint(0, 0),
			b:    entity.NewGeoPoint(180, 0),
			want: math.Pi * EarthRadiusKm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := HaversineKm(tt.a, tt.b)
			assert.InDelta(t, tt.want, got, 0.5)
			assert.InDelta(t, got, HaversineKm(tt.b, tt.a), 1e-9)
		})
	}
}

func TestRoundKm(t *testing.T) {
	assert.Equal(t, 1.2, RoundKm(1.2499))
	assert.Equal(t, 1.3, RoundKm(1.25))
	assert.Equal(t, 0.0, RoundKm(0.04))
}

func TestBoundAround_ContainsCircle(t *testing.T) {
	center := entity.NewGeoPoint(-73.9352, 40.7306)
	bound := BoundAround(center, 5)

	// Points exactly on the radius in the four cardinal directions.
	for _, bearing := range []float64{0, 90, 180, 270} {
		p := destination(center, 4.999, bearing)
		require.LessOrEqual(t, HaversineKm(center, p), 5.0)
		assert.True(t, Within(bound, p), "bearing %v", bearing)
	}

	assert.False(t, Within(bound, entity.NewGeoPoint(-73.9352, 40.9)))
}

func TestValidatePoint(t *testing.T) {
	require.NoError(t, ValidatePoint(entity.NewGeoPoint(10, 10)))

	err := ValidatePoint(entity.NewGeoPoint(200, 10))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.(domainerrors.AppError).Details(), "longitude")

	err = ValidatePoint(entity.NewGeoPoint(10, 95))
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.(domainerrors.AppError).Details(), "latitude")
}

func destination(from entity.GeoPoint, km, bearingDeg float64) entity.GeoPoint {
	lat1 := toRadians(from.Latitude)
	lon1 := toRadians(from.Longitude)
	brg := toRadians(bearingDeg)
	d := km / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(brg))
	lon2 := lon1 + math.Atan2(math.Sin(brg)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return entity.NewGeoPoint(lon2*180/math.Pi, lat2*180/math.Pi)
}

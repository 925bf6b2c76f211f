package geo

import (
	"testing"

	"github.com/flightcalc/flightcalc/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	london := models.Coordinate{Latitude: 51.148056, Longitude: -0.190278}
	paris := models.Coordinate{Latitude: 49.009722, Longitude: 2.547778}
	berlin := models.Coordinate{Latitude: 52.559722, Longitude: 13.287778}

	tests := []struct {
		name      string
		from      models.Coordinate
		to        models.Coordinate
		want      float64
		tolerance float64
	}{
		{
			name:      "Gatwick to Charles de Gaulle",
			from:      london,
			to:        paris,
			want:      307.7037132860935,
			tolerance: 1e-6,
		},
		{
			name:      "Gatwick to Tegel",
			from:      london,
			to:        berlin,
			want:      937.4718926444107,
			tolerance: 1e-6,
		},
		{
			name:      "Same point",
			from:      paris,
			to:        paris,
			want:      0,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.from, tt.to)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a := models.Coordinate{Latitude: 47.6062, Longitude: -122.3321}
	b := models.Coordinate{Latitude: 47.269, Longitude: -122.4138}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	assert.GreaterOrEqual(t, Distance(a, b), 0.0)
}

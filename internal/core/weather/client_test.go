package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaleToAnnualRainfall(t *testing.T) {
	// 3 mm/day over the window extrapolates to 1095 mm/year
	daily := make([]float64, 90)
	for i := range daily {
		daily[i] = 3
	}
	assert.InDelta(t, 1095, ScaleToAnnualRainfall(daily), 0.01)

	// dry window clamps to the floor
	assert.Equal(t, 200.0, ScaleToAnnualRainfall([]float64{0, 0, 0}))

	// monsoon-heavy window clamps to the ceiling
	assert.Equal(t, 4500.0, ScaleToAnnualRainfall([]float64{40, 50, 60}))

	// no data falls back to the national average
	assert.Equal(t, 1000.0, ScaleToAnnualRainfall(nil))
}

func TestRegionalRainfallDefault(t *testing.T) {
	assert.Equal(t, 300.0, RegionalRainfallDefault(27, 71))  // Thar desert
	assert.Equal(t, 2200.0, RegionalRainfallDefault(26, 92)) // Assam
	assert.Equal(t, 1500.0, RegionalRainfallDefault(10, 76)) // Kerala
	assert.Equal(t, 1000.0, RegionalRainfallDefault(28, 77)) // Delhi
}

func TestRatingToIndex(t *testing.T) {
	assert.Equal(t, 40.0, RatingToIndex(1, 0))
	assert.Equal(t, 150.0, RatingToIndex(3, 0))
	assert.Equal(t, 400.0, RatingToIndex(5, 0))

	// heavy PM2.5 pushes the index above the rating's base
	assert.Equal(t, 300.0, RatingToIndex(2, 150))

	// never exceeds 500
	assert.Equal(t, 500.0, RatingToIndex(5, 400))

	// out-of-range ratings are clamped
	assert.Equal(t, 40.0, RatingToIndex(0, 0))
	assert.Equal(t, 400.0, RatingToIndex(9, 0))
}

func TestClassifyClimate(t *testing.T) {
	tests := []struct {
		name                string
		lat, temp, rainfall float64
		want                string
	}{
		{"desert", 27, 30, 300, "Arid"},
		{"himalayan", 32, 10, 900, "Temperate"},
		{"kerala coast", 10, 27, 3000, "Tropical Wet"},
		{"mumbai", 19, 28, 2200, "Tropical Wet"},
		{"bangalore", 13, 25, 950, "Tropical"},
		{"rain shadow", 17, 28, 600, "Semi-Arid"},
		{"punjab", 31, 22, 800, "Subtropical"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyClimate(tt.lat, tt.temp, tt.rainfall))
		})
	}
}

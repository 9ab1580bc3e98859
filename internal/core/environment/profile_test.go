package environment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeClampsSoilPH(t *testing.T) {
	p := Normalize(19.0, 72.8,
		SoilReading{PH: 11.0, Texture: "Clay", Status: "estimated"},
		WeatherReading{Temperature: 30, Humidity: 70, AnnualRainfall: 1200, ClimateType: "Tropical", Status: "success"},
		AirQualityReading{Rating: 3, PM25: 40, Status: "success"},
		Preferences{},
	)

	assert.Equal(t, 9.0, p.SoilPH)
	found := false
	for _, note := range p.Overrides {
		if strings.Contains(note, "soil_ph clamped from 11 to 9") {
			found = true
		}
	}
	assert.True(t, found, "expected a clamp note, got %v", p.Overrides)
}

func TestNormalizeRainfallOverride(t *testing.T) {
	// API rainfall far below the Low band assumption triggers the override
	p := Normalize(19.0, 72.8,
		SoilReading{PH: 6.5, Texture: "Loamy", Status: "estimated"},
		WeatherReading{Temperature: 30, Humidity: 70, AnnualRainfall: 50, ClimateType: "Arid", Status: "success"},
		AirQualityReading{Rating: 2, PM25: 20, Status: "success"},
		Preferences{WaterAvailability: "Low"},
	)

	assert.Equal(t, 400.0, p.AnnualRainfall)
	found := false
	for _, note := range p.Overrides {
		if strings.Contains(note, "overridden by Low water preference") {
			found = true
		}
	}
	assert.True(t, found, "expected an override note, got %v", p.Overrides)
}

func TestNormalizeRainfallPreferenceKept(t *testing.T) {
	// plausible API rainfall close to the preference band is kept
	p := Normalize(19.0, 72.8,
		SoilReading{PH: 6.5, Texture: "Loamy", Status: "estimated"},
		WeatherReading{Temperature: 30, Humidity: 70, AnnualRainfall: 1100, ClimateType: "Tropical", Status: "success"},
		AirQualityReading{Rating: 2, PM25: 20, Status: "success"},
		Preferences{WaterAvailability: "Medium"},
	)

	assert.Equal(t, 1100.0, p.AnnualRainfall)
	assert.Equal(t, "Medium", p.WaterPreference)
}

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(19.0, 72.8, SoilReading{}, WeatherReading{}, AirQualityReading{}, Preferences{})

	assert.Equal(t, 27.5, p.Temperature)
	assert.Equal(t, 65.0, p.Humidity)
	assert.Equal(t, 1000.0, p.AnnualRainfall)
	assert.Equal(t, 7.0, p.SoilPH)
	assert.Equal(t, "Loamy", p.SoilTexture)
	assert.Equal(t, 3, p.AQIRating)
	assert.NotEmpty(t, p.Overrides)
}

func TestNormalizeSoilTextureOverride(t *testing.T) {
	p := Normalize(19.0, 72.8,
		SoilReading{PH: 6.5, Texture: "Clay", Status: "estimated"},
		WeatherReading{Temperature: 30, Humidity: 70, AnnualRainfall: 1000, Status: "success"},
		AirQualityReading{Rating: 3, PM25: 30, Status: "success"},
		Preferences{SoilType: "Sandy"},
	)

	assert.Equal(t, "Sandy", p.SoilTexture)
}

func TestNormalizeSpacePreferences(t *testing.T) {
	p := Normalize(19.0, 72.8,
		SoilReading{PH: 6.5, Texture: "Loamy", Status: "estimated"},
		WeatherReading{Temperature: 30, Humidity: 70, AnnualRainfall: 1000, Status: "success"},
		AirQualityReading{Rating: 3, PM25: 30, Status: "success"},
		Preferences{AvailableSpace: "2 acres", LocationType: "farmland"},
	)

	assert.InDelta(t, 8093.72, p.AvailableSpaceM2, 0.01)
	assert.Equal(t, "outdoor_large", p.Space.Category)
}

func TestQualitySummary(t *testing.T) {
	p := Normalize(19.0, 72.8,
		SoilReading{PH: 6.5, Texture: "Loamy", Status: "estimated"},
		WeatherReading{Temperature: 30, Humidity: 70, AnnualRainfall: 1000, Status: "default_values"},
		AirQualityReading{Rating: 3, PM25: 30, Status: "success"},
		Preferences{},
	)

	q := p.QualitySummary()
	assert.Equal(t, "estimated", q["soil"])
	assert.Equal(t, "default_values", q["weather"])
	assert.Equal(t, "success", q["air_quality"])
}

func TestSummaryMentionsCoreFacts(t *testing.T) {
	p := Normalize(19.0, 72.8,
		SoilReading{PH: 6.5, Texture: "Loamy", Status: "estimated"},
		WeatherReading{Temperature: 30, Humidity: 70, AnnualRainfall: 1200, ClimateType: "Tropical", Status: "success"},
		AirQualityReading{Rating: 3, PM25: 30, Status: "success"},
		Preferences{},
	)

	s := p.Summary()
	require.NotEmpty(t, s)
	assert.Contains(t, s, "Tropical")
	assert.Contains(t, s, "pH 6.5")
}

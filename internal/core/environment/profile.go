package environment

import (
	"fmt"
	"math"
	"strings"

	"plant-advisor/internal/pkg/common"

	"go.uber.org/zap"
)

// SoilReading is the soil data handed to the normalizer.
type SoilReading struct {
	PH              float64  `json:"ph"`
	Texture         string   `json:"texture"`
	OrganicCarbon   float64  `json:"organic_carbon"`
	Recommendations []string `json:"recommendations,omitempty"`
	Source          string   `json:"source"`
	Status          string   `json:"status"`
}

// WeatherReading is the weather data handed to the normalizer.
type WeatherReading struct {
	Temperature    float64 `json:"temperature"`
	Humidity       float64 `json:"humidity"`
	AnnualRainfall float64 `json:"annual_rainfall"`
	ClimateType    string  `json:"climate_type"`
	Description    string  `json:"description,omitempty"`
	WindSpeed      float64 `json:"wind_speed,omitempty"`
	Status         string  `json:"status"`
}

// AirQualityReading is the air quality data handed to the normalizer.
type AirQualityReading struct {
	AQI    float64 `json:"aqi"`        // index on the 0-500 scale
	Rating int     `json:"aqi_rating"` // 1 (good) to 5 (very poor)
	PM25   float64 `json:"pm2_5"`
	Status string  `json:"status"`
}

// Preferences are the optional user-supplied growing constraints.
type Preferences struct {
	SoilType          string `json:"soil_type,omitempty"`
	WaterAvailability string `json:"water_availability,omitempty"` // Low, Medium or High
	AvailableSpace    string `json:"available_space,omitempty"`    // free text, e.g. "2 acres"
	LocationType      string `json:"location_type,omitempty"`      // e.g. "balcony", "farmland"
	Budget            string `json:"budget,omitempty"`
}

// Profile is the merged, clamped view of all environmental inputs.
type Profile struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Temperature        float64 `json:"temperature"`
	Humidity           float64 `json:"humidity"`
	AnnualRainfall     float64 `json:"annual_rainfall"`
	ClimateType        string  `json:"climate_type"`
	WeatherDescription string  `json:"weather_description,omitempty"`

	SoilPH            float64 `json:"soil_ph"`
	SoilTexture       string  `json:"soil_texture"`
	SoilOrganicCarbon float64 `json:"soil_organic_carbon"`

	AQI       float64 `json:"aqi"`
	AQIRating int     `json:"aqi_rating"`
	PM25      float64 `json:"pm2_5"`

	AvailableSpaceM2 float64      `json:"available_space_m2"`
	Space            SpaceProfile `json:"space"`

	WaterPreference string `json:"water_preference,omitempty"`
	Budget          string `json:"budget,omitempty"`

	// Overrides records every default, clamp and preference applied.
	Overrides []string `json:"overrides,omitempty"`

	WeatherStatus string `json:"weather_status"`
	SoilStatus    string `json:"soil_status"`
	AirStatus     string `json:"air_status"`
}

// water availability preference mapped to an assumed annual rainfall in mm
var waterPreferenceRainfall = map[string]float64{
	"low":    400,
	"medium": 1000,
	"high":   1800,
}

// Normalize merges the readings and preferences into a single profile.
// It applies defaults for missing values, clamps everything to plausible
// ranges and records every adjustment. It never fails.
func Normalize(lat, lon float64, soil SoilReading, weather WeatherReading, air AirQualityReading, prefs Preferences) Profile {
	p := Profile{
		Latitude:           lat,
		Longitude:          lon,
		Temperature:        weather.Temperature,
		Humidity:           weather.Humidity,
		AnnualRainfall:     weather.AnnualRainfall,
		ClimateType:        weather.ClimateType,
		WeatherDescription: weather.Description,
		SoilPH:             soil.PH,
		SoilTexture:        soil.Texture,
		SoilOrganicCarbon:  soil.OrganicCarbon,
		AQI:                air.AQI,
		AQIRating:          air.Rating,
		PM25:               air.PM25,
		Budget:             prefs.Budget,
		WeatherStatus:      weather.Status,
		SoilStatus:         soil.Status,
		AirStatus:          air.Status,
	}

	// defaults for anything missing
	if p.Temperature == 0 && weather.Status == "" {
		p.note("temperature defaulted to 27.5")
		p.Temperature = 27.5
	}
	if p.Humidity == 0 {
		p.note("humidity defaulted to 65")
		p.Humidity = 65
	}
	if p.AnnualRainfall == 0 {
		p.note("annual rainfall defaulted to 1000 mm")
		p.AnnualRainfall = 1000
	}
	if p.ClimateType == "" {
		p.ClimateType = "Tropical"
	}
	if p.SoilPH == 0 {
		p.note("soil pH defaulted to 7.0")
		p.SoilPH = 7.0
	}
	if p.SoilTexture == "" {
		p.SoilTexture = "Loamy"
	}
	if p.AQIRating == 0 {
		p.note("air quality rating defaulted to 3")
		p.AQIRating = 3
	}
	if p.PM25 == 0 {
		p.PM25 = 35
	}

	// clamps
	p.SoilPH = p.clamp("soil_ph", p.SoilPH, 4, 9)
	p.Temperature = p.clamp("temperature", p.Temperature, -10, 50)
	p.Humidity = p.clamp("humidity", p.Humidity, 0, 100)
	p.AQI = p.clamp("aqi", p.AQI, 0, 500)
	p.AQIRating = int(p.clamp("aqi_rating", float64(p.AQIRating), 1, 5))

	// user preference overrides
	if prefs.SoilType != "" && !strings.EqualFold(prefs.SoilType, p.SoilTexture) {
		p.note(fmt.Sprintf("soil texture overridden by user preference: %s (estimated %s)", prefs.SoilType, p.SoilTexture))
		p.SoilTexture = prefs.SoilType
	}

	if prefs.WaterAvailability != "" {
		p.WaterPreference = prefs.WaterAvailability
		if assumed, ok := waterPreferenceRainfall[strings.ToLower(prefs.WaterAvailability)]; ok {
			api := p.AnnualRainfall
			if api < 100 || api > 4000 || math.Abs(api-assumed) > 800 {
				p.note(fmt.Sprintf("annual rainfall overridden by %s water preference: %.0f mm (API reported %.0f mm)",
					prefs.WaterAvailability, assumed, api))
				p.AnnualRainfall = assumed
			} else {
				p.note(fmt.Sprintf("water preference %s retained as context; API rainfall %.0f mm kept", prefs.WaterAvailability, api))
			}
		}
	}

	// space handling
	if prefs.AvailableSpace != "" {
		p.AvailableSpaceM2 = ConvertAreaToSquareMeters(prefs.AvailableSpace)
		if p.AvailableSpaceM2 > 0 {
			p.note(fmt.Sprintf("available space set from user preference: %.1f m²", p.AvailableSpaceM2))
		}
	}
	spaceText := prefs.LocationType
	if spaceText == "" {
		spaceText = prefs.AvailableSpace
	}
	p.Space = ClassifySpaceType(spaceText)
	if prefs.LocationType != "" {
		p.note(fmt.Sprintf("location type %q classified as %s", prefs.LocationType, p.Space.Category))
	}

	common.LogDebug("environmental profile normalized",
		zap.Float64("lat", lat),
		zap.Float64("lon", lon),
		zap.Int("overrides", len(p.Overrides)),
	)

	return p
}

func (p *Profile) note(msg string) {
	p.Overrides = append(p.Overrides, msg)
}

// clamp bounds v to [min, max] and records the adjustment.
func (p *Profile) clamp(field string, v, min, max float64) float64 {
	if v < min {
		p.note(fmt.Sprintf("%s clamped from %s to %s", field, trimFloat(v), trimFloat(min)))
		return min
	}
	if v > max {
		p.note(fmt.Sprintf("%s clamped from %s to %s", field, trimFloat(v), trimFloat(max)))
		return max
	}
	return v
}

func trimFloat(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

// QualitySummary reports which inputs came from live data and which fell back.
func (p *Profile) QualitySummary() map[string]string {
	quality := func(status string) string {
		switch status {
		case "success", "estimated":
			return status
		case "":
			return "unknown"
		default:
			return "default_values"
		}
	}
	return map[string]string{
		"weather":     quality(p.WeatherStatus),
		"soil":        quality(p.SoilStatus),
		"air_quality": quality(p.AirStatus),
	}
}

// Summary renders a short human-readable description of the profile.
func (p *Profile) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Climate: %s, %.1f°C, %.0f%% humidity, %.0f mm annual rainfall. ",
		p.ClimateType, p.Temperature, p.Humidity, p.AnnualRainfall)
	fmt.Fprintf(&b, "Soil: %s, pH %.1f. ", p.SoilTexture, p.SoilPH)
	fmt.Fprintf(&b, "Air quality rating %d/5 (PM2.5 %.0f µg/m³).", p.AQIRating, p.PM25)
	if p.AvailableSpaceM2 > 0 {
		fmt.Fprintf(&b, " Available space: %.1f m² (%s).", p.AvailableSpaceM2, p.Space.Category)
	}
	return b.String()
}

// Package weather fetches current conditions, air quality and a rainfall
// estimate for a location, falling back to regional defaults when the
// upstream APIs are unavailable.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"plant-advisor/internal/core/environment"
	"plant-advisor/internal/infrastructure/config"
	"plant-advisor/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	openMeteoBaseURL   = "https://archive-api.open-meteo.com/v1"
)

// Client fetches weather and air quality data.
type Client struct {
	config config.WeatherConfig
	owm    *resty.Client
	meteo  *resty.Client
}

// NewClient creates a weather client.
func NewClient(cfg config.WeatherConfig) *Client {
	return &Client{
		config: cfg,
		owm: resty.New().
			SetBaseURL(openWeatherBaseURL).
			SetTimeout(cfg.Timeout),
		meteo: resty.New().
			SetBaseURL(openMeteoBaseURL).
			SetTimeout(cfg.Timeout),
	}
}

type owmWeatherResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
		Pressure float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type owmPollutionResponse struct {
	List []struct {
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
		Components struct {
			PM25 float64 `json:"pm2_5"`
			PM10 float64 `json:"pm10"`
		} `json:"components"`
	} `json:"list"`
}

type meteoArchiveResponse struct {
	Daily struct {
		PrecipitationSum []float64 `json:"precipitation_sum"`
	} `json:"daily"`
}

// Fetch returns weather and air quality readings for the coordinates.
// On any upstream failure it returns plausible defaults with
// status "default_values" rather than an error.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (environment.WeatherReading, environment.AirQualityReading) {
	weather := c.fetchWeather(ctx, lat, lon)
	air := c.fetchAirQuality(ctx, lat, lon)

	rainfall, rainfallEstimated := c.estimateAnnualRainfall(ctx, lat, lon)
	weather.AnnualRainfall = rainfall
	if !rainfallEstimated && weather.Status == "success" {
		weather.Status = "partial"
	}

	weather.ClimateType = ClassifyClimate(lat, weather.Temperature, weather.AnnualRainfall)
	return weather, air
}

func (c *Client) fetchWeather(ctx context.Context, lat, lon float64) environment.WeatherReading {
	defaults := environment.WeatherReading{
		Temperature: 27.5,
		Humidity:    65,
		Status:      "default_values",
	}
	if c.config.APIKey == "" {
		common.LogWarn("no OpenWeatherMap API key configured, using default weather")
		return defaults
	}

	resp, err := c.owm.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%f", lat),
			"lon":   fmt.Sprintf("%f", lon),
			"units": "metric",
			"appid": c.config.APIKey,
		}).
		Get("/weather")
	if err != nil || resp.StatusCode() != http.StatusOK {
		common.LogWarn("weather fetch failed, using defaults",
			zap.Error(err),
			zap.Int("status_code", resp.StatusCode()),
		)
		return defaults
	}

	var data owmWeatherResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		common.LogWarn("weather response unparseable, using defaults", zap.Error(err))
		return defaults
	}

	reading := environment.WeatherReading{
		Temperature: data.Main.Temp,
		Humidity:    data.Main.Humidity,
		WindSpeed:   data.Wind.Speed,
		Status:      "success",
	}
	if len(data.Weather) > 0 {
		reading.Description = data.Weather[0].Description
	}
	return reading
}

func (c *Client) fetchAirQuality(ctx context.Context, lat, lon float64) environment.AirQualityReading {
	defaults := environment.AirQualityReading{
		Rating: 3,
		PM25:   35,
		Status: "default_values",
	}
	if c.config.APIKey == "" {
		return defaults
	}

	resp, err := c.owm.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"lat":   fmt.Sprintf("%f", lat),
			"lon":   fmt.Sprintf("%f", lon),
			"appid": c.config.APIKey,
		}).
		Get("/air_pollution")
	if err != nil || resp.StatusCode() != http.StatusOK {
		common.LogWarn("air quality fetch failed, using defaults", zap.Error(err))
		return defaults
	}

	var data owmPollutionResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil || len(data.List) == 0 {
		return defaults
	}

	entry := data.List[0]
	return environment.AirQualityReading{
		Rating: entry.Main.AQI,
		AQI:    RatingToIndex(entry.Main.AQI, entry.Components.PM25),
		PM25:   entry.Components.PM25,
		Status: "success",
	}
}

// estimateAnnualRainfall scales recent daily precipitation up to a yearly
// figure and bounds it to a plausible range for the subcontinent.
func (c *Client) estimateAnnualRainfall(ctx context.Context, lat, lon float64) (float64, bool) {
	end := time.Now().AddDate(0, 0, -2)
	start := end.AddDate(0, 0, -90)

	resp, err := c.meteo.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":   fmt.Sprintf("%f", lat),
			"longitude":  fmt.Sprintf("%f", lon),
			"start_date": start.Format("2006-01-02"),
			"end_date":   end.Format("2006-01-02"),
			"daily":      "precipitation_sum",
			"timezone":   "auto",
		}).
		Get("/archive")
	if err != nil || resp.StatusCode() != http.StatusOK {
		common.LogWarn("rainfall history fetch failed, using regional default", zap.Error(err))
		return RegionalRainfallDefault(lat, lon), false
	}

	var data meteoArchiveResponse
	if err := json.Unmarshal(resp.Body(), &data); err != nil || len(data.Daily.PrecipitationSum) == 0 {
		return RegionalRainfallDefault(lat, lon), false
	}

	return ScaleToAnnualRainfall(data.Daily.PrecipitationSum), true
}

// ScaleToAnnualRainfall extrapolates a window of daily precipitation sums
// to an annual figure, clamped to [200, 4500] mm.
func ScaleToAnnualRainfall(daily []float64) float64 {
	if len(daily) == 0 {
		return 1000
	}
	total := 0.0
	for _, v := range daily {
		total += v
	}
	annual := total / float64(len(daily)) * 365
	if annual < 200 {
		annual = 200
	}
	if annual > 4500 {
		annual = 4500
	}
	return annual
}

// RegionalRainfallDefault returns a typical annual rainfall by region.
func RegionalRainfallDefault(lat, lon float64) float64 {
	switch {
	case lat > 23 && lon < 73:
		return 300 // western arid belt
	case lon > 88:
		return 2200 // eastern and northeastern high-rain belt
	case lat < 15:
		return 1500 // southern peninsula
	default:
		return 1000
	}
}

// RatingToIndex converts the 1-5 OpenWeatherMap air quality rating to a
// rough 0-500 index, biased by PM2.5 when available.
func RatingToIndex(rating int, pm25 float64) float64 {
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}
	base := map[int]float64{1: 40, 2: 90, 3: 150, 4: 250, 5: 400}[rating]
	if pm25 > 0 && pm25*2 > base {
		base = pm25 * 2
	}
	if base > 500 {
		base = 500
	}
	return base
}

// ClassifyClimate buckets a location into a coarse climate type from
// latitude, mean temperature and annual rainfall.
func ClassifyClimate(lat, temperature, rainfall float64) string {
	switch {
	case rainfall < 400:
		return "Arid"
	case temperature < 15:
		return "Temperate"
	case temperature >= 24 && rainfall >= 2000:
		return "Tropical Wet"
	case temperature >= 24 && rainfall >= 700:
		return "Tropical"
	case rainfall < 700:
		return "Semi-Arid"
	case lat > 28:
		return "Subtropical"
	default:
		return "Tropical"
	}
}

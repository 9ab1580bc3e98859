package recommend

import (
	"context"
	"time"

	"plant-advisor/internal/core/environment"
	"plant-advisor/internal/core/soil"
	"plant-advisor/internal/infrastructure/config"
	"plant-advisor/internal/pkg/common"

	"go.uber.org/zap"
)

// Generator produces model output for a prompt.
type Generator interface {
	ProcessRequest(ctx context.Context, prompt string) (string, error)
}

// WeatherFetcher supplies weather and air quality readings.
type WeatherFetcher interface {
	Fetch(ctx context.Context, lat, lon float64) (environment.WeatherReading, environment.AirQualityReading)
}

// Service runs the full recommendation pipeline.
type Service struct {
	config    *config.Config
	generator Generator
	weather   WeatherFetcher
	now       func() time.Time
}

// NewService creates the recommendation service.
func NewService(cfg *config.Config, gen Generator, weather WeatherFetcher) *Service {
	return &Service{
		config:    cfg,
		generator: gen,
		weather:   weather,
		now:       time.Now,
	}
}

// BuildProfile assembles the environmental profile for a request without
// calling the model.
func (s *Service) BuildProfile(ctx context.Context, req *Request) environment.Profile {
	soilReading := soil.Estimate(req.Latitude, req.Longitude)
	weatherReading, airReading := s.weather.Fetch(ctx, req.Latitude, req.Longitude)
	return environment.Normalize(req.Latitude, req.Longitude, soilReading, weatherReading, airReading, req.Preferences)
}

// Recommend produces 1-5 normalized recommendations for the request. It
// never returns an empty slice: unrecoverable model output yields the
// static fallback species, and total generation failure yields a single
// error-shaped record.
func (s *Service) Recommend(ctx context.Context, req *Request) ([]PlantRecommendation, environment.Profile) {
	profile := s.BuildProfile(ctx, req)

	var prompt string
	var shape Shape
	if s.config.AI.Provider == "local" {
		prompt, shape = BuildCompactPrompt(&profile, req, s.now())
	} else {
		prompt, shape = BuildFullPrompt(&profile, req, s.now())
	}

	var lastErr error
	for attempt := 1; attempt <= s.config.AI.MaxAttempts; attempt++ {
		raw, err := s.generator.ProcessRequest(ctx, prompt)
		if err != nil {
			lastErr = err
			common.LogWarn("generation attempt failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			continue
		}

		records := Recover(raw, shape)
		for i := range records {
			NormalizeRecord(&records[i])
		}

		common.LogInfo("recommendations generated",
			zap.Int("attempt", attempt),
			zap.Int("count", len(records)),
		)
		return records, profile
	}

	msg := "Unable to generate recommendations at this time. Please try again."
	if lastErr != nil {
		common.LogError("all generation attempts failed", zap.Error(lastErr))
	}
	return []PlantRecommendation{ErrorRecommendation(msg)}, profile
}

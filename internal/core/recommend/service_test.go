package recommend

import (
	"context"
	"errors"
	"testing"
	"time"

	"plant-advisor/internal/core/environment"
	"plant-advisor/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (f *fakeGenerator) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	i := f.calls
	f.calls++
	f.prompts = append(f.prompts, prompt)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var resp string
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	return resp, err
}

type fakeWeather struct{}

func (fakeWeather) Fetch(ctx context.Context, lat, lon float64) (environment.WeatherReading, environment.AirQualityReading) {
	return environment.WeatherReading{
			Temperature:    29,
			Humidity:       70,
			AnnualRainfall: 1200,
			ClimateType:    "Tropical",
			Status:         "success",
		}, environment.AirQualityReading{
			Rating: 3,
			PM25:   40,
			Status: "success",
		}
}

func testConfig(provider string) *config.Config {
	return &config.Config{
		AI: config.AIConfig{
			Provider:    provider,
			MaxAttempts: 3,
		},
	}
}

func testRequest() *Request {
	return &Request{
		Latitude:  19.07,
		Longitude: 72.87,
		Goal:      GoalAfforestation,
	}
}

func TestRecommendHappyPath(t *testing.T) {
	gen := &fakeGenerator{
		responses: []string{`{"recommendations":[{"scientific_name":"Azadirachta indica","common_name":"Neem"}]}`},
	}
	svc := NewService(testConfig("gemini"), gen, fakeWeather{})
	svc.now = func() time.Time { return time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC) }

	records, profile := svc.Recommend(context.Background(), testRequest())

	require.Len(t, records, 1)
	assert.Equal(t, "Neem", records[0].CommonName)
	// normalization ran on every record
	assert.NotEmpty(t, records[0].WaterRequirements.MaturePlant)
	assert.Equal(t, "Tropical", profile.ClimateType)
	assert.Equal(t, 1, gen.calls)
}

func TestRecommendRetriesOnGenerationFailure(t *testing.T) {
	gen := &fakeGenerator{
		errs: []error{errors.New("timeout"), errors.New("timeout"), nil},
		responses: []string{"", "",
			`[{"scientific_name":"Ficus religiosa","common_name":"Peepal"}]`},
	}
	svc := NewService(testConfig("local"), gen, fakeWeather{})
	svc.now = func() time.Time { return time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC) }

	records, _ := svc.Recommend(context.Background(), testRequest())

	assert.Equal(t, 3, gen.calls)
	require.Len(t, records, 1)
	assert.Equal(t, "Peepal", records[0].CommonName)
}

func TestRecommendErrorRecordAfterExhaustion(t *testing.T) {
	gen := &fakeGenerator{
		errs: []error{errors.New("down"), errors.New("down"), errors.New("down")},
	}
	svc := NewService(testConfig("gemini"), gen, fakeWeather{})

	records, _ := svc.Recommend(context.Background(), testRequest())

	assert.Equal(t, 3, gen.calls)
	require.Len(t, records, 1)
	assert.True(t, records[0].Error)
	assert.NotEmpty(t, records[0].Message)
}

func TestRecommendGarbageResponseYieldsFallback(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"no json here at all"}}
	svc := NewService(testConfig("gemini"), gen, fakeWeather{})

	records, _ := svc.Recommend(context.Background(), testRequest())

	require.Len(t, records, 2)
	assert.Equal(t, "Neem", records[0].CommonName)
	assert.False(t, records[0].Error)
}

func TestRecommendPromptVariantFollowsProvider(t *testing.T) {
	gen := &fakeGenerator{responses: []string{`[]`, `[]`}}
	local := NewService(testConfig("local"), gen, fakeWeather{})
	local.Recommend(context.Background(), testRequest())
	require.NotEmpty(t, gen.prompts)
	assert.Contains(t, gen.prompts[0], "JSON array")

	gen2 := &fakeGenerator{responses: []string{`{}`}}
	hosted := NewService(testConfig("gemini"), gen2, fakeWeather{})
	hosted.Recommend(context.Background(), testRequest())
	require.NotEmpty(t, gen2.prompts)
	assert.Contains(t, gen2.prompts[0], `"recommendations"`)
}

package recommend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"plant-advisor/internal/core/environment"
	core "plant-advisor/internal/core/recommend"
	"plant-advisor/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticGenerator struct {
	response string
}

func (s staticGenerator) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	return s.response, nil
}

type staticWeather struct{}

func (staticWeather) Fetch(ctx context.Context, lat, lon float64) (environment.WeatherReading, environment.AirQualityReading) {
	return environment.WeatherReading{
			Temperature:    28,
			Humidity:       65,
			AnnualRainfall: 1100,
			ClimateType:    "Tropical",
			Status:         "success",
		}, environment.AirQualityReading{
			Rating: 3,
			PM25:   40,
			Status: "success",
		}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AI: config.AIConfig{Provider: "gemini", MaxAttempts: 1},
	}
	gen := staticGenerator{response: `{"recommendations": [{"common_name": "Neem", "scientific_name": "Azadirachta indica"}]}`}
	svc := core.NewService(cfg, gen, staticWeather{})

	r := gin.New()
	r.POST("/recommendations", HandleRecommendations(svc))
	r.POST("/environment/preview", HandleEnvironmentPreview(svc))
	r.POST("/report/summary", HandleReportSummary())
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandleRecommendations(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, "/recommendations", `{"latitude": 28.6, "longitude": 77.2, "goal": "food_crops"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID)
	require.NotEmpty(t, resp.Recommendations)
	assert.Equal(t, "Neem", resp.Recommendations[0].CommonName)
	assert.NotEmpty(t, resp.QualitySummary)
}

func TestHandleRecommendationsAcceptsZeroCoordinate(t *testing.T) {
	r := testRouter(t)

	// equator crossings are in range and must not be rejected as missing
	w := doJSON(t, r, "/recommendations", `{"latitude": 0, "longitude": 77.2, "goal": "food_crops"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleRecommendationsValidation(t *testing.T) {
	r := testRouter(t)

	t.Run("bad goal", func(t *testing.T) {
		w := doJSON(t, r, "/recommendations", `{"latitude": 28.6, "longitude": 77.2, "goal": "world_domination"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unsupported goal type")
	})

	t.Run("out of range coordinates", func(t *testing.T) {
		w := doJSON(t, r, "/recommendations", `{"latitude": 120.0, "longitude": 77.2, "goal": "food_crops"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "latitude or longitude out of range")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doJSON(t, r, "/recommendations", `{"latitude": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandleEnvironmentPreview(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, "/environment/preview", `{"latitude": 28.6, "longitude": 77.2, "goal": "afforestation"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "environment")
	assert.Contains(t, resp, "quality_summary")
}

func TestHandleReportSummary(t *testing.T) {
	r := testRouter(t)

	body := `{"recommendations": [
		{"common_name": "Neem", "scientific_name": "Azadirachta indica",
		 "air_quality_benefits": {"co2_absorption": "30 kg per year", "oxygen_production": "high"},
		 "water_requirements": {"mature_plant": "30-60 liters per week"},
		 "environmental_impact_score": 9.0},
		{"common_name": "Mango", "scientific_name": "Mangifera indica",
		 "air_quality_benefits": {"co2_absorption": "20 kg per year", "oxygen_production": "moderate"},
		 "water_requirements": {"mature_plant": "40 liters per week"},
		 "environmental_impact_score": 7.0}
	]}`

	w := doJSON(t, r, "/report/summary", body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summary struct {
			Plants               []map[string]interface{} `json:"plants"`
			AvgCO2AbsorptionKg   float64                  `json:"avg_co2_absorption_kg"`
			TotalCO2AbsorptionKg int                      `json:"total_co2_absorption_kg"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Summary.Plants, 2)
	assert.InDelta(t, 25.0, resp.Summary.AvgCO2AbsorptionKg, 0.001)
	assert.Equal(t, 50, resp.Summary.TotalCO2AbsorptionKg)
}

func TestHandleReportSummaryRejectsMissingRecords(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, "/report/summary", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

package report

import (
	"testing"

	"plant-advisor/internal/core/recommend"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	records := []recommend.PlantRecommendation{
		{
			CommonName:               "Neem",
			ScientificName:           "Azadirachta indica",
			EnvironmentalImpactScore: 8,
			AirQualityBenefits: map[string]string{
				"co2_absorption":    "About 25 kg per year",
				"oxygen_production": "high",
			},
			WaterRequirements: recommend.WaterRequirements{
				MaturePlant: "30-60 liters per week",
			},
		},
		{
			CommonName:               "Peepal",
			ScientificName:           "Ficus religiosa",
			EnvironmentalImpactScore: 9,
			AirQualityBenefits: map[string]string{
				"co2_absorption":    "35 kg",
				"oxygen_production": "very high",
			},
			WaterRequirements: recommend.WaterRequirements{
				MaturePlant: "50 liters per week",
			},
		},
	}

	summary := Summarize(records)

	require.Len(t, summary.Plants, 2)
	assert.Equal(t, 25, summary.Plants[0].CO2AbsorptionKg)
	assert.Equal(t, 35, summary.Plants[0].OxygenScore) // "high" maps to 35
	assert.Equal(t, 45, summary.Plants[0].MatureWaterLiters)
	assert.Equal(t, 40, summary.Plants[1].OxygenScore) // "very high" maps to 40

	assert.Equal(t, 30.0, summary.AvgCO2AbsorptionKg)
	assert.Equal(t, 47.5, summary.AvgMatureWaterLiters)
	assert.Equal(t, 8.5, summary.AvgEnvironmentalImpact)
	assert.Equal(t, 60, summary.TotalCO2AbsorptionKg)
}

func TestSummarizeSkipsErrorRecords(t *testing.T) {
	records := []recommend.PlantRecommendation{
		recommend.ErrorRecommendation("failed"),
	}
	summary := Summarize(records)
	assert.Empty(t, summary.Plants)
	assert.Zero(t, summary.AvgCO2AbsorptionKg)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Empty(t, summary.Plants)
}

package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromLooseAliasKeys(t *testing.T) {
	raw := map[string]interface{}{
		"scientific_name": "Azadirachta indica",
		"common_name":     "Neem",
		"water_needs": map[string]interface{}{
			"seedling": "10 liters per week",
			"mature":   "water daily",
		},
		"sunlight": map[string]interface{}{
			"daily_hours":    "6-8 hours",
			"type":           "Full sun",
			"best_direction": "South",
		},
	}

	rec := fromLoose(raw)
	assert.Equal(t, "10 liters per week", rec.WaterRequirements.SeedlingStage)
	assert.Equal(t, "water daily", rec.WaterRequirements.MaturePlant)
	assert.Equal(t, "6-8 hours", rec.SunlightRequirements.DailyHoursNeeded)
	assert.Equal(t, "Full sun", rec.SunlightRequirements.LightIntensity)
	assert.Equal(t, "South", rec.SunlightRequirements.OptimalDirection)
}

func TestFromLooseNumericScore(t *testing.T) {
	rec := fromLoose(map[string]interface{}{
		"scientific_name":            "X",
		"suitability_score":          float64(9),
		"environmental_impact_score": 8.5,
	})
	assert.Equal(t, "9", rec.SuitabilityScore)
	assert.Equal(t, 8.5, rec.EnvironmentalImpactScore)
}

func TestFromLooseCompactFlatFields(t *testing.T) {
	rec := fromLoose(map[string]interface{}{
		"scientific_name": "Tectona grandis",
		"mature_height":   "30 m",
		"growth_rate":     "Fast",
		"spacing":         "3x3 m",
		"best_season":     "monsoon",
		"initial_cost":    "₹200",
	})

	assert.Equal(t, "30 m", rec.GrowthCharacteristics["mature_height"])
	assert.Equal(t, "Fast", rec.GrowthCharacteristics["growth_rate"])
	assert.Equal(t, "3x3 m", rec.PlantationGuide["spacing"])
	assert.Equal(t, "₹200", rec.EconomicBenefits["initial_cost"])
	assert.Equal(t, "monsoon", rec.PlantingWindow.Justification)
}

func TestFromLoosePlantingWindow(t *testing.T) {
	rec := fromLoose(map[string]interface{}{
		"scientific_name": "X",
		"planting_window": map[string]interface{}{
			"best_months":   []interface{}{"June", "July"},
			"can_plant_now": "yes",
			"justification": "monsoon onset",
		},
	})
	require.Equal(t, []string{"June", "July"}, rec.PlantingWindow.BestMonths)
	assert.True(t, rec.PlantingWindow.CanPlantNow)
}

func TestFromLooseStringMapFromPlainString(t *testing.T) {
	rec := fromLoose(map[string]interface{}{
		"scientific_name":      "X",
		"air_quality_benefits": "absorbs CO2 well",
	})
	assert.Equal(t, "absorbs CO2 well", rec.AirQualityBenefits["summary"])
}

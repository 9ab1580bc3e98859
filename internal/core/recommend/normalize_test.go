package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRecordFillsDefaults(t *testing.T) {
	rec := PlantRecommendation{ScientificName: "Azadirachta indica"}
	NormalizeRecord(&rec)

	assert.Equal(t, "Azadirachta indica", rec.CommonName)
	assert.Equal(t, "Plant", rec.PlantType)
	assert.Equal(t, "7", rec.SuitabilityScore)
	assert.NotEmpty(t, rec.WaterRequirements.SeedlingStage)
	assert.NotEmpty(t, rec.SunlightRequirements.DailyHoursNeeded)
	assert.NotNil(t, rec.AirQualityBenefits)
	assert.NotEmpty(t, rec.PlantingWindow.BestMonths)
}

func TestNormalizeRecordFillsSunlightSeasonalAdjustments(t *testing.T) {
	rec := PlantRecommendation{ScientificName: "Ocimum tenuiflorum"}
	NormalizeRecord(&rec)

	assert.NotEmpty(t, rec.SunlightRequirements.SeasonalAdjustments)

	rec.SunlightRequirements.SeasonalAdjustments = "Move indoors in winter"
	NormalizeRecord(&rec)
	assert.Equal(t, "Move indoors in winter", rec.SunlightRequirements.SeasonalAdjustments)
}

func TestNormalizeRecordSynthesizedWindowHasMitigation(t *testing.T) {
	rec := PlantRecommendation{ScientificName: "Santalum album"}
	NormalizeRecord(&rec)

	require.NotEmpty(t, rec.PlantingWindow.BestMonths)
	assert.NotEmpty(t, rec.PlantingWindow.MitigationSteps)
	assert.NotEmpty(t, rec.PlantingWindow.Justification)
}

func TestNormalizeRecordConvertsFrequencies(t *testing.T) {
	rec := PlantRecommendation{
		ScientificName: "Ficus religiosa",
		PlantType:      "Deciduous tree",
		WaterRequirements: WaterRequirements{
			YoungPlant:  "water daily",
			MaturePlant: "once a week",
		},
	}
	NormalizeRecord(&rec)

	assert.Equal(t, "35 liters per week", rec.WaterRequirements.YoungPlant)
	assert.Equal(t, "30-60 liters per week", rec.WaterRequirements.MaturePlant)
}

func TestNormalizeRecordIdempotent(t *testing.T) {
	rec := PlantRecommendation{
		ScientificName: "Mangifera indica",
		CommonName:     "Mango",
		PlantType:      "Fruit tree",
		WaterRequirements: WaterRequirements{
			SeedlingStage: "water daily",
		},
		PlantingWindow: PlantingWindow{Justification: "plant before winter"},
	}

	NormalizeRecord(&rec)
	first := rec
	NormalizeRecord(&rec)

	assert.Equal(t, first, rec)
}

func TestNormalizeRecordSynthesizesPlantingWindow(t *testing.T) {
	tests := []struct {
		justification string
		wantFirst     string
	}{
		{"best planted at monsoon onset", "June"},
		{"post-monsoon planting recommended", "October"},
		{"a winter rabi planting", "December"},
		{"no seasonal hint here", "June"},
	}
	for _, tt := range tests {
		t.Run(tt.justification, func(t *testing.T) {
			rec := PlantRecommendation{
				ScientificName: "X",
				PlantingWindow: PlantingWindow{Justification: tt.justification},
			}
			NormalizeRecord(&rec)
			require.NotEmpty(t, rec.PlantingWindow.BestMonths)
			assert.Equal(t, tt.wantFirst, rec.PlantingWindow.BestMonths[0])
			assert.True(t, rec.PlantingWindow.CanPlantNow)
		})
	}
}

func TestNormalizeRecordKeepsProvidedWindow(t *testing.T) {
	rec := PlantRecommendation{
		ScientificName: "X",
		PlantingWindow: PlantingWindow{
			BestMonths:  []string{"March"},
			CanPlantNow: false,
		},
	}
	NormalizeRecord(&rec)

	assert.Equal(t, []string{"March"}, rec.PlantingWindow.BestMonths)
	assert.False(t, rec.PlantingWindow.CanPlantNow)
}

func TestNormalizeRecordSkipsErrorRecords(t *testing.T) {
	rec := ErrorRecommendation("model unavailable")
	NormalizeRecord(&rec)

	assert.True(t, rec.Error)
	assert.Empty(t, rec.ScientificName)
	assert.Empty(t, rec.PlantingWindow.BestMonths)
}

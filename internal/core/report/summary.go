// Package report aggregates recommendation records into the numeric
// roll-up shown at the top of a generated report.
package report

import (
	"plant-advisor/internal/core/recommend"
)

// PlantSummary is the per-plant numeric extract.
type PlantSummary struct {
	CommonName          string  `json:"common_name"`
	ScientificName      string  `json:"scientific_name"`
	CO2AbsorptionKg     int     `json:"co2_absorption_kg"`
	OxygenScore         int     `json:"oxygen_score"`
	MatureWaterLiters   int     `json:"mature_water_liters_per_week"`
	EnvironmentalImpact float64 `json:"environmental_impact_score"`
}

// Summary is the aggregate over all recommended plants.
type Summary struct {
	Plants                 []PlantSummary `json:"plants"`
	AvgCO2AbsorptionKg     float64        `json:"avg_co2_absorption_kg"`
	AvgOxygenScore         float64        `json:"avg_oxygen_score"`
	AvgMatureWaterLiters   float64        `json:"avg_mature_water_liters_per_week"`
	AvgEnvironmentalImpact float64        `json:"avg_environmental_impact_score"`
	TotalCO2AbsorptionKg   int            `json:"total_co2_absorption_kg"`
}

// Summarize extracts comparable numbers from each recommendation. Error
// records are skipped; free-text fields go through the shared numeric
// extraction so qualitative answers still contribute.
func Summarize(records []recommend.PlantRecommendation) Summary {
	var summary Summary

	for _, rec := range records {
		if rec.Error {
			continue
		}
		plant := PlantSummary{
			CommonName:          rec.CommonName,
			ScientificName:      rec.ScientificName,
			CO2AbsorptionKg:     recommend.ExtractNumber(rec.AirQualityBenefits["co2_absorption"]),
			OxygenScore:         recommend.ExtractNumber(rec.AirQualityBenefits["oxygen_production"]),
			MatureWaterLiters:   recommend.ExtractNumber(rec.WaterRequirements.MaturePlant),
			EnvironmentalImpact: rec.EnvironmentalImpactScore,
		}
		summary.Plants = append(summary.Plants, plant)
	}

	n := len(summary.Plants)
	if n == 0 {
		return summary
	}

	var co2, oxygen, water, impact float64
	for _, p := range summary.Plants {
		co2 += float64(p.CO2AbsorptionKg)
		oxygen += float64(p.OxygenScore)
		water += float64(p.MatureWaterLiters)
		impact += p.EnvironmentalImpact
	}

	summary.AvgCO2AbsorptionKg = co2 / float64(n)
	summary.AvgOxygenScore = oxygen / float64(n)
	summary.AvgMatureWaterLiters = water / float64(n)
	summary.AvgEnvironmentalImpact = impact / float64(n)
	summary.TotalCO2AbsorptionKg = int(co2)

	return summary
}

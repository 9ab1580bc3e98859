package recommend

import "strings"

// NormalizeRecord fills every field a consumer relies on with a sensible
// default, converts vague watering frequencies to explicit quantities and
// synthesizes a planting window when none was given. It is idempotent:
// normalizing an already-normalized record changes nothing.
func NormalizeRecord(rec *PlantRecommendation) {
	if rec.Error {
		return
	}

	if rec.ScientificName == "" {
		rec.ScientificName = "Unknown species"
	}
	if rec.CommonName == "" {
		rec.CommonName = rec.ScientificName
	}
	if rec.LocalName == "" {
		rec.LocalName = rec.CommonName
	}
	if rec.PlantType == "" {
		rec.PlantType = "Plant"
	}
	if rec.SuitabilityScore == "" {
		rec.SuitabilityScore = "7"
	}
	if rec.SuitabilityAnalysis == "" {
		rec.SuitabilityAnalysis = "Suitable for the given location based on general growing conditions."
	}
	if rec.EnvironmentalImpactScore == 0 {
		rec.EnvironmentalImpactScore = 7
	}

	normalizeWater(&rec.WaterRequirements, rec.PlantType)
	normalizeSunlight(&rec.SunlightRequirements)

	rec.AirQualityBenefits = withDefaults(rec.AirQualityBenefits, map[string]string{
		"co2_absorption":    "Moderate",
		"oxygen_production": "Moderate",
	})
	rec.PlantationGuide = withDefaults(rec.PlantationGuide, map[string]string{
		"best_practice": "Plant at monsoon onset in a well-prepared pit with compost",
	})
	rec.GrowthCharacteristics = withDefaults(rec.GrowthCharacteristics, map[string]string{
		"growth_rate": "Moderate",
	})
	rec.MaintenanceSchedule = withDefaults(rec.MaintenanceSchedule, map[string]string{
		"watering": "As per water requirements",
		"pruning":  "Seasonal, as needed",
	})
	rec.EnvironmentalImpact = withDefaults(rec.EnvironmentalImpact, map[string]string{
		"summary": "Positive contribution to local greenery and air quality",
	})
	rec.EconomicBenefits = withDefaults(rec.EconomicBenefits, map[string]string{
		"summary": "Varies with scale and market",
	})
	rec.ChallengesAndSolutions = withDefaults(rec.ChallengesAndSolutions, map[string]string{
		"general": "Monitor for pests and water stress in the first year",
	})

	if len(rec.PlantingWindow.BestMonths) == 0 {
		rec.PlantingWindow = synthesizePlantingWindow(rec.PlantingWindow)
	}

	if len(rec.SustainabilityHighlights) == 0 {
		rec.SustainabilityHighlights = []string{"Supports local biodiversity"}
	}
	if rec.UserGoalAlignment == "" {
		rec.UserGoalAlignment = "Aligned with the stated planting goal"
	}
}

func normalizeWater(w *WaterRequirements, plantType string) {
	w.SeedlingStage = normalizeWaterField(w.SeedlingStage, plantType, "seedling_stage")
	w.YoungPlant = normalizeWaterField(w.YoungPlant, plantType, "young_plant")
	w.MaturePlant = normalizeWaterField(w.MaturePlant, plantType, "mature_plant")
	if w.DrySeasonAdjustment == "" {
		w.DrySeasonAdjustment = "Increase watering during dry spells"
	}
	if w.MonsoonReduction == "" {
		w.MonsoonReduction = "Reduce or suspend watering during monsoon"
	}
	if w.WaterConservationMethods == "" {
		w.WaterConservationMethods = "Mulching around the base"
	}
}

// normalizeWaterField converts any watering text to an explicit weekly
// liter figure. Empty values are treated as weekly watering.
func normalizeWaterField(text, plantType, stage string) string {
	if text == "" {
		text = "weekly"
	}
	return FrequencyToLiters(text, plantType, stage)
}

func normalizeSunlight(s *SunlightRequirements) {
	if s.DailyHoursNeeded == "" {
		s.DailyHoursNeeded = "4-6 hours"
	}
	if s.LightIntensity == "" {
		s.LightIntensity = "Full sun to partial shade"
	}
	if s.OptimalDirection == "" {
		s.OptimalDirection = "South"
	}
	if s.ShadeTolerance == "" {
		s.ShadeTolerance = "Moderate"
	}
	if s.SeasonalAdjustments == "" {
		s.SeasonalAdjustments = "Provide afternoon shade during peak summer"
	}
}

// withDefaults ensures the map exists and carries the default keys without
// touching anything the model already provided.
func withDefaults(m map[string]string, defaults map[string]string) map[string]string {
	if m == nil {
		m = make(map[string]string, len(defaults))
	}
	for k, v := range defaults {
		if _, exists := m[k]; !exists {
			m[k] = v
		}
	}
	return m
}

// synthesizePlantingWindow derives best months from season keywords in the
// justification text. Synthesized windows always allow planting now, since
// the record offers no evidence against it.
func synthesizePlantingWindow(w PlantingWindow) PlantingWindow {
	lower := strings.ToLower(w.Justification)
	switch {
	case strings.Contains(lower, "post-monsoon") || strings.Contains(lower, "post monsoon"):
		w.BestMonths = []string{"October", "November"}
	case strings.Contains(lower, "monsoon") || strings.Contains(lower, "rainy"):
		w.BestMonths = []string{"June", "July", "August", "September"}
	case strings.Contains(lower, "winter") || strings.Contains(lower, "rabi"):
		w.BestMonths = []string{"December", "January", "February"}
	default:
		w.BestMonths = []string{"June", "July", "August"}
	}
	w.CanPlantNow = true
	if w.Justification == "" {
		w.Justification = "General planting window for the region"
	}
	if w.MitigationSteps == "" {
		w.MitigationSteps = "Provide shade and extra watering if planting outside the best months"
	}
	return w
}

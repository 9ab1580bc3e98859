package recommend

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fromLoose converts a loosely-typed decoded record into the canonical
// struct. Models return many spellings for the same field; all known
// aliases are folded here so the rest of the pipeline sees one schema.
func fromLoose(raw map[string]interface{}) PlantRecommendation {
	rec := PlantRecommendation{
		ScientificName: looseString(raw, "scientific_name", "scientificName", "botanical_name"),
		CommonName:     looseString(raw, "common_name", "commonName", "name"),
		LocalName:      looseString(raw, "local_name", "localName", "vernacular_name"),
		PlantType:      looseString(raw, "plant_type", "plantType", "type_of_plant", "category"),
		Family:         looseString(raw, "family"),

		SuitabilityScore:    looseScore(raw, "suitability_score", "suitability", "score"),
		SuitabilityAnalysis: looseString(raw, "suitability_analysis", "suitability_reason", "analysis"),

		UserGoalAlignment: looseString(raw, "user_goal_alignment", "goal_alignment"),
		AdditionalUses:    looseString(raw, "additional_uses", "other_uses", "uses"),
		CompanionPlants:   looseString(raw, "companion_plants", "companions"),
	}

	rec.EnvironmentalImpactScore = looseFloat(raw, "environmental_impact_score", "impact_score")

	rec.WaterRequirements = looseWater(looseMap(raw, "water_requirements", "water_needs", "watering"))
	rec.SunlightRequirements = looseSunlight(looseMap(raw, "sunlight_requirements", "sunlight", "light_requirements"))

	rec.AirQualityBenefits = looseStringMap(raw, "air_quality_benefits", "air_benefits")
	rec.PlantationGuide = looseStringMap(raw, "plantation_guide", "planting_guide")
	rec.GrowthCharacteristics = looseStringMap(raw, "growth_characteristics", "growth")
	rec.MaintenanceSchedule = looseStringMap(raw, "maintenance_schedule", "maintenance")
	rec.EnvironmentalImpact = looseStringMap(raw, "environmental_impact")
	rec.EconomicBenefits = looseStringMap(raw, "economic_benefits", "economics")
	rec.ChallengesAndSolutions = looseStringMap(raw, "challenges_and_solutions", "challenges")

	rec.PlantingWindow = loosePlantingWindow(looseMap(raw, "planting_window", "planting_time"))
	rec.SustainabilityHighlights = looseStringSlice(raw, "sustainability_highlights", "sustainability")

	// compact prompts return flat fields; fold them into the nested maps
	foldFlatField(raw, "mature_height", &rec.GrowthCharacteristics)
	foldFlatField(raw, "growth_rate", &rec.GrowthCharacteristics)
	foldFlatField(raw, "spacing", &rec.PlantationGuide)
	foldFlatField(raw, "benefits", &rec.EnvironmentalImpact)
	foldFlatField(raw, "initial_cost", &rec.EconomicBenefits)
	if bs := looseString(raw, "best_season", "season"); bs != "" && rec.PlantingWindow.Justification == "" {
		rec.PlantingWindow.Justification = bs
	}

	return rec
}

func looseWater(m map[string]interface{}) WaterRequirements {
	if m == nil {
		return WaterRequirements{}
	}
	return WaterRequirements{
		SeedlingStage:            looseString(m, "seedling_stage", "seedling"),
		YoungPlant:               looseString(m, "young_plant", "young"),
		MaturePlant:              looseString(m, "mature_plant", "mature"),
		DrySeasonAdjustment:      looseString(m, "dry_season_adjustment", "dry_season"),
		MonsoonReduction:         looseString(m, "monsoon_reduction", "monsoon"),
		WaterConservationMethods: looseString(m, "water_conservation_methods", "conservation"),
	}
}

func looseSunlight(m map[string]interface{}) SunlightRequirements {
	if m == nil {
		return SunlightRequirements{}
	}
	return SunlightRequirements{
		DailyHoursNeeded:    looseString(m, "daily_hours_needed", "daily_hours", "hours"),
		LightIntensity:      looseString(m, "light_intensity", "type", "intensity"),
		OptimalDirection:    looseString(m, "optimal_direction", "best_direction", "direction"),
		ShadeTolerance:      looseString(m, "shade_tolerance"),
		SeasonalAdjustments: looseString(m, "seasonal_adjustments"),
	}
}

func loosePlantingWindow(m map[string]interface{}) PlantingWindow {
	if m == nil {
		return PlantingWindow{}
	}
	w := PlantingWindow{
		Justification:   looseString(m, "justification", "reason"),
		MitigationSteps: looseString(m, "mitigation_steps", "mitigation"),
	}
	switch v := m["can_plant_now"].(type) {
	case bool:
		w.CanPlantNow = v
	case string:
		w.CanPlantNow = strings.EqualFold(v, "true") || strings.EqualFold(v, "yes")
	}
	w.BestMonths = looseStringSlice(m, "best_months", "months")
	return w
}

// looseString returns the first non-empty string under any of the keys.
func looseString(m map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			switch t := v.(type) {
			case string:
				if s := strings.TrimSpace(t); s != "" {
					return s
				}
			case json.Number:
				return t.String()
			case float64:
				return trimNumber(t)
			}
		}
	}
	return ""
}

// looseScore returns a score as a string whether the model sent it as a
// number or text.
func looseScore(m map[string]interface{}, keys ...string) string {
	return looseString(m, keys...)
}

func looseFloat(m map[string]interface{}, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := m[key]; ok {
			switch t := v.(type) {
			case float64:
				return t
			case json.Number:
				if f, err := t.Float64(); err == nil {
					return f
				}
			case string:
				return float64(ExtractNumber(t))
			}
		}
	}
	return 0
}

func looseMap(m map[string]interface{}, keys ...string) map[string]interface{} {
	for _, key := range keys {
		if v, ok := m[key].(map[string]interface{}); ok {
			return v
		}
	}
	return nil
}

// looseStringMap flattens a nested object into a string map; non-string
// leaf values are stringified.
func looseStringMap(m map[string]interface{}, keys ...string) map[string]string {
	src := looseMap(m, keys...)
	if src == nil {
		// a plain string under the key becomes a single summary entry
		if s := looseString(m, keys...); s != "" {
			return map[string]string{"summary": s}
		}
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = stringify(v)
	}
	return out
}

func looseStringSlice(m map[string]interface{}, keys ...string) []string {
	for _, key := range keys {
		switch v := m[key].(type) {
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s := stringify(item); s != "" {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		case string:
			if v != "" {
				return []string{v}
			}
		}
	}
	return nil
}

func foldFlatField(raw map[string]interface{}, key string, target *map[string]string) {
	s := looseString(raw, key)
	if s == "" {
		return
	}
	if *target == nil {
		*target = make(map[string]string)
	}
	if _, exists := (*target)[key]; !exists {
		(*target)[key] = s
	}
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return trimNumber(t)
	case bool:
		return fmt.Sprintf("%t", t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

func trimNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}

package recommend

import (
	"fmt"
	"strings"
	"time"

	"plant-advisor/internal/core/environment"
)

// compactPromptLimit caps the condensed prompt for small local models.
const compactPromptLimit = 8000

const compactTruncationSuffix = "\n[Context truncated] Return ONLY a JSON array of 5 plant recommendation objects."

// RegionLabel names the broad Indian region for the coordinates.
func RegionLabel(lat, lon float64) string {
	switch {
	case lat > 26:
		return "North India"
	case lat < 15:
		return "South India"
	case lon < 77:
		return "West India"
	default:
		return "East India"
	}
}

// SeasonLabel names the agricultural season for the given time.
func SeasonLabel(now time.Time) string {
	switch month := int(now.Month()); {
	case month >= 11 || month <= 4:
		return "Rabi (Winter)"
	case month >= 6 && month <= 10:
		return "Kharif (Monsoon)"
	default:
		return "Zaid (Summer)"
	}
}

// goalGuidance returns the per-goal instruction block.
func goalGuidance(goal GoalType) string {
	switch goal {
	case GoalCashCrops:
		return `GOAL: CASH CROPS
- Prioritize market value, yield per square meter and time to first harvest
- Include realistic initial investment and expected returns in the economic_benefits
- Prefer crops with established regional demand and storage tolerance`
	case GoalFoodCrops:
		return `GOAL: FOOD CROPS
- Prioritize nutritional value, household consumption and continuous harvest
- Favor hardy varieties a non-expert can grow successfully
- Include intercropping and succession planting advice in the plantation_guide`
	case GoalAfforestation:
		return `GOAL: AFFORESTATION
- Prioritize native trees with high carbon absorption and canopy cover
- Favor species supporting local wildlife and soil improvement
- Include spacing for grove planting in the plantation_guide`
	default:
		return ""
	}
}

func nativePreferenceLine(nativeOnly bool) string {
	if nativeOnly {
		return "Recommend ONLY species native to the Indian subcontinent."
	}
	return "Prefer native species, but well-adapted naturalized species are acceptable."
}

// profileBlock renders the environmental facts shared by both prompt variants.
func profileBlock(p *environment.Profile, req *Request, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Location: %.4f, %.4f (%s)\n", p.Latitude, p.Longitude, RegionLabel(p.Latitude, p.Longitude))
	if req.LocationName != "" {
		fmt.Fprintf(&b, "Place: %s\n", req.LocationName)
	}
	fmt.Fprintf(&b, "Current season: %s\n", SeasonLabel(now))
	fmt.Fprintf(&b, "Climate: %s, average temperature %.1f°C, humidity %.0f%%\n", p.ClimateType, p.Temperature, p.Humidity)
	fmt.Fprintf(&b, "Annual rainfall: %.0f mm\n", p.AnnualRainfall)
	fmt.Fprintf(&b, "Soil: %s, pH %.1f, organic carbon %.1f%%\n", p.SoilTexture, p.SoilPH, p.SoilOrganicCarbon)
	fmt.Fprintf(&b, "Air quality: rating %d/5, PM2.5 %.0f µg/m³\n", p.AQIRating, p.PM25)
	if p.AvailableSpaceM2 > 0 {
		fmt.Fprintf(&b, "Available space: %.1f m² (%s, max plant height %.1f m)\n",
			p.AvailableSpaceM2, p.Space.Category, p.Space.MaxHeightM)
	} else if p.Space.Category != "" {
		fmt.Fprintf(&b, "Growing space: %s (max plant height %.1f m)\n", p.Space.Category, p.Space.MaxHeightM)
	}
	if p.WaterPreference != "" {
		fmt.Fprintf(&b, "Water availability: %s\n", p.WaterPreference)
	}
	if p.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", p.Budget)
	}
	for _, note := range p.Overrides {
		fmt.Fprintf(&b, "Note: %s\n", note)
	}
	return b.String()
}

// BuildFullPrompt builds the detailed prompt used with hosted models.
// The model is asked for a JSON object keyed by "recommendations".
// The result is deterministic for fixed inputs.
func BuildFullPrompt(p *environment.Profile, req *Request, now time.Time) (string, Shape) {
	prompt := fmt.Sprintf(`You are an expert agricultural and ecological advisor for India.

%s
%s
%s

Recommend EXACTLY 5 plants for this location and goal, ordered by suitability.

Requirements:
1. Every recommendation must suit the climate, soil, rainfall and available space given above
2. Give suitability_score from 1 to 10 with a short suitability_analysis
3. Give explicit water quantities in liters per week for every growth stage
4. Give planting_window with best_months for this region and whether planting can start now
5. Fill every field of the schema; use realistic values, never placeholders
6. Respond with ONLY the JSON object, no markdown fences, no commentary

JSON schema to follow exactly:
{
  "recommendations": [
    {
      "scientific_name": "Azadirachta indica",
      "common_name": "Neem",
      "local_name": "Neem",
      "plant_type": "Evergreen tree",
      "family": "Meliaceae",
      "suitability_score": "9",
      "suitability_analysis": "why this plant fits",
      "environmental_impact_score": 8.5,
      "water_requirements": {
        "seedling_stage": "10-15 liters per week",
        "young_plant": "20 liters per week",
        "mature_plant": "30-60 liters per week",
        "dry_season_adjustment": "...",
        "monsoon_reduction": "...",
        "water_conservation_methods": "..."
      },
      "sunlight_requirements": {
        "daily_hours_needed": "6-8 hours",
        "light_intensity": "Full sun",
        "optimal_direction": "South",
        "shade_tolerance": "Low",
        "seasonal_adjustments": "..."
      },
      "air_quality_benefits": {"co2_absorption": "...", "oxygen_production": "...", "pollutant_removal": "..."},
      "plantation_guide": {"pit_size": "...", "spacing": "...", "best_practice": "..."},
      "growth_characteristics": {"mature_height": "...", "growth_rate": "...", "lifespan": "..."},
      "maintenance_schedule": {"watering": "...", "fertilizing": "...", "pruning": "..."},
      "environmental_impact": {"soil_improvement": "...", "biodiversity": "..."},
      "economic_benefits": {"products": "...", "initial_cost": "..."},
      "challenges_and_solutions": {"challenge": "solution"},
      "planting_window": {
        "best_months": ["June", "July"],
        "can_plant_now": true,
        "justification": "...",
        "mitigation_steps": "..."
      },
      "sustainability_highlights": ["..."],
      "user_goal_alignment": "...",
      "additional_uses": "...",
      "companion_plants": "..."
    }
  ]
}`, profileBlock(p, req, now), goalGuidance(req.Goal), nativePreferenceLine(req.NativeOnly))

	return prompt, ShapeObject
}

// BuildCompactPrompt builds the condensed prompt for small local models.
// The model is asked for a bare JSON array, numeric guidance replaces prose,
// and the whole prompt is capped at compactPromptLimit characters.
func BuildCompactPrompt(p *environment.Profile, req *Request, now time.Time) (string, Shape) {
	prompt := fmt.Sprintf(`Plant recommendation task for India. Respond with ONLY a JSON array, no other text.

%s
%s
%s

Water guidance (liters per week): trees young 20-35, mature 30-150; crops 5-15; herbs/shrubs 3-10.
Sunlight guidance (hours/day): full sun 6-8, partial 4-6, shade-tolerant 2-4.
Planting window: give best_months for the region and can_plant_now as true/false.

Return a JSON array of EXACTLY 5 objects with these keys:
[
  {
    "scientific_name": "",
    "common_name": "",
    "local_name": "",
    "plant_type": "",
    "suitability_score": "1-10",
    "suitability_analysis": "",
    "water_requirements": {"seedling_stage": "", "young_plant": "", "mature_plant": ""},
    "sunlight_requirements": {"daily_hours_needed": "", "light_intensity": "", "optimal_direction": ""},
    "mature_height": "",
    "growth_rate": "",
    "spacing": "",
    "best_season": "",
    "planting_window": {"best_months": [], "can_plant_now": true, "justification": ""},
    "benefits": "",
    "initial_cost": ""
  }
]`, profileBlock(p, req, now), goalGuidance(req.Goal), nativePreferenceLine(req.NativeOnly))

	if len(prompt) > compactPromptLimit {
		cut := compactPromptLimit - len(compactTruncationSuffix)
		prompt = prompt[:cut] + compactTruncationSuffix
	}

	return prompt, ShapeArray
}

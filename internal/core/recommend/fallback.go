package recommend

// FallbackRecommendations returns two hardy, widely-suited native species
// used when nothing can be recovered from a model response.
func FallbackRecommendations() []PlantRecommendation {
	return []PlantRecommendation{
		{
			ScientificName:           "Azadirachta indica",
			CommonName:               "Neem",
			LocalName:                "Neem",
			PlantType:                "Evergreen tree",
			Family:                   "Meliaceae",
			SuitabilityScore:         "8",
			SuitabilityAnalysis:      "Hardy native tree tolerant of poor soils, heat and drought across most of India.",
			EnvironmentalImpactScore: 8.5,
			WaterRequirements: WaterRequirements{
				SeedlingStage:            "10-15 liters per week",
				YoungPlant:               "20 liters per week",
				MaturePlant:              "30-60 liters per week",
				DrySeasonAdjustment:      "Increase watering by roughly a third during peak summer",
				MonsoonReduction:         "Suspend watering during active monsoon weeks",
				WaterConservationMethods: "Basin mulching and drip irrigation",
			},
			SunlightRequirements: SunlightRequirements{
				DailyHoursNeeded:    "6-8 hours",
				LightIntensity:      "Full sun",
				OptimalDirection:    "South",
				ShadeTolerance:      "Low",
				SeasonalAdjustments: "None needed once established",
			},
			AirQualityBenefits: map[string]string{
				"co2_absorption":    "About 25 kg per year",
				"oxygen_production": "High",
				"pollutant_removal": "Filters dust and absorbs SO2 and NO2",
			},
			PlantationGuide: map[string]string{
				"pit_size":      "60x60x60 cm",
				"spacing":       "5-6 m between trees",
				"best_practice": "Plant at monsoon onset with compost-enriched backfill",
			},
			GrowthCharacteristics: map[string]string{
				"mature_height": "15-20 m",
				"growth_rate":   "Moderate to fast",
				"lifespan":      "Over 100 years",
			},
			MaintenanceSchedule: map[string]string{
				"watering":    "Weekly during establishment",
				"fertilizing": "Compost annually before monsoon",
				"pruning":     "Light shaping in late winter",
			},
			EnvironmentalImpact: map[string]string{
				"soil_improvement": "Leaf litter enriches soil",
				"biodiversity":     "Supports birds and beneficial insects",
			},
			EconomicBenefits: map[string]string{
				"products":     "Neem oil, seed cake, medicinal leaves",
				"initial_cost": "₹50-150 per sapling",
			},
			ChallengesAndSolutions: map[string]string{
				"frost_sensitivity": "Protect young plants in north Indian winters",
			},
			PlantingWindow: PlantingWindow{
				BestMonths:    []string{"June", "July", "August", "September"},
				CanPlantNow:   true,
				Justification: "Monsoon planting gives saplings natural irrigation",
			},
			SustainabilityHighlights: []string{
				"Drought tolerant once established",
				"Natural pesticide source reduces chemical use",
			},
			UserGoalAlignment: "Reliable multi-purpose native tree for nearly any goal",
			AdditionalUses:    "Shade, windbreak, traditional medicine",
			CompanionPlants:   "Turmeric, ginger in partial shade beneath",
		},
		{
			ScientificName:           "Ficus religiosa",
			CommonName:               "Peepal",
			LocalName:                "Peepal",
			PlantType:                "Deciduous tree",
			Family:                   "Moraceae",
			SuitabilityScore:         "8",
			SuitabilityAnalysis:      "Long-lived sacred fig thriving across the subcontinent with exceptional oxygen output.",
			EnvironmentalImpactScore: 9.0,
			WaterRequirements: WaterRequirements{
				SeedlingStage:            "10-15 liters per week",
				YoungPlant:               "20-30 liters per week",
				MaturePlant:              "30-60 liters per week",
				DrySeasonAdjustment:      "Water deeply every week in dry summers",
				MonsoonReduction:         "No watering needed during monsoon",
				WaterConservationMethods: "Thick organic mulch over the root zone",
			},
			SunlightRequirements: SunlightRequirements{
				DailyHoursNeeded:    "6+ hours",
				LightIntensity:      "Full sun",
				OptimalDirection:    "South",
				ShadeTolerance:      "Moderate when young",
				SeasonalAdjustments: "None needed",
			},
			AirQualityBenefits: map[string]string{
				"co2_absorption":    "About 30 kg per year",
				"oxygen_production": "Very high",
				"pollutant_removal": "Large canopy traps particulate matter",
			},
			PlantationGuide: map[string]string{
				"pit_size":      "90x90x90 cm",
				"spacing":       "10 m or more from structures",
				"best_practice": "Keep well clear of foundations and pipelines",
			},
			GrowthCharacteristics: map[string]string{
				"mature_height": "20-30 m",
				"growth_rate":   "Fast",
				"lifespan":      "Several centuries",
			},
			MaintenanceSchedule: map[string]string{
				"watering":    "Weekly for the first two years",
				"fertilizing": "Rarely needed",
				"pruning":     "Remove dead wood after monsoon",
			},
			EnvironmentalImpact: map[string]string{
				"biodiversity": "Keystone species for birds and fig wasps",
				"cooling":      "Substantial canopy shade lowers local temperature",
			},
			EconomicBenefits: map[string]string{
				"products":     "Limited; primarily ecological and cultural value",
				"initial_cost": "₹40-100 per sapling",
			},
			ChallengesAndSolutions: map[string]string{
				"invasive_roots": "Plant at least 10 m from buildings",
			},
			PlantingWindow: PlantingWindow{
				BestMonths:    []string{"June", "July", "August"},
				CanPlantNow:   true,
				Justification: "Establishes fastest with monsoon rains",
			},
			SustainabilityHighlights: []string{
				"Releases oxygen through more hours of the day than most trees",
				"Minimal maintenance once established",
			},
			UserGoalAlignment: "Excellent for afforestation and air quality goals",
			AdditionalUses:    "Shade, cultural and religious significance",
			CompanionPlants:   "Shade-tolerant understory herbs",
		},
	}
}

// ErrorRecommendation builds the single error-shaped record returned when
// every generation attempt has failed.
func ErrorRecommendation(message string) PlantRecommendation {
	if message == "" {
		message = "Unable to generate recommendations at this time. Please try again."
	}
	return PlantRecommendation{
		Error:   true,
		Message: message,
	}
}

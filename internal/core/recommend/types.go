package recommend

import "plant-advisor/internal/core/environment"

// GoalType is the user's planting objective.
type GoalType string

const (
	GoalCashCrops     GoalType = "cash_crops"
	GoalFoodCrops     GoalType = "food_crops"
	GoalAfforestation GoalType = "afforestation"
)

// Valid reports whether the goal is one of the supported values.
func (g GoalType) Valid() bool {
	switch g {
	case GoalCashCrops, GoalFoodCrops, GoalAfforestation:
		return true
	}
	return false
}

// Shape declares the top-level JSON layout a prompt asks the model for.
// The recovery pipeline uses it to pick the matching extraction mode.
type Shape int

const (
	// ShapeObject is an object with a "recommendations" array inside.
	ShapeObject Shape = iota
	// ShapeArray is a bare top-level array of records.
	ShapeArray
)

// Request is a recommendation request.
type Request struct {
	Latitude     float64                 `json:"latitude"`
	Longitude    float64                 `json:"longitude"`
	Goal         GoalType                `json:"goal" binding:"required"`
	NativeOnly   bool                    `json:"native_only"`
	Preferences  environment.Preferences `json:"preferences"`
	LocationName string                  `json:"location_name,omitempty"`
}

// WaterRequirements describes watering needs per growth stage.
type WaterRequirements struct {
	SeedlingStage            string `json:"seedling_stage,omitempty"`
	YoungPlant               string `json:"young_plant,omitempty"`
	MaturePlant              string `json:"mature_plant,omitempty"`
	DrySeasonAdjustment      string `json:"dry_season_adjustment,omitempty"`
	MonsoonReduction         string `json:"monsoon_reduction,omitempty"`
	WaterConservationMethods string `json:"water_conservation_methods,omitempty"`
}

// SunlightRequirements describes light needs.
type SunlightRequirements struct {
	DailyHoursNeeded    string `json:"daily_hours_needed,omitempty"`
	LightIntensity      string `json:"light_intensity,omitempty"`
	OptimalDirection    string `json:"optimal_direction,omitempty"`
	ShadeTolerance      string `json:"shade_tolerance,omitempty"`
	SeasonalAdjustments string `json:"seasonal_adjustments,omitempty"`
}

// PlantingWindow says when planting is advisable.
type PlantingWindow struct {
	BestMonths      []string `json:"best_months,omitempty"`
	CanPlantNow     bool     `json:"can_plant_now"`
	Justification   string   `json:"justification,omitempty"`
	MitigationSteps string   `json:"mitigation_steps,omitempty"`
}

// PlantRecommendation is the canonical recommendation record.
type PlantRecommendation struct {
	Error   bool   `json:"error,omitempty"`
	Message string `json:"message,omitempty"`

	ScientificName string `json:"scientific_name"`
	CommonName     string `json:"common_name"`
	LocalName      string `json:"local_name,omitempty"`
	PlantType      string `json:"plant_type,omitempty"`
	Family         string `json:"family,omitempty"`

	SuitabilityScore         string  `json:"suitability_score,omitempty"`
	SuitabilityAnalysis      string  `json:"suitability_analysis,omitempty"`
	EnvironmentalImpactScore float64 `json:"environmental_impact_score,omitempty"`

	WaterRequirements    WaterRequirements    `json:"water_requirements"`
	SunlightRequirements SunlightRequirements `json:"sunlight_requirements"`

	AirQualityBenefits     map[string]string `json:"air_quality_benefits,omitempty"`
	PlantationGuide        map[string]string `json:"plantation_guide,omitempty"`
	GrowthCharacteristics  map[string]string `json:"growth_characteristics,omitempty"`
	MaintenanceSchedule    map[string]string `json:"maintenance_schedule,omitempty"`
	EnvironmentalImpact    map[string]string `json:"environmental_impact,omitempty"`
	EconomicBenefits       map[string]string `json:"economic_benefits,omitempty"`
	ChallengesAndSolutions map[string]string `json:"challenges_and_solutions,omitempty"`

	PlantingWindow PlantingWindow `json:"planting_window"`

	SustainabilityHighlights []string `json:"sustainability_highlights,omitempty"`
	UserGoalAlignment        string   `json:"user_goal_alignment,omitempty"`
	AdditionalUses           string   `json:"additional_uses,omitempty"`
	CompanionPlants          string   `json:"companion_plants,omitempty"`
}

// maxRecommendations caps how many records a response may yield.
const maxRecommendations = 5

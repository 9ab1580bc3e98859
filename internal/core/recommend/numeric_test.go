package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		// missing data
		{"", 25},
		{"N/A", 25},
		{"varies by season", 25},
		{"not specified", 25},

		// qualitative descriptors
		{"excellent", 40},
		{"very high", 40},
		{"high", 35},
		{"good", 35},
		{"moderate", 25},
		{"medium", 25},
		{"low", 15},
		{"poor", 15},
		{"very low", 10},

		// ranges collapse to the truncated mean, even with a unit attached
		{"20-25 liters", 22},
		{"10-20", 15},
		{"100 to 200 kg", 150},

		// unit-tagged values
		{"25 kg per year", 25},
		{"12 liters daily", 12},
		{"₹5000 initial cost", 5000},

		// approximations
		{"about 30", 30},
		{"approximately 18 units", 18},

		// bare numbers
		{"42", 42},
		{"score of 7", 7},

		// nothing usable
		{"plenty", 25},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNumber(tt.in))
		})
	}
}

func TestFrequencyToLiters(t *testing.T) {
	tests := []struct {
		text      string
		plantType string
		stage     string
		want      string
	}{
		{"water daily", "Tree", "young_plant", "35 liters per week"},
		{"water daily", "Tree", "mature_plant", "80-150 liters per week"},
		{"alternate days", "Tree", "young_plant", "20 liters per week"},
		{"once a week", "Tree", "mature_plant", "30-60 liters per week"},
		{"monthly deep watering", "Tree", "mature_plant", "5-10 liters per week"},

		{"daily", "Cereal crop", "seedling_stage", "10 liters per week"},
		{"weekly", "Vegetable", "mature_plant", "5-15 liters per week"},

		{"daily misting", "Herb", "seedling_stage", "7 liters per week"},
		{"weekly", "Shrub", "mature_plant", "3-10 liters per week"},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.plantType+"/"+tt.stage, func(t *testing.T) {
			assert.Equal(t, tt.want, FrequencyToLiters(tt.text, tt.plantType, tt.stage))
		})
	}
}

func TestFrequencyToLitersEchoesExplicitAmounts(t *testing.T) {
	assert.Equal(t, "12 liters per week", FrequencyToLiters("12 liters twice weekly", "Tree", "young_plant"))
	assert.Equal(t, "20-30 liters per week", FrequencyToLiters("about 20-30 litres", "Tree", "mature_plant"))
}

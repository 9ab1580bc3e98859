package environment

import "strings"

// SpaceProfile describes the physical growing space.
type SpaceProfile struct {
	Category          string  `json:"category"`
	MaxHeightM        float64 `json:"max_height_m"`
	ContainerSuitable bool    `json:"container_suitable"`
	Description       string  `json:"description"`
}

var spaceKeywords = []struct {
	words   []string
	profile SpaceProfile
}{
	{
		words: []string{"window", "pane", "sill", "indoor"},
		profile: SpaceProfile{
			Category:          "indoor_small",
			MaxHeightM:        0.5,
			ContainerSuitable: true,
			Description:       "indoor spot suited to small container plants",
		},
	},
	{
		words: []string{"balcony", "terrace", "patio", "veranda"},
		profile: SpaceProfile{
			Category:          "semi_outdoor_medium",
			MaxHeightM:        2,
			ContainerSuitable: true,
			Description:       "semi-outdoor space for medium container plants",
		},
	},
	{
		words: []string{"backyard", "garden", "yard", "compound"},
		profile: SpaceProfile{
			Category:          "outdoor_medium",
			MaxHeightM:        5,
			ContainerSuitable: false,
			Description:       "outdoor ground space for shrubs and small trees",
		},
	},
	{
		words: []string{"farmland", "field", "farm", "acre", "hectare"},
		profile: SpaceProfile{
			Category:          "outdoor_large",
			MaxHeightM:        15,
			ContainerSuitable: false,
			Description:       "open land suited to full-size trees and crops",
		},
	},
}

// ClassifySpaceType maps a free-text location description to a space profile.
// Unrecognized text falls back to a general-purpose profile.
func ClassifySpaceType(text string) SpaceProfile {
	lower := strings.ToLower(text)
	for _, entry := range spaceKeywords {
		for _, word := range entry.words {
			if strings.Contains(lower, word) {
				return entry.profile
			}
		}
	}
	return SpaceProfile{
		Category:          "general",
		MaxHeightM:        10,
		ContainerSuitable: false,
		Description:       "unspecified space, general planting assumed",
	}
}

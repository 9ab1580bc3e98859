package soil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateRegions(t *testing.T) {
	tests := []struct {
		name        string
		lat, lon    float64
		wantTexture string
	}{
		{"Delhi, Gangetic plains", 28.6, 77.2, "Alluvial"},
		{"Assam, northeast", 26.1, 91.7, "Loamy"},
		{"Jaisalmer, western arid", 26.9, 70.9, "Sandy"},
		{"Pune, Deccan", 18.5, 73.9, "Black Clay"},
		{"Kochi, southern peninsula", 9.9, 76.3, "Red Laterite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Estimate(tt.lat, tt.lon)
			assert.Equal(t, tt.wantTexture, r.Texture)
			assert.Equal(t, "estimated", r.Status)
			assert.Greater(t, r.PH, 4.0)
			assert.Less(t, r.PH, 9.0)
		})
	}
}

func TestEstimateRecommendations(t *testing.T) {
	// northeast acidic soil should get a liming recommendation
	r := Estimate(26.1, 91.7)
	assert.Contains(t, r.Recommendations, "Apply agricultural lime to raise soil pH")

	// arid sandy soil should get alkalinity and retention advice
	arid := Estimate(26.9, 70.9)
	assert.NotEmpty(t, arid.Recommendations)
}

// Package soil estimates soil characteristics for Indian locations from
// geography. Detailed soil survey APIs are unreliable at this granularity,
// so regional estimates keep the pipeline total.
package soil

import (
	"plant-advisor/internal/core/environment"
)

// Estimate returns a soil reading for the coordinates. It always succeeds.
func Estimate(lat, lon float64) environment.SoilReading {
	reading := estimateByRegion(lat, lon)
	reading.Source = "geographic_estimate"
	reading.Status = "estimated"
	reading.Recommendations = recommendations(reading)
	return reading
}

// estimateByRegion maps broad Indian soil belts to typical values.
func estimateByRegion(lat, lon float64) environment.SoilReading {
	switch {
	case lat > 23 && lon >= 73 && lon <= 88:
		// Indo-Gangetic plains
		return environment.SoilReading{PH: 7.2, Texture: "Alluvial", OrganicCarbon: 0.5}
	case lat > 23 && lon > 88:
		// Northeast, high rainfall leaches the soil acidic
		return environment.SoilReading{PH: 5.5, Texture: "Loamy", OrganicCarbon: 1.2}
	case lat > 23 && lon < 73:
		// Western arid belt
		return environment.SoilReading{PH: 8.2, Texture: "Sandy", OrganicCarbon: 0.2}
	case lat >= 15:
		// Deccan plateau black soils
		return environment.SoilReading{PH: 7.8, Texture: "Black Clay", OrganicCarbon: 0.6}
	default:
		// Southern peninsula red and laterite soils
		return environment.SoilReading{PH: 6.3, Texture: "Red Laterite", OrganicCarbon: 0.8}
	}
}

// recommendations suggests amendments for the estimated soil.
func recommendations(r environment.SoilReading) []string {
	var recs []string
	if r.PH < 6.0 {
		recs = append(recs, "Apply agricultural lime to raise soil pH")
	}
	if r.PH > 7.8 {
		recs = append(recs, "Work in gypsum and organic matter to lower alkalinity")
	}
	if r.OrganicCarbon < 0.5 {
		recs = append(recs, "Add compost or farmyard manure to build organic content")
	}
	if r.Texture == "Sandy" {
		recs = append(recs, "Mulch heavily to improve water retention in sandy soil")
	}
	if r.Texture == "Black Clay" {
		recs = append(recs, "Avoid working black clay soil when wet to prevent compaction")
	}
	return recs
}

package environment

import (
	"regexp"
	"strconv"
	"strings"
)

// areaUnit pairs a unit spelling with its factor to square meters.
type areaUnit struct {
	name   string
	factor float64
}

// Ordered longest spelling first so "square feet" wins over "feet"
// and "hectare" over "are"-like fragments.
var areaUnits = []areaUnit{
	{"square meters", 1},
	{"square metres", 1},
	{"square meter", 1},
	{"square metre", 1},
	{"square yards", 0.836127},
	{"square yard", 0.836127},
	{"square feet", 0.092903},
	{"square foot", 0.092903},
	{"hectares", 10000},
	{"hectare", 10000},
	{"sq yd", 0.836127},
	{"sq ft", 0.092903},
	{"bigha", 2529.29},
	{"katha", 338.96},
	{"gunda", 100.84},
	{"acres", 4046.86},
	{"sqft", 0.092903},
	{"acre", 4046.86},
	{"sq m", 1},
	{"sqm", 1},
	{"ft2", 0.092903},
	{"m2", 1},
	{"m²", 1},
	{"ha", 10000},
}

var areaNumberPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)`)

// ConvertAreaToSquareMeters parses free text like "2 acres" or "500 sq ft"
// into square meters. A bare number is taken as square meters already.
// Unparseable input yields 0.
func ConvertAreaToSquareMeters(text string) float64 {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 0
	}

	match := areaNumberPattern.FindString(lower)
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}

	for _, unit := range areaUnits {
		if strings.Contains(lower, unit.name) {
			return value * unit.factor
		}
	}

	// bare number, assume square meters
	return value
}

package recommend

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// phrases that mean the value is simply unknown
var missingDataPhrases = []string{
	"n/a", "not available", "not specified", "unknown", "varies", "variable", "depends",
}

// qualitative descriptors mapped to representative scores. Order matters:
// "very low" and "very high" must be matched before their bare forms.
var qualitativeScores = []struct {
	phrase string
	value  int
}{
	{"excellent", 40},
	{"very high", 40},
	{"very low", 10},
	{"high", 35},
	{"good", 35},
	{"moderate", 25},
	{"medium", 25},
	{"low", 15},
	{"poor", 15},
}

var (
	rangePattern  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:-|–|to)\s*(\d+(?:\.\d+)?)`)
	unitPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:kg|kilograms?|liters?|litres?|l\b|meters?|metres?|m\b|₹|rs\.?|rupees?)`)
	approxPattern = regexp.MustCompile(`(?:about|approx(?:imately)?|around|roughly)\s*(\d+(?:\.\d+)?)`)
	barePattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)`)
)

// ExtractNumber pulls a single representative integer out of free text.
// It is total: any input yields a number, defaulting to 25.
func ExtractNumber(text string) int {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 25
	}
	for _, phrase := range missingDataPhrases {
		if strings.Contains(lower, phrase) {
			return 25
		}
	}

	hasDigit := strings.ContainsAny(lower, "0123456789")
	if !hasDigit {
		for _, q := range qualitativeScores {
			if strings.Contains(lower, q.phrase) {
				return q.value
			}
		}
		return 25
	}

	// ranges collapse to the truncated mean, before unit matching so
	// "20-25 liters" reads the whole range rather than just 25
	if m := rangePattern.FindStringSubmatch(lower); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return int((lo + hi) / 2)
		}
	}

	if m := unitPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(v)
		}
	}

	if m := approxPattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(v)
		}
	}

	if m := barePattern.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return int(v)
		}
	}

	return 25
}

// weekly liter guidance indexed by plant bucket, watering frequency and
// growth stage (young / mature)
var literTable = map[string]map[string][2]string{
	"tree": {
		"daily":     {"35", "80-150"},
		"alternate": {"20", "30-60"},
		"weekly":    {"20-30", "30-60"},
		"monthly":   {"5-10", "5-10"},
	},
	"crop": {
		"daily":     {"10", "10-40"},
		"alternate": {"6", "5-15"},
		"weekly":    {"6-10", "5-15"},
		"monthly":   {"2-5", "2-5"},
	},
	"other": {
		"daily":     {"7", "10-25"},
		"alternate": {"4", "3-10"},
		"weekly":    {"3-7", "3-10"},
		"monthly":   {"1-3", "1-3"},
	},
}

var explicitLitersPattern = regexp.MustCompile(`(\d+(?:\.\d+)?(?:\s*-\s*\d+(?:\.\d+)?)?)\s*(?:liters?|litres?|l\b)`)

// FrequencyToLiters converts a vague watering frequency phrase like
// "water daily" into an explicit weekly liter quantity for the plant type
// and growth stage. Text already carrying a liter quantity is echoed in
// normalized form. stage is "seedling_stage", "young_plant" or "mature_plant".
func FrequencyToLiters(text, plantType, stage string) string {
	lower := strings.ToLower(text)

	if m := explicitLitersPattern.FindStringSubmatch(lower); m != nil {
		amount := strings.ReplaceAll(m[1], " ", "")
		return fmt.Sprintf("%s liters per week", amount)
	}

	bucket := plantBucket(plantType)
	freq := wateringFrequency(lower)

	stageIdx := 0
	if strings.Contains(strings.ToLower(stage), "mature") {
		stageIdx = 1
	}

	amount := literTable[bucket][freq][stageIdx]
	return fmt.Sprintf("%s liters per week", amount)
}

func plantBucket(plantType string) string {
	lower := strings.ToLower(plantType)
	if strings.Contains(lower, "tree") {
		return "tree"
	}
	for _, word := range []string{"crop", "vegetable", "grain", "cereal", "pulse", "legume"} {
		if strings.Contains(lower, word) {
			return "crop"
		}
	}
	return "other"
}

func wateringFrequency(text string) string {
	switch {
	case strings.Contains(text, "alternate") || strings.Contains(text, "every other"):
		return "alternate"
	case strings.Contains(text, "daily") || strings.Contains(text, "every day"):
		return "daily"
	case strings.Contains(text, "month"):
		return "monthly"
	default:
		return "weekly"
	}
}

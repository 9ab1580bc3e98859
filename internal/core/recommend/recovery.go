package recommend

import (
	"encoding/json"
	"regexp"
	"strings"

	"plant-advisor/internal/pkg/common"

	"go.uber.org/zap"
)

// maxParseAttempts bounds the repair-and-reparse loop.
const maxParseAttempts = 3

// Recover turns raw model output into recommendation records. It works
// through a cascade of increasingly forgiving stages and always returns at
// least one record; it never returns an error and never panics.
func Recover(raw string, shape Shape) []PlantRecommendation {
	text := stripFences(raw)

	extracted, ok := extractStructure(text, shape)
	if ok {
		text = extracted
	}

	text = sanitize(text)

	if records := parseWithRepair(text, shape); len(records) > 0 {
		return capRecords(records)
	}

	if records := extractPartial(raw); len(records) > 0 {
		common.LogWarn("structured parse failed, recovered partial records",
			zap.Int("count", len(records)),
		)
		return capRecords(records)
	}

	common.LogWarn("response unrecoverable, returning fallback recommendations")
	return FallbackRecommendations()
}

// stripFences removes markdown code fences around the payload.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.Contains(text, "```") {
		return text
	}

	start := strings.Index(text, "```")
	rest := text[start+3:]
	// skip a language tag like "json" on the fence line
	if newline := strings.IndexByte(rest, '\n'); newline >= 0 {
		firstLine := strings.TrimSpace(rest[:newline])
		if len(firstLine) <= 10 && !strings.ContainsAny(firstLine, "{[") {
			rest = rest[newline+1:]
		}
	}
	if end := strings.Index(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// extractStructure finds the first balanced JSON structure of the preferred
// shape, falling back to the other shape. The scanner tracks string and
// escape state so brackets inside quoted values do not end the match.
func extractStructure(text string, shape Shape) (string, bool) {
	openers := []byte{'{', '['}
	if shape == ShapeArray {
		openers = []byte{'[', '{'}
	}
	for _, open := range openers {
		if s, ok := scanBalanced(text, open); ok {
			return s, true
		}
	}
	return "", false
}

func closerFor(open byte) byte {
	if open == '{' {
		return '}'
	}
	return ']'
}

// scanBalanced returns the substring from the first open bracket through
// its matching close. An unterminated structure is returned as-is so a
// later repair stage can close it.
func scanBalanced(text string, open byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start < 0 {
		return "", false
	}

	clos := closerFor(open)
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case clos:
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	// never closed; hand back the open tail for repair
	return text[start:], true
}

var (
	ellipsisPattern      = regexp.MustCompile(`\.\.\.`)
	trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// sanitize fixes the string-level artifacts small models commonly emit.
func sanitize(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "…", "")
	text = ellipsisPattern.ReplaceAllString(text, "")
	text = trailingCommaPattern.ReplaceAllString(text, "$1")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// parseWithRepair decodes the text, applying a targeted repair after each
// failure, up to maxParseAttempts times.
func parseWithRepair(text string, shape Shape) []PlantRecommendation {
	current := text
	for attempt := 0; attempt < maxParseAttempts; attempt++ {
		records, err := decodeRecords(current, shape)
		if err == nil {
			return records
		}

		repaired := repair(current, err)
		if repaired == current {
			common.LogDebug("no further repair possible",
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			return nil
		}
		current = repaired
	}
	return nil
}

// decodeRecords parses the text according to the declared shape, accepting
// the other shape as a fallback when the declared one is absent.
func decodeRecords(text string, shape Shape) ([]PlantRecommendation, error) {
	var value interface{}
	if err := common.ParseJSON(text, &value); err != nil {
		return nil, err
	}

	var items []interface{}
	switch v := value.(type) {
	case map[string]interface{}:
		if list, ok := v["recommendations"].([]interface{}); ok {
			items = list
		} else if shape == ShapeObject {
			// a single record object is acceptable
			items = []interface{}{v}
		}
	case []interface{}:
		items = v
	}

	records := make([]PlantRecommendation, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		rec := fromLoose(m)
		if rec.ScientificName == "" && rec.CommonName == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// repair applies one targeted fix keyed off the parse error.
func repair(text string, err error) string {
	if text == "" {
		return text
	}
	msg := err.Error()

	if strings.Contains(msg, "unexpected end of JSON input") ||
		strings.Contains(msg, "unexpected EOF") {
		return closeOpenBrackets(text)
	}

	if strings.Contains(msg, "extra JSON data") {
		// keep only the first balanced structure
		if s, ok := scanBalanced(text, text[0]); ok && s != text {
			return s
		}
		return text
	}

	// a missing comma between fields or elements: insert one right before
	// the offending character instead of losing everything after it
	if syntaxErr, ok := err.(*json.SyntaxError); ok &&
		(strings.Contains(msg, "after object key:value pair") ||
			strings.Contains(msg, "after array element")) {
		offset := int(syntaxErr.Offset)
		if offset >= 1 && offset <= len(text) {
			return text[:offset-1] + "," + text[offset-1:]
		}
	}

	// a syntax error mid-text: try quoting bare keys first, then cut at the
	// reported offset and close whatever was left open
	if quoted := common.QuoteJSONKeys(text); quoted != text {
		return quoted
	}

	if syntaxErr, ok := err.(*json.SyntaxError); ok && syntaxErr.Offset > 1 {
		offset := int(syntaxErr.Offset)
		if offset <= len(text) {
			truncated := strings.TrimSpace(text[:offset-1])
			truncated = trailingCommaPattern.ReplaceAllString(truncated, "$1")
			return closeOpenBrackets(strings.TrimSpace(truncated))
		}
	}

	return text
}

// closeOpenBrackets appends the closers for any structures left open,
// terminating an unfinished string first.
func closeOpenBrackets(text string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(text)
	if inString {
		b.WriteByte('"')
	}
	// drop a dangling comma before closing
	closed := strings.TrimRight(b.String(), ", ")
	b.Reset()
	b.WriteString(closed)
	for i := len(stack) - 1; i >= 0; i-- {
		b.WriteByte(closerFor(stack[i]))
	}
	return b.String()
}

var partialPatterns = map[string]*regexp.Regexp{
	"scientific_name": regexp.MustCompile(`"scientific_name"\s*:\s*"([^"]+)"`),
	"common_name":     regexp.MustCompile(`"common_name"\s*:\s*"([^"]+)"`),
	"local_name":      regexp.MustCompile(`"local_name"\s*:\s*"([^"]+)"`),
}

// extractPartial scrapes plant names straight out of broken text, building
// minimal records for later normalization.
func extractPartial(raw string) []PlantRecommendation {
	scientific := partialPatterns["scientific_name"].FindAllStringSubmatch(raw, maxRecommendations)
	if len(scientific) == 0 {
		return nil
	}
	commonNames := partialPatterns["common_name"].FindAllStringSubmatch(raw, maxRecommendations)
	local := partialPatterns["local_name"].FindAllStringSubmatch(raw, maxRecommendations)

	records := make([]PlantRecommendation, 0, len(scientific))
	for i, m := range scientific {
		rec := PlantRecommendation{ScientificName: m[1]}
		if i < len(commonNames) {
			rec.CommonName = commonNames[i][1]
		}
		if i < len(local) {
			rec.LocalName = local[i][1]
		}
		records = append(records, rec)
	}
	return records
}

func capRecords(records []PlantRecommendation) []PlantRecommendation {
	if len(records) > maxRecommendations {
		return records[:maxRecommendations]
	}
	return records
}

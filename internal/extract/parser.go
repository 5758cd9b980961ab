// README: Deterministic parser for pattern-form route queries.
package extract

import (
	"regexp"
	"strings"

	"akshar/internal/route"
)

// queryPatterns cover the query shapes users actually type, tried in order.
// Group 1 = origin, group 2 = destination, optional group 3 = mode.
var queryPatterns = []*regexp.Regexp{
	// "from X to Y [by Z]", also matches "how to get from X to Y" and
	// "directions from X to Y" via the unanchored prefix.
	regexp.MustCompile(`(?i)\bfrom\s+(.+?)\s+to\s+(.+?)(?:\s+by\s+(.+))?$`),
	// "directions X to Y [by Z]"
	regexp.MustCompile(`(?i)^directions\s+(.+?)\s+to\s+(.+?)(?:\s+by\s+(.+))?$`),
	// "X to Y [by Z]"
	regexp.MustCompile(`(?i)^(.+?)\s+to\s+(.+?)(?:\s+by\s+(.+))?$`),
}

// ParseQuery extracts a route request from a pattern-form query without any
// network call. ok is false when no pattern matches; free-form text then
// falls through to the AI service.
func ParseQuery(input string) (route.Request, bool) {
	normalized := strings.Join(strings.Fields(input), " ")
	if normalized == "" {
		return route.Request{}, false
	}

	for _, pattern := range queryPatterns {
		m := pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}

		origin := cleanLocation(m[1])
		destination := cleanLocation(m[2])
		if origin == "" || destination == "" {
			continue
		}

		mode := route.ModeDriving
		if m[3] != "" {
			mode = route.ParseMode(m[3])
		} else if kw, ok := findModeKeyword(normalized); ok {
			// No "by ..." clause; a mode keyword elsewhere in the query
			// still counts ("take the bus from X to Y").
			mode = kw
		}

		return route.Request{Origin: origin, Destination: destination, Mode: mode}, true
	}

	return route.Request{}, false
}

// cleanLocation trims punctuation and filler around an extracted place name.
func cleanLocation(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, ".,!?")
	return strings.TrimSpace(s)
}

// findModeKeyword scans the query for a recognized transport keyword.
func findModeKeyword(normalized string) (route.Mode, bool) {
	for _, word := range strings.Fields(strings.ToLower(normalized)) {
		word = strings.Trim(word, ".,!?")
		switch word {
		case "car", "driving", "drive",
			"walk", "walking", "foot",
			"bicycle", "bicycling", "bike", "cycle", "cycling",
			"transit", "bus", "train", "metro", "subway", "rail":
			return route.ParseMode(word), true
		}
	}
	return route.ModeDriving, false
}

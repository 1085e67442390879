package styling

import (
	"strconv"
	"strings"
)

// Clean trims styles and collapses every run of whitespace into a single
// space.
func Clean(styles string) string {
	return strings.Join(strings.Fields(styles), " ")
}

// ExtractRules splits declaration text into "property: value" entries in
// source order. Empty entries are dropped, duplicates are kept.
func ExtractRules(styles string) []string {
	var rules []string
	for rule := range strings.SplitSeq(Clean(styles), ";") {
		if rule = strings.TrimSpace(rule); rule != "" {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Sanitize canonicalizes separators: rules are joined with "; " and the
// result always ends with "; ".
func Sanitize(styles string) string {
	return strings.Join(ExtractRules(styles), "; ") + "; "
}

// formatNumber prints v the shortest way that round-trips, "0" for both zeros.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package styling

import (
	"strings"
)

// vendorPrefixes are emitted before the unprefixed declaration, in order.
var vendorPrefixes = []string{"-webkit-", "-ms-"}

// AddVendors expands every declaration into its prefixed variants followed by
// the declaration itself. Prefixing is purely mechanical, neither property
// nor value is checked.
func AddVendors(styles string) string {
	var sb strings.Builder
	for _, rule := range ExtractRules(styles) {
		property, value, _ := strings.Cut(rule, ":")
		property, value = strings.TrimSpace(property), strings.TrimSpace(value)

		var expanded strings.Builder
		for _, prefix := range vendorPrefixes {
			expanded.WriteString(prefix + property + ": " + value + ";")
		}
		expanded.WriteString(property + ": " + value + ";")
		sb.WriteString(Sanitize(expanded.String()))
	}
	return strings.TrimSpace(sb.String())
}

package styling

import (
	"fmt"
	"strings"
)

// OptimalQueries returns one width range per maximal run of consecutive
// enabled devices. A range that does not start at the smallest breakpoint
// begins one pixel past the breakpoint of the device preceding the run.
// Breakpoints are expected to be validated already.
func OptimalQueries(r Responsive) []string {
	devices := r.Devices()

	smallest, largest := devices[0].Breakpoint, devices[0].Breakpoint
	for _, d := range devices[1:] {
		smallest = min(smallest, d.Breakpoint)
		largest = max(largest, d.Breakpoint)
	}

	var queries []string
	for i := 0; i < len(devices); {
		if !devices[i].Enabled {
			i++
			continue
		}
		j := i
		for j+1 < len(devices) && devices[j+1].Enabled {
			j++
		}

		begin, end := devices[i].Breakpoint, devices[j].Breakpoint
		switch {
		case begin == smallest || i == 0:
			queries = append(queries, fmt.Sprintf("(max-width: %dpx)", end))
		case end == largest:
			queries = append(queries, fmt.Sprintf("(min-width: %dpx)", devices[i-1].Breakpoint+1))
		default:
			queries = append(queries, fmt.Sprintf("(min-width: %dpx) and (max-width: %dpx)", devices[i-1].Breakpoint+1, end))
		}
		i = j + 1
	}
	return queries
}

// AddMediaQueries wraps styles so they apply only to enabled devices. With
// every device enabled styles are returned unchanged, with none enabled they
// are wrapped in a query that never matches.
func AddMediaQueries(styles string, r Responsive) (string, error) {
	if r.AllEnabled() {
		return styles, nil
	}
	if r.AllDisabled() {
		return Clean("@media not all { " + styles + " }"), nil
	}
	if err := ValidateBreakpoints(r); err != nil {
		return "", err
	}
	return Clean("@media " + strings.Join(OptimalQueries(r), ", ") + " { " + styles + " }"), nil
}

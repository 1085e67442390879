package styling

import (
	"fmt"

	"reveal/common"
)

// ValidateBreakpoints checks that every breakpoint is a positive integer and
// that breakpoints do not decrease from mobile to desktop. Enable flags are
// not considered.
func ValidateBreakpoints(r Responsive) error {
	devices := r.Devices()
	for i, d := range devices {
		if d.Breakpoint <= 0 {
			return fmt.Errorf("%s breakpoint %d: %w", common.Device(i), d.Breakpoint, ErrInvalidBreakpoint)
		}
	}
	for i := 1; i < len(devices); i++ {
		if devices[i-1].Breakpoint > devices[i].Breakpoint {
			return fmt.Errorf("%s breakpoint %d is greater than %s breakpoint %d: %w",
				common.Device(i-1), devices[i-1].Breakpoint, common.Device(i), devices[i].Breakpoint,
				ErrOverlappingBreakpoints)
		}
	}
	return nil
}

// CheckResponsive validates breakpoints only when they matter, that is when
// some but not all devices are enabled.
func CheckResponsive(r Responsive) error {
	if r.AllEnabled() || r.AllDisabled() {
		return nil
	}
	return ValidateBreakpoints(r)
}

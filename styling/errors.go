package styling

import (
	"errors"

	"reveal/common"
)

// Configuration errors. All of them are returned synchronously by the call
// that received the offending value, use errors.Is to tell them apart.
var (
	ErrInvalidTransition      = common.ErrInvalidTransition
	ErrInvalidEasing          = common.ErrInvalidEasing
	ErrInvalidBreakpoint      = errors.New("breakpoints must be positive integers")
	ErrOverlappingBreakpoints = errors.New("breakpoints can't overlap")
)

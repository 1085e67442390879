package styling

import (
	"fmt"
	"strings"

	"reveal/common"
)

// easings maps every named curve to its cubic-bezier control points.
var easings = map[common.Easing][4]float64{
	common.EasingLinear:         {0, 0, 1, 1},
	common.EasingEaseInSine:     {0.12, 0, 0.39, 0},
	common.EasingEaseOutSine:    {0.61, 1, 0.88, 1},
	common.EasingEaseInOutSine:  {0.37, 0, 0.63, 1},
	common.EasingEaseInQuad:     {0.11, 0, 0.5, 0},
	common.EasingEaseOutQuad:    {0.5, 1, 0.89, 1},
	common.EasingEaseInOutQuad:  {0.45, 0, 0.55, 1},
	common.EasingEaseInCubic:    {0.32, 0, 0.67, 0},
	common.EasingEaseOutCubic:   {0.33, 1, 0.68, 1},
	common.EasingEaseInOutCubic: {0.65, 0, 0.35, 1},
	common.EasingEaseInQuart:    {0.5, 0, 0.75, 0},
	common.EasingEaseOutQuart:   {0.25, 1, 0.5, 1},
	common.EasingEaseInOutQuart: {0.76, 0, 0.24, 1},
	common.EasingEaseInQuint:    {0.64, 0, 0.78, 0},
	common.EasingEaseOutQuint:   {0.22, 1, 0.36, 1},
	common.EasingEaseInOutQuint: {0.83, 0, 0.17, 1},
	common.EasingEaseInExpo:     {0.7, 0, 0.84, 0},
	common.EasingEaseOutExpo:    {0.16, 1, 0.3, 1},
	common.EasingEaseInOutExpo:  {0.87, 0, 0.13, 1},
	common.EasingEaseInCirc:     {0.55, 0, 1, 0.45},
	common.EasingEaseOutCirc:    {0, 0.55, 0.45, 1},
	common.EasingEaseInOutCirc:  {0.85, 0, 0.15, 1},
	common.EasingEaseInBack:     {0.36, 0, 0.66, -0.56},
	common.EasingEaseOutBack:    {0.34, 1.56, 0.64, 1},
	common.EasingEaseInOutBack:  {0.68, -0.6, 0.32, 1.6},
}

// ResolveEasing returns control points of the named curve. For custom easing
// the caller supplied points are returned verbatim, there must be exactly four
// of them.
func ResolveEasing(name common.Easing, custom []float64) ([4]float64, error) {
	if name.IsCustom() {
		if len(custom) != 4 {
			return [4]float64{}, fmt.Errorf("custom easing requires 4 control points, got %d: %w", len(custom), ErrInvalidEasing)
		}
		return [4]float64(custom), nil
	}
	weights, ok := easings[name]
	if !ok {
		return [4]float64{}, fmt.Errorf("%q: %w", string(name), ErrInvalidEasing)
	}
	return weights, nil
}

// CubicBezier renders resolved easing as CSS timing function.
func CubicBezier(name common.Easing, custom []float64) (string, error) {
	weights, err := ResolveEasing(name, custom)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, len(weights))
	for _, w := range weights {
		parts = append(parts, formatNumber(w))
	}
	return "cubic-bezier(" + strings.Join(parts, ", ") + ")", nil
}

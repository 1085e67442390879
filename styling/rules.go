package styling

import (
	"fmt"

	"reveal/common"
)

// HiddenStateRules returns vendor-prefixed declarations describing the state
// of an element before it is revealed.
func HiddenStateRules(transition common.Transition, o Options) (string, error) {
	styles := "opacity: " + formatNumber(o.Opacity) + ";"
	switch transition {
	case common.TransitionFly:
		styles += " transform: translateY(" + formatNumber(o.Y) + "px);"
	case common.TransitionFade:
	case common.TransitionBlur:
		styles += " filter: blur(" + formatNumber(o.Blur) + "px);"
	case common.TransitionScale:
		styles += " transform: scale(" + formatNumber(o.Scale) + ");"
	case common.TransitionSlide:
		styles += " transform: translateX(" + formatNumber(o.X) + "px);"
	case common.TransitionSpin:
		styles += " transform: rotate(" + formatNumber(o.Rotate) + "deg);"
	default:
		return "", fmt.Errorf("%q: %w", string(transition), ErrInvalidTransition)
	}
	return AddVendors(styles), nil
}

// TransitionTiming returns vendor-prefixed "transition" declarations built
// from duration, delay and easing.
func TransitionTiming(o Options) (string, error) {
	easing, err := CubicBezier(o.Easing, o.CustomEasing)
	if err != nil {
		return "", err
	}
	return AddVendors(fmt.Sprintf("transition: all %ss %ss %s;",
		formatNumber(o.Duration/1000), formatNumber(o.Delay/1000), easing)), nil
}

// MainCSS returns the hidden-state rule set for className using o.Transition.
func MainCSS(className string, o Options) (string, error) {
	rules, err := HiddenStateRules(o.Transition, o)
	if err != nil {
		return "", err
	}
	return block(className, rules), nil
}

// TransitionCSS returns the rule set carrying transition timing for
// className.
func TransitionCSS(className string, o Options) (string, error) {
	rules, err := TransitionTiming(o)
	if err != nil {
		return "", err
	}
	return block(className, rules), nil
}

func block(className, rules string) string {
	return Clean("." + className + " { " + rules + " }")
}

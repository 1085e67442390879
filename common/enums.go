// Package common keeps enumerations shared between configuration and the
// styling core. Configuration needs them to decode YAML and the core needs
// them to select rules, so they cannot live in either package.
package common

//go:generate go tool go-enum --marshal --names

// Named animation style, decides which properties encode the hidden state.
// ENUM(fly, fade, blur, scale, slide, spin)
type Transition string

// Named cubic-bezier curve. Custom requires explicit control points.
// ENUM(linear, easeInSine, easeOutSine, easeInOutSine, easeInQuad, easeOutQuad, easeInOutQuad, easeInCubic, easeOutCubic, easeInOutCubic, easeInQuart, easeOutQuart, easeInOutQuart, easeInQuint, easeOutQuint, easeInOutQuint, easeInExpo, easeOutExpo, easeInOutExpo, easeInCirc, easeOutCirc, easeInOutCirc, easeInBack, easeOutBack, easeInOutBack, custom)
type Easing string

// Responsive tier. Declaration order is ascending screen size and is
// significant for breakpoint validation and media query ranges.
// ENUM(mobile, tablet, laptop, desktop)
type Device int

// IsCustom reports whether control points must be supplied by the caller.
func (e Easing) IsCustom() bool {
	return e == EasingCustom
}

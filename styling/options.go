package styling

import (
	"reveal/common"
)

// Options describes the animation of a single element. Geometry values are in
// pixels (X, Y, Blur), degrees (Rotate) or unitless (Opacity, Scale); timing
// values are in milliseconds.
type Options struct {
	Ref          string            `yaml:"ref,omitempty"`
	Disable      bool              `yaml:"disable"`
	Threshold    float64           `yaml:"threshold" validate:"gte=0,lte=1"`
	Transition   common.Transition `yaml:"transition"`
	Duration     float64           `yaml:"duration" validate:"gte=0"`
	Delay        float64           `yaml:"delay" validate:"gte=0"`
	Easing       common.Easing     `yaml:"easing"`
	CustomEasing []float64         `yaml:"custom_easing,flow,omitempty"`
	X            float64           `yaml:"x"`
	Y            float64           `yaml:"y"`
	Rotate       float64           `yaml:"rotate"`
	Opacity      float64           `yaml:"opacity" validate:"gte=0,lte=1"`
	Blur         float64           `yaml:"blur" validate:"gte=0"`
	Scale        float64           `yaml:"scale" validate:"gte=0"`
}

// DefaultOptions returns the documented defaults callers merge their values
// onto.
func DefaultOptions() Options {
	return Options{
		Threshold:    0.6,
		Transition:   common.TransitionFly,
		Duration:     800,
		Delay:        0,
		Easing:       common.EasingCustom,
		CustomEasing: []float64{0.25, 0.1, 0.25, 0.1},
		X:            -20,
		Y:            -20,
		Rotate:       -360,
		Opacity:      0,
		Blur:         16,
		Scale:        0,
	}
}

// DeviceSettings is the responsive state of a single device tier.
type DeviceSettings struct {
	Enabled    bool `yaml:"enabled"`
	Breakpoint int  `yaml:"breakpoint"`
}

// Responsive holds settings for every device tier exactly once.
type Responsive struct {
	Mobile  DeviceSettings `yaml:"mobile"`
	Tablet  DeviceSettings `yaml:"tablet"`
	Laptop  DeviceSettings `yaml:"laptop"`
	Desktop DeviceSettings `yaml:"desktop"`
}

// DefaultResponsive enables every device with the stock breakpoints.
func DefaultResponsive() Responsive {
	return Responsive{
		Mobile:  DeviceSettings{Enabled: true, Breakpoint: 425},
		Tablet:  DeviceSettings{Enabled: true, Breakpoint: 768},
		Laptop:  DeviceSettings{Enabled: true, Breakpoint: 1440},
		Desktop: DeviceSettings{Enabled: true, Breakpoint: 2560},
	}
}

// Devices returns settings indexed by common.Device, i.e. in ascending screen
// size order.
func (r Responsive) Devices() [4]DeviceSettings {
	return [4]DeviceSettings{
		common.DeviceMobile:  r.Mobile,
		common.DeviceTablet:  r.Tablet,
		common.DeviceLaptop:  r.Laptop,
		common.DeviceDesktop: r.Desktop,
	}
}

// Device returns settings of a single tier.
func (r Responsive) Device(d common.Device) DeviceSettings {
	return r.Devices()[d]
}

// AllEnabled reports whether rules apply unconditionally.
func (r Responsive) AllEnabled() bool {
	for _, d := range r.Devices() {
		if !d.Enabled {
			return false
		}
	}
	return true
}

// AllDisabled reports whether rules never apply.
func (r Responsive) AllDisabled() bool {
	for _, d := range r.Devices() {
		if d.Enabled {
			return false
		}
	}
	return true
}

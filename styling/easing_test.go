package styling_test

import (
	"errors"
	"testing"

	"reveal/common"
	"reveal/styling"
)

func TestResolveEasing_Named(t *testing.T) {
	tests := []struct {
		name common.Easing
		want [4]float64
	}{
		{common.EasingLinear, [4]float64{0, 0, 1, 1}},
		{common.EasingEaseInOutCubic, [4]float64{0.65, 0, 0.35, 1}},
		{common.EasingEaseInCirc, [4]float64{0.55, 0, 1, 0.45}},
		{common.EasingEaseInOutBack, [4]float64{0.68, -0.6, 0.32, 1.6}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			got, err := styling.ResolveEasing(tt.name, nil)
			if err != nil {
				t.Fatalf("ResolveEasing(%s) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ResolveEasing(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestResolveEasing_EveryNamedCurveIsKnown(t *testing.T) {
	count := 0
	for _, name := range common.EasingNames() {
		e := common.Easing(name)
		if e.IsCustom() {
			continue
		}
		count++
		if _, err := styling.ResolveEasing(e, nil); err != nil {
			t.Errorf("ResolveEasing(%s) error = %v", name, err)
		}
	}
	if count != 25 {
		t.Errorf("expected 25 named curves, got %d", count)
	}
}

func TestResolveEasing_Custom(t *testing.T) {
	got, err := styling.ResolveEasing(common.EasingCustom, []float64{0.8, 0, 0.2, 1})
	if err != nil {
		t.Fatalf("ResolveEasing(custom) error = %v", err)
	}
	if want := [4]float64{0.8, 0, 0.2, 1}; got != want {
		t.Errorf("ResolveEasing(custom) = %v, want %v", got, want)
	}
}

func TestResolveEasing_Errors(t *testing.T) {
	tests := []struct {
		name   string
		easing common.Easing
		custom []float64
	}{
		{"custom without points", common.EasingCustom, nil},
		{"custom with three points", common.EasingCustom, []float64{0.1, 0.2, 0.3}},
		{"unknown name", common.Easing("bouncy"), nil},
		{"empty name", common.Easing(""), []float64{0, 0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := styling.ResolveEasing(tt.easing, tt.custom)
			if !errors.Is(err, styling.ErrInvalidEasing) {
				t.Errorf("expected ErrInvalidEasing, got %v", err)
			}
		})
	}
}

func TestCubicBezier(t *testing.T) {
	got, err := styling.CubicBezier(common.EasingEaseOutBack, nil)
	if err != nil {
		t.Fatalf("CubicBezier() error = %v", err)
	}
	if want := "cubic-bezier(0.34, 1.56, 0.64, 1)"; got != want {
		t.Errorf("CubicBezier() = %q, want %q", got, want)
	}

	got, err = styling.CubicBezier(common.EasingCustom, []float64{0.25, 0.1, 0.25, 0.1})
	if err != nil {
		t.Fatalf("CubicBezier(custom) error = %v", err)
	}
	if want := "cubic-bezier(0.25, 0.1, 0.25, 0.1)"; got != want {
		t.Errorf("CubicBezier(custom) = %q, want %q", got, want)
	}
}

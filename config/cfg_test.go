package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
	yaml "gopkg.in/yaml.v3"

	"reveal/common"
	"reveal/styling"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}

	def := styling.DefaultOptions()
	if cfg.Defaults.Transition != def.Transition || cfg.Defaults.Duration != def.Duration || cfg.Defaults.Blur != def.Blur {
		t.Errorf("Defaults = %+v, want %+v", cfg.Defaults, def)
	}
	if len(cfg.Defaults.CustomEasing) != 4 || cfg.Defaults.CustomEasing[3] != 0.1 {
		t.Errorf("CustomEasing = %v", cfg.Defaults.CustomEasing)
	}
	if cfg.Responsive != styling.DefaultResponsive() {
		t.Errorf("Responsive = %+v, want %+v", cfg.Responsive, styling.DefaultResponsive())
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
defaults:
  transition: fade
  duration: 1200
  easing: easeOutQuad
responsive:
  mobile:
    enabled: false
    breakpoint: 480
  laptop:
    breakpoint: 1024
refs:
  hero:
    transition: spin
    delay: 300
logging:
  console:
    level: normal
  file:
    level: none
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Defaults.Transition != common.TransitionFade {
		t.Errorf("Transition = %s, want fade", cfg.Defaults.Transition)
	}
	if cfg.Defaults.Duration != 1200 {
		t.Errorf("Duration = %v, want 1200", cfg.Defaults.Duration)
	}
	if cfg.Defaults.Easing != common.EasingEaseOutQuad {
		t.Errorf("Easing = %s, want easeOutQuad", cfg.Defaults.Easing)
	}
	// values not present in file come from template
	if cfg.Defaults.Rotate != -360 {
		t.Errorf("Rotate = %v, want -360", cfg.Defaults.Rotate)
	}
	if cfg.Responsive.Mobile.Enabled || cfg.Responsive.Mobile.Breakpoint != 480 {
		t.Errorf("Mobile = %+v", cfg.Responsive.Mobile)
	}
	if !cfg.Responsive.Tablet.Enabled || cfg.Responsive.Tablet.Breakpoint != 768 {
		t.Errorf("Tablet = %+v", cfg.Responsive.Tablet)
	}
	if cfg.Responsive.Laptop.Breakpoint != 1024 {
		t.Errorf("Laptop breakpoint = %d, want 1024", cfg.Responsive.Laptop.Breakpoint)
	}
	if _, ok := cfg.Refs["hero"]; !ok {
		t.Error("Expected ref 'hero' to be loaded")
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: 1
defaults:
  duration: 100
  invalid indent
`)

	_, err := LoadConfiguration(path)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	path := writeConfig(t, `version: 1
unknown_field: value
defaults:
  duration: 100
`)

	_, err := LoadConfiguration(path)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid version",
			content: "version: 2\n",
		},
		{
			name:    "unknown transition",
			content: "version: 1\ndefaults:\n  transition: wobble\n",
		},
		{
			name:    "unknown easing",
			content: "version: 1\ndefaults:\n  easing: bounce\n",
		},
		{
			name:    "opacity out of range",
			content: "version: 1\ndefaults:\n  opacity: 2\n",
		},
		{
			name:    "negative duration",
			content: "version: 1\ndefaults:\n  duration: -1\n",
		},
		{
			name: "overlapping breakpoints",
			content: `version: 1
responsive:
  mobile:
    enabled: false
  tablet:
    breakpoint: 2000
`,
		},
		{
			name: "zero breakpoint",
			content: `version: 1
responsive:
  desktop:
    enabled: false
  laptop:
    breakpoint: 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfiguration(writeConfig(t, tt.content))
			if err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestLoadConfiguration_BreakpointsIgnoredWhenAllEnabled(t *testing.T) {
	path := writeConfig(t, `version: 1
responsive:
  tablet:
    breakpoint: 3000
`)

	if _, err := LoadConfiguration(path); err != nil {
		t.Errorf("LoadConfiguration() error = %v, breakpoints should not be checked when all devices are enabled", err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestOptionsFor(t *testing.T) {
	path := writeConfig(t, `version: 1
defaults:
  duration: 500
refs:
  hero:
    transition: spin
    custom_easing: [0.1, 0.2, 0.3, 0.4]
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	t.Run("override", func(t *testing.T) {
		opts, err := cfg.OptionsFor("hero")
		if err != nil {
			t.Fatalf("OptionsFor() error = %v", err)
		}
		if opts.Ref != "hero" {
			t.Errorf("Ref = %q, want hero", opts.Ref)
		}
		if opts.Transition != common.TransitionSpin {
			t.Errorf("Transition = %s, want spin", opts.Transition)
		}
		if opts.Duration != 500 {
			t.Errorf("Duration = %v, want 500 from defaults", opts.Duration)
		}
		if opts.CustomEasing[0] != 0.1 {
			t.Errorf("CustomEasing = %v", opts.CustomEasing)
		}
		// defaults must stay intact
		if cfg.Defaults.CustomEasing[0] != 0.25 {
			t.Errorf("Defaults were modified: %v", cfg.Defaults.CustomEasing)
		}
	})

	t.Run("unknown ref gets defaults", func(t *testing.T) {
		opts, err := cfg.OptionsFor("footer")
		if err != nil {
			t.Fatalf("OptionsFor() error = %v", err)
		}
		if opts.Ref != "footer" || opts.Transition != common.TransitionFly || opts.Duration != 500 {
			t.Errorf("OptionsFor() = %+v", opts)
		}
	})

	t.Run("bad override", func(t *testing.T) {
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte("duraton: 5000"), &doc); err != nil {
			t.Fatalf("yaml.Unmarshal() error = %v", err)
		}
		cfg.Refs["broken"] = *doc.Content[0]
		defer delete(cfg.Refs, "broken")

		_, err := cfg.OptionsFor("broken")
		if err == nil || !strings.Contains(err.Error(), "broken") {
			t.Errorf("OptionsFor() error = %v, want error mentioning ref", err)
		}
	})
}

func TestLoadConfiguration_InvalidRefs(t *testing.T) {
	tests := []struct {
		name    string
		refs    string
		wantMsg string
	}{
		{
			name:    "misspelled key",
			refs:    "  hero:\n    duraton: 5000\n",
			wantMsg: "duraton",
		},
		{
			name:    "out of range value",
			refs:    "  hero:\n    opacity: 7\n",
			wantMsg: "hero",
		},
		{
			name:    "unknown transition",
			refs:    "  hero:\n    transition: wobble\n",
			wantMsg: "hero",
		},
		{
			name:    "short custom easing",
			refs:    "  hero:\n    easing: custom\n    custom_easing: [0.1, 0.2]\n",
			wantMsg: "hero",
		},
		{
			name:    "one bad ref among good ones",
			refs:    "  card:\n    duration: 100\n  hero:\n    delay: -1\n",
			wantMsg: "hero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfiguration(writeConfig(t, "version: 1\nrefs:\n"+tt.refs))
			if err == nil {
				t.Fatal("Expected error for invalid ref options")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("LoadConfiguration() error = %v, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoadConfiguration_InvalidDefaultEasing(t *testing.T) {
	path := writeConfig(t, `version: 1
defaults:
  easing: custom
  custom_easing: [0.1]
`)

	_, err := LoadConfiguration(path)
	if !errors.Is(err, styling.ErrInvalidEasing) {
		t.Errorf("LoadConfiguration() error = %v, want %v", err, styling.ErrInvalidEasing)
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version:    1,
		Defaults:   styling.DefaultOptions(),
		Responsive: styling.DefaultResponsive(),
		Logging: LoggingConfig{
			ConsoleLogger: LoggerConfig{Level: "normal"},
			FileLogger:    LoggerConfig{Level: "none"},
		},
	}
	cfg.Defaults.Easing = common.EasingEaseInOutBack

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if !strings.Contains(string(data), "easing: easeInOutBack") {
		t.Errorf("Dump() should write easing by name:\n%s", data)
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
	if cfg2.Defaults.Easing != cfg.Defaults.Easing {
		t.Errorf("Easing mismatch after dump/load: got %s, want %s", cfg2.Defaults.Easing, cfg.Defaults.Easing)
	}
	if cfg2.Responsive != cfg.Responsive {
		t.Errorf("Responsive mismatch after dump/load: got %+v, want %+v", cfg2.Responsive, cfg.Responsive)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

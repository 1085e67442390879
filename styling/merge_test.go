package styling_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"reveal/common"
	"reveal/styling"
)

func TestExtractInnerRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain rules", "\n .a {\n opacity: 0;\n }\n", ".a { opacity: 0; }"},
		{"wrapped", "@media (max-width: 480px) { .a { opacity: 0; } .b { opacity: 1; } }", ".a { opacity: 0; } .b { opacity: 1; }"},
		{"never matching", "@media not all {\n\t.a { opacity: 0; }\n}", ".a { opacity: 0; }"},
		{"query without block", "@media (max-width: 480px)", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := styling.ExtractInnerRules(tt.input); got != tt.want {
				t.Errorf("ExtractInnerRules() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractInnerRules_RoundTrip(t *testing.T) {
	rules := "  opacity: 0;  transform: scale(0);\n filter: blur(16px);"
	configs := map[string]styling.Responsive{
		"all enabled":  responsive([4]bool{true, true, true, true}, stock),
		"all disabled": responsive([4]bool{}, stock),
		"partial":      responsive([4]bool{false, true, true, false}, stock),
	}
	for name, r := range configs {
		t.Run(name, func(t *testing.T) {
			wrapped, err := styling.AddMediaQueries(rules, r)
			if err != nil {
				t.Fatalf("AddMediaQueries() error = %v", err)
			}
			got := styling.Sanitize(styling.ExtractInnerRules(wrapped))
			if want := styling.Sanitize(rules); got != want {
				t.Errorf("round trip = %q, want %q", got, want)
			}
		})
	}
}

func TestMerger_Merge(t *testing.T) {
	m := styling.NewMerger(zaptest.NewLogger(t))
	r := responsive([4]bool{true, false, true, true}, stock)

	o := styling.DefaultOptions()
	o.Transition = common.TransitionFade
	main1, _ := styling.MainCSS("one", o)
	base1, _ := styling.TransitionCSS("base-one", o)

	first, err := m.Merge("", main1, base1, r)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	prefix := "@media (max-width: 480px), (min-width: 769px) { "
	if !strings.HasPrefix(first, prefix) || !strings.HasSuffix(first, " }") {
		t.Fatalf("unexpected wrapper: %q", first)
	}
	if inner := styling.ExtractInnerRules(first); inner != main1+" "+base1 {
		t.Errorf("inner rules = %q, want %q", inner, main1+" "+base1)
	}

	o.Transition = common.TransitionSpin
	main2, _ := styling.MainCSS("two", o)
	base2, _ := styling.TransitionCSS("base-two", o)

	second, err := m.Merge(first, main2, base2, r)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	want := prefix + main1 + " " + base1 + " " + main2 + " " + base2 + " }"
	if second != want {
		t.Errorf("Merge()\n got: %q\nwant: %q", second, want)
	}
	if strings.Count(second, "@media") != 1 {
		t.Errorf("expected a single media block: %q", second)
	}
}

func TestMerger_MergeAllEnabled(t *testing.T) {
	m := styling.NewMerger(nil)
	r := styling.DefaultResponsive()

	got, err := m.Merge("  .a { opacity: 0; }\n", ".b { opacity: 0; }", "\n.c { opacity: 1; }", r)
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if want := ".a { opacity: 0; } .b { opacity: 0; } .c { opacity: 1; }"; got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
}

func TestMerger_RewrapsWhenConfigurationChanges(t *testing.T) {
	m := styling.NewMerger(nil)

	disabled, err := m.Merge("", ".a { opacity: 0; }", "", responsive([4]bool{}, stock))
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if disabled != "@media not all { .a { opacity: 0; } }" {
		t.Fatalf("unexpected disabled output: %q", disabled)
	}

	got, err := m.Merge(disabled, ".b { opacity: 0; }", "", responsive([4]bool{true, true, true, true}, stock))
	if err != nil {
		t.Fatalf("Merge() error = %v", err)
	}
	if want := ".a { opacity: 0; } .b { opacity: 0; }"; got != want {
		t.Errorf("Merge() = %q, want %q", got, want)
	}
}

func TestMerger_MergeFailureReturnsNothing(t *testing.T) {
	m := styling.NewMerger(nil)
	r := responsive([4]bool{true, false, false, false}, [4]int{480, 0, 1024, 1440})

	got, err := m.Merge(".a { opacity: 0; }", ".b { opacity: 0; }", "", r)
	if !errors.Is(err, styling.ErrInvalidBreakpoint) {
		t.Fatalf("expected ErrInvalidBreakpoint, got %v", err)
	}
	if got != "" {
		t.Errorf("expected no output on failure, got %q", got)
	}
}

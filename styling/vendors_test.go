package styling_test

import (
	"testing"

	"reveal/styling"
)

func TestAddVendors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single declaration",
			input: "opacity: 0;",
			want:  "-webkit-opacity: 0; -ms-opacity: 0; opacity: 0;",
		},
		{
			name:  "two declarations keep order",
			input: "opacity: 0; transform: scale(0);",
			want:  "-webkit-opacity: 0; -ms-opacity: 0; opacity: 0; -webkit-transform: scale(0); -ms-transform: scale(0); transform: scale(0);",
		},
		{
			name:  "value with colon splits on the first one",
			input: "background: url(http://example.com/a.png)",
			want:  "-webkit-background: url(http://example.com/a.png); -ms-background: url(http://example.com/a.png); background: url(http://example.com/a.png);",
		},
		{
			name:  "nonsense is prefixed too",
			input: "foo: bar",
			want:  "-webkit-foo: bar; -ms-foo: bar; foo: bar;",
		},
		{
			name:  "empty",
			input: " ; ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := styling.AddVendors(tt.input); got != tt.want {
				t.Errorf("AddVendors(%q)\n got: %q\nwant: %q", tt.input, got, tt.want)
			}
		})
	}
}

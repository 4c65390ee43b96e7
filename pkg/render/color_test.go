package render

import (
	"testing"

	"github.com/matzehuels/chainviz/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FF5733", "#ff5733"},
		{"ff5733", "#ff5733"},
		{"#abc", "#aabbcc"},
		{"lightblue", "#add8e6"},
		{"LightBlue", "#add8e6"},
		{"xkcd:gray", "#929591"},
		{" white ", "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if got := c.Hex(); got != tt.want {
				t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#12345", "zzzzzz", "chartreuse-ish"} {
		if _, err := ParseColor(in); !errors.Is(err, errors.ErrCodeInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want INVALID_COLOR", in, err)
		}
	}
}

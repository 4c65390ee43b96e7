package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/chainviz/pkg/errors"
)

// namedColors covers the names the chain files and CLI flags use. Anything
// else must be given as hex.
var namedColors = map[string]string{
	"black":          "#000000",
	"white":          "#ffffff",
	"gray":           "#808080",
	"grey":           "#808080",
	"lightgray":      "#d3d3d3",
	"lightblue":      "#add8e6",
	"cornflowerblue": "#6495ed",
	"steelblue":      "#4682b4",
	"navy":           "#000080",
	"tomato":         "#ff6347",
	"orange":         "#ffa500",
	"seagreen":       "#2e8b57",
	"xkcd:gray":      "#929591",
	"xkcd:grey":      "#929591",
}

// ParseColor resolves a color name, "#rrggbb", "rrggbb" or "#rgb".
func ParseColor(s string) (colorful.Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[key]; ok {
		key = hex
	}
	if !strings.HasPrefix(key, "#") {
		key = "#" + key
	}
	if len(key) != 7 && len(key) != 4 {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "hex color must be 6 characters long, got %q", s)
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return colorful.Color{}, errors.Wrap(errors.ErrCodeInvalidColor, err, "invalid color %q", s)
	}
	return c, nil
}

// MustParseColor is ParseColor for package-level constants.
func MustParseColor(s string) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

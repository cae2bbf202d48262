package krinkle

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Scheme selects a palette generation strategy.
type Scheme int

const (
	// SchemeRainbow sweeps the hue circle at constant chroma and
	// lightness (HCL, perceptually even).
	SchemeRainbow Scheme = iota
	// SchemeWarm stays in the red-to-yellow range.
	SchemeWarm
	// SchemePastel produces light, low-saturation colours.
	SchemePastel
	// SchemeGray ramps from dark to light gray.
	SchemeGray
)

// ParseScheme maps a scheme name ("rainbow", "warm", "pastel", "gray")
// to a Scheme.
func ParseScheme(name string) (Scheme, error) {
	switch strings.ToLower(name) {
	case "rainbow":
		return SchemeRainbow, nil
	case "warm":
		return SchemeWarm, nil
	case "pastel":
		return SchemePastel, nil
	case "gray", "grey":
		return SchemeGray, nil
	}
	return 0, fmt.Errorf("krinkle: unknown palette scheme %q", name)
}

// Palette generates count fill colours for the given scheme. Output is
// deterministic: the same scheme and count always produce the same
// colours. A palette is cheap to build and is regenerated per call
// rather than cached.
func Palette(scheme Scheme, count int) []gg.RGBA {
	if count <= 0 {
		return nil
	}
	out := make([]gg.RGBA, count)
	for i := range out {
		t := float64(i) / float64(count)
		var c colorful.Color
		switch scheme {
		case SchemeWarm:
			c = colorful.Hcl(20+t*80, 0.6, 0.5+0.3*t)
		case SchemePastel:
			c = colorful.Hsv(t*360, 0.35, 0.95)
		case SchemeGray:
			v := 0.25 + 0.65*t
			c = colorful.Color{R: v, G: v, B: v}
		default: // SchemeRainbow
			c = colorful.Hcl(t*360, 0.5, 0.6)
		}
		c = c.Clamped()
		out[i] = gg.RGB(c.R, c.G, c.B)
	}
	return out
}

// HexPalette builds a palette from hex colour strings ("#rgb",
// "#rrggbb"). Invalid entries are reported, not skipped, so a caller
// can surface a configuration mistake.
func HexPalette(hexes ...string) ([]gg.RGBA, error) {
	out := make([]gg.RGBA, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("krinkle: bad palette colour %q: %w", h, err)
		}
		out = append(out, gg.RGB(c.R, c.G, c.B))
	}
	return out, nil
}

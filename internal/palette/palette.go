// Package palette derives three-color schemes by rotating the hue of a base
// color.
package palette

import (
	"fmt"

	"hueshift/internal/colorspace"
)

// Palette is a base color and two companions rotated by ±Spread degrees.
// All three share saturation and lightness.
type Palette struct {
	Primary   colorspace.HSL `json:"primary"`
	Secondary colorspace.HSL `json:"secondary"`
	Tertiary  colorspace.HSL `json:"tertiary"`
	Spread    float64        `json:"spread"`
}

// Swatch is the rendered projection of one palette member.
type Swatch struct {
	Role string         `json:"role"`
	Hex  string         `json:"hex"`
	CSS  string         `json:"css"`
	HSL  colorspace.HSL `json:"hsl"`
}

// ModHue rotates c's hue by angle degrees. The result is wrapped into
// [0, 360); saturation and lightness are unchanged.
func ModHue(c colorspace.HSL, angle float64) colorspace.HSL {
	return colorspace.HSL{
		H: colorspace.NormalizeHue(c.H + angle),
		S: c.S,
		L: c.L,
	}
}

// Derive builds the palette for base: secondary is base+spread, tertiary
// is base-spread.
func Derive(base colorspace.HSL, spread float64) Palette {
	return Palette{
		Primary:   base.Normalized(),
		Secondary: ModHue(base, spread),
		Tertiary:  ModHue(base, -spread),
		Spread:    spread,
	}
}

// Colors returns the members in display order.
func (p Palette) Colors() [3]colorspace.HSL {
	return [3]colorspace.HSL{p.Primary, p.Secondary, p.Tertiary}
}

// Roles names the display regions in the order of Colors.
var Roles = [3]string{"primary", "secondary", "tertiary"}

// Swatches renders each member to hex and CSS.
func (p Palette) Swatches() ([]Swatch, error) {
	colors := p.Colors()
	out := make([]Swatch, 0, len(colors))
	for i, c := range colors {
		hex, err := colorspace.HSLToHex(c.H, c.S, c.L)
		if err != nil {
			return nil, fmt.Errorf("render %s swatch: %w", Roles[i], err)
		}
		out = append(out, Swatch{
			Role: Roles[i],
			Hex:  hex,
			CSS:  c.CSS(),
			HSL:  c,
		})
	}
	return out, nil
}

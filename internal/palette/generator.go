package palette

import (
	"fmt"

	"hueshift/internal/colorspace"
)

// Ranges the randomized saturation and lightness are drawn from.
const (
	MinSaturation = 0.5
	MaxSaturation = 1.0
	MinLightness  = 0.5
	MaxLightness  = 0.8
)

// Params are the user's control selections for one generation.
type Params struct {
	Boldness Boldness `json:"boldness"`
	Warmth   Warmth   `json:"warmth"`
}

// Generator draws palettes from a random source. It is not safe for
// concurrent use.
type Generator struct {
	rng colorspace.Rand
}

// NewGenerator returns a Generator reading from rng.
func NewGenerator(rng colorspace.Rand) *Generator {
	return &Generator{rng: rng}
}

// Initial returns the first-load palette: a fully random base color with
// the default spread and no overrides.
func (g *Generator) Initial() (Palette, error) {
	base, err := g.randomBase()
	if err != nil {
		return Palette{}, err
	}
	return Derive(base, DefaultSpread), nil
}

// Generate returns a palette for the given selections. Saturation and
// lightness are always redrawn; hue is redrawn only when a warmth is set.
func (g *Generator) Generate(p Params) (Palette, error) {
	base, err := g.randomBase()
	if err != nil {
		return Palette{}, err
	}

	base.S = g.between(MinSaturation, MaxSaturation)
	base.L = g.between(MinLightness, MaxLightness)

	if lo, hi, ok := p.Warmth.HueRange(); ok {
		base.H = colorspace.NormalizeHue(g.between(lo, hi))
	}

	return Derive(base, p.Boldness.Spread()), nil
}

func (g *Generator) randomBase() (colorspace.HSL, error) {
	hex := colorspace.RandomHex(g.rng)
	base, err := colorspace.HexToHSL(hex)
	if err != nil {
		return colorspace.HSL{}, fmt.Errorf("decode random base %s: %w", hex, err)
	}
	return base, nil
}

func (g *Generator) between(min, max float64) float64 {
	return g.rng.Float64()*(max-min) + min
}

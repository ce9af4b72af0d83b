package colorspace

import (
	"fmt"
	"math"
	"strconv"
)

// HSL holds hue in degrees and saturation/lightness as fractions in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// NormalizeHue wraps any finite angle into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-15 + 360 rounds to 360 in float64
	if h >= 360 {
		h = 0
	}
	return h
}

// Validate reports ErrOutOfRange for non-finite components or for
// saturation/lightness outside [0, 1]. Hue may be any finite angle.
func (c HSL) Validate() error {
	if math.IsNaN(c.H) || math.IsInf(c.H, 0) {
		return fmt.Errorf("%w: hue %v is not finite", ErrOutOfRange, c.H)
	}
	if math.IsNaN(c.S) || c.S < 0 || c.S > 1 {
		return fmt.Errorf("%w: saturation %v not in [0,1]", ErrOutOfRange, c.S)
	}
	if math.IsNaN(c.L) || c.L < 0 || c.L > 1 {
		return fmt.Errorf("%w: lightness %v not in [0,1]", ErrOutOfRange, c.L)
	}
	return nil
}

// Normalized returns c with its hue wrapped into [0, 360).
func (c HSL) Normalized() HSL {
	c.H = NormalizeHue(c.H)
	return c
}

// CSS renders c as a CSS hsl() function, e.g. "hsl(120, 100%, 50%)".
func (c HSL) CSS() string {
	return fmt.Sprintf("hsl(%s, %s%%, %s%%)",
		formatFloat(NormalizeHue(c.H)),
		formatFloat(c.S*100),
		formatFloat(c.L*100))
}

// RGBToHSL converts 8-bit RGB to HSL. Gray input yields H=0, S=0.
func RGBToHSL(c RGB) (HSL, error) {
	if err := c.Validate(); err != nil {
		return HSL{}, err
	}

	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: l}, nil
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = 60 * math.Mod((g-b)/d, 6)
	case g:
		h = 60 * ((b-r)/d + 2)
	default:
		h = 60 * ((r-g)/d + 4)
	}

	return HSL{H: NormalizeHue(h), S: s, L: l}, nil
}

// HSLToRGB converts HSL to 8-bit RGB, rounding each channel.
func HSLToRGB(c HSL) (RGB, error) {
	if err := c.Validate(); err != nil {
		return RGB{}, err
	}

	var r, g, b float64
	if c.S == 0 {
		r, g, b = c.L, c.L, c.L
	} else {
		var q float64
		if c.L < 0.5 {
			q = c.L * (1 + c.S)
		} else {
			q = c.L + c.S - c.L*c.S
		}
		p := 2*c.L - q
		t := NormalizeHue(c.H) / 360

		r = hueToChannel(p, q, t+1.0/3)
		g = hueToChannel(p, q, t)
		b = hueToChannel(p, q, t-1.0/3)
	}

	return RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}, nil
}

// HSLToHex converts HSL to a lowercase "#rrggbb" string.
func HSLToHex(h, s, l float64) (string, error) {
	rgb, err := HSLToRGB(HSL{H: h, S: s, L: l})
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// hueToChannel evaluates the piecewise HSL channel function at t turns.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

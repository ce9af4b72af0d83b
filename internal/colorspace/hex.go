// Package colorspace converts colors between hex strings, RGB triples and
// HSL triples.
package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Rand is the source of uniform randomness the package consumes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// RGB holds 8-bit channels stored as ints so that out-of-range input can be
// reported instead of silently truncated.
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Validate reports ErrOutOfRange if any channel is outside [0, 255].
func (c RGB) Validate() error {
	for _, ch := range [...]struct {
		name string
		v    int
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}} {
		if ch.v < 0 || ch.v > 255 {
			return fmt.Errorf("%w: channel %s=%d not in [0,255]", ErrOutOfRange, ch.name, ch.v)
		}
	}
	return nil
}

// Hex encodes the color as a lowercase "#rrggbb" string. Channels are
// clamped, call Validate first when the input is untrusted.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampByte(c.R), clampByte(c.G), clampByte(c.B))
}

// RandomHex draws each of the six digits uniformly from 0-9A-F.
func RandomHex(r Rand) string {
	var b strings.Builder
	b.Grow(7)
	b.WriteByte('#')
	for i := 0; i < 6; i++ {
		b.WriteByte(hexDigits[r.Intn(len(hexDigits))])
	}
	return b.String()
}

// HexToRGB decodes "#rrggbb" (either case).
func HexToRGB(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q must be '#' followed by 6 hex digits", ErrInvalidFormat, hex)
	}

	digits := hex[1:]
	var channels [3]int
	for i := range channels {
		pair := digits[i*2 : i*2+2]
		v, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q has non-hex digits %q", ErrInvalidFormat, hex, pair)
		}
		channels[i] = int(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// HexToHSL is the hex → RGB → HSL pipeline.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb)
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

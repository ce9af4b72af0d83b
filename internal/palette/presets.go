package palette

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownBoldness = errors.New("unknown boldness")
	ErrUnknownWarmth   = errors.New("unknown warmth")
)

// DefaultSpread is the split-complementary angle used on first render.
const DefaultSpread = 165.0

// Boldness selects the hue spread between the base color and its companions.
type Boldness string

const (
	// BoldnessNone means no preset was selected; it yields a zero spread.
	BoldnessNone     Boldness = ""
	BoldnessReserved Boldness = "reserved" // analogous
	BoldnessBalanced Boldness = "balanced" // split-complementary
	BoldnessBold     Boldness = "bold"     // triadic
)

// Spread returns the preset's hue rotation in degrees.
func (b Boldness) Spread() float64 {
	switch b {
	case BoldnessReserved:
		return 30
	case BoldnessBalanced:
		return DefaultSpread
	case BoldnessBold:
		return 120
	}
	return 0
}

// Scheme returns the color-theory name of the preset.
func (b Boldness) Scheme() string {
	switch b {
	case BoldnessReserved:
		return "analogous"
	case BoldnessBalanced:
		return "split-complementary"
	case BoldnessBold:
		return "triadic"
	}
	return "monochrome"
}

// ParseBoldness accepts a preset name, case-insensitively. The empty
// string maps to BoldnessNone.
func ParseBoldness(s string) (Boldness, error) {
	b := Boldness(strings.ToLower(strings.TrimSpace(s)))
	switch b {
	case BoldnessNone, BoldnessReserved, BoldnessBalanced, BoldnessBold:
		return b, nil
	}
	return BoldnessNone, fmt.Errorf("%w: %q (want reserved, balanced or bold)", ErrUnknownBoldness, s)
}

// Warmth optionally constrains the base hue.
type Warmth string

const (
	WarmthNone Warmth = ""
	WarmthCool Warmth = "cool"
	WarmthWarm Warmth = "warm"
)

// HueRange returns the [min, max) degrees the base hue is drawn from.
// ok is false for WarmthNone. The warm range straddles 0 and is
// normalized after drawing.
func (w Warmth) HueRange() (min, max float64, ok bool) {
	switch w {
	case WarmthCool:
		return 90, 270, true
	case WarmthWarm:
		return -90, 45, true
	}
	return 0, 0, false
}

// ParseWarmth accepts "cool" or "warm", case-insensitively. The empty
// string maps to WarmthNone.
func ParseWarmth(s string) (Warmth, error) {
	w := Warmth(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case WarmthNone, WarmthCool, WarmthWarm:
		return w, nil
	}
	return WarmthNone, fmt.Errorf("%w: %q (want cool or warm)", ErrUnknownWarmth, s)
}

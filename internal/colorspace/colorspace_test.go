package colorspace

import (
	"math"
	"math/rand"
	"regexp"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	return math.Min(d, 360-d)
}

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		hex  string
		want RGB
	}{
		{"#FF0000", RGB{255, 0, 0}},
		{"#00ff00", RGB{0, 255, 0}},
		{"#0000Ff", RGB{0, 0, 255}},
		{"#000000", RGB{0, 0, 0}},
		{"#1a2B3c", RGB{26, 43, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got, err := HexToRGB(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGBInvalidFormat(t *testing.T) {
	for _, in := range []string{"", "#", "FF0000", "#FF000", "#FF00000", "#GG0000", "#FF 000", "#+F0000", "#ff00_0", "ff0000#"} {
		t.Run(in, func(t *testing.T) {
			_, err := HexToRGB(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestHexToRGBNoCrossCallState(t *testing.T) {
	first, err := HexToRGB("#102030")
	require.NoError(t, err)

	_, err = HexToRGB("#zz0000")
	require.Error(t, err)

	again, err := HexToRGB("#102030")
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestRGBHexRoundTrip(t *testing.T) {
	for r := 0; r <= 255; r += 15 {
		for g := 0; g <= 255; g += 17 {
			for b := 0; b <= 255; b += 5 {
				in := RGB{r, g, b}
				out, err := HexToRGB(in.Hex())
				require.NoError(t, err)
				require.Equal(t, in, out)
			}
		}
	}
}

func TestRGBToHSLConcrete(t *testing.T) {
	got, err := RGBToHSL(RGB{255, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 0, S: 1, L: 0.5}, got)

	got, err = RGBToHSL(RGB{0, 0, 255})
	require.NoError(t, err)
	assert.InDelta(t, 240, got.H, 1e-9)

	// max=R with g<b exercises the mod 6 branch
	got, err = RGBToHSL(RGB{255, 0, 128})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.H, 0.0)
	assert.InDelta(t, 329.88, got.H, 0.01)
}

func TestRGBToHSLAchromatic(t *testing.T) {
	for v := 0; v <= 255; v++ {
		got, err := RGBToHSL(RGB{v, v, v})
		require.NoError(t, err)
		assert.Zero(t, got.S)
		assert.Zero(t, got.H)
		assert.InDelta(t, float64(v)/255, got.L, 1e-12)
	}
}

func TestRGBToHSLOutOfRange(t *testing.T) {
	for _, in := range []RGB{{-1, 0, 0}, {0, 256, 0}, {0, 0, 1000}} {
		_, err := RGBToHSL(in)
		assert.ErrorIs(t, err, ErrOutOfRange)
	}
}

func TestRGBToHSLMatchesColorful(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 15 {
			for b := 0; b <= 255; b += 51 {
				got, err := RGBToHSL(RGB{r, g, b})
				require.NoError(t, err)

				ref := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
				h, s, l := ref.Hsl()
				assert.InDelta(t, 0, hueDistance(h, got.H), 1e-9, "hue for %v", RGB{r, g, b})
				assert.InDelta(t, s, got.S, 1e-9, "saturation for %v", RGB{r, g, b})
				assert.InDelta(t, l, got.L, 1e-9, "lightness for %v", RGB{r, g, b})
			}
		}
	}
}

func TestHSLToHexConcrete(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    string
	}{
		{0, 1, 0.5, "#ff0000"},
		{120, 1, 0.5, "#00ff00"},
		{240, 1, 0.5, "#0000ff"},
		{0, 0, 0, "#000000"},
		{0, 0, 1, "#ffffff"},
		{200, 0, 0.5, "#808080"},
	}
	for _, tt := range tests {
		got, err := HSLToHex(tt.h, tt.s, tt.l)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestHSLToHexWrapsHue(t *testing.T) {
	base, err := HSLToHex(240, 0.8, 0.6)
	require.NoError(t, err)

	for _, h := range []float64{-120, 600, -480, 240 + 360*5} {
		got, err := HSLToHex(h, 0.8, 0.6)
		require.NoError(t, err)
		assert.Equal(t, base, got, "hue %v", h)
	}
}

func TestHSLToHexOutOfRange(t *testing.T) {
	tests := []HSL{
		{H: 0, S: -0.1, L: 0.5},
		{H: 0, S: 1.1, L: 0.5},
		{H: 0, S: 0.5, L: -0.01},
		{H: 0, S: 0.5, L: 1.5},
		{H: math.NaN(), S: 0.5, L: 0.5},
		{H: math.Inf(1), S: 0.5, L: 0.5},
		{H: 0, S: math.NaN(), L: 0.5},
	}
	for _, c := range tests {
		_, err := HSLToHex(c.H, c.S, c.L)
		assert.ErrorIs(t, err, ErrOutOfRange, "%+v", c)
	}
}

func TestHSLToRGBMatchesColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 13 {
		for _, s := range []float64{0.1, 0.5, 0.9, 1} {
			for _, l := range []float64{0.1, 0.4, 0.5, 0.75} {
				got, err := HSLToRGB(HSL{H: h, S: s, L: l})
				require.NoError(t, err)

				r, g, b := colorful.Hsl(h, s, l).RGB255()
				assert.InDelta(t, int(r), got.R, 1, "r for hsl(%v,%v,%v)", h, s, l)
				assert.InDelta(t, int(g), got.G, 1, "g for hsl(%v,%v,%v)", h, s, l)
				assert.InDelta(t, int(b), got.B, 1, "b for hsl(%v,%v,%v)", h, s, l)
			}
		}
	}
}

func TestHSLHexRoundTrip(t *testing.T) {
	const delta = 0.5 / 255

	for h := 0.0; h < 360; h += 7 {
		for _, s := range []float64{0.5, 0.75, 1} {
			for _, l := range []float64{0.35, 0.5, 0.65} {
				hex, err := HSLToHex(h, s, l)
				require.NoError(t, err)

				back, err := HexToHSL(hex)
				require.NoError(t, err)

				assert.LessOrEqual(t, hueDistance(h, back.H), 1.5, "hue for hsl(%v,%v,%v) via %s", h, s, l, hex)
				assert.InDelta(t, s, back.S, delta/math.Min(l, 1-l)+1e-9, "saturation for hsl(%v,%v,%v)", h, s, l)
				assert.InDelta(t, l, back.L, delta+1e-9, "lightness for hsl(%v,%v,%v)", h, s, l)
			}
		}
	}
}

func TestRedPipeline(t *testing.T) {
	rgb, err := HexToRGB("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 0, B: 0}, rgb)

	hsl, err := RGBToHSL(rgb)
	require.NoError(t, err)
	assert.Equal(t, HSL{H: 0, S: 1, L: 0.5}, hsl)

	hex, err := HSLToHex(hsl.H, hsl.S, hsl.L)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", hex)
}

func TestRandomHex(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	r := rand.New(rand.NewSource(42))

	seen := make(map[byte]bool)
	for i := 0; i < 2000; i++ {
		hex := RandomHex(r)
		require.Len(t, hex, 7)
		require.Regexp(t, pattern, hex)
		for j := 1; j < len(hex); j++ {
			seen[hex[j]] = true
		}
	}
	assert.Len(t, seen, 16, "every digit should eventually be drawn")
}

func TestNormalizeHue(t *testing.T) {
	tests := map[float64]float64{
		0:      0,
		360:    0,
		-90:    270,
		-120:   240,
		725:    5,
		-720:   0,
		359.5:  359.5,
		-1e-15: 0,
	}
	for in, want := range tests {
		got := NormalizeHue(in)
		assert.InDelta(t, want, got, 1e-9, "NormalizeHue(%v)", in)
		assert.True(t, got >= 0 && got < 360, "NormalizeHue(%v)=%v", in, got)
	}
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "hsl(0, 100%, 50%)", HSL{H: 0, S: 1, L: 0.5}.CSS())
	assert.Equal(t, "hsl(240, 62.5%, 66.67%)", HSL{H: -120, S: 0.625, L: 2.0 / 3}.CSS())
}

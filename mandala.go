package mandala

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGB color with components in [0, 1].
// Opacity is carried separately by Config.Opacity and applied at draw time.
type Color struct {
	R, G, B float64
}

// ColorWhite is the default stroke color.
var ColorWhite = Color{1, 1, 1}

// RGB8 builds a Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// ParseHexColor parses "#rrggbb", "rrggbb" or the short "#rgb" form.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("mandala: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("mandala: invalid hex color %q: %w", s, err)
	}
	return RGB8(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MustParseHexColor is like ParseHexColor but panics on malformed input.
// Intended for static tables.
func MustParseHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color formatted as "#rrggbb".
func (c Color) Hex() string {
	r, g, b := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// NRGBA returns the color with the given straight alpha in [0, 1].
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(alpha) * 255))}
}

// RGBA returns the fully opaque color.
func (c Color) RGBA() color.RGBA {
	r, g, b := c.bytes()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func (c Color) bytes() (uint8, uint8, uint8) {
	return uint8(math.Round(clamp01(c.R) * 255)),
		uint8(math.Round(clamp01(c.G) * 255)),
		uint8(math.Round(clamp01(c.B) * 255))
}

// MarshalText encodes the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText decodes a hex color string.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHexColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Vec2 is a 2D point or offset in canvas pixels.
type Vec2 struct {
	X, Y float64
}

// Range is a closed [Min, Max] interval used for animation bounds.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Mid returns the center of the range.
func (r Range) Mid() float64 { return (r.Min + r.Max) / 2 }

// Amplitude returns half the width of the range.
func (r Range) Amplitude() float64 { return (r.Max - r.Min) / 2 }

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// ColorMode selects one of the static palettes.
type ColorMode string

const (
	ColorModeMonochrome    ColorMode = "monochrome"
	ColorModeRainbow       ColorMode = "rainbow"
	ColorModeComplementary ColorMode = "complementary"
	ColorModeEarth         ColorMode = "earth"
	ColorModeOcean         ColorMode = "ocean"
)

// ColorModes lists every known color mode in menu order.
var ColorModes = []ColorMode{
	ColorModeMonochrome,
	ColorModeRainbow,
	ColorModeComplementary,
	ColorModeEarth,
	ColorModeOcean,
}

// Index returns the position of the mode in ColorModes, or 0 (monochrome)
// for an unknown mode. Shader plugins pass this as a uniform.
func (m ColorMode) Index() int {
	for i, mode := range ColorModes {
		if mode == m {
			return i
		}
	}
	return 0
}

// Valid reports whether m is one of the known color modes.
func (m ColorMode) Valid() bool {
	for _, mode := range ColorModes {
		if mode == m {
			return true
		}
	}
	return false
}

// Param identifies one of the parameters that can be driven by an oscillator.
type Param uint8

const (
	ParamSymmetry   Param = iota // integral, rounded after sampling
	ParamLineWidth               // stroke width in pixels
	ParamOpacity                 // stroke alpha
	ParamComplexity              // pattern detail in [0, 1]

	NumParams = 4
)

// Params lists every animatable parameter in evaluation order.
var Params = [NumParams]Param{ParamSymmetry, ParamLineWidth, ParamOpacity, ParamComplexity}

var paramNames = [NumParams]string{"symmetry", "lineWidth", "opacity", "complexity"}

// String returns the configuration field name of the parameter.
func (p Param) String() string {
	if int(p) < NumParams {
		return paramNames[p]
	}
	return "Param(" + strconv.Itoa(int(p)) + ")"
}

// Integral reports whether sampled values must be rounded to whole numbers.
func (p Param) Integral() bool {
	return p == ParamSymmetry
}

// ParseParam maps a configuration field name to its Param.
func ParseParam(name string) (Param, bool) {
	for i, n := range paramNames {
		if n == name {
			return Param(i), true
		}
	}
	return 0, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

package mandala

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

var (
	// ErrUnknownField is returned by Get and Set for a name that is not a
	// configuration field.
	ErrUnknownField = errors.New("mandala: unknown config field")
	// ErrFieldType is returned by Set when the value cannot be coerced to the
	// field's type.
	ErrFieldType = errors.New("mandala: wrong value type for config field")
)

// Limits applied by Sanitized. The store itself never validates.
const (
	MinSymmetry  = 2
	MaxSymmetry  = 128
	MinLayers    = 1
	MaxLayers    = 8
	MinLineWidth = 0.1
	MaxLineWidth = 50
)

// Animation holds the parameter-animation settings. Arrays are indexed by
// Param so a Config copy is a complete, independent snapshot.
type Animation struct {
	Enabled bool               // master switch ("parameterAnimation")
	Speed   float64            // global multiplier ("animationSpeed")
	Params  [NumParams]bool    // per-parameter enable flags
	Ranges  [NumParams]Range   // per-parameter [min, max]
	Speeds  [NumParams]float64 // per-parameter relative speed
}

// Config is the mutable parameter set read by every plugin. It contains only
// value types; copying a Config produces a snapshot.
type Config struct {
	// Structural
	Symmetry   int
	Layers     int
	Complexity float64
	LineWidth  float64
	Opacity    float64

	// Visual
	Color           Color
	BackgroundColor Color
	ColorMode       ColorMode
	UseGradient     bool

	// Temporal and behavioral
	AutoRotate    bool
	RotationSpeed float64
	PulseEffect   bool
	Animate       bool
	Algorithm     string
	RandomSeed    float64

	Animation Animation
}

// DefaultConfig returns the startup configuration.
func DefaultConfig() Config {
	return Config{
		Symmetry:        32,
		Layers:          3,
		Complexity:      0.5,
		LineWidth:       2,
		Opacity:         0.7,
		Color:           ColorWhite,
		BackgroundColor: MustParseHexColor("#121212"),
		ColorMode:       ColorModeRainbow,
		UseGradient:     true,
		AutoRotate:      true,
		RotationSpeed:   0.001,
		PulseEffect:     true,
		Animate:         true,
		Algorithm:       "shader",
		RandomSeed:      rand.Float64() * 1000,
		Animation: Animation{
			Enabled: true,
			Speed:   0.001,
			Params:  [NumParams]bool{ParamComplexity: true},
			Ranges: [NumParams]Range{
				ParamSymmetry:   {Min: 4, Max: 16},
				ParamLineWidth:  {Min: 0.5, Max: 3},
				ParamOpacity:    {Min: 0.3, Max: 1},
				ParamComplexity: {Min: 0.2, Max: 0.8},
			},
			Speeds: [NumParams]float64{
				ParamSymmetry:   1.0,
				ParamLineWidth:  0.7,
				ParamOpacity:    1.3,
				ParamComplexity: 1.0,
			},
		},
	}
}

// Reseed assigns a new pseudo-random seed in [0, 1000). A nil rng uses the
// global source.
func (c *Config) Reseed(rng *rand.Rand) {
	if rng == nil {
		c.RandomSeed = rand.Float64() * 1000
		return
	}
	c.RandomSeed = rng.Float64() * 1000
}

// ParamValue returns the current value of an animatable parameter.
func (c *Config) ParamValue(p Param) float64 {
	switch p {
	case ParamSymmetry:
		return float64(c.Symmetry)
	case ParamLineWidth:
		return c.LineWidth
	case ParamOpacity:
		return c.Opacity
	case ParamComplexity:
		return c.Complexity
	}
	return 0
}

// SetParamValue stores v into an animatable parameter. Integral parameters
// are rounded.
func (c *Config) SetParamValue(p Param, v float64) {
	switch p {
	case ParamSymmetry:
		c.Symmetry = int(math.Round(v))
	case ParamLineWidth:
		c.LineWidth = v
	case ParamOpacity:
		c.Opacity = v
	case ParamComplexity:
		c.Complexity = v
	}
}

// Sanitized returns a copy with every structural value forced into a
// drawable range. Non-finite numbers fall back to DefaultConfig values.
// Plugins call this before drawing; the store itself accepts anything.
func (c Config) Sanitized() Config {
	def := DefaultConfig()
	out := c

	out.Symmetry = clampInt(out.Symmetry, MinSymmetry, MaxSymmetry)
	out.Layers = clampInt(out.Layers, MinLayers, MaxLayers)

	if !finite(out.Complexity) {
		out.Complexity = def.Complexity
	}
	out.Complexity = clamp01(out.Complexity)

	if !finite(out.LineWidth) {
		out.LineWidth = def.LineWidth
	}
	out.LineWidth = math.Min(math.Max(out.LineWidth, MinLineWidth), MaxLineWidth)

	if !finite(out.Opacity) {
		out.Opacity = def.Opacity
	}
	out.Opacity = clamp01(out.Opacity)

	if !finite(out.RotationSpeed) {
		out.RotationSpeed = 0
	}
	if !finite(out.RandomSeed) {
		out.RandomSeed = 0
	}
	if !out.ColorMode.Valid() {
		out.ColorMode = ColorModeMonochrome
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Named field access ---

type configField struct {
	get func(*Config) any
	set func(*Config, any) error
}

var configFields = map[string]configField{
	"symmetry":           intField(func(c *Config) *int { return &c.Symmetry }),
	"layers":             intField(func(c *Config) *int { return &c.Layers }),
	"complexity":         floatField(func(c *Config) *float64 { return &c.Complexity }),
	"lineWidth":          floatField(func(c *Config) *float64 { return &c.LineWidth }),
	"opacity":            floatField(func(c *Config) *float64 { return &c.Opacity }),
	"color":              colorField(func(c *Config) *Color { return &c.Color }),
	"backgroundColor":    colorField(func(c *Config) *Color { return &c.BackgroundColor }),
	"useGradient":        boolField(func(c *Config) *bool { return &c.UseGradient }),
	"autoRotate":         boolField(func(c *Config) *bool { return &c.AutoRotate }),
	"rotationSpeed":      floatField(func(c *Config) *float64 { return &c.RotationSpeed }),
	"pulseEffect":        boolField(func(c *Config) *bool { return &c.PulseEffect }),
	"animate":            boolField(func(c *Config) *bool { return &c.Animate }),
	"randomSeed":         floatField(func(c *Config) *float64 { return &c.RandomSeed }),
	"parameterAnimation": boolField(func(c *Config) *bool { return &c.Animation.Enabled }),
	"animationSpeed":     floatField(func(c *Config) *float64 { return &c.Animation.Speed }),
	"algorithm": {
		get: func(c *Config) any { return c.Algorithm },
		set: func(c *Config, v any) error {
			s, ok := v.(string)
			if !ok {
				return ErrFieldType
			}
			c.Algorithm = s
			return nil
		},
	},
	"colorMode": {
		get: func(c *Config) any { return c.ColorMode },
		set: func(c *Config, v any) error {
			switch m := v.(type) {
			case ColorMode:
				c.ColorMode = m
			case string:
				c.ColorMode = ColorMode(m)
			default:
				return ErrFieldType
			}
			return nil
		},
	},
}

func init() {
	for _, p := range Params {
		p := p
		configFields["animationParameters."+p.String()] =
			boolField(func(c *Config) *bool { return &c.Animation.Params[p] })
		configFields["animationSpeeds."+p.String()] =
			floatField(func(c *Config) *float64 { return &c.Animation.Speeds[p] })
		configFields["animationRanges."+p.String()+".min"] =
			floatField(func(c *Config) *float64 { return &c.Animation.Ranges[p].Min })
		configFields["animationRanges."+p.String()+".max"] =
			floatField(func(c *Config) *float64 { return &c.Animation.Ranges[p].Max })
	}
}

// FieldNames returns every name accepted by Get and Set, sorted.
func FieldNames() []string {
	names := make([]string, 0, len(configFields))
	for name := range configFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the value of the named field.
func (c *Config) Get(name string) (any, error) {
	f, ok := configFields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f.get(c), nil
}

// Set assigns the named field. Numeric values are coerced between int and
// float kinds; colors accept a Color or a hex string. Out-of-range values are
// stored as given.
func (c *Config) Set(name string, value any) error {
	f, ok := configFields[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	if err := f.set(c, value); err != nil {
		return fmt.Errorf("%w: %q got %T", err, name, value)
	}
	return nil
}

func intField(ptr func(*Config) *int) configField {
	return configField{
		get: func(c *Config) any { return *ptr(c) },
		set: func(c *Config, v any) error {
			f, ok := toFloat(v)
			if !ok {
				return ErrFieldType
			}
			*ptr(c) = int(math.Round(f))
			return nil
		},
	}
}

func floatField(ptr func(*Config) *float64) configField {
	return configField{
		get: func(c *Config) any { return *ptr(c) },
		set: func(c *Config, v any) error {
			f, ok := toFloat(v)
			if !ok {
				return ErrFieldType
			}
			*ptr(c) = f
			return nil
		},
	}
}

func boolField(ptr func(*Config) *bool) configField {
	return configField{
		get: func(c *Config) any { return *ptr(c) },
		set: func(c *Config, v any) error {
			b, ok := v.(bool)
			if !ok {
				return ErrFieldType
			}
			*ptr(c) = b
			return nil
		},
	}
}

func colorField(ptr func(*Config) *Color) configField {
	return configField{
		get: func(c *Config) any { return *ptr(c) },
		set: func(c *Config, v any) error {
			switch col := v.(type) {
			case Color:
				*ptr(c) = col
			case string:
				parsed, err := ParseHexColor(col)
				if err != nil {
					return err
				}
				*ptr(c) = parsed
			default:
				return ErrFieldType
			}
			return nil
		},
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint32:
		return float64(n), true
	}
	return 0, false
}

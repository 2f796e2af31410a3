package mandala

import (
	"errors"
	"math"
	"math/rand/v2"
	"sort"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Symmetry != 32 || c.Layers != 3 || c.Algorithm != "shader" {
		t.Errorf("structural defaults = %d, %d, %q", c.Symmetry, c.Layers, c.Algorithm)
	}
	if c.BackgroundColor.Hex() != "#121212" || c.ColorMode != ColorModeRainbow {
		t.Errorf("visual defaults = %s, %s", c.BackgroundColor.Hex(), c.ColorMode)
	}
	if c.RandomSeed < 0 || c.RandomSeed >= 1000 {
		t.Errorf("RandomSeed = %v, want [0, 1000)", c.RandomSeed)
	}
	a := c.Animation
	if !a.Enabled || !a.Params[ParamComplexity] || a.Params[ParamSymmetry] {
		t.Errorf("animation flags = %+v", a)
	}
	if a.Ranges[ParamSymmetry] != (Range{Min: 4, Max: 16}) || a.Speeds[ParamOpacity] != 1.3 {
		t.Errorf("animation tables = %+v", a)
	}
}

func TestConfigCopyIsSnapshot(t *testing.T) {
	c := DefaultConfig()
	snap := c
	c.Animation.Params[ParamSymmetry] = true
	c.Animation.Ranges[ParamOpacity].Max = 0.5
	if snap.Animation.Params[ParamSymmetry] || snap.Animation.Ranges[ParamOpacity].Max != 1 {
		t.Error("copy shares animation state with the original")
	}
}

func TestConfigSetCoercion(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value any
		want  any
	}{
		{"float to int", "symmetry", 11.6, 12},
		{"int to float", "lineWidth", 3, 3.0},
		{"float32", "opacity", float32(0.5), 0.5},
		{"hex color", "color", "#ff0000", MustParseHexColor("#ff0000")},
		{"color mode string", "colorMode", "earth", ColorModeEarth},
		{"nested bool", "animationParameters.symmetry", true, true},
		{"nested range", "animationRanges.opacity.max", 0.9, 0.9},
		{"nested speed", "animationSpeeds.lineWidth", 2, 2.0},
		{"unregistered algorithm", "algorithm", "nope", "nope"},
		{"out of range stored", "symmetry", -5, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			if err := c.Set(tt.field, tt.value); err != nil {
				t.Fatalf("Set(%q, %v): %v", tt.field, tt.value, err)
			}
			got, err := c.Get(tt.field)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %v (%T), want %v (%T)", tt.field, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestConfigSetErrors(t *testing.T) {
	c := DefaultConfig()
	before := c

	if err := c.Set("hue", 1); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Set(hue) = %v, want ErrUnknownField", err)
	}
	if _, err := c.Get("hue"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("Get(hue) = %v, want ErrUnknownField", err)
	}
	if err := c.Set("symmetry", "many"); !errors.Is(err, ErrFieldType) {
		t.Errorf("Set(symmetry, string) = %v, want ErrFieldType", err)
	}
	if err := c.Set("autoRotate", 1); !errors.Is(err, ErrFieldType) {
		t.Errorf("Set(autoRotate, int) = %v, want ErrFieldType", err)
	}
	if err := c.Set("color", "not-a-color"); err == nil {
		t.Error("Set(color, bad hex) should fail")
	}
	if c != before {
		t.Error("failed Set modified the config")
	}
}

func TestSanitized(t *testing.T) {
	c := DefaultConfig()
	c.Symmetry = 0
	c.Layers = 99
	c.Complexity = math.NaN()
	c.LineWidth = -1
	c.Opacity = 4
	c.RotationSpeed = math.Inf(1)
	c.ColorMode = "neon"

	s := c.Sanitized()
	if s.Symmetry != MinSymmetry || s.Layers != MaxLayers {
		t.Errorf("symmetry, layers = %d, %d", s.Symmetry, s.Layers)
	}
	if s.Complexity != 0.5 || s.LineWidth != MinLineWidth || s.Opacity != 1 {
		t.Errorf("complexity, lineWidth, opacity = %v, %v, %v", s.Complexity, s.LineWidth, s.Opacity)
	}
	if s.RotationSpeed != 0 || s.ColorMode != ColorModeMonochrome {
		t.Errorf("rotationSpeed, colorMode = %v, %s", s.RotationSpeed, s.ColorMode)
	}
	if c.Symmetry != 0 {
		t.Error("Sanitized modified the receiver")
	}
}

func TestFieldNames(t *testing.T) {
	names := FieldNames()
	if !sort.StringsAreSorted(names) {
		t.Error("FieldNames not sorted")
	}
	// 17 top-level fields plus 4 nested entries for each parameter.
	if want := 17 + 4*NumParams; len(names) != want {
		t.Errorf("len = %d, want %d", len(names), want)
	}
	c := DefaultConfig()
	for _, n := range names {
		if _, err := c.Get(n); err != nil {
			t.Errorf("Get(%q): %v", n, err)
		}
	}
}

func TestReseedDeterministic(t *testing.T) {
	a, b := DefaultConfig(), DefaultConfig()
	a.Reseed(rand.New(rand.NewPCG(1, 2)))
	b.Reseed(rand.New(rand.NewPCG(1, 2)))
	if a.RandomSeed != b.RandomSeed {
		t.Errorf("seeds differ: %v vs %v", a.RandomSeed, b.RandomSeed)
	}
	if a.RandomSeed < 0 || a.RandomSeed >= 1000 {
		t.Errorf("RandomSeed = %v, want [0, 1000)", a.RandomSeed)
	}
}

func TestParamValueRoundTrip(t *testing.T) {
	c := DefaultConfig()
	c.SetParamValue(ParamSymmetry, 7.4)
	c.SetParamValue(ParamLineWidth, 1.25)
	if c.ParamValue(ParamSymmetry) != 7 || c.ParamValue(ParamLineWidth) != 1.25 {
		t.Errorf("ParamValue = %v, %v", c.ParamValue(ParamSymmetry), c.ParamValue(ParamLineWidth))
	}
}

package algorithms

import (
	"math"
	"testing"

	"github.com/phanxgames/mandala"
)

func TestRegisterOrder(t *testing.T) {
	want := []mandala.AlgorithmInfo{
		{ID: "simple", Name: "Simple Algorithm"},
		{ID: "geometric", Name: "Geometric Algorithm"},
		{ID: "flower", Name: "Flower Algorithm"},
		{ID: "shader", Name: "Shader Algorithm"},
		{ID: "fractal", Name: "Fractal Mandala"},
	}
	got := NewRegistry().List()
	if len(got) != len(want) {
		t.Fatalf("List = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, got[i], want[i])
		}
	}
	for i, id := range mandala.AlgorithmKeys {
		if got[i].ID != id {
			t.Errorf("digit %d selects %q, registry has %q", i+1, id, got[i].ID)
		}
	}
}

func TestPulseScale(t *testing.T) {
	cfg := mandala.DefaultConfig()
	cfg.PulseEffect = false
	if got := pulseScale(&cfg, 1.2, 3, 0.1); got != 1 {
		t.Errorf("pulse off = %v, want 1", got)
	}
	cfg.PulseEffect = true
	want := 1 + 0.1*math.Sin(1.2+1.5)
	if got := pulseScale(&cfg, 1.2, 3, 0.1); math.Abs(got-want) > epsilon {
		t.Errorf("pulse on = %v, want %v", got, want)
	}
}

func TestSetUniforms(t *testing.T) {
	cfg := mandala.DefaultConfig()
	cfg.Symmetry = 12
	cfg.Complexity = 0.25
	cfg.PulseEffect = false
	cfg.ColorMode = mandala.ColorModeOcean
	fc := &mandala.FrameContext{Config: cfg, Angle: 0.5}

	u := map[string]any{}
	setUniforms(u, fc, 1.5, 640, 480)

	floats := map[string]float32{
		"Time":       1.5,
		"Rotation":   0.5,
		"Symmetry":   12,
		"Complexity": 0.25,
		"Pulse":      0,
		"ColorMode":  4,
	}
	for name, want := range floats {
		got, ok := u[name].(float32)
		if !ok || got != want {
			t.Errorf("%s = %v, want %v", name, u[name], want)
		}
	}
	res, ok := u["Resolution"].([]float32)
	if !ok || len(res) != 2 || res[0] != 640 || res[1] != 480 {
		t.Errorf("Resolution = %v, want [640 480]", u["Resolution"])
	}
}

func TestSetUniformsSanitizes(t *testing.T) {
	cfg := mandala.DefaultConfig()
	cfg.Symmetry = 1000
	cfg.Complexity = math.NaN()
	cfg.PulseEffect = true
	cfg.ColorMode = "neon"
	u := map[string]any{}
	setUniforms(u, &mandala.FrameContext{Config: cfg}, 0, 1, 1)

	if u["Symmetry"] != float32(mandala.MaxSymmetry) {
		t.Errorf("Symmetry = %v, want %d", u["Symmetry"], mandala.MaxSymmetry)
	}
	if u["Complexity"] != float32(0.5) {
		t.Errorf("Complexity = %v, want 0.5", u["Complexity"])
	}
	if u["Pulse"] != float32(1) || u["ColorMode"] != float32(0) {
		t.Errorf("Pulse, ColorMode = %v, %v", u["Pulse"], u["ColorMode"])
	}
}

func TestShaderStartsAtZero(t *testing.T) {
	a := NewFractal()
	if a.Time() != 0 {
		t.Errorf("initial time = %v, want 0", a.Time())
	}
}

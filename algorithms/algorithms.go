// Package algorithms provides the built-in mandala rendering plugins: three
// vector algorithms stroked with ebiten's vector package and two Kage
// shader algorithms.
package algorithms

import (
	"math"

	"github.com/phanxgames/mandala"
)

// Register adds every built-in algorithm to reg in menu order: simple,
// geometric, flower, shader, fractal.
func Register(reg *mandala.Registry) {
	reg.Register("simple", "Simple Algorithm", &Simple{})
	reg.Register("geometric", "Geometric Algorithm", &Geometric{})
	reg.Register("flower", "Flower Algorithm", &Flower{})
	reg.Register("shader", "Shader Algorithm", NewShader())
	reg.Register("fractal", "Fractal Mandala", NewFractal())
}

// NewRegistry returns a registry holding every built-in algorithm.
func NewRegistry() *mandala.Registry {
	reg := mandala.NewRegistry()
	Register(reg)
	return reg
}

// pulseScale returns the layer's pulse scale factor for the given amplitude.
func pulseScale(cfg *mandala.Config, pulsePhase float64, layer int, amount float64) float64 {
	if !cfg.PulseEffect {
		return 1
	}
	return 1 + amount*math.Sin(pulsePhase+float64(layer)*0.5)
}

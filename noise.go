package mandala

import "github.com/ojrac/opensimplex-go"

// Noise is a 2D coherent noise source handed to plugins in every frame
// context. Eval2 returns values in roughly [-1, 1].
type Noise interface {
	Eval2(x, y float64) float64
}

// NewNoise returns an OpenSimplex noise source for the given seed.
func NewNoise(seed int64) Noise {
	return opensimplex.New(seed)
}

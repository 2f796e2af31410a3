package algorithms

import "math"

// affine is a 2D affine matrix [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type affine [6]float64

var identity = affine{1, 0, 0, 1, 0, 0}

// mul returns m * c, so c is applied first.
func (m affine) mul(c affine) affine {
	return affine{
		m[0]*c[0] + m[2]*c[1],
		m[1]*c[0] + m[3]*c[1],
		m[0]*c[2] + m[2]*c[3],
		m[1]*c[2] + m[3]*c[3],
		m[0]*c[4] + m[2]*c[5] + m[4],
		m[1]*c[4] + m[3]*c[5] + m[5],
	}
}

// apply transforms a point.
func (m affine) apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// scale returns the uniform scale factor, the square root of the absolute
// determinant.
func (m affine) scale() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}

// rotation returns the rotation angle of the x axis.
func (m affine) rotation() float64 {
	return math.Atan2(m[1], m[0])
}

func translation(x, y float64) affine {
	return affine{1, 0, 0, 1, x, y}
}

func rotation(theta float64) affine {
	sin, cos := math.Sincos(theta)
	return affine{cos, sin, -sin, cos, 0, 0}
}

func scaling(sx, sy float64) affine {
	return affine{sx, 0, 0, sy, 0, 0}
}

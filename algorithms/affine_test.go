package algorithms

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want affine) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func TestAffineRotation90(t *testing.T) {
	// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
	assertMatrix(t, "rot90", rotation(math.Pi/2), affine{0, 1, -1, 0, 0, 0})
}

func TestAffineMulAppliesRightFirst(t *testing.T) {
	// translate then rotate: the rotation acts in the translated frame.
	m := translation(100, 50).mul(rotation(math.Pi / 2))
	x, y := m.apply(10, 0)
	assertNear(t, "x", x, 100)
	assertNear(t, "y", y, 60)

	m = rotation(math.Pi / 2).mul(translation(10, 0))
	x, y = m.apply(0, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 10)
}

func TestAffineIdentity(t *testing.T) {
	m := scaling(2, 3)
	assertMatrix(t, "left", identity.mul(m), m)
	assertMatrix(t, "right", m.mul(identity), m)
}

func TestAffineScaleAndRotation(t *testing.T) {
	m := translation(5, 5).mul(rotation(0.7)).mul(scaling(3, 3))
	assertNear(t, "scale", m.scale(), 3)
	assertNear(t, "rotation", m.rotation(), 0.7)

	// mirrored scale still reports a positive magnitude
	assertNear(t, "mirror", scaling(-2, 2).scale(), 2)
}

func TestPenSaveRestore(t *testing.T) {
	var p pen
	p.reset(nil)
	p.setStroke(p.stroke, 4, 0.5)
	p.save()
	p.translate(10, 20)
	p.rotate(1)
	p.setStroke(p.stroke, 1, 1)
	p.restore()

	assertMatrix(t, "restored", p.m, identity)
	assertNear(t, "lineWidth", p.lineWidth, 4)
	assertNear(t, "alpha", p.alpha, 0.5)

	// unbalanced restore is a no-op
	p.restore()
	assertMatrix(t, "extra restore", p.m, identity)
}

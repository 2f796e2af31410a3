package algorithms

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mandala"
)

// gradientSteps is the number of rings used to approximate the radial
// background gradient.
const gradientSteps = 32

// Flower draws layered bezier petals over a radial glow, with a stamen ring
// at the center.
type Flower struct {
	p pen
}

// Draw implements mandala.Algorithm.
func (a *Flower) Draw(dst *ebiten.Image, fc *mandala.FrameContext) {
	cfg := fc.Config.Sanitized()
	palette := fc.Palettes.Lookup(cfg.ColorMode)
	p := &a.p
	p.reset(dst)
	p.fillBackground(cfg.BackgroundColor)

	a.background(fc, &cfg, palette)
	for layer := 0; layer < cfg.Layers; layer++ {
		a.petalLayer(fc, &cfg, palette, layer)
	}
	a.center(fc, &cfg, palette)
}

// background paints a radial gradient from the background color to a faint
// wash of the first palette color at 90% of the radius and back, then faint
// guide rings.
func (a *Flower) background(fc *mandala.FrameContext, cfg *mandala.Config, palette mandala.Palette) {
	p := &a.p
	bg := cfg.BackgroundColor
	glow := mixColor(bg, palette.At(0), 0.1)

	p.save()
	p.translate(fc.CenterX, fc.CenterY)
	p.alpha = 1
	for i := gradientSteps; i >= 1; i-- {
		t := float64(i) / gradientSteps
		p.fill = radialStop(bg, glow, t)
		p.fillCircle(0, 0, fc.Radius*t)
	}

	p.setStroke(palette.At(1), cfg.LineWidth*0.3, 0.1)
	for i := 1; i <= 5; i++ {
		p.circle(0, 0, fc.Radius*float64(i)*0.2)
	}
	p.restore()
}

// radialStop evaluates the background gradient at t in [0, 1]: stops at 0.1
// (bg), 0.9 (glow) and 1 (bg).
func radialStop(bg, glow mandala.Color, t float64) mandala.Color {
	switch {
	case t <= 0.1:
		return bg
	case t <= 0.9:
		return mixColor(bg, glow, (t-0.1)/0.8)
	default:
		return mixColor(glow, bg, (t-0.9)/0.1)
	}
}

func mixColor(a, b mandala.Color, t float64) mandala.Color {
	return mandala.Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func (a *Flower) petalLayer(fc *mandala.FrameContext, cfg *mandala.Config, palette mandala.Palette, layer int) {
	p := &a.p
	fl := float64(layer)
	length := fc.Radius * (0.3 + fl*0.2)
	count := cfg.Symmetry + layer*2

	for i := 0; i < count; i++ {
		p.save()
		p.translate(fc.CenterX, fc.CenterY)
		p.rotate(2*math.Pi*float64(i)/float64(count) + fc.Angle)
		if cfg.PulseEffect {
			p.scale(1 + 0.08*math.Sin(fc.PulsePhase+fl*0.5))
		}
		p.setStroke(palette.At(layer), cfg.LineWidth*(1-fl*0.1), cfg.Opacity*(1-fl*0.15))
		a.petal(length, layer, cfg, fc.Noise)
		p.restore()
	}
}

func (a *Flower) petal(length float64, layer int, cfg *mandala.Config, noise mandala.Noise) {
	p := &a.p
	fl := float64(layer)
	seed := cfg.RandomSeed + fl*100
	width := length * (0.2 + cfg.Complexity*0.2)

	c1x := length * 0.3
	c1y := width * (0.7 + noise.Eval2(seed, fl)*0.3)
	c2x := length * 0.7
	c2y := width * (0.5 + noise.Eval2(seed+1, fl)*0.5)

	p.beginPath()
	p.moveTo(0, 0)
	p.cubicTo(c1x, c1y, c2x, c2y, length, 0)
	p.cubicTo(c2x, -c2y, c1x, -c1y, 0, 0)
	p.strokePath()

	if layer < 2 && cfg.Complexity > 0.4 {
		a.veins(length, cfg)
	}
}

func (a *Flower) veins(length float64, cfg *mandala.Config) {
	p := &a.p
	p.line(0, 0, length, 0)

	n := max(2, int(4*cfg.Complexity))
	for i := 1; i <= n; i++ {
		fi := float64(i)
		pos := length * fi / float64(n+1)
		h := length * 0.15 * (1 - fi/float64(n+2))
		for _, side := range [2]float64{1, -1} {
			p.beginPath()
			p.moveTo(pos, 0)
			p.quadTo(pos+h*0.5, side*h, pos+h, 0)
			p.strokePath()
		}
	}
}

func (a *Flower) center(fc *mandala.FrameContext, cfg *mandala.Config, palette mandala.Palette) {
	p := &a.p
	inner := fc.Radius * 0.15

	p.save()
	p.translate(fc.CenterX, fc.CenterY)
	p.setStroke(palette.At(0), cfg.LineWidth*1.2, cfg.Opacity+0.1)
	p.circle(0, 0, inner)

	p.fill = palette.At(1)
	dots := cfg.Symmetry * 2
	for i := 0; i < dots; i++ {
		angle := float64(i)/float64(dots)*2*math.Pi + fc.Angle
		d := inner * 0.7
		p.fillCircle(d*math.Cos(angle), d*math.Sin(angle), inner*0.15)
	}

	p.fill = palette.At(0)
	p.fillCircle(0, 0, inner*0.5)
	p.restore()
}

package algorithms

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mandala"
)

// dotRadius is the radius of the dots drawn along radial lines.
const dotRadius = 2

// Geometric draws concentric rings, per-layer polygons with dotted spokes,
// and a slowly counter-rotating polygon per layer.
type Geometric struct {
	p pen
}

// Draw implements mandala.Algorithm.
func (a *Geometric) Draw(dst *ebiten.Image, fc *mandala.FrameContext) {
	cfg := fc.Config.Sanitized()
	palette := fc.Palettes.Lookup(cfg.ColorMode)
	p := &a.p
	p.reset(dst)
	p.fillBackground(cfg.BackgroundColor)

	p.save()
	p.translate(fc.CenterX, fc.CenterY)
	for i := 1; i <= 5; i++ {
		p.setStroke(palette.At(i), cfg.LineWidth*0.5, cfg.Opacity*0.3)
		p.circle(0, 0, fc.Radius*float64(i)*0.2)
	}
	p.restore()

	for layer := 0; layer < cfg.Layers; layer++ {
		a.layer(fc, &cfg, palette, layer)
	}

	inner := fc.Radius * 0.1
	p.save()
	p.translate(fc.CenterX, fc.CenterY)
	p.setStroke(palette.At(0), cfg.LineWidth*1.5, cfg.Opacity+0.1)
	p.polygon(0, 0, inner, cfg.Symmetry)
	p.beginPath()
	for i := 0; i < cfg.Symmetry; i++ {
		angle := float64(i) / float64(cfg.Symmetry) * 2 * math.Pi
		p.moveTo(0, 0)
		p.lineTo(inner*1.5*math.Cos(angle), inner*1.5*math.Sin(angle))
	}
	p.strokePath()
	p.restore()
}

func (a *Geometric) layer(fc *mandala.FrameContext, cfg *mandala.Config, palette mandala.Palette, layer int) {
	p := &a.p
	fl := float64(layer)
	layerRadius := fc.Radius * (0.4 + fl*0.2)
	sides := 3 + layer*2
	color := palette.At(layer)
	dots := int(5 + cfg.Complexity*10)

	for i := 0; i < cfg.Symmetry; i++ {
		p.save()
		p.translate(fc.CenterX, fc.CenterY)
		p.rotate(2*math.Pi*float64(i)/float64(cfg.Symmetry) + fc.Angle)
		p.scale(pulseScale(cfg, fc.PulsePhase, layer, 0.05))
		p.setStroke(color, cfg.LineWidth*(1-fl*0.1), cfg.Opacity*(1-fl*0.1))
		p.fill = color

		p.polygon(0, 0, layerRadius*0.6, sides)
		p.line(0, 0, layerRadius, 0)
		for j := 1; j < dots; j++ {
			r := layerRadius * float64(j) / float64(dots)
			if j%3 == 0 {
				p.fillCircle(r, 0, dotRadius)
			} else {
				p.circle(r, 0, dotRadius)
			}
		}
		p.restore()
	}

	p.save()
	p.translate(fc.CenterX, fc.CenterY)
	p.rotate(fc.Angle * 0.5)
	p.setStroke(palette.At(layer+1), cfg.LineWidth, cfg.Opacity*0.5)
	p.polygon(0, 0, layerRadius*0.8, cfg.Symmetry)
	p.restore()
}

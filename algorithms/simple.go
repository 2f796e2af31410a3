package algorithms

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/mandala"
)

// Simple draws noise-perturbed radial strokes, rings and small circles per
// layer, repeated around the center, with a polygon at the core.
type Simple struct {
	p pen
}

// Draw implements mandala.Algorithm.
func (a *Simple) Draw(dst *ebiten.Image, fc *mandala.FrameContext) {
	cfg := fc.Config.Sanitized()
	palette := fc.Palettes.Lookup(cfg.ColorMode)
	p := &a.p
	p.reset(dst)
	p.fillBackground(cfg.BackgroundColor)

	for layer := 0; layer < cfg.Layers; layer++ {
		layerRadius := fc.Radius * (0.5 + float64(layer)*0.2)
		stroke := cfg.Color
		if cfg.UseGradient {
			stroke = palette.At(layer)
		}
		for i := 0; i < cfg.Symmetry; i++ {
			p.save()
			p.translate(fc.CenterX, fc.CenterY)
			p.rotate(2*math.Pi*float64(i)/float64(cfg.Symmetry) + fc.Angle)
			p.scale(pulseScale(&cfg, fc.PulsePhase, layer, 0.05))
			p.setStroke(stroke,
				cfg.LineWidth*(1-float64(layer)*0.15),
				cfg.Opacity*(1-float64(layer)*0.1))
			a.pattern(layerRadius, layer, &cfg, fc.Noise)
			p.restore()
		}
	}

	p.save()
	p.translate(fc.CenterX, fc.CenterY)
	p.setStroke(palette.At(0), cfg.LineWidth*1.5, cfg.Opacity+0.1)
	p.circle(0, 0, fc.Radius*0.1)
	p.polygon(0, 0, fc.Radius*0.15, cfg.Symmetry)
	p.restore()
}

func (a *Simple) pattern(layerRadius float64, layer int, cfg *mandala.Config, noise mandala.Noise) {
	p := &a.p
	fl := float64(layer)
	seed := cfg.RandomSeed + fl*100
	segments := int(10 + cfg.Complexity*20)

	p.beginPath()
	amp := 40 + fl*10*cfg.Complexity
	for i := 0; i < segments; i++ {
		t := float64(i) / float64(segments)
		x := layerRadius*t + noise.Eval2(t*5+seed, fl*0.2)*amp
		y := noise.Eval2(fl*0.2, t*5+seed) * amp
		if i == 0 {
			p.moveTo(x, y)
		} else {
			p.lineTo(x, y)
		}
	}
	p.strokePath()

	circles := max(3, int(5*cfg.Complexity))
	for i := 0; i < circles; i++ {
		fi := float64(i)
		if noise.Eval2(fi*0.5+seed, fi*0.5+seed) > 0 {
			p.circle(0, 0, layerRadius*(0.2+fi*0.15))
		}
	}

	details := int(cfg.Complexity * 8)
	for i := 0; i < details; i++ {
		fi := float64(i)
		angle := fi / float64(details) * 2 * math.Pi
		r := layerRadius * (0.3 + 0.5*noise.Eval2(fi*0.2+seed, 0))
		x, y := r*math.Cos(angle), r*math.Sin(angle)
		p.circle(x, y, 2+fl*1.5)
		if noise.Eval2(fi*0.3+seed, fl) > 0.2 {
			p.line(0, 0, x, y)
		}
	}
}

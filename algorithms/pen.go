package algorithms

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/phanxgames/mandala"
)

var whiteSubImage *ebiten.Image

func init() {
	img := ebiten.NewImage(3, 3)
	img.Fill(mandala.ColorWhite.RGBA())
	whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// penState is the part of a pen saved and restored by save/restore.
type penState struct {
	m         affine
	lineWidth float64
	alpha     float64
	stroke    mandala.Color
	fill      mandala.Color
}

// pen is an immediate-mode stroking helper with a transform stack. Path
// points are transformed as they are added, so the current transform at
// stroke time only affects the line width.
type pen struct {
	dst *ebiten.Image
	penState
	stack []penState

	path vector.Path
	vs   []ebiten.Vertex
	is   []uint16
	op   ebiten.DrawTrianglesOptions
}

// reset prepares the pen to draw into dst with an identity transform.
func (p *pen) reset(dst *ebiten.Image) {
	p.dst = dst
	p.penState = penState{m: identity, lineWidth: 1, alpha: 1, stroke: mandala.ColorWhite, fill: mandala.ColorWhite}
	p.stack = p.stack[:0]
	p.path = vector.Path{}
	p.op.AntiAlias = true
}

func (p *pen) save() {
	p.stack = append(p.stack, p.penState)
}

func (p *pen) restore() {
	if n := len(p.stack); n > 0 {
		p.penState = p.stack[n-1]
		p.stack = p.stack[:n-1]
	}
}

func (p *pen) translate(x, y float64) { p.m = p.m.mul(translation(x, y)) }
func (p *pen) rotate(theta float64)   { p.m = p.m.mul(rotation(theta)) }
func (p *pen) scale(s float64)        { p.m = p.m.mul(scaling(s, s)) }

func (p *pen) setStroke(c mandala.Color, lineWidth, alpha float64) {
	p.stroke = c
	p.lineWidth = lineWidth
	p.alpha = alpha
}

// fillBackground paints the whole target with c.
func (p *pen) fillBackground(c mandala.Color) {
	p.dst.Fill(c.RGBA())
}

func (p *pen) beginPath() {
	p.path = vector.Path{}
}

func (p *pen) moveTo(x, y float64) {
	tx, ty := p.m.apply(x, y)
	p.path.MoveTo(float32(tx), float32(ty))
}

func (p *pen) lineTo(x, y float64) {
	tx, ty := p.m.apply(x, y)
	p.path.LineTo(float32(tx), float32(ty))
}

func (p *pen) quadTo(cx, cy, x, y float64) {
	tcx, tcy := p.m.apply(cx, cy)
	tx, ty := p.m.apply(x, y)
	p.path.QuadTo(float32(tcx), float32(tcy), float32(tx), float32(ty))
}

func (p *pen) cubicTo(c0x, c0y, c1x, c1y, x, y float64) {
	t0x, t0y := p.m.apply(c0x, c0y)
	t1x, t1y := p.m.apply(c1x, c1y)
	tx, ty := p.m.apply(x, y)
	p.path.CubicTo(float32(t0x), float32(t0y), float32(t1x), float32(t1y), float32(tx), float32(ty))
}

// arc appends a clockwise arc. The transform must be a similarity (uniform
// scale and rotation), which is all the plugins use.
func (p *pen) arc(x, y, r, start, end float64) {
	tx, ty := p.m.apply(x, y)
	rot := p.m.rotation()
	p.path.Arc(float32(tx), float32(ty), float32(r*p.m.scale()),
		float32(start+rot), float32(end+rot), vector.Clockwise)
}

func (p *pen) closePath() {
	p.path.Close()
}

// circle strokes a full circle as its own path.
func (p *pen) circle(x, y, r float64) {
	p.beginPath()
	p.arc(x, y, r, 0, 2*math.Pi)
	p.closePath()
	p.strokePath()
}

// line strokes a single segment as its own path.
func (p *pen) line(x0, y0, x1, y1 float64) {
	p.beginPath()
	p.moveTo(x0, y0)
	p.lineTo(x1, y1)
	p.strokePath()
}

// strokePath strokes the current path with the current stroke style.
func (p *pen) strokePath() {
	w := p.lineWidth * p.m.scale()
	if w <= 0 || p.alpha <= 0 {
		return
	}
	p.vs, p.is = p.path.AppendVerticesAndIndicesForStroke(p.vs[:0], p.is[:0], &vector.StrokeOptions{
		Width:    float32(w),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	if len(p.is) == 0 {
		return
	}
	a := float32(math.Min(p.alpha, 1))
	for i := range p.vs {
		v := &p.vs[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(p.stroke.R)
		v.ColorG = float32(p.stroke.G)
		v.ColorB = float32(p.stroke.B)
		v.ColorA = a
	}
	p.dst.DrawTriangles(p.vs, p.is, whiteSubImage, &p.op)
}

// fillCircle fills a disc with the current fill color and alpha.
func (p *pen) fillCircle(x, y, r float64) {
	if p.alpha <= 0 {
		return
	}
	tx, ty := p.m.apply(x, y)
	vector.DrawFilledCircle(p.dst, float32(tx), float32(ty), float32(r*p.m.scale()),
		p.fill.NRGBA(p.alpha), true)
}

// polygon traces a closed regular polygon centered on (x, y) with its first
// vertex on the positive x axis.
func (p *pen) polygon(x, y, r float64, sides int) {
	p.beginPath()
	for i := 0; i < sides; i++ {
		a := float64(i) / float64(sides) * 2 * math.Pi
		px, py := x+r*math.Cos(a), y+r*math.Sin(a)
		if i == 0 {
			p.moveTo(px, py)
		} else {
			p.lineTo(px, py)
		}
	}
	p.closePath()
	p.strokePath()
}

package mandala

// FrameContext is the read-only snapshot handed to a plugin for exactly one
// Draw call. Config is a copy taken after this tick's parameter animation.
type FrameContext struct {
	CenterX float64
	CenterY float64
	Radius  float64

	Config     Config
	Angle      float64
	PulsePhase float64

	Noise    Noise
	Palettes PaletteTable

	// Frame counts completed ticks since the session started. Single-shot
	// redraws reuse the current value.
	Frame uint64
}

// Palette returns the palette for the frame's color mode.
func (fc *FrameContext) Palette() Palette {
	return fc.Palettes.Lookup(fc.Config.ColorMode)
}

// Phase is the session's oscillator state. Every accumulator is unbounded and
// only folded by ReducePhase once it grows very large.
type Phase struct {
	Angle     float64
	Pulse     float64
	Animation float64 // global, informational only
	Params    [NumParams]Oscillator
}

// PulseIncrement is added to the pulse phase every tick while the pulse
// effect is on. It does not scale with the animation speed.
const PulseIncrement = 0.03

// computeGeometry returns the canvas center and pattern radius for a w×h
// canvas.
func computeGeometry(w, h int) (cx, cy, radius float64) {
	cx = float64(w) / 2
	cy = float64(h) / 2
	radius = float64(min(w, h)) * 0.4
	return cx, cy, radius
}

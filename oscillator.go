package mandala

import "math"

// TwoPi is one full period of the sine oscillators.
const TwoPi = 2 * math.Pi

// phaseReduceLimit is the magnitude past which accumulated phases are folded
// back into [0, 2π). Below it phases are kept exact so short runs sample the
// same values as a naive accumulator.
const phaseReduceLimit = TwoPi * 4096

// Advance returns phase incremented by speed*globalSpeed. The result is
// unbounded in principle; very large magnitudes are reduced modulo 2π to keep
// float64 precision over long sessions.
func Advance(phase, speed, globalSpeed float64) float64 {
	return ReducePhase(phase + speed*globalSpeed)
}

// ReducePhase folds a phase into [0, 2π) once it exceeds phaseReduceLimit.
// sin and cos of the result match the input within floating tolerance.
func ReducePhase(phase float64) float64 {
	if phase > phaseReduceLimit || phase < -phaseReduceLimit {
		phase = math.Mod(phase, TwoPi)
		if phase < 0 {
			phase += TwoPi
		}
	}
	return phase
}

// Sample maps phase onto r with a sine wave: mid + amplitude*sin(phase).
// The result is clamped to r so rounding error never escapes the bounds.
// A malformed range (Min > Max) yields an unspecified value.
func Sample(phase float64, r Range) float64 {
	v := r.Mid() + r.Amplitude()*math.Sin(phase)
	if r.Min <= r.Max {
		v = r.Clamp(v)
	}
	return v
}

// SampleParam samples r and rounds the result when p is integral.
// Rounding happens after sampling so integral parameters keep the smooth
// underlying phase.
func SampleParam(p Param, phase float64, r Range) float64 {
	v := Sample(phase, r)
	if p.Integral() {
		v = math.Round(v)
		if r.Min <= r.Max {
			v = r.Clamp(v)
		}
	}
	return v
}

// Oscillator is a single phase accumulator.
type Oscillator struct {
	Phase float64
}

// Step advances the oscillator by speed*globalSpeed.
func (o *Oscillator) Step(speed, globalSpeed float64) {
	o.Phase = Advance(o.Phase, speed, globalSpeed)
}

// Value samples the oscillator at its current phase.
func (o *Oscillator) Value(r Range) float64 {
	return Sample(o.Phase, r)
}

// Reset zeros the phase.
func (o *Oscillator) Reset() {
	o.Phase = 0
}

package mandala

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxTransitionFields is the number of numeric Config fields a Transition
// can morph.
const maxTransitionFields = 4

// Transition morphs up to four numeric config fields toward a target with
// gween tweens. A Session advances it once per continuous tick, before the
// oscillators run, so parameter animation wins over a transitioned value.
//
// A Transition holds pointers into the Config it was created for and must
// not outlive it.
type Transition struct {
	tweens  [maxTransitionFields]*gween.Tween
	fields  [maxTransitionFields]*float64
	targets [maxTransitionFields]float64
	count   int
	Done    bool
}

// NewTransition builds a Transition moving the set numeric fields of target
// (lineWidth, opacity, complexity, rotationSpeed) from their values in cfg.
// A non-positive duration applies the targets on the first Update.
func NewTransition(cfg *Config, target *Overrides, duration float32, fn ease.TweenFunc) *Transition {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		duration = 1e-6
	}
	t := &Transition{}
	t.add(&cfg.LineWidth, target.LineWidth, duration, fn)
	t.add(&cfg.Opacity, target.Opacity, duration, fn)
	t.add(&cfg.Complexity, target.Complexity, duration, fn)
	t.add(&cfg.RotationSpeed, target.RotationSpeed, duration, fn)
	t.Done = t.count == 0
	return t
}

func (t *Transition) add(field *float64, to *float64, duration float32, fn ease.TweenFunc) {
	if to == nil {
		return
	}
	t.tweens[t.count] = gween.New(float32(*field), float32(*to), duration, fn)
	t.fields[t.count] = field
	t.targets[t.count] = *to
	t.count++
}

// Len returns the number of fields being morphed.
func (t *Transition) Len() int {
	return t.count
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. A finished field holds its exact target.
func (t *Transition) Update(dt float32) {
	if t.Done {
		return
	}
	allDone := true
	for i := 0; i < t.count; i++ {
		val, finished := t.tweens[i].Update(dt)
		if finished {
			*t.fields[i] = t.targets[i]
			continue
		}
		*t.fields[i] = float64(val)
		allDone = false
	}
	t.Done = allDone
}

// Finish writes every target immediately and marks the transition done.
func (t *Transition) Finish() {
	for i := 0; i < t.count; i++ {
		*t.fields[i] = t.targets[i]
	}
	t.Done = true
}

// splitTweenable separates o into the numeric fields a Transition can morph
// and everything else, which is applied immediately.
func splitTweenable(o Overrides) (tween, rest Overrides) {
	rest = o
	tween.LineWidth, rest.LineWidth = o.LineWidth, nil
	tween.Opacity, rest.Opacity = o.Opacity, nil
	tween.Complexity, rest.Complexity = o.Complexity, nil
	tween.RotationSpeed, rest.RotationSpeed = o.RotationSpeed, nil
	return tween, rest
}

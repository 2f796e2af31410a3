package mandala

import "github.com/hajimehoshi/ebiten/v2"

// Keyboard symmetry limits. Wider values are reachable through Set.
const (
	keySymmetryMin = 2
	keySymmetryMax = 32
)

// Control is a keyboard-level command.
type Control uint8

const (
	ControlReseed Control = iota
	ControlToggleRotate
	ControlTogglePulse
	ControlSymmetryUp
	ControlSymmetryDown
	ControlToggleAnimate
	ControlScreenshot
)

// AlgorithmKeys lists the algorithm ids bound to the digit keys 1..n.
var AlgorithmKeys = []string{"simple", "geometric", "flower", "shader", "fractal"}

// KeyBindings maps keys to controls for the window loop.
var KeyBindings = map[ebiten.Key]Control{
	ebiten.KeySpace:          ControlReseed,
	ebiten.KeyR:              ControlToggleRotate,
	ebiten.KeyP:              ControlTogglePulse,
	ebiten.KeyEqual:          ControlSymmetryUp,
	ebiten.KeyNumpadAdd:      ControlSymmetryUp,
	ebiten.KeyMinus:          ControlSymmetryDown,
	ebiten.KeyNumpadSubtract: ControlSymmetryDown,
	ebiten.KeyA:              ControlToggleAnimate,
	ebiten.KeyS:              ControlScreenshot,
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// HandleControl applies a keyboard command.
func (s *Session) HandleControl(c Control) {
	switch c {
	case ControlReseed:
		s.Reseed()
	case ControlToggleRotate:
		s.cfg.AutoRotate = !s.cfg.AutoRotate
	case ControlTogglePulse:
		s.cfg.PulseEffect = !s.cfg.PulseEffect
	case ControlSymmetryUp:
		s.cfg.Symmetry = min(keySymmetryMax, max(keySymmetryMin, s.cfg.Symmetry+1))
		s.RequestRedraw()
	case ControlSymmetryDown:
		s.cfg.Symmetry = max(keySymmetryMin, min(keySymmetryMax, s.cfg.Symmetry-1))
		s.RequestRedraw()
	case ControlToggleAnimate:
		s.ToggleContinuousMode()
	case ControlScreenshot:
		s.Screenshot("key")
	}
}

// SelectAlgorithmKey selects the algorithm bound to digit n (1-based).
// It returns false when n is unbound or the id is not registered.
func (s *Session) SelectAlgorithmKey(n int) bool {
	if n < 1 || n > len(AlgorithmKeys) {
		return false
	}
	return s.SetAlgorithm(AlgorithmKeys[n-1])
}

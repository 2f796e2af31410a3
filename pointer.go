package mandala

import "math"

// dragDeadZone is the distance in pixels the pointer must travel while held
// before a press becomes a drag instead of a click.
const dragDeadZone = 4.0

// Complexity limits applied by pointer drags.
const (
	dragMinComplexity = 0.1
	dragMaxComplexity = 1.0
	dragReach         = 1.5 // multiple of the radius
)

type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	startY   float64
}

// syntheticPointerEvent is one injected pointer sample in canvas pixels.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// PointerPress records a primary-button press at (x, y).
func (s *Session) PointerPress(x, y float64) {
	s.pointer = pointerState{down: true, startX: x, startY: y}
}

// PointerMove handles motion with the primary button held. Once past the
// dead zone the press is a drag and every move sets complexity from the
// distance to the center.
func (s *Session) PointerMove(x, y float64) {
	p := &s.pointer
	if !p.down {
		return
	}
	if !p.dragging {
		if math.Hypot(x-p.startX, y-p.startY) < dragDeadZone {
			return
		}
		p.dragging = true
	}
	s.DragTo(x, y)
}

// PointerRelease ends a press. A press that never became a drag is a click
// and reseeds.
func (s *Session) PointerRelease(x, y float64) {
	p := s.pointer
	s.pointer = pointerState{}
	if !p.down {
		return
	}
	if p.dragging {
		s.DragTo(x, y)
		return
	}
	s.Reseed()
}

// DragTo applies a drag sample at (x, y). Within 1.5 radii of the center,
// complexity becomes the distance over 1.5 radii, clamped to [0.1, 1].
// Farther samples are ignored.
func (s *Session) DragTo(x, y float64) {
	reach := s.radius * dragReach
	if reach <= 0 {
		return
	}
	d := math.Hypot(x-s.centerX, y-s.centerY)
	if d >= reach {
		return
	}
	c := math.Min(math.Max(d/reach, dragMinComplexity), dragMaxComplexity)
	s.cfg.Complexity = c
	s.RequestRedraw()
}

// --- Injection ---

// InjectPress queues a synthetic press, consumed by ProcessInjected.
func (s *Session) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a synthetic move with the button held.
func (s *Session) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a synthetic release.
func (s *Session) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectClick queues a press and a release at the same point. Consumes two
// frames.
func (s *Session) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 interpolated moves,
// and a release at (toX, toY). Minimum frames is 2.
func (s *Session) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic events.
func (s *Session) PendingInjected() int {
	return len(s.injectQueue)
}

// ProcessInjected consumes one queued synthetic event and reports whether
// one was consumed. The window loop skips real mouse input when it returns
// true.
func (s *Session) ProcessInjected() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch {
	case evt.pressed && !s.pointer.down:
		s.PointerPress(evt.x, evt.y)
	case evt.pressed:
		s.PointerMove(evt.x, evt.y)
	default:
		s.PointerRelease(evt.x, evt.y)
	}
	return true
}

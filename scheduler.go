package mandala

// Scheduler arranges for the next continuous-mode tick. Implementations hold
// at most one pending callback: scheduling replaces any pending callback, and
// Cancel drops it.
type Scheduler interface {
	Schedule(fn func())
	Cancel()
}

// FrameScheduler is a Scheduler pumped by the display refresh. The window
// loop calls Fire once per refresh; tests call it directly to simulate
// refreshes without a display.
type FrameScheduler struct {
	pending func()
	fired   uint64
}

// Schedule sets fn as the callback for the next Fire.
func (s *FrameScheduler) Schedule(fn func()) {
	s.pending = fn
}

// Cancel drops the pending callback, if any.
func (s *FrameScheduler) Cancel() {
	s.pending = nil
}

// Pending reports whether a callback is waiting for the next Fire.
func (s *FrameScheduler) Pending() bool {
	return s.pending != nil
}

// Fire runs the pending callback and reports whether one ran. The pending
// slot is cleared before the callback runs, so a callback may reschedule.
func (s *FrameScheduler) Fire() bool {
	fn := s.pending
	if fn == nil {
		return false
	}
	s.pending = nil
	s.fired++
	fn()
	return true
}

// Fired returns the number of callbacks run so far.
func (s *FrameScheduler) Fired() uint64 {
	return s.fired
}

package mandala

import (
	"math"
	"testing"
)

// The test rig canvas is 200x100: center (100, 50), radius 40, drag reach 60.

func TestDragToSetsComplexity(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want float64
	}{
		{"half reach", 130, 50, 0.5},
		{"near center clamps", 101, 50, 0.1},
		{"diagonal", 100 + 24, 50 + 32, 40.0 / 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, quietConfig())
			r.s.DragTo(tt.x, tt.y)
			if got := r.s.Config().Complexity; math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Complexity = %f, want %f", got, tt.want)
			}
			if len(r.simple.frames) != 1 {
				t.Errorf("draws = %d, want 1", len(r.simple.frames))
			}
		})
	}
}

func TestDragToOutsideReachIgnored(t *testing.T) {
	r := newRig(t, quietConfig())
	r.s.DragTo(180, 50)
	if got := r.s.Config().Complexity; got != 0.5 {
		t.Errorf("Complexity = %f, want unchanged 0.5", got)
	}
	if len(r.simple.frames) != 0 {
		t.Errorf("draws = %d, want 0", len(r.simple.frames))
	}
}

func TestInjectClickReseeds(t *testing.T) {
	r := newRig(t, quietConfig())
	s := r.s
	seed := s.Config().RandomSeed

	s.InjectClick(130, 50)
	if s.PendingInjected() != 2 {
		t.Fatalf("expected 2 queued events, got %d", s.PendingInjected())
	}

	// Frame 1: press
	if !s.ProcessInjected() {
		t.Fatal("ProcessInjected returned false with a queued press")
	}
	if s.Config().RandomSeed != seed {
		t.Error("press alone should not reseed")
	}

	// Frame 2: release
	s.ProcessInjected()
	if s.PendingInjected() != 0 {
		t.Fatalf("expected empty queue, got %d", s.PendingInjected())
	}
	if s.Config().RandomSeed == seed {
		t.Error("click should reseed")
	}
	if s.Config().Complexity != 0.5 {
		t.Error("click should not change complexity")
	}
	if s.ProcessInjected() {
		t.Error("ProcessInjected returned true on an empty queue")
	}
}

func TestInjectDragSetsComplexity(t *testing.T) {
	r := newRig(t, quietConfig())
	s := r.s
	seed := s.Config().RandomSeed

	s.InjectDrag(100, 50, 130, 50, 4)
	if s.PendingInjected() != 4 {
		t.Fatalf("expected 4 queued events, got %d", s.PendingInjected())
	}
	for s.ProcessInjected() {
	}

	if got := s.Config().Complexity; math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Complexity = %f, want 0.5", got)
	}
	if s.Config().RandomSeed != seed {
		t.Error("drag should not reseed")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	r := newRig(t, quietConfig())
	r.s.InjectDrag(0, 0, 10, 10, 0)
	if r.s.PendingInjected() != 2 {
		t.Errorf("expected 2 queued events, got %d", r.s.PendingInjected())
	}
}

func TestPointerDeadZone(t *testing.T) {
	r := newRig(t, quietConfig())
	s := r.s
	seed := s.Config().RandomSeed

	s.PointerPress(130, 50)
	s.PointerMove(132, 51)
	if s.pointer.dragging {
		t.Fatal("motion inside the dead zone started a drag")
	}
	s.PointerRelease(132, 51)
	if s.Config().RandomSeed == seed {
		t.Error("short wobble should still count as a click")
	}
}

func TestPointerMoveWithoutPressIgnored(t *testing.T) {
	r := newRig(t, quietConfig())
	r.s.PointerMove(130, 50)
	r.s.PointerRelease(130, 50)
	if len(r.simple.frames) != 0 {
		t.Errorf("draws = %d, want 0", len(r.simple.frames))
	}
}

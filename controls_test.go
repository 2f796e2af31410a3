package mandala

import "testing"

func TestHandleControlSymmetryLimits(t *testing.T) {
	tests := []struct {
		name  string
		start int
		c     Control
		want  int
	}{
		{"up", 8, ControlSymmetryUp, 9},
		{"down", 8, ControlSymmetryDown, 7},
		{"up at max", keySymmetryMax, ControlSymmetryUp, keySymmetryMax},
		{"down at min", keySymmetryMin, ControlSymmetryDown, keySymmetryMin},
		{"down from above max", 64, ControlSymmetryDown, keySymmetryMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := quietConfig()
			cfg.Symmetry = tt.start
			r := newRig(t, cfg)
			r.s.HandleControl(tt.c)
			if got := r.s.Config().Symmetry; got != tt.want {
				t.Errorf("Symmetry = %d, want %d", got, tt.want)
			}
			if len(r.simple.frames) != 1 {
				t.Errorf("draws = %d, want 1", len(r.simple.frames))
			}
		})
	}
}

func TestHandleControlToggles(t *testing.T) {
	r := newRig(t, quietConfig())
	s := r.s

	s.HandleControl(ControlToggleRotate)
	s.HandleControl(ControlTogglePulse)
	if c := s.Config(); !c.AutoRotate || !c.PulseEffect {
		t.Errorf("autoRotate, pulse = %v, %v, want true, true", c.AutoRotate, c.PulseEffect)
	}

	s.HandleControl(ControlToggleAnimate)
	if !s.Running() {
		t.Error("toggle animate did not start continuous mode")
	}

	seed := s.Config().RandomSeed
	s.HandleControl(ControlReseed)
	if s.Config().RandomSeed == seed {
		t.Error("reseed control kept the seed")
	}

	s.HandleControl(ControlScreenshot)
	if s.PendingScreenshots() != 1 {
		t.Errorf("pending screenshots = %d, want 1", s.PendingScreenshots())
	}
}

func TestSelectAlgorithmKey(t *testing.T) {
	r := newRig(t, quietConfig())
	if r.s.SelectAlgorithmKey(0) || r.s.SelectAlgorithmKey(len(AlgorithmKeys)+1) {
		t.Error("out-of-range digit selected an algorithm")
	}
	// "geometric" is not registered in the rig.
	if r.s.SelectAlgorithmKey(2) {
		t.Error("unregistered algorithm selected")
	}
	if !r.s.SelectAlgorithmKey(1) || r.s.Config().Algorithm != "simple" {
		t.Error("digit 1 should select simple")
	}
}

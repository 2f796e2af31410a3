package mandala

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func ptr[T any](v T) *T { return &v }

func TestTransitionReachesTarget(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineWidth = 1
	cfg.Opacity = 0.2

	target := Overrides{LineWidth: ptr(3.0), Opacity: ptr(0.8)}
	tr := NewTransition(&cfg, &target, 1.0, ease.Linear)
	if tr.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tr.Len())
	}

	// Exact halves avoid float32 accumulation drift.
	tr.Update(0.5)
	if tr.Done {
		t.Fatal("Done at half duration")
	}
	if math.Abs(cfg.LineWidth-2) > 0.01 {
		t.Errorf("LineWidth at half = %f, want ~2", cfg.LineWidth)
	}
	tr.Update(0.5)

	if !tr.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(cfg.LineWidth-3) > 0.01 {
		t.Errorf("LineWidth = %f, want ~3", cfg.LineWidth)
	}
	if math.Abs(cfg.Opacity-0.8) > 0.01 {
		t.Errorf("Opacity = %f, want ~0.8", cfg.Opacity)
	}
}

func TestTransitionNoFieldsIsDone(t *testing.T) {
	cfg := DefaultConfig()
	tr := NewTransition(&cfg, &Overrides{Symmetry: ptr(6)}, 1, nil)
	if !tr.Done || tr.Len() != 0 {
		t.Errorf("Done = %v, Len = %d, want true, 0", tr.Done, tr.Len())
	}
}

func TestTransitionZeroDurationSnaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Complexity = 0.1
	tr := NewTransition(&cfg, &Overrides{Complexity: ptr(0.9)}, 0, nil)
	tr.Update(1.0 / 60)
	if !tr.Done {
		t.Fatal("expected Done after one update")
	}
	if math.Abs(cfg.Complexity-0.9) > 0.001 {
		t.Errorf("Complexity = %f, want 0.9", cfg.Complexity)
	}
}

func TestSplitTweenable(t *testing.T) {
	o := Overrides{
		Symmetry:      ptr(6),
		LineWidth:     ptr(1.5),
		Opacity:       ptr(0.5),
		Complexity:    ptr(0.4),
		RotationSpeed: ptr(0.01),
		Algorithm:     ptr("flower"),
	}
	tween, rest := splitTweenable(o)
	if tween.LineWidth == nil || tween.Opacity == nil || tween.Complexity == nil || tween.RotationSpeed == nil {
		t.Error("tween is missing a numeric field")
	}
	if tween.Symmetry != nil || tween.Algorithm != nil {
		t.Error("tween carries a non-tweenable field")
	}
	if rest.LineWidth != nil || rest.Opacity != nil || rest.Complexity != nil || rest.RotationSpeed != nil {
		t.Error("rest still carries a tweened field")
	}
	if rest.Symmetry == nil || *rest.Symmetry != 6 || rest.Algorithm == nil || *rest.Algorithm != "flower" {
		t.Error("rest lost a non-tweenable field")
	}
}

func TestSessionTransitionTo(t *testing.T) {
	cfg := quietConfig()
	cfg.Animate = true
	r := newRig(t, cfg)
	s := r.s
	s.Start()

	if err := s.TransitionTo("Floral", 1, ease.Linear); err != nil {
		t.Fatal(err)
	}
	if !s.Transitioning() {
		t.Fatal("expected a running transition")
	}
	// Non-numeric fields apply at once.
	got := s.Config()
	if got.Symmetry != 12 || got.Layers != 4 || !got.PulseEffect {
		t.Errorf("immediate fields = symmetry %d layers %d pulse %v", got.Symmetry, got.Layers, got.PulseEffect)
	}
	if got.LineWidth != 2 {
		t.Errorf("LineWidth jumped to %f before any tick", got.LineWidth)
	}

	r.ticks(30)
	mid := s.Config().LineWidth
	if mid >= 2 || mid <= 1.5 {
		t.Errorf("LineWidth mid-transition = %f, want in (1.5, 2)", mid)
	}

	r.ticks(40)
	if s.Transitioning() {
		t.Fatal("transition still running after its duration")
	}
	got = s.Config()
	if math.Abs(got.LineWidth-1.5) > 0.01 {
		t.Errorf("LineWidth = %f, want ~1.5", got.LineWidth)
	}
	if math.Abs(got.Complexity-0.7) > 0.01 {
		t.Errorf("Complexity = %f, want ~0.7", got.Complexity)
	}
	if math.Abs(got.Opacity-0.8) > 0.01 {
		t.Errorf("Opacity = %f, want ~0.8", got.Opacity)
	}
}

func TestTransitionToSingleShotApplies(t *testing.T) {
	r := newRig(t, quietConfig())
	if err := r.s.TransitionTo("Floral", 2, nil); err != nil {
		t.Fatal(err)
	}
	if r.s.Transitioning() {
		t.Error("single-shot mode should not start a transition")
	}
	if got := r.s.Config().LineWidth; got != 1.5 {
		t.Errorf("LineWidth = %f, want 1.5", got)
	}
	if len(r.simple.frames) != 1 {
		t.Errorf("draws = %d, want 1", len(r.simple.frames))
	}
}

func TestStopContinuousFinishesTransition(t *testing.T) {
	cfg := quietConfig()
	cfg.Animate = true
	r := newRig(t, cfg)
	r.s.Start()
	if err := r.s.TransitionTo("Floral", 5, nil); err != nil {
		t.Fatal(err)
	}
	r.ticks(10)
	r.s.SetAnimate(false)
	if r.s.Transitioning() {
		t.Error("transition survived leaving continuous mode")
	}
	got := r.s.Config()
	if got.LineWidth != 1.5 || got.Opacity != 0.8 || got.Complexity != 0.7 {
		t.Errorf("numeric fields = %v, %v, %v, want 1.5, 0.8, 0.7",
			got.LineWidth, got.Opacity, got.Complexity)
	}
	if last := r.simple.last().Config; last.LineWidth != 1.5 {
		t.Errorf("stop frame drew LineWidth %v, want 1.5", last.LineWidth)
	}
}

func TestTransitionFinishWritesTargets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Opacity = 0.1
	tr := NewTransition(&cfg, &Overrides{Opacity: ptr(0.7)}, 2, nil)
	tr.Update(0.5)
	tr.Finish()
	if !tr.Done || cfg.Opacity != 0.7 {
		t.Errorf("Done = %v, Opacity = %v, want true, 0.7", tr.Done, cfg.Opacity)
	}
}

func TestTransitionStoresExactTargets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Opacity = 0.2
	cfg.Complexity = 0.1
	tr := NewTransition(&cfg, &Overrides{Opacity: ptr(0.7), Complexity: ptr(0.3)}, 1, ease.InOutSine)
	tr.Update(0.5)
	tr.Update(0.5)
	if !tr.Done {
		t.Fatal("expected Done after full duration")
	}
	// float32 tween values would give 0.699999988 and 0.300000012
	if cfg.Opacity != 0.7 || cfg.Complexity != 0.3 {
		t.Errorf("Opacity, Complexity = %v, %v, want exactly 0.7, 0.3", cfg.Opacity, cfg.Complexity)
	}
}

func TestTransitionToPresetLeavingContinuousMode(t *testing.T) {
	presets, err := ParsePresets([]byte("- name: Still\n  lineWidth: 4.5\n  animate: false\n"))
	if err != nil {
		t.Fatal(err)
	}
	cfg := quietConfig()
	cfg.Animate = true
	rec := &recorder{}
	reg := NewRegistry()
	reg.Register("simple", "Simple", rec)
	sched := &queueScheduler{}
	s := NewSession(SessionOptions{
		Width: 200, Height: 100, Config: &cfg,
		Registry: reg, Scheduler: sched, Presets: presets,
	})
	s.Start()

	if err := s.TransitionTo("Still", 1, nil); err != nil {
		t.Fatal(err)
	}
	if s.Running() || s.Transitioning() {
		t.Errorf("Running, Transitioning = %v, %v, want false, false", s.Running(), s.Transitioning())
	}
	if got := s.Config().LineWidth; got != 4.5 {
		t.Errorf("LineWidth = %v, want 4.5", got)
	}
	if len(rec.frames) != 1 {
		t.Fatalf("draws = %d, want 1", len(rec.frames))
	}
	if rec.last().Config.LineWidth != 4.5 {
		t.Errorf("drawn LineWidth = %v, want 4.5", rec.last().Config.LineWidth)
	}
	if len(sched.queue) != 0 {
		t.Errorf("pending ticks = %d, want 0", len(sched.queue))
	}
}

package mandala

import (
	"strings"
	"testing"
)

func TestHUDLines(t *testing.T) {
	h, err := NewHUD(12)
	if err != nil {
		t.Fatal(err)
	}
	if !h.Visible {
		t.Error("new HUD should be visible")
	}

	cfg := quietConfig()
	cfg.Symmetry = 9
	r := newRig(t, cfg)
	lines := h.Lines(r.s)
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if lines[0] != "Simple [simple]" {
		t.Errorf("title = %q", lines[0])
	}
	if !strings.Contains(lines[1], "single-shot") {
		t.Errorf("mode line = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "symmetry 9 ") {
		t.Errorf("params line = %q", lines[2])
	}

	r.s.SetAnimate(true)
	if !strings.Contains(h.Lines(r.s)[1], "continuous") {
		t.Error("mode line should report continuous mode")
	}
}

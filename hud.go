package mandala

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// hudRefresh is how often, in seconds, the FPS readout is resampled.
const hudRefresh = 0.5

const hudHelp = "Space reseed  R rotate  P pulse  +/- symmetry  A animate  1-5 algorithm  S shot  H hide"

// HUD draws a status overlay: the active algorithm, the mode, FPS/TPS and
// key help.
type HUD struct {
	Visible bool

	face *text.GoTextFace
	lh   float64

	elapsed float64
	fps     float64
	tps     float64
}

// NewHUD builds a HUD using the Go Regular font at the given size.
func NewHUD(size float64) (*HUD, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("mandala: failed to parse HUD font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &HUD{
		Visible: true,
		face:    face,
		lh:      m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// Update resamples the frame rates every half second.
func (h *HUD) Update(dt float64) {
	h.elapsed += dt
	if h.elapsed < hudRefresh {
		return
	}
	h.elapsed = 0
	h.fps = ebiten.ActualFPS()
	h.tps = ebiten.ActualTPS()
}

// Lines returns the HUD text for s.
func (h *HUD) Lines(s *Session) []string {
	active := s.ActiveAlgorithm()
	cfg := s.Config()
	mode := "single-shot"
	if s.Running() {
		mode = "continuous"
	}
	return []string{
		fmt.Sprintf("%s [%s]", active.Name, active.ID),
		fmt.Sprintf("mode: %s  FPS: %.1f  TPS: %.1f", mode, h.fps, h.tps),
		fmt.Sprintf("symmetry %d  layers %d  complexity %.2f  %s",
			cfg.Symmetry, cfg.Layers, cfg.Complexity, cfg.ColorMode),
		hudHelp,
	}
}

// Draw renders the overlay onto screen when visible.
func (h *HUD) Draw(screen *ebiten.Image, s *Session) {
	if !h.Visible {
		return
	}
	lines := h.Lines(s)
	body := strings.Join(lines, "\n")
	w, ht := text.Measure(body, h.face, h.lh)

	const pad = 6
	vector.DrawFilledRect(screen, 0, 0, float32(w+2*pad), float32(ht+2*pad),
		color.RGBA{0, 0, 0, 128}, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(pad, pad)
	op.ColorScale.ScaleWithColor(color.White)
	op.LineSpacing = h.lh
	text.Draw(screen, body, h.face, op)
}

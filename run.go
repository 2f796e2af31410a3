package mandala

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	// Title sets the window title.
	Title string
	// Width and Height set the window size. Zero uses the session size.
	Width, Height int
	// TPS sets the tick rate. Zero keeps ebiten's default of 60.
	TPS int
	// Resizable lets the user resize the window; the canvas follows.
	Resizable bool
	// ShowHUD shows the status overlay at start. H toggles it.
	ShowHUD bool
	// ScreenshotDir overrides the session's screenshot directory.
	ScreenshotDir string
	// Script runs a scripted session, one step per frame.
	Script *ScriptRunner
	// ExitOnScriptDone ends Run once Script finishes.
	ExitOnScriptDone bool
	// DisableInput ignores real keyboard and mouse input.
	DisableInput bool
}

// refresher is a scheduler pumped once per display refresh.
type refresher interface {
	Fire() bool
}

// Run opens a window and drives s until the window closes, Escape is
// pressed, or a script finishes with ExitOnScriptDone. The session's
// scheduler must be a FrameScheduler or another scheduler with a Fire
// method. Start is called on the first frame.
func Run(s *Session, cfg RunConfig) error {
	pump, ok := s.Scheduler().(refresher)
	if !ok {
		return fmt.Errorf("mandala: Run needs a frame-pumped scheduler, got %T", s.Scheduler())
	}
	if cfg.ScreenshotDir != "" {
		s.SetScreenshotDir(cfg.ScreenshotDir)
	}
	hud, err := NewHUD(14)
	if err != nil {
		return err
	}
	hud.Visible = cfg.ShowHUD

	w, h := s.Size()
	if cfg.Width > 0 && cfg.Height > 0 {
		w, h = cfg.Width, cfg.Height
		s.Resize(w, h)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := &game{session: s, pump: pump, hud: hud, cfg: cfg, layoutW: w, layoutH: h}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// game adapts a Session to ebiten.Game. Ticks and drawing into the canvas
// happen in Update; Draw only presents the canvas.
type game struct {
	session *Session
	pump    refresher
	hud     *HUD
	cfg     RunConfig
	started bool

	layoutW, layoutH int
}

func (g *game) Update() error {
	s := g.session
	if !g.started {
		g.started = true
		s.Start()
	}
	if w, h := s.Size(); g.cfg.Resizable && (w != g.layoutW || h != g.layoutH) {
		s.Resize(g.layoutW, g.layoutH)
	}

	if !g.cfg.DisableInput {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		g.handleKeys()
	}
	if !s.ProcessInjected() && !g.cfg.DisableInput {
		g.handleMouse()
	}
	if r := g.cfg.Script; r != nil {
		r.Step(s)
	}

	g.pump.Fire()
	g.hud.Update(1 / float64(ebiten.TPS()))

	if r := g.cfg.Script; r != nil && g.cfg.ExitOnScriptDone && r.Done() && s.PendingScreenshots() == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) handleKeys() {
	s := g.session
	for key, c := range KeyBindings {
		if inpututil.IsKeyJustPressed(key) {
			s.HandleControl(c)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Visible = !g.hud.Visible
	}
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.SelectAlgorithmKey(i + 1)
		}
	}
}

func (g *game) handleMouse() {
	s := g.session
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.PointerPress(fx, fy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.PointerRelease(fx, fy)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.PointerMove(fx, fy)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.session.Canvas(), nil)
	g.hud.Draw(screen, g.session)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Resizable {
		g.layoutW, g.layoutH = outsideWidth, outsideHeight
	}
	return g.layoutW, g.layoutH
}

// Package mandala animates and renders symmetric generative mandalas on
// [Ebitengine].
//
// A [Session] owns the live [Config], the oscillator phases, and the
// algorithm [Registry]. Each tick it advances rotation, pulse, and any
// animated parameters, then hands a [FrameContext] snapshot to the selected
// [Algorithm]. The built-in vector and Kage shader algorithms live in the
// mandala/algorithms package.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	s := mandala.NewSession(mandala.SessionOptions{
//		Registry: algorithms.NewRegistry(),
//	})
//	mandala.Run(s, mandala.RunConfig{
//		Title: "Mandala", Width: 800, Height: 600, ShowHUD: true,
//	})
//
// For full control, implement [ebiten.Game] yourself, pump a
// [FrameScheduler] once per Update, and draw [Session.Canvas]:
//
//	type Game struct {
//		s     *mandala.Session
//		sched *mandala.FrameScheduler
//	}
//
//	func (g *Game) Update() error        { g.sched.Fire(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { s.DrawImage(g.s.Canvas(), nil) }
//	func (g *Game) Layout(w, h int) (int, int) { return 800, 600 }
//
// # Modes
//
// With Config.Animate set, [Session.Start] enters continuous mode: every
// refresh tick advances and draws, then schedules the next tick. Otherwise
// a frame is drawn only on request, through [Session.RequestRedraw] or any
// control-surface call that changes the picture.
//
// # Control surface
//
// Fields are read and written by their configuration names with
// [Session.Get] and [Session.Set]. [Session.ApplyPreset] and
// [Session.TransitionTo] switch between the built-in presets, the latter
// tweening numeric fields with [gween].
//
// Configuration files are YAML documents overlaying [DefaultConfig]; see
// [LoadConfig].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package mandala

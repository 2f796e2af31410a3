package mandala

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Default canvas size used when SessionOptions leaves it zero.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// SessionOptions configures a new Session. Zero fields take defaults.
type SessionOptions struct {
	// Width and Height set the canvas size. Default 800×600.
	Width, Height int

	// Config is the initial configuration. Nil means DefaultConfig().
	Config *Config

	// Registry holds the drawing plugins. Nil means an empty registry, which
	// draws with the built-in stub.
	Registry *Registry

	// Scheduler drives continuous mode. Nil means a new FrameScheduler.
	Scheduler Scheduler

	// Rand is the source used by Reseed. Nil means a randomly seeded PCG.
	Rand *rand.Rand

	// NewNoise builds the noise source for a seed. Nil means NewNoise.
	NewNoise func(seed int64) Noise

	// Palettes is the color table. Nil means DefaultPalettes.
	Palettes PaletteTable

	// Presets is the preset table. Nil means DefaultPresets().
	Presets []Preset

	// TickSeconds is the time step fed to preset transitions. Default 1/60.
	TickSeconds float32

	// Canvas is an optional render target. When nil the session allocates
	// one of Width×Height.
	Canvas *ebiten.Image
}

// Session is the frame orchestrator. It owns the configuration, the
// oscillator phases, the registry and the scheduler, and runs the per-tick
// update-then-draw sequence. A Session is not safe for concurrent use; all
// calls are expected on the loop goroutine.
type Session struct {
	cfg      Config
	phase    Phase
	registry *Registry
	sched    Scheduler
	rng      *rand.Rand
	palettes PaletteTable
	presets  []Preset

	newNoise  func(seed int64) Noise
	noise     Noise
	noiseSeed float64

	canvas        *ebiten.Image
	ownsCanvas    bool
	width, height int
	centerX       float64
	centerY       float64
	radius        float64

	running     bool
	tickFn      func()
	tickSeconds float32
	frame       uint64
	transition  *Transition

	stats         FrameStats
	lastFallback  string
	pointer       pointerState
	injectQueue   []syntheticPointerEvent
	screenshots   []string
	screenshotDir string
}

// NewSession creates a session. It does not draw or schedule anything until
// Start is called.
func NewSession(opts SessionOptions) *Session {
	s := &Session{
		registry:    opts.Registry,
		sched:       opts.Scheduler,
		rng:         opts.Rand,
		palettes:    opts.Palettes,
		presets:     opts.Presets,
		newNoise:    opts.NewNoise,
		tickSeconds: opts.TickSeconds,
	}
	if opts.Config != nil {
		s.cfg = *opts.Config
	} else {
		s.cfg = DefaultConfig()
	}
	if s.registry == nil {
		s.registry = NewRegistry()
	}
	if s.sched == nil {
		s.sched = &FrameScheduler{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.palettes == nil {
		s.palettes = DefaultPalettes
	}
	if s.presets == nil {
		s.presets = DefaultPresets()
	}
	if s.newNoise == nil {
		s.newNoise = NewNoise
	}
	if s.tickSeconds <= 0 {
		s.tickSeconds = 1.0 / 60
	}
	s.tickFn = s.tick

	w, h := opts.Width, opts.Height
	if opts.Canvas != nil {
		b := opts.Canvas.Bounds()
		w, h = b.Dx(), b.Dy()
		s.canvas = opts.Canvas
	}
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	if s.canvas == nil {
		s.canvas = ebiten.NewImage(w, h)
		s.ownsCanvas = true
	}
	s.setGeometry(w, h)
	s.refreshNoise()
	return s
}

// Start begins rendering: continuous mode when Config.Animate is set, else a
// single drawn frame.
func (s *Session) Start() {
	Logger().Info("session start",
		"algorithm", s.cfg.Algorithm,
		"animate", s.cfg.Animate,
		"width", s.width, "height", s.height)
	if s.cfg.Animate {
		s.startContinuous()
		return
	}
	s.draw()
}

// --- Tick ---

// tick is one continuous-mode frame: advance, draw, reschedule.
func (s *Session) tick() {
	if !s.running {
		return
	}
	s.advance()
	s.draw()
	if s.running {
		s.sched.Schedule(s.tickFn)
	}
}

// advance runs the update half of a tick in a fixed order: preset
// transition, rotation, pulse, then parameter animation.
func (s *Session) advance() {
	if t := s.transition; t != nil {
		t.Update(s.tickSeconds)
		if t.Done {
			s.transition = nil
		}
	}

	cfg := &s.cfg
	if cfg.AutoRotate {
		s.phase.Angle = Advance(s.phase.Angle, cfg.RotationSpeed, 1)
	}
	if cfg.PulseEffect {
		s.phase.Pulse = Advance(s.phase.Pulse, PulseIncrement, 1)
	}
	if cfg.Animation.Enabled {
		s.phase.Animation = Advance(s.phase.Animation, cfg.Animation.Speed, 1)
		s.animateParams()
	}

	s.frame++
	s.stats.Ticks++
}

// animateParams steps the oscillator of every enabled parameter and writes
// the sampled value into the config.
func (s *Session) animateParams() {
	a := &s.cfg.Animation
	for _, p := range Params {
		if !a.Params[p] {
			continue
		}
		osc := &s.phase.Params[p]
		osc.Step(a.Speeds[p], a.Speed)
		s.cfg.SetParamValue(p, SampleParam(p, osc.Phase, a.Ranges[p]))
	}
}

// draw resolves the current algorithm and paints one frame into the canvas.
// It never fails: unknown ids fall back and nothing is returned to the
// caller.
func (s *Session) draw() {
	s.refreshNoise()

	id := s.cfg.Algorithm
	entry, found := s.registry.Lookup(id)
	if !found {
		entry = s.registry.Fallback()
		if s.lastFallback != id {
			s.lastFallback = id
			Logger().Warn("unknown algorithm, drawing fallback",
				"requested", id, "fallback", entry.ID)
		}
	}

	fc := s.frameContext()
	start := time.Now()
	entry.Algorithm.Draw(s.canvas, &fc)
	s.stats.record(entry, !found, time.Since(start))

	s.flushScreenshots()
}

func (s *Session) frameContext() FrameContext {
	return FrameContext{
		CenterX:    s.centerX,
		CenterY:    s.centerY,
		Radius:     s.radius,
		Config:     s.cfg,
		Angle:      s.phase.Angle,
		PulsePhase: s.phase.Pulse,
		Noise:      s.noise,
		Palettes:   s.palettes,
		Frame:      s.frame,
	}
}

// refreshNoise rebuilds the noise source when the seed has changed.
func (s *Session) refreshNoise() {
	if s.noise != nil && s.noiseSeed == s.cfg.RandomSeed {
		return
	}
	s.noiseSeed = s.cfg.RandomSeed
	seed := s.cfg.RandomSeed
	if !finite(seed) {
		seed = 0
	}
	s.noise = s.newNoise(int64(math.Round(seed * 1000)))
}

// --- Mode control ---

func (s *Session) startContinuous() {
	if s.running {
		return
	}
	s.running = true
	s.sched.Schedule(s.tickFn)
	Logger().Info("continuous mode on")
}

func (s *Session) stopContinuous() {
	s.sched.Cancel()
	if !s.running {
		return
	}
	s.running = false
	if s.transition != nil {
		s.transition.Finish()
		s.transition = nil
	}
	Logger().Info("continuous mode off")
}

// SetAnimate switches between continuous and single-shot mode. Turning
// continuous mode off cancels the pending tick and draws one frame.
// Calling it with the current mode has no effect on the tick stream.
func (s *Session) SetAnimate(on bool) {
	s.cfg.Animate = on
	if on {
		s.startContinuous()
		return
	}
	s.stopContinuous()
	s.draw()
}

// ToggleContinuousMode flips Config.Animate and returns the new value.
func (s *Session) ToggleContinuousMode() bool {
	s.SetAnimate(!s.cfg.Animate)
	return s.cfg.Animate
}

// Running reports whether continuous mode is active.
func (s *Session) Running() bool {
	return s.running
}

// syncMode starts or stops continuous mode to match Config.Animate after a
// direct edit. It does not draw.
func (s *Session) syncMode() {
	switch {
	case s.cfg.Animate && !s.running:
		s.startContinuous()
	case !s.cfg.Animate && s.running:
		s.stopContinuous()
	}
}

// RequestRedraw draws one frame immediately in single-shot mode. In
// continuous mode the next tick picks up the change, so nothing happens.
func (s *Session) RequestRedraw() {
	if s.running {
		return
	}
	s.draw()
}

// --- Control surface ---

// SetAlgorithm selects a registered algorithm and requests a redraw. It
// returns false and changes nothing when id is not registered.
func (s *Session) SetAlgorithm(id string) bool {
	e, ok := s.registry.Lookup(id)
	if !ok {
		Logger().Debug("ignoring unknown algorithm", "id", id)
		return false
	}
	s.cfg.Algorithm = id
	Logger().Info("algorithm selected", "id", id, "name", e.Name)
	s.RequestRedraw()
	return true
}

// Reseed draws a new random seed and requests a redraw.
func (s *Session) Reseed() {
	s.cfg.Reseed(s.rng)
	s.RequestRedraw()
}

// Get returns the named config field. See Config.Get.
func (s *Session) Get(name string) (any, error) {
	return s.cfg.Get(name)
}

// Set assigns the named config field and requests a redraw. Setting
// "animate" switches the mode as SetAnimate does. "algorithm" is stored as
// given, even when not registered; the next draw falls back.
func (s *Session) Set(name string, value any) error {
	if name == "animate" {
		on, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %q got %T", ErrFieldType, name, value)
		}
		s.SetAnimate(on)
		return nil
	}
	if err := s.cfg.Set(name, value); err != nil {
		return err
	}
	s.RequestRedraw()
	return nil
}

// Update calls fn with the live config, applies any mode change, and
// requests a redraw.
func (s *Session) Update(fn func(*Config)) {
	fn(&s.cfg)
	s.syncMode()
	s.RequestRedraw()
}

// ApplyPreset overwrites the fields named by the preset, reseeds, and
// requests a redraw. Any running transition is dropped.
func (s *Session) ApplyPreset(name string) error {
	p, err := FindPreset(s.presets, name)
	if err != nil {
		return err
	}
	s.transition = nil
	p.ApplyTo(&s.cfg)
	s.cfg.Reseed(s.rng)
	Logger().Info("preset applied", "preset", p.Name)
	s.syncMode()
	s.RequestRedraw()
	return nil
}

// TransitionTo morphs toward the named preset over the given number of
// seconds. Numeric fields are tweened with fn (nil means linear); all other
// fields apply at once. In single-shot mode, or when the preset turns
// continuous mode off, the preset is applied directly and redrawn.
func (s *Session) TransitionTo(name string, seconds float32, fn ease.TweenFunc) error {
	if !s.running || seconds <= 0 {
		return s.ApplyPreset(name)
	}
	p, err := FindPreset(s.presets, name)
	if err != nil {
		return err
	}
	tween, rest := splitTweenable(p.Overrides)
	rest.ApplyTo(&s.cfg)
	if !s.cfg.Animate {
		// The preset leaves continuous mode, so there are no ticks to tween on.
		s.transition = nil
		tween.ApplyTo(&s.cfg)
		s.cfg.Reseed(s.rng)
		Logger().Info("preset applied", "preset", p.Name)
		s.syncMode()
		s.RequestRedraw()
		return nil
	}
	s.cfg.Reseed(s.rng)
	s.transition = NewTransition(&s.cfg, &tween, seconds, fn)
	if s.transition.Done {
		s.transition = nil
	}
	Logger().Info("preset transition", "preset", p.Name, "seconds", seconds)
	s.syncMode()
	return nil
}

// Transitioning reports whether a preset transition is in progress.
func (s *Session) Transitioning() bool {
	return s.transition != nil
}

// Presets returns the session's preset table.
func (s *Session) Presets() []Preset {
	return s.presets
}

// --- Geometry ---

// Resize changes the canvas size, recomputes the center and radius, and
// requests a redraw. A canvas supplied through SessionOptions is replaced by
// a session-owned one.
func (s *Session) Resize(w, h int) {
	if w <= 0 || h <= 0 || (w == s.width && h == s.height) {
		return
	}
	if s.ownsCanvas {
		s.canvas.Deallocate()
	}
	s.canvas = ebiten.NewImage(w, h)
	s.ownsCanvas = true
	s.setGeometry(w, h)
	Logger().Debug("canvas resized", "width", w, "height", h)
	s.RequestRedraw()
}

func (s *Session) setGeometry(w, h int) {
	s.width, s.height = w, h
	s.centerX, s.centerY, s.radius = computeGeometry(w, h)
}

// Size returns the canvas size.
func (s *Session) Size() (w, h int) {
	return s.width, s.height
}

// Geometry returns the pattern center and radius.
func (s *Session) Geometry() (cx, cy, radius float64) {
	return s.centerX, s.centerY, s.radius
}

// --- Accessors ---

// Config returns a copy of the current configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Phase returns a copy of the oscillator state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Frame returns the number of ticks run so far.
func (s *Session) Frame() uint64 {
	return s.frame
}

// Canvas returns the render target.
func (s *Session) Canvas() *ebiten.Image {
	return s.canvas
}

// Registry returns the session's algorithm registry.
func (s *Session) Registry() *Registry {
	return s.registry
}

// Scheduler returns the session's scheduler.
func (s *Session) Scheduler() Scheduler {
	return s.sched
}

// Algorithms lists the registered algorithms for menus.
func (s *Session) Algorithms() []AlgorithmInfo {
	return s.registry.List()
}

// ActiveAlgorithm returns the entry the next draw will use.
func (s *Session) ActiveAlgorithm() AlgorithmInfo {
	e := s.registry.Resolve(s.cfg.Algorithm)
	return AlgorithmInfo{ID: e.ID, Name: e.Name}
}

package mandala

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FallbackID is the algorithm preferred when a requested id is not registered.
const FallbackID = "simple"

// Algorithm is a rendering plugin. Draw must fill the background of dst and
// then paint the pattern described by fc. fc and everything reachable from it
// are valid only for the duration of the call and must not be modified.
type Algorithm interface {
	Draw(dst *ebiten.Image, fc *FrameContext)
}

// AlgorithmFunc adapts a plain function to the Algorithm interface.
type AlgorithmFunc func(dst *ebiten.Image, fc *FrameContext)

// Draw calls f(dst, fc).
func (f AlgorithmFunc) Draw(dst *ebiten.Image, fc *FrameContext) { f(dst, fc) }

// Entry is one registered algorithm. Entries are immutable once registered.
type Entry struct {
	ID        string
	Name      string
	Algorithm Algorithm
}

// AlgorithmInfo is the presentation view of an Entry used to populate menus.
type AlgorithmInfo struct {
	ID   string
	Name string
}

// Registry maps algorithm ids to drawing plugins. It is owned by a single
// Session and is not safe for concurrent mutation.
type Registry struct {
	entries map[string]Entry
	order   []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Register adds or replaces the algorithm under id. Re-registering an id
// keeps its original list position. Empty ids and nil algorithms are ignored.
func (r *Registry) Register(id, name string, a Algorithm) {
	if id == "" || a == nil {
		Logger().Warn("ignoring invalid algorithm registration", "id", id)
		return
	}
	if _, exists := r.entries[id]; !exists {
		r.order = append(r.order, id)
	}
	r.entries[id] = Entry{ID: id, Name: name, Algorithm: a}
}

// Lookup returns the entry for id and whether it exists.
func (r *Registry) Lookup(id string) (Entry, bool) {
	e, ok := r.entries[id]
	return e, ok
}

// Resolve returns the entry for id, or Fallback when id is not registered.
// It never fails.
func (r *Registry) Resolve(id string) Entry {
	if e, ok := r.entries[id]; ok {
		return e
	}
	return r.Fallback()
}

// Fallback returns the entry registered as FallbackID, else the first
// registered entry, else a built-in stub that fills the background and
// strokes one circle.
func (r *Registry) Fallback() Entry {
	if e, ok := r.entries[FallbackID]; ok {
		return e
	}
	if len(r.order) > 0 {
		return r.entries[r.order[0]]
	}
	return stubEntry
}

// List returns the registered algorithms in registration order.
func (r *Registry) List() []AlgorithmInfo {
	out := make([]AlgorithmInfo, 0, len(r.order))
	for _, id := range r.order {
		e := r.entries[id]
		out = append(out, AlgorithmInfo{ID: e.ID, Name: e.Name})
	}
	return out
}

// Len returns the number of registered algorithms.
func (r *Registry) Len() int {
	return len(r.order)
}

var stubEntry = Entry{
	ID:        FallbackID,
	Name:      "Fallback Algorithm",
	Algorithm: AlgorithmFunc(drawStub),
}

func drawStub(dst *ebiten.Image, fc *FrameContext) {
	cfg := fc.Config.Sanitized()
	dst.Fill(cfg.BackgroundColor.RGBA())
	vector.StrokeCircle(dst,
		float32(fc.CenterX), float32(fc.CenterY), float32(fc.Radius*0.5),
		float32(cfg.LineWidth), cfg.Color.NRGBA(1), true)
}

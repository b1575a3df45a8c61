// Package drag translates raw pointer coordinates into normalized star
// positions for exactly one active drag at a time.
package drag

// Positioner commits a clamped percentage position for a task.
// Implemented by the reposition use case.
type Positioner interface {
	Reposition(id int, x, y float64) error
}

// Bounds describes the canvas container in the pointer's coordinate space.
type Bounds struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// valid reports whether the bounds can be used for normalization.
func (b Bounds) valid() bool {
	return b.Width > 0 && b.Height > 0
}

// Engine is the drag state machine: IDLE, or DRAGGING a single task.
// Move events are applied in arrival order, so the committed position always
// corresponds to the last pointer sample before End.
type Engine struct {
	positioner Positioner
	activeID   int // 0 = IDLE
}

// NewEngine creates an Engine committing positions through the positioner.
func NewEngine(positioner Positioner) *Engine {
	return &Engine{positioner: positioner}
}

// Begin starts dragging the given task. Beginning while a drag is already
// active replaces the target (last-writer-wins): there is no queuing and no
// multi-touch support.
func (e *Engine) Begin(id int) {
	e.activeID = id
}

// Dragging reports whether a drag is active, and for which task.
func (e *Engine) Dragging() (int, bool) {
	return e.activeID, e.activeID != 0
}

// Move converts a raw pointer sample into percentage coordinates relative to
// the container bounds, clamps both axes to [0, 100], and commits the
// position. A no-op while IDLE or with degenerate bounds. A vanished drag
// target (absent ID) is absorbed silently.
func (e *Engine) Move(px, py float64, bounds Bounds) {
	if e.activeID == 0 || !bounds.valid() {
		return
	}

	x := clamp((px - bounds.Left) / bounds.Width * 100)
	y := clamp((py - bounds.Top) / bounds.Height * 100)

	// IDs are only ever sourced from the live collection; a failure here
	// means the task vanished mid-drag, which is not worth surfacing.
	_ = e.positioner.Reposition(e.activeID, x, y)
}

// End finishes the active drag from any state. Harmless while IDLE, which
// also makes it the recovery path if pointer capture was lost.
func (e *Engine) End() {
	e.activeID = 0
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

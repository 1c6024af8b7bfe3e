package vlist

// Keyed pairs a reconciliation key with rendered content. A keyed
// sequence in ascending index order, with keys stable across renders, is
// what lets the reconciler keep live nodes for items that stay visible
// while the window slides.
type Keyed struct {
	Key     any
	Content Component
}

type bindState int

const (
	stateUnbound bindState = iota
	statePending
	stateBound
)

// Window renders only the visible slice of a large ordered collection.
// It binds to an attachment slot, forwards configuration to a geometry
// engine scoped to the slot's host, and projects the engine's visible
// range into a keyed sequence. Range notifications arriving outside the
// Update call path are re-projected and pushed through OnOutput.
//
// A Window is single-threaded: updates and notifications are expected on
// one cooperative loop, never concurrently.
type Window[T any] struct {
	slot  *Slot
	sched *Scheduler

	state bindState
	retry bool // one deferred retry in flight at most

	engine     *Virtualizer[T]
	unsubRange func()

	items  []T
	render func(T, int) Component
	key    func(T) any

	rng Range

	outputs []func([]Keyed)

	lastCfg *Config[T]
}

// NewWindow creates a window renderer on the given attachment slot. The
// slot must be in child-content position; anything else is a setup error,
// reported immediately. The slot's host may still be unresolved — binding
// then defers until it appears.
//
// sched is the cooperative scheduler used for deferred binding retries;
// nil creates a private one, reachable via Scheduler.
func NewWindow[T any](slot *Slot, sched *Scheduler) (*Window[T], error) {
	if slot == nil || !slot.ChildContent() {
		return nil, ErrChildSlotRequired
	}
	if sched == nil {
		sched = NewScheduler()
	}
	return &Window[T]{
		slot:  slot,
		sched: sched,
		rng:   EmptyRange,
	}, nil
}

// Scheduler returns the scheduler the window defers retries on.
func (w *Window[T]) Scheduler() *Scheduler {
	return w.sched
}

// Bound reports whether the window has bound to its host and constructed
// its geometry engine.
func (w *Window[T]) Bound() bool {
	return w.state == stateBound
}

// Engine returns the geometry engine, or nil before binding completes.
func (w *Window[T]) Engine() *Virtualizer[T] {
	return w.engine
}

// Range returns the window's current visible range.
func (w *Window[T]) Range() Range {
	return w.rng
}

// OnOutput registers a callback that receives a fresh keyed sequence
// whenever one is produced outside the Update call path — the channel a
// host uses to learn about scroll-driven changes it never asked for.
// Returns an unsubscribe function.
func (w *Window[T]) OnOutput(fn func([]Keyed)) func() {
	w.outputs = append(w.outputs, fn)
	idx := len(w.outputs) - 1
	return func() {
		// Zero out to allow GC, don't reorder
		w.outputs[idx] = nil
	}
}

// Update applies one configuration and returns the current projection.
// Safe to call repeatedly with changing configurations. Before binding
// completes it returns an empty projection and arranges a retry of the
// same configuration on the next scheduler turn.
func (w *Window[T]) Update(cfg *Config[T]) []Keyed {
	if cfg == nil {
		cfg = NewConfig[T]()
	}
	w.lastCfg = cfg
	if w.state != stateBound && !w.bind() {
		return nil
	}
	w.apply(cfg)
	return w.Project()
}

// bind attempts to establish the engine and range listener. It reports
// success; on failure it has scheduled at most one deferred retry.
func (w *Window[T]) bind() bool {
	host := w.slot.Parent()
	if host == nil {
		w.state = statePending
		if !w.retry && !w.slot.Released() {
			w.retry = true
			w.sched.Defer(w.retryBind)
		}
		return false
	}
	// Constructed at most once per window; Bound is terminal.
	w.engine = NewVirtualizer[T](host)
	w.unsubRange = host.On(EventRangeChanged, w.rangeChanged)
	w.state = stateBound
	return true
}

// retryBind re-runs the last update from scratch on the next scheduler
// turn. A released slot makes it a no-op. On success the host hears
// about the new content through the range listener's push, not through
// any Update return value.
func (w *Window[T]) retryBind() {
	w.retry = false
	if w.slot.Released() || w.state == stateBound {
		return
	}
	w.Update(w.lastCfg)
}

// apply pushes one configuration into the engine.
func (w *Window[T]) apply(cfg *Config[T]) {
	w.items = cfg.items
	w.engine.SetItems(cfg.items)

	total := cfg.total
	if !cfg.hasTotal {
		total = len(cfg.items)
	}
	w.engine.SetTotalItems(total)

	w.engine.SetLayout(cfg.layout)

	target := cfg.scrollTarget
	if target == nil {
		target = w.engine.Container()
	}
	w.engine.SetScrollTarget(target)

	if cfg.render != nil {
		w.render = cfg.render
	}
	if cfg.key != nil {
		w.key = cfg.key
	}

	// Sticky: only an explicit request reaches the engine.
	if cfg.hasScrollIdx {
		w.engine.ScrollToIndex(cfg.scrollIdx)
	}
}

// rangeChanged is the single persistent range listener registered at bind
// time. Notifications are handled strictly in emission order.
func (w *Window[T]) rangeChanged(e Event) {
	w.rng = e.Range
	w.push(w.Project())
}

// Project renders the currently visible window as a keyed sequence in
// ascending index order. Indices beyond the held items are omitted.
func (w *Window[T]) Project() []Keyed {
	if w.rng.Empty() {
		return nil
	}
	out := make([]Keyed, 0, w.rng.Len())
	for i := w.rng.First; i <= w.rng.Last && i < len(w.items); i++ {
		if i < 0 {
			continue
		}
		item := w.items[i]
		out = append(out, Keyed{Key: w.keyFor(item), Content: w.renderFor(item, i)})
	}
	return out
}

// keyFor applies the configured key function; the default is the item
// itself, which is only safe for primitive or already-unique values.
func (w *Window[T]) keyFor(item T) any {
	if w.key != nil {
		return w.key(item)
	}
	return item
}

// renderFor applies the configured render function; the default is a
// diagnostic structural dump.
func (w *Window[T]) renderFor(item T, index int) Component {
	if w.render != nil {
		return w.render(item, index)
	}
	return Dump(item)
}

func (w *Window[T]) push(seq []Keyed) {
	for _, fn := range w.outputs {
		if fn != nil {
			fn(seq)
		}
	}
}

package hxtoggle

import (
	"log/slog"
	"sync"
)

// Envelope is the value handed to consumers, either through the ambient
// scope (Provide, FromContext) or directly to a RenderFunc.
//
// Toggle and Reset are created once per Engine, so every envelope of the
// same engine carries the same functions. Seq increases by exactly one per
// broadcast; consumers can use it to tell two envelopes apart.
type Envelope struct {
	On     bool
	Toggle func()
	Reset  func()
	Seq    uint64
}

// Engine owns a single on/off value.
//
// An Engine is either uncontrolled (it stores the value) or controlled (an
// owner supplied the value with WithOn and keeps it current with SetOn). The
// mode is chosen by New and never changes.
//
// Every change runs mutate, notify, broadcast in that order: the stored value
// is updated, the OnChange or OnReset callback observes it, then every View
// registered with Render receives a fresh Envelope.
//
// An Engine is not safe for concurrent use. Every Switch mounting the same
// engine takes the engine's request lock, so HTTP requests are serialized.
type Engine struct {
	mu sync.Mutex // request lock, held by Switch

	controlled bool
	on         bool // stored value, uncontrolled only
	external   bool // owner's value, controlled only
	initial    bool
	seq        uint64

	onChange func(bool)
	onReset  func(bool)
	logger   *slog.Logger

	toggle func()
	reset  func()
	views  []*View
}

// New creates an engine.
//
//	e := hxtoggle.New(hxtoggle.WithDefaultOn(true), hxtoggle.OnChange(save))
//
// Without WithOn the engine is uncontrolled and starts at WithDefaultOn
// (false unless set).
func New(opts ...Option) *Engine {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	e := &Engine{
		onChange: o.onChange,
		onReset:  o.onReset,
		logger:   o.logger,
	}
	if e.onChange == nil {
		e.onChange = func(bool) {}
	}
	if e.onReset == nil {
		e.onReset = func(bool) {}
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}

	if o.on != nil {
		e.controlled = true
		e.external = *o.on
		e.initial = *o.on
	} else {
		e.on = o.defaultOn
		e.initial = o.defaultOn
	}

	e.toggle = e.Toggle
	e.reset = e.Reset
	return e
}

// Controlled reports whether the engine defers its value to an owner.
func (e *Engine) Controlled() bool {
	return e.controlled
}

// Initial returns the value captured at construction.
func (e *Engine) Initial() bool {
	return e.initial
}

// On returns the current value.
func (e *Engine) On() bool {
	if e.controlled {
		return e.external
	}
	return e.on
}

// Seq returns the number of broadcasts so far.
func (e *Engine) Seq() uint64 {
	return e.seq
}

// Envelope returns a snapshot of the current state.
func (e *Engine) Envelope() Envelope {
	return Envelope{
		On:     e.On(),
		Toggle: e.toggle,
		Reset:  e.reset,
		Seq:    e.seq,
	}
}

// Toggle flips the value.
//
// Uncontrolled engines flip the stored value, call OnChange with it, and
// broadcast. Controlled engines only call OnChange with the negation of the
// owner's value; nothing is broadcast until the owner calls SetOn.
func (e *Engine) Toggle() {
	if e.controlled {
		next := !e.external
		e.logger.Debug("toggle requested", "next", next)
		e.onChange(next)
		return
	}

	e.on = !e.on
	e.logger.Debug("toggled", "on", e.on)
	e.onChange(e.on)
	e.broadcast()
}

// Reset restores the value captured at construction.
//
// Uncontrolled engines restore the stored value, call OnReset, and
// broadcast. Controlled engines only call OnReset with the construction
// value.
func (e *Engine) Reset() {
	if e.controlled {
		e.logger.Debug("reset requested", "on", e.initial)
		e.onReset(e.initial)
		return
	}

	e.on = e.initial
	e.logger.Debug("reset", "on", e.on)
	e.onReset(e.on)
	e.broadcast()
}

// SetOn updates the owner's value of a controlled engine and broadcasts it.
//
// It returns ErrModeFrozen for an uncontrolled engine: an engine created
// without WithOn cannot be taken over later.
func (e *Engine) SetOn(v bool) error {
	if !e.controlled {
		return ErrModeFrozen
	}
	e.external = v
	e.logger.Debug("owner set value", "on", v)
	e.broadcast()
	return nil
}

// broadcast delivers one new envelope to every live view.
func (e *Engine) broadcast() {
	e.seq++
	env := e.Envelope()

	views := make([]*View, len(e.views))
	copy(views, e.views)
	for _, v := range views {
		v.update(env)
	}
}

// detach removes v from the broadcast list.
func (e *Engine) detach(v *View) {
	for i, cur := range e.views {
		if cur == v {
			e.views = append(e.views[:i], e.views[i+1:]...)
			return
		}
	}
}

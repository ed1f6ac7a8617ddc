package hxtoggle

import "log/slog"

// DefaultThreshold is the number of toggles a Lockout allows before forcing
// the value off.
const DefaultThreshold = 4

// LockoutOption configures a Lockout.
type LockoutOption func(*Lockout)

// WithThreshold sets the number of free toggles. Values below 1 keep
// DefaultThreshold.
func WithThreshold(n int) LockoutOption {
	return func(l *Lockout) {
		if n > 0 {
			l.threshold = n
		}
	}
}

// WithFocus sets the control to focus whenever the value is driven off.
func WithFocus(f Focuser) LockoutOption {
	return func(l *Lockout) {
		l.focus = f
	}
}

// WithLockoutLogger sets the logger for the lockout and its engine.
func WithLockoutLogger(logger *slog.Logger) LockoutOption {
	return func(l *Lockout) {
		l.logger = logger
	}
}

// Lockout owns a controlled Engine and limits how often it can be toggled.
//
// Every toggle request increments a click counter. The first threshold
// toggles apply the requested value; from then on the value is forced off
// until Reset clears the counter. Exceeded reports the same boundary, so the
// reset affordance appears exactly when toggling stops working.
type Lockout struct {
	engine    *Engine
	threshold int
	count     int
	focus     Focuser
	logger    *slog.Logger
}

// NewLockout creates a lockout starting at on with a zero counter.
func NewLockout(on bool, opts ...LockoutOption) *Lockout {
	l := &Lockout{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}

	l.engine = New(
		WithOn(on),
		OnChange(l.handleChange),
		OnReset(l.Reset),
		WithLogger(l.logger),
	)
	return l
}

// Engine returns the controlled engine. Mount it, render from it, toggle it;
// the lockout answers every request.
func (l *Lockout) Engine() *Engine {
	return l.engine
}

// Count returns the number of toggles since the last reset.
func (l *Lockout) Count() int {
	return l.count
}

// Threshold returns the number of free toggles.
func (l *Lockout) Threshold() int {
	return l.threshold
}

// Exceeded reports whether further toggles are forced off.
func (l *Lockout) Exceeded() bool {
	return l.count >= l.threshold
}

// Reset clears the counter and sets the value to on, bypassing the lockout.
func (l *Lockout) Reset(on bool) {
	l.count = 0
	l.logger.Debug("lockout reset", "on", on)
	l.apply(on)
}

func (l *Lockout) handleChange(next bool) {
	on := next
	if l.count >= l.threshold {
		on = false
	}
	l.count++

	if on != next {
		l.logger.Warn("toggle locked out", "clicks", l.count, "threshold", l.threshold)
	}
	if !on && l.focus != nil {
		l.focus.Focus()
	}
	l.apply(on)
}

func (l *Lockout) apply(on bool) {
	if err := l.engine.SetOn(on); err != nil {
		l.logger.Error("lockout engine rejected value", "on", on, "error", err)
	}
}

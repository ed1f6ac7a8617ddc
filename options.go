package hxtoggle

import "log/slog"

// Option configures an Engine.
type Option func(*options)

type options struct {
	on        *bool
	defaultOn bool
	onChange  func(bool)
	onReset   func(bool)
	logger    *slog.Logger
}

// WithOn puts the engine in controlled mode with v as the current value.
//
// A controlled engine never stores state of its own. Toggle and Reset only
// report the requested value through OnChange and OnReset; the owner answers
// by calling Engine.SetOn.
func WithOn(v bool) Option {
	return func(o *options) {
		o.on = &v
	}
}

// WithDefaultOn sets the initial value of an uncontrolled engine.
// Ignored when WithOn is also given.
func WithDefaultOn(v bool) Option {
	return func(o *options) {
		o.defaultOn = v
	}
}

// OnChange sets the callback fired with the next value after every toggle.
func OnChange(fn func(on bool)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// OnReset sets the callback fired with the restored value after every reset.
func OnReset(fn func(on bool)) Option {
	return func(o *options) {
		o.onReset = fn
	}
}

// WithLogger sets the logger used for state change diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

package hxtoggle

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// RenderFunc produces markup for one envelope.
type RenderFunc func(env Envelope) templ.Component

// View is the output of a RenderFunc registered with Engine.Render.
//
// The engine calls the function once at registration and again,
// synchronously, on every change; each result replaces the previous one.
// A View is itself a templ.Component rendering the latest result.
type View struct {
	engine *Engine
	fn     RenderFunc
	env    Envelope
	out    templ.Component
	closed bool
}

// Render registers fn for render injection and returns its view.
//
// Unlike the ambient scope, the envelope is a direct argument, so the
// function can never observe a missing scope:
//
//	v := engine.Render(func(env hxtoggle.Envelope) templ.Component {
//	    return label(env.On)
//	})
func (e *Engine) Render(fn RenderFunc) *View {
	v := &View{engine: e, fn: fn}
	v.update(e.Envelope())
	e.views = append(e.views, v)
	return v
}

// Envelope returns the envelope the current output was rendered from.
func (v *View) Envelope() Envelope {
	return v.env
}

// Output returns the current output. May be nil if the RenderFunc returned nil.
func (v *View) Output() templ.Component {
	return v.out
}

// Close stops the view from receiving further broadcasts. The last output
// stays renderable.
func (v *View) Close() {
	if v.closed {
		return
	}
	v.closed = true
	v.engine.detach(v)
}

// Render writes the current output.
func (v *View) Render(ctx context.Context, w io.Writer) error {
	if v.out == nil {
		return nil
	}
	return v.out.Render(ctx, w)
}

func (v *View) update(env Envelope) {
	v.env = env
	v.out = v.fn(env)
}

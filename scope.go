package hxtoggle

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

type scopeKey struct{}

// WithEnvelope returns a context carrying env as the nearest toggle scope.
func WithEnvelope(ctx context.Context, env Envelope) context.Context {
	return context.WithValue(ctx, scopeKey{}, env)
}

// FromContext returns the envelope of the nearest enclosing scope.
// Outside any scope it returns ErrMissingScope; there is no default.
func FromContext(ctx context.Context) (Envelope, error) {
	env, ok := ctx.Value(scopeKey{}).(Envelope)
	if !ok {
		return Envelope{}, ErrMissingScope
	}
	return env, nil
}

// Provide renders children inside a scope carrying env.
//
// Every descendant reads the same envelope through FromContext, OnText,
// OffText, Button, Connected or a Wrapped consumer. A nested Provide shadows
// the outer one for its own subtree.
func Provide(env Envelope, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if children == nil {
			return nil
		}
		return children.Render(WithEnvelope(ctx, env), w)
	})
}

// Provider returns a view providing the engine's newest envelope to children.
// Each broadcast produces a new scope value; the children themselves are
// fixed.
func (e *Engine) Provider(children templ.Component) *View {
	return e.Render(func(env Envelope) templ.Component {
		return Provide(env, children)
	})
}

// Connected hands the envelope of the nearest scope to fn.
//
// Use it to bridge the ambient scope back into render injection, for example
// a navigation bar far from the provider:
//
//	hxtoggle.Connected(func(env hxtoggle.Envelope) templ.Component {
//	    return navToggle(env.On)
//	})
//
// Rendering fails with ErrMissingScope when no provider encloses it.
func Connected(fn RenderFunc) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		env, err := FromContext(ctx)
		if err != nil {
			return err
		}
		out := fn(env)
		if out == nil {
			return nil
		}
		return out.Render(ctx, w)
	})
}

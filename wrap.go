package hxtoggle

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ConsumerProps is what a wrapped consumer renders from.
type ConsumerProps struct {
	On     bool
	Toggle func()
	Reset  func()

	// Attrs holds the caller's own data, passed through untouched.
	Attrs templ.Attributes

	// Ref is the caller's forward reference, if any. It never appears in
	// Attrs.
	Ref *Ref
}

// Consumer is a component that renders toggle state.
//
// Subtext is an optional secondary part, rendered on its own by callers
// (for example only while the toggle is on). WithToggle keeps it.
type Consumer struct {
	Render  func(p ConsumerProps) templ.Component
	Subtext templ.Component
}

// Inputs are the caller-supplied values for a Wrapped consumer.
// Any non-nil On, Toggle or Reset overrides the scope's value.
type Inputs struct {
	On     *bool
	Toggle func()
	Reset  func()
	Attrs  templ.Attributes
	Ref    *Ref
}

// Wrapped is a Consumer fed from the nearest toggle scope.
type Wrapped struct {
	// Subtext is the wrapped consumer's Subtext.
	Subtext templ.Component

	consumer Consumer
}

// WithToggle wraps c so that it reads on, toggle and reset from the nearest
// scope:
//
//	var MyToggle = hxtoggle.WithToggle(hxtoggle.Consumer{
//	    Render:  myToggle,
//	    Subtext: myToggleSubtext(),
//	})
//
//	@MyToggle.Render(hxtoggle.Inputs{Ref: ref})
//	@MyToggle.Subtext
func WithToggle(c Consumer) *Wrapped {
	return &Wrapped{
		Subtext:  c.Subtext,
		consumer: c,
	}
}

// Render returns the consumer's output for the given inputs. Rendering fails
// with ErrMissingScope when no provider encloses it.
func (wr *Wrapped) Render(in Inputs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		env, err := FromContext(ctx)
		if err != nil {
			return fmt.Errorf("wrapped consumer: %w", err)
		}
		if wr.consumer.Render == nil {
			return nil
		}
		out := wr.consumer.Render(mergeInputs(env, in))
		if out == nil {
			return nil
		}
		return out.Render(ctx, w)
	})
}

// mergeInputs layers caller inputs over the scope envelope.
func mergeInputs(env Envelope, in Inputs) ConsumerProps {
	p := ConsumerProps{
		On:     env.On,
		Toggle: env.Toggle,
		Reset:  env.Reset,
		Attrs:  in.Attrs,
		Ref:    in.Ref,
	}
	if in.On != nil {
		p.On = *in.On
	}
	if in.Toggle != nil {
		p.Toggle = in.Toggle
	}
	if in.Reset != nil {
		p.Reset = in.Reset
	}
	return p
}

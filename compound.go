package hxtoggle

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// OnText renders children while the nearest scope is on.
func OnText(children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		env, err := FromContext(ctx)
		if err != nil {
			return fmt.Errorf("OnText: %w", err)
		}
		if !env.On || children == nil {
			return nil
		}
		return children.Render(ctx, w)
	})
}

// OffText renders children while the nearest scope is off.
func OffText(children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		env, err := FromContext(ctx)
		if err != nil {
			return fmt.Errorf("OffText: %w", err)
		}
		if env.On || children == nil {
			return nil
		}
		return children.Render(ctx, w)
	})
}

// Button renders a switch control bound to the nearest scope.
//
// Inside a Switch the button carries the HTMX attributes for the switch's
// toggle action, so clicking it calls Engine.Toggle on the server. Elsewhere
// it renders the bare control.
func Button() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		env, err := FromContext(ctx)
		if err != nil {
			return fmt.Errorf("Button: %w", err)
		}

		attrs := templ.Attributes{
			"type":         "button",
			"role":         "switch",
			"class":        "toggle-button",
			"aria-checked": strconv.FormatBool(env.On),
			"data-seq":     strconv.FormatUint(env.Seq, 10),
		}
		if wire, ok := wireFromContext(ctx); ok {
			for k, v := range wire.Toggle {
				attrs[k] = v
			}
		}

		if _, err := io.WriteString(w, "<button"); err != nil {
			return err
		}
		if err := WriteAttrs(w, attrs); err != nil {
			return err
		}
		_, err = io.WriteString(w, ">"+stateLabel(env.On)+"</button>")
		return err
	})
}

func stateLabel(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

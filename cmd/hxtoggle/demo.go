package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/a-h/templ"

	"github.com/pthm/hxtoggle"
	"github.com/pthm/hxtoggle/internal/config"
)

// myToggle is a consumer written without knowledge of hxtoggle scopes,
// wrapped so it reads the nearest one.
var myToggle = hxtoggle.WithToggle(hxtoggle.Consumer{
	Render:  renderMyToggle,
	Subtext: templ.Raw(`<p class="my-toggle-subtext">Switched on. Click again to turn it off.</p>`),
})

func renderMyToggle(p hxtoggle.ConsumerProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		attrs := templ.Attributes{
			"type":         "button",
			"class":        "my-toggle",
			"aria-pressed": strconv.FormatBool(p.On),
		}
		for k, v := range p.Attrs {
			attrs[k] = v
		}
		if p.Ref != nil {
			attrs["id"] = p.Ref.ID()
		}
		if wire, ok := hxtoggle.WireFromContext(ctx); ok {
			for k, v := range wire.Toggle {
				attrs[k] = v
			}
		}

		if _, err := io.WriteString(w, "<button"); err != nil {
			return err
		}
		if err := hxtoggle.WriteAttrs(w, attrs); err != nil {
			return err
		}
		label := "Turn on"
		if p.On {
			label = "Turn off"
		}
		_, err := io.WriteString(w, ">"+label+"</button>")
		return err
	})
}

// demo is a click-limited switch plus a navigation switch sharing its
// engine.
type demo struct {
	ref  *hxtoggle.Ref
	lock *hxtoggle.Lockout
	main *hxtoggle.Switch
	nav  *hxtoggle.Switch
}

func newDemo(cfg config.Config, logger *slog.Logger) *demo {
	d := &demo{ref: hxtoggle.NewRef()}
	d.lock = hxtoggle.NewLockout(cfg.Toggle.DefaultOn,
		hxtoggle.WithThreshold(cfg.Toggle.Threshold),
		hxtoggle.WithFocus(d.ref),
		hxtoggle.WithLockoutLogger(logger),
	)

	engine := d.lock.Engine()
	d.main = hxtoggle.NewSwitch("main", engine, d.mainView,
		hxtoggle.WithSwitchLockout(d.lock),
		hxtoggle.WithSwitchRef(d.ref),
		hxtoggle.WithSwitchLogger(logger),
	)
	d.nav = hxtoggle.NewSwitch("nav", engine, navView,
		hxtoggle.WithSwitchRef(d.ref),
		hxtoggle.WithSwitchLogger(logger),
	)
	return d
}

func (d *demo) mainView(env hxtoggle.Envelope) templ.Component {
	return templ.Join(
		myToggle.Render(hxtoggle.Inputs{
			Ref:   d.ref,
			Attrs: templ.Attributes{"data-variant": "primary"},
		}),
		hxtoggle.OnText(myToggle.Subtext),
		hxtoggle.OnText(templ.Raw("<p>The button is on</p>")),
		hxtoggle.OffText(templ.Raw("<p>The button is off</p>")),
		hxtoggle.Button(),
	)
}

func navView(env hxtoggle.Envelope) templ.Component {
	return templ.Join(
		hxtoggle.Connected(func(env hxtoggle.Envelope) templ.Component {
			return templ.Raw(`<span class="nav-state">` + stateText(env.On) + `</span>`)
		}),
		hxtoggle.Button(),
	)
}

func stateText(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

const focusScript = `<script>
document.body.addEventListener("toggle:focus", function (e) {
  var el = document.getElementById(e.detail.id);
  if (el) el.focus();
});
</script>`

func (d *demo) page() templ.Component {
	return templ.Join(
		templ.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>hxtoggle</title>`+
			`<script src="https://unpkg.com/htmx.org@2.0.4"></script></head><body><nav>`),
		d.nav.Locked(),
		templ.Raw(`</nav><main>`),
		d.main.Locked(),
		templ.Raw(`</main>`),
		hxtoggle.ToastContainer(),
		templ.Raw(focusScript+`</body></html>`),
	)
}

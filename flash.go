package hxtoggle

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Flash levels for toast notifications.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashWarning = "warning"
	FlashInfo    = "info"
)

// Flash is a one-time notification rendered as an out-of-band swap into the
// #toasts container.
type Flash struct {
	Level   string // success, error, warning, info
	Message string
}

// FlashesOOB renders flashes as an OOB swap appending to #toasts.
// Renders nothing for an empty slice.
func FlashesOOB(flashes []Flash) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(flashes) == 0 {
			return nil
		}
		if _, err := io.WriteString(w, `<div id="toasts" hx-swap-oob="beforeend">`); err != nil {
			return err
		}
		for _, f := range flashes {
			toast := `<div class="toast toast-` + templ.EscapeString(f.Level) +
				`" data-auto-dismiss="3000">` + templ.EscapeString(f.Message) + `</div>`
			if _, err := io.WriteString(w, toast); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}

// ToastContainer returns the container targeted by flash OOB swaps.
// Place it once in the page layout.
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="toasts" class="toast-container"></div>`)
		return err
	})
}

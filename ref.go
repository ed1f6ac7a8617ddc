package hxtoggle

import "github.com/google/uuid"

// Focuser is implemented by anything that can take input focus.
type Focuser interface {
	Focus()
}

// Ref is a forward reference to a rendered control.
//
// The owner of a toggle holds the Ref and hands it down through
// Inputs.Ref; the wrapped consumer renders its control with id Ref.ID() and
// may install its own Focuser with Set. When the owner drives the value to
// false it calls Focus, which is recorded for the HTTP response (see
// TakeFocus) and forwarded to the installed target.
type Ref struct {
	id      string
	target  Focuser
	pending bool
}

// NewRef creates a reference with a unique DOM id.
func NewRef() *Ref {
	return &Ref{id: "toggle-" + uuid.NewString()}
}

// ID returns the DOM id the referenced control should render with.
func (r *Ref) ID() string {
	return r.id
}

// Set installs the focus target. Passing nil clears it.
func (r *Ref) Set(f Focuser) {
	r.target = f
}

// Focus records a focus request and forwards it to the target, if any.
func (r *Ref) Focus() {
	r.pending = true
	if r.target != nil {
		r.target.Focus()
	}
}

// TakeFocus reports whether Focus was called since the last TakeFocus.
func (r *Ref) TakeFocus() bool {
	p := r.pending
	r.pending = false
	return p
}

package hxtoggle

import (
	"strings"
	"testing"
)

func TestNewRefIDs(t *testing.T) {
	a, b := NewRef(), NewRef()
	if !strings.HasPrefix(a.ID(), "toggle-") {
		t.Errorf("ID() = %q, want toggle- prefix", a.ID())
	}
	if a.ID() == b.ID() {
		t.Error("two refs share an id")
	}
}

func TestRefForwardsFocus(t *testing.T) {
	f := &focusCounter{}
	ref := NewRef()
	ref.Set(f)
	ref.Focus()
	if f.calls != 1 {
		t.Errorf("target focus calls = %d, want 1", f.calls)
	}

	ref.Set(nil)
	ref.Focus()
	if f.calls != 1 {
		t.Errorf("cleared target still focused")
	}
	if !ref.TakeFocus() {
		t.Error("TakeFocus() = false after Focus")
	}
}

package hxtoggle

import (
	"errors"
	"reflect"
	"testing"

	"github.com/a-h/templ"
)

func TestUncontrolledToggleParity(t *testing.T) {
	for k := 0; k <= 9; k++ {
		e := New()
		for i := 0; i < k; i++ {
			e.Toggle()
		}
		if got, want := e.On(), k%2 == 1; got != want {
			t.Errorf("after %d toggles On() = %v, want %v", k, got, want)
		}
	}
}

func TestDefaultOnIsFalse(t *testing.T) {
	e := New()
	if e.On() {
		t.Error("On() = true, want false")
	}
	if e.Controlled() {
		t.Error("Controlled() = true, want false")
	}
}

func TestControlledIgnoresToggle(t *testing.T) {
	var requested []bool
	e := New(WithOn(true), OnChange(func(on bool) {
		requested = append(requested, on)
	}))

	for i := 0; i < 3; i++ {
		e.Toggle()
		if !e.On() {
			t.Fatalf("toggle %d: On() = false, want owner value true", i+1)
		}
	}

	if len(requested) != 3 {
		t.Fatalf("OnChange called %d times, want 3", len(requested))
	}
	for i, on := range requested {
		if on {
			t.Errorf("request %d = true, want false", i)
		}
	}
	if e.Seq() != 0 {
		t.Errorf("Seq() = %d, want 0 (no broadcast without SetOn)", e.Seq())
	}
}

func TestControlledWithDefaultOnUsesOwnerValue(t *testing.T) {
	e := New(WithDefaultOn(true), WithOn(false))
	if e.On() {
		t.Error("On() = true, want owner value false")
	}
	if e.Initial() {
		t.Error("Initial() = true, want false")
	}
}

func TestSetOn(t *testing.T) {
	e := New(WithOn(false))
	if err := e.SetOn(true); err != nil {
		t.Fatalf("SetOn() error = %v", err)
	}
	if !e.On() {
		t.Error("On() = false after SetOn(true)")
	}
	if e.Seq() != 1 {
		t.Errorf("Seq() = %d, want 1", e.Seq())
	}
}

func TestSetOnUncontrolledIsRefused(t *testing.T) {
	e := New(WithDefaultOn(true))
	err := e.SetOn(false)
	if !errors.Is(err, ErrModeFrozen) {
		t.Fatalf("SetOn() error = %v, want ErrModeFrozen", err)
	}
	if !e.On() || e.Controlled() {
		t.Error("uncontrolled engine changed after refused SetOn")
	}
}

func TestResetRestoresInitial(t *testing.T) {
	for _, initial := range []bool{false, true} {
		for k := 0; k < 5; k++ {
			var resets []bool
			e := New(WithDefaultOn(initial), OnReset(func(on bool) {
				resets = append(resets, on)
			}))
			for i := 0; i < k; i++ {
				e.Toggle()
			}
			e.Reset()

			if e.On() != initial {
				t.Errorf("initial=%v k=%d: On() after Reset = %v", initial, k, e.On())
			}
			if len(resets) != 1 || resets[0] != initial {
				t.Errorf("initial=%v k=%d: OnReset calls = %v", initial, k, resets)
			}
		}
	}
}

func TestControlledResetReportsInitial(t *testing.T) {
	var resets []bool
	e := New(WithOn(true), OnReset(func(on bool) {
		resets = append(resets, on)
	}))
	_ = e.SetOn(false)
	e.Reset()

	if len(resets) != 1 || !resets[0] {
		t.Fatalf("OnReset calls = %v, want [true]", resets)
	}
	if e.On() {
		t.Error("controlled Reset mutated the value")
	}
}

func TestEndToEnd(t *testing.T) {
	var changes, resets []bool
	e := New(
		WithDefaultOn(true),
		OnChange(func(on bool) { changes = append(changes, on) }),
		OnReset(func(on bool) { resets = append(resets, on) }),
	)

	if !e.On() {
		t.Fatal("On() = false, want true")
	}

	e.Toggle()
	if e.On() {
		t.Fatal("On() = true after toggle, want false")
	}
	if !reflect.DeepEqual(changes, []bool{false}) {
		t.Fatalf("changes = %v, want [false]", changes)
	}

	e.Reset()
	if !e.On() {
		t.Fatal("On() = false after reset, want true")
	}
	if !reflect.DeepEqual(resets, []bool{true}) {
		t.Fatalf("resets = %v, want [true]", resets)
	}
}

func TestOnChangeSeesCommittedValue(t *testing.T) {
	var e *Engine
	var seen []bool
	e = New(OnChange(func(next bool) {
		seen = append(seen, e.On() == next)
	}))

	e.Toggle()
	e.Toggle()

	for i, ok := range seen {
		if !ok {
			t.Errorf("OnChange %d ran before the flip was visible", i)
		}
	}
}

func TestNotifyBeforeBroadcast(t *testing.T) {
	var order []string
	e := New(OnChange(func(bool) { order = append(order, "change") }))
	e.Render(func(env Envelope) templ.Component {
		order = append(order, "render")
		return nil
	})
	order = nil

	e.Toggle()

	if !reflect.DeepEqual(order, []string{"change", "render"}) {
		t.Errorf("order = %v, want [change render]", order)
	}
}

func TestStableHandles(t *testing.T) {
	e := New()
	first := e.Envelope()
	e.Toggle()
	e.Reset()
	second := e.Envelope()

	if reflect.ValueOf(first.Toggle).Pointer() != reflect.ValueOf(second.Toggle).Pointer() {
		t.Error("Toggle handle changed between envelopes")
	}
	if reflect.ValueOf(first.Reset).Pointer() != reflect.ValueOf(second.Reset).Pointer() {
		t.Error("Reset handle changed between envelopes")
	}

	second.Toggle()
	if !e.On() {
		t.Error("envelope Toggle did not flip the engine")
	}
}

func TestSeqAdvancesOncePerChange(t *testing.T) {
	e := New()
	e.Toggle()
	e.Toggle()
	e.Reset()
	if e.Seq() != 3 {
		t.Errorf("Seq() = %d, want 3", e.Seq())
	}
}

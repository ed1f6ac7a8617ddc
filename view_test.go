package hxtoggle

import (
	"bytes"
	"context"
	"testing"

	"github.com/a-h/templ"
)

func TestViewReceivesEveryChange(t *testing.T) {
	e := New()
	var seen []bool
	v := e.Render(func(env Envelope) templ.Component {
		seen = append(seen, env.On)
		return templ.Raw(stateLabel(env.On))
	})

	e.Toggle()
	e.Toggle()

	want := []bool{false, true, false}
	if len(seen) != len(want) {
		t.Fatalf("render calls = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("render %d saw %v, want %v", i, seen[i], want[i])
		}
	}
	if v.Envelope().Seq != 2 {
		t.Errorf("view Seq = %d, want 2", v.Envelope().Seq)
	}
}

func TestViewRendersLatestOutput(t *testing.T) {
	e := New(WithDefaultOn(true))
	v := e.Render(func(env Envelope) templ.Component {
		return templ.Raw(stateLabel(env.On))
	})
	e.Toggle()

	var buf bytes.Buffer
	if err := v.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "off" {
		t.Errorf("Render() = %q, want %q", buf.String(), "off")
	}
}

func TestViewClose(t *testing.T) {
	e := New()
	calls := 0
	v := e.Render(func(env Envelope) templ.Component {
		calls++
		return nil
	})
	v.Close()
	v.Close()
	e.Toggle()

	if calls != 1 {
		t.Errorf("render calls = %d after Close, want 1", calls)
	}
	if v.Output() != nil {
		t.Error("Output() != nil")
	}

	var buf bytes.Buffer
	if err := v.Render(context.Background(), &buf); err != nil || buf.Len() != 0 {
		t.Errorf("Render() = %q, %v; want empty", buf.String(), err)
	}
}

func TestViewsShareEnvelope(t *testing.T) {
	e := New()
	a := e.Render(func(Envelope) templ.Component { return nil })
	b := e.Render(func(Envelope) templ.Component { return nil })
	e.Toggle()

	if a.Envelope().On != b.Envelope().On || a.Envelope().Seq != b.Envelope().Seq {
		t.Error("views saw different envelopes for the same change")
	}
}

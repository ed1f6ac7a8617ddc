package hxtoggle

import (
	"errors"
	"reflect"
	"testing"
)

func TestResultBuilders(t *testing.T) {
	props := SwitchProps{Seq: 2, On: true}
	r := OK(props).
		Flash(FlashWarning, "max clicks exceeded").
		Trigger(EventChanged, map[string]any{"on": true}).
		Trigger("plain").
		Header("X-Test", "1").
		Status(201)

	if r.GetProps() != props {
		t.Errorf("GetProps() = %+v", r.GetProps())
	}
	if r.GetErr() != nil {
		t.Errorf("GetErr() = %v", r.GetErr())
	}
	if want := []Flash{{Level: FlashWarning, Message: "max clicks exceeded"}}; !reflect.DeepEqual(r.GetFlashes(), want) {
		t.Errorf("GetFlashes() = %v", r.GetFlashes())
	}
	order, triggers := r.GetTriggers()
	if !reflect.DeepEqual(order, []string{EventChanged, "plain"}) {
		t.Errorf("order = %v", order)
	}
	if triggers["plain"] != nil {
		t.Errorf("plain data = %v, want nil", triggers["plain"])
	}
	if r.GetHeaders()["X-Test"] != "1" || r.GetStatus() != 201 {
		t.Errorf("headers = %v, status = %d", r.GetHeaders(), r.GetStatus())
	}
}

func TestResultErr(t *testing.T) {
	boom := errors.New("boom")
	r := Err(SwitchProps{}, boom)
	if !errors.Is(r.GetErr(), boom) {
		t.Errorf("GetErr() = %v", r.GetErr())
	}
}

func TestResultTriggerKeepsFirstPosition(t *testing.T) {
	r := OK(0).Trigger("a").Trigger("b").Trigger("a", map[string]any{"x": 1})
	order, triggers := r.GetTriggers()
	if !reflect.DeepEqual(order, []string{"a", "b"}) {
		t.Errorf("order = %v", order)
	}
	if !reflect.DeepEqual(triggers["a"], map[string]any{"x": 1}) {
		t.Errorf("a = %v", triggers["a"])
	}
}

func TestResultIsCopyOnWrite(t *testing.T) {
	base := OK(0).Trigger("a").Header("h", "1")
	_ = base.Trigger("b").Header("h", "2")

	order, _ := base.GetTriggers()
	if len(order) != 1 {
		t.Errorf("base order mutated: %v", order)
	}
	if base.GetHeaders()["h"] != "1" {
		t.Errorf("base headers mutated: %v", base.GetHeaders())
	}
}

package hxtoggle

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
)

func TestIsHTMX(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMX(r) {
		t.Error("IsHTMX() = true without header")
	}
	r.Header.Set("HX-Request", "true")
	if !IsHTMX(r) {
		t.Error("IsHTMX() = false with header")
	}
}

func TestRenderHelper(t *testing.T) {
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Render(rec, r, templ.Raw("<p>hi</p>")); err != nil {
		t.Fatal(err)
	}
	if rec.Body.String() != "<p>hi</p>" {
		t.Errorf("body = %q", rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestBuildTriggerHeader(t *testing.T) {
	tests := []struct {
		name     string
		order    []string
		triggers map[string]any
		want     string
	}{
		{"none", nil, nil, ""},
		{"single plain", []string{"a"}, map[string]any{"a": nil}, "a"},
		{"single with data", []string{"a"}, map[string]any{"a": map[string]any{"on": false}}, `{"a":{"on":false}}`},
		{"mixed", []string{"a", "b"}, map[string]any{"a": nil, "b": map[string]any{"id": "x"}}, `{"a":true,"b":{"id":"x"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BuildTriggerHeader(tt.order, tt.triggers); got != tt.want {
				t.Errorf("BuildTriggerHeader() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteAttrs(t *testing.T) {
	var buf bytes.Buffer
	err := WriteAttrs(&buf, templ.Attributes{
		"title":    `a "b"`,
		"disabled": true,
		"hidden":   false,
		"tabindex": 0,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := ` disabled tabindex="0" title="a &#34;b&#34;"`
	if buf.String() != want {
		t.Errorf("WriteAttrs() = %q, want %q", buf.String(), want)
	}
}

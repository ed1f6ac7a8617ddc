package hxtoggle

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRegistryCSRF(t *testing.T) {
	sw, reg := newTestSwitch(t, New())

	tests := []struct {
		name   string
		method string
		path   string
		htmx   bool
		want   int
	}{
		{"post without htmx", http.MethodPost, "/toggle", false, http.StatusForbidden},
		{"post with htmx", http.MethodPost, "/toggle", true, http.StatusOK},
		{"get without htmx", http.MethodGet, "/", false, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, sw.Prefix()+tt.path, nil)
			if tt.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rec := httptest.NewRecorder()
			reg.Handler().ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
	if sw.Engine().Seq() != 1 {
		t.Errorf("Seq() = %d, want exactly one accepted toggle", sw.Engine().Seq())
	}
}

func TestRegistryLookup(t *testing.T) {
	sw, reg := newTestSwitch(t, New())
	got, ok := reg.Lookup(sw.Prefix())
	if !ok || got != HXComponent(sw) {
		t.Errorf("Lookup() = %v, %v", got, ok)
	}
	if _, ok := reg.Lookup("/_c/missing"); ok {
		t.Error("Lookup() found a missing prefix")
	}
	if sw.Encoder() != reg.Encoder() {
		t.Error("registry did not hand its encoder to the switch")
	}
}

func TestRegistryCollisionPanics(t *testing.T) {
	sw, reg := newTestSwitch(t, New())
	defer func() {
		if recover() == nil {
			t.Error("expected panic on prefix collision")
		}
	}()
	reg.Add(sw)
}

func TestDefaultErrorHandler(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrDecryptFailed, http.StatusBadRequest},
		{ErrSignatureInvalid, http.StatusBadRequest},
		{ErrInvalidFormat, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		DefaultErrorHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)
		if rec.Code != tt.want {
			t.Errorf("%v: status = %d, want %d", tt.err, rec.Code, tt.want)
		}
	}
}

package hxtoggleecho

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm/hxtoggle"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newSwitch(engine *hxtoggle.Engine) *hxtoggle.Switch {
	return hxtoggle.NewSwitch("echo", engine, func(env hxtoggle.Envelope) templ.Component {
		return hxtoggle.Button()
	})
}

func post(h http.Handler, path string, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMountRoutesSwitch(t *testing.T) {
	e := echo.New()
	reg := Mount(e, WithKey(testKey))
	require.NotNil(t, reg)

	engine := hxtoggle.New()
	sw := newSwitch(engine)
	reg.Add(sw)

	rec := post(e, sw.Prefix()+"/toggle", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, engine.On())
	assert.Contains(t, rec.Body.String(), `aria-checked="true"`)
	assert.Equal(t, `{"toggle:changed":{"on":true}}`, rec.Header().Get("HX-Trigger"))
}

func TestMountKeepsCSRFCheck(t *testing.T) {
	e := echo.New()
	reg := Mount(e)
	engine := hxtoggle.New()
	sw := newSwitch(engine)
	reg.Add(sw)

	rec := post(e, sw.Prefix()+"/toggle", false)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, engine.On())
}

func TestMountGroup(t *testing.T) {
	e := echo.New()
	g := e.Group("/app")
	reg := MountGroup(g, WithKey(testKey), WithGroupPrefix("/app"))

	engine := hxtoggle.New()
	sw := newSwitch(engine)
	reg.Add(sw)

	rec := post(e, "/app"+sw.Prefix()+"/toggle", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, engine.On())
}

func TestMountWithPath(t *testing.T) {
	e := echo.New()
	reg := Mount(e, WithPath("/_c/"))
	assert.NotNil(t, reg)

	rec := post(e, "/_c/missing/toggle", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRender(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, Render(c, templ.Raw("<p>hi</p>")))
	assert.Equal(t, "<p>hi</p>", rec.Body.String())
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	out := buf.String()
	assert.True(t, strings.Contains(out, "level=WARN"), out)
	assert.Contains(t, out, "path=/missing")
	assert.Contains(t, out, "status=404")
}

// Package hxtoggleecho provides Echo framework integration for hxtoggle
// switches.
//
// Mount switches onto an Echo instance or group:
//
//	e := echo.New()
//	reg := hxtoggleecho.Mount(e, hxtoggleecho.WithKey(key))
//	reg.Add(sw)
//
// Or mount on a group with middleware:
//
//	g := e.Group("/app", authMiddleware)
//	reg := hxtoggleecho.MountGroup(g, hxtoggleecho.WithGroupPrefix("/app"))
//	reg.Add(sw)
package hxtoggleecho

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/hxtoggle"
)

// Option configures the Mount and MountGroup functions.
type Option func(*options)

type options struct {
	key         []byte
	path        string
	groupPrefix string
}

// WithKey sets the props key for the registry.
// The key should be at least 32 bytes of cryptographically random data.
// If not provided, a random key is generated (suitable for development only).
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithPath sets the route switch requests are accepted on.
// Defaults to "/_c/", where switch prefixes live.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithGroupPrefix strips the group's prefix before requests reach the
// registry, so "/app/_c/main-1a2b/toggle" is routed as "/_c/main-1a2b/toggle".
func WithGroupPrefix(prefix string) Option {
	return func(o *options) {
		o.groupPrefix = prefix
	}
}

// Mount creates a registry and mounts its handler on an Echo instance.
func Mount(e *echo.Echo, opts ...Option) *hxtoggle.Registry {
	reg, o := newRegistry(opts)
	e.Any(o.path+"*", handler(reg, o))
	return reg
}

// MountGroup creates a registry and mounts its handler on an Echo group.
// Switches share the group's middleware (auth, logging, etc.).
func MountGroup(g *echo.Group, opts ...Option) *hxtoggle.Registry {
	reg, o := newRegistry(opts)
	g.Any(o.path+"*", handler(reg, o))
	return reg
}

func handler(reg *hxtoggle.Registry, o *options) echo.HandlerFunc {
	var h http.Handler = reg.Handler()
	if o.groupPrefix != "" {
		h = http.StripPrefix(o.groupPrefix, h)
	}
	return echo.WrapHandler(h)
}

func newRegistry(opts []Option) (*hxtoggle.Registry, *options) {
	o := &options{path: "/_c/"}
	for _, opt := range opts {
		opt(o)
	}

	key := o.key
	if key == nil {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			panic(fmt.Sprintf("hxtoggleecho: failed to generate random key: %v", err))
		}
	}
	return hxtoggle.NewRegistry(key), o
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxtoggleecho.Render(c, page())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}

// RequestLogger logs one line per request at debug level, and at warn level
// for responses of 400 and above.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			level := slog.LevelDebug
			if status >= http.StatusBadRequest {
				level = slog.LevelWarn
			}
			logger.Log(req.Context(), level, "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"htmx", hxtoggle.IsHTMX(req),
				"duration", time.Since(start),
			)
			return nil
		}
	}
}

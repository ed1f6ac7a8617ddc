package hxtoggle

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/pthm/hxtoggle/lib/encoding"
)

// Events sent in HX-Trigger after switch actions.
const (
	// EventChanged carries {"on": bool} after every toggle or reset.
	// Every switch listens for it and refreshes itself.
	EventChanged = "toggle:changed"

	// EventFocus carries {"id": string} when the owner delegated focus to
	// the control rendered with that id.
	EventFocus = "toggle:focus"
)

// SwitchProps is the snapshot a rendered switch posts back with its actions.
type SwitchProps struct {
	Seq uint64
	On  bool
}

// EncodeProps implements Encodable.
func (p SwitchProps) EncodeProps() map[string]any {
	return map[string]any{"s": p.Seq, "o": p.On}
}

// DecodeProps implements Decodable.
func (p *SwitchProps) DecodeProps(m map[string]any) error {
	p.Seq = encoding.Uint64(m["s"])
	if v, ok := m["o"].(bool); ok {
		p.On = v
	}
	return nil
}

// Wire holds the HTMX attributes invoking a switch's actions.
type Wire struct {
	Toggle templ.Attributes
	Reset  templ.Attributes
}

type wireKey struct{}

func withWire(ctx context.Context, wire Wire) context.Context {
	return context.WithValue(ctx, wireKey{}, wire)
}

// WireFromContext returns the action attributes of the enclosing Switch.
func WireFromContext(ctx context.Context) (Wire, bool) {
	return wireFromContext(ctx)
}

func wireFromContext(ctx context.Context) (Wire, bool) {
	wire, ok := ctx.Value(wireKey{}).(Wire)
	return wire, ok
}

// SwitchOption configures a Switch.
type SwitchOption func(*Switch)

// WithSwitchLockout reports the lockout state in responses: a warning flash
// on locked-out toggles and a reset control while exceeded. The switch's
// engine must be l.Engine().
func WithSwitchLockout(l *Lockout) SwitchOption {
	return func(s *Switch) {
		s.lockout = l
	}
}

// WithSwitchRef reports focus requests made on ref as EventFocus.
func WithSwitchRef(ref *Ref) SwitchOption {
	return func(s *Switch) {
		s.ref = ref
	}
}

// WithSwitchLogger sets the request logger.
func WithSwitchLogger(l *slog.Logger) SwitchOption {
	return func(s *Switch) {
		s.logger = l
	}
}

// Switch mounts an Engine over HTTP.
//
// It renders the engine's view inside a provider scope, so compound parts
// and wrapped consumers work inside it, and serves three routes under its
// prefix:
//
//	GET  /        render
//	POST /toggle  Engine.Toggle, then render
//	POST /reset   Engine.Reset, then render
//
// The whole request runs under the engine's lock, so the mutate, notify,
// broadcast and render phases of two requests never interleave, even across
// switches sharing one engine.
type Switch struct {
	*Component[SwitchProps]

	engine  *Engine
	inner   *View
	view    *View
	lockout *Lockout
	ref     *Ref
	id      string
	logger  *slog.Logger
	onError ErrorHandler
}

// NewSwitch creates a switch rendering engine through render.
func NewSwitch(name string, engine *Engine, render RenderFunc, opts ...SwitchOption) *Switch {
	s := &Switch{
		Component: newComponent[SwitchProps](name, 1),
		engine:    engine,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.lockout != nil && s.lockout.Engine() != engine {
		panic("hxtoggle: switch lockout does not own the switch engine")
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.id = strings.TrimPrefix(s.Prefix(), "/_c/")
	s.inner = engine.Render(render)
	s.view = engine.Provider(s.inner)
	return s
}

// Close detaches the switch's views from the engine. A switch built on a
// longer-lived engine must be closed when it is discarded.
func (s *Switch) Close() {
	s.engine.mu.Lock()
	defer s.engine.mu.Unlock()
	s.view.Close()
	s.inner.Close()
}

// ID returns the DOM id of the switch container.
func (s *Switch) ID() string {
	return s.id
}

// Engine returns the mounted engine.
func (s *Switch) Engine() *Engine {
	return s.engine
}

// SetErrorHandler sets the handler for failed requests (called by registry).
func (s *Switch) SetErrorHandler(h ErrorHandler) {
	s.onError = h
}

// HXPrefix returns the switch's URL prefix.
func (s *Switch) HXPrefix() string {
	return s.Prefix()
}

// Render writes the switch container and the current view.
// It does not take the engine lock; pages served concurrently with switch
// requests should render Locked instead.
func (s *Switch) Render(ctx context.Context, w io.Writer) error {
	env := s.view.Envelope()
	props := SwitchProps{Seq: env.Seq, On: env.On}

	attrs := s.Wire("", props)
	attrs["id"] = s.id
	attrs["class"] = "toggle toggle-" + stateLabel(env.On)
	attrs["data-seq"] = strconv.FormatUint(env.Seq, 10)
	attrs["hx-trigger"] = EventChanged + " from:body"
	attrs["hx-swap"] = string(SwapOuter)

	if _, err := io.WriteString(w, "<div"); err != nil {
		return err
	}
	if err := WriteAttrs(w, attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	wire := Wire{
		Toggle: s.targeted(s.Wire("toggle", props)),
		Reset:  s.targeted(s.Wire("reset", props)),
	}
	ctx = withWire(ctx, wire)
	if err := s.view.Render(ctx, w); err != nil {
		return err
	}

	if s.lockout != nil && s.lockout.Exceeded() {
		if err := s.renderLockout(w, wire.Reset); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</div>")
	return err
}

// Locked returns the switch as a component that renders under the engine
// lock.
func (s *Switch) Locked() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s.engine.mu.Lock()
		defer s.engine.mu.Unlock()
		return s.Render(ctx, w)
	})
}

func (s *Switch) renderLockout(w io.Writer, reset templ.Attributes) error {
	if _, err := io.WriteString(w, `<div class="toggle-lockout"><div>max clicks exceeded</div><button type="button" class="toggle-reset"`); err != nil {
		return err
	}
	if err := WriteAttrs(w, reset); err != nil {
		return err
	}
	_, err := io.WriteString(w, `>reset</button></div>`)
	return err
}

// targeted points action attrs at the switch container.
func (s *Switch) targeted(attrs templ.Attributes) templ.Attributes {
	attrs["hx-target"] = "#" + s.id
	attrs["hx-swap"] = string(SwapOuter)
	return attrs
}

// HXServeHTTP handles HTTP requests for this switch.
func (s *Switch) HXServeHTTP(w http.ResponseWriter, r *http.Request) {
	var props SwitchProps
	if err := s.decodeProps(r.FormValue("p"), &props); err != nil {
		s.logger.Warn("switch props rejected", "switch", s.id, "error", err)
		s.fail(w, r, err)
		return
	}

	s.engine.mu.Lock()
	defer s.engine.mu.Unlock()

	// A focus request left by another switch on this engine is stale.
	if s.ref != nil {
		s.ref.TakeFocus()
	}

	var result Result[SwitchProps]
	path := strings.TrimPrefix(r.URL.Path, s.Prefix())
	switch r.Method + " " + path {
	case "GET /", "GET ":
		result = OK(props)
	case "POST /toggle":
		result = s.handleToggle(r.Context(), props)
	case "POST /reset":
		result = s.handleReset(r.Context(), props)
	default:
		s.fail(w, r, ErrNotFound)
		return
	}
	s.handleResult(w, r, result)
}

func (s *Switch) handleToggle(ctx context.Context, props SwitchProps) Result[SwitchProps] {
	if props.Seq != s.engine.Seq() {
		s.logger.Debug("toggle from stale render", "switch", s.id, "seq", props.Seq, "current", s.engine.Seq())
	}

	s.engine.Toggle()
	result := s.changed()
	if s.lockout != nil && s.lockout.Exceeded() {
		result = result.Flash(FlashWarning, "max clicks exceeded")
	}
	return result
}

func (s *Switch) handleReset(ctx context.Context, props SwitchProps) Result[SwitchProps] {
	s.engine.Reset()
	return s.changed()
}

// changed builds the result announcing the engine's current value.
func (s *Switch) changed() Result[SwitchProps] {
	env := s.engine.Envelope()
	result := OK(SwitchProps{Seq: env.Seq, On: env.On}).
		Trigger(EventChanged, map[string]any{"on": env.On})
	if s.ref != nil && s.ref.TakeFocus() {
		result = result.Trigger(EventFocus, map[string]any{"id": s.ref.ID()})
	}
	return result
}

func (s *Switch) handleResult(w http.ResponseWriter, r *http.Request, result Result[SwitchProps]) {
	if err := result.GetErr(); err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.Render(r.Context(), &buf); err != nil {
		s.logger.Error("switch render failed", "switch", s.id, "error", err)
		s.fail(w, r, err)
		return
	}
	if err := FlashesOOB(result.GetFlashes()).Render(r.Context(), &buf); err != nil {
		s.fail(w, r, err)
		return
	}

	for k, v := range result.GetHeaders() {
		w.Header().Set(k, v)
	}
	if trigger := BuildTriggerHeader(result.GetTriggers()); trigger != "" {
		w.Header().Set("HX-Trigger", trigger)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status := result.GetStatus(); status != 0 {
		w.WriteHeader(status)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		s.logger.Debug("switch response write failed", "switch", s.id, "error", err)
	}
}

func (s *Switch) fail(w http.ResponseWriter, r *http.Request, err error) {
	if s.onError != nil {
		s.onError(w, r, err)
		return
	}
	DefaultErrorHandler(w, r, err)
}

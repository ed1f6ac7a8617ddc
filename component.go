package hxtoggle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/a-h/templ"
)

// Component[P] is the base embedded by HTTP-mounted components.
// P is the props type carried in each request.
//
// Each component instance receives a deterministic URL prefix based on its
// name and source location (file:line), ensuring uniqueness without manual
// coordination.
type Component[P any] struct {
	name      string
	prefix    string
	sensitive bool
	encoder   *Encoder
}

// NewComponent creates a component base with the given name.
//
// By default, props are signed (visible in URLs but tamper-proof via HMAC).
// Call Sensitive to encrypt them instead.
func NewComponent[P any](name string) *Component[P] {
	return newComponent[P](name, 1)
}

func newComponent[P any](name string, skip int) *Component[P] {
	return &Component[P]{
		name:   name,
		prefix: "/_c/" + name + "-" + componentHash(name, skip+1),
	}
}

// Sensitive marks the component as sensitive, enabling full encryption.
func (c *Component[P]) Sensitive() *Component[P] {
	c.sensitive = true
	return c
}

// Name returns the component's name.
func (c *Component[P]) Name() string {
	return c.name
}

// Prefix returns the component's URL prefix.
// All actions for this component are mounted under this prefix.
func (c *Component[P]) Prefix() string {
	return c.prefix
}

// IsSensitive returns whether the component uses encrypted props.
func (c *Component[P]) IsSensitive() bool {
	return c.sensitive
}

// SetEncoder sets the encoder for this component (called by registry).
func (c *Component[P]) SetEncoder(enc *Encoder) {
	c.encoder = enc
}

// Encoder returns the encoder for this component.
func (c *Component[P]) Encoder() *Encoder {
	return c.encoder
}

// Wire returns the HTMX attributes invoking action with props.
// An empty action is the default render (GET).
func (c *Component[P]) Wire(action string, props P) templ.Attributes {
	if action == "" {
		path, encoded := c.actionURL("", props)
		return WireAttrs(path, "GET", encoded)
	}
	path, encoded := c.actionURL(action, props)
	return WireAttrs(path, "POST", encoded)
}

// decodeProps reads props from the "p" parameter. A missing parameter leaves
// props at their zero value.
func (c *Component[P]) decodeProps(encoded string, props *P) error {
	if encoded == "" || c.encoder == nil {
		return nil
	}
	return wrapEncodingError(c.encoder.Decode(encoded, c.sensitive, props))
}

// actionURL returns the action path and the encoded props.
func (c *Component[P]) actionURL(action string, props P) (string, string) {
	path := c.prefix + "/" + action
	if c.encoder == nil {
		return path, ""
	}

	encoded, err := c.encoder.Encode(props, c.sensitive)
	if err != nil {
		return path, ""
	}
	return path, encoded
}

// componentHash returns 8 hex chars identifying name at the calling site.
// Only the base file name is hashed so prefixes survive a moved checkout.
func componentHash(name string, skip int) string {
	h := sha256.New()
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		fmt.Fprintf(h, "%s:%d:", filepath.Base(file), line)
	}
	io.WriteString(h, name)
	return hex.EncodeToString(h.Sum(nil)[:4])
}

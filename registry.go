package hxtoggle

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// HXComponent is implemented by components mounted in a Registry.
type HXComponent interface {
	HXPrefix() string
	HXServeHTTP(w http.ResponseWriter, r *http.Request)
}

// ErrorHandler writes the response for a failed request.
type ErrorHandler func(http.ResponseWriter, *http.Request, error)

type encoderSetter interface {
	SetEncoder(enc *Encoder)
}

type errorHandlerSetter interface {
	SetErrorHandler(h ErrorHandler)
}

// Registry manages component registration and routing.
type Registry struct {
	mu         sync.RWMutex
	mux        *http.ServeMux
	encoder    *Encoder
	components map[string]HXComponent // by prefix

	// OnError is called when a component fails a request.
	// Customize this to handle errors appropriately for your application.
	OnError ErrorHandler
}

// NewRegistry creates a registry whose components encode props with key.
func NewRegistry(key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("hxtoggle: failed to create encoder: %v", err))
	}

	reg := &Registry{
		mux:        http.NewServeMux(),
		encoder:    enc,
		components: make(map[string]HXComponent),
	}
	reg.OnError = DefaultErrorHandler
	return reg
}

// DefaultErrorHandler maps sentinel errors onto status codes.
func DefaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case IsNotFound(err):
		http.Error(w, "Not found", http.StatusNotFound)
	case IsDecryptionError(err), errors.Is(err, ErrInvalidFormat):
		http.Error(w, "Bad request", http.StatusBadRequest)
	default:
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
}

// Encoder returns the registry's encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.encoder
}

// Add registers components with the registry.
// Panics on a prefix collision.
func (reg *Registry) Add(components ...HXComponent) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for _, comp := range components {
		prefix := comp.HXPrefix()
		if _, exists := reg.components[prefix]; exists {
			panic(fmt.Sprintf("hxtoggle: prefix collision for %q", prefix))
		}
		if es, ok := comp.(encoderSetter); ok {
			es.SetEncoder(reg.encoder)
		}
		if hs, ok := comp.(errorHandlerSetter); ok {
			hs.SetErrorHandler(reg.handleError)
		}
		reg.components[prefix] = comp
		reg.mux.HandleFunc(prefix+"/", comp.HXServeHTTP)
	}
}

// Lookup returns the component mounted at prefix.
func (reg *Registry) Lookup(prefix string) (HXComponent, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	comp, ok := reg.components[prefix]
	return comp, ok
}

func (reg *Registry) handleError(w http.ResponseWriter, r *http.Request, err error) {
	reg.OnError(w, r, err)
}

// Handler returns the HTTP handler for component routes.
// Mount this at "/_c/" in your application.
func (reg *Registry) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// CSRF protection: mutating methods require HX-Request header
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			if !IsHTMX(r) {
				http.Error(w, "Forbidden: HTMX request required", http.StatusForbidden)
				return
			}
		}

		reg.mux.ServeHTTP(w, r)
	})
}

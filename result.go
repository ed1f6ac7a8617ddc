package hxtoggle

// Result[P] is returned from action handlers to control rendering and side effects.
//
// Result is a fluent builder letting handlers attach flash messages, events
// and headers without touching the ResponseWriter. The component processes
// the Result after the handler returns, applying headers and rendering:
//
//	// Success - auto-render with updated props
//	return hxtoggle.OK(props)
//
//	// Broadcast the new value to listeners on the page
//	return hxtoggle.OK(props).Trigger(EventChanged, map[string]any{"on": on})
//
//	// Error with fallback render
//	return hxtoggle.Err(props, err)
type Result[P any] struct {
	props    P
	err      error
	flashes  []Flash
	triggers map[string]any
	order    []string
	headers  map[string]string
	status   int
}

// OK creates a success result that will auto-render with the given props.
func OK[P any](props P) Result[P] {
	return Result[P]{props: props}
}

// Err creates an error result. The registry's OnError callback determines
// the response.
func Err[P any](props P, err error) Result[P] {
	return Result[P]{props: props, err: err}
}

// Flash adds a flash message (toast notification) to the result.
//
// Multiple flashes can be chained:
//
//	return hxtoggle.OK(props).
//	    Flash(hxtoggle.FlashWarning, "max clicks exceeded").
//	    Flash(hxtoggle.FlashInfo, "reset to continue")
func (r Result[P]) Flash(level, message string) Result[P] {
	r.flashes = append(r.flashes, Flash{Level: level, Message: message})
	return r
}

// Trigger emits an event via the HX-Trigger header.
//
// Events accumulate; triggering the same event twice keeps the last data.
// When data is provided it becomes the event's detail on the client.
func (r Result[P]) Trigger(event string, data ...map[string]any) Result[P] {
	triggers := make(map[string]any, len(r.triggers)+1)
	for k, v := range r.triggers {
		triggers[k] = v
	}
	if _, exists := triggers[event]; !exists {
		r.order = append(append([]string(nil), r.order...), event)
	}
	if len(data) > 0 && data[0] != nil {
		triggers[event] = data[0]
	} else {
		triggers[event] = nil
	}
	r.triggers = triggers
	return r
}

// Header sets a custom response header.
func (r Result[P]) Header(key, value string) Result[P] {
	headers := make(map[string]string, len(r.headers)+1)
	for k, v := range r.headers {
		headers[k] = v
	}
	headers[key] = value
	r.headers = headers
	return r
}

// Status sets the HTTP status code.
func (r Result[P]) Status(code int) Result[P] {
	r.status = code
	return r
}

// GetProps returns the props from the result.
func (r Result[P]) GetProps() P {
	return r.props
}

// GetErr returns the error from the result.
func (r Result[P]) GetErr() error {
	return r.err
}

// GetFlashes returns the flash messages.
func (r Result[P]) GetFlashes() []Flash {
	return r.flashes
}

// GetTriggers returns the triggered events in the order first triggered,
// with their data (nil for plain events).
func (r Result[P]) GetTriggers() ([]string, map[string]any) {
	return r.order, r.triggers
}

// GetHeaders returns the response headers.
func (r Result[P]) GetHeaders() map[string]string {
	return r.headers
}

// GetStatus returns the HTTP status code (0 means not set, use default 200).
func (r Result[P]) GetStatus() int {
	return r.status
}

package hxtoggle

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    hxtoggle.Render(w, r, page())
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// IsHTMX returns true if the request originated from HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
// A single event without data is sent as its bare name. Anything else is a
// JSON object keyed by event name; events without data map to true.
func BuildTriggerHeader(order []string, triggers map[string]any) string {
	if len(order) == 0 {
		return ""
	}
	if len(order) == 1 && triggers[order[0]] == nil {
		return order[0]
	}

	merged := make(map[string]any, len(order))
	for _, event := range order {
		if data := triggers[event]; data != nil {
			merged[event] = data
		} else {
			merged[event] = true
		}
	}
	data, _ := json.Marshal(merged)
	return string(data)
}

// WriteAttrs writes attrs in key order. String values are escaped, true
// booleans render as bare attributes, false booleans are omitted.
func WriteAttrs(w io.Writer, attrs templ.Attributes) error {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		var s string
		switch v := attrs[k].(type) {
		case bool:
			if !v {
				continue
			}
			s = " " + templ.EscapeString(k)
		case string:
			s = " " + templ.EscapeString(k) + `="` + templ.EscapeString(v) + `"`
		default:
			s = " " + templ.EscapeString(k) + `="` + templ.EscapeString(fmt.Sprint(v)) + `"`
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

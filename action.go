package hxtoggle

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// WireAttrs builds the minimal HTMX attributes for a component action.
//
// For GET actions, returns hx-get with props encoded in the URL query string.
// For POST/PUT/DELETE/PATCH, returns hx-post (etc.) with props in hx-vals.
func WireAttrs(path, method, encoded string) templ.Attributes {
	attrs := templ.Attributes{}

	if method == http.MethodGet || method == "" {
		url := path
		if encoded != "" {
			url = path + "?p=" + encoded
		}
		attrs["hx-get"] = url
		return attrs
	}

	switch method {
	case http.MethodPost:
		attrs["hx-post"] = path
	case http.MethodPut:
		attrs["hx-put"] = path
	case http.MethodPatch:
		attrs["hx-patch"] = path
	case http.MethodDelete:
		attrs["hx-delete"] = path
	}
	if encoded != "" {
		data, _ := json.Marshal(map[string]string{"p": encoded})
		attrs["hx-vals"] = string(data)
	}
	return attrs
}

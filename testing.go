package hxtoggle

import (
	"bytes"
	"context"
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/a-h/templ"
)

// TestResult holds the result of rendering a component for testing.
//
// Provides convenience methods for asserting on HTML content, headers,
// status codes, events and flashes.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string
	Flashes         []Flash
}

// TestRender renders any templ component with a background context.
//
//	result, err := hxtoggle.TestRender(hxtoggle.Provide(env, hxtoggle.Button()))
//	if !result.HTMLContains(`aria-checked="true"`) {
//	    t.Fatal("button not on")
//	}
func TestRender(component templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), component)
}

// TestRenderWithContext renders a component with a custom context.
//
// Use this for components that read the toggle scope:
//
//	ctx := hxtoggle.WithEnvelope(context.Background(), env)
//	result, err := hxtoggle.TestRenderWithContext(ctx, hxtoggle.OnText(label))
func TestRenderWithContext(ctx context.Context, component templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, err
	}

	return &TestResult{
		HTML:       buf.String(),
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestAction simulates an HTMX request against an HXComponent.
//
// Exercises the full HTTP path including props decoding, the action,
// and response rendering:
//
//	result, err := hxtoggle.TestAction(sw, sw.Prefix()+"/toggle", "POST", nil)
//	if !result.HasEvent(hxtoggle.EventChanged) {
//	    t.Fatal("expected change event")
//	}
func TestAction(
	comp HXComponent,
	actionURL string,
	method string,
	formData map[string]string,
) (*TestResult, error) {
	form := url.Values{}
	for k, v := range formData {
		form.Set(k, v)
	}

	req := httptest.NewRequest(method, actionURL, strings.NewReader(form.Encode()))
	if len(formData) > 0 {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rec := httptest.NewRecorder()
	comp.HXServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents = parseTriggerHeader(trigger)
	}
	result.Flashes = parseFlashesFromHTML(result.HTML)

	return result, nil
}

// TestGet simulates a GET request (render) against an HXComponent.
func TestGet(comp HXComponent, url string) (*TestResult, error) {
	return TestAction(comp, url, http.MethodGet, nil)
}

// TestPost simulates a POST request against an HXComponent.
func TestPost(comp HXComponent, url string, formData map[string]string) (*TestResult, error) {
	return TestAction(comp, url, http.MethodPost, formData)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HasEvent checks if an event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

// HasFlash checks if a flash message was set with the given level and message.
func (r *TestResult) HasFlash(level, message string) bool {
	for _, f := range r.Flashes {
		if f.Level == level && f.Message == message {
			return true
		}
	}
	return false
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// parseTriggerHeader parses the HX-Trigger header value into event names.
// The header can be a comma-separated list of names or a JSON object.
func parseTriggerHeader(trigger string) []string {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil
	}

	if strings.HasPrefix(trigger, "{") {
		var events []string
		// Track depth to only extract top-level keys
		depth := 0
		inString := false
		stringStart := -1

		for i := 0; i < len(trigger); i++ {
			c := trigger[i]

			if inString && c == '\\' && i+1 < len(trigger) {
				i++ // Skip the escaped character
				continue
			}

			switch {
			case c == '"' && !inString:
				inString = true
				stringStart = i + 1
			case c == '"':
				inString = false
				if depth == 1 {
					j := i + 1
					for j < len(trigger) && (trigger[j] == ' ' || trigger[j] == '\t') {
						j++
					}
					if j < len(trigger) && trigger[j] == ':' {
						events = append(events, trigger[stringStart:i])
					}
				}
				stringStart = -1
			case !inString && c == '{':
				depth++
			case !inString && c == '}':
				depth--
			}
		}
		return events
	}

	parts := strings.Split(trigger, ",")
	events := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			events = append(events, p)
		}
	}
	return events
}

// parseFlashesFromHTML extracts the toasts written by FlashesOOB.
func parseFlashesFromHTML(markup string) []Flash {
	const open = `<div class="toast toast-`

	var flashes []Flash
	rest := markup
	for {
		_, after, ok := strings.Cut(rest, open)
		if !ok {
			return flashes
		}
		level, after, ok := strings.Cut(after, `"`)
		if !ok {
			return flashes
		}
		_, after, ok = strings.Cut(after, ">")
		if !ok {
			return flashes
		}
		msg, after, ok := strings.Cut(after, "</div>")
		if !ok {
			return flashes
		}
		flashes = append(flashes, Flash{Level: level, Message: html.UnescapeString(msg)})
		rest = after
	}
}

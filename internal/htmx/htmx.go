// Package htmx implements the HTMX request and response header contracts
// used by the lesson backends.
//
// HTMX drives the courseware UIs entirely through HTML attributes; the
// server side of the conversation is a small set of HX-* headers. Request
// headers identify HTMX-initiated requests and their targets. Response
// headers carry out-of-band instructions: client-side redirects, event
// triggers, and browser history pushes.
package htmx

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"strings"
)

// Request headers set by the HTMX client.
const (
	HeaderRequest     = "HX-Request"
	HeaderBoosted     = "HX-Boosted"
	HeaderTarget      = "HX-Target"
	HeaderTriggerName = "HX-Trigger-Name"
	HeaderCurrentURL  = "HX-Current-URL"
)

// Response headers interpreted by the HTMX client.
const (
	HeaderRedirect   = "HX-Redirect"
	HeaderTrigger    = "HX-Trigger"
	HeaderPushURL    = "HX-Push-Url"
	HeaderReplaceURL = "HX-Replace-Url"
	HeaderRetarget   = "HX-Retarget"
	HeaderReswap     = "HX-Reswap"
	HeaderRefresh    = "HX-Refresh"
)

// IsRequest reports whether the request was initiated by HTMX.
func IsRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HeaderRequest), "true")
}

// IsBoosted reports whether the request came from an hx-boost element.
func IsBoosted(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(HeaderBoosted), "true")
}

// Target returns the id of the element the response will be swapped into.
func Target(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get(HeaderTarget)
}

// Redirect instructs the client to perform a full-page navigation to url.
// Unlike an HTTP 3xx, the response status stays 200 so HTMX itself
// processes the header instead of following the redirect transparently.
func Redirect(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderRedirect, url)
}

// PushURL pushes url onto the browser history without a navigation.
func PushURL(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderPushURL, url)
}

// ReplaceURL replaces the current history entry with url.
func ReplaceURL(w http.ResponseWriter, url string) {
	w.Header().Set(HeaderReplaceURL, url)
}

// Trigger asks the client to dispatch the named event after the swap.
func Trigger(w http.ResponseWriter, event string) {
	w.Header().Set(HeaderTrigger, event)
}

// TriggerJSON asks the client to dispatch several events, each with an
// optional detail payload. A nil detail dispatches the event with no
// detail, matching the `{"event": null}` form HTMX documents.
func TriggerJSON(w http.ResponseWriter, events map[string]any) error {
	if len(events) == 0 {
		return fmt.Errorf("htmx: at least one event is required")
	}
	payload, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("htmx: encode trigger events: %w", err)
	}
	w.Header().Set(HeaderTrigger, string(payload))
	return nil
}

// Retarget redirects the swap to a different CSS selector.
func Retarget(w http.ResponseWriter, selector string) {
	w.Header().Set(HeaderRetarget, selector)
}

// Reswap overrides the swap strategy declared in the markup.
func Reswap(w http.ResponseWriter, strategy string) {
	w.Header().Set(HeaderReswap, strategy)
}

// Refresh asks the client to do a full page refresh.
func Refresh(w http.ResponseWriter) {
	w.Header().Set(HeaderRefresh, "true")
}

// OOB wraps an HTML fragment so HTMX swaps it into the element with the
// given id, regardless of the primary swap target. The fragment is
// trusted markup; the id is escaped.
func OOB(id, fragment string) string {
	return `<div id="` + html.EscapeString(id) + `" hx-swap-oob="true">` + fragment + `</div>`
}

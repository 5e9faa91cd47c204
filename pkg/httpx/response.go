package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON reads a single JSON document from the request body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("malformed json: %w", err)
	}
	return nil
}

// WriteScriptHref answers a form post with a tiny page that optionally
// alerts msg and then navigates to target.
func WriteScriptHref(w http.ResponseWriter, target, msg string) {
	var b strings.Builder
	b.WriteString("<script>")
	if msg != "" {
		fmt.Fprintf(&b, "alert(%s);", jsString(msg))
	}
	fmt.Fprintf(&b, "location.href=%s;", jsString(target))
	b.WriteString("</script>")
	writeScript(w, b.String())
}

// WriteScriptBack answers a form post with an alert followed by a step
// back in the browser history, leaving the filled in form intact.
func WriteScriptBack(w http.ResponseWriter, msg string) {
	writeScript(w, fmt.Sprintf("<script>alert(%s);history.back();</script>", jsString(msg)))
}

func writeScript(w http.ResponseWriter, body string) {
	NoCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, body)
}

// jsString quotes s as a JavaScript string literal that is also safe inside
// a <script> element.
func jsString(s string) string {
	// json.Marshal escapes <, > and & as \u003c style sequences.
	b, _ := json.Marshal(s)
	return string(b)
}

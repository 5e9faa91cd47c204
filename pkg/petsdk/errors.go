package petsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a failed JSON call: either a code 0 envelope or a non 2xx
// status.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// RedirectError is returned when the server answered with a redirect where
// the client expected content, such as an unknown animal id.
type RedirectError struct {
	StatusCode int
	Location   string
}

func (e *RedirectError) Error() string {
	return fmt.Sprintf("redirected (%d) to %s", e.StatusCode, e.Location)
}

// parseErrorResponse turns a failed response into a typed error. Returns nil
// for a 2xx response whose envelope (if any) reports success.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		return &RedirectError{StatusCode: resp.StatusCode, Location: resp.Header.Get("Location")}
	}

	var env Envelope[json.RawMessage]
	decoded := json.Unmarshal(body, &env) == nil

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decoded && env.Code == CodeFailure {
			return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
		}
		return nil
	}

	if decoded && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}

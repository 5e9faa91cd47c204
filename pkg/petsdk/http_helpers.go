package petsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// doRequest performs an HTTP request with the client's cookie carrying
// HTTP client.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body io.Reader,
	contentType string,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json, text/html")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// doJSON sends in as a JSON body (or nothing when in is nil) and decodes the
// envelope's data into out (ignored when nil).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) (string, error) {
	var body io.Reader
	contentType := ""
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return "", fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	resp, err := c.doRequest(ctx, method, path, body, contentType)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	if err := parseErrorResponse(resp, b); err != nil {
		return "", err
	}

	env := Envelope[json.RawMessage]{}
	if err := json.Unmarshal(b, &env); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return "", fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return env.Message, nil
}

// doForm posts form values and decodes the script page that comes back.
func (c *Client) doForm(ctx context.Context, path string, form url.Values) (ScriptResult, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, path,
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return ScriptResult{}, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return ScriptResult{}, fmt.Errorf("failed to read response body: %w", err)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html") {
		if err := parseErrorResponse(resp, b); err != nil {
			return ScriptResult{}, err
		}
		return ScriptResult{}, &APIError{StatusCode: resp.StatusCode, Message: "unexpected response"}
	}
	return ParseScript(b), nil
}

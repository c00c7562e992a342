// Package client talks to the Sosio API and unwraps its response envelope.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// RequestConfig customizes a request. The zero value is a GET with no body.
type RequestConfig struct {
	Method string
	Header http.Header
	Body   []byte
}

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	StatusCode int
	// Message is the envelope message, when the body carried one.
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// APIError is returned for a 2xx envelope with success=false.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// UserMessage picks the text to show a person for err: the server's own
// message when it sent one, otherwise err itself.
func UserMessage(err error) string {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		return httpErr.Message
	}
	return err.Error()
}

// Client issues requests against a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// New creates a Client. A nil httpClient means http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: httpClient}
}

// WithToken returns a copy of c that sends token as a bearer credential.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// Do sends a request to target and returns the unwrapped payload.
// target is a path relative to the base URL or an absolute URL.
func (c *Client) Do(ctx context.Context, target string, cfg RequestConfig) (json.RawMessage, error) {
	raw, err := c.send(ctx, target, cfg)
	if err != nil {
		return nil, err
	}
	return unwrap(raw)
}

// send performs the request and returns the body of a 2xx response.
func (c *Client) send(ctx context.Context, target string, cfg RequestConfig) ([]byte, error) {
	method := cfg.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if cfg.Body != nil {
		body = bytes.NewReader(cfg.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(target), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, vs := range cfg.Header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: envelopeMessage(raw)}
	}
	return raw, nil
}

func (c *Client) url(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target
	}
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	return c.baseURL + target
}

// unwrap applies the envelope rules: success=true yields data, else user,
// else the whole body; success=false is an APIError; a body without a
// success field is the payload itself.
func unwrap(raw []byte) (json.RawMessage, error) {
	if !json.Valid(raw) {
		return nil, fmt.Errorf("invalid JSON response")
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw, nil
	}
	flag, ok := env["success"]
	if !ok {
		return raw, nil
	}

	var success bool
	if err := json.Unmarshal(flag, &success); err != nil || !success {
		msg := envelopeMessage(raw)
		if msg == "" {
			msg = "API request failed"
		}
		return nil, &APIError{Message: msg}
	}

	for _, key := range []string{"data", "user"} {
		if v, ok := env[key]; ok && !isNull(v) {
			return v, nil
		}
	}
	return raw, nil
}

func envelopeMessage(raw []byte) string {
	var env struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return ""
	}
	return env.Message
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || string(bytes.TrimSpace(v)) == "null"
}

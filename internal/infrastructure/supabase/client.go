// Package supabase is a typed client for the hosted Postgres/Auth/Storage
// service. It speaks the service's REST surface directly: PostgREST for row
// operations, the auth endpoints for sessions and privileged account
// management, and the storage endpoints for bucket enumeration.
//
// Two credential tiers exist: the anon key (used only for the password
// grant) and the service-role key (row access, admin APIs). All row-level
// lookups here run with the service-role key, matching the elevated access
// the auth middleware and the provisioner need.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings required to reach the hosted service.
type Config struct {
	URL            string
	AnonKey        string
	ServiceRoleKey string
	Timeout        time.Duration
}

// Client is a reusable handle to the hosted service. Safe for concurrent
// use; every operation is an independent round-trip.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
	timeout    time.Duration
}

// New validates the configuration and returns a Client. A default per-call
// timeout is applied when none is provided.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("supabase: url is required")
	}
	if cfg.ServiceRoleKey == "" {
		return nil, errors.New("supabase: service role key is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceRoleKey,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
	}, nil
}

// APIError is a non-2xx response from the hosted service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: %d %s", e.StatusCode, e.Message)
}

// request describes a single round-trip against the hosted service.
type request struct {
	method string
	path   string // absolute path, e.g. "/rest/v1/users"
	query  url.Values
	prefer string
	rnge   string // PostgREST range pagination, e.g. "0-19"
	bearer string // Authorization bearer override; service key when empty
	body   any
}

// do executes a request and decodes a JSON response into out (when out is
// non-nil and the response has a body). It returns the response headers and
// status code so callers can read Content-Range counts.
func (c *Client) do(ctx context.Context, r request, out any) (http.Header, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		raw, err := json.Marshal(r.body)
		if err != nil {
			return nil, 0, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("apikey", c.serviceKey)
	bearer := r.bearer
	if bearer == "" {
		bearer = c.serviceKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.prefer != "" {
		req.Header.Set("Prefer", r.prefer)
	}
	if r.rnge != "" {
		req.Header.Set("Range-Unit", "items")
		req.Header.Set("Range", r.rnge)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.Header, resp.StatusCode, &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if out != nil && r.method != http.MethodHead {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			return resp.Header, resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.Header, resp.StatusCode, nil
}

// readErrorMessage extracts a human-readable message from an error payload.
// PostgREST uses "message", the auth endpoints use "msg" or
// "error_description".
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no error detail"
	}
	var payload struct {
		Message          string `json:"message"`
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		ErrorField       string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, m := range []string{payload.Message, payload.Msg, payload.ErrorDescription, payload.ErrorField} {
		if m != "" {
			return m
		}
	}
	return strings.TrimSpace(string(raw))
}

// contentRangeTotal parses the total row count from a PostgREST
// Content-Range header ("0-9/42" or "*/42").
func contentRangeTotal(h http.Header) (int64, error) {
	cr := h.Get("Content-Range")
	idx := strings.LastIndex(cr, "/")
	if idx < 0 || idx == len(cr)-1 {
		return 0, fmt.Errorf("missing count in Content-Range %q", cr)
	}
	total := cr[idx+1:]
	if total == "*" {
		return 0, nil
	}
	n, err := strconv.ParseInt(total, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse Content-Range %q: %w", cr, err)
	}
	return n, nil
}

// CountRows returns the exact row count of a table via a HEAD probe. Any
// error doubles as a table-existence signal for the verification checklist.
func (c *Client) CountRows(ctx context.Context, table string) (int64, error) {
	q := url.Values{}
	q.Set("select", "*")
	h, _, err := c.do(ctx, request{
		method: http.MethodHead,
		path:   "/rest/v1/" + table,
		query:  q,
		prefer: "count=exact",
	}, nil)
	if err != nil {
		return 0, err
	}
	return contentRangeTotal(h)
}

// parseTimestamp handles the timestamp formats the service emits.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

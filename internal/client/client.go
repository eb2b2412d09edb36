// Package client is the single entry point the dashboard uses to reach
// the REST API, or the in-process mock store when configured to.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"lis-dashboard/pkg/jsonx"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// MockHandler serves a request without the network. It receives the
// normalized path including the query string.
type MockHandler interface {
	Handle(ctx context.Context, method, pathWithQuery string, body []byte) (any, error)
}

type Config struct {
	BaseURL string
	// MockMode routes every call to the mock handler.
	MockMode bool
	// FallbackToMock retries once against the mock handler when the
	// API cannot be reached. Off unless explicitly enabled.
	FallbackToMock bool
	// Timeout bounds each HTTP call; zero means none.
	Timeout time.Duration
}

var ErrNoMock = errors.New("client: mock mode enabled without a mock handler")

// APIError is a non-2xx answer from the API.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string { return e.Detail }

type Client struct {
	cfg  Config
	http *resty.Client
	mock MockHandler
	log  zerolog.Logger
}

type Option func(*Client)

func WithLogger(l zerolog.Logger) Option { return func(c *Client) { c.log = l } }

func New(cfg Config, mock MockHandler, opts ...Option) *Client {
	h := resty.New().SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		h.SetTimeout(cfg.Timeout)
	}
	c := &Client{cfg: cfg, http: h, mock: mock, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config { return c.cfg }

// Do sends one request and decodes the answer into out (which may be
// nil). A 204 leaves out untouched.
func (c *Client) Do(ctx context.Context, method, path string, body, out any) error {
	path = normalize(path)
	method = strings.ToUpper(method)
	payload, err := encode(body)
	if err != nil {
		return err
	}

	if c.cfg.MockMode {
		return c.viaMock(ctx, method, path, payload, out)
	}

	err = c.viaHTTP(ctx, method, path, payload, out)
	var te *transportError
	if !errors.As(err, &te) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if !c.cfg.FallbackToMock || c.mock == nil {
		return te.err
	}
	c.log.Warn().Err(te.err).Str("method", method).Str("path", path).Msg("api unreachable, falling back to mock")
	if merr := c.viaMock(ctx, method, path, payload, out); merr != nil {
		c.log.Debug().Err(merr).Str("path", path).Msg("mock fallback failed")
		return te.err
	}
	return nil
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// transportError marks failures to reach the API at all.
type transportError struct{ err error }

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func (c *Client) viaHTTP(ctx context.Context, method, path string, payload []byte, out any) error {
	req := c.http.R().SetContext(ctx)
	if payload != nil {
		req.SetBody(payload)
	}
	resp, err := req.Execute(method, strings.TrimRight(c.cfg.BaseURL, "/")+"/api/v1"+path)
	if err != nil {
		return &transportError{err: err}
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil
	}
	if !resp.IsSuccess() {
		return &APIError{Status: resp.StatusCode(), Detail: detail(resp)}
	}
	if out == nil || len(bytes.TrimSpace(resp.Body())) == 0 {
		return nil
	}
	if err := jsonx.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) viaMock(ctx context.Context, method, path string, payload []byte, out any) error {
	if c.mock == nil {
		return ErrNoMock
	}
	res, err := c.mock.Handle(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil || res == nil {
		return nil
	}
	return jsonx.CopyByJSON(out, res)
}

func normalize(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

func encode(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case jsonx.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	}
	out, err := jsonx.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode body: %w", err)
	}
	return out, nil
}

// detail picks the message of an error response: the JSON detail field
// (strings verbatim, anything else re-encoded), else the raw text, else
// the status line.
func detail(resp *resty.Response) string {
	raw := bytes.TrimSpace(resp.Body())
	var env struct {
		Detail jsonx.RawMessage `json:"detail"`
	}
	if len(raw) > 0 && jsonx.Unmarshal(raw, &env) == nil && len(env.Detail) > 0 && string(env.Detail) != "null" {
		var s string
		if jsonx.Unmarshal(env.Detail, &s) == nil {
			return s
		}
		return string(env.Detail)
	}
	if len(raw) > 0 {
		return string(raw)
	}
	if resp.Status() != "" {
		return resp.Status()
	}
	return fmt.Sprintf("HTTP %d", resp.StatusCode())
}

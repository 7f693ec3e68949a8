// Package api wraps all HTTP traffic to the CodeMentor API server: bearer
// auth on the way out, status-keyed notices and session handling on the
// way back. Every error path notifies the user, then returns the error so
// callers can still apply their own fallback behavior.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/codementorhq/codementor-go/pkg/notify"
)

// TokenSource provides the persisted bearer token and clears it when the
// server rejects it.
type TokenSource interface {
	Token() string
	Clear() error
}

// Config holds client construction parameters.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	Tokens         TokenSource
	Notifier       notify.Notifier
	Logger         *logrus.Logger
	OnUnauthorized func()
	HTTPClient     *http.Client
}

// Client is the shared API client. All requests go through do, which
// applies the auth header and the response error policy.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokens         TokenSource
	notifier       notify.Notifier
	logger         *logrus.Logger
	onUnauthorized func()
}

// New creates an API client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is required")
	}
	if cfg.Notifier == nil {
		return nil, fmt.Errorf("Notifier is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:        strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient:     httpClient,
		tokens:         cfg.Tokens,
		notifier:       cfg.Notifier,
		logger:         cfg.Logger,
		onUnauthorized: cfg.OnUnauthorized,
	}, nil
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodGet, path, nil, out, opts...)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPost, path, body, out, opts...)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPut, path, body, out, opts...)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodPatch, path, body, out, opts...)
}

// Delete issues a DELETE and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...RequestOption) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opts ...RequestOption) error {
	req, err := c.newRequest(ctx, method, path, body, opts...)
	if err != nil {
		// The request was never sent.
		c.notifier.Error(NoticeUnexpected)
		return &Error{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response received; timeouts land here as well.
		c.notifier.Error(NoticeNetworkError)
		return &Error{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.handleErrorStatus(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.notifier.Error(NoticeUnexpected)
		return &Error{Status: resp.StatusCode, Message: "invalid response body", Err: err}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any, opts ...RequestOption) (*http.Request, error) {
	var options requestOptions
	for _, opt := range opts {
		opt(&options)
	}

	url := c.baseURL + path
	if len(options.query) > 0 {
		url += "?" + options.query.Encode()
	}

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)
	return req, nil
}

// authorize attaches the bearer token when one is stored. Requests go out
// without an Authorization header otherwise.
func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// handleErrorStatus applies the status-keyed error policy: notify the
// user, then return the classified error to the caller.
func (c *Client) handleErrorStatus(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)
	var body errorBody
	_ = json.Unmarshal(data, &body)

	status := resp.StatusCode
	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"status": status,
			"url":    resp.Request.URL.String(),
		}).Debug("api request failed")
	}

	switch status {
	case http.StatusUnauthorized:
		if c.tokens != nil {
			_ = c.tokens.Clear()
		}
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		c.notifier.Error(NoticeSessionExpired)
		return &Error{Status: status, Message: NoticeSessionExpired, Err: ErrSessionExpired}
	case http.StatusForbidden:
		c.notifier.Error(NoticeForbidden)
		return &Error{Status: status, Message: NoticeForbidden}
	case http.StatusNotFound:
		c.notifier.Error(NoticeNotFound)
		return &Error{Status: status, Message: NoticeNotFound}
	case http.StatusInternalServerError:
		c.notifier.Error(NoticeServerError)
		return &Error{Status: status, Message: NoticeServerError}
	default:
		msg := body.Message
		if msg == "" {
			msg = NoticeGenericError
		}
		c.notifier.Error(msg)
		return &Error{Status: status, Message: msg}
	}
}

// IsTransport reports whether err was a transport failure (no response).
func IsTransport(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == 0
}

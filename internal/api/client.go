// Package api is the authenticated client for the admin REST API. Every
// protected call flows through Client.do: the bearer token is read from the
// token source at call time, a missing token short-circuits without touching
// the network, 401/403 responses invalidate the session, and any other
// failure normalizes to *Error. Requests are issued at most once; there is
// no retry policy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"

	"github.com/pamsartech/jytechinvestment-admin/internal/config"
)

// TokenSource supplies the bearer token for each request and receives the
// invalidation signal when the server rejects it. session.Manager satisfies
// this.
type TokenSource interface {
	Token() (string, error)
	Invalidate()
}

// ErrUnauthenticated is returned, without a network call, when no token is
// stored.
var ErrUnauthenticated = fmt.Errorf("not logged in")

// ErrSessionExpired is wrapped into every 401/403 result after the session
// has been invalidated.
var ErrSessionExpired = fmt.Errorf("session expired")

// IsSessionExpired reports whether err came out of the 401/403 path.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

// genericMessage is the fallback shown when the server gave no usable
// message of its own.
const genericMessage = "la requête a échoué"

// Error is the normalized shape of any failed request: the server's message
// when it sent one, the generic fallback otherwise. Status is the HTTP
// status code, or 0 when the request never produced a response.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (HTTP %d)", e.Message, e.Status)
}

// Client talks to the admin API.
type Client struct {
	http    *resty.Client
	session TokenSource
	log     *log.Logger
}

// New builds a client against the configured base URL. The session is
// consulted per request, never cached.
func New(cfg config.Config, session TokenSource, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(cfg.BaseURL()).
			SetTimeout(cfg.Timeout()).
			SetHeader("Accept", "application/json"),
		session: session,
		log:     logger,
	}
}

// do issues one authenticated JSON request. The response body is decoded
// into out when out is non-nil and the call succeeded.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	resp, err := c.send(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		c.log.Warn("malformed response body", "path", path, "err", err)
		return &Error{Message: genericMessage, Status: resp.StatusCode()}
	}
	return nil
}

// doRaw issues one authenticated request and returns the raw body bytes,
// for endpoints that stream binary content.
func (c *Client) doRaw(ctx context.Context, method, path string) ([]byte, string, error) {
	resp, err := c.send(ctx, method, path, nil, nil)
	if err != nil {
		return nil, "", err
	}
	return resp.Body(), resp.Header().Get("Content-Type"), nil
}

// doMultipart issues one authenticated multipart/form-data POST.
func (c *Client) doMultipart(ctx context.Context, path string, fields map[string]string, fileParam, fileName string, file []byte, out any) error {
	prepare := func(req *resty.Request) {
		req.SetMultipartFormData(fields)
		req.SetFileReader(fileParam, fileName, bytes.NewReader(file))
	}
	resp, err := c.send(ctx, resty.MethodPost, path, nil, prepare)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Message: genericMessage, Status: resp.StatusCode()}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, path string, body any, prepare func(*resty.Request)) (*resty.Response, error) {
	token, err := c.session.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(token)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Warn("request failed", "method", method, "path", path, "err", err)
		return nil, &Error{Message: genericMessage, Status: 0}
	}

	status := resp.StatusCode()
	switch {
	case status == 401 || status == 403:
		c.session.Invalidate()
		return nil, fmt.Errorf("%w: %s", ErrSessionExpired, messageFrom(resp.Body(), "votre session a expiré"))
	case status < 200 || status > 299:
		return nil, &Error{Message: messageFrom(resp.Body(), genericMessage), Status: status}
	}
	return resp, nil
}

// messageFrom extracts the server's {message} field, falling back when the
// body has none.
func messageFrom(body []byte, fallback string) string {
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if m := strings.TrimSpace(envelope.Message); m != "" {
			return m
		}
	}
	return fallback
}

// parseTime accepts the timestamp formats the backend emits. A zero time
// means unknown; callers sort it last and render the placeholder.
func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// RequestIDKey is the context key (and fasthttp user value) carrying the request id
// that is forwarded to the backend as X-Request-ID.
const RequestIDKey = "request-id"

type Observer interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

type Config struct {
	BaseURL string
	Timeout time.Duration

	// Dial overrides the transport, used by tests with an in-memory listener.
	Dial fasthttp.DialFunc

	Observer Observer
}

type Client struct {
	http     *fasthttp.Client
	baseURL  string
	timeout  time.Duration
	observer Observer
	log      zerolog.Logger
}

func New(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		http: &fasthttp.Client{
			Name:         "hr-console",
			Dial:         cfg.Dial,
			ReadTimeout:  cfg.Timeout,
			WriteTimeout: cfg.Timeout,
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		timeout:  cfg.Timeout,
		observer: cfg.Observer,
		log:      log.With().Str("component", "apiclient").Logger(),
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, path string, queryParams map[string]any, out any) error {
	return c.do(ctx, fasthttp.MethodGet, path, queryParams, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, fasthttp.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, fasthttp.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, fasthttp.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, queryParams map[string]any, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.buildURI(path, queryParams))
	req.Header.SetMethod(method)
	req.Header.SetContentType("application/json")
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		req.SetBodyRaw(raw)
	}

	begin := time.Now()
	err := c.send(ctx, req, resp)
	elapsed := time.Since(begin)

	if err != nil {
		c.observe(method, path, 0, elapsed)
		c.log.Error().
			Err(err).
			Str("method", method).
			Str("path", path).
			Dur("latency", elapsed).
			Msg("backend request failed")

		return fmt.Errorf("http.Do %s %s: %w", method, path, err)
	}

	status := resp.StatusCode()
	c.observe(method, path, status, elapsed)

	if status < 200 || status > 299 {
		return c.responseError(method, path, status, resp.Body())
	}

	if out == nil || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("json.Unmarshal %s %s: %w", method, path, err)
	}

	return nil
}

func (c *Client) send(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	deadline, ok := ctx.Deadline()

	if c.timeout > 0 {
		byTimeout := time.Now().Add(c.timeout)
		if !ok || byTimeout.Before(deadline) {
			deadline, ok = byTimeout, true
		}
	}

	if ok {
		return c.http.DoDeadline(req, resp, deadline)
	}

	return c.http.Do(req, resp)
}

func (c *Client) responseError(method, path string, status int, body []byte) error {
	re := &ResponseError{
		StatusCode: status,
		Method:     method,
		Path:       path,
		Body:       append([]byte(nil), body...),
	}
	re.Detail = parseDetail(re.Body)

	switch status {
	case fasthttp.StatusNotFound:
		c.log.Error().Str("method", method).Str("path", path).Msg("resource not found")
	case fasthttp.StatusBadRequest:
		c.log.Error().Str("method", method).Str("path", path).RawJSON("data", jsonOrQuoted(re.Body)).Msg("bad request")
	case fasthttp.StatusInternalServerError:
		c.log.Error().Str("method", method).Str("path", path).Msg("server error")
	default:
		c.log.Debug().Str("method", method).Str("path", path).Int("status", status).Msg("backend rejected request")
	}

	return re
}

func (c *Client) buildURI(path string, queryParams map[string]any) string {
	uri := c.baseURL + "/" + strings.TrimLeft(path, "/")

	if len(queryParams) == 0 {
		return uri
	}

	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		values.Add(k, fmt.Sprint(queryParams[k]))
	}

	return uri + "?" + values.Encode()
}

func (c *Client) observe(method, path string, status int, elapsed time.Duration) {
	if c.observer == nil {
		return
	}

	c.observer.ObserveRequest(method, routeLabel(path), status, elapsed)
}

// routeLabel collapses ids and department names so metric labels stay bounded.
func routeLabel(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")

	for i, s := range segments {
		switch {
		case i > 0 && segments[i-1] == "department":
			segments[i] = "{department}"
		case isDigits(s):
			segments[i] = "{id}"
		}
	}

	return "/" + strings.Join(segments, "/")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func jsonOrQuoted(body []byte) []byte {
	if json.Valid(body) {
		return body
	}

	quoted, _ := json.Marshal(string(body))
	return quoted
}

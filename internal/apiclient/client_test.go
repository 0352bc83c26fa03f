package apiclient

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type recordedCall struct {
	method string
	route  string
	status int
}

type fakeObserver struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (o *fakeObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.calls = append(o.calls, recordedCall{method: method, route: route, status: status})
}

func newTestClient(t *testing.T, handler fasthttp.RequestHandler, observer Observer) *Client {
	t.Helper()

	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: handler}

	go func() { _ = srv.Serve(ln) }()
	t.Cleanup(func() { _ = srv.Shutdown() })

	return New(Config{
		BaseURL:  "http://backend.local/api/v1/",
		Timeout:  time.Second,
		Dial:     func(string) (net.Conn, error) { return ln.Dial() },
		Observer: observer,
	}, zerolog.Nop())
}

func TestClient_GetWithQuery(t *testing.T) {
	observer := &fakeObserver{}
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "GET", string(ctx.Method()))
		assert.Equal(t, "/api/v1/employees", string(ctx.Path()))
		assert.Equal(t, "20", string(ctx.QueryArgs().Peek("skip")))
		assert.Equal(t, "10", string(ctx.QueryArgs().Peek("limit")))

		ctx.SetContentType("application/json")
		ctx.SetBodyString(`{"items":[{"id":1,"name":"Anna"}],"total":21}`)
	}, observer)

	var out struct {
		Items []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
		Total int `json:"total"`
	}

	err := c.Get(context.Background(), "/employees", map[string]any{"skip": 20, "limit": 10}, &out)
	require.NoError(t, err)
	assert.Equal(t, 21, out.Total)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Anna", out.Items[0].Name)

	require.Len(t, observer.calls, 1)
	assert.Equal(t, recordedCall{method: "GET", route: "/employees", status: 200}, observer.calls[0])
}

func TestClient_PostSendsJSON(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "POST", string(ctx.Method()))
		assert.Equal(t, "application/json", string(ctx.Request.Header.ContentType()))
		assert.JSONEq(t, `{"name":"Anna","salary":1000.5}`, string(ctx.PostBody()))

		ctx.SetStatusCode(fasthttp.StatusCreated)
		ctx.SetBodyString(`{"id":7}`)
	}, nil)

	in := map[string]any{"name": "Anna", "salary": 1000.5}
	var out struct {
		ID int64 `json:"id"`
	}

	require.NoError(t, c.Post(context.Background(), "employees", in, &out))
	assert.Equal(t, int64(7), out.ID)
}

func TestClient_DeleteNoContent(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "DELETE", string(ctx.Method()))
		assert.Equal(t, "/api/v1/employees/5", string(ctx.Path()))
		ctx.SetStatusCode(fasthttp.StatusNoContent)
	}, nil)

	require.NoError(t, c.Delete(context.Background(), "/employees/5"))
}

func TestClient_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		detail string
	}{
		{name: "not found", status: 404, body: `{"detail":"Employee not found"}`, detail: "Employee not found"},
		{name: "bad request", status: 400, body: `{"detail":"Email already registered"}`, detail: "Email already registered"},
		{name: "server error", status: 500, body: `Internal Server Error`, detail: ""},
		{name: "validation list", status: 422, body: `{"detail":[{"loc":["body","salary"],"msg":"Input should be greater than 0"}]}`, detail: "Input should be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
				ctx.SetStatusCode(tt.status)
				ctx.SetBodyString(tt.body)
			}, nil)

			err := c.Get(context.Background(), "/employees/99", nil, nil)
			require.Error(t, err)

			var re *ResponseError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tt.status, re.StatusCode)
			assert.Equal(t, "GET", re.Method)
			assert.Equal(t, tt.body, string(re.Body))
			assert.Equal(t, tt.detail, Detail(err))
			assert.Equal(t, tt.status, StatusCode(err))
			assert.Equal(t, tt.status == fasthttp.StatusNotFound, errors.Is(err, dto.ErrNotFound))
		})
	}
}

func TestClient_ForwardsRequestID(t *testing.T) {
	c := newTestClient(t, func(ctx *fasthttp.RequestCtx) {
		assert.Equal(t, "req-42", string(ctx.Request.Header.Peek("X-Request-ID")))
		ctx.SetBodyString(`{}`)
	}, nil)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42") //nolint:staticcheck
	require.NoError(t, c.Get(ctx, "/stats", nil, nil))
}

func TestClient_TransportError(t *testing.T) {
	observer := &fakeObserver{}
	dialErr := errors.New("connection refused")

	c := New(Config{
		BaseURL:  "http://backend.local/api/v1",
		Dial:     func(string) (net.Conn, error) { return nil, dialErr },
		Observer: observer,
	}, zerolog.Nop())

	err := c.Get(context.Background(), "/stats", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GET /stats")
	assert.Equal(t, 0, StatusCode(err))
	assert.Equal(t, "", Detail(err))
	require.Len(t, observer.calls, 1)
	assert.Equal(t, 0, observer.calls[0].status)
}

func TestClient_CanceledContext(t *testing.T) {
	c := New(Config{BaseURL: "http://backend.local"}, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Get(ctx, "/stats", nil, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Employee not found", Message(&ResponseError{Detail: "Employee not found"}, "fallback"))
	assert.Equal(t, "fallback", Message(&ResponseError{StatusCode: 500}, "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("boom"), "fallback"))
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/employees", routeLabel("/employees"))
	assert.Equal(t, "/employees/{id}", routeLabel("/employees/15"))
	assert.Equal(t, "/employees/department/{department}", routeLabel("/employees/department/Sales"))
	assert.Equal(t, "/employees/active/list", routeLabel("employees/active/list"))
}

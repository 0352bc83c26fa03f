package employees

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Console/internal/apiclient"
	"github.com/Artexxx/HR-Console/internal/dto"
)

type call struct {
	method string
	path   string
	params map[string]any
	body   any
}

type fakeClient struct {
	calls    []call
	response string
	err      error
}

func (f *fakeClient) record(c call, out any) error {
	f.calls = append(f.calls, c)
	if f.err != nil {
		return f.err
	}
	if out != nil && f.response != "" {
		return json.Unmarshal([]byte(f.response), out)
	}
	return nil
}

func (f *fakeClient) Get(_ context.Context, path string, params map[string]any, out any) error {
	return f.record(call{method: "GET", path: path, params: params}, out)
}

func (f *fakeClient) Post(_ context.Context, path string, body, out any) error {
	return f.record(call{method: "POST", path: path, body: body}, out)
}

func (f *fakeClient) Put(_ context.Context, path string, body, out any) error {
	return f.record(call{method: "PUT", path: path, body: body}, out)
}

func (f *fakeClient) Delete(_ context.Context, path string) error {
	return f.record(call{method: "DELETE", path: path}, nil)
}

func TestAPI_Routes(t *testing.T) {
	ctx := context.Background()
	input := dto.EmployeeInput{Name: "Anna", Email: "anna@company.com", Position: "Manager", Department: "HR", Salary: 1000, IsActive: true}

	tests := []struct {
		name     string
		response string
		invoke   func(a *API) error
		want     call
	}{
		{
			name:     "list",
			response: `{"items":[],"total":0}`,
			invoke:   func(a *API) error { _, err := a.List(ctx, 20, 10); return err },
			want:     call{method: "GET", path: "/employees", params: map[string]any{"skip": 20, "limit": 10}},
		},
		{
			name:     "get",
			response: `{"id":3}`,
			invoke:   func(a *API) error { _, err := a.Get(ctx, 3); return err },
			want:     call{method: "GET", path: "/employees/3"},
		},
		{
			name:     "create",
			response: `{"id":4}`,
			invoke:   func(a *API) error { _, err := a.Create(ctx, input); return err },
			want:     call{method: "POST", path: "/employees", body: input},
		},
		{
			name:     "update",
			response: `{"id":4}`,
			invoke:   func(a *API) error { _, err := a.Update(ctx, 4, input); return err },
			want:     call{method: "PUT", path: "/employees/4", body: input},
		},
		{
			name:   "delete",
			invoke: func(a *API) error { return a.Delete(ctx, 4) },
			want:   call{method: "DELETE", path: "/employees/4"},
		},
		{
			name:     "by department",
			response: `{"items":[],"total":0}`,
			invoke:   func(a *API) error { _, err := a.ListByDepartment(ctx, "Customer Success", 0, 10); return err },
			want:     call{method: "GET", path: "/employees/department/Customer%20Success", params: map[string]any{"skip": 0, "limit": 10}},
		},
		{
			name:     "active",
			response: `{"items":[],"total":0}`,
			invoke:   func(a *API) error { _, err := a.ListActive(ctx, 10, 5); return err },
			want:     call{method: "GET", path: "/employees/active/list", params: map[string]any{"skip": 10, "limit": 5}},
		},
		{
			name:     "stats",
			response: `{"total_employees":0}`,
			invoke:   func(a *API) error { _, err := a.Stats(ctx); return err },
			want:     call{method: "GET", path: "/stats"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{response: tt.response}

			require.NoError(t, tt.invoke(NewAPI(client)))
			require.Len(t, client.calls, 1)
			assert.Equal(t, tt.want, client.calls[0])
		})
	}
}

func TestAPI_DecodesList(t *testing.T) {
	client := &fakeClient{response: `{"items":[{"id":1,"name":"Anna","salary":1200.5,"is_active":true}],"total":25,"skip":0,"limit":10}`}

	list, err := NewAPI(client).List(context.Background(), DefaultSkip, DefaultLimit)
	require.NoError(t, err)
	assert.Equal(t, 25, list.Total)
	require.Len(t, list.Items, 1)
	assert.Equal(t, dto.Employee{ID: 1, Name: "Anna", Salary: 1200.5, IsActive: true}, list.Items[0])
}

func TestAPI_KeepsResponseError(t *testing.T) {
	client := &fakeClient{err: &apiclient.ResponseError{StatusCode: 404, Detail: "Employee not found"}}

	_, err := NewAPI(client).Get(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, 404, apiclient.StatusCode(err))
	assert.Equal(t, "Employee not found", apiclient.Detail(err))
}

type fakePublisher struct {
	kinds []string
	ids   []int64
	err   error
}

func (p *fakePublisher) PublishEmployeeEvent(_ context.Context, kind string, e dto.Employee) error {
	p.kinds = append(p.kinds, kind)
	p.ids = append(p.ids, e.ID)
	return p.err
}

func TestPublishing(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{response: `{"id":12,"name":"Anna"}`}
	publisher := &fakePublisher{}
	api := WithEvents(NewAPI(client), publisher, zerolog.Nop())

	_, err := api.Create(ctx, dto.EmployeeInput{Name: "Anna"})
	require.NoError(t, err)
	_, err = api.Update(ctx, 12, dto.EmployeeInput{Name: "Anna"})
	require.NoError(t, err)
	require.NoError(t, api.Delete(ctx, 12))

	assert.Equal(t, []string{dto.EventEmployeeCreated, dto.EventEmployeeUpdated, dto.EventEmployeeDeleted}, publisher.kinds)
	assert.Equal(t, []int64{12, 12, 12}, publisher.ids)
}

func TestPublishing_SkipsFailedMutations(t *testing.T) {
	client := &fakeClient{err: &apiclient.ResponseError{StatusCode: 400, Detail: "Email already registered"}}
	publisher := &fakePublisher{}
	api := WithEvents(NewAPI(client), publisher, zerolog.Nop())

	_, err := api.Create(context.Background(), dto.EmployeeInput{Name: "Anna"})
	require.Error(t, err)
	assert.Empty(t, publisher.kinds)
}

func TestPublishing_PublishFailureIsNotReturned(t *testing.T) {
	client := &fakeClient{}
	publisher := &fakePublisher{err: errors.New("kafka down")}
	api := WithEvents(NewAPI(client), publisher, zerolog.Nop())

	require.NoError(t, api.Delete(context.Background(), 5))
	assert.Equal(t, []string{dto.EventEmployeeDeleted}, publisher.kinds)
}

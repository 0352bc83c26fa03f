package employees

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Artexxx/HR-Console/internal/dto"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

// HTTPClient is the subset of apiclient.Client the module needs.
type HTTPClient interface {
	Get(ctx context.Context, path string, queryParams map[string]any, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// API maps employee operations onto backend calls, one HTTP request per call.
type API struct {
	client HTTPClient
}

func NewAPI(client HTTPClient) *API {
	return &API{client: client}
}

func (a *API) List(ctx context.Context, skip, limit int) (dto.EmployeeList, error) {
	var out dto.EmployeeList

	if err := a.client.Get(ctx, "/employees", page(skip, limit), &out); err != nil {
		return dto.EmployeeList{}, fmt.Errorf("client.Get employees: %w", err)
	}

	return out, nil
}

func (a *API) Get(ctx context.Context, id int64) (dto.Employee, error) {
	var out dto.Employee

	if err := a.client.Get(ctx, employeePath(id), nil, &out); err != nil {
		return dto.Employee{}, fmt.Errorf("client.Get employee %d: %w", id, err)
	}

	return out, nil
}

func (a *API) Create(ctx context.Context, in dto.EmployeeInput) (dto.Employee, error) {
	var out dto.Employee

	if err := a.client.Post(ctx, "/employees", in, &out); err != nil {
		return dto.Employee{}, fmt.Errorf("client.Post employees: %w", err)
	}

	return out, nil
}

func (a *API) Update(ctx context.Context, id int64, in dto.EmployeeInput) (dto.Employee, error) {
	var out dto.Employee

	if err := a.client.Put(ctx, employeePath(id), in, &out); err != nil {
		return dto.Employee{}, fmt.Errorf("client.Put employee %d: %w", id, err)
	}

	return out, nil
}

func (a *API) Delete(ctx context.Context, id int64) error {
	if err := a.client.Delete(ctx, employeePath(id)); err != nil {
		return fmt.Errorf("client.Delete employee %d: %w", id, err)
	}

	return nil
}

func (a *API) ListByDepartment(ctx context.Context, department string, skip, limit int) (dto.EmployeeList, error) {
	var out dto.EmployeeList

	path := "/employees/department/" + url.PathEscape(department)
	if err := a.client.Get(ctx, path, page(skip, limit), &out); err != nil {
		return dto.EmployeeList{}, fmt.Errorf("client.Get department %q: %w", department, err)
	}

	return out, nil
}

func (a *API) ListActive(ctx context.Context, skip, limit int) (dto.EmployeeList, error) {
	var out dto.EmployeeList

	if err := a.client.Get(ctx, "/employees/active/list", page(skip, limit), &out); err != nil {
		return dto.EmployeeList{}, fmt.Errorf("client.Get active: %w", err)
	}

	return out, nil
}

func (a *API) Stats(ctx context.Context) (dto.Stats, error) {
	var out dto.Stats

	if err := a.client.Get(ctx, "/stats", nil, &out); err != nil {
		return dto.Stats{}, fmt.Errorf("client.Get stats: %w", err)
	}

	return out, nil
}

func employeePath(id int64) string {
	return "/employees/" + strconv.FormatInt(id, 10)
}

func page(skip, limit int) map[string]any {
	return map[string]any{"skip": skip, "limit": limit}
}

package hooks

import (
	"context"
	"sync"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type Getter interface {
	Get(ctx context.Context, id int64) (dto.Employee, error)
}

type EmployeeState struct {
	Status   Status
	Employee *dto.Employee
	Error    string
}

func (s EmployeeState) Loading() bool {
	return s.Status == StatusLoading
}

// Employee loads a single record. An id of 0 means "nothing selected" and never fetches.
type Employee struct {
	api Getter
	res resource[dto.Employee]

	mu      sync.Mutex
	id      int64
	mounted bool
}

func NewEmployee(api Getter, id int64) *Employee {
	return &Employee{
		api: api,
		id:  id,
		res: resource[dto.Employee]{fallback: "Failed to fetch employee"},
	}
}

func (h *Employee) Mount(ctx context.Context) EmployeeState {
	h.mu.Lock()
	if h.mounted {
		h.mu.Unlock()
		return h.State()
	}
	h.mounted = true
	id := h.id
	h.mu.Unlock()

	return h.fetch(ctx, id)
}

func (h *Employee) SetID(ctx context.Context, id int64) EmployeeState {
	h.mu.Lock()
	changed := id != h.id
	h.id = id
	mounted := h.mounted
	h.mu.Unlock()

	if !changed || !mounted {
		return h.State()
	}

	return h.fetch(ctx, id)
}

func (h *Employee) Refetch(ctx context.Context) EmployeeState {
	h.mu.Lock()
	id := h.id
	h.mu.Unlock()

	return h.fetch(ctx, id)
}

func (h *Employee) State() EmployeeState {
	status, employee, ok, errText := h.res.snapshot()

	state := EmployeeState{Status: status, Error: errText}
	if ok {
		state.Employee = &employee
	}

	return state
}

func (h *Employee) fetch(ctx context.Context, id int64) EmployeeState {
	if id == 0 {
		return h.State()
	}

	h.res.load(ctx, func(ctx context.Context) (dto.Employee, error) {
		return h.api.Get(ctx, id)
	})

	return h.State()
}

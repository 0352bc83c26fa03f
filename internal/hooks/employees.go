package hooks

import (
	"context"
	"sync"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type Lister interface {
	List(ctx context.Context, skip, limit int) (dto.EmployeeList, error)
}

type EmployeesState struct {
	Status    Status
	Employees []dto.Employee
	Total     int
	Error     string
}

func (s EmployeesState) Loading() bool {
	return s.Status == StatusLoading
}

// Employees fetches one page of employees on mount and again whenever skip or
// limit change. A failed fetch keeps the previously loaded page.
type Employees struct {
	api Lister
	res resource[dto.EmployeeList]

	mu      sync.Mutex
	skip    int
	limit   int
	mounted bool
}

func NewEmployees(api Lister, skip, limit int) *Employees {
	return &Employees{
		api:   api,
		skip:  skip,
		limit: limit,
		res:   resource[dto.EmployeeList]{fallback: "Failed to fetch employees", keepOnError: true},
	}
}

func (h *Employees) Mount(ctx context.Context) EmployeesState {
	h.mu.Lock()
	if h.mounted {
		h.mu.Unlock()
		return h.State()
	}
	h.mounted = true
	skip, limit := h.skip, h.limit
	h.mu.Unlock()

	return h.fetch(ctx, skip, limit)
}

// SetParams re-fetches only when the hook is mounted and a parameter changed.
func (h *Employees) SetParams(ctx context.Context, skip, limit int) EmployeesState {
	h.mu.Lock()
	changed := skip != h.skip || limit != h.limit
	h.skip, h.limit = skip, limit
	mounted := h.mounted
	h.mu.Unlock()

	if !changed || !mounted {
		return h.State()
	}

	return h.fetch(ctx, skip, limit)
}

func (h *Employees) Refetch(ctx context.Context) EmployeesState {
	h.mu.Lock()
	skip, limit := h.skip, h.limit
	h.mu.Unlock()

	return h.fetch(ctx, skip, limit)
}

func (h *Employees) Params() (skip, limit int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.skip, h.limit
}

func (h *Employees) State() EmployeesState {
	status, list, _, errText := h.res.snapshot()

	items := list.Items
	if items == nil {
		items = []dto.Employee{}
	}

	return EmployeesState{Status: status, Employees: items, Total: list.Total, Error: errText}
}

func (h *Employees) fetch(ctx context.Context, skip, limit int) EmployeesState {
	h.res.load(ctx, func(ctx context.Context) (dto.EmployeeList, error) {
		return h.api.List(ctx, skip, limit)
	})

	return h.State()
}

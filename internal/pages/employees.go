package pages

import (
	"context"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/hooks"
	"github.com/Artexxx/HR-Console/internal/table"
)

// EmployeesPage owns the list screen: the pagination offset, form visibility
// and the employee currently being edited.
type EmployeesPage struct {
	employees *hooks.Employees
	skip      int
	limit     int
	showForm  bool
	selected  *dto.Employee
}

func NewEmployeesPage(api hooks.Lister, skip, limit int) *EmployeesPage {
	if skip < 0 {
		skip = 0
	}

	return &EmployeesPage{
		employees: hooks.NewEmployees(api, skip, limit),
		skip:      skip,
		limit:     limit,
	}
}

func (p *EmployeesPage) Load(ctx context.Context) {
	p.employees.Mount(ctx)
}

func (p *EmployeesPage) Next(ctx context.Context) {
	p.setSkip(ctx, p.skip+p.limit)
}

func (p *EmployeesPage) Prev(ctx context.Context) {
	p.setSkip(ctx, max(0, p.skip-p.limit))
}

func (p *EmployeesPage) setSkip(ctx context.Context, skip int) {
	p.skip = skip
	p.employees.SetParams(ctx, p.skip, p.limit)
}

func (p *EmployeesPage) Add() {
	p.selected = nil
	p.showForm = true
}

func (p *EmployeesPage) Edit(e dto.Employee) {
	p.selected = &e
	p.showForm = true
}

func (p *EmployeesPage) Cancel() {
	p.showForm = false
	p.selected = nil
}

// Success closes the form after a save and reloads the current page.
func (p *EmployeesPage) Success(ctx context.Context) {
	p.Cancel()
	p.employees.Refetch(ctx)
}

// Refetch is handed to the table as its after-delete callback.
func (p *EmployeesPage) Refetch(ctx context.Context) {
	p.employees.Refetch(ctx)
}

func (p *EmployeesPage) Selected() *dto.Employee {
	return p.selected
}

type EmployeesView struct {
	Error      string
	ShowForm   bool
	FormTitle  string
	Table      table.View
	Pagination Pagination
}

func (p *EmployeesPage) View() EmployeesView {
	state := p.employees.State()

	title := "Add New Employee"
	if p.selected != nil {
		title = "Edit Employee"
	}

	return EmployeesView{
		Error:      state.Error,
		ShowForm:   p.showForm,
		FormTitle:  title,
		Table:      table.Render(state.Employees, state.Loading()),
		Pagination: NewPagination(p.skip, p.limit, state.Total),
	}
}

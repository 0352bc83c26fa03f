package console

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/form"
	"github.com/Artexxx/HR-Console/internal/hooks"
	"github.com/Artexxx/HR-Console/internal/notify"
	"github.com/Artexxx/HR-Console/internal/pages"
	"github.com/Artexxx/HR-Console/internal/table"
)

type listFilter struct {
	Department string
	Active     bool
}

func readFilter(args *fasthttp.Args) listFilter {
	active, _ := strconv.ParseBool(string(args.Peek("active")))

	return listFilter{
		Department: strings.TrimSpace(string(args.Peek("department"))),
		Active:     active,
	}
}

func (f listFilter) url(skip int) string {
	q := url.Values{}
	if skip > 0 {
		q.Set("skip", strconv.Itoa(skip))
	}
	if f.Department != "" {
		q.Set("department", f.Department)
	}
	if f.Active {
		q.Set("active", "true")
	}

	if len(q) == 0 {
		return "/employees"
	}

	return "/employees?" + q.Encode()
}

type departmentLister struct {
	api        EmployeesAPI
	department string
}

func (l departmentLister) List(ctx context.Context, skip, limit int) (dto.EmployeeList, error) {
	return l.api.ListByDepartment(ctx, l.department, skip, limit)
}

type activeLister struct {
	api EmployeesAPI
}

func (l activeLister) List(ctx context.Context, skip, limit int) (dto.EmployeeList, error) {
	return l.api.ListActive(ctx, skip, limit)
}

func (s *Service) lister(f listFilter) hooks.Lister {
	switch {
	case f.Department != "":
		return departmentLister{api: s.employees, department: f.Department}
	case f.Active:
		return activeLister{api: s.employees}
	default:
		return s.employees
	}
}

type formView struct {
	Title       string
	SubmitLabel string
	Action      string
	CancelURL   string
	Skip        int
	Values      form.Values
	Errors      map[string]string
	Departments []string
	Positions   []string
}

func newFormView(f *form.EmployeeForm, skip int) *formView {
	action := "/employees"
	if f.IsEdit() {
		action = "/employees/" + strconv.FormatInt(f.ID(), 10)
	}

	return &formView{
		Title:       f.Title(),
		SubmitLabel: f.SubmitLabel(),
		Action:      action,
		CancelURL:   listFilter{}.url(skip),
		Skip:        skip,
		Values:      f.Values(),
		Errors:      f.Errors(),
		Departments: form.Departments,
		Positions:   form.Positions,
	}
}

type employeesData struct {
	View        pages.EmployeesView
	Form        *formView
	Filter      listFilter
	Departments []string
	Skip        int
	PrevURL     string
	NextURL     string
}

func (s *Service) showEmployees(ctx *fasthttp.RequestCtx, status int, page *pages.EmployeesPage, f listFilter, fv *formView, flash []notify.Message) {
	view := page.View()

	data := employeesData{
		View:        view,
		Filter:      f,
		Departments: form.Departments,
		Skip:        view.Pagination.Skip,
		PrevURL:     f.url(view.Pagination.PrevSkip),
		NextURL:     f.url(view.Pagination.NextSkip),
	}
	if view.ShowForm {
		data.Form = fv
	}

	s.page(ctx, status, "employees.html", "Employees", flash, data)
}

func (s *Service) listEmployees(ctx *fasthttp.RequestCtx) {
	flash := takeFlash(ctx)
	f := readFilter(ctx.QueryArgs())

	page := pages.NewEmployeesPage(s.lister(f), parseOffset(ctx, "skip"), parseLimit(ctx, "limit", s.pageSize))
	page.Load(ctx)

	s.showEmployees(ctx, fasthttp.StatusOK, page, f, nil, flash)
}

func (s *Service) newEmployee(ctx *fasthttp.RequestCtx) {
	skip := parseOffset(ctx, "skip")

	page := pages.NewEmployeesPage(s.employees, skip, s.pageSize)
	page.Add()
	page.Load(ctx)

	f := form.New(nil, s.employees, notify.NewFlash(), nil)
	s.showEmployees(ctx, fasthttp.StatusOK, page, listFilter{}, newFormView(f, skip), takeFlash(ctx))
}

func (s *Service) editEmployee(ctx *fasthttp.RequestCtx) {
	id, valid := parseID(ctx)
	if !valid {
		s.fail(ctx, fasthttp.StatusBadRequest, "Invalid employee id")
		return
	}

	skip := parseOffset(ctx, "skip")

	state := hooks.NewEmployee(s.employees, id).Mount(ctx)
	if state.Employee == nil {
		redirect(ctx, listFilter{}.url(skip), []notify.Message{{Type: notify.LevelError, Message: state.Error}})
		return
	}

	page := pages.NewEmployeesPage(s.employees, skip, s.pageSize)
	page.Edit(*state.Employee)
	page.Load(ctx)

	f := form.New(state.Employee, s.employees, notify.NewFlash(), nil)
	s.showEmployees(ctx, fasthttp.StatusOK, page, listFilter{}, newFormView(f, skip), takeFlash(ctx))
}

func (s *Service) createEmployee(ctx *fasthttp.RequestCtx) {
	s.submit(ctx, nil)
}

func (s *Service) updateEmployee(ctx *fasthttp.RequestCtx) {
	id, valid := parseID(ctx)
	if !valid {
		s.fail(ctx, fasthttp.StatusBadRequest, "Invalid employee id")
		return
	}

	s.submit(ctx, &dto.Employee{ID: id})
}

// submit redirects back to the list on success and re-renders the open form otherwise.
func (s *Service) submit(ctx *fasthttp.RequestCtx, existing *dto.Employee) {
	skip, _ := strconv.Atoi(postArg(ctx, "skip"))
	skip = max(skip, 0)

	flash := notify.NewFlash()

	f := form.New(existing, s.employees, flash, nil)
	f.SetAll(readValues(ctx))

	if _, saved := f.Submit(ctx); saved {
		redirect(ctx, listFilter{}.url(skip), flash.Drain())
		return
	}

	status := fasthttp.StatusOK
	if len(f.Errors()) > 0 {
		status = fasthttp.StatusUnprocessableEntity
	}

	page := pages.NewEmployeesPage(s.employees, skip, s.pageSize)
	if existing != nil {
		page.Edit(*existing)
	} else {
		page.Add()
	}
	page.Load(ctx)

	s.showEmployees(ctx, status, page, listFilter{}, newFormView(f, skip), flash.Drain())
}

func readValues(ctx *fasthttp.RequestCtx) form.Values {
	active := postArg(ctx, form.FieldIsActive)

	return form.Values{
		Name:       postArg(ctx, form.FieldName),
		Email:      postArg(ctx, form.FieldEmail),
		Position:   postArg(ctx, form.FieldPosition),
		Department: postArg(ctx, form.FieldDepartment),
		Salary:     postArg(ctx, form.FieldSalary),
		IsActive:   active != "" && active != "off" && active != "false",
	}
}

type deleteData struct {
	Prompt   string
	Employee table.Row
	Skip     int
}

func (s *Service) confirmDelete(ctx *fasthttp.RequestCtx) {
	id, valid := parseID(ctx)
	if !valid {
		s.fail(ctx, fasthttp.StatusBadRequest, "Invalid employee id")
		return
	}

	skip := parseOffset(ctx, "skip")

	state := hooks.NewEmployee(s.employees, id).Mount(ctx)
	if state.Employee == nil {
		redirect(ctx, listFilter{}.url(skip), []notify.Message{{Type: notify.LevelError, Message: state.Error}})
		return
	}

	row := table.Render([]dto.Employee{*state.Employee}, false).Rows[0]

	s.page(ctx, fasthttp.StatusOK, "delete.html", "Delete employee", takeFlash(ctx), deleteData{
		Prompt:   table.ConfirmPrompt,
		Employee: row,
		Skip:     skip,
	})
}

// deleteEmployee only calls the backend when the confirmation form was submitted with confirm=yes.
func (s *Service) deleteEmployee(ctx *fasthttp.RequestCtx) {
	id, valid := parseID(ctx)
	if !valid {
		s.fail(ctx, fasthttp.StatusBadRequest, "Invalid employee id")
		return
	}

	skip, _ := strconv.Atoi(postArg(ctx, "skip"))
	confirmed := postArg(ctx, "confirm") == "yes"

	flash := notify.NewFlash()
	t := table.New(s.employees, table.ConfirmFunc(func(string) bool { return confirmed }), flash, nil)
	t.Delete(ctx, id)

	redirect(ctx, listFilter{}.url(max(skip, 0)), flash.Drain())
}

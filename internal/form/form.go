package form

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Artexxx/HR-Console/internal/apiclient"
	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/notify"
)

const (
	msgCreated    = "Employee created successfully!"
	msgUpdated    = "Employee updated successfully!"
	msgSaveFailed = "Failed to save employee"
)

type Saver interface {
	Create(ctx context.Context, in dto.EmployeeInput) (dto.Employee, error)
	Update(ctx context.Context, id int64, in dto.EmployeeInput) (dto.Employee, error)
}

// Values is the raw form buffer, exactly as typed by the user.
type Values struct {
	Name       string `form:"name" validate:"required"`
	Email      string `form:"email" validate:"required"`
	Position   string `form:"position" validate:"required"`
	Department string `form:"department" validate:"required"`
	Salary     string `form:"salary" validate:"required,positive_decimal"`
	IsActive   bool   `form:"is_active"`
}

func ValuesFrom(e dto.Employee) Values {
	return Values{
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		Salary:     decimal.NewFromFloat(e.Salary).String(),
		IsActive:   e.IsActive,
	}
}

// EmployeeForm is in update mode when built from an employee with a non-zero id,
// otherwise in create mode.
type EmployeeForm struct {
	id        int64
	values    Values
	errors    map[string]string
	saver     Saver
	notifier  notify.Notifier
	onSuccess func(dto.Employee)
}

func New(employee *dto.Employee, saver Saver, notifier notify.Notifier, onSuccess func(dto.Employee)) *EmployeeForm {
	f := &EmployeeForm{
		values:    Values{IsActive: true},
		errors:    map[string]string{},
		saver:     saver,
		notifier:  notifier,
		onSuccess: onSuccess,
	}

	if employee != nil {
		f.id = employee.ID
		f.values = ValuesFrom(*employee)
	}

	return f
}

func (f *EmployeeForm) ID() int64 {
	return f.id
}

func (f *EmployeeForm) IsEdit() bool {
	return f.id != 0
}

func (f *EmployeeForm) Title() string {
	if f.IsEdit() {
		return "Edit Employee"
	}

	return "Add New Employee"
}

func (f *EmployeeForm) SubmitLabel() string {
	if f.IsEdit() {
		return "Update"
	}

	return "Create"
}

func (f *EmployeeForm) Values() Values {
	return f.values
}

func (f *EmployeeForm) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}

	return out
}

func (f *EmployeeForm) Error(field string) string {
	return f.errors[field]
}

// Set updates one field and clears its pending error.
func (f *EmployeeForm) Set(field, value string) error {
	switch field {
	case FieldName:
		f.values.Name = value
	case FieldEmail:
		f.values.Email = value
	case FieldPosition:
		f.values.Position = value
	case FieldDepartment:
		f.values.Department = value
	case FieldSalary:
		f.values.Salary = value
	case FieldIsActive:
		active, err := parseCheckbox(value)
		if err != nil {
			return fmt.Errorf("field %s: %w", field, err)
		}
		f.values.IsActive = active
	default:
		return fmt.Errorf("unknown field %q", field)
	}

	delete(f.errors, field)

	return nil
}

// SetAll replaces the buffer with values posted from an HTML form.
func (f *EmployeeForm) SetAll(v Values) {
	f.values = v
	f.errors = map[string]string{}
}

func (f *EmployeeForm) Validate() bool {
	f.errors = check(f.values)

	return len(f.errors) == 0
}

// Input converts a validated buffer into the request body.
func (f *EmployeeForm) Input() (dto.EmployeeInput, error) {
	salary, err := parseSalary(f.values.Salary)
	if err != nil {
		return dto.EmployeeInput{}, fmt.Errorf("parseSalary: %w", err)
	}

	return dto.EmployeeInput{
		Name:       trim(f.values.Name),
		Email:      trim(f.values.Email),
		Position:   f.values.Position,
		Department: f.values.Department,
		Salary:     salary.InexactFloat64(),
		IsActive:   f.values.IsActive,
	}, nil
}

// Submit validates, then creates or updates. It reports false when validation
// failed or the backend rejected the request; no call is made in the first case.
func (f *EmployeeForm) Submit(ctx context.Context) (dto.Employee, bool) {
	if !f.Validate() {
		return dto.Employee{}, false
	}

	in, err := f.Input()
	if err != nil {
		f.errors[FieldSalary] = fieldMessages[FieldSalary]
		return dto.Employee{}, false
	}

	var (
		saved dto.Employee
		msg   string
	)

	if f.IsEdit() {
		saved, err = f.saver.Update(ctx, f.id, in)
		msg = msgUpdated
	} else {
		saved, err = f.saver.Create(ctx, in)
		msg = msgCreated
	}

	if err != nil {
		f.notifier.Error(apiclient.Message(err, msgSaveFailed))
		return dto.Employee{}, false
	}

	f.notifier.Success(msg)

	if f.onSuccess != nil {
		f.onSuccess(saved)
	}

	return saved, true
}

func parseCheckbox(v string) (bool, error) {
	switch v {
	case "", "off":
		return false, nil
	case "on":
		return true, nil
	}

	return strconv.ParseBool(v)
}

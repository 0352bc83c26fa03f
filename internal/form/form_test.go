package form

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Console/internal/apiclient"
	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/notify"
)

type fakeSaver struct {
	created []dto.EmployeeInput
	updated map[int64]dto.EmployeeInput
	err     error
}

func (f *fakeSaver) Create(_ context.Context, in dto.EmployeeInput) (dto.Employee, error) {
	f.created = append(f.created, in)
	if f.err != nil {
		return dto.Employee{}, f.err
	}

	return dto.Employee{ID: 101, Name: in.Name}, nil
}

func (f *fakeSaver) Update(_ context.Context, id int64, in dto.EmployeeInput) (dto.Employee, error) {
	if f.updated == nil {
		f.updated = map[int64]dto.EmployeeInput{}
	}
	f.updated[id] = in
	if f.err != nil {
		return dto.Employee{}, f.err
	}

	return dto.Employee{ID: id, Name: in.Name}, nil
}

func (f *fakeSaver) calls() int {
	return len(f.created) + len(f.updated)
}

func validValues() Values {
	return Values{
		Name:       "  Jane Doe ",
		Email:      "jane@example.com",
		Position:   "Manager",
		Department: "Sales",
		Salary:     "75000.50",
		IsActive:   true,
	}
}

func TestNew_Defaults(t *testing.T) {
	f := New(nil, &fakeSaver{}, notify.NewFlash(), nil)

	assert.False(t, f.IsEdit())
	assert.True(t, f.Values().IsActive)
	assert.Equal(t, "Add New Employee", f.Title())
	assert.Equal(t, "Create", f.SubmitLabel())

	edit := New(&dto.Employee{ID: 5, Name: "Bob", Salary: 50000}, &fakeSaver{}, notify.NewFlash(), nil)
	assert.True(t, edit.IsEdit())
	assert.Equal(t, "Update", edit.SubmitLabel())
	assert.Equal(t, "50000", edit.Values().Salary)
}

func TestSubmit_InvalidInputMakesNoCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(v *Values)
		field  string
		msg    string
	}{
		{"empty name", func(v *Values) { v.Name = "" }, FieldName, "Name is required"},
		{"blank name", func(v *Values) { v.Name = "   " }, FieldName, "Name is required"},
		{"blank email", func(v *Values) { v.Email = " \t" }, FieldEmail, "Email is required"},
		{"no position", func(v *Values) { v.Position = "" }, FieldPosition, "Position is required"},
		{"no department", func(v *Values) { v.Department = "" }, FieldDepartment, "Department is required"},
		{"no salary", func(v *Values) { v.Salary = "" }, FieldSalary, "Valid salary is required"},
		{"zero salary", func(v *Values) { v.Salary = "0" }, FieldSalary, "Valid salary is required"},
		{"negative salary", func(v *Values) { v.Salary = "-10" }, FieldSalary, "Valid salary is required"},
		{"not a number", func(v *Values) { v.Salary = "lots" }, FieldSalary, "Valid salary is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &fakeSaver{}
			flash := notify.NewFlash()
			successCalls := 0

			f := New(nil, saver, flash, func(dto.Employee) { successCalls++ })
			v := validValues()
			tt.mutate(&v)
			f.SetAll(v)

			_, ok := f.Submit(context.Background())

			assert.False(t, ok)
			assert.Equal(t, map[string]string{tt.field: tt.msg}, f.Errors())
			assert.Zero(t, saver.calls())
			assert.Zero(t, successCalls)
			assert.Empty(t, flash.Messages())
		})
	}
}

func TestSubmit_AllFieldsMissing(t *testing.T) {
	f := New(nil, &fakeSaver{}, notify.NewFlash(), nil)

	assert.False(t, f.Validate())
	assert.Len(t, f.Errors(), 5)
}

func TestSubmit_CreatesExactlyOnce(t *testing.T) {
	saver := &fakeSaver{}
	flash := notify.NewFlash()

	var closed dto.Employee
	f := New(nil, saver, flash, func(e dto.Employee) { closed = e })
	f.SetAll(validValues())

	saved, ok := f.Submit(context.Background())
	require.True(t, ok)

	require.Len(t, saver.created, 1)
	assert.Empty(t, saver.updated)
	assert.Equal(t, dto.EmployeeInput{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Position:   "Manager",
		Department: "Sales",
		Salary:     75000.5,
		IsActive:   true,
	}, saver.created[0])
	assert.Equal(t, int64(101), saved.ID)
	assert.Equal(t, saved, closed)
	assert.Equal(t, []notify.Message{{Type: notify.LevelSuccess, Message: "Employee created successfully!"}}, flash.Messages())
}

func TestSubmit_UpdatesWhenIDPresent(t *testing.T) {
	saver := &fakeSaver{}
	flash := notify.NewFlash()
	f := New(&dto.Employee{ID: 9, Name: "Old", Email: "o@example.com", Position: "Analyst", Department: "HR", Salary: 1000}, saver, flash, nil)

	require.NoError(t, f.Set(FieldName, "New"))
	_, ok := f.Submit(context.Background())

	require.True(t, ok)
	assert.Empty(t, saver.created)
	assert.Equal(t, "New", saver.updated[9].Name)
	assert.Equal(t, "Employee updated successfully!", flash.Messages()[0].Message)
}

func TestSubmit_BackendFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"detail", &apiclient.ResponseError{StatusCode: http.StatusBadRequest, Detail: "Email already registered"}, "Email already registered"},
		{"no detail", errors.New("dial tcp: refused"), "Failed to save employee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saver := &fakeSaver{err: tt.err}
			flash := notify.NewFlash()
			called := false

			f := New(nil, saver, flash, func(dto.Employee) { called = true })
			f.SetAll(validValues())

			_, ok := f.Submit(context.Background())

			assert.False(t, ok)
			assert.False(t, called)
			assert.Equal(t, []notify.Message{{Type: notify.LevelError, Message: tt.want}}, flash.Messages())
		})
	}
}

func TestSet_ClearsFieldError(t *testing.T) {
	f := New(nil, &fakeSaver{}, notify.NewFlash(), nil)
	require.False(t, f.Validate())

	require.NoError(t, f.Set(FieldName, "Ann"))
	assert.Empty(t, f.Error(FieldName))
	assert.Equal(t, "Email is required", f.Error(FieldEmail))

	require.NoError(t, f.Set(FieldIsActive, "on"))
	assert.True(t, f.Values().IsActive)
	require.NoError(t, f.Set(FieldIsActive, ""))
	assert.False(t, f.Values().IsActive)

	assert.Error(t, f.Set(FieldIsActive, "maybe"))
	assert.Error(t, f.Set("nickname", "x"))
}

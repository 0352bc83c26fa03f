package table

import (
	"context"
	"strconv"

	"github.com/Artexxx/HR-Console/internal/currency"
	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/notify"
)

const (
	ConfirmPrompt = "Are you sure you want to delete this employee?"
	EmptyText     = "No employees found"

	msgDeleted      = "Employee deleted successfully!"
	msgDeleteFailed = "Failed to delete employee"
)

type Deleter interface {
	Delete(ctx context.Context, id int64) error
}

type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool {
	return f(prompt)
}

// Confirmed is used where the confirmation already happened, e.g. a submitted confirm form.
var Confirmed = ConfirmFunc(func(string) bool { return true })

type Row struct {
	ID         int64
	Name       string
	Email      string
	Position   string
	Department string
	Salary     string
	Active     bool
	Status     string
}

type View struct {
	Loading bool
	Empty   bool
	Rows    []Row
}

func Render(employees []dto.Employee, loading bool) View {
	if loading {
		return View{Loading: true}
	}

	if len(employees) == 0 {
		return View{Empty: true}
	}

	rows := make([]Row, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, toRow(e))
	}

	return View{Rows: rows}
}

func toRow(e dto.Employee) Row {
	status := "Inactive"
	if e.IsActive {
		status = "Active"
	}

	return Row{
		ID:         e.ID,
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		Salary:     currency.USD(e.Salary),
		Active:     e.IsActive,
		Status:     status,
	}
}

func (r Row) IDString() string {
	return strconv.FormatInt(r.ID, 10)
}

// EmployeeTable performs the row actions. The list itself is never modified
// here; a successful delete asks the owner to refetch.
type EmployeeTable struct {
	deleter   Deleter
	confirmer Confirmer
	notifier  notify.Notifier
	onDelete  func(ctx context.Context)
}

func New(deleter Deleter, confirmer Confirmer, notifier notify.Notifier, onDelete func(ctx context.Context)) *EmployeeTable {
	return &EmployeeTable{
		deleter:   deleter,
		confirmer: confirmer,
		notifier:  notifier,
		onDelete:  onDelete,
	}
}

// Delete reports whether the employee was removed.
func (t *EmployeeTable) Delete(ctx context.Context, id int64) bool {
	if !t.confirmer.Confirm(ConfirmPrompt) {
		return false
	}

	if err := t.deleter.Delete(ctx, id); err != nil {
		t.notifier.Error(msgDeleteFailed)
		return false
	}

	t.notifier.Success(msgDeleted)

	if t.onDelete != nil {
		t.onDelete(ctx)
	}

	return true
}

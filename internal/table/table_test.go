package table

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/notify"
)

type fakeDeleter struct {
	calls []int64
	err   error
}

func (f *fakeDeleter) Delete(_ context.Context, id int64) error {
	f.calls = append(f.calls, id)
	return f.err
}

func TestDelete_WithoutConfirmation(t *testing.T) {
	deleter := &fakeDeleter{}
	flash := notify.NewFlash()
	refetches := 0

	var prompt string
	confirm := ConfirmFunc(func(p string) bool {
		prompt = p
		return false
	})

	ok := New(deleter, confirm, flash, func(context.Context) { refetches++ }).Delete(context.Background(), 3)

	assert.False(t, ok)
	assert.Equal(t, "Are you sure you want to delete this employee?", prompt)
	assert.Empty(t, deleter.calls)
	assert.Zero(t, refetches)
	assert.Empty(t, flash.Messages())
}

func TestDelete_Confirmed(t *testing.T) {
	deleter := &fakeDeleter{}
	flash := notify.NewFlash()
	refetches := 0

	ok := New(deleter, Confirmed, flash, func(context.Context) { refetches++ }).Delete(context.Background(), 3)

	assert.True(t, ok)
	assert.Equal(t, []int64{3}, deleter.calls)
	assert.Equal(t, 1, refetches)
	assert.Equal(t, []notify.Message{{Type: notify.LevelSuccess, Message: "Employee deleted successfully!"}}, flash.Messages())
}

func TestDelete_Failure(t *testing.T) {
	deleter := &fakeDeleter{err: errors.New("status 500")}
	flash := notify.NewFlash()
	refetches := 0

	ok := New(deleter, Confirmed, flash, func(context.Context) { refetches++ }).Delete(context.Background(), 3)

	assert.False(t, ok)
	assert.Len(t, deleter.calls, 1)
	assert.Zero(t, refetches)
	assert.Equal(t, []notify.Message{{Type: notify.LevelError, Message: "Failed to delete employee"}}, flash.Messages())
}

func TestRender(t *testing.T) {
	assert.Equal(t, View{Loading: true}, Render([]dto.Employee{{ID: 1}}, true))
	assert.Equal(t, View{Empty: true}, Render(nil, false))

	view := Render([]dto.Employee{
		{ID: 1, Name: "Ann", Salary: 75000.5, IsActive: true},
		{ID: 2, Name: "Bob", Salary: 1000},
	}, false)

	assert.Len(t, view.Rows, 2)
	assert.Equal(t, "$75,000.50", view.Rows[0].Salary)
	assert.Equal(t, "Active", view.Rows[0].Status)
	assert.Equal(t, "Inactive", view.Rows[1].Status)
	assert.Equal(t, "2", view.Rows[1].IDString())
}

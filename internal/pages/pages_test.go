package pages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/hooks"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name         string
		skip, total  int
		pages, page  int
		prevDisabled bool
		nextDisabled bool
		showing      string
	}{
		{"first page", 0, 25, 3, 1, true, false, "Showing 1 to 10 of 25 employees"},
		{"middle page", 10, 25, 3, 2, false, false, "Showing 11 to 20 of 25 employees"},
		{"last page", 20, 25, 3, 3, false, true, "Showing 21 to 25 of 25 employees"},
		{"exact fit", 0, 10, 1, 1, true, true, "Showing 1 to 10 of 10 employees"},
		{"empty", 0, 0, 0, 1, true, true, "Showing 1 to 0 of 0 employees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.skip, 10, tt.total)

			assert.Equal(t, tt.pages, p.TotalPages)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.prevDisabled, p.PrevDisabled)
			assert.Equal(t, tt.nextDisabled, p.NextDisabled)
			assert.Equal(t, tt.showing, p.Showing())
		})
	}
}

func TestPagination_Visible(t *testing.T) {
	assert.False(t, NewPagination(0, 10, 10).Visible())
	assert.True(t, NewPagination(0, 10, 11).Visible())
	assert.Equal(t, "Page 2 of 3", NewPagination(10, 10, 25).PageText())
	assert.Equal(t, 0, NewPagination(5, 10, 25).PrevSkip)
}

type fakeLister struct {
	calls [][2]int
	total int
}

func (f *fakeLister) List(_ context.Context, skip, limit int) (dto.EmployeeList, error) {
	f.calls = append(f.calls, [2]int{skip, limit})

	return dto.EmployeeList{Items: []dto.Employee{{ID: int64(skip + 1)}}, Total: f.total}, nil
}

func TestEmployeesPage_Navigation(t *testing.T) {
	ctx := context.Background()
	api := &fakeLister{total: 25}
	page := NewEmployeesPage(api, 0, 10)
	page.Load(ctx)

	page.Prev(ctx)
	assert.Equal(t, [][2]int{{0, 10}}, api.calls, "previous is clamped at zero")

	page.Next(ctx)
	page.Next(ctx)
	view := page.View()
	assert.Equal(t, 3, view.Pagination.CurrentPage)
	assert.True(t, view.Pagination.NextDisabled)

	page.Prev(ctx)
	assert.Equal(t, [][2]int{{0, 10}, {10, 10}, {20, 10}, {10, 10}}, api.calls)
}

func TestEmployeesPage_FormLifecycle(t *testing.T) {
	ctx := context.Background()
	api := &fakeLister{total: 1}
	page := NewEmployeesPage(api, 0, 10)
	page.Load(ctx)

	page.Add()
	view := page.View()
	assert.True(t, view.ShowForm)
	assert.Equal(t, "Add New Employee", view.FormTitle)

	page.Edit(dto.Employee{ID: 4, Name: "Ann"})
	require.NotNil(t, page.Selected())
	assert.Equal(t, "Edit Employee", page.View().FormTitle)

	page.Success(ctx)
	assert.False(t, page.View().ShowForm)
	assert.Nil(t, page.Selected())
	assert.Len(t, api.calls, 2, "success refetches once")

	page.Add()
	page.Cancel()
	assert.False(t, page.View().ShowForm)
	assert.Len(t, api.calls, 2)
}

func TestDashboard(t *testing.T) {
	view := Dashboard(hooks.StatsState{
		Status: hooks.StatusSuccess,
		Stats: &dto.Stats{
			TotalEmployees:    4,
			ActiveEmployees:   3,
			InactiveEmployees: 1,
			AverageSalary:     62500.4,
			TotalSalary:       250001.6,
			Departments: map[string]dto.DepartmentStats{
				"Sales":       {Count: 1, AvgSalary: 50000},
				"Engineering": {Count: 3, AvgSalary: 66667.2},
			},
		},
	})

	require.True(t, view.Ready)
	assert.Equal(t, "4", view.Cards[0].Value)
	assert.Equal(t, "$62,500", view.Cards[3].Value)
	assert.Equal(t, "$250,002", view.TotalPayroll)
	assert.Equal(t, "75.0%", view.ActiveRate)
	assert.Equal(t, []DepartmentRow{
		{Name: "Engineering", Count: 3, AvgSalary: "$66,667"},
		{Name: "Sales", Count: 1, AvgSalary: "$50,000"},
	}, view.Departments)
}

func TestDashboard_States(t *testing.T) {
	assert.True(t, Dashboard(hooks.StatsState{Status: hooks.StatusLoading}).Loading)
	assert.Equal(t, "Failed to fetch statistics", Dashboard(hooks.StatsState{Status: hooks.StatusError, Error: "Failed to fetch statistics"}).Error)

	empty := Dashboard(hooks.StatsState{Status: hooks.StatusSuccess, Stats: &dto.Stats{}})
	assert.True(t, empty.NoDepartments())
	assert.Equal(t, "0%", empty.ActiveRate)
}

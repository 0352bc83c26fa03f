package pages

import (
	"sort"
	"strconv"

	"github.com/Artexxx/HR-Console/internal/currency"
	"github.com/Artexxx/HR-Console/internal/hooks"
)

const NoDepartmentsText = "No department data available"

type StatCard struct {
	Title string
	Value string
	Color string
}

type DepartmentRow struct {
	Name      string
	Count     int
	AvgSalary string
}

type DashboardView struct {
	Loading      bool
	Error        string
	Ready        bool
	Cards        []StatCard
	Departments  []DepartmentRow
	TotalPayroll string
	ActiveRate   string
}

func (v DashboardView) NoDepartments() bool {
	return len(v.Departments) == 0
}

// Dashboard is a pure projection of the statistics hook state.
func Dashboard(state hooks.StatsState) DashboardView {
	switch {
	case state.Loading():
		return DashboardView{Loading: true}
	case state.Error != "":
		return DashboardView{Error: state.Error}
	case state.Stats == nil:
		return DashboardView{}
	}

	s := state.Stats

	names := make([]string, 0, len(s.Departments))
	for name := range s.Departments {
		names = append(names, name)
	}
	sort.Strings(names)

	departments := make([]DepartmentRow, 0, len(names))
	for _, name := range names {
		d := s.Departments[name]
		departments = append(departments, DepartmentRow{
			Name:      name,
			Count:     d.Count,
			AvgSalary: currency.USDWhole(d.AvgSalary),
		})
	}

	return DashboardView{
		Ready: true,
		Cards: []StatCard{
			{Title: "Total Employees", Value: strconv.Itoa(s.TotalEmployees), Color: "blue"},
			{Title: "Active Employees", Value: strconv.Itoa(s.ActiveEmployees), Color: "green"},
			{Title: "Inactive Employees", Value: strconv.Itoa(s.InactiveEmployees), Color: "orange"},
			{Title: "Average Salary", Value: currency.USDWhole(s.AverageSalary), Color: "purple"},
		},
		Departments:  departments,
		TotalPayroll: currency.USDWhole(s.TotalSalary),
		ActiveRate:   s.ActiveRateText() + "%",
	}
}

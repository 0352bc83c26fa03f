package dto

import "fmt"

// Stats — агрегированная статистика, пересчитывается сервером на каждый запрос.
type Stats struct {
	TotalEmployees    int                        `json:"total_employees"`
	ActiveEmployees   int                        `json:"active_employees"`
	InactiveEmployees int                        `json:"inactive_employees"`
	AverageSalary     float64                    `json:"average_salary"`
	TotalSalary       float64                    `json:"total_salary"`
	Departments       map[string]DepartmentStats `json:"departments"`
}

type DepartmentStats struct {
	Count     int     `json:"count"`
	AvgSalary float64 `json:"avg_salary"`
}

// ActiveRate returns the share of active employees in percent, 0 when there are none.
func (s Stats) ActiveRate() float64 {
	if s.TotalEmployees <= 0 {
		return 0
	}

	return float64(s.ActiveEmployees) / float64(s.TotalEmployees) * 100
}

// ActiveRateText formats ActiveRate with one decimal, or "0" for an empty company.
func (s Stats) ActiveRateText() string {
	if s.TotalEmployees <= 0 {
		return "0"
	}

	return fmt.Sprintf("%.1f", s.ActiveRate())
}

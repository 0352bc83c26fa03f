package dto

// Employee — запись сотрудника в бэкенде.
type Employee struct {
	ID         int64   `json:"id"`                   // Идентификатор (назначает сервер)
	Name       string  `json:"name"`                 // Имя
	Email      string  `json:"email"`                // Почта
	Position   string  `json:"position"`             // Должность
	Department string  `json:"department"`           // Отдел
	Salary     float64 `json:"salary"`               // Оклад, > 0
	IsActive   bool    `json:"is_active"`            // Активен ли сотрудник
	CreatedAt  string  `json:"created_at,omitempty"` // Время создания (формат сервера)
	UpdatedAt  string  `json:"updated_at,omitempty"` // Время изменения (формат сервера)
}

// EmployeeInput — тело запросов POST /employees и PUT /employees/{id}.
type EmployeeInput struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
	IsActive   bool    `json:"is_active"`
}

func (e Employee) Input() EmployeeInput {
	return EmployeeInput{
		Name:       e.Name,
		Email:      e.Email,
		Position:   e.Position,
		Department: e.Department,
		Salary:     e.Salary,
		IsActive:   e.IsActive,
	}
}

// EmployeeList — страница списка сотрудников.
type EmployeeList struct {
	Items []Employee `json:"items"`
	Total int        `json:"total"`
	Skip  int        `json:"skip"`
	Limit int        `json:"limit"`
}

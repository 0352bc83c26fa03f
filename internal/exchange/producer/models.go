package producer

import (
	"time"

	"github.com/google/uuid"
)

// EmployeePayload — снимок сотрудника на момент изменения
type EmployeePayload struct {
	ID         int64   `json:"id" example:"42"`                        // Идентификатор сотрудника в бэкенде
	Name       string  `json:"name,omitempty" example:"Jane Doe"`      // Имя
	Email      string  `json:"email,omitempty" example:"jane@corp.io"` // E-mail
	Position   string  `json:"position,omitempty" example:"Manager"`   // Должность
	Department string  `json:"department,omitempty" example:"Sales"`   // Отдел
	Salary     float64 `json:"salary,omitempty" example:"75000"`       // Оклад
	IsActive   bool    `json:"is_active"`                              // Активен ли сотрудник
}

type Envelope[T any] struct {
	Kind       string    `json:"kind"        example:"employee.created"`                     // Тип события
	MessageID  uuid.UUID `json:"message_id"  example:"c7e06db5-4b71-4c54-9334-3f9a6e6c5d0e"` // Идентификатор события (UUID v4)
	EmployeeID int64     `json:"employee_id" example:"42"`                                   // Идентификатор сотрудника
	Payload    T         `json:"payload"`                                                    // Полезная нагрузка
	Timestamp  time.Time `json:"timestamp"   example:"2025-10-19T12:34:56Z"`                 // Время формирования события
	Source     string    `json:"source"      example:"hr-console"`                           // Сервис-источник
}

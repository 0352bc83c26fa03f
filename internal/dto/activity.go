package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ActivityEvent — событие изменения сотрудника, сохранённое в журнале.
type ActivityEvent struct {
	ID         int64           `json:"id"`
	MessageID  uuid.UUID       `json:"message_id"`
	Kind       string          `json:"kind"`
	EmployeeID int64           `json:"employee_id"`
	Topic      string          `json:"topic"`
	Partition  int             `json:"partition"`
	Offset     int64           `json:"offset"`
	Payload    json.RawMessage `json:"payload"`
	ReceivedAt string          `json:"received_at"`
}

// ActivityDLQ — сообщение, которое не удалось разобрать.
type ActivityDLQ struct {
	ID         int64           `json:"id"`
	Topic      string          `json:"topic"`
	Key        string          `json:"key"`
	Payload    json.RawMessage `json:"payload"`
	Error      string          `json:"error"`
	ReceivedAt string          `json:"received_at"`
}

const (
	EventEmployeeCreated = "employee.created"
	EventEmployeeUpdated = "employee.updated"
	EventEmployeeDeleted = "employee.deleted"
)

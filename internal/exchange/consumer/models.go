package consumer

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Envelope — входящее событие изменения сотрудника; payload хранится как есть.
type Envelope struct {
	Kind       string          `json:"kind"`
	MessageID  uuid.UUID       `json:"message_id"`
	EmployeeID int64           `json:"employee_id"`
	Payload    json.RawMessage `json:"payload"`
	Source     string          `json:"source"`
}

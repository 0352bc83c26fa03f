package consumer

import (
	"fmt"

	"github.com/Artexxx/HR-Console/internal/dto"
)

var allowedKinds = map[string]struct{}{
	dto.EventEmployeeCreated: {},
	dto.EventEmployeeUpdated: {},
	dto.EventEmployeeDeleted: {},
}

func validateEnvelope(env Envelope) string {
	if _, found := allowedKinds[env.Kind]; !found {
		return fmt.Sprintf("invalid value in field 'kind'=%s", env.Kind)
	}

	if env.EmployeeID <= 0 {
		return "required field 'employee_id'"
	}

	return ""
}

package employees

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type Publisher interface {
	PublishEmployeeEvent(ctx context.Context, kind string, employee dto.Employee) error
}

// Publishing wraps API and announces successful mutations. A failed publish is
// logged only: the backend already accepted the change.
type Publishing struct {
	*API
	publisher Publisher
	log       zerolog.Logger
}

func WithEvents(api *API, publisher Publisher, log zerolog.Logger) *Publishing {
	return &Publishing{
		API:       api,
		publisher: publisher,
		log:       log.With().Str("component", "employees.Publishing").Logger(),
	}
}

func (p *Publishing) Create(ctx context.Context, in dto.EmployeeInput) (dto.Employee, error) {
	created, err := p.API.Create(ctx, in)
	if err != nil {
		return dto.Employee{}, err
	}

	p.publish(ctx, dto.EventEmployeeCreated, created)

	return created, nil
}

func (p *Publishing) Update(ctx context.Context, id int64, in dto.EmployeeInput) (dto.Employee, error) {
	updated, err := p.API.Update(ctx, id, in)
	if err != nil {
		return dto.Employee{}, err
	}

	if updated.ID == 0 {
		updated.ID = id
	}

	p.publish(ctx, dto.EventEmployeeUpdated, updated)

	return updated, nil
}

func (p *Publishing) Delete(ctx context.Context, id int64) error {
	if err := p.API.Delete(ctx, id); err != nil {
		return err
	}

	p.publish(ctx, dto.EventEmployeeDeleted, dto.Employee{ID: id})

	return nil
}

func (p *Publishing) publish(ctx context.Context, kind string, employee dto.Employee) {
	if p.publisher == nil {
		return
	}

	if err := p.publisher.PublishEmployeeEvent(ctx, kind, employee); err != nil {
		p.log.Warn().
			Err(err).
			Str("kind", kind).
			Int64("employee_id", employee.ID).
			Msg("change event not published")
	}
}

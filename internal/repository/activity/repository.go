package activity

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type PgxPoolIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repository struct {
	pool PgxPoolIface
}

func NewRepository(pool PgxPoolIface) *Repository {
	return &Repository{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS console_activity (
	id          BIGSERIAL PRIMARY KEY,
	message_id  UUID        NOT NULL UNIQUE,
	kind        TEXT        NOT NULL,
	employee_id BIGINT      NOT NULL,
	topic       TEXT        NOT NULL,
	partition   INT         NOT NULL,
	"offset"    BIGINT      NOT NULL,
	payload     JSONB       NOT NULL,
	received_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS console_activity_employee_idx ON console_activity (employee_id);

CREATE TABLE IF NOT EXISTS console_activity_dlq (
	id          BIGSERIAL PRIMARY KEY,
	topic       TEXT        NOT NULL,
	msg_key     TEXT        NOT NULL DEFAULT '',
	payload     JSONB       NOT NULL,
	error       TEXT        NOT NULL,
	received_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицы журнала, если их ещё нет.
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) ExistsMessage(ctx context.Context, messageID uuid.UUID) (bool, error) {
	query := `
SELECT 1
FROM console_activity
WHERE message_id = $1::uuid
LIMIT 1;
`
	row := r.pool.QueryRow(ctx, query, messageID)

	var x int
	err := row.Scan(&x)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("row.Scan: %w", err)
	}

	return true, nil
}

// InsertEvent ignores a repeated message_id, so a redelivered message is stored once.
func (r *Repository) InsertEvent(ctx context.Context, event dto.ActivityEvent) error {
	query := `
INSERT INTO console_activity
	(message_id, kind, employee_id, topic, partition, "offset", payload, received_at)
VALUES
	(@message_id::uuid, @kind, @employee_id, @topic, @partition, @offset, @payload::jsonb, NOW())
ON CONFLICT (message_id) DO NOTHING;
`
	_, err := r.pool.Exec(ctx, query, pgx.NamedArgs{
		"message_id":  event.MessageID,
		"kind":        event.Kind,
		"employee_id": event.EmployeeID,
		"topic":       event.Topic,
		"partition":   event.Partition,
		"offset":      event.Offset,
		"payload":     string(event.Payload),
	})
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) InsertDLQ(ctx context.Context, dlq dto.ActivityDLQ) error {
	query := `
INSERT INTO console_activity_dlq
	(topic, msg_key, payload, error, received_at)
VALUES
	($1, $2, $3::jsonb, $4, NOW());
`
	_, err := r.pool.Exec(ctx, query, dlq.Topic, dlq.Key, string(dlq.Payload), dlq.Error)
	if err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

func (r *Repository) ListEvents(ctx context.Context, limit int) ([]dto.ActivityEvent, error) {
	query := `
SELECT id, message_id, kind, employee_id, topic, partition, "offset", payload, to_char(received_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
FROM console_activity
ORDER BY id DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.ActivityEvent
	for rows.Next() {
		var (
			event   dto.ActivityEvent
			payload []byte
		)

		err = rows.Scan(&event.ID, &event.MessageID, &event.Kind, &event.EmployeeID, &event.Topic, &event.Partition, &event.Offset, &payload, &event.ReceivedAt)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		event.Payload = payload
		out = append(out, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

func (r *Repository) ListDLQ(ctx context.Context, limit int) ([]dto.ActivityDLQ, error) {
	query := `
SELECT id, topic, msg_key, payload, error, to_char(received_at, 'YYYY-MM-DD"T"HH24:MI:SSOF')
FROM console_activity_dlq
ORDER BY id DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("pool.Query: %w", err)
	}
	defer rows.Close()

	var out []dto.ActivityDLQ
	for rows.Next() {
		var (
			dlq     dto.ActivityDLQ
			payload []byte
		)

		err = rows.Scan(&dlq.ID, &dlq.Topic, &dlq.Key, &payload, &dlq.Error, &dlq.ReceivedAt)
		if err != nil {
			return nil, fmt.Errorf("rows.Scan: %w", err)
		}

		dlq.Payload = payload
		out = append(out, dlq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return out, nil
}

func (r *Repository) ResetAll(ctx context.Context) error {
	query := `
TRUNCATE console_activity RESTART IDENTITY;
TRUNCATE console_activity_dlq RESTART IDENTITY;
`
	if _, err := r.pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("pool.Exec: %w", err)
	}

	return nil
}

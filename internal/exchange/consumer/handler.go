package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type ActivityRepository interface {
	ExistsMessage(ctx context.Context, messageID uuid.UUID) (bool, error)
	InsertEvent(ctx context.Context, ev dto.ActivityEvent) error
	InsertDLQ(ctx context.Context, dlq dto.ActivityDLQ) error
}

type Observer interface {
	EventConsumed(err error)
}

type handler struct {
	events      ActivityRepository
	observer    Observer
	log         zerolog.Logger
	commitOnDLQ bool
}

func (h *handler) Setup(_ sarama.ConsumerGroupSession) error   { return nil }
func (h *handler) Cleanup(_ sarama.ConsumerGroupSession) error { return nil }

func (h *handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if h.process(sess.Context(), msg) {
			sess.MarkMessage(msg, "")
		}
	}

	return nil
}

// process сохраняет событие в журнал и сообщает, можно ли коммитить offset.
func (h *handler) process(ctx context.Context, msg *sarama.ConsumerMessage) bool {
	var env Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return h.toDLQ(ctx, msg, fmt.Sprintf("invalid_json: %v", err))
	}

	if env.MessageID == uuid.Nil {
		return h.toDLQ(ctx, msg, "missing required field message_id")
	}

	if verr := validateEnvelope(env); verr != "" {
		return h.toDLQ(ctx, msg, verr)
	}

	exists, err := h.events.ExistsMessage(ctx, env.MessageID)
	if err != nil {
		h.log.Error().Err(err).Str("message_id", env.MessageID.String()).Msg("events.ExistsMessage")
		h.observe(err)
		return false
	}

	if exists {
		h.log.Info().
			Str("message_id", env.MessageID.String()).
			Int64("employee_id", env.EmployeeID).
			Msg("duplicate message, skip (idempotency)")
		return true // событие уже обработано ранее, коммитим
	}

	err = h.events.InsertEvent(ctx, dto.ActivityEvent{
		MessageID:  env.MessageID,
		Kind:       env.Kind,
		EmployeeID: env.EmployeeID,
		Topic:      msg.Topic,
		Partition:  int(msg.Partition),
		Offset:     msg.Offset,
		Payload:    append([]byte(nil), msg.Value...),
	})
	h.observe(err)

	if err != nil {
		h.log.Error().Err(err).Str("message_id", env.MessageID.String()).Msg("events.InsertEvent")
		return false
	}

	return true
}

func (h *handler) toDLQ(ctx context.Context, msg *sarama.ConsumerMessage, reason string) bool {
	payload := append([]byte(nil), msg.Value...)
	if !json.Valid(payload) {
		// колонка payload имеет тип jsonb, невалидное тело сохраняем строкой
		payload, _ = json.Marshal(string(msg.Value))
	}

	err := h.events.InsertDLQ(ctx, dto.ActivityDLQ{
		Topic:   msg.Topic,
		Key:     string(msg.Key),
		Payload: payload,
		Error:   reason,
	})
	h.observe(fmt.Errorf("dlq: %s", reason))

	if err != nil {
		h.log.Error().Err(err).Str("reason", reason).Msg("events.InsertDLQ")
		return false
	}

	h.log.Warn().
		Str("topic", msg.Topic).
		Int32("partition", msg.Partition).
		Int64("offset", msg.Offset).
		Str("reason", reason).
		Msg("message sent to DLQ")

	return h.commitOnDLQ
}

func (h *handler) observe(err error) {
	if h.observer != nil {
		h.observer.EventConsumed(err)
	}
}

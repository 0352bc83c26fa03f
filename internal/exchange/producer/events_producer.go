package producer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Artexxx/HR-Console/internal/dto"
)

type Observer interface {
	EventPublished(err error)
}

type Config struct {
	Topic    string
	Source   string
	Observer Observer
}

// EventsProducer публикует изменения сотрудников в один топик с ключом по id сотрудника,
// поэтому события одного сотрудника попадают в одну партицию по порядку.
type EventsProducer struct {
	sp       sarama.SyncProducer
	topic    string
	source   string
	observer Observer
	log      zerolog.Logger

	now   func() time.Time
	newID func() uuid.UUID
}

func NewEventsProducer(sp sarama.SyncProducer, cfg Config, log zerolog.Logger) *EventsProducer {
	return &EventsProducer{
		sp:       sp,
		topic:    cfg.Topic,
		source:   cfg.Source,
		observer: cfg.Observer,
		log:      log.With().Str("component", "EventsProducer").Logger(),
		now:      time.Now,
		newID:    uuid.New,
	}
}

// NewSyncProducer собирает идемпотентный sync-продюсер.
func NewSyncProducer(bootstrap, clientID string) (sarama.SyncProducer, error) {
	sCfg := sarama.NewConfig()
	sCfg.Version = sarama.V3_3_2_0
	sCfg.ClientID = clientID
	sCfg.Producer.Return.Successes = true
	sCfg.Producer.RequiredAcks = sarama.WaitForAll
	sCfg.Producer.Idempotent = true
	sCfg.Net.MaxOpenRequests = 1
	sCfg.Producer.Retry.Max = 5
	sCfg.Producer.Retry.Backoff = 200 * time.Millisecond

	sp, err := sarama.NewSyncProducer([]string{bootstrap}, sCfg)
	if err != nil {
		return nil, fmt.Errorf("sarama.NewSyncProducer: %w", err)
	}

	return sp, nil
}

func (p *EventsProducer) Close() error {
	if p == nil || p.sp == nil {
		return nil
	}

	return p.sp.Close()
}

func (p *EventsProducer) PublishEmployeeEvent(ctx context.Context, kind string, e dto.Employee) error {
	env := Envelope[EmployeePayload]{
		Kind:       kind,
		MessageID:  p.newID(),
		EmployeeID: e.ID,
		Payload: EmployeePayload{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Position:   e.Position,
			Department: e.Department,
			Salary:     e.Salary,
			IsActive:   e.IsActive,
		},
		Timestamp: p.now().UTC(),
		Source:    p.source,
	}

	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	err = p.send(ctx, strconv.FormatInt(e.ID, 10), body, map[string]string{
		"event-kind":   kind,
		"message-id":   env.MessageID.String(),
		"source":       p.source,
		"content-type": "application/json",
	})

	if p.observer != nil {
		p.observer.EventPublished(err)
	}

	return err
}

func (p *EventsProducer) send(_ context.Context, key string, value []byte, headers map[string]string) error {
	if p == nil || p.sp == nil {
		return errors.New("sync producer is not initialized")
	}

	hs := make([]sarama.RecordHeader, 0, len(headers))
	for k, v := range headers {
		hs = append(hs, sarama.RecordHeader{Key: []byte(k), Value: []byte(v)})
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.StringEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: hs,
	}

	part, off, err := p.sp.SendMessage(msg)
	if err != nil {
		p.log.Error().
			Err(err).
			Str("topic", p.topic).
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to send kafka message")

		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.Info().
		Str("topic", p.topic).
		Str("key", key).
		Int32("partition", part).
		Int64("offset", off).
		Int("bytes", len(value)).
		Msg("kafka message sent")

	return nil
}

package consumer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"
)

type Runner struct {
	brokers   []string
	groupID   string
	topic     string
	handler   *handler
	log       zerolog.Logger
	createCfg func() *sarama.Config
}

type RunnerConfig struct {
	Bootstrap string
	Topic     string
	GroupID   string
	ClientID  string
}

// NewActivityRunner читает топик изменений сотрудников и пишет каждое событие в журнал один раз.
func NewActivityRunner(cfg RunnerConfig, events ActivityRepository, observer Observer, log zerolog.Logger) *Runner {
	h := &handler{
		events:      events,
		observer:    observer,
		log:         log.With().Str("consumer", "activity").Logger(),
		commitOnDLQ: true,
	}

	return newRunner(cfg, h, log)
}

func newRunner(rc RunnerConfig, h *handler, log zerolog.Logger) *Runner {
	createCfg := func() *sarama.Config {
		cfg := sarama.NewConfig()
		cfg.Version = sarama.V3_3_2_0
		if rc.ClientID != "" {
			cfg.ClientID = rc.ClientID
		}
		cfg.Consumer.Group.Rebalance.Strategy = sarama.BalanceStrategyRange
		cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
		cfg.Consumer.Return.Errors = true
		// Автокоммит управляется вызовами session.MarkMessage
		return cfg
	}
	return &Runner{
		brokers:   []string{rc.Bootstrap},
		groupID:   rc.GroupID,
		topic:     rc.Topic,
		handler:   h,
		log:       log.With().Str("topic", rc.Topic).Str("group", rc.GroupID).Logger(),
		createCfg: createCfg,
	}
}

func (r *Runner) Start(ctx context.Context) error {
	cfg := r.createCfg()

	consumerGroup, err := sarama.NewConsumerGroup(r.brokers, r.groupID, cfg)
	if err != nil {
		return fmt.Errorf("sarama.NewConsumerGroup: %w", err)
	}
	defer func() { _ = consumerGroup.Close() }()

	go func() {
		for err := range consumerGroup.Errors() {
			if err == nil || errors.Is(err, context.Canceled) || (strings.Contains(err.Error(), "context canceled")) {
				continue
			}

			r.log.Error().Err(err).Msg("consumer group error")
		}
	}()

	r.log.Info().Msg("consumer started")
	defer r.log.Info().Msg("consumer stopped")

	for {
		if ctx.Err() != nil {
			return nil
		}

		err := consumerGroup.Consume(ctx, []string{r.topic}, r.handler)

		if errors.Is(err, context.Canceled) || ctx.Err() != nil {
			return nil
		}

		if err != nil {
			r.log.Error().Err(err).Msg("consume error")
			time.Sleep(500 * time.Millisecond)
		}
	}
}

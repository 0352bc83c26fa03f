package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Artexxx/HR-Console/internal/console"
	"github.com/Artexxx/HR-Console/internal/exchange/consumer"
	"github.com/Artexxx/HR-Console/internal/metrics"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web console (and the activity consumer when kafka and postgres are configured)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(rootCtx context.Context) error {
	ctx, cancel := context.WithCancel(rootCtx)
	defer cancel()

	cfg := a.cfg

	log.Info().Msgf("backend=%s", cfg.Backend.URL())
	log.Info().Bool("enabled", cfg.Kafka.IsEnabled()).Msgf("kafka=%s", cfg.Kafka.Bootstrap.Get())

	m := metrics.New()

	api, closeAPI, err := a.employeesAPI(m, m)
	if err != nil {
		return err
	}
	defer closeAPI()

	deps := console.ServiceDeps{
		Port:         cfg.Console.ListenPort(),
		PageSize:     cfg.Console.Limit(),
		ReadTimeout:  cfg.Console.ReadTimeout.Get(),
		WriteTimeout: cfg.Console.WriteTimeout.Get(),
		Employees:    api,
		Metrics:      m,
	}

	var runner *consumer.Runner

	repo, closeRepo, err := a.activityRepository(ctx)
	switch {
	case err == nil:
		defer closeRepo()
		deps.Activity = repo

		if journal, ok := repo.(consumer.ActivityRepository); ok && cfg.Kafka.IsEnabled() {
			runner = consumer.NewActivityRunner(consumer.RunnerConfig{
				Bootstrap: cfg.Kafka.Bootstrap.Get(),
				Topic:     cfg.Kafka.Topic(),
				GroupID:   cfg.Kafka.Group(),
				ClientID:  cfg.Kafka.Client(),
			}, journal, m, log.Logger)
		}
	case errors.Is(err, errActivityDisabled):
		log.Info().Msg("postgres не настроен, журнал активности отключён")
	default:
		return err
	}

	consoleService := console.NewService(deps)

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if err := consoleService.Start(gctx); err != nil {
			log.Error().Err(err).Msg("веб-консоль завершилась с ошибкой")

			return err
		}

		log.Info().Msg("веб-консоль остановлена")

		return nil
	})

	if runner != nil {
		group.Go(func() error {
			log.Info().Msg("запуск consumer_activity")

			if err := runner.Start(gctx); err != nil {
				log.Error().Err(err).Msg("consumer_activity завершился с ошибкой")

				return err
			}

			log.Info().Msg("consumer_activity остановлен")

			return nil
		})
	}

	err = group.Wait()

	if rootCtx.Err() != nil {
		log.Info().Msg("signal received, graceful shutdown...")
	}

	log.Info().Msg("all services stopped")

	return err
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Artexxx/HR-Console/internal/apiclient"
	"github.com/Artexxx/HR-Console/internal/config"
	"github.com/Artexxx/HR-Console/internal/console"
	"github.com/Artexxx/HR-Console/internal/dto"
	"github.com/Artexxx/HR-Console/internal/employees"
	"github.com/Artexxx/HR-Console/internal/exchange/producer"
	"github.com/Artexxx/HR-Console/internal/repository/activity"
	"github.com/Artexxx/HR-Console/library/pg"
	"github.com/Artexxx/HR-Console/library/yamlreader"
)

const defaultConfigPath = "config/application-local.yaml"

var errActivityDisabled = fmt.Errorf("activity journal requires postgres.conn: %w", dto.ErrNotConfigured)

type activityStore interface {
	console.ActivityRepository
	ResetAll(ctx context.Context) error
}

// app holds state shared by all commands. api and activity are preset by tests.
type app struct {
	configPath string
	cfg        *config.Config

	api      console.EmployeesAPI
	activity activityStore
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hr-console",
		Short:         "Employee management console for the HR backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file (CONFIG_PATH)")

	cmd.AddCommand(newServeCmd(a))
	cmd.AddCommand(newEmployeesCmd(a))
	cmd.AddCommand(newStatsCmd(a))
	cmd.AddCommand(newActivityCmd(a))

	return cmd
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := newRootCmd(&app{}).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func (a *app) init() error {
	zerolog.TimeFieldFormat = time.RFC3339

	if a.cfg == nil {
		path := resolveConfigPath(a.configPath)

		cfg, err := yamlreader.NewConfig[config.Config](path)
		if err != nil {
			return fmt.Errorf("ошибка чтения конфигурации %s: %w", path, err)
		}

		a.cfg = cfg
	}

	zerolog.SetGlobalLevel(a.cfg.Log.ZerologLevel())

	return nil
}

// resolveConfigPath: флаг, затем CONFIG_PATH (в том числе из .env), затем путь по умолчанию.
func resolveConfigPath(flagValue string) string {
	_ = godotenv.Load(".env")

	if flagValue != "" {
		return flagValue
	}

	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}

	return defaultConfigPath
}

// employeesAPI builds the backend module, wrapped with event publishing when kafka is on.
// The returned func releases the producer.
func (a *app) employeesAPI(observer apiclient.Observer, eventsObserver producer.Observer) (console.EmployeesAPI, func(), error) {
	if a.api != nil {
		return a.api, func() {}, nil
	}

	client := apiclient.New(apiclient.Config{
		BaseURL:  a.cfg.Backend.URL(),
		Timeout:  a.cfg.Backend.RequestTimeout(),
		Observer: observer,
	}, log.Logger)

	api := employees.NewAPI(client)

	if !a.cfg.Kafka.IsEnabled() {
		return api, func() {}, nil
	}

	sp, err := producer.NewSyncProducer(a.cfg.Kafka.Bootstrap.Get(), a.cfg.Kafka.Client())
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer init: %w", err)
	}

	events := producer.NewEventsProducer(sp, producer.Config{
		Topic:    a.cfg.Kafka.Topic(),
		Source:   a.cfg.Kafka.Client(),
		Observer: eventsObserver,
	}, log.Logger)

	return employees.WithEvents(api, events, log.Logger), func() { _ = events.Close() }, nil
}

// activityRepository connects to postgres and makes sure the journal tables exist.
func (a *app) activityRepository(ctx context.Context) (activityStore, func(), error) {
	if a.activity != nil {
		return a.activity, func() {}, nil
	}

	if !a.cfg.Postgres.Enabled() {
		return nil, nil, errActivityDisabled
	}

	pgClient, err := pg.NewPGWithConfig(ctx, a.cfg.Postgres, log.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres init: %w", err)
	}

	repo := activity.NewRepository(pgClient.Pool())
	if err := repo.Migrate(ctx); err != nil {
		pgClient.Close()
		return nil, nil, err
	}

	return repo, pgClient.Close, nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/cafe24"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/demo"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/meta"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/naver"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
	"github.com/trafficops/ads-guardrail-api/infrastructure/notifier/telegram"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/backfilling"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/executing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/guardrail"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/proposing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/syncing"
	"github.com/trafficops/ads-guardrail-api/pkg/utils"
)

// app carrega os serviços montados para os subcomandos. Montado uma vez no
// PersistentPreRunE e fechado no PersistentPostRun.
type app struct {
	cfg        *config.Config
	conn       *postgres.Connection
	syncer     syncing.Syncer
	engine     guardrail.Engine
	proposer   proposing.Proposer
	executor   executing.Executor
	backfiller backfilling.Backfiller
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	connectorRepo := repository.NewConnectorRepository(conn)
	entityRepo := repository.NewEntityRepository(conn)
	metricRepo := repository.NewMetricRepository(conn)
	orderRepo := repository.NewStoreOrderRepository(conn)
	attribRepo := repository.NewAttributionRepository(conn)
	ruleRepo := repository.NewRuleRepository(conn)
	proposalRepo := repository.NewProposalRepository(conn)
	executionRepo := repository.NewExecutionRepository(conn)
	syncStateRepo := repository.NewSyncStateRepository(conn)

	registry := connector.NewRegistry(cfg)
	registry.Register(domain.PlatformDemo, demo.New)
	registry.Register(domain.PlatformMeta, meta.New)
	registry.Register(domain.PlatformNaver, naver.New)
	registry.Register(domain.PlatformCafe24, cafe24.New)

	proposer := proposing.NewService(proposalRepo)
	executor := executing.NewService(proposalRepo, executionRepo, connectorRepo, registry)
	notifier := telegram.NewNotifier(cfg, proposalRepo, syncStateRepo)

	syncer := syncing.NewService(cfg, connectorRepo, entityRepo, metricRepo, orderRepo, syncStateRepo, registry)
	engine := guardrail.NewService(cfg, ruleRepo, connectorRepo, metricRepo, attribRepo, proposer, notifier, executor)
	backfiller := backfilling.NewService(connectorRepo, metricRepo, orderRepo, syncStateRepo, registry)

	return &app{
		cfg:        cfg,
		conn:       conn,
		syncer:     syncer,
		engine:     engine,
		proposer:   proposer,
		executor:   executor,
		backfiller: backfiller,
	}, nil
}

func (a *app) close() {
	if a.conn != nil {
		a.conn.Close()
	}
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	var application *app

	rootCmd := &cobra.Command{
		Use:   "guardctl",
		Short: "Operações de linha de comando do serviço de guardrail",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			application, err = newApp(cmd.Context())
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if application != nil {
				application.close()
			}
		},
	}

	rootCmd.AddCommand(newTickCmd(&application))
	rootCmd.AddCommand(newProposalsCmd(&application))
	rootCmd.AddCommand(newExecuteCmd(&application))
	rootCmd.AddCommand(newBackfillCmd(&application))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// newTickCmd roda um tick completo: sync dos conectores e avaliação das
// regras, igual ao que o agendador faz em background.
func newTickCmd(application **app) *cobra.Command {
	return &cobra.Command{
		Use:   "tick",
		Short: "Sincroniza os conectores habilitados e avalia as regras",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *application
			now := time.Now()

			summaries := a.syncer.SyncAll(cmd.Context(), now)
			for _, summary := range summaries {
				fields := logrus.Fields{
					"connector_id": summary.ConnectorID,
					"entities":     summary.Entities,
					"daily":        summary.Daily,
					"intraday":     summary.Intraday,
					"orders":       summary.Orders,
					"skipped":      summary.Skipped,
				}
				if summary.Error != "" {
					logrus.WithFields(fields).WithField("error", summary.Error).Warn("Sync do conector falhou")
					continue
				}
				logrus.WithFields(fields).Info("Conector sincronizado")
			}

			result, err := a.engine.EvaluateAll(cmd.Context(), now)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"rules_evaluated":    result.RulesEvaluated,
				"entities_inspected": result.EntitiesInspected,
				"proposals_created":  result.ProposalsCreated,
				"deduplicated":       result.Deduplicated,
				"auto_executed":      result.AutoExecuted,
			}).Info("Avaliação das regras concluída")
			return nil
		},
	}
}

// newProposalsCmd lista propostas no terminal, como JSON legível.
func newProposalsCmd(application **app) *cobra.Command {
	var status string
	var limit uint64

	cmd := &cobra.Command{
		Use:   "proposals",
		Short: "Lista as propostas de ação registradas",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *application

			filters := repository.ProposalFilters{Limit: limit}
			if status != "" {
				parsed := domain.ProposalStatus(status)
				filters.Status = &parsed
			}

			proposals, err := a.proposer.ListProposals(filters)
			if err != nil {
				return err
			}

			fmt.Println(utils.PrettyJson(proposals))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filtra por status (proposed, approved, rejected, executed, failed)")
	cmd.Flags().Uint64Var(&limit, "limit", 50, "Número máximo de propostas")

	return cmd
}

func newExecuteCmd(application **app) *cobra.Command {
	return &cobra.Command{
		Use:   "execute <proposal-id>",
		Short: "Executa uma proposta contra a plataforma do conector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *application

			proposal, err := a.executor.Execute(cmd.Context(), args[0], "cli")
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"proposal_id": proposal.ID,
				"status":      proposal.Status,
			}).Info("Proposta executada")
			return nil
		},
	}
}

func newBackfillCmd(application **app) *cobra.Command {
	var connectorID, from, to string

	cmd := &cobra.Command{
		Use:   "backfill",
		Short: "Recarrega métricas e pedidos históricos de um conector",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := *application

			startDate, err := time.Parse("2006-01-02", from)
			if err != nil {
				return fmt.Errorf("data inicial inválida %q, use o formato YYYY-MM-DD", from)
			}
			endDate, err := time.Parse("2006-01-02", to)
			if err != nil {
				return fmt.Errorf("data final inválida %q, use o formato YYYY-MM-DD", to)
			}

			summary, err := a.backfiller.Backfill(cmd.Context(), connectorID, startDate, endDate)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"connector_id": connectorID,
				"days_loaded":  summary.DaysLoaded,
				"metrics":      summary.Metrics,
				"orders":       summary.Orders,
				"resumed":      summary.Resumed,
			}).Info("Backfill concluído")
			return nil
		},
	}

	cmd.Flags().StringVar(&connectorID, "connector", "", "ID do conector")
	cmd.Flags().StringVar(&from, "from", "", "Data inicial (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Data final (YYYY-MM-DD)")
	cmd.MarkFlagRequired("connector")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}

package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/cafe24"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/demo"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/meta"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector/naver"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
	"github.com/trafficops/ads-guardrail-api/infrastructure/notifier/telegram"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/api"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/internal/scheduler"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/authenticating"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/executing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/guardrail"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/managing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/proposing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/reporting"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/syncing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/tracking"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	connectorRepo := repository.NewConnectorRepository(pgConn)
	entityRepo := repository.NewEntityRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	orderRepo := repository.NewStoreOrderRepository(pgConn)
	attribRepo := repository.NewAttributionRepository(pgConn)
	ruleRepo := repository.NewRuleRepository(pgConn)
	proposalRepo := repository.NewProposalRepository(pgConn)
	executionRepo := repository.NewExecutionRepository(pgConn)
	syncStateRepo := repository.NewSyncStateRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// Registra os conectores de plataforma suportados
	registry := connector.NewRegistry(cfg)
	registry.Register(domain.PlatformDemo, demo.New)
	registry.Register(domain.PlatformMeta, meta.New)
	registry.Register(domain.PlatformNaver, naver.New)
	registry.Register(domain.PlatformCafe24, cafe24.New)

	proposer := proposing.NewService(proposalRepo)
	executor := executing.NewService(proposalRepo, executionRepo, connectorRepo, registry)
	manager := managing.NewService(connectorRepo, ruleRepo, registry)
	reporter := reporting.NewService(orderRepo)
	tracker := tracking.NewService(attribRepo)

	notifier := telegram.NewNotifier(cfg, proposalRepo, syncStateRepo)

	syncer := syncing.NewService(cfg, connectorRepo, entityRepo, metricRepo, orderRepo, syncStateRepo, registry)
	engine := guardrail.NewService(cfg, ruleRepo, connectorRepo, metricRepo, attribRepo, proposer, notifier, executor)

	// Poller do Telegram para aprovações via chat
	bot := telegram.NewBot(cfg, proposer, executor, syncStateRepo)
	go bot.Start(ctx)

	// Agendador do tick: sync dos conectores + avaliação das regras
	tickService := scheduler.NewGuardrailTickService(syncer, engine, cfg)
	if err := tickService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do tick de guardrail")
	} else {
		logrus.Info("Agendador do tick de guardrail iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		manager,
		proposer,
		executor,
		reporter,
		authenticator,
		tracker,
		tickService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

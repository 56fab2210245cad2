package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/guardrail"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/syncing"
)

// GuardrailTickConfig representa a configuração do orquestrador de ticks
type GuardrailTickConfig struct {
	TickIntervalSeconds int
	WorkerEnabled       bool
}

// GuardrailTickService orquestra o loop de controle: sincroniza os
// conectores, avalia as regras e deixa o restante (notificação, execução
// automática) a cargo do motor de guardrail. Um tick nunca sobrepõe o
// anterior.
type GuardrailTickService struct {
	scheduler           *gocron.Scheduler
	config              GuardrailTickConfig
	appConfig           *config.Config
	syncer              syncing.Syncer
	engine              guardrail.Engine
	location            *time.Location
	baseCtx             context.Context
	tickRunning         bool
	tickMutex           sync.Mutex
	lastTickStartedAt   time.Time
	lastTickCompletedAt time.Time
	lastSummary         *guardrail.EvaluationSummary
}

// NewGuardrailTickService cria uma nova instância do orquestrador de ticks
func NewGuardrailTickService(
	syncer syncing.Syncer,
	engine guardrail.Engine,
	appConfig *config.Config,
) *GuardrailTickService {
	tickConfig := GuardrailTickConfig{
		TickIntervalSeconds: appConfig.Worker.TickIntervalSeconds,
		WorkerEnabled:       appConfig.Worker.Enabled,
	}

	// O dia-calendário das plataformas é resolvido no fuso configurado.
	location, err := time.LoadLocation(appConfig.App.Timezone)
	if err != nil {
		logrus.WithError(err).WithField("timezone", appConfig.App.Timezone).Warn("Fuso horário inválido, usando o local")
		location = time.Local
	}

	scheduler := gocron.NewScheduler(location)

	logrus.WithFields(logrus.Fields{
		"tick_interval_seconds": tickConfig.TickIntervalSeconds,
		"worker_enabled":        tickConfig.WorkerEnabled,
		"timezone":              location.String(),
	}).Info("Configuração do orquestrador de ticks carregada")

	return &GuardrailTickService{
		scheduler:   scheduler,
		config:      tickConfig,
		appConfig:   appConfig,
		syncer:      syncer,
		engine:      engine,
		location:    location,
		baseCtx:     context.Background(),
		tickRunning: false,
	}
}

// Start inicia o agendador
func (s *GuardrailTickService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.WorkerEnabled {
		logrus.Info("Orquestrador de ticks desabilitado por configuração")
		return nil
	}

	logrus.WithField("interval_seconds", s.config.TickIntervalSeconds).Info("Iniciando orquestrador de ticks do guardrail")

	_, err := s.scheduler.Every(s.config.TickIntervalSeconds).Seconds().Do(func() {
		s.runTick(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o tick do guardrail: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando orquestrador de ticks do guardrail")
		s.scheduler.Stop()
	}()

	return nil
}

// runTick executa um passe completo: sync de todos os conectores e avaliação
// de todas as regras. O guard de tickRunning impede sobreposição quando um
// tick demora mais que o intervalo.
func (s *GuardrailTickService) runTick(ctx context.Context) {
	s.tickMutex.Lock()
	if s.tickRunning {
		s.tickMutex.Unlock()
		logrus.Info("Tick do guardrail já em andamento, ignorando")
		return
	}
	s.tickRunning = true
	s.tickMutex.Unlock()

	startTime := time.Now()
	s.lastTickStartedAt = startTime

	defer func() {
		s.tickMutex.Lock()
		s.tickRunning = false
		s.tickMutex.Unlock()
	}()

	now := time.Now().In(s.location)

	logrus.WithField("date", now.Format(time.DateOnly)).Info("Iniciando tick do guardrail")

	summaries := s.syncer.SyncAll(ctx, now)
	synced, skipped, failed := 0, 0, 0
	for _, summary := range summaries {
		switch {
		case summary.Error != "":
			failed++
		case summary.Skipped:
			skipped++
		default:
			synced++
		}
	}

	summary, err := s.engine.EvaluateAll(ctx, now)
	if err != nil {
		logrus.WithError(err).Error("Erro na avaliação das regras de guardrail")
	} else {
		s.lastSummary = summary
	}

	duration := time.Since(startTime)
	fields := logrus.Fields{
		"duration":          duration.String(),
		"connectors_synced": synced,
		"connectors_skip":   skipped,
		"connectors_failed": failed,
	}
	if summary != nil {
		fields["rules"] = summary.RulesEvaluated
		fields["entities"] = summary.EntitiesInspected
		fields["proposals"] = summary.ProposalsCreated
		fields["deduplicated"] = summary.Deduplicated
		fields["auto_executed"] = summary.AutoExecuted
	}
	logrus.WithFields(fields).Info("Tick do guardrail concluído")

	s.lastTickCompletedAt = time.Now()
}

// TriggerManualTick inicia manualmente um tick. Roda sobre o contexto da
// aplicação: o tick sobrevive à resposta HTTP que o disparou.
func (s *GuardrailTickService) TriggerManualTick() {
	s.tickMutex.Lock()
	if s.tickRunning {
		s.tickMutex.Unlock()
		logrus.Info("Tick do guardrail já em andamento, ignorando solicitação manual")
		return
	}
	s.tickMutex.Unlock()

	logrus.Info("Iniciando tick manual do guardrail")
	go s.runTick(s.baseCtx)
}

// GetStatus retorna o status atual do orquestrador
func (s *GuardrailTickService) GetStatus() map[string]any {
	status := map[string]any{
		"worker_enabled":         s.config.WorkerEnabled,
		"tick_interval_seconds":  s.config.TickIntervalSeconds,
		"execution_mode":         s.appConfig.Guardrail.ExecutionMode,
		"tick_running":           s.tickRunning,
		"last_tick_started_at":   s.lastTickStartedAt,
		"last_tick_completed_at": s.lastTickCompletedAt,
	}
	if s.lastSummary != nil {
		status["last_summary"] = s.lastSummary
	}
	return status
}

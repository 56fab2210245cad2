package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	schedulermocks "github.com/trafficops/ads-guardrail-api/internal/scheduler/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/guardrail"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/syncing"
	syncingmocks "github.com/trafficops/ads-guardrail-api/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func newTickService(syncer syncing.Syncer, engine guardrail.Engine) *GuardrailTickService {
	return &GuardrailTickService{
		config: GuardrailTickConfig{
			TickIntervalSeconds: 300,
			WorkerEnabled:       true,
		},
		appConfig: &config.Config{
			Guardrail: config.Guardrail{ExecutionMode: config.ExecutionModeManual},
		},
		syncer:   syncer,
		engine:   engine,
		location: time.UTC,
		baseCtx:  context.Background(),
	}
}

func TestGuardrailTickService_runTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncingmocks.NewMockSyncer(ctrl)
	mockEngine := schedulermocks.NewMockEngine(ctrl)

	tests := []struct {
		name     string
		setup    func(service *GuardrailTickService)
		validate func(t *testing.T, service *GuardrailTickService)
	}{
		{
			name: "Tick completo - deve sincronizar, avaliar e guardar o resumo",
			setup: func(service *GuardrailTickService) {
				mockSyncer.EXPECT().
					SyncAll(gomock.Any(), gomock.Any()).
					Return([]syncing.ConnectorSummary{
						{ConnectorID: "con_demo", Daily: 3},
						{ConnectorID: "con_naver", Skipped: true},
						{ConnectorID: "con_meta", Error: "credenciais expiradas"},
					})

				mockEngine.EXPECT().
					EvaluateAll(gomock.Any(), gomock.Any()).
					Return(&guardrail.EvaluationSummary{
						RulesEvaluated:   1,
						ProposalsCreated: 2,
					}, nil)
			},
			validate: func(t *testing.T, service *GuardrailTickService) {
				assert.NotNil(t, service.lastSummary)
				assert.Equal(t, 2, service.lastSummary.ProposalsCreated)
				assert.False(t, service.tickRunning)
				assert.False(t, service.lastTickCompletedAt.IsZero())
			},
		},
		{
			name: "Erro na avaliação - o resumo anterior é preservado e o tick termina",
			setup: func(service *GuardrailTickService) {
				service.lastSummary = &guardrail.EvaluationSummary{RulesEvaluated: 5}

				mockSyncer.EXPECT().
					SyncAll(gomock.Any(), gomock.Any()).
					Return(nil)

				mockEngine.EXPECT().
					EvaluateAll(gomock.Any(), gomock.Any()).
					Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, service *GuardrailTickService) {
				assert.Equal(t, 5, service.lastSummary.RulesEvaluated)
				assert.False(t, service.tickRunning)
			},
		},
		{
			name: "Tick já em andamento - o novo pedido é ignorado sem tocar os serviços",
			setup: func(service *GuardrailTickService) {
				service.tickRunning = true
			},
			validate: func(t *testing.T, service *GuardrailTickService) {
				assert.True(t, service.tickRunning)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTickService(mockSyncer, mockEngine)

			tt.setup(service)

			service.runTick(context.Background())

			if tt.validate != nil {
				tt.validate(t, service)
			}
		})
	}
}

func TestGuardrailTickService_TriggerManualTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncingmocks.NewMockSyncer(ctrl)
	mockEngine := schedulermocks.NewMockEngine(ctrl)

	service := newTickService(mockSyncer, mockEngine)

	// O disparo manual vem de um handler HTTP cujo contexto morre junto com a
	// resposta. O tick precisa seguir vivo no contexto da aplicação.
	_, cancelRequest := context.WithCancel(context.Background())

	done := make(chan struct{})

	mockSyncer.EXPECT().
		SyncAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, now time.Time) []syncing.ConnectorSummary {
			assert.NoError(t, ctx.Err())
			return nil
		})

	mockEngine.EXPECT().
		EvaluateAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, date time.Time) (*guardrail.EvaluationSummary, error) {
			assert.NoError(t, ctx.Err())
			defer close(done)
			return &guardrail.EvaluationSummary{}, nil
		})

	service.TriggerManualTick()
	cancelRequest()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tick manual não terminou")
	}
}

func TestGuardrailTickService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSyncer := syncingmocks.NewMockSyncer(ctrl)
	mockEngine := schedulermocks.NewMockEngine(ctrl)

	service := newTickService(mockSyncer, mockEngine)
	service.lastSummary = &guardrail.EvaluationSummary{ProposalsCreated: 1}

	status := service.GetStatus()

	assert.Equal(t, true, status["worker_enabled"])
	assert.Equal(t, 300, status["tick_interval_seconds"])
	assert.Equal(t, config.ExecutionModeManual, status["execution_mode"])
	assert.Equal(t, false, status["tick_running"])
	assert.Equal(t, service.lastSummary, status["last_summary"])
}

package guardrail

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/trafficops/ads-guardrail-api/infrastructure/repository/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	guardrailmocks "github.com/trafficops/ads-guardrail-api/internal/usecases/guardrail/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/proposing"
	proposingmocks "github.com/trafficops/ads-guardrail-api/internal/usecases/proposing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_EvaluateAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := repomocks.NewMockRuleRepository(ctrl)
	mockConnectorRepo := repomocks.NewMockConnectorRepository(ctrl)
	mockMetricRepo := repomocks.NewMockMetricRepository(ctrl)
	mockAttribRepo := repomocks.NewMockAttributionRepository(ctrl)
	mockProposer := proposingmocks.NewMockProposer(ctrl)
	mockNotifier := guardrailmocks.NewMockNotifier(ctrl)
	mockExecutor := guardrailmocks.NewMockAutoExecutor(ctrl)

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	killSwitchRule := func(params map[string]any) *domain.Rule {
		return &domain.Rule{
			ID:       "rul_ks1",
			Name:     "Kill switch",
			Enabled:  true,
			RuleType: domain.RuleTypeKillSwitch,
			Params:   params,
		}
	}

	demoConnector := &domain.Connector{
		ID:       "con_demo",
		Platform: domain.PlatformDemo,
		Name:     "Demo",
		Enabled:  true,
	}

	emptyIntraday := &domain.IntradaySum{}
	noAttribution := &domain.AttributedConversions{}

	tests := []struct {
		name          string
		executionMode string
		setup         func()
		validate      func(t *testing.T, summary *EvaluationSummary)
	}{
		{
			name:          "Entidade gastando acima do limite sem conversão - deve criar proposta e notificar",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(nil)}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{
							Platform:    domain.PlatformDemo,
							ConnectorID: "con_demo",
							EntityType:  domain.EntityTypeCampaign,
							EntityID:    "cmp-001",
							Date:        date,
							Spend:       60000,
							Clicks:      42,
							Conversions: 0,
						},
					}, nil)

				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", date).
					Return(emptyIntraday, nil)
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-001", date).
					Return(noAttribution, nil)

				mockProposer.EXPECT().
					ExistsRecent(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", domain.ActionTypePauseEntity, 24*time.Hour).
					Return(false, nil)

				mockProposer.EXPECT().
					CreateProposal(gomock.Any()).
					DoAndReturn(func(input proposing.CreateProposalInput) (*domain.ActionProposal, error) {
						assert.Equal(t, domain.ActionTypePauseEntity, input.ActionType)
						assert.Equal(t, "cmp-001", input.EntityID)
						assert.True(t, input.RequiresApproval)
						assert.Contains(t, input.Reason, "gasto 60000 >= limite 50000")
						assert.Contains(t, input.Reason, "fonte platform_daily")
						return &domain.ActionProposal{ID: "act_1", Status: domain.ProposalStatusProposed}, nil
					})

				mockNotifier.EXPECT().NotifyProposal(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.RulesEvaluated)
				assert.Equal(t, 1, summary.EntitiesInspected)
				assert.Equal(t, 1, summary.ProposalsCreated)
				assert.Equal(t, 0, summary.Deduplicated)
				assert.Equal(t, 0, summary.AutoExecuted)
			},
		},
		{
			name:          "Gasto abaixo do limite - não deve propor",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(nil)}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-002", Spend: 1200, Clicks: 10, Conversions: 0},
					}, nil)

				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-002", date).
					Return(emptyIntraday, nil)
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-002", date).
					Return(noAttribution, nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.EntitiesInspected)
				assert.Equal(t, 0, summary.ProposalsCreated)
			},
		},
		{
			name:          "Conversões atribuídas pelo comércio - não deve pausar mesmo com gasto alto",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(nil)}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-003", Spend: 80000, Clicks: 90, Conversions: 0},
					}, nil)

				// a soma intraday com gasto substitui a observação diária
				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-003", date).
					Return(&domain.IntradaySum{Spend: 85000, Clicks: 95, Conversions: 0}, nil)

				// o comércio registrou conversões: fonte de verdade
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-003", date).
					Return(&domain.AttributedConversions{Conversions: 2, ConversionValue: 150000}, nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.EntitiesInspected)
				assert.Equal(t, 0, summary.ProposalsCreated)
			},
		},
		{
			name:          "Conversão na linha diária com baldes intraday zerados em conversão - não deve pausar",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(nil)}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-005", Spend: 40000, Clicks: 30, Conversions: 3},
					}, nil)

				// intraday adianta gasto e cliques, mas conversão vale sempre a
				// da linha diária: os baldes de hora não carregam conversão
				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-005", date).
					Return(&domain.IntradaySum{Spend: 60000, Clicks: 55, Conversions: 0}, nil)
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-005", date).
					Return(noAttribution, nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.EntitiesInspected)
				assert.Equal(t, 0, summary.ProposalsCreated)
			},
		},
		{
			name:          "Soma intraday com gasto mas sem cliques - cliques valem os da linha diária",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(nil)}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-006", Spend: 20000, Clicks: 42, Conversions: 0},
					}, nil)

				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-006", date).
					Return(&domain.IntradaySum{Spend: 60000, Clicks: 0, Conversions: 0}, nil)
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-006", date).
					Return(noAttribution, nil)

				mockProposer.EXPECT().
					ExistsRecent(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-006", domain.ActionTypePauseEntity, 24*time.Hour).
					Return(false, nil)

				mockProposer.EXPECT().
					CreateProposal(gomock.Any()).
					DoAndReturn(func(input proposing.CreateProposalInput) (*domain.ActionProposal, error) {
						assert.Equal(t, int64(42), input.Payload["clicks"])
						assert.Contains(t, input.Reason, "fonte platform_intraday")
						return &domain.ActionProposal{ID: "act_2", Status: domain.ProposalStatusProposed}, nil
					})

				mockNotifier.EXPECT().NotifyProposal(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.ProposalsCreated)
			},
		},
		{
			name:          "Erro ao resolver métricas efetivas - deve pular a entidade sem propor",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(nil)}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-007", Spend: 90000, Clicks: 80, Conversions: 0},
					}, nil)

				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-007", date).
					Return(nil, errors.New("timeout no banco"))
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-007", date).
					Return(noAttribution, nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.EntitiesInspected)
				assert.Equal(t, 0, summary.ProposalsCreated)
			},
		},
		{
			name:          "Proposta recente para a mesma entidade - deve deduplicar",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(nil)}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-001", Spend: 60000, Clicks: 42, Conversions: 0},
					}, nil)

				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", date).
					Return(emptyIntraday, nil)
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-001", date).
					Return(noAttribution, nil)

				mockProposer.EXPECT().
					ExistsRecent(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", domain.ActionTypePauseEntity, 24*time.Hour).
					Return(true, nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.Deduplicated)
				assert.Equal(t, 0, summary.ProposalsCreated)
			},
		},
		{
			name:          "Regra com auto_execute e chave global auto_low_risk - deve executar automaticamente",
			executionMode: config.ExecutionModeAutoLowRisk,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(map[string]any{"auto_execute": true})}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-001", Spend: 60000, Clicks: 42, Conversions: 0},
					}, nil)

				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", date).
					Return(emptyIntraday, nil)
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-001", date).
					Return(noAttribution, nil)

				mockProposer.EXPECT().
					ExistsRecent(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", domain.ActionTypePauseEntity, 24*time.Hour).
					Return(false, nil)

				mockProposer.EXPECT().
					CreateProposal(gomock.Any()).
					DoAndReturn(func(input proposing.CreateProposalInput) (*domain.ActionProposal, error) {
						assert.False(t, input.RequiresApproval)
						return &domain.ActionProposal{ID: "act_auto", Status: domain.ProposalStatusProposed}, nil
					})

				mockExecutor.EXPECT().
					Execute(gomock.Any(), "act_auto", "auto").
					Return(&domain.ActionProposal{ID: "act_auto", Status: domain.ProposalStatusExecuted}, nil)

				mockNotifier.EXPECT().
					NotifyExecuted(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, proposal *domain.ActionProposal) error {
						assert.Equal(t, domain.ProposalStatusExecuted, proposal.Status)
						return nil
					})
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.ProposalsCreated)
				assert.Equal(t, 1, summary.AutoExecuted)
			},
		},
		{
			name:          "Regra com auto_execute mas chave global manual - não deve executar",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{killSwitchRule(map[string]any{"auto_execute": true})}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)

				mockMetricRepo.EXPECT().
					ListDailyForDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, date).
					Return([]*domain.MetricDaily{
						{EntityID: "cmp-001", Spend: 60000, Clicks: 42, Conversions: 0},
					}, nil)

				mockMetricRepo.EXPECT().
					SumIntradayForEntityDate(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", date).
					Return(emptyIntraday, nil)
				mockAttribRepo.EXPECT().
					SumAttributedConversionsForEntityDate(domain.PlatformDemo, domain.EntityTypeCampaign, "cmp-001", date).
					Return(noAttribution, nil)

				mockProposer.EXPECT().
					ExistsRecent(domain.PlatformDemo, "con_demo", domain.EntityTypeCampaign, "cmp-001", domain.ActionTypePauseEntity, 24*time.Hour).
					Return(false, nil)

				mockProposer.EXPECT().
					CreateProposal(gomock.Any()).
					DoAndReturn(func(input proposing.CreateProposalInput) (*domain.ActionProposal, error) {
						// sem a chave global a proposta volta a exigir aprovação
						assert.True(t, input.RequiresApproval)
						return &domain.ActionProposal{ID: "act_gate", Status: domain.ProposalStatusProposed}, nil
					})

				mockNotifier.EXPECT().NotifyProposal(gomock.Any(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.ProposalsCreated)
				assert.Equal(t, 0, summary.AutoExecuted)
			},
		},
		{
			name:          "Regra restrita a outra plataforma - deve pular o conector",
			executionMode: config.ExecutionModeManual,
			setup: func() {
				metaPlatform := domain.PlatformMeta
				rule := killSwitchRule(nil)
				rule.Platform = &metaPlatform

				mockRuleRepo.EXPECT().ListEnabled().Return([]*domain.Rule{rule}, nil)
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)
			},
			validate: func(t *testing.T, summary *EvaluationSummary) {
				assert.Equal(t, 1, summary.RulesEvaluated)
				assert.Equal(t, 0, summary.EntitiesInspected)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &Service{
				cfg: &config.Config{
					Guardrail: config.Guardrail{
						ExecutionMode:    tt.executionMode,
						DedupWindowHours: 24,
					},
				},
				ruleRepo:      mockRuleRepo,
				connectorRepo: mockConnectorRepo,
				metricRepo:    mockMetricRepo,
				attribRepo:    mockAttribRepo,
				proposer:      mockProposer,
				notifier:      mockNotifier,
				executor:      mockExecutor,
			}

			tt.setup()

			summary, err := service.EvaluateAll(context.Background(), date)

			assert.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, summary)
			}
		})
	}
}

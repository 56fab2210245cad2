package managing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	connectormocks "github.com/trafficops/ads-guardrail-api/infrastructure/connector/mocks"
	repomocks "github.com/trafficops/ads-guardrail-api/infrastructure/repository/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	managingmocks "github.com/trafficops/ads-guardrail-api/internal/usecases/managing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_RegisterConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnectorRepo := repomocks.NewMockConnectorRepository(ctrl)
	mockRuleRepo := repomocks.NewMockRuleRepository(ctrl)
	mockBuilder := managingmocks.NewMockConnectorBuilder(ctrl)

	service := &Service{
		connectorRepo: mockConnectorRepo,
		ruleRepo:      mockRuleRepo,
		builder:       mockBuilder,
	}

	tests := []struct {
		name     string
		input    RegisterConnectorInput
		setup    func()
		validate func(t *testing.T, conn *domain.Connector, err error)
	}{
		{
			name: "Registro com sucesso - deve gerar ID com prefixo e capacidades da plataforma",
			input: RegisterConnectorInput{
				Platform: "naver",
				Name:     "Naver SA principal",
				Enabled:  true,
				Config:   map[string]any{"mode": "import"},
			},
			setup: func() {
				mockBuilder.EXPECT().Supports(domain.PlatformNaver).Return(true)
				mockConnectorRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(conn *domain.Connector) error {
						assert.True(t, strings.HasPrefix(conn.ID, "con_"))
						assert.Equal(t, domain.PlatformNaver, conn.Platform)
						assert.True(t, conn.Capabilities.WriteBid)
						return nil
					})
				mockConnectorRepo.EXPECT().
					GetByID(gomock.Any()).
					DoAndReturn(func(id string) (*domain.Connector, error) {
						return &domain.Connector{ID: id, Platform: domain.PlatformNaver}, nil
					})
			},
			validate: func(t *testing.T, conn *domain.Connector, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.PlatformNaver, conn.Platform)
			},
		},
		{
			name: "ID informado pelo chamador deve ser respeitado",
			input: RegisterConnectorInput{
				ID:       "con_naver_main",
				Platform: "naver",
				Name:     "Naver SA principal",
			},
			setup: func() {
				mockBuilder.EXPECT().Supports(domain.PlatformNaver).Return(true)
				mockConnectorRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(conn *domain.Connector) error {
						assert.Equal(t, "con_naver_main", conn.ID)
						return nil
					})
				mockConnectorRepo.EXPECT().
					GetByID("con_naver_main").
					Return(&domain.Connector{ID: "con_naver_main"}, nil)
			},
			validate: func(t *testing.T, conn *domain.Connector, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "con_naver_main", conn.ID)
			},
		},
		{
			name: "Plataforma desconhecida - deve recusar",
			input: RegisterConnectorInput{
				Platform: "orkut_ads",
				Name:     "Qualquer",
			},
			setup: func() {},
			validate: func(t *testing.T, conn *domain.Connector, err error) {
				assert.Nil(t, conn)
				assert.Error(t, err)
			},
		},
		{
			name: "Plataforma sem conector registrado - deve recusar",
			input: RegisterConnectorInput{
				Platform: "tiktok",
				Name:     "TikTok",
			},
			setup: func() {
				mockBuilder.EXPECT().Supports(domain.PlatformTikTok).Return(false)
			},
			validate: func(t *testing.T, conn *domain.Connector, err error) {
				assert.Nil(t, conn)
				assert.Error(t, err)
			},
		},
		{
			name: "Nome vazio - deve recusar",
			input: RegisterConnectorInput{
				Platform: "naver",
				Name:     "   ",
			},
			setup: func() {
				mockBuilder.EXPECT().Supports(domain.PlatformNaver).Return(true)
			},
			validate: func(t *testing.T, conn *domain.Connector, err error) {
				assert.Nil(t, conn)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			conn, err := service.RegisterConnector(tt.input)

			if tt.validate != nil {
				tt.validate(t, conn, err)
			}
		})
	}
}

func TestService_UpdateConnectorConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnectorRepo := repomocks.NewMockConnectorRepository(ctrl)
	mockBuilder := managingmocks.NewMockConnectorBuilder(ctrl)

	service := &Service{
		connectorRepo: mockConnectorRepo,
		builder:       mockBuilder,
	}

	t.Run("Patch deve preservar chaves não mencionadas e remover as nulas", func(t *testing.T) {
		existing := &domain.Connector{
			ID:     "con_demo",
			Config: map[string]any{"mode": "fixture", "api_key": "abc", "customer_id": "123"},
		}

		mockConnectorRepo.EXPECT().GetByID("con_demo").Return(existing, nil)
		mockConnectorRepo.EXPECT().
			UpdateConfig("con_demo", gomock.Any()).
			DoAndReturn(func(id string, config map[string]any) error {
				assert.Equal(t, "api", config["mode"])
				assert.Equal(t, "123", config["customer_id"])
				_, hasKey := config["api_key"]
				assert.False(t, hasKey)
				return nil
			})
		mockConnectorRepo.EXPECT().GetByID("con_demo").Return(existing, nil)

		_, err := service.UpdateConnectorConfig("con_demo", map[string]any{
			"mode":    "api",
			"api_key": nil,
		})

		assert.NoError(t, err)
	})
}

func TestService_CheckConnector(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnectorRepo := repomocks.NewMockConnectorRepository(ctrl)
	mockBuilder := managingmocks.NewMockConnectorBuilder(ctrl)
	mockClient := connectormocks.NewMockClient(ctrl)

	service := &Service{
		connectorRepo: mockConnectorRepo,
		builder:       mockBuilder,
	}

	demoConnector := &domain.Connector{ID: "con_demo", Platform: domain.PlatformDemo}

	tests := []struct {
		name     string
		setup    func()
		hasError bool
	}{
		{
			name: "Conector saudável - health check passa",
			setup: func() {
				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(demoConnector, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockClient.EXPECT().HealthCheck(gomock.Any()).Return(nil)
			},
			hasError: false,
		},
		{
			name: "Credenciais inválidas - health check falha",
			setup: func() {
				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(demoConnector, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockClient.EXPECT().HealthCheck(gomock.Any()).Return(errors.New("credenciais inválidas"))
			},
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := service.CheckConnector(context.Background(), "con_demo")

			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_CreateRule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRuleRepo := repomocks.NewMockRuleRepository(ctrl)

	service := &Service{ruleRepo: mockRuleRepo}

	tests := []struct {
		name     string
		input    CreateRuleInput
		setup    func()
		validate func(t *testing.T, rule *domain.Rule, err error)
	}{
		{
			name: "Criação com sucesso - deve gerar ID com prefixo rul_",
			input: CreateRuleInput{
				Name:     "Kill switch diário",
				RuleType: string(domain.RuleTypeKillSwitch),
				Enabled:  true,
				Params:   map[string]any{"spend_threshold": float64(70000)},
			},
			setup: func() {
				mockRuleRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(rule *domain.Rule) error {
						assert.True(t, strings.HasPrefix(rule.ID, "rul_"))
						assert.Nil(t, rule.Platform)
						return nil
					})
				mockRuleRepo.EXPECT().
					GetByID(gomock.Any()).
					DoAndReturn(func(id string) (*domain.Rule, error) {
						return &domain.Rule{ID: id}, nil
					})
			},
			validate: func(t *testing.T, rule *domain.Rule, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, rule.ID)
			},
		},
		{
			name: "Tipo de regra desconhecido - deve recusar",
			input: CreateRuleInput{
				Name:     "Regra mágica",
				RuleType: "magic_rule",
			},
			setup: func() {},
			validate: func(t *testing.T, rule *domain.Rule, err error) {
				assert.Nil(t, rule)
				assert.Error(t, err)
			},
		},
		{
			name: "Plataforma inválida no escopo da regra - deve recusar",
			input: CreateRuleInput{
				Name:     "Kill switch naver",
				RuleType: string(domain.RuleTypeKillSwitch),
				Platform: stringPtr("orkut_ads"),
			},
			setup: func() {},
			validate: func(t *testing.T, rule *domain.Rule, err error) {
				assert.Nil(t, rule)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			rule, err := service.CreateRule(tt.input)

			if tt.validate != nil {
				tt.validate(t, rule, err)
			}
		})
	}
}

func stringPtr(s string) *string {
	return &s
}

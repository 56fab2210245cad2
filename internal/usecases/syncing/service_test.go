package syncing

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	connectormocks "github.com/trafficops/ads-guardrail-api/infrastructure/connector/mocks"
	repomocks "github.com/trafficops/ads-guardrail-api/infrastructure/repository/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	executingmocks "github.com/trafficops/ads-guardrail-api/internal/usecases/executing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_SyncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnectorRepo := repomocks.NewMockConnectorRepository(ctrl)
	mockEntityRepo := repomocks.NewMockEntityRepository(ctrl)
	mockMetricRepo := repomocks.NewMockMetricRepository(ctrl)
	mockOrderRepo := repomocks.NewMockStoreOrderRepository(ctrl)
	mockSyncStateRepo := repomocks.NewMockSyncStateRepository(ctrl)
	mockBuilder := executingmocks.NewMockConnectorBuilder(ctrl)
	mockClient := connectormocks.NewMockClient(ctrl)

	service := &Service{
		cfg: &config.Config{
			Guardrail: config.Guardrail{MinRefreshIntervalMin: 10},
		},
		connectorRepo: mockConnectorRepo,
		entityRepo:    mockEntityRepo,
		metricRepo:    mockMetricRepo,
		orderRepo:     mockOrderRepo,
		syncStateRepo: mockSyncStateRepo,
		builder:       mockBuilder,
	}

	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	demoConnector := &domain.Connector{
		ID:       "con_demo",
		Platform: domain.PlatformDemo,
		Enabled:  true,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, summaries []ConnectorSummary)
	}{
		{
			name: "Sync completo de um conector de anúncios - deve espelhar entidades e métricas",
			setup: func() {
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)
				mockSyncStateRepo.EXPECT().Get("refresh:con_demo").Return(nil, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockClient.EXPECT().HealthCheck(gomock.Any()).Return(nil)

				mockClient.EXPECT().FetchEntities(gomock.Any()).Return([]*domain.Entity{
					{EntityID: "cmp-001", EntityType: domain.EntityTypeCampaign},
					{EntityID: "cmp-002", EntityType: domain.EntityTypeCampaign},
				}, nil)
				mockEntityRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

				mockClient.EXPECT().FetchMetricsDaily(gomock.Any(), yesterday).Return([]*domain.MetricDaily{
					{EntityID: "cmp-001", Spend: 900},
				}, nil)
				mockClient.EXPECT().FetchMetricsDaily(gomock.Any(), now).Return([]*domain.MetricDaily{
					{EntityID: "cmp-001", Spend: 1200},
				}, nil)
				mockMetricRepo.EXPECT().SaveOrUpdateDaily(gomock.Any()).Return(nil).Times(2)

				mockClient.EXPECT().FetchMetricsIntraday(gomock.Any(), now).Return([]*domain.MetricIntraday{
					{EntityID: "cmp-001", Spend: 100},
					{EntityID: "cmp-001", Spend: 200},
					{EntityID: "cmp-001", Spend: 300},
				}, nil)
				mockMetricRepo.EXPECT().SaveOrUpdateIntraday(gomock.Any()).Return(nil).Times(3)

				mockClient.EXPECT().FetchOrders(gomock.Any(), now).Return(nil, connector.ErrNotImplemented)

				mockSyncStateRepo.EXPECT().Set("refresh:con_demo", strconv.FormatInt(now.Unix(), 10)).Return(nil)
				mockConnectorRepo.EXPECT().UpdateSyncStatus("con_demo", true, nil).Return(nil)
			},
			validate: func(t *testing.T, summaries []ConnectorSummary) {
				assert.Len(t, summaries, 1)
				assert.Equal(t, 2, summaries[0].Entities)
				assert.Equal(t, 2, summaries[0].Daily)
				assert.Equal(t, 3, summaries[0].Intraday)
				assert.Equal(t, 0, summaries[0].Orders)
				assert.False(t, summaries[0].Skipped)
				assert.Empty(t, summaries[0].Error)
			},
		},
		{
			name: "Conector sincronizado há pouco - deve pular sem tocar a plataforma",
			setup: func() {
				fiveMinutesAgo := strconv.FormatInt(now.Add(-5*time.Minute).Unix(), 10)

				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)
				mockSyncStateRepo.EXPECT().Get("refresh:con_demo").Return(&fiveMinutesAgo, nil)
			},
			validate: func(t *testing.T, summaries []ConnectorSummary) {
				assert.Len(t, summaries, 1)
				assert.True(t, summaries[0].Skipped)
			},
		},
		{
			name: "Cursor de refresh mais velho que o intervalo mínimo - deve sincronizar",
			setup: func() {
				oneHourAgo := strconv.FormatInt(now.Add(-time.Hour).Unix(), 10)

				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)
				mockSyncStateRepo.EXPECT().Get("refresh:con_demo").Return(&oneHourAgo, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockClient.EXPECT().HealthCheck(gomock.Any()).Return(nil)

				mockClient.EXPECT().FetchEntities(gomock.Any()).Return(nil, connector.ErrNotImplemented)
				mockClient.EXPECT().FetchMetricsDaily(gomock.Any(), gomock.Any()).Return(nil, connector.ErrNotImplemented).Times(2)
				mockClient.EXPECT().FetchMetricsIntraday(gomock.Any(), now).Return(nil, connector.ErrNotImplemented)
				mockClient.EXPECT().FetchOrders(gomock.Any(), now).Return(nil, connector.ErrNotImplemented)

				mockSyncStateRepo.EXPECT().Set("refresh:con_demo", strconv.FormatInt(now.Unix(), 10)).Return(nil)
				mockConnectorRepo.EXPECT().UpdateSyncStatus("con_demo", true, nil).Return(nil)
			},
			validate: func(t *testing.T, summaries []ConnectorSummary) {
				assert.Len(t, summaries, 1)
				assert.False(t, summaries[0].Skipped)
			},
		},
		{
			name: "Conector de comércio - deve gravar pedidos e ignorar operações não suportadas",
			setup: func() {
				cafe24Connector := &domain.Connector{
					ID:       "con_cafe24",
					Platform: domain.PlatformCafe24,
					Enabled:  true,
				}

				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{cafe24Connector}, nil)
				mockSyncStateRepo.EXPECT().Get("refresh:con_cafe24").Return(nil, nil)
				mockBuilder.EXPECT().Build(cafe24Connector).Return(mockClient, nil)
				mockClient.EXPECT().HealthCheck(gomock.Any()).Return(nil)

				mockClient.EXPECT().FetchEntities(gomock.Any()).Return(nil, connector.ErrNotImplemented)
				mockClient.EXPECT().FetchMetricsDaily(gomock.Any(), gomock.Any()).Return(nil, connector.ErrNotImplemented).Times(2)
				mockClient.EXPECT().FetchMetricsIntraday(gomock.Any(), now).Return(nil, connector.ErrNotImplemented)
				mockClient.EXPECT().FetchOrders(gomock.Any(), now).Return([]*domain.StoreOrder{
					{OrderID: "ord-1"},
					{OrderID: "ord-2"},
				}, nil)
				mockOrderRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

				mockSyncStateRepo.EXPECT().Set("refresh:con_cafe24", strconv.FormatInt(now.Unix(), 10)).Return(nil)
				mockConnectorRepo.EXPECT().UpdateSyncStatus("con_cafe24", true, nil).Return(nil)
			},
			validate: func(t *testing.T, summaries []ConnectorSummary) {
				assert.Len(t, summaries, 1)
				assert.Equal(t, 2, summaries[0].Orders)
			},
		},
		{
			name: "Health check reprovado - deve registrar o erro sem buscar dados",
			setup: func() {
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)
				mockSyncStateRepo.EXPECT().Get("refresh:con_demo").Return(nil, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockClient.EXPECT().HealthCheck(gomock.Any()).Return(errors.New("access_token ausente"))

				mockConnectorRepo.EXPECT().
					UpdateSyncStatus("con_demo", false, gomock.Any()).
					DoAndReturn(func(id string, ok bool, message *string) error {
						assert.Contains(t, *message, "access_token ausente")
						return nil
					})
			},
			validate: func(t *testing.T, summaries []ConnectorSummary) {
				assert.Len(t, summaries, 1)
				assert.Contains(t, summaries[0].Error, "health check falhou")
			},
		},
		{
			name: "Falha em um conector - deve registrar o erro e não derrubar o passe",
			setup: func() {
				mockConnectorRepo.EXPECT().ListEnabledConnectors().Return([]*domain.Connector{demoConnector}, nil)
				mockSyncStateRepo.EXPECT().Get("refresh:con_demo").Return(nil, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockClient.EXPECT().HealthCheck(gomock.Any()).Return(nil)

				mockClient.EXPECT().FetchEntities(gomock.Any()).Return(nil, errors.New("credenciais expiradas"))

				mockConnectorRepo.EXPECT().
					UpdateSyncStatus("con_demo", false, gomock.Any()).
					DoAndReturn(func(id string, ok bool, message *string) error {
						assert.Contains(t, *message, "credenciais expiradas")
						return nil
					})
			},
			validate: func(t *testing.T, summaries []ConnectorSummary) {
				assert.Len(t, summaries, 1)
				assert.Contains(t, summaries[0].Error, "credenciais expiradas")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			summaries := service.SyncAll(context.Background(), now)

			if tt.validate != nil {
				tt.validate(t, summaries)
			}
		})
	}
}

package backfilling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	connectormocks "github.com/trafficops/ads-guardrail-api/infrastructure/connector/mocks"
	repomocks "github.com/trafficops/ads-guardrail-api/infrastructure/repository/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	executingmocks "github.com/trafficops/ads-guardrail-api/internal/usecases/executing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Backfill(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConnectorRepo := repomocks.NewMockConnectorRepository(ctrl)
	mockMetricRepo := repomocks.NewMockMetricRepository(ctrl)
	mockOrderRepo := repomocks.NewMockStoreOrderRepository(ctrl)
	mockSyncStateRepo := repomocks.NewMockSyncStateRepository(ctrl)
	mockBuilder := executingmocks.NewMockConnectorBuilder(ctrl)
	mockClient := connectormocks.NewMockClient(ctrl)

	service := &Service{
		connectorRepo: mockConnectorRepo,
		metricRepo:    mockMetricRepo,
		orderRepo:     mockOrderRepo,
		syncStateRepo: mockSyncStateRepo,
		builder:       mockBuilder,
	}

	demoConnector := &domain.Connector{
		ID:       "con_demo",
		Platform: domain.PlatformDemo,
		Enabled:  true,
	}

	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	dayMetrics := func(day time.Time) []*domain.MetricDaily {
		return []*domain.MetricDaily{
			{EntityID: "cmp-001", Date: day, Spend: 1000},
		}
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		setup    func()
		validate func(t *testing.T, summary *Summary, err error)
	}{
		{
			name:  "Intervalo de três dias sem cursor - deve carregar dia a dia e avançar o cursor",
			start: startDate,
			end:   endDate,
			setup: func() {
				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(demoConnector, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockSyncStateRepo.EXPECT().Get("backfill:con_demo").Return(nil, nil)

				for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
					mockClient.EXPECT().FetchMetricsDaily(gomock.Any(), day).Return(dayMetrics(day), nil)
					mockClient.EXPECT().FetchOrders(gomock.Any(), day).Return(nil, connector.ErrNotImplemented)
					mockSyncStateRepo.EXPECT().Set("backfill:con_demo", day.Format("2006-01-02")).Return(nil)
				}
				mockMetricRepo.EXPECT().SaveOrUpdateDaily(gomock.Any()).Return(nil).Times(3)
			},
			validate: func(t *testing.T, summary *Summary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3, summary.DaysLoaded)
				assert.Equal(t, 3, summary.Metrics)
				assert.False(t, summary.Resumed)
				assert.Equal(t, endDate, summary.LastDate)
			},
		},
		{
			name:  "Cursor no meio do intervalo - deve retomar do dia seguinte",
			start: startDate,
			end:   endDate,
			setup: func() {
				cursor := "2024-03-02"

				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(demoConnector, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockSyncStateRepo.EXPECT().Get("backfill:con_demo").Return(&cursor, nil)

				// só o dia 3 de março resta
				mockClient.EXPECT().FetchMetricsDaily(gomock.Any(), endDate).Return(dayMetrics(endDate), nil)
				mockClient.EXPECT().FetchOrders(gomock.Any(), endDate).Return(nil, connector.ErrNotImplemented)
				mockMetricRepo.EXPECT().SaveOrUpdateDaily(gomock.Any()).Return(nil)
				mockSyncStateRepo.EXPECT().Set("backfill:con_demo", "2024-03-03").Return(nil)
			},
			validate: func(t *testing.T, summary *Summary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 1, summary.DaysLoaded)
				assert.True(t, summary.Resumed)
			},
		},
		{
			name:  "Cursor já no fim do intervalo - não deve carregar nada",
			start: startDate,
			end:   endDate,
			setup: func() {
				cursor := "2024-03-03"

				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(demoConnector, nil)
				mockBuilder.EXPECT().Build(demoConnector).Return(mockClient, nil)
				mockSyncStateRepo.EXPECT().Get("backfill:con_demo").Return(&cursor, nil)
			},
			validate: func(t *testing.T, summary *Summary, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, summary.DaysLoaded)
				assert.True(t, summary.Resumed)
			},
		},
		{
			name:  "Intervalo invertido - deve recusar antes de tocar o banco",
			start: endDate,
			end:   startDate,
			setup: func() {},
			validate: func(t *testing.T, summary *Summary, err error) {
				assert.Nil(t, summary)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			summary, err := service.Backfill(context.Background(), "con_demo", tt.start, tt.end)

			if tt.validate != nil {
				tt.validate(t, summary, err)
			}
		})
	}
}

package demo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

func newDemoClient(t *testing.T) connector.Client {
	client, err := New(nil, &domain.Connector{
		ID:       "con_demo",
		Platform: domain.PlatformDemo,
		Config:   map[string]any{"mode": "fixture"},
	})
	assert.NoError(t, err)
	return client
}

func TestDemoConnector_FetchMetricsDaily(t *testing.T) {
	client := newDemoClient(t)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Mesmo dia deve produzir exatamente as mesmas métricas", func(t *testing.T) {
		first, err := client.FetchMetricsDaily(context.Background(), date)
		assert.NoError(t, err)

		second, err := client.FetchMetricsDaily(context.Background(), date)
		assert.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Dias diferentes devem produzir métricas diferentes", func(t *testing.T) {
		first, err := client.FetchMetricsDaily(context.Background(), date)
		assert.NoError(t, err)

		other, err := client.FetchMetricsDaily(context.Background(), date.AddDate(0, 0, 1))
		assert.NoError(t, err)

		assert.NotEqual(t, first[0].Spend, other[0].Spend)
	})

	t.Run("Campanha queimadora deve gastar acima do limite padrão sem converter", func(t *testing.T) {
		metrics, err := client.FetchMetricsDaily(context.Background(), date)
		assert.NoError(t, err)

		var burner *domain.MetricDaily
		for _, m := range metrics {
			if m.EntityID == "cmp-003" {
				burner = m
			}
		}

		assert.NotNil(t, burner)
		assert.GreaterOrEqual(t, burner.Spend, 60000.0)
		assert.Equal(t, 0.0, burner.Conversions)
	})

	t.Run("Campanhas pausadas não aparecem nas métricas", func(t *testing.T) {
		metrics, err := client.FetchMetricsDaily(context.Background(), date)
		assert.NoError(t, err)

		for _, m := range metrics {
			assert.NotEqual(t, "cmp-004", m.EntityID)
		}
	})
}

func TestDemoConnector_FetchEntities(t *testing.T) {
	client := newDemoClient(t)

	entities, err := client.FetchEntities(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entities, 4)
	assert.Equal(t, "cmp-001", entities[0].EntityID)
	assert.Equal(t, domain.EntityTypeCampaign, entities[0].EntityType)
	assert.Equal(t, "con_demo", entities[0].ConnectorID)
}

func TestDemoConnector_FetchOrders(t *testing.T) {
	client := newDemoClient(t)

	orders, err := client.FetchOrders(context.Background(), time.Now())

	assert.Nil(t, orders)
	assert.ErrorIs(t, err, connector.ErrNotImplemented)
}

func TestDemoConnector_ApplyAction(t *testing.T) {
	client := newDemoClient(t)

	tests := []struct {
		name     string
		action   domain.ActionType
		validate func(t *testing.T, result *domain.ActionResult, err error)
	}{
		{
			name:   "Pausa é simulada com before e after",
			action: domain.ActionTypePauseEntity,
			validate: func(t *testing.T, result *domain.ActionResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Simulated)
				assert.Equal(t, "fixture", result.Mode)
				assert.Equal(t, map[string]any{"status": "active"}, result.Before)
				assert.Equal(t, map[string]any{"status": "paused"}, result.After)
			},
		},
		{
			name:   "Ajuste de orçamento é aceito",
			action: domain.ActionTypeSetBudget,
			validate: func(t *testing.T, result *domain.ActionResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Simulated)
			},
		},
		{
			name:   "Ação fora do conjunto suportado é recusada",
			action: domain.ActionTypeAddNegatives,
			validate: func(t *testing.T, result *domain.ActionResult, err error) {
				assert.Nil(t, result)
				assert.ErrorIs(t, err, connector.ErrUnsupportedAction)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := client.ApplyAction(context.Background(), tt.action, domain.EntityTypeCampaign, "cmp-001", nil)
			tt.validate(t, result, err)
		})
	}
}

package connector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

type stubClient struct {
	platform domain.Platform
}

func (s *stubClient) Platform() domain.Platform            { return s.platform }
func (s *stubClient) HealthCheck(_ context.Context) error  { return nil }
func (s *stubClient) FetchEntities(_ context.Context) ([]*domain.Entity, error) {
	return nil, ErrNotImplemented
}
func (s *stubClient) FetchMetricsDaily(_ context.Context, _ time.Time) ([]*domain.MetricDaily, error) {
	return nil, ErrNotImplemented
}
func (s *stubClient) FetchMetricsIntraday(_ context.Context, _ time.Time) ([]*domain.MetricIntraday, error) {
	return nil, ErrNotImplemented
}
func (s *stubClient) FetchOrders(_ context.Context, _ time.Time) ([]*domain.StoreOrder, error) {
	return nil, ErrNotImplemented
}
func (s *stubClient) ApplyAction(_ context.Context, _ domain.ActionType, _ domain.EntityType, _ string, _ map[string]any) (*domain.ActionResult, error) {
	return nil, ErrNotImplemented
}

func stubConstructor(platform domain.Platform) Constructor {
	return func(_ *config.Config, _ *domain.Connector) (Client, error) {
		return &stubClient{platform: platform}, nil
	}
}

func TestRegistry(t *testing.T) {
	t.Run("Plataforma registrada é suportada e construída", func(t *testing.T) {
		registry := NewRegistry(&config.Config{})
		registry.Register(domain.PlatformDemo, stubConstructor(domain.PlatformDemo))

		assert.True(t, registry.Supports(domain.PlatformDemo))
		assert.False(t, registry.Supports(domain.PlatformMeta))

		client, err := registry.Build(&domain.Connector{ID: "con_demo", Platform: domain.PlatformDemo})
		assert.NoError(t, err)
		assert.Equal(t, domain.PlatformDemo, client.Platform())
	})

	t.Run("Plataforma sem construtor é recusada no Build", func(t *testing.T) {
		registry := NewRegistry(&config.Config{})

		client, err := registry.Build(&domain.Connector{ID: "con_x", Platform: domain.PlatformTikTok})
		assert.Nil(t, client)
		assert.Error(t, err)
	})

	t.Run("Registro duplicado da mesma plataforma causa pânico", func(t *testing.T) {
		registry := NewRegistry(&config.Config{})
		registry.Register(domain.PlatformDemo, stubConstructor(domain.PlatformDemo))

		assert.Panics(t, func() {
			registry.Register(domain.PlatformDemo, stubConstructor(domain.PlatformDemo))
		})
	})
}

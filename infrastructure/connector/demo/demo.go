// Package demo implementa um conector sintético completo, usado para
// demonstração e para exercitar o loop de guardrail sem credenciais reais.
// Os dados são determinísticos por (entidade, dia): reexecutar um sync do
// mesmo dia produz exatamente as mesmas métricas.
package demo

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

type campaignFixture struct {
	id     string
	name   string
	status string
	// burner marca a campanha que gasta sem converter, para disparar o
	// kill switch em demonstrações.
	burner bool
}

var campaigns = []campaignFixture{
	{id: "cmp-001", name: "Campanha Marca - Busca", status: "active"},
	{id: "cmp-002", name: "Campanha Performance - Display", status: "active"},
	{id: "cmp-003", name: "Campanha Remarketing", status: "active", burner: true},
	{id: "cmp-004", name: "Campanha Institucional", status: "paused"},
}

type demoConnector struct {
	conn *domain.Connector
}

func New(_ *config.Config, conn *domain.Connector) (connector.Client, error) {
	return &demoConnector{conn: conn}, nil
}

func (d *demoConnector) Platform() domain.Platform {
	return domain.PlatformDemo
}

func (d *demoConnector) HealthCheck(_ context.Context) error {
	return nil
}

func (d *demoConnector) FetchEntities(_ context.Context) ([]*domain.Entity, error) {
	entities := make([]*domain.Entity, 0, len(campaigns))
	for _, c := range campaigns {
		name := c.name
		status := c.status
		entities = append(entities, &domain.Entity{
			Platform:    domain.PlatformDemo,
			ConnectorID: d.conn.ID,
			EntityType:  domain.EntityTypeCampaign,
			EntityID:    c.id,
			Name:        &name,
			Status:      &status,
		})
	}
	return entities, nil
}

func (d *demoConnector) FetchMetricsDaily(_ context.Context, date time.Time) ([]*domain.MetricDaily, error) {
	metrics := make([]*domain.MetricDaily, 0, len(campaigns))
	for _, c := range campaigns {
		if c.status != "active" {
			continue
		}

		rng := seededRand(c.id, date)
		spend := 20000 + rng.Float64()*40000
		clicks := int64(50 + rng.Intn(400))
		conversions := float64(rng.Intn(12))
		if c.burner {
			// Gasto alto, zero conversão: o cenário que o kill switch caça.
			spend = 60000 + rng.Float64()*20000
			conversions = 0
		}

		metrics = append(metrics, &domain.MetricDaily{
			Platform:        domain.PlatformDemo,
			ConnectorID:     d.conn.ID,
			EntityType:      domain.EntityTypeCampaign,
			EntityID:        c.id,
			Date:            date,
			Spend:           spend,
			Impressions:     clicks * 40,
			Clicks:          clicks,
			Conversions:     conversions,
			ConversionValue: conversions * 45000,
		})
	}
	return metrics, nil
}

func (d *demoConnector) FetchMetricsIntraday(ctx context.Context, date time.Time) ([]*domain.MetricIntraday, error) {
	daily, err := d.FetchMetricsDaily(ctx, date)
	if err != nil {
		return nil, err
	}

	// Distribui o dia em baldes de hora até a hora corrente, com pesos
	// determinísticos.
	hours := date.Hour()
	if hours == 0 {
		hours = 1
	}

	metrics := make([]*domain.MetricIntraday, 0, len(daily)*hours)
	for _, m := range daily {
		for h := 0; h < hours; h++ {
			share := 1.0 / float64(hours)
			hourTS := time.Date(date.Year(), date.Month(), date.Day(), h, 0, 0, 0, date.Location())
			metrics = append(metrics, &domain.MetricIntraday{
				Platform:        m.Platform,
				ConnectorID:     m.ConnectorID,
				EntityType:      m.EntityType,
				EntityID:        m.EntityID,
				HourTS:          hourTS,
				Spend:           m.Spend * share,
				Impressions:     int64(float64(m.Impressions) * share),
				Clicks:          int64(float64(m.Clicks) * share),
				Conversions:     m.Conversions * share,
				ConversionValue: m.ConversionValue * share,
			})
		}
	}
	return metrics, nil
}

func (d *demoConnector) FetchOrders(_ context.Context, _ time.Time) ([]*domain.StoreOrder, error) {
	return nil, connector.ErrNotImplemented
}

func (d *demoConnector) ApplyAction(
	_ context.Context,
	action domain.ActionType,
	entityType domain.EntityType,
	entityID string,
	_ map[string]any,
) (*domain.ActionResult, error) {
	if action != domain.ActionTypePauseEntity && action != domain.ActionTypeSetBudget {
		return nil, fmt.Errorf("%w: %s", connector.ErrUnsupportedAction, action)
	}

	// O conector demo nunca toca plataforma real; toda ação é simulada.
	result := connector.SimulatedResult(domain.PlatformDemo, d.conn.Mode(), action, entityType, entityID)
	result.Before = map[string]any{"status": "active"}
	result.After = map[string]any{"status": "paused"}
	return result, nil
}

// seededRand produz um gerador estável por (entidade, dia).
func seededRand(entityID string, date time.Time) *rand.Rand {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s", entityID, date.Format("2006-01-02"))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

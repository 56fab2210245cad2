package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

func TestDailyUpsertQuery(t *testing.T) {
	metric := &domain.MetricDaily{
		Platform:    domain.PlatformMeta,
		ConnectorID: "con_meta",
		EntityType:  domain.EntityTypeCampaign,
		EntityID:    "cmp-001",
		Date:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		Spend:       125000,
		Clicks:      42,
		Conversions: 3,
	}

	query, args, err := dailyUpsertQuery(metric)

	assert.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO metrics_daily")
	assert.Contains(t, query, "ON CONFLICT (platform, connector_id, entity_type, entity_id, date) DO UPDATE SET")
	assert.Contains(t, query, "spend = EXCLUDED.spend")
	assert.Contains(t, query, "conversions = EXCLUDED.conversions")
	assert.Contains(t, args, "2026-03-10")
	assert.Contains(t, args, domain.PlatformMeta)
}

func TestIntradayUpsertQuery(t *testing.T) {
	metric := &domain.MetricIntraday{
		Platform:    domain.PlatformMeta,
		ConnectorID: "con_meta",
		EntityType:  domain.EntityTypeCampaign,
		EntityID:    "cmp-001",
		HourTS:      time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC),
		Spend:       9000,
	}

	query, _, err := intradayUpsertQuery(metric)

	assert.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO metrics_intraday")
	assert.Contains(t, query, "ON CONFLICT (platform, connector_id, entity_type, entity_id, hour_ts) DO UPDATE SET")
	assert.Contains(t, query, "metrics = EXCLUDED.metrics")
}

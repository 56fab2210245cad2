package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

const (
	metricsDailyTable    = "metrics_daily"
	metricsIntradayTable = "metrics_intraday"
)

type MetricRepository interface {
	SaveOrUpdateDaily(metric *domain.MetricDaily) error
	SaveOrUpdateIntraday(metric *domain.MetricIntraday) error
	ListDailyForDate(platform domain.Platform, connectorID string, entityType domain.EntityType, date time.Time) ([]*domain.MetricDaily, error)
	GetDailyForEntityDate(platform domain.Platform, connectorID string, entityType domain.EntityType, entityID string, date time.Time) (*domain.MetricDaily, error)
	SumIntradayForEntityDate(platform domain.Platform, connectorID string, entityType domain.EntityType, entityID string, date time.Time) (*domain.IntradaySum, error)
	GetLatestDate(platform domain.Platform, connectorID string) (*time.Time, error)
}

type metricRepository struct {
	conn *postgres.Connection
}

func NewMetricRepository(conn *postgres.Connection) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func (r *metricRepository) SaveOrUpdateDaily(metric *domain.MetricDaily) error {
	sqlQuery, args, err := dailyUpsertQuery(metric)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// dailyUpsertQuery monta o upsert de metrics_daily. A chave de conflito
// precisa casar com a constraint composta da tabela.
func dailyUpsertQuery(metric *domain.MetricDaily) (string, []any, error) {
	metricsJSON, err := json.Marshal(metric.Metrics)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar metrics para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(metricsDailyTable).
		Columns(
			"platform", "connector_id", "account_id", "entity_type", "entity_id",
			"date", "spend", "impressions", "clicks", "conversions",
			"conversion_value", "metrics",
		).
		Values(
			metric.Platform,
			metric.ConnectorID,
			metric.AccountID,
			metric.EntityType,
			metric.EntityID,
			metric.Date.Format("2006-01-02"),
			metric.Spend,
			metric.Impressions,
			metric.Clicks,
			metric.Conversions,
			metric.ConversionValue,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (platform, connector_id, entity_type, entity_id, date) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return sqlQuery, args, nil
}

func (r *metricRepository) SaveOrUpdateIntraday(metric *domain.MetricIntraday) error {
	sqlQuery, args, err := intradayUpsertQuery(metric)
	if err != nil {
		return err
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func intradayUpsertQuery(metric *domain.MetricIntraday) (string, []any, error) {
	metricsJSON, err := json.Marshal(metric.Metrics)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar metrics para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(metricsIntradayTable).
		Columns(
			"platform", "connector_id", "account_id", "entity_type", "entity_id",
			"hour_ts", "spend", "impressions", "clicks", "conversions",
			"conversion_value", "metrics",
		).
		Values(
			metric.Platform,
			metric.ConnectorID,
			metric.AccountID,
			metric.EntityType,
			metric.EntityID,
			metric.HourTS,
			metric.Spend,
			metric.Impressions,
			metric.Clicks,
			metric.Conversions,
			metric.ConversionValue,
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT (platform, connector_id, entity_type, entity_id, hour_ts) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				spend = EXCLUDED.spend,
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return sqlQuery, args, nil
}

func (r *metricRepository) ListDailyForDate(
	platform domain.Platform,
	connectorID string,
	entityType domain.EntityType,
	date time.Time,
) ([]*domain.MetricDaily, error) {
	query, args, err := squirrel.
		Select("m.platform, m.connector_id, m.account_id, m.entity_type, m.entity_id, m.date, m.spend, m.impressions, m.clicks, m.conversions, m.conversion_value, m.metrics").
		From(metricsDailyTable + " m").
		Where(squirrel.Eq{
			"m.platform":     platform,
			"m.connector_id": connectorID,
			"m.entity_type":  entityType,
			"m.date":         date.Format("2006-01-02"),
		}).
		OrderBy("m.spend DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.MetricDaily, 0)
	for rows.Next() {
		metric, err := scanMetricDaily(rows)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func (r *metricRepository) GetDailyForEntityDate(
	platform domain.Platform,
	connectorID string,
	entityType domain.EntityType,
	entityID string,
	date time.Time,
) (*domain.MetricDaily, error) {
	query, args, err := squirrel.
		Select("m.platform, m.connector_id, m.account_id, m.entity_type, m.entity_id, m.date, m.spend, m.impressions, m.clicks, m.conversions, m.conversion_value, m.metrics").
		From(metricsDailyTable + " m").
		Where(squirrel.Eq{
			"m.platform":     platform,
			"m.connector_id": connectorID,
			"m.entity_type":  entityType,
			"m.entity_id":    entityID,
			"m.date":         date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	metric, err := scanMetricDaily(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return metric, nil
}

// SumIntradayForEntityDate soma os baldes de hora do dia informado, no fuso
// do timestamp armazenado. Retorna zeros quando não há baldes.
func (r *metricRepository) SumIntradayForEntityDate(
	platform domain.Platform,
	connectorID string,
	entityType domain.EntityType,
	entityID string,
	date time.Time,
) (*domain.IntradaySum, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	query, args, err := squirrel.
		Select(
			"COALESCE(SUM(m.spend), 0)",
			"COALESCE(SUM(m.clicks), 0)",
			"COALESCE(SUM(m.conversions), 0)",
			"COALESCE(SUM(m.conversion_value), 0)",
		).
		From(metricsIntradayTable + " m").
		Where(squirrel.Eq{
			"m.platform":     platform,
			"m.connector_id": connectorID,
			"m.entity_type":  entityType,
			"m.entity_id":    entityID,
		}).
		Where(squirrel.GtOrEq{"m.hour_ts": dayStart}).
		Where(squirrel.Lt{"m.hour_ts": dayEnd}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sum := &domain.IntradaySum{}
	err = r.conn.QueryRow(query, args...).Scan(
		&sum.Spend,
		&sum.Clicks,
		&sum.Conversions,
		&sum.ConversionValue,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear soma intraday: %w", err)
	}

	return sum, nil
}

func (r *metricRepository) GetLatestDate(platform domain.Platform, connectorID string) (*time.Time, error) {
	query, args, err := squirrel.
		Select("MAX(m.date)").
		From(metricsDailyTable + " m").
		Where(squirrel.Eq{
			"m.platform":     platform,
			"m.connector_id": connectorID,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullTime
	err = r.conn.QueryRow(query, args...).Scan(&latest)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear data mais recente: %w", err)
	}

	if !latest.Valid {
		return nil, nil
	}

	return &latest.Time, nil
}

func scanMetricDaily(row rowScanner) (*domain.MetricDaily, error) {
	metric := &domain.MetricDaily{}
	var metricsJSON []byte

	err := row.Scan(
		&metric.Platform,
		&metric.ConnectorID,
		&metric.AccountID,
		&metric.EntityType,
		&metric.EntityID,
		&metric.Date,
		&metric.Spend,
		&metric.Impressions,
		&metric.Clicks,
		&metric.Conversions,
		&metric.ConversionValue,
		&metricsJSON,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("erro ao escanear metrics_daily: %w", err)
	}

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &metric.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
	}

	return metric, nil
}

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
	trackingLinksTable    = "tracking_links"
	clickEventsTable      = "click_events"
	conversionEventsTable = "conversion_events"
)

// AttributionRepository guarda tracking links, cliques e conversões do
// comércio, e responde a contagem de conversões atribuídas a uma entidade
// de anúncio em um dia.
type AttributionRepository interface {
	SaveOrUpdateTrackingLink(link *domain.TrackingLink) error
	GetTrackingLink(code string) (*domain.TrackingLink, error)
	RecordClickEvent(event *domain.ClickEvent) error
	RecordConversionEvent(event *domain.ConversionEvent) error
	SumAttributedConversionsForEntityDate(platform domain.Platform, entityType domain.EntityType, entityID string, date time.Time) (*domain.AttributedConversions, error)
}

// ErrTrackingLinkNotFound indica que o código de rastreamento não existe.
var ErrTrackingLinkNotFound = fmt.Errorf("tracking link não encontrado")

type attributionRepository struct {
	conn *postgres.Connection
}

func NewAttributionRepository(conn *postgres.Connection) AttributionRepository {
	return &attributionRepository{
		conn: conn,
	}
}

func (r *attributionRepository) SaveOrUpdateTrackingLink(link *domain.TrackingLink) error {
	metaJSON, err := json.Marshal(link.Meta)
	if err != nil {
		return fmt.Errorf("erro ao serializar meta para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(trackingLinksTable).
		Columns(
			"code", "destination_url", "channel", "objective",
			"entity_platform", "entity_type", "entity_id", "meta",
		).
		Values(
			link.Code,
			link.DestinationURL,
			link.Channel,
			link.Objective,
			link.EntityPlatform,
			link.EntityType,
			link.EntityID,
			metaJSON,
		).
		Suffix(`
			ON CONFLICT (code) DO UPDATE SET
				destination_url = EXCLUDED.destination_url,
				channel = EXCLUDED.channel,
				objective = EXCLUDED.objective,
				entity_platform = EXCLUDED.entity_platform,
				entity_type = EXCLUDED.entity_type,
				entity_id = EXCLUDED.entity_id,
				meta = EXCLUDED.meta,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
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

func (r *attributionRepository) GetTrackingLink(code string) (*domain.TrackingLink, error) {
	query, args, err := squirrel.
		Select(
			"code", "destination_url", "channel", "objective",
			"entity_platform", "entity_type", "entity_id", "meta",
			"created_at", "updated_at",
		).
		From(trackingLinksTable).
		Where(squirrel.Eq{"code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	link := &domain.TrackingLink{}
	var metaJSON []byte
	err = r.conn.QueryRow(query, args...).Scan(
		&link.Code,
		&link.DestinationURL,
		&link.Channel,
		&link.Objective,
		&link.EntityPlatform,
		&link.EntityType,
		&link.EntityID,
		&metaJSON,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrTrackingLinkNotFound
		}
		return nil, fmt.Errorf("erro ao buscar o tracking link: %w", err)
	}

	if len(metaJSON) > 0 {
		if err := json.Unmarshal(metaJSON, &link.Meta); err != nil {
			return nil, fmt.Errorf("erro ao desserializar meta: %w", err)
		}
	}

	return link, nil
}

func (r *attributionRepository) RecordClickEvent(event *domain.ClickEvent) error {
	queryJSON, err := json.Marshal(event.Query)
	if err != nil {
		return fmt.Errorf("erro ao serializar query para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(clickEventsTable).
		Columns("id", "code", "date", "user_agent", "ip_hash", "referer", "query").
		Values(
			event.ID,
			event.Code,
			event.Date.Format("2006-01-02"),
			event.UserAgent,
			event.IPHash,
			event.Referer,
			queryJSON,
		).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
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

// RecordConversionEvent grava a conversão. Reimportação do mesmo pedido pela
// mesma fonte não duplica: o par (order_id, source) é único e o conflito é
// ignorado.
func (r *attributionRepository) RecordConversionEvent(event *domain.ConversionEvent) error {
	extraJSON, err := json.Marshal(event.Extra)
	if err != nil {
		return fmt.Errorf("erro ao serializar extra para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(conversionEventsTable).
		Columns("id", "click_id", "date", "order_id", "value", "currency", "source", "extra").
		Values(
			event.ID,
			event.ClickID,
			event.Date.Format("2006-01-02"),
			event.OrderID,
			event.Value,
			event.Currency,
			event.Source,
			extraJSON,
		).
		Suffix("ON CONFLICT (order_id, source) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
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

// SumAttributedConversionsForEntityDate conta as conversões do comércio
// ligadas à entidade via conversion_events -> click_events -> tracking_links.
func (r *attributionRepository) SumAttributedConversionsForEntityDate(
	platform domain.Platform,
	entityType domain.EntityType,
	entityID string,
	date time.Time,
) (*domain.AttributedConversions, error) {
	query, args, err := squirrel.
		Select("COUNT(cv.id)", "COALESCE(SUM(cv.value), 0)").
		From(conversionEventsTable + " cv").
		Join(clickEventsTable + " ck ON ck.id = cv.click_id").
		Join(trackingLinksTable + " tl ON tl.code = ck.code").
		Where(squirrel.Eq{
			"tl.entity_platform": platform,
			"tl.entity_type":     entityType,
			"tl.entity_id":       entityID,
			"cv.date":            date.Format("2006-01-02"),
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	attributed := &domain.AttributedConversions{}
	err = r.conn.QueryRow(query, args...).Scan(&attributed.Conversions, &attributed.ConversionValue)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.AttributedConversions{}, nil
		}
		return nil, fmt.Errorf("erro ao escanear conversões atribuídas: %w", err)
	}

	return attributed, nil
}

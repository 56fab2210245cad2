package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

const (
	entitiesTable = "entities"
)

// EntityFilters restringe a listagem de entidades espelhadas.
type EntityFilters struct {
	Platform    *domain.Platform
	ConnectorID *string
	EntityType  *domain.EntityType
	Limit       uint64
}

type EntityRepository interface {
	SaveOrUpdate(entity *domain.Entity) error
	List(filters EntityFilters) ([]*domain.Entity, error)
}

type entityRepository struct {
	conn *postgres.Connection
}

func NewEntityRepository(conn *postgres.Connection) EntityRepository {
	return &entityRepository{
		conn: conn,
	}
}

func (r *entityRepository) SaveOrUpdate(entity *domain.Entity) error {
	metaJSON, err := json.Marshal(entity.Meta)
	if err != nil {
		return fmt.Errorf("erro ao serializar meta para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(entitiesTable).
		Columns(
			"platform", "connector_id", "account_id", "entity_type", "entity_id",
			"parent_type", "parent_id", "name", "status", "meta",
		).
		Values(
			entity.Platform,
			entity.ConnectorID,
			entity.AccountID,
			entity.EntityType,
			entity.EntityID,
			entity.ParentType,
			entity.ParentID,
			entity.Name,
			entity.Status,
			metaJSON,
		).
		Suffix(`
			ON CONFLICT (platform, connector_id, entity_type, entity_id) DO UPDATE SET
				account_id = EXCLUDED.account_id,
				parent_type = EXCLUDED.parent_type,
				parent_id = EXCLUDED.parent_id,
				name = EXCLUDED.name,
				status = EXCLUDED.status,
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

func (r *entityRepository) List(filters EntityFilters) ([]*domain.Entity, error) {
	builder := squirrel.
		Select("e.platform, e.connector_id, e.account_id, e.entity_type, e.entity_id, e.parent_type, e.parent_id, e.name, e.status, e.meta, e.updated_at").
		From(entitiesTable + " e").
		OrderBy("e.platform, e.entity_type, e.name").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Platform != nil {
		builder = builder.Where(squirrel.Eq{"e.platform": *filters.Platform})
	}
	if filters.ConnectorID != nil {
		builder = builder.Where(squirrel.Eq{"e.connector_id": *filters.ConnectorID})
	}
	if filters.EntityType != nil {
		builder = builder.Where(squirrel.Eq{"e.entity_type": *filters.EntityType})
	}
	if filters.Limit > 0 {
		builder = builder.Limit(filters.Limit)
	}

	query, args, err := builder.ToSql()
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

	entities := make([]*domain.Entity, 0)
	for rows.Next() {
		entity := &domain.Entity{}
		var metaJSON []byte

		err := rows.Scan(
			&entity.Platform,
			&entity.ConnectorID,
			&entity.AccountID,
			&entity.EntityType,
			&entity.EntityID,
			&entity.ParentType,
			&entity.ParentID,
			&entity.Name,
			&entity.Status,
			&metaJSON,
			&entity.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entities: %w", err)
		}

		if metaJSON != nil {
			if err := json.Unmarshal(metaJSON, &entity.Meta); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de meta: %w", err)
			}
		}

		entities = append(entities, entity)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entities, nil
}

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
	connectorsTable = "connectors"
)

var ErrConnectorNotFound = fmt.Errorf("conector não encontrado")

type ConnectorRepository interface {
	Create(connector *domain.Connector) error
	GetByID(connectorID string) (*domain.Connector, error)
	ListConnectors() ([]*domain.Connector, error)
	ListEnabledConnectors() ([]*domain.Connector, error)
	SetEnabled(connectorID string, enabled bool) error
	UpdateConfig(connectorID string, config map[string]any) error
	UpdateSyncStatus(connectorID string, ok bool, syncError *string) error
}

type connectorRepository struct {
	conn *postgres.Connection
}

func NewConnectorRepository(conn *postgres.Connection) ConnectorRepository {
	return &connectorRepository{
		conn: conn,
	}
}

const connectorColumns = "c.id, c.platform, c.name, c.enabled, c.config, c.capabilities, c.last_sync_at, c.last_error, c.created_at, c.updated_at"

func (r *connectorRepository) Create(connector *domain.Connector) error {
	configJSON, err := json.Marshal(connector.Config)
	if err != nil {
		return fmt.Errorf("erro ao serializar config para JSON: %w", err)
	}

	capabilitiesJSON, err := json.Marshal(connector.Capabilities)
	if err != nil {
		return fmt.Errorf("erro ao serializar capabilities para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(connectorsTable).
		Columns("id", "platform", "name", "enabled", "config", "capabilities").
		Values(
			connector.ID,
			connector.Platform,
			connector.Name,
			connector.Enabled,
			configJSON,
			capabilitiesJSON,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				enabled = EXCLUDED.enabled,
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

func (r *connectorRepository) GetByID(connectorID string) (*domain.Connector, error) {
	query, args, err := squirrel.
		Select(connectorColumns).
		From(connectorsTable + " c").
		Where(squirrel.Eq{"c.id": connectorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	connector, err := scanConnector(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrConnectorNotFound
		}
		return nil, fmt.Errorf("erro ao escanear connector: %w", err)
	}

	return connector, nil
}

func (r *connectorRepository) ListConnectors() ([]*domain.Connector, error) {
	return r.list(nil)
}

func (r *connectorRepository) ListEnabledConnectors() ([]*domain.Connector, error) {
	return r.list(squirrel.Eq{"c.enabled": true})
}

func (r *connectorRepository) list(where any) ([]*domain.Connector, error) {
	builder := squirrel.
		Select(connectorColumns).
		From(connectorsTable + " c").
		OrderBy("c.enabled DESC, c.platform, c.name").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
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

	connectors := make([]*domain.Connector, 0)
	for rows.Next() {
		connector, err := scanConnector(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear connectors: %w", err)
		}
		connectors = append(connectors, connector)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return connectors, nil
}

func (r *connectorRepository) SetEnabled(connectorID string, enabled bool) error {
	query, args, err := squirrel.
		Update(connectorsTable).
		Set("enabled", enabled).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": connectorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *connectorRepository) UpdateConfig(connectorID string, config map[string]any) error {
	configJSON, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("erro ao serializar config para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(connectorsTable).
		Set("config", configJSON).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": connectorID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *connectorRepository) UpdateSyncStatus(connectorID string, ok bool, syncError *string) error {
	builder := squirrel.
		Update(connectorsTable).
		Set("last_error", syncError).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": connectorID}).
		PlaceholderFormat(squirrel.Dollar)

	// last_sync_at só avança em sync bem-sucedido
	if ok {
		builder = builder.Set("last_sync_at", time.Now())
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConnector(row rowScanner) (*domain.Connector, error) {
	connector := &domain.Connector{}
	var configJSON, capabilitiesJSON []byte

	err := row.Scan(
		&connector.ID,
		&connector.Platform,
		&connector.Name,
		&connector.Enabled,
		&configJSON,
		&capabilitiesJSON,
		&connector.LastSyncAt,
		&connector.LastError,
		&connector.CreatedAt,
		&connector.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if configJSON != nil {
		if err := json.Unmarshal(configJSON, &connector.Config); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de config: %w", err)
		}
	}

	if capabilitiesJSON != nil {
		if err := json.Unmarshal(capabilitiesJSON, &connector.Capabilities); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de capabilities: %w", err)
		}
	}

	return connector, nil
}

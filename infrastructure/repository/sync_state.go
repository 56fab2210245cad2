package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/trafficops/ads-guardrail-api/infrastructure/database/postgres"
)

const (
	syncStateTable = "sync_state"
)

// SyncStateRepository é o armazenamento chave/valor de cursores de
// sincronização: offset do Telegram, cursor de backfill por conector,
// timestamp do último refresh por conector.
type SyncStateRepository interface {
	Get(key string) (*string, error)
	Set(key, value string) error
}

type syncStateRepository struct {
	conn *postgres.Connection
}

func NewSyncStateRepository(conn *postgres.Connection) SyncStateRepository {
	return &syncStateRepository{
		conn: conn,
	}
}

func (r *syncStateRepository) Get(key string) (*string, error) {
	query, args, err := squirrel.
		Select("s.value").
		From(syncStateTable + " s").
		Where(squirrel.Eq{"s.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value string
	err = r.conn.QueryRow(query, args...).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear sync_state: %w", err)
	}

	return &value, nil
}

func (r *syncStateRepository) Set(key, value string) error {
	query := squirrel.StatementBuilder.
		Insert(syncStateTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
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

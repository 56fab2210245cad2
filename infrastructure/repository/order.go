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
	storeOrdersTable = "store_orders"
)

// StoreOrderFilters restringe a listagem de pedidos.
type StoreOrderFilters struct {
	Store     *string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     uint64
}

type StoreOrderRepository interface {
	SaveOrUpdate(order *domain.StoreOrder) error
	List(filters StoreOrderFilters) ([]*domain.StoreOrder, error)
	Summary(store string, startDate, endDate time.Time) (*domain.StoreOrderSummary, error)
	CountByInflowPath(store string, startDate, endDate time.Time) ([]*domain.InflowPathCount, error)
}

type storeOrderRepository struct {
	conn *postgres.Connection
}

func NewStoreOrderRepository(conn *postgres.Connection) StoreOrderRepository {
	return &storeOrderRepository{
		conn: conn,
	}
}

func (r *storeOrderRepository) SaveOrUpdate(order *domain.StoreOrder) error {
	metaJSON, err := json.Marshal(order.Meta)
	if err != nil {
		return fmt.Errorf("erro ao serializar meta para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(storeOrdersTable).
		Columns(
			"store", "order_id", "ordered_at", "date", "status", "amount",
			"currency", "order_place_id", "order_place_name", "inflow_path",
			"inflow_path_detail", "referer", "source_raw", "meta",
		).
		Values(
			order.Store,
			order.OrderID,
			order.OrderedAt,
			order.Date.Format("2006-01-02"),
			order.Status,
			order.Amount,
			order.Currency,
			order.OrderPlaceID,
			order.OrderPlaceName,
			order.InflowPath,
			order.InflowPathDetail,
			order.Referer,
			order.SourceRaw,
			metaJSON,
		).
		Suffix(`
			ON CONFLICT (store, order_id) DO UPDATE SET
				ordered_at = EXCLUDED.ordered_at,
				date = EXCLUDED.date,
				status = EXCLUDED.status,
				amount = EXCLUDED.amount,
				currency = EXCLUDED.currency,
				order_place_id = EXCLUDED.order_place_id,
				order_place_name = EXCLUDED.order_place_name,
				inflow_path = EXCLUDED.inflow_path,
				inflow_path_detail = EXCLUDED.inflow_path_detail,
				referer = EXCLUDED.referer,
				source_raw = EXCLUDED.source_raw,
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

func (r *storeOrderRepository) List(filters StoreOrderFilters) ([]*domain.StoreOrder, error) {
	builder := squirrel.
		Select("o.store, o.order_id, o.ordered_at, o.date, o.status, o.amount, o.currency, o.order_place_id, o.order_place_name, o.inflow_path, o.inflow_path_detail, o.referer, o.source_raw, o.meta, o.created_at, o.updated_at").
		From(storeOrdersTable + " o").
		OrderBy("o.date DESC, o.order_id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.Store != nil {
		builder = builder.Where(squirrel.Eq{"o.store": *filters.Store})
	}
	if filters.StartDate != nil {
		builder = builder.Where(squirrel.GtOrEq{"o.date": filters.StartDate.Format("2006-01-02")})
	}
	if filters.EndDate != nil {
		builder = builder.Where(squirrel.LtOrEq{"o.date": filters.EndDate.Format("2006-01-02")})
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

	orders := make([]*domain.StoreOrder, 0)
	for rows.Next() {
		order := &domain.StoreOrder{}
		var metaJSON []byte

		err := rows.Scan(
			&order.Store,
			&order.OrderID,
			&order.OrderedAt,
			&order.Date,
			&order.Status,
			&order.Amount,
			&order.Currency,
			&order.OrderPlaceID,
			&order.OrderPlaceName,
			&order.InflowPath,
			&order.InflowPathDetail,
			&order.Referer,
			&order.SourceRaw,
			&metaJSON,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear store_orders: %w", err)
		}

		if metaJSON != nil {
			if err := json.Unmarshal(metaJSON, &order.Meta); err != nil {
				return nil, fmt.Errorf("erro ao deserializar JSON de meta: %w", err)
			}
		}

		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return orders, nil
}

func (r *storeOrderRepository) Summary(store string, startDate, endDate time.Time) (*domain.StoreOrderSummary, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(o.amount), 0)").
		From(storeOrdersTable + " o").
		Where(squirrel.Eq{"o.store": store}).
		Where(squirrel.GtOrEq{"o.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"o.date": endDate.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.StoreOrderSummary{}
	err = r.conn.QueryRow(query, args...).Scan(&summary.OrderCount, &summary.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear resumo de pedidos: %w", err)
	}

	return summary, nil
}

func (r *storeOrderRepository) CountByInflowPath(store string, startDate, endDate time.Time) ([]*domain.InflowPathCount, error) {
	query, args, err := squirrel.
		Select("COALESCE(o.inflow_path, 'desconhecido')", "COUNT(*)").
		From(storeOrdersTable + " o").
		Where(squirrel.Eq{"o.store": store}).
		Where(squirrel.GtOrEq{"o.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"o.date": endDate.Format("2006-01-02")}).
		GroupBy("COALESCE(o.inflow_path, 'desconhecido')").
		OrderBy("COUNT(*) DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make([]*domain.InflowPathCount, 0)
	for rows.Next() {
		count := &domain.InflowPathCount{}
		if err := rows.Scan(&count.InflowPath, &count.Orders); err != nil {
			return nil, fmt.Errorf("erro ao escanear contagem por inflow_path: %w", err)
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

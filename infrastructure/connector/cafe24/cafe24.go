// Package cafe24 implementa o conector de comércio do Cafe24: busca pedidos
// da loja, que alimentam a atribuição de receita por caminho de entrada. Não
// faz nenhuma escrita.
package cafe24

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

type cafe24Connector struct {
	cfg    *config.Config
	conn   *domain.Connector
	store  string
	client *http.Client
}

func New(cfg *config.Config, conn *domain.Connector) (connector.Client, error) {
	store, err := connector.ConfigString(conn.Config, "store")
	if err != nil {
		return nil, err
	}

	if conn.Mode() == domain.ModeAPI {
		if cfg.Cafe24.BaseURL == "" || cfg.Cafe24.AccessToken == "" {
			return nil, fmt.Errorf("conector do Cafe24 em modo api sem credenciais configuradas")
		}
	}

	return &cafe24Connector{
		cfg:   cfg,
		conn:  conn,
		store: store,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *cafe24Connector) Platform() domain.Platform {
	return domain.PlatformCafe24
}

func (c *cafe24Connector) HealthCheck(ctx context.Context) error {
	if c.conn.Mode() != domain.ModeAPI {
		return nil
	}

	// A menor leitura autenticada: pedidos de hoje com limite 1.
	_, err := c.fetchOrdersPage(ctx, time.Now(), 1, 0)
	if err != nil {
		return fmt.Errorf("erro ao verificar a loja do Cafe24: %w", err)
	}

	return nil
}

func (c *cafe24Connector) FetchEntities(_ context.Context) ([]*domain.Entity, error) {
	return nil, connector.ErrNotImplemented
}

func (c *cafe24Connector) FetchMetricsDaily(_ context.Context, _ time.Time) ([]*domain.MetricDaily, error) {
	return nil, connector.ErrNotImplemented
}

func (c *cafe24Connector) FetchMetricsIntraday(_ context.Context, _ time.Time) ([]*domain.MetricIntraday, error) {
	return nil, connector.ErrNotImplemented
}

type cafe24Order struct {
	OrderID        string  `json:"order_id"`
	OrderDate      string  `json:"order_date"`
	OrderPlaceID   string  `json:"order_place_id"`
	OrderPlaceName string  `json:"order_place_name"`
	PaymentAmount  string  `json:"payment_amount"`
	Currency       string  `json:"currency"`
	OrderStatus    string  `json:"order_status"`
	InflowPath     string  `json:"inflow_path"`
	InflowPathAdd  string  `json:"inflow_path_add"`
	Referer        *string `json:"referer"`
}

type cafe24OrdersResponse struct {
	Orders []cafe24Order `json:"orders"`
}

func (c *cafe24Connector) FetchOrders(ctx context.Context, date time.Time) ([]*domain.StoreOrder, error) {
	if c.conn.Mode() != domain.ModeAPI {
		return nil, connector.ErrNotImplemented
	}

	const pageSize = 100

	orders := make([]*domain.StoreOrder, 0)
	for offset := 0; ; offset += pageSize {
		page, err := c.fetchOrdersPage(ctx, date, pageSize, offset)
		if err != nil {
			return nil, err
		}

		for _, raw := range page {
			order, err := c.toStoreOrder(raw, date)
			if err != nil {
				return nil, err
			}
			orders = append(orders, order)
		}

		if len(page) < pageSize {
			break
		}
	}

	return orders, nil
}

func (c *cafe24Connector) fetchOrdersPage(ctx context.Context, date time.Time, limit, offset int) ([]cafe24Order, error) {
	endpoint, err := url.Parse(c.cfg.Cafe24.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/api/v2/admin/orders")

	day := date.Format("2006-01-02")
	query := endpoint.Query()
	query.Set("start_date", day)
	query.Set("end_date", day)
	query.Set("limit", fmt.Sprintf("%d", limit))
	query.Set("offset", fmt.Sprintf("%d", offset))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Cafe24.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	var response cafe24OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response.Orders, nil
}

func (c *cafe24Connector) toStoreOrder(raw cafe24Order, date time.Time) (*domain.StoreOrder, error) {
	var amount float64
	if raw.PaymentAmount != "" {
		if _, err := fmt.Sscanf(raw.PaymentAmount, "%f", &amount); err != nil {
			return nil, fmt.Errorf("erro ao converter o valor do pedido %s: %w", raw.OrderID, err)
		}
	}

	order := &domain.StoreOrder{
		Store:   c.store,
		OrderID: raw.OrderID,
		Date:    date,
		Amount:  amount,
	}

	if raw.OrderDate != "" {
		if orderedAt, err := time.Parse(time.RFC3339, raw.OrderDate); err == nil {
			order.OrderedAt = &orderedAt
		}
	}
	if raw.OrderStatus != "" {
		order.Status = &raw.OrderStatus
	}
	if raw.Currency != "" {
		order.Currency = &raw.Currency
	}
	if raw.OrderPlaceID != "" {
		order.OrderPlaceID = &raw.OrderPlaceID
	}
	if raw.OrderPlaceName != "" {
		order.OrderPlaceName = &raw.OrderPlaceName
	}
	if raw.InflowPath != "" {
		order.InflowPath = &raw.InflowPath
	}
	if raw.InflowPathAdd != "" {
		order.InflowPathDetail = &raw.InflowPathAdd
	}
	order.Referer = raw.Referer

	return order, nil
}

func (c *cafe24Connector) ApplyAction(
	_ context.Context,
	action domain.ActionType,
	_ domain.EntityType,
	_ string,
	_ map[string]any,
) (*domain.ActionResult, error) {
	return nil, fmt.Errorf("%w: %s", connector.ErrUnsupportedAction, action)
}

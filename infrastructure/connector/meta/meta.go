package meta

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

type metaConnector struct {
	cfg       *config.Config
	conn      *domain.Connector
	http      *httpClient
	accountID string
}

// New cria o conector do Meta. Em modo api a configuração precisa trazer o
// account_id; nos demais modos o conector só responde simulações.
func New(cfg *config.Config, conn *domain.Connector) (connector.Client, error) {
	c := &metaConnector{
		cfg:  cfg,
		conn: conn,
		http: newHTTPClient(cfg),
	}

	if conn.Mode() == domain.ModeAPI {
		accountID, err := connector.ConfigString(conn.Config, "account_id")
		if err != nil {
			return nil, err
		}
		c.accountID = accountID

		if cfg.Meta.AccessToken == "" {
			return nil, fmt.Errorf("conector do Meta em modo api sem access token configurado")
		}
	}

	return c, nil
}

func (c *metaConnector) Platform() domain.Platform {
	return domain.PlatformMeta
}

// HealthCheck consulta a própria conta de anúncios, a menor leitura que
// valida token e permissão ao mesmo tempo.
func (c *metaConnector) HealthCheck(ctx context.Context) error {
	if c.conn.Mode() != domain.ModeAPI {
		return nil
	}

	params := url.Values{}
	params.Add("fields", "id,name,account_status")
	params.Add("access_token", c.cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/act_%s?%s", c.cfg.Meta.URL, c.accountID, params.Encode())

	var response struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		AccountStatus int    `json:"account_status"`
	}
	if err := c.http.doGET(ctx, endpoint, &response); err != nil {
		return fmt.Errorf("erro ao verificar a conta do Meta: %w", err)
	}

	return nil
}

type responseCampaigns struct {
	Data []struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Status      string `json:"status"`
		DailyBudget string `json:"daily_budget"`
	} `json:"data"`
	Paging struct {
		Cursors struct {
			Before string `json:"before"`
			After  string `json:"after"`
		} `json:"cursors"`
		Next string `json:"next"`
	} `json:"paging"`
}

func (c *metaConnector) FetchEntities(ctx context.Context) ([]*domain.Entity, error) {
	if c.conn.Mode() != domain.ModeAPI {
		return nil, connector.ErrNotImplemented
	}

	params := url.Values{}
	params.Add("fields", "id,name,status,daily_budget")
	params.Add("limit", "100")
	params.Add("access_token", c.cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/act_%s/campaigns?%s", c.cfg.Meta.URL, c.accountID, params.Encode())

	entities := make([]*domain.Entity, 0)
	for endpoint != "" {
		var response responseCampaigns
		if err := c.http.doGET(ctx, endpoint, &response); err != nil {
			return nil, fmt.Errorf("erro ao buscar campanhas do Meta: %w", err)
		}

		for _, campaign := range response.Data {
			name := campaign.Name
			status := campaign.Status
			accountID := c.accountID
			meta := map[string]any{}
			if campaign.DailyBudget != "" {
				meta["daily_budget"] = campaign.DailyBudget
			}

			entities = append(entities, &domain.Entity{
				Platform:    domain.PlatformMeta,
				ConnectorID: c.conn.ID,
				AccountID:   &accountID,
				EntityType:  domain.EntityTypeCampaign,
				EntityID:    campaign.ID,
				Name:        &name,
				Status:      &status,
				Meta:        meta,
			})
		}

		endpoint = response.Paging.Next
	}

	return entities, nil
}

type responseInsights struct {
	Data []struct {
		CampaignID  string `json:"campaign_id"`
		Spend       string `json:"spend"`
		Impressions string `json:"impressions"`
		Clicks      string `json:"clicks"`
		Actions     []struct {
			ActionType string `json:"action_type"`
			Value      string `json:"value"`
		} `json:"actions"`
		ActionValues []struct {
			ActionType string `json:"action_type"`
			Value      string `json:"value"`
		} `json:"action_values"`
	} `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

func (c *metaConnector) FetchMetricsDaily(ctx context.Context, date time.Time) ([]*domain.MetricDaily, error) {
	if c.conn.Mode() != domain.ModeAPI {
		return nil, connector.ErrNotImplemented
	}

	day := date.Format(time.DateOnly)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", day, day)

	params := url.Values{}
	params.Add("fields", "campaign_id,spend,impressions,clicks,actions,action_values")
	params.Add("level", "campaign")
	params.Add("time_range", timeRange)
	params.Add("limit", "100")
	params.Add("access_token", c.cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/act_%s/insights?%s", c.cfg.Meta.URL, c.accountID, params.Encode())

	metrics := make([]*domain.MetricDaily, 0)
	for endpoint != "" {
		var response responseInsights
		if err := c.http.doGET(ctx, endpoint, &response); err != nil {
			return nil, fmt.Errorf("erro ao buscar insights do Meta: %w", err)
		}

		for _, row := range response.Data {
			accountID := c.accountID
			metric := &domain.MetricDaily{
				Platform:    domain.PlatformMeta,
				ConnectorID: c.conn.ID,
				AccountID:   &accountID,
				EntityType:  domain.EntityTypeCampaign,
				EntityID:    row.CampaignID,
				Date:        date,
				Spend:       parseFloat(row.Spend),
				Impressions: parseInt(row.Impressions),
				Clicks:      parseInt(row.Clicks),
				Metrics:     map[string]any{},
			}

			// A Graph API reporta conversões como lista de ações; purchase
			// é a definição primária, as demais vão para o mapa.
			for _, action := range row.Actions {
				if action.ActionType == "purchase" || action.ActionType == "omni_purchase" {
					metric.Conversions = parseFloat(action.Value)
				}
				metric.Metrics["actions_"+action.ActionType] = parseFloat(action.Value)
			}
			for _, av := range row.ActionValues {
				if av.ActionType == "purchase" || av.ActionType == "omni_purchase" {
					metric.ConversionValue = parseFloat(av.Value)
				}
			}

			metrics = append(metrics, metric)
		}

		endpoint = response.Paging.Next
	}

	return metrics, nil
}

// FetchMetricsIntraday não tem equivalente na Graph API de insights, que só
// agrega por dia.
func (c *metaConnector) FetchMetricsIntraday(_ context.Context, _ time.Time) ([]*domain.MetricIntraday, error) {
	return nil, connector.ErrNotImplemented
}

func (c *metaConnector) FetchOrders(_ context.Context, _ time.Time) ([]*domain.StoreOrder, error) {
	return nil, connector.ErrNotImplemented
}

func (c *metaConnector) ApplyAction(
	ctx context.Context,
	action domain.ActionType,
	entityType domain.EntityType,
	entityID string,
	payload map[string]any,
) (*domain.ActionResult, error) {
	if action != domain.ActionTypePauseEntity {
		return nil, fmt.Errorf("%w: %s", connector.ErrUnsupportedAction, action)
	}

	if c.conn.Mode() != domain.ModeAPI {
		return connector.SimulatedResult(domain.PlatformMeta, c.conn.Mode(), action, entityType, entityID), nil
	}

	before, err := c.fetchStatus(ctx, entityID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o estado atual da campanha: %w", err)
	}

	params := url.Values{}
	params.Add("status", "PAUSED")
	params.Add("access_token", c.cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, entityID, params.Encode())

	var response struct {
		Success bool `json:"success"`
	}
	if err := c.http.doPOST(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("erro ao pausar a campanha no Meta: %w", err)
	}
	if !response.Success {
		return nil, fmt.Errorf("o Meta não confirmou a pausa da campanha %s", entityID)
	}

	after, err := c.fetchStatus(ctx, entityID)
	if err != nil {
		// A pausa foi confirmada; falha ao reler o estado não desfaz o fato.
		after = map[string]any{"status": "PAUSED"}
	}

	return &domain.ActionResult{
		Action:     action,
		Platform:   domain.PlatformMeta,
		EntityType: entityType,
		EntityID:   entityID,
		Before:     before,
		After:      after,
	}, nil
}

func (c *metaConnector) fetchStatus(ctx context.Context, entityID string) (map[string]any, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("access_token", c.cfg.Meta.AccessToken)

	endpoint := fmt.Sprintf("%s/%s?%s", c.cfg.Meta.URL, entityID, params.Encode())

	var response struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := c.http.doGET(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	return map[string]any{"status": response.Status, "name": response.Name}, nil
}

func parseFloat(raw string) float64 {
	v, _ := strconv.ParseFloat(raw, 64)
	return v
}

func parseInt(raw string) int64 {
	v, _ := strconv.ParseInt(raw, 10, 64)
	return v
}

// Package naver implementa o conector da SearchAd API do Naver. A API
// autentica por assinatura HMAC-SHA256 de (timestamp, método, caminho) nos
// cabeçalhos de cada requisição.
package naver

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

type naverConnector struct {
	cfg    *config.Config
	conn   *domain.Connector
	client *http.Client
}

func New(cfg *config.Config, conn *domain.Connector) (connector.Client, error) {
	if conn.Mode() == domain.ModeAPI {
		if cfg.Naver.APIKey == "" || cfg.Naver.APISecret == "" || cfg.Naver.CustomerID == "" {
			return nil, fmt.Errorf("conector do Naver em modo api sem credenciais configuradas")
		}
	}

	return &naverConnector{
		cfg:  cfg,
		conn: conn,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

func (c *naverConnector) Platform() domain.Platform {
	return domain.PlatformNaver
}

func (c *naverConnector) sign(method, path string, timestamp string) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.Naver.APISecret))
	fmt.Fprintf(mac, "%s.%s.%s", timestamp, method, path)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func (c *naverConnector) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	operation := func() error {
		var reader io.Reader
		if body != nil {
			payload, err := json.Marshal(body)
			if err != nil {
				return backoff.Permanent(fmt.Errorf("erro ao serializar o corpo da requisição: %w", err))
			}
			reader = bytes.NewReader(payload)
		}

		endpoint := c.cfg.Naver.BaseURL + path
		if len(query) > 0 {
			endpoint += "?" + query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("erro ao criar a requisição: %w", err))
		}

		timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Timestamp", timestamp)
		req.Header.Set("X-API-KEY", c.cfg.Naver.APIKey)
		req.Header.Set("X-Customer", c.cfg.Naver.CustomerID)
		req.Header.Set("X-Signature", c.sign(method, path, timestamp))

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("erro ao fazer a requisição: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("erro ao ler a resposta: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("limite de requisições do Naver atingido")
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("resposta inesperada da API do Naver: %s: %s", resp.Status, string(data)))
		}

		if out != nil {
			if err := json.Unmarshal(data, out); err != nil {
				return backoff.Permanent(fmt.Errorf("erro ao decodificar JSON: %w", err))
			}
		}

		return nil
	}

	// Mutações não são retentadas; leituras toleram limite de requisição.
	if method != http.MethodGet {
		return operation()
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	return backoff.Retry(operation, policy)
}

func (c *naverConnector) HealthCheck(ctx context.Context) error {
	if c.conn.Mode() != domain.ModeAPI {
		return nil
	}

	var campaigns []naverCampaign
	if err := c.do(ctx, http.MethodGet, "/ncc/campaigns", nil, nil, &campaigns); err != nil {
		return fmt.Errorf("erro ao verificar a conta do Naver: %w", err)
	}

	return nil
}

type naverCampaign struct {
	CampaignID   string `json:"nccCampaignId"`
	Name         string `json:"name"`
	CampaignType string `json:"campaignTp"`
	Status       string `json:"status"`
	UserLock     bool   `json:"userLock"`
	DailyBudget  int64  `json:"dailyBudget"`
}

func (c *naverConnector) FetchEntities(ctx context.Context) ([]*domain.Entity, error) {
	if c.conn.Mode() != domain.ModeAPI {
		return nil, connector.ErrNotImplemented
	}

	var campaigns []naverCampaign
	if err := c.do(ctx, http.MethodGet, "/ncc/campaigns", nil, nil, &campaigns); err != nil {
		return nil, fmt.Errorf("erro ao buscar campanhas do Naver: %w", err)
	}

	customerID := c.cfg.Naver.CustomerID
	entities := make([]*domain.Entity, 0, len(campaigns))
	for _, campaign := range campaigns {
		name := campaign.Name
		status := campaign.Status
		entities = append(entities, &domain.Entity{
			Platform:    domain.PlatformNaver,
			ConnectorID: c.conn.ID,
			AccountID:   &customerID,
			EntityType:  domain.EntityTypeCampaign,
			EntityID:    campaign.CampaignID,
			Name:        &name,
			Status:      &status,
			Meta: map[string]any{
				"campaign_type": campaign.CampaignType,
				"user_lock":     campaign.UserLock,
				"daily_budget":  campaign.DailyBudget,
			},
		})
	}

	return entities, nil
}

type naverStatRow struct {
	ID          string  `json:"id"`
	ImpCnt      int64   `json:"impCnt"`
	ClkCnt      int64   `json:"clkCnt"`
	SalesAmt    float64 `json:"salesAmt"`
	Ccnt        float64 `json:"ccnt"`
	ConvAmt     float64 `json:"convAmt"`
	CpcAvg      float64 `json:"cpc"`
	DateStart   string  `json:"dateStart"`
	DateEnd     string  `json:"dateEnd"`
	StatDateRaw string  `json:"statDt"`
}

func (c *naverConnector) FetchMetricsDaily(ctx context.Context, date time.Time) ([]*domain.MetricDaily, error) {
	if c.conn.Mode() != domain.ModeAPI {
		return nil, connector.ErrNotImplemented
	}

	entities, err := c.FetchEntities(ctx)
	if err != nil {
		return nil, err
	}

	day := date.Format("2006-01-02")
	customerID := c.cfg.Naver.CustomerID

	metrics := make([]*domain.MetricDaily, 0, len(entities))
	for _, entity := range entities {
		query := url.Values{}
		query.Set("id", entity.EntityID)
		query.Set("fields", `["impCnt","clkCnt","salesAmt","ccnt","convAmt"]`)
		query.Set("timeRange", fmt.Sprintf(`{"since":"%s","until":"%s"}`, day, day))

		var response struct {
			Data []naverStatRow `json:"data"`
		}
		if err := c.do(ctx, http.MethodGet, "/stats", query, nil, &response); err != nil {
			return nil, fmt.Errorf("erro ao buscar estatísticas do Naver para %s: %w", entity.EntityID, err)
		}

		for _, row := range response.Data {
			metrics = append(metrics, &domain.MetricDaily{
				Platform:        domain.PlatformNaver,
				ConnectorID:     c.conn.ID,
				AccountID:       &customerID,
				EntityType:      domain.EntityTypeCampaign,
				EntityID:        entity.EntityID,
				Date:            date,
				Spend:           row.SalesAmt,
				Impressions:     row.ImpCnt,
				Clicks:          row.ClkCnt,
				Conversions:     row.Ccnt,
				ConversionValue: row.ConvAmt,
			})
		}
	}

	return metrics, nil
}

// FetchMetricsIntraday usa o mesmo endpoint de estatísticas; o Naver aceita o
// dia corrente e reporta o acumulado até agora, que gravamos como um único
// balde na hora corrente.
func (c *naverConnector) FetchMetricsIntraday(ctx context.Context, date time.Time) ([]*domain.MetricIntraday, error) {
	if c.conn.Mode() != domain.ModeAPI {
		return nil, connector.ErrNotImplemented
	}

	daily, err := c.FetchMetricsDaily(ctx, date)
	if err != nil {
		return nil, err
	}

	hourTS := time.Date(date.Year(), date.Month(), date.Day(), date.Hour(), 0, 0, 0, date.Location())
	metrics := make([]*domain.MetricIntraday, 0, len(daily))
	for _, m := range daily {
		metrics = append(metrics, &domain.MetricIntraday{
			Platform:        m.Platform,
			ConnectorID:     m.ConnectorID,
			AccountID:       m.AccountID,
			EntityType:      m.EntityType,
			EntityID:        m.EntityID,
			HourTS:          hourTS,
			Spend:           m.Spend,
			Impressions:     m.Impressions,
			Clicks:          m.Clicks,
			Conversions:     m.Conversions,
			ConversionValue: m.ConversionValue,
		})
	}

	return metrics, nil
}

func (c *naverConnector) FetchOrders(_ context.Context, _ time.Time) ([]*domain.StoreOrder, error) {
	return nil, connector.ErrNotImplemented
}

// ApplyAction pausa campanhas via userLock, o mecanismo de pausa manual do
// Naver.
func (c *naverConnector) ApplyAction(
	ctx context.Context,
	action domain.ActionType,
	entityType domain.EntityType,
	entityID string,
	_ map[string]any,
) (*domain.ActionResult, error) {
	if action != domain.ActionTypePauseEntity {
		return nil, fmt.Errorf("%w: %s", connector.ErrUnsupportedAction, action)
	}
	if entityType != domain.EntityTypeCampaign {
		return nil, fmt.Errorf("%w: pausa de %s", connector.ErrUnsupportedAction, entityType)
	}

	if c.conn.Mode() != domain.ModeAPI {
		return connector.SimulatedResult(domain.PlatformNaver, c.conn.Mode(), action, entityType, entityID), nil
	}

	path := "/ncc/campaigns/" + entityID

	var current naverCampaign
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &current); err != nil {
		return nil, fmt.Errorf("erro ao buscar o estado atual da campanha: %w", err)
	}

	query := url.Values{}
	query.Set("fields", "userLock")

	update := map[string]any{
		"nccCampaignId": entityID,
		"userLock":      true,
	}

	var updated naverCampaign
	if err := c.do(ctx, http.MethodPut, path, query, update, &updated); err != nil {
		return nil, fmt.Errorf("erro ao pausar a campanha no Naver: %w", err)
	}

	return &domain.ActionResult{
		Action:     action,
		Platform:   domain.PlatformNaver,
		EntityType: entityType,
		EntityID:   entityID,
		Before:     map[string]any{"status": current.Status, "user_lock": current.UserLock},
		After:      map[string]any{"status": updated.Status, "user_lock": updated.UserLock},
	}, nil
}

// Package meta implementa o conector da Graph API de anúncios do Meta.
package meta

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/internal/config"
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// IsRateLimited verifica se o erro é de limite de requisições.
// Códigos 4, 17 e 32 representam limites de uso nas respostas da API do Meta.
func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Code == 4 || e.Error.Code == 17 || e.Error.Code == 32
}

type httpClient struct {
	cfg    *config.Config
	client *http.Client
}

func newHTTPClient(cfg *config.Config) *httpClient {
	return &httpClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doGET executa a requisição com retentativa exponencial. Erros de limite de
// requisição são retentáveis; os demais erros da API abortam de imediato.
func (c *httpClient) doGET(ctx context.Context, url string, out any) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("erro ao criar a requisição: %w", err))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("erro ao fazer a requisição: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("erro ao ler a resposta: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			var apiErr ErrorResponse
			if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Code != 0 {
				if apiErr.IsRateLimited() {
					logrus.WithField("code", apiErr.Error.Code).Warn("Limite de requisições do Meta atingido, aguardando")
					return fmt.Errorf("limite de requisições: %s", apiErr.Error.Message)
				}
				return backoff.Permanent(fmt.Errorf("erro da API do Meta (código %d): %s", apiErr.Error.Code, apiErr.Error.Message))
			}
			return backoff.Permanent(fmt.Errorf("resposta inesperada da API do Meta: %s", resp.Status))
		}

		if err := json.Unmarshal(body, out); err != nil {
			return backoff.Permanent(fmt.Errorf("erro ao decodificar JSON: %w", err))
		}

		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4), ctx)
	return backoff.Retry(operation, policy)
}

// doPOST envia uma mutação sem corpo (os parâmetros vão na query string,
// como a Graph API aceita). Mutações nunca são retentadas automaticamente.
func (c *httpClient) doPOST(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Code != 0 {
			return fmt.Errorf("erro da API do Meta (código %d): %s", apiErr.Error.Code, apiErr.Error.Message)
		}
		return fmt.Errorf("resposta inesperada da API do Meta: %s", resp.Status)
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("erro ao decodificar JSON: %w", err)
		}
	}

	return nil
}

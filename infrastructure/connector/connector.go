package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

// ErrNotImplemented indica que o conector não suporta a operação pedida.
// É um estado legítimo do contrato, não um bug: o chamador decide se pula
// ou falha.
var ErrNotImplemented = errors.New("operação não suportada pelo conector")

// ErrUnsupportedAction indica ação de escrita fora do conjunto aceito pelo
// conector, detectada antes de qualquer efeito colateral.
var ErrUnsupportedAction = errors.New("ação não suportada pelo conector")

// Client é o contrato único de integração com plataformas de anúncio e de
// comércio. Toda operação recebe context para propagação de cancelamento;
// operações não suportadas retornam ErrNotImplemented em vez de sumirem da
// interface, para manter o orquestrador polimórfico. O conector só busca:
// persistir é papel do orquestrador, que conhece os repositórios.
type Client interface {
	// Platform identifica a plataforma atendida.
	Platform() domain.Platform

	// HealthCheck valida credenciais e conectividade sem efeito colateral.
	HealthCheck(ctx context.Context) error

	// FetchEntities retorna campanhas/grupos/anúncios para espelhamento
	// local.
	FetchEntities(ctx context.Context) ([]*domain.Entity, error)

	// FetchMetricsDaily retorna as observações agregadas de um dia.
	FetchMetricsDaily(ctx context.Context, date time.Time) ([]*domain.MetricDaily, error)

	// FetchMetricsIntraday retorna os baldes de hora do dia corrente.
	FetchMetricsIntraday(ctx context.Context, date time.Time) ([]*domain.MetricIntraday, error)

	// FetchOrders retorna pedidos do comércio do dia informado. Conectores
	// de anúncio retornam ErrNotImplemented.
	FetchOrders(ctx context.Context, date time.Time) ([]*domain.StoreOrder, error)

	// ApplyAction executa uma mutação na plataforma. Fora do modo api o
	// conector simula e marca o resultado com simulated=true.
	ApplyAction(ctx context.Context, action domain.ActionType, entityType domain.EntityType, entityID string, payload map[string]any) (*domain.ActionResult, error)
}

// SimulatedResult monta o resultado padrão de uma ação em modo import ou
// fixture: nada foi enviado à plataforma e o resultado diz isso.
func SimulatedResult(
	platform domain.Platform,
	mode domain.ConnectorMode,
	action domain.ActionType,
	entityType domain.EntityType,
	entityID string,
) *domain.ActionResult {
	return &domain.ActionResult{
		Action:     action,
		Platform:   platform,
		EntityType: entityType,
		EntityID:   entityID,
		Simulated:  true,
		Mode:       string(mode),
	}
}

// ConfigString lê uma chave textual obrigatória da configuração do conector.
func ConfigString(cfg map[string]any, key string) (string, error) {
	raw, ok := cfg[key]
	if !ok {
		return "", fmt.Errorf("configuração do conector sem a chave %q", key)
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", fmt.Errorf("chave %q da configuração do conector vazia ou não textual", key)
	}
	return value, nil
}

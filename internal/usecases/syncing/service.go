// Package syncing puxa dados dos conectores habilitados para o banco local:
// entidades, métricas do dia, baldes intraday e pedidos do comércio.
package syncing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

// ConnectorBuilder instancia o cliente de plataforma para uma linha de
// conector.
type ConnectorBuilder interface {
	Build(conn *domain.Connector) (connector.Client, error)
}

// ConnectorSummary resume o sync de um conector.
type ConnectorSummary struct {
	ConnectorID string `json:"connector_id"`
	Skipped     bool   `json:"skipped"`
	Entities    int    `json:"entities"`
	Daily       int    `json:"daily"`
	Intraday    int    `json:"intraday"`
	Orders      int    `json:"orders"`
	Error       string `json:"error,omitempty"`
}

type Syncer interface {
	SyncAll(ctx context.Context, now time.Time) []ConnectorSummary
	SyncConnector(ctx context.Context, conn *domain.Connector, now time.Time) (*ConnectorSummary, error)
}

type Service struct {
	cfg           *config.Config
	connectorRepo repository.ConnectorRepository
	entityRepo    repository.EntityRepository
	metricRepo    repository.MetricRepository
	orderRepo     repository.StoreOrderRepository
	syncStateRepo repository.SyncStateRepository
	builder       ConnectorBuilder
}

func NewService(
	cfg *config.Config,
	connectorRepo repository.ConnectorRepository,
	entityRepo repository.EntityRepository,
	metricRepo repository.MetricRepository,
	orderRepo repository.StoreOrderRepository,
	syncStateRepo repository.SyncStateRepository,
	builder ConnectorBuilder,
) Syncer {
	return &Service{
		cfg:           cfg,
		connectorRepo: connectorRepo,
		entityRepo:    entityRepo,
		metricRepo:    metricRepo,
		orderRepo:     orderRepo,
		syncStateRepo: syncStateRepo,
		builder:       builder,
	}
}

// SyncAll percorre os conectores habilitados em sequência. Erro em um
// conector fica registrado no status dele e não derruba os demais.
func (s *Service) SyncAll(ctx context.Context, now time.Time) []ConnectorSummary {
	connectors, err := s.connectorRepo.ListEnabledConnectors()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar conectores habilitados")
		return nil
	}

	summaries := make([]ConnectorSummary, 0, len(connectors))
	for _, conn := range connectors {
		summary, err := s.SyncConnector(ctx, conn, now)
		if err != nil {
			message := err.Error()
			if updateErr := s.connectorRepo.UpdateSyncStatus(conn.ID, false, &message); updateErr != nil {
				logrus.WithError(updateErr).WithField("connector_id", conn.ID).Error("Erro ao registrar a falha do sync")
			}
			summaries = append(summaries, ConnectorSummary{ConnectorID: conn.ID, Error: message})
			continue
		}

		if !summary.Skipped {
			if updateErr := s.connectorRepo.UpdateSyncStatus(conn.ID, true, nil); updateErr != nil {
				logrus.WithError(updateErr).WithField("connector_id", conn.ID).Error("Erro ao registrar o sucesso do sync")
			}
		}
		summaries = append(summaries, *summary)
	}

	return summaries
}

func (s *Service) SyncConnector(ctx context.Context, conn *domain.Connector, now time.Time) (*ConnectorSummary, error) {
	summary := &ConnectorSummary{ConnectorID: conn.ID}

	recent, err := s.refreshedRecently(conn.ID, now)
	if err != nil {
		logrus.WithError(err).WithField("connector_id", conn.ID).Warn("Erro ao ler o cursor de refresh, seguindo com o sync")
	}
	if recent {
		summary.Skipped = true
		return summary, nil
	}

	client, err := s.builder.Build(conn)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir o conector: %w", err)
	}

	// Health check barra o resto do sync deste conector: credencial ruim
	// vira last_error na linha, sem tocar a plataforma.
	if err := client.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("health check falhou: %w", err)
	}

	entities, err := client.FetchEntities(ctx)
	if err != nil && !errors.Is(err, connector.ErrNotImplemented) {
		return nil, fmt.Errorf("erro ao buscar entidades: %w", err)
	}
	for _, entity := range entities {
		if err := s.entityRepo.SaveOrUpdate(entity); err != nil {
			return nil, fmt.Errorf("erro ao gravar entidade %s: %w", entity.EntityID, err)
		}
		summary.Entities++
	}

	// Ontem e hoje: plataformas fecham os números do dia anterior com
	// atraso, e o upsert torna a releitura inofensiva.
	for _, day := range []time.Time{now.AddDate(0, 0, -1), now} {
		dailies, err := client.FetchMetricsDaily(ctx, day)
		if err != nil && !errors.Is(err, connector.ErrNotImplemented) {
			return nil, fmt.Errorf("erro ao buscar métricas diárias: %w", err)
		}
		for _, metric := range dailies {
			if err := s.metricRepo.SaveOrUpdateDaily(metric); err != nil {
				return nil, fmt.Errorf("erro ao gravar métrica diária de %s: %w", metric.EntityID, err)
			}
			summary.Daily++
		}
	}

	intradays, err := client.FetchMetricsIntraday(ctx, now)
	if err != nil && !errors.Is(err, connector.ErrNotImplemented) {
		return nil, fmt.Errorf("erro ao buscar métricas intraday: %w", err)
	}
	for _, metric := range intradays {
		if err := s.metricRepo.SaveOrUpdateIntraday(metric); err != nil {
			return nil, fmt.Errorf("erro ao gravar métrica intraday de %s: %w", metric.EntityID, err)
		}
		summary.Intraday++
	}

	orders, err := client.FetchOrders(ctx, now)
	if err != nil && !errors.Is(err, connector.ErrNotImplemented) {
		return nil, fmt.Errorf("erro ao buscar pedidos: %w", err)
	}
	for _, order := range orders {
		if err := s.orderRepo.SaveOrUpdate(order); err != nil {
			return nil, fmt.Errorf("erro ao gravar pedido %s: %w", order.OrderID, err)
		}
		summary.Orders++
	}

	if err := s.syncStateRepo.Set(refreshKey(conn.ID), strconv.FormatInt(now.Unix(), 10)); err != nil {
		logrus.WithError(err).WithField("connector_id", conn.ID).Warn("Erro ao gravar o cursor de refresh")
	}

	logrus.WithFields(logrus.Fields{
		"connector_id": conn.ID,
		"platform":     conn.Platform,
		"entities":     summary.Entities,
		"daily":        summary.Daily,
		"intraday":     summary.Intraday,
		"orders":       summary.Orders,
	}).Info("Sync do conector concluído")

	return summary, nil
}

// refreshedRecently aplica o intervalo mínimo entre refreshes de um mesmo
// conector, para não martelar as APIs quando os ticks são curtos.
func (s *Service) refreshedRecently(connectorID string, now time.Time) (bool, error) {
	raw, err := s.syncStateRepo.Get(refreshKey(connectorID))
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}

	last, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("cursor de refresh inválido: %w", err)
	}

	minInterval := time.Duration(s.cfg.Guardrail.MinRefreshIntervalMin) * time.Minute
	return now.Sub(time.Unix(last, 0)) < minInterval, nil
}

func refreshKey(connectorID string) string {
	return "refresh:" + connectorID
}

package reporting

import (
	"fmt"
	"time"

	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/pkg/utils"
)

// Reporter expõe consultas de leitura sobre os pedidos importados das lojas.
type Reporter interface {
	ListOrders(filters repository.StoreOrderFilters) ([]*domain.StoreOrder, error)
	OrdersSummary(store string, startDate, endDate time.Time) (*domain.StoreOrderSummary, error)
	OrdersByInflowPath(store string, startDate, endDate time.Time) ([]*domain.InflowPathCount, error)
}

type Service struct {
	orderRepo repository.StoreOrderRepository
}

func NewService(orderRepo repository.StoreOrderRepository) Reporter {
	return &Service{
		orderRepo: orderRepo,
	}
}

func (s *Service) ListOrders(filters repository.StoreOrderFilters) ([]*domain.StoreOrder, error) {
	return s.orderRepo.List(filters)
}

func (s *Service) OrdersSummary(store string, startDate, endDate time.Time) (*domain.StoreOrderSummary, error) {
	if store == "" {
		return nil, fmt.Errorf("loja é obrigatória")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("período inválido: fim antes do início")
	}

	summary, err := s.orderRepo.Summary(store, startDate, endDate)
	if err != nil {
		return nil, err
	}
	summary.TotalAmount = utils.RoundWithTwoDecimalPlace(summary.TotalAmount)

	return summary, nil
}

func (s *Service) OrdersByInflowPath(store string, startDate, endDate time.Time) ([]*domain.InflowPathCount, error) {
	if store == "" {
		return nil, fmt.Errorf("loja é obrigatória")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("período inválido: fim antes do início")
	}

	return s.orderRepo.CountByInflowPath(store, startDate, endDate)
}

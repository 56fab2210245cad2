package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/reporting"
	"github.com/trafficops/ads-guardrail-api/pkg/apiErrors"
	"github.com/trafficops/ads-guardrail-api/pkg/utils"
)

// ListStoreOrders lista os pedidos importados das lojas, com filtros de
// loja e período via query string
func ListStoreOrders(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := repository.StoreOrderFilters{}

		if raw := r.URL.Query().Get("store"); raw != "" {
			filters.Store = &raw
		}
		if raw := r.URL.Query().Get("start_date"); raw != "" {
			start, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.StartDate = start
		}
		if raw := r.URL.Query().Get("end_date"); raw != "" {
			end, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
				return
			}
			filters.EndDate = end
		}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			filters.Limit = limit
		}

		orders, err := service.ListOrders(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar pedidos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(orders)
	}
}

// GetStoreOrdersSummary retorna contagem e receita agregada dos pedidos de
// uma loja no período
func GetStoreOrdersSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, start, end, ok := orderPeriodParams(w, r)
		if !ok {
			return
		}

		summary, err := service.OrdersSummary(store, start, end)
		if err != nil {
			logrus.WithError(err).Error("Erro ao consolidar pedidos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consolidar pedidos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// GetOrdersByInflowPath retorna a contagem de pedidos por canal de entrada
func GetOrdersByInflowPath(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		store, start, end, ok := orderPeriodParams(w, r)
		if !ok {
			return
		}

		counts, err := service.OrdersByInflowPath(store, start, end)
		if err != nil {
			logrus.WithError(err).Error("Erro ao agrupar pedidos por canal")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agrupar pedidos por canal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(counts)
	}
}

// orderPeriodParams extrai loja e período obrigatórios da query string.
// Escreve o erro na resposta quando algo falta.
func orderPeriodParams(w http.ResponseWriter, r *http.Request) (string, time.Time, time.Time, bool) {
	store := r.URL.Query().Get("store")
	if store == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetro store é obrigatório", nil)
		return "", time.Time{}, time.Time{}, false
	}

	start, err := time.Parse("2006-01-02", r.URL.Query().Get("start_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use o formato YYYY-MM-DD", nil)
		return "", time.Time{}, time.Time{}, false
	}

	end, err := time.Parse("2006-01-02", r.URL.Query().Get("end_date"))
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use o formato YYYY-MM-DD", nil)
		return "", time.Time{}, time.Time{}, false
	}

	return store, start, end, true
}

package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/executing"
	"github.com/trafficops/ads-guardrail-api/pkg/apiErrors"
)

// ListExecutions lista o histórico de execuções, com filtro opcional de
// status via query string
func ListExecutions(service executing.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := repository.ExecutionFilters{}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := domain.ExecutionStatus(raw)
			filters.Status = &status
		}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			filters.Limit = limit
		}

		executions, err := service.ListExecutions(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(executions)
	}
}

// ListProposalExecutions lista as execuções de uma proposta específica,
// da mais recente para a mais antiga
func ListProposalExecutions(service executing.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		proposalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		executions, err := service.ListExecutionsByProposal(proposalID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções da proposta")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções da proposta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(executions)
	}
}

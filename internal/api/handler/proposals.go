package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/executing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/proposing"
	"github.com/trafficops/ads-guardrail-api/pkg/apiErrors"
	"github.com/trafficops/ads-guardrail-api/pkg/middleware"
)

// ListProposals lista propostas com filtros opcionais de status, plataforma
// e conector via query string
func ListProposals(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := repository.ProposalFilters{}

		if raw := r.URL.Query().Get("status"); raw != "" {
			status := domain.ProposalStatus(raw)
			filters.Status = &status
		}
		if raw := r.URL.Query().Get("platform"); raw != "" {
			platform, ok := domain.ParsePlatform(raw)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Plataforma desconhecida", nil)
				return
			}
			filters.Platform = &platform
		}
		if raw := r.URL.Query().Get("connector_id"); raw != "" {
			filters.ConnectorID = &raw
		}
		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", nil)
				return
			}
			filters.Limit = limit
		}

		proposals, err := service.ListProposals(filters)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar propostas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar propostas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(proposals)
	}
}

// GetProposal retorna uma proposta pelo ID
func GetProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		proposal, err := service.GetProposal(id)
		if err != nil {
			handleProposalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(proposal)
	}
}

// CreateProposal cria uma proposta de ação manualmente. O caminho normal é
// o motor de guardrail propor; este endpoint cobre intervenções de operador.
func CreateProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input proposing.CreateProposalInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		proposal, err := service.CreateProposal(input)
		if err != nil {
			handleProposalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(proposal)
	}
}

// ApproveProposal aprova uma proposta pendente. O aprovador é o usuário
// autenticado.
func ApproveProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		proposal, err := service.Approve(id, requestActor(r))
		if err != nil {
			handleProposalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(proposal)
	}
}

// RejectProposal rejeita uma proposta. Rejeitar uma proposta já rejeitada
// não é erro.
func RejectProposal(service proposing.Proposer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		proposal, err := service.Reject(id, requestActor(r))
		if err != nil {
			handleProposalError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(proposal)
	}
}

// ExecuteProposal executa uma proposta contra a plataforma do conector
func ExecuteProposal(service executing.Executor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		proposal, err := service.Execute(r.Context(), id, "api:"+requestActor(r))
		if err != nil {
			handleExecutionError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(proposal)
	}
}

// requestActor identifica quem disparou a operação a partir do token.
// Requisições sem claims (não deveriam passar do middleware) ficam anônimas.
func requestActor(r *http.Request) string {
	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		return "anonymous"
	}
	if userClaims.UserEmail != "" {
		return userClaims.UserEmail
	}
	return userClaims.UserName
}

func handleProposalError(w http.ResponseWriter, err error) {
	var propErr *proposing.ProposalError
	details := any(nil)
	if errors.As(err, &propErr) && propErr.Details != "" {
		details = map[string]any{"details": propErr.Details}
	}

	switch {
	case errors.Is(err, proposing.ErrProposalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProposalNotFound, "Proposta não encontrada", details)

	case errors.Is(err, proposing.ErrInvalidTransition):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Transição de estado inválida", details)

	case errors.Is(err, proposing.ErrInvalidAction),
		errors.Is(err, proposing.ErrInvalidPlatform),
		errors.Is(err, proposing.ErrMissingData):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), details)

	default:
		logrus.WithError(err).Error("Erro na operação de proposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno na operação de proposta", nil)
	}
}

func handleExecutionError(w http.ResponseWriter, err error) {
	var execErr *executing.ExecutionError
	details := any(nil)
	if errors.As(err, &execErr) {
		details = map[string]any{
			"stage":        execErr.Stage,
			"execution_id": execErr.ExecutionID,
		}
	}

	switch {
	case errors.Is(err, executing.ErrProposalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrProposalNotFound, "Proposta não encontrada", details)

	case errors.Is(err, executing.ErrInvalidState):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTransition, "Proposta em estado que não permite execução", details)

	case errors.Is(err, executing.ErrConnectorUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrConnectorDisabled, "Conector indisponível para a proposta", details)

	case errors.Is(err, executing.ErrActionFailed):
		apiErrors.WriteError(w, apiErrors.ErrExecutionFailed, err.Error(), details)

	default:
		logrus.WithError(err).Error("Erro na execução da proposta")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno na execução", nil)
	}
}

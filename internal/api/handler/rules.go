package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/managing"
	"github.com/trafficops/ads-guardrail-api/pkg/apiErrors"
)

// ListRules retorna todas as regras de guardrail cadastradas
func ListRules(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rules, err := service.ListRules()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar regras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar regras", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rules)
	}
}

// CreateRule cadastra uma nova regra de guardrail
func CreateRule(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req managing.CreateRuleInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		rule, err := service.CreateRule(req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar regra")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(rule)
	}
}

// SetRuleEnabled habilita ou desabilita uma regra
func SetRuleEnabled(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SetEnabledRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		rule, err := service.SetRuleEnabled(id, req.Enabled)
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rule)
	}
}

// UpdateRuleParams substitui os parâmetros da regra
func UpdateRuleParams(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var params map[string]any
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		rule, err := service.UpdateRuleParams(id, params)
		if err != nil {
			handleRuleError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rule)
	}
}

func handleRuleError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrRuleNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrRuleNotFound, "Regra não encontrada", nil)
		return
	}

	logrus.WithError(err).Error("Erro na operação de regra")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro na operação de regra", nil)
}

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

type SetEnabledRequest struct {
	Enabled bool `json:"enabled"`
}

// ListConnectors retorna todos os conectores registrados
func ListConnectors(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connectors, err := service.ListConnectors()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar conectores")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar conectores", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(connectors)
	}
}

// GetConnector retorna um conector pelo ID
func GetConnector(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		conn, err := service.GetConnector(id)
		if err != nil {
			handleConnectorError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(conn)
	}
}

// RegisterConnector registra uma nova instância de conector
func RegisterConnector(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req managing.RegisterConnectorInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		conn, err := service.RegisterConnector(req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao registrar conector")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(conn)
	}
}

// SetConnectorEnabled habilita ou desabilita um conector
func SetConnectorEnabled(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req SetEnabledRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		conn, err := service.SetConnectorEnabled(id, req.Enabled)
		if err != nil {
			handleConnectorError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(conn)
	}
}

// UpdateConnectorConfig aplica um patch na configuração do conector.
// Chaves com valor nulo removem a entrada correspondente.
func UpdateConnectorConfig(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		conn, err := service.UpdateConnectorConfig(id, patch)
		if err != nil {
			handleConnectorError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(conn)
	}
}

// CheckConnectorHealth dispara o health check do conector contra a
// plataforma externa
func CheckConnectorHealth(service managing.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.CheckConnector(r.Context(), id); err != nil {
			if errors.Is(err, repository.ErrConnectorNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrConnectorNotFound, "Conector não encontrado", nil)
				return
			}

			logrus.WithError(err).WithField("connector_id", id).Warn("Health check do conector falhou")
			apiErrors.WriteError(w, apiErrors.ErrConnectorUnhealthy, err.Error(), map[string]any{
				"connector_id": id,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"connector_id": id,
			"healthy":      true,
		})
	}
}

func handleConnectorError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrConnectorNotFound) {
		apiErrors.WriteError(w, apiErrors.ErrConnectorNotFound, "Conector não encontrado", nil)
		return
	}

	logrus.WithError(err).Error("Erro na operação de conector")
	apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro na operação de conector", nil)
}

package handler

import (
	"net/http"

	"github.com/trafficops/ads-guardrail-api/internal/api/handler/router"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/authenticating"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/executing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/managing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/proposing"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/reporting"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/tracking"
	"github.com/trafficops/ads-guardrail-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Connectors(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/connectors",
			Method:      http.MethodGet,
			Handler:     ListConnectors(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connectors",
			Method:      http.MethodPost,
			Handler:     RegisterConnector(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/connectors/:id",
			Method:      http.MethodGet,
			Handler:     GetConnector(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/connectors/:id/enabled",
			Method:      http.MethodPut,
			Handler:     SetConnectorEnabled(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/connectors/:id/config",
			Method:      http.MethodPatch,
			Handler:     UpdateConnectorConfig(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/connectors/:id/health",
			Method:      http.MethodGet,
			Handler:     CheckConnectorHealth(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Rules(service managing.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/rules",
			Method:      http.MethodGet,
			Handler:     ListRules(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/rules",
			Method:      http.MethodPost,
			Handler:     CreateRule(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/rules/:id/enabled",
			Method:      http.MethodPut,
			Handler:     SetRuleEnabled(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/rules/:id/params",
			Method:      http.MethodPut,
			Handler:     UpdateRuleParams(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Proposals(proposer proposing.Proposer, executor executing.Executor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/proposals",
			Method:      http.MethodGet,
			Handler:     ListProposals(proposer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/proposals",
			Method:      http.MethodPost,
			Handler:     CreateProposal(proposer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/proposals/:id",
			Method:      http.MethodGet,
			Handler:     GetProposal(proposer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/proposals/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveProposal(proposer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/proposals/:id/reject",
			Method:      http.MethodPost,
			Handler:     RejectProposal(proposer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/proposals/:id/execute",
			Method:      http.MethodPost,
			Handler:     ExecuteProposal(executor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/proposals/:id/executions",
			Method:      http.MethodGet,
			Handler:     ListProposalExecutions(executor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Executions(executor executing.Executor) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/executions",
			Method:      http.MethodGet,
			Handler:     ListExecutions(executor),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func StoreOrders(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     ListStoreOrders(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/orders/summary",
			Method:      http.MethodGet,
			Handler:     GetStoreOrdersSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/orders/inflow-paths",
			Method:      http.MethodGet,
			Handler:     GetOrdersByInflowPath(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Tracking expõe o redirect e os coletores de conversão sem autenticação.
// Somente o cadastro de links fica atrás do token.
func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:    "/r/:code",
			Method:  http.MethodGet,
			Handler: RedirectTracking(service),
		},
		{
			Path:    "/events/conversion",
			Method:  http.MethodPost,
			Handler: RecordConversion(service),
		},
		{
			Path:    "/events/conversion.gif",
			Method:  http.MethodGet,
			Handler: ConversionPixel(service),
		},
		{
			Path:        "/v1/tracking/links",
			Method:      http.MethodPost,
			Handler:     CreateTrackingLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

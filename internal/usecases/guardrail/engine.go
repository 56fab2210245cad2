// Package guardrail avalia as regras declarativas sobre as métricas
// armazenadas e abre propostas de ação. A avaliação nunca toca plataforma:
// lê o banco, decide e propõe.
package guardrail

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/proposing"
)

// Notifier avisa operadores sobre propostas novas. A notificação é melhor
// esforço: falha é logada e não desfaz a proposta.
type Notifier interface {
	NotifyProposal(ctx context.Context, proposal *domain.ActionProposal) error
	NotifyExecuted(ctx context.Context, proposal *domain.ActionProposal) error
}

// AutoExecutor executa propostas elegíveis à execução automática.
type AutoExecutor interface {
	Execute(ctx context.Context, proposalID, trigger string) (*domain.ActionProposal, error)
}

// EvaluationSummary resume um passe de avaliação.
type EvaluationSummary struct {
	RulesEvaluated    int `json:"rules_evaluated"`
	EntitiesInspected int `json:"entities_inspected"`
	ProposalsCreated  int `json:"proposals_created"`
	Deduplicated      int `json:"deduplicated"`
	AutoExecuted      int `json:"auto_executed"`
}

type Engine interface {
	EvaluateAll(ctx context.Context, date time.Time) (*EvaluationSummary, error)
}

type Service struct {
	cfg           *config.Config
	ruleRepo      repository.RuleRepository
	connectorRepo repository.ConnectorRepository
	metricRepo    repository.MetricRepository
	attribRepo    repository.AttributionRepository
	proposer      proposing.Proposer
	notifier      Notifier
	executor      AutoExecutor
}

func NewService(
	cfg *config.Config,
	ruleRepo repository.RuleRepository,
	connectorRepo repository.ConnectorRepository,
	metricRepo repository.MetricRepository,
	attribRepo repository.AttributionRepository,
	proposer proposing.Proposer,
	notifier Notifier,
	executor AutoExecutor,
) Engine {
	return &Service{
		cfg:           cfg,
		ruleRepo:      ruleRepo,
		connectorRepo: connectorRepo,
		metricRepo:    metricRepo,
		attribRepo:    attribRepo,
		proposer:      proposer,
		notifier:      notifier,
		executor:      executor,
	}
}

// EvaluateAll roda todas as regras habilitadas contra todos os conectores
// habilitados para o dia informado. Erro em uma regra não derruba as demais.
func (s *Service) EvaluateAll(ctx context.Context, date time.Time) (*EvaluationSummary, error) {
	rules, err := s.ruleRepo.ListEnabled()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar regras habilitadas: %w", err)
	}

	connectors, err := s.connectorRepo.ListEnabledConnectors()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar conectores habilitados: %w", err)
	}

	summary := &EvaluationSummary{}
	for _, rule := range rules {
		summary.RulesEvaluated++

		if rule.RuleType != domain.RuleTypeKillSwitch {
			logrus.WithField("rule_type", rule.RuleType).Warn("Tipo de regra não suportado, pulando")
			continue
		}

		for _, conn := range connectors {
			if rule.Platform != nil && *rule.Platform != conn.Platform {
				continue
			}

			if err := s.evaluateKillSwitch(ctx, rule, conn, date, summary); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"rule_id":      rule.ID,
					"connector_id": conn.ID,
				}).Error("Erro ao avaliar regra para o conector")
			}
		}
	}

	return summary, nil
}

// evaluateKillSwitch caça entidades gastando acima do limite sem converter.
func (s *Service) evaluateKillSwitch(
	ctx context.Context,
	rule *domain.Rule,
	conn *domain.Connector,
	date time.Time,
	summary *EvaluationSummary,
) error {
	params := domain.ParseKillSwitchParams(rule.Params)

	dailies, err := s.metricRepo.ListDailyForDate(conn.Platform, conn.ID, params.EntityType, date)
	if err != nil {
		return fmt.Errorf("erro ao listar métricas do dia: %w", err)
	}

	for _, daily := range dailies {
		summary.EntitiesInspected++

		spend, clicks, conversions, source, err := s.effectiveMetrics(conn, daily, params.EntityType, date)
		if err != nil {
			// Falha por entidade é isolada: sem os números efetivos não há
			// decisão nem proposta parcial para esta entidade.
			logrus.WithError(err).WithField("entity_id", daily.EntityID).Warn("Erro ao resolver métricas efetivas, pulando a entidade")
			continue
		}

		if spend < params.SpendThreshold {
			continue
		}
		if conversions > params.ConversionThreshold {
			continue
		}
		if float64(clicks) < params.ClicksThreshold {
			continue
		}

		window := time.Duration(s.cfg.Guardrail.DedupWindowHours) * time.Hour
		exists, err := s.proposer.ExistsRecent(conn.Platform, conn.ID, params.EntityType, daily.EntityID, domain.ActionTypePauseEntity, window)
		if err != nil {
			return fmt.Errorf("erro ao verificar propostas recentes: %w", err)
		}
		if exists {
			summary.Deduplicated++
			continue
		}

		reason := fmt.Sprintf(
			"kill switch: gasto %.0f >= limite %.0f com %.0f conversões (fonte %s) e %d cliques em %s",
			spend, params.SpendThreshold, conversions, source, clicks, date.Format("2006-01-02"),
		)

		proposal, err := s.proposer.CreateProposal(proposing.CreateProposalInput{
			Platform:    conn.Platform,
			ConnectorID: conn.ID,
			ActionType:  domain.ActionTypePauseEntity,
			AccountID:   daily.AccountID,
			EntityType:  params.EntityType,
			EntityID:    daily.EntityID,
			Payload: map[string]any{
				"rule_id":     rule.ID,
				"spend":       spend,
				"clicks":      clicks,
				"conversions": conversions,
				"source":      source,
			},
			Reason:           reason,
			Risk:             domain.RiskLow,
			RequiresApproval: !s.autoExecuteAllowed(params),
		})
		if err != nil {
			return fmt.Errorf("erro ao criar proposta: %w", err)
		}
		summary.ProposalsCreated++

		// Proposta auto-executável não recebe botões de decisão: executa e
		// avisa o chat com uma mensagem informativa. As demais vão para
		// aprovação manual.
		if s.autoExecuteAllowed(params) && s.executor != nil {
			executed, err := s.executor.Execute(ctx, proposal.ID, "auto")
			if err != nil {
				logrus.WithError(err).WithField("proposal_id", proposal.ID).Error("Erro na execução automática")
				continue
			}
			summary.AutoExecuted++

			if s.notifier != nil {
				if err := s.notifier.NotifyExecuted(ctx, executed); err != nil {
					logrus.WithError(err).WithField("proposal_id", proposal.ID).Warn("Erro ao notificar execução automática")
				}
			}
			continue
		}

		if s.notifier != nil {
			if err := s.notifier.NotifyProposal(ctx, proposal); err != nil {
				logrus.WithError(err).WithField("proposal_id", proposal.ID).Warn("Erro ao notificar proposta")
			}
		}
	}

	return nil
}

// autoExecuteAllowed aplica o portão duplo: a regra precisa pedir
// auto_execute E a chave global precisa estar em auto_low_risk.
func (s *Service) autoExecuteAllowed(params domain.KillSwitchParams) bool {
	return params.AutoExecute && s.cfg.Guardrail.ExecutionMode == config.ExecutionModeAutoLowRisk
}

// effectiveMetrics resolve os números usados na decisão. Precedência:
// gasto da soma intraday quando há baldes com gasto e cliques idem, cada um
// por conta própria; conversões sempre da linha diária, sobrescritas pela
// atribuição do comércio quando existe alguma. Baldes intraday não carregam
// conversões confiáveis, então nunca substituem a conversão diária.
func (s *Service) effectiveMetrics(
	conn *domain.Connector,
	daily *domain.MetricDaily,
	entityType domain.EntityType,
	date time.Time,
) (spend float64, clicks int64, conversions float64, source string, err error) {
	spend = daily.Spend
	clicks = daily.Clicks
	conversions = daily.Conversions
	source = "platform_daily"

	intraday, sumErr := s.metricRepo.SumIntradayForEntityDate(conn.Platform, conn.ID, entityType, daily.EntityID, date)
	if sumErr != nil {
		err = sumErr
	} else {
		if intraday.Spend > 0 {
			spend = intraday.Spend
			source = "platform_intraday"
		}
		if intraday.Clicks > 0 {
			clicks = int64(intraday.Clicks)
		}
	}

	attributed, attErr := s.attribRepo.SumAttributedConversionsForEntityDate(conn.Platform, entityType, daily.EntityID, date)
	if attErr != nil {
		err = attErr
	} else if attributed.Conversions > 0 {
		conversions = attributed.Conversions
		source = source + "+commerce"
	}

	return spend, clicks, conversions, source, err
}

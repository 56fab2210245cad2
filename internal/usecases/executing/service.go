package executing

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/pkg/utils"
)

// ConnectorBuilder instancia o cliente de plataforma para uma linha de
// conector. Implementado pelo registry.
type ConnectorBuilder interface {
	Build(conn *domain.Connector) (connector.Client, error)
}

type Executor interface {
	Execute(ctx context.Context, proposalID, trigger string) (*domain.ActionProposal, error)
	ListExecutions(filters repository.ExecutionFilters) ([]*domain.Execution, error)
	ListExecutionsByProposal(proposalID string) ([]*domain.Execution, error)
}

type Service struct {
	proposalRepo  repository.ProposalRepository
	executionRepo repository.ExecutionRepository
	connectorRepo repository.ConnectorRepository
	builder       ConnectorBuilder
}

func NewService(
	proposalRepo repository.ProposalRepository,
	executionRepo repository.ExecutionRepository,
	connectorRepo repository.ConnectorRepository,
	builder ConnectorBuilder,
) Executor {
	return &Service{
		proposalRepo:  proposalRepo,
		executionRepo: executionRepo,
		connectorRepo: connectorRepo,
		builder:       builder,
	}
}

// Execute aplica a proposta na plataforma com trilha de auditoria completa.
// Falhas de validação acontecem antes de existir linha de execução; a partir
// da chamada ao conector toda tentativa fica registrada, com a linha criada
// em running antes do efeito colateral.
func (s *Service) Execute(ctx context.Context, proposalID, trigger string) (*domain.ActionProposal, error) {
	proposal, err := s.proposalRepo.GetByID(proposalID)
	if err != nil {
		if errors.Is(err, repository.ErrProposalNotFound) {
			return nil, NewExecutionError(ErrProposalNotFound, proposalID, StageValidation, "")
		}
		return nil, err
	}

	if !proposal.CanExecute() {
		return nil, NewExecutionError(ErrInvalidState, proposalID, StageValidation, "estado atual: "+string(proposal.Status))
	}

	conn, err := s.connectorRepo.GetByID(proposal.ConnectorID)
	if err != nil {
		if errors.Is(err, repository.ErrConnectorNotFound) {
			return nil, NewExecutionError(ErrConnectorUnavailable, proposalID, StageConnector, "conector "+proposal.ConnectorID+" não existe")
		}
		return nil, err
	}
	if !conn.Enabled {
		return nil, NewExecutionError(ErrConnectorUnavailable, proposalID, StageConnector, "conector "+conn.ID+" desabilitado")
	}

	client, err := s.builder.Build(conn)
	if err != nil {
		return nil, NewExecutionError(ErrConnectorUnavailable, proposalID, StageConnector, err.Error())
	}

	executionID, err := utils.GeneratePrefixedID("exe")
	if err != nil {
		return nil, err
	}

	execution := &domain.Execution{
		ID:         executionID,
		ProposalID: proposal.ID,
		Status:     domain.ExecutionStatusRunning,
	}
	if err := s.executionRepo.Create(execution); err != nil {
		return nil, NewExecutionError(err, proposalID, StagePersist, "erro ao criar o registro de execução")
	}

	logrus.WithFields(logrus.Fields{
		"proposal_id":  proposal.ID,
		"execution_id": executionID,
		"trigger":      trigger,
		"platform":     proposal.Platform,
		"entity_id":    proposal.EntityID,
	}).Info("Iniciando execução de proposta")

	// Sem timeout próprio: o conector limita as chamadas HTTP dele.
	result, applyErr := client.ApplyAction(ctx, proposal.ActionType, proposal.EntityType, proposal.EntityID, proposal.Payload)
	if applyErr != nil {
		return s.finishFailed(proposal, executionID, applyErr)
	}

	return s.finishSuccess(proposal, executionID, result)
}

func (s *Service) finishSuccess(
	proposal *domain.ActionProposal,
	executionID string,
	result *domain.ActionResult,
) (*domain.ActionProposal, error) {
	resultMap, err := toMap(result)
	if err != nil {
		return s.finishFailed(proposal, executionID, err)
	}

	// Convenção de auditoria: "before" é o pedido (a proposta), "after" é o
	// que o conector reportou. O antes/depois real da plataforma vem dentro
	// do resultado do próprio conector.
	if err := s.executionRepo.Finish(executionID, domain.ExecutionStatusSuccess, proposalSnapshot(proposal), resultMap, nil); err != nil {
		return nil, NewExecutionError(err, proposal.ID, StagePersist, "erro ao finalizar o registro de execução")
	}

	if err := s.proposalRepo.SetResult(proposal.ID, domain.ProposalStatusExecuted, resultMap, nil); err != nil {
		return nil, NewExecutionError(err, proposal.ID, StagePersist, "erro ao finalizar a proposta")
	}

	logrus.WithFields(logrus.Fields{
		"proposal_id":  proposal.ID,
		"execution_id": executionID,
		"simulated":    result.Simulated,
	}).Info("Execução concluída com sucesso")

	return s.proposalRepo.GetByID(proposal.ID)
}

func (s *Service) finishFailed(
	proposal *domain.ActionProposal,
	executionID string,
	applyErr error,
) (*domain.ActionProposal, error) {
	message := applyErr.Error()

	if err := s.executionRepo.Finish(executionID, domain.ExecutionStatusFailed, proposalSnapshot(proposal), nil, &message); err != nil {
		logrus.WithError(err).WithField("execution_id", executionID).Error("Erro ao registrar a falha da execução")
	}

	if err := s.proposalRepo.SetResult(proposal.ID, domain.ProposalStatusFailed, nil, &message); err != nil {
		logrus.WithError(err).WithField("proposal_id", proposal.ID).Error("Erro ao marcar a proposta como falha")
	}

	logrus.WithFields(logrus.Fields{
		"proposal_id":  proposal.ID,
		"execution_id": executionID,
	}).WithError(applyErr).Warn("Execução falhou")

	return nil, &ExecutionError{
		Err:         ErrActionFailed,
		ProposalID:  proposal.ID,
		ExecutionID: executionID,
		Stage:       StageApply,
		Details:     message,
	}
}

func (s *Service) ListExecutions(filters repository.ExecutionFilters) ([]*domain.Execution, error) {
	return s.executionRepo.List(filters)
}

func (s *Service) ListExecutionsByProposal(proposalID string) ([]*domain.Execution, error) {
	return s.executionRepo.ListByProposal(proposalID)
}

// proposalSnapshot serializa a proposta como gravada no "before" da
// auditoria. Erro de serialização aqui seria um bug de tipo, não de dado.
func proposalSnapshot(proposal *domain.ActionProposal) map[string]any {
	snapshot, err := toMap(proposal)
	if err != nil {
		logrus.WithError(err).WithField("proposal_id", proposal.ID).Error("Erro ao serializar a proposta para auditoria")
		return map[string]any{"id": proposal.ID}
	}
	return snapshot
}

func toMap(value any) (map[string]any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}

	return out, nil
}

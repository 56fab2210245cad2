package proposing

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/pkg/utils"
)

// CreateProposalInput carrega os dados de uma nova proposta. Quem propõe
// (regra ou operador) decide risco e necessidade de aprovação.
type CreateProposalInput struct {
	Platform         domain.Platform
	ConnectorID      string
	ActionType       domain.ActionType
	AccountID        *string
	EntityType       domain.EntityType
	EntityID         string
	Payload          map[string]any
	Reason           string
	Risk             domain.RiskTier
	RequiresApproval bool
}

type Proposer interface {
	CreateProposal(input CreateProposalInput) (*domain.ActionProposal, error)
	GetProposal(id string) (*domain.ActionProposal, error)
	ListProposals(filters repository.ProposalFilters) ([]*domain.ActionProposal, error)
	ListPending() ([]*domain.ActionProposal, error)
	Approve(id, actor string) (*domain.ActionProposal, error)
	Reject(id, actor string) (*domain.ActionProposal, error)
	ExistsRecent(platform domain.Platform, connectorID string, entityType domain.EntityType, entityID string, actionType domain.ActionType, window time.Duration) (bool, error)
}

type Service struct {
	proposalRepo repository.ProposalRepository
}

func NewService(proposalRepo repository.ProposalRepository) Proposer {
	return &Service{
		proposalRepo: proposalRepo,
	}
}

func (s *Service) CreateProposal(input CreateProposalInput) (*domain.ActionProposal, error) {
	if input.ConnectorID == "" || input.EntityID == "" || input.Reason == "" {
		return nil, NewProposalError(ErrMissingData, "", "conector, entidade e motivo são obrigatórios")
	}
	if _, ok := domain.ParsePlatform(string(input.Platform)); !ok {
		return nil, NewProposalError(ErrInvalidPlatform, "", string(input.Platform))
	}
	if _, ok := domain.ParseActionType(string(input.ActionType)); !ok {
		return nil, NewProposalError(ErrInvalidAction, "", string(input.ActionType))
	}

	id, err := utils.GeneratePrefixedID("act")
	if err != nil {
		return nil, err
	}

	risk := input.Risk
	if risk == "" {
		risk = domain.RiskLow
	}

	proposal := &domain.ActionProposal{
		ID:               id,
		Status:           domain.ProposalStatusProposed,
		Platform:         input.Platform,
		ConnectorID:      input.ConnectorID,
		ActionType:       input.ActionType,
		AccountID:        input.AccountID,
		EntityType:       input.EntityType,
		EntityID:         input.EntityID,
		Payload:          input.Payload,
		Reason:           input.Reason,
		Risk:             risk,
		RequiresApproval: input.RequiresApproval,
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.proposalRepo.Create(proposal); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"proposal_id": proposal.ID,
		"platform":    proposal.Platform,
		"entity_id":   proposal.EntityID,
		"action":      proposal.ActionType,
	}).Info("Proposta de ação criada")

	return proposal, nil
}

func (s *Service) GetProposal(id string) (*domain.ActionProposal, error) {
	proposal, err := s.proposalRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrProposalNotFound) {
			return nil, NewProposalError(ErrProposalNotFound, id, "")
		}
		return nil, err
	}
	return proposal, nil
}

func (s *Service) ListProposals(filters repository.ProposalFilters) ([]*domain.ActionProposal, error) {
	return s.proposalRepo.List(filters)
}

func (s *Service) ListPending() ([]*domain.ActionProposal, error) {
	return s.proposalRepo.ListPending()
}

// Approve move a proposta de proposed para approved. Qualquer outro estado de
// partida é rejeitado pela guarda, inclusive aprovar duas vezes.
func (s *Service) Approve(id, actor string) (*domain.ActionProposal, error) {
	proposal, err := s.GetProposal(id)
	if err != nil {
		return nil, err
	}

	if !proposal.CanApprove() {
		return nil, NewProposalError(ErrInvalidTransition, id, "aprovação exige estado proposed, atual: "+string(proposal.Status))
	}

	if err := s.proposalRepo.SetStatus(id, domain.ProposalStatusApproved, &actor); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"proposal_id": id,
		"actor":       actor,
	}).Info("Proposta aprovada")

	return s.GetProposal(id)
}

// Reject move a proposta para rejected. Rejeitar de novo é no-op.
func (s *Service) Reject(id, actor string) (*domain.ActionProposal, error) {
	proposal, err := s.GetProposal(id)
	if err != nil {
		return nil, err
	}

	if proposal.Status == domain.ProposalStatusRejected {
		return proposal, nil
	}

	if !proposal.CanReject() {
		return nil, NewProposalError(ErrInvalidTransition, id, "rejeição exige estado proposed, atual: "+string(proposal.Status))
	}

	if err := s.proposalRepo.SetStatus(id, domain.ProposalStatusRejected, &actor); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"proposal_id": id,
		"actor":       actor,
	}).Info("Proposta rejeitada")

	return s.GetProposal(id)
}

func (s *Service) ExistsRecent(
	platform domain.Platform,
	connectorID string,
	entityType domain.EntityType,
	entityID string,
	actionType domain.ActionType,
	window time.Duration,
) (bool, error) {
	return s.proposalRepo.ExistsRecent(platform, connectorID, entityType, entityID, actionType, window)
}

package proposing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateProposal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := &Service{proposalRepo: mockProposalRepo}

	validInput := func() CreateProposalInput {
		return CreateProposalInput{
			Platform:    domain.PlatformDemo,
			ConnectorID: "con_demo",
			ActionType:  domain.ActionTypePauseEntity,
			EntityType:  domain.EntityTypeCampaign,
			EntityID:    "cmp-001",
			Reason:      "gasto acima do limite",
		}
	}

	tests := []struct {
		name     string
		input    func() CreateProposalInput
		setup    func()
		validate func(t *testing.T, proposal *domain.ActionProposal, err error)
	}{
		{
			name: "Criação com sucesso - deve nascer em proposed com risco default low",
			input: func() CreateProposalInput {
				return validInput()
			},
			setup: func() {
				mockProposalRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(proposal *domain.ActionProposal) error {
						assert.True(t, strings.HasPrefix(proposal.ID, "act_"))
						assert.Equal(t, domain.ProposalStatusProposed, proposal.Status)
						assert.Equal(t, domain.RiskLow, proposal.Risk)
						assert.False(t, proposal.CreatedAt.IsZero())
						return nil
					})
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProposalStatusProposed, proposal.Status)
			},
		},
		{
			name: "Sem conector ou motivo - deve recusar antes de persistir",
			input: func() CreateProposalInput {
				input := validInput()
				input.ConnectorID = ""
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrMissingData)
			},
		},
		{
			name: "Plataforma desconhecida - deve recusar",
			input: func() CreateProposalInput {
				input := validInput()
				input.Platform = "orkut_ads"
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrInvalidPlatform)
			},
		},
		{
			name: "Tipo de ação desconhecido - deve recusar",
			input: func() CreateProposalInput {
				input := validInput()
				input.ActionType = "delete_account"
				return input
			},
			setup: func() {},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrInvalidAction)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			proposal, err := service.CreateProposal(tt.input())

			if tt.validate != nil {
				tt.validate(t, proposal, err)
			}
		})
	}
}

func TestService_ApproveReject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProposalRepo := mocks.NewMockProposalRepository(ctrl)
	service := &Service{proposalRepo: mockProposalRepo}

	proposalWithStatus := func(status domain.ProposalStatus) *domain.ActionProposal {
		return &domain.ActionProposal{
			ID:     "act_1",
			Status: status,
		}
	}

	tests := []struct {
		name     string
		run      func() (*domain.ActionProposal, error)
		setup    func()
		validate func(t *testing.T, proposal *domain.ActionProposal, err error)
	}{
		{
			name: "Aprovar proposta em proposed - deve mudar para approved",
			run: func() (*domain.ActionProposal, error) {
				return service.Approve("act_1", "ana@example.com")
			},
			setup: func() {
				actor := "ana@example.com"
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusProposed), nil)
				mockProposalRepo.EXPECT().SetStatus("act_1", domain.ProposalStatusApproved, &actor).Return(nil)
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusApproved), nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProposalStatusApproved, proposal.Status)
			},
		},
		{
			name: "Aprovar duas vezes - a segunda deve ser recusada pela guarda",
			run: func() (*domain.ActionProposal, error) {
				return service.Approve("act_1", "ana@example.com")
			},
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusApproved), nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.True(t, IsTransitionError(err))
			},
		},
		{
			name: "Aprovar proposta executada - deve ser recusada",
			run: func() (*domain.ActionProposal, error) {
				return service.Approve("act_1", "ana@example.com")
			},
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusExecuted), nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrInvalidTransition)
			},
		},
		{
			name: "Rejeitar proposta em proposed - deve mudar para rejected",
			run: func() (*domain.ActionProposal, error) {
				return service.Reject("act_1", "ana@example.com")
			},
			setup: func() {
				actor := "ana@example.com"
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusProposed), nil)
				mockProposalRepo.EXPECT().SetStatus("act_1", domain.ProposalStatusRejected, &actor).Return(nil)
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusRejected), nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProposalStatusRejected, proposal.Status)
			},
		},
		{
			name: "Rejeitar proposta já rejeitada - deve ser no-op sem tocar o banco",
			run: func() (*domain.ActionProposal, error) {
				return service.Reject("act_1", "ana@example.com")
			},
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusRejected), nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProposalStatusRejected, proposal.Status)
			},
		},
		{
			name: "Rejeitar proposta executada - deve ser recusada pela guarda",
			run: func() (*domain.ActionProposal, error) {
				return service.Reject("act_1", "ana@example.com")
			},
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(proposalWithStatus(domain.ProposalStatusExecuted), nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.True(t, IsTransitionError(err))
			},
		},
		{
			name: "Aprovar proposta inexistente - deve retornar not found",
			run: func() (*domain.ActionProposal, error) {
				return service.Approve("act_missing", "ana@example.com")
			},
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_missing").Return(nil, repository.ErrProposalNotFound)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrProposalNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			proposal, err := tt.run()

			if tt.validate != nil {
				tt.validate(t, proposal, err)
			}
		})
	}
}

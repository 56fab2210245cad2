package executing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	connectormocks "github.com/trafficops/ads-guardrail-api/infrastructure/connector/mocks"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	repomocks "github.com/trafficops/ads-guardrail-api/infrastructure/repository/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	executingmocks "github.com/trafficops/ads-guardrail-api/internal/usecases/executing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Execute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProposalRepo := repomocks.NewMockProposalRepository(ctrl)
	mockExecutionRepo := repomocks.NewMockExecutionRepository(ctrl)
	mockConnectorRepo := repomocks.NewMockConnectorRepository(ctrl)
	mockBuilder := executingmocks.NewMockConnectorBuilder(ctrl)
	mockClient := connectormocks.NewMockClient(ctrl)

	service := &Service{
		proposalRepo:  mockProposalRepo,
		executionRepo: mockExecutionRepo,
		connectorRepo: mockConnectorRepo,
		builder:       mockBuilder,
	}

	approvedProposal := func() *domain.ActionProposal {
		return &domain.ActionProposal{
			ID:               "act_1",
			Status:           domain.ProposalStatusApproved,
			Platform:         domain.PlatformDemo,
			ConnectorID:      "con_demo",
			ActionType:       domain.ActionTypePauseEntity,
			EntityType:       domain.EntityTypeCampaign,
			EntityID:         "cmp-001",
			RequiresApproval: true,
		}
	}

	enabledConnector := &domain.Connector{
		ID:       "con_demo",
		Platform: domain.PlatformDemo,
		Enabled:  true,
	}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, proposal *domain.ActionProposal, err error)
	}{
		{
			name: "Proposta inexistente - deve falhar na validação sem criar registro de execução",
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(nil, repository.ErrProposalNotFound)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrProposalNotFound)
				assert.True(t, IsValidationError(err))
			},
		},
		{
			name: "Proposta rejeitada - deve recusar a execução",
			setup: func() {
				p := approvedProposal()
				p.Status = domain.ProposalStatusRejected
				mockProposalRepo.EXPECT().GetByID("act_1").Return(p, nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrInvalidState)
				assert.True(t, IsValidationError(err))
			},
		},
		{
			name: "Proposta que exige aprovação ainda em proposed - deve recusar",
			setup: func() {
				p := approvedProposal()
				p.Status = domain.ProposalStatusProposed
				mockProposalRepo.EXPECT().GetByID("act_1").Return(p, nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrInvalidState)
			},
		},
		{
			name: "Conector desabilitado - deve recusar antes de criar registro de execução",
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(approvedProposal(), nil)
				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(&domain.Connector{
					ID:       "con_demo",
					Platform: domain.PlatformDemo,
					Enabled:  false,
				}, nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrConnectorUnavailable)
			},
		},
		{
			name: "Execução com sucesso - deve registrar auditoria completa e marcar a proposta como executed",
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(approvedProposal(), nil)
				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(enabledConnector, nil)
				mockBuilder.EXPECT().Build(enabledConnector).Return(mockClient, nil)

				mockExecutionRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(execution *domain.Execution) error {
						assert.Equal(t, "act_1", execution.ProposalID)
						assert.Equal(t, domain.ExecutionStatusRunning, execution.Status)
						assert.NotEmpty(t, execution.ID)
						return nil
					})

				mockClient.EXPECT().
					ApplyAction(gomock.Any(), domain.ActionTypePauseEntity, domain.EntityTypeCampaign, "cmp-001", gomock.Any()).
					Return(&domain.ActionResult{
						Action:     domain.ActionTypePauseEntity,
						Platform:   domain.PlatformDemo,
						EntityType: domain.EntityTypeCampaign,
						EntityID:   "cmp-001",
						Simulated:  true,
						Mode:       "fixture",
						Before:     map[string]any{"status": "active"},
						After:      map[string]any{"status": "paused"},
					}, nil)

				// O "before" da auditoria é a proposta, o "after" é o resultado
				// completo do conector, que carrega o antes/depois da plataforma.
				mockExecutionRepo.EXPECT().
					Finish(gomock.Any(), domain.ExecutionStatusSuccess, gomock.Any(), gomock.Any(), nil).
					DoAndReturn(func(id string, status domain.ExecutionStatus, before, after map[string]any, execError *string) error {
						assert.Equal(t, "act_1", before["id"])
						assert.Equal(t, "cmp-001", before["entity_id"])
						assert.Equal(t, true, after["simulated"])
						assert.Equal(t, map[string]any{"status": "active"}, after["before"])
						assert.Equal(t, map[string]any{"status": "paused"}, after["after"])
						return nil
					})

				mockProposalRepo.EXPECT().
					SetResult("act_1", domain.ProposalStatusExecuted, gomock.Any(), nil).
					DoAndReturn(func(id string, status domain.ProposalStatus, result map[string]any, execError *string) error {
						assert.Equal(t, true, result["simulated"])
						return nil
					})

				executed := approvedProposal()
				executed.Status = domain.ProposalStatusExecuted
				mockProposalRepo.EXPECT().GetByID("act_1").Return(executed, nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.ProposalStatusExecuted, proposal.Status)
			},
		},
		{
			name: "Plataforma rejeita a ação - deve registrar a falha na execução e na proposta",
			setup: func() {
				mockProposalRepo.EXPECT().GetByID("act_1").Return(approvedProposal(), nil)
				mockConnectorRepo.EXPECT().GetByID("con_demo").Return(enabledConnector, nil)
				mockBuilder.EXPECT().Build(enabledConnector).Return(mockClient, nil)

				mockExecutionRepo.EXPECT().Create(gomock.Any()).Return(nil)

				mockClient.EXPECT().
					ApplyAction(gomock.Any(), domain.ActionTypePauseEntity, domain.EntityTypeCampaign, "cmp-001", gomock.Any()).
					Return(nil, errors.New("entidade já arquivada"))

				mockExecutionRepo.EXPECT().
					Finish(gomock.Any(), domain.ExecutionStatusFailed, gomock.Any(), nil, gomock.Any()).
					DoAndReturn(func(id string, status domain.ExecutionStatus, before, after map[string]any, execError *string) error {
						assert.Equal(t, "act_1", before["id"])
						assert.Nil(t, after)
						assert.Equal(t, "entidade já arquivada", *execError)
						return nil
					})

				mockProposalRepo.EXPECT().
					SetResult("act_1", domain.ProposalStatusFailed, nil, gomock.Any()).
					Return(nil)
			},
			validate: func(t *testing.T, proposal *domain.ActionProposal, err error) {
				assert.Nil(t, proposal)
				assert.ErrorIs(t, err, ErrActionFailed)
				assert.False(t, IsValidationError(err))

				var execErr *ExecutionError
				assert.ErrorAs(t, err, &execErr)
				assert.Equal(t, StageApply, execErr.Stage)
				assert.NotEmpty(t, execErr.ExecutionID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			proposal, err := service.Execute(context.Background(), "act_1", "test")

			if tt.validate != nil {
				tt.validate(t, proposal, err)
			}
		})
	}
}

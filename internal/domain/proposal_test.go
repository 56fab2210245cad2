package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionProposal_Transitions(t *testing.T) {
	tests := []struct {
		name             string
		status           ProposalStatus
		requiresApproval bool
		canApprove       bool
		canReject        bool
		canExecute       bool
	}{
		{
			name:             "Proposed com aprovação exigida aceita aprovar e rejeitar mas não executar",
			status:           ProposalStatusProposed,
			requiresApproval: true,
			canApprove:       true,
			canReject:        true,
			canExecute:       false,
		},
		{
			name:             "Proposed sem aprovação exigida pode executar direto",
			status:           ProposalStatusProposed,
			requiresApproval: false,
			canApprove:       true,
			canReject:        true,
			canExecute:       true,
		},
		{
			name:             "Approved só aceita executar",
			status:           ProposalStatusApproved,
			requiresApproval: true,
			canApprove:       false,
			canReject:        false,
			canExecute:       true,
		},
		{
			name:             "Rejected aceita rejeitar de novo como no-op e nada mais",
			status:           ProposalStatusRejected,
			requiresApproval: true,
			canApprove:       false,
			canReject:        true,
			canExecute:       false,
		},
		{
			name:             "Executed é estado terminal",
			status:           ProposalStatusExecuted,
			requiresApproval: true,
			canApprove:       false,
			canReject:        false,
			canExecute:       false,
		},
		{
			name:             "Failed com aprovação exigida pode ser reaprovada para nova tentativa",
			status:           ProposalStatusFailed,
			requiresApproval: true,
			canApprove:       true,
			canReject:        false,
			canExecute:       false,
		},
		{
			name:             "Failed sem aprovação exigida pode tentar de novo direto",
			status:           ProposalStatusFailed,
			requiresApproval: false,
			canApprove:       true,
			canReject:        false,
			canExecute:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proposal := &ActionProposal{
				Status:           tt.status,
				RequiresApproval: tt.requiresApproval,
			}

			assert.Equal(t, tt.canApprove, proposal.CanApprove())
			assert.Equal(t, tt.canReject, proposal.CanReject())
			assert.Equal(t, tt.canExecute, proposal.CanExecute())
		})
	}
}

func TestParseActionType(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected ActionType
		ok       bool
	}{
		{name: "pause_entity é aceito", raw: "pause_entity", expected: ActionTypePauseEntity, ok: true},
		{name: "Maiúsculas e espaços são normalizados", raw: "  Set_Budget ", expected: ActionTypeSetBudget, ok: true},
		{name: "Ação desconhecida é recusada", raw: "delete_account", expected: "", ok: false},
		{name: "Vazio é recusado", raw: "", expected: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParseActionType(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

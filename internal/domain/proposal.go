package domain

import (
	"strings"
	"time"
)

// ProposalStatus é o estado de uma proposta de ação na máquina de estados
// proposed → approved → executed|failed, com o desvio proposed → rejected.
type ProposalStatus string

const (
	ProposalStatusProposed ProposalStatus = "proposed"
	ProposalStatusApproved ProposalStatus = "approved"
	ProposalStatusRejected ProposalStatus = "rejected"
	ProposalStatusExecuted ProposalStatus = "executed"
	ProposalStatusFailed   ProposalStatus = "failed"
)

// ActionType é o conjunto fechado de ações de escrita contra plataformas.
type ActionType string

const (
	ActionTypePauseEntity  ActionType = "pause_entity"
	ActionTypeSetBudget    ActionType = "set_budget"
	ActionTypeSetBid       ActionType = "set_bid"
	ActionTypeAddNegatives ActionType = "add_negatives"
)

func ParseActionType(raw string) (ActionType, bool) {
	a := ActionType(strings.TrimSpace(strings.ToLower(raw)))
	switch a {
	case ActionTypePauseEntity, ActionTypeSetBudget, ActionTypeSetBid, ActionTypeAddNegatives:
		return a, true
	}
	return "", false
}

// RiskTier classifica o impacto de uma ação.
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// ActionProposal é a unidade central do loop de controle: um pedido pendente
// ou resolvido de mutação de uma entidade da plataforma. Nunca é deletada
// (registro de auditoria).
type ActionProposal struct {
	ID                string         `json:"id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	Status            ProposalStatus `json:"status"`
	Platform          Platform       `json:"platform"`
	ConnectorID       string         `json:"connector_id"`
	ActionType        ActionType     `json:"action_type"`
	AccountID         *string        `json:"account_id"`
	EntityType        EntityType     `json:"entity_type"`
	EntityID          string         `json:"entity_id"`
	Payload           map[string]any `json:"payload"`
	Reason            string         `json:"reason"`
	Risk              RiskTier       `json:"risk"`
	RequiresApproval  bool           `json:"requires_approval"`
	ApprovedBy        *string        `json:"approved_by"`
	ApprovedAt        *time.Time     `json:"approved_at"`
	ExecutedAt        *time.Time     `json:"executed_at"`
	Result            map[string]any `json:"result"`
	Error             *string        `json:"error"`
	TelegramChatID    *int64         `json:"telegram_chat_id"`
	TelegramMessageID *int64         `json:"telegram_message_id"`
}

// CanApprove indica se a proposta aceita aprovação: de proposed, ou de
// failed para reaprovar e tentar de novo.
func (p *ActionProposal) CanApprove() bool {
	return p.Status == ProposalStatusProposed || p.Status == ProposalStatusFailed
}

// CanReject indica se a proposta aceita rejeição. Rejeitar uma proposta já
// rejeitada é no-op, não erro.
func (p *ActionProposal) CanReject() bool {
	return p.Status == ProposalStatusProposed || p.Status == ProposalStatusRejected
}

// CanExecute aplica a guarda de transição da execução: sem aprovação exigida
// vale proposed/approved/failed (retry); com aprovação exigida, exatamente
// approved.
func (p *ActionProposal) CanExecute() bool {
	if p.RequiresApproval {
		return p.Status == ProposalStatusApproved
	}
	return p.Status == ProposalStatusProposed ||
		p.Status == ProposalStatusApproved ||
		p.Status == ProposalStatusFailed
}

// ActionResult é o resultado estruturado de um ApplyAction. O conector embute
// em Before/After o estado real da plataforma, porque só ele consegue
// buscá-lo junto da mutação.
type ActionResult struct {
	Action       ActionType     `json:"action"`
	Platform     Platform       `json:"platform"`
	EntityType   EntityType     `json:"entity_type"`
	EntityID     string         `json:"entity_id"`
	Simulated    bool           `json:"simulated,omitempty"`
	Mode         string         `json:"mode,omitempty"`
	Before       map[string]any `json:"before,omitempty"`
	After        map[string]any `json:"after,omitempty"`
	ResourceName string         `json:"resource_name,omitempty"`
}

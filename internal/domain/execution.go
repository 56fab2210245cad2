package domain

import "time"

// ExecutionStatus é o estado de uma tentativa de execução.
type ExecutionStatus string

const (
	ExecutionStatusRunning ExecutionStatus = "running"
	ExecutionStatusSuccess ExecutionStatus = "success"
	ExecutionStatusFailed  ExecutionStatus = "failed"
)

// Execution é o registro de auditoria de uma tentativa de aplicar uma
// proposta. Criada em running antes da chamada ao conector, assim um crash no
// meio deixa uma linha running reconciliável, nunca uma ação perdida em
// silêncio. Depois de finalizada a linha é imutável; retentativas criam
// linhas novas.
type Execution struct {
	ID         string          `json:"id"`
	ProposalID string          `json:"proposal_id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt *time.Time      `json:"finished_at"`
	Status     ExecutionStatus `json:"status"`
	Before     map[string]any  `json:"before"`
	After      map[string]any  `json:"after"`
	Error      *string         `json:"error"`
}

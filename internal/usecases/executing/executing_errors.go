package executing

import (
	"errors"
	"fmt"
)

// Tipos de erros de execução personalizados
var (
	ErrProposalNotFound     = errors.New("proposta não encontrada")
	ErrInvalidState         = errors.New("proposta em estado que não permite execução")
	ErrConnectorUnavailable = errors.New("conector indisponível para a proposta")
	ErrActionFailed         = errors.New("a plataforma rejeitou a ação")
)

// ExecutionError é um erro com o estágio em que a execução parou. Validation
// acontece antes de existir linha de execução; apply e persist depois.
type ExecutionError struct {
	Err         error
	ProposalID  string
	ExecutionID string
	Stage       string // validation, connector, apply, persist
	Details     string
}

func (e *ExecutionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Stage, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Stage)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// IsValidationError verifica se a execução parou antes de qualquer efeito
// colateral
func IsValidationError(err error) bool {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Stage == StageValidation
	}
	return false
}

const (
	StageValidation = "validation"
	StageConnector  = "connector"
	StageApply      = "apply"
	StagePersist    = "persist"
)

func NewExecutionError(baseErr error, proposalID, stage, details string) *ExecutionError {
	return &ExecutionError{
		Err:        baseErr,
		ProposalID: proposalID,
		Stage:      stage,
		Details:    details,
	}
}

package proposing

import (
	"errors"
	"fmt"
)

// Tipos de erros de proposta personalizados
var (
	ErrProposalNotFound  = errors.New("proposta não encontrada")
	ErrInvalidTransition = errors.New("transição de estado inválida")
	ErrInvalidAction     = errors.New("tipo de ação inválido")
	ErrInvalidPlatform   = errors.New("plataforma inválida")
	ErrMissingData       = errors.New("dados obrigatórios ausentes")
)

// ProposalError é um erro com contexto adicional do ciclo de vida de
// propostas
type ProposalError struct {
	Err        error
	ProposalID string
	Details    string
}

func (e *ProposalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProposalError) Unwrap() error {
	return e.Err
}

// IsTransitionError verifica se o erro é de guarda de transição
func IsTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

func NewProposalError(baseErr error, proposalID, details string) *ProposalError {
	return &ProposalError{
		Err:        baseErr,
		ProposalID: proposalID,
		Details:    details,
	}
}

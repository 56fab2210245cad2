package tracking

import "errors"

var (
	// ErrLinkNotFound indica que o código de rastreamento não está cadastrado.
	ErrLinkNotFound = errors.New("tracking link não encontrado")

	// ErrMissingDestination indica criação de link sem URL de destino.
	ErrMissingDestination = errors.New("destination_url é obrigatório")

	// ErrInvalidDestination indica uma URL de destino que não parseia.
	ErrInvalidDestination = errors.New("destination_url inválida")
)

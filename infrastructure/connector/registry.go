package connector

import (
	"fmt"

	"github.com/trafficops/ads-guardrail-api/internal/config"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
)

// Constructor cria um cliente a partir da linha de conector configurada.
type Constructor func(cfg *config.Config, conn *domain.Connector) (Client, error)

// Registry mapeia plataforma em construtor. O conjunto é fechado e montado
// na partida: plataforma desconhecida é rejeitada na carga da configuração,
// nunca descoberta tarde no dispatch.
type Registry struct {
	constructors map[domain.Platform]Constructor
	cfg          *config.Config
}

func NewRegistry(cfg *config.Config) *Registry {
	return &Registry{
		constructors: make(map[domain.Platform]Constructor),
		cfg:          cfg,
	}
}

// Register associa uma plataforma a um construtor. Registrar duas vezes a
// mesma plataforma é erro de montagem e causa pânico na partida.
func (r *Registry) Register(platform domain.Platform, constructor Constructor) {
	if _, exists := r.constructors[platform]; exists {
		panic(fmt.Sprintf("conector duplicado para a plataforma %s", platform))
	}
	r.constructors[platform] = constructor
}

// Supports informa se a plataforma tem construtor registrado.
func (r *Registry) Supports(platform domain.Platform) bool {
	_, ok := r.constructors[platform]
	return ok
}

// Build instancia o cliente para a linha de conector informada.
func (r *Registry) Build(conn *domain.Connector) (Client, error) {
	constructor, ok := r.constructors[conn.Platform]
	if !ok {
		return nil, fmt.Errorf("plataforma %q sem conector registrado", conn.Platform)
	}

	client, err := constructor(r.cfg, conn)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir o conector %s (%s): %w", conn.ID, conn.Platform, err)
	}

	return client, nil
}

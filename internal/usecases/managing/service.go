package managing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/connector"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/pkg/utils"
)

// ConnectorBuilder resolve o cliente concreto de um conector registrado.
type ConnectorBuilder interface {
	Supports(platform domain.Platform) bool
	Build(conn *domain.Connector) (connector.Client, error)
}

type RegisterConnectorInput struct {
	ID       string         `json:"id"`
	Platform string         `json:"platform"`
	Name     string         `json:"name"`
	Enabled  bool           `json:"enabled"`
	Config   map[string]any `json:"config"`
}

type CreateRuleInput struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Platform *string        `json:"platform"`
	RuleType string         `json:"rule_type"`
	Enabled  bool           `json:"enabled"`
	Params   map[string]any `json:"params"`
}

// Manager administra o cadastro de conectores e regras de guardrail.
type Manager interface {
	RegisterConnector(input RegisterConnectorInput) (*domain.Connector, error)
	GetConnector(id string) (*domain.Connector, error)
	ListConnectors() ([]*domain.Connector, error)
	SetConnectorEnabled(id string, enabled bool) (*domain.Connector, error)
	UpdateConnectorConfig(id string, patch map[string]any) (*domain.Connector, error)
	CheckConnector(ctx context.Context, id string) error

	CreateRule(input CreateRuleInput) (*domain.Rule, error)
	ListRules() ([]*domain.Rule, error)
	SetRuleEnabled(id string, enabled bool) (*domain.Rule, error)
	UpdateRuleParams(id string, params map[string]any) (*domain.Rule, error)
}

type Service struct {
	connectorRepo repository.ConnectorRepository
	ruleRepo      repository.RuleRepository
	builder       ConnectorBuilder
}

func NewService(
	connectorRepo repository.ConnectorRepository,
	ruleRepo repository.RuleRepository,
	builder ConnectorBuilder,
) Manager {
	return &Service{
		connectorRepo: connectorRepo,
		ruleRepo:      ruleRepo,
		builder:       builder,
	}
}

func (s *Service) RegisterConnector(input RegisterConnectorInput) (*domain.Connector, error) {
	platform, ok := domain.ParsePlatform(input.Platform)
	if !ok {
		return nil, fmt.Errorf("plataforma desconhecida: %q", input.Platform)
	}
	if !s.builder.Supports(platform) {
		return nil, fmt.Errorf("plataforma sem conector registrado: %s", platform)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("nome do conector é obrigatório")
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		generated, err := utils.GeneratePrefixedID("con")
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o ID do conector: %w", err)
		}
		id = generated
	}

	conn := &domain.Connector{
		ID:           id,
		Platform:     platform,
		Name:         input.Name,
		Enabled:      input.Enabled,
		Config:       input.Config,
		Capabilities: domain.CapabilitiesFor(platform),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.connectorRepo.Create(conn); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"connector_id": conn.ID,
		"platform":     conn.Platform,
		"mode":         conn.Mode(),
	}).Info("Conector registrado")

	return s.connectorRepo.GetByID(conn.ID)
}

func (s *Service) GetConnector(id string) (*domain.Connector, error) {
	return s.connectorRepo.GetByID(id)
}

func (s *Service) ListConnectors() ([]*domain.Connector, error) {
	return s.connectorRepo.ListConnectors()
}

func (s *Service) SetConnectorEnabled(id string, enabled bool) (*domain.Connector, error) {
	if err := s.connectorRepo.SetEnabled(id, enabled); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"connector_id": id,
		"enabled":      enabled,
	}).Info("Estado do conector alterado")

	return s.connectorRepo.GetByID(id)
}

// UpdateConnectorConfig aplica um patch raso sobre a configuração existente.
// Chaves com valor nulo no patch são removidas.
func (s *Service) UpdateConnectorConfig(id string, patch map[string]any) (*domain.Connector, error) {
	conn, err := s.connectorRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	conn.MergeConfig(patch)

	if err := s.connectorRepo.UpdateConfig(id, conn.Config); err != nil {
		return nil, err
	}

	return s.connectorRepo.GetByID(id)
}

// CheckConnector monta o cliente da plataforma e dispara o health check
// contra a API externa. Conectores em modo import ou fixture respondem
// localmente.
func (s *Service) CheckConnector(ctx context.Context, id string) error {
	conn, err := s.connectorRepo.GetByID(id)
	if err != nil {
		return err
	}

	client, err := s.builder.Build(conn)
	if err != nil {
		return err
	}

	return client.HealthCheck(ctx)
}

func (s *Service) CreateRule(input CreateRuleInput) (*domain.Rule, error) {
	if domain.RuleType(input.RuleType) != domain.RuleTypeKillSwitch {
		return nil, fmt.Errorf("tipo de regra desconhecido: %q", input.RuleType)
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("nome da regra é obrigatório")
	}

	var platform *domain.Platform
	if input.Platform != nil && *input.Platform != "" {
		parsed, ok := domain.ParsePlatform(*input.Platform)
		if !ok {
			return nil, fmt.Errorf("plataforma desconhecida: %q", *input.Platform)
		}
		platform = &parsed
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		generated, err := utils.GeneratePrefixedID("rul")
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar o ID da regra: %w", err)
		}
		id = generated
	}

	rule := &domain.Rule{
		ID:        id,
		Name:      input.Name,
		Enabled:   input.Enabled,
		Platform:  platform,
		RuleType:  domain.RuleType(input.RuleType),
		Params:    input.Params,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := s.ruleRepo.Create(rule); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"rule_id":   rule.ID,
		"rule_type": rule.RuleType,
	}).Info("Regra criada")

	return s.ruleRepo.GetByID(rule.ID)
}

func (s *Service) ListRules() ([]*domain.Rule, error) {
	return s.ruleRepo.ListAll()
}

func (s *Service) SetRuleEnabled(id string, enabled bool) (*domain.Rule, error) {
	if err := s.ruleRepo.SetEnabled(id, enabled); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"rule_id": id,
		"enabled": enabled,
	}).Info("Estado da regra alterado")

	return s.ruleRepo.GetByID(id)
}

// UpdateRuleParams substitui os parâmetros inteiros da regra. Valores fora
// dos limites são normalizados na leitura, não na escrita.
func (s *Service) UpdateRuleParams(id string, params map[string]any) (*domain.Rule, error) {
	if err := s.ruleRepo.UpdateParams(id, params); err != nil {
		return nil, err
	}

	return s.ruleRepo.GetByID(id)
}

package domain

import (
	"strings"
	"time"
)

// Platform identifica uma plataforma de anúncios ou de comércio suportada.
// O conjunto é fechado: valores desconhecidos são rejeitados na carga da
// configuração, nunca no dispatch.
type Platform string

const (
	PlatformNaver      Platform = "naver"
	PlatformMeta       Platform = "meta"
	PlatformGoogle     Platform = "google"
	PlatformTikTok     Platform = "tiktok"
	PlatformCoupang    Platform = "coupang"
	PlatformSmartStore Platform = "smartstore"
	PlatformCafe24     Platform = "cafe24_analytics"
	PlatformDemo       Platform = "demo"
)

// AllPlatforms lista as plataformas aceitas em ordem estável.
var AllPlatforms = []Platform{
	PlatformNaver,
	PlatformMeta,
	PlatformGoogle,
	PlatformTikTok,
	PlatformCoupang,
	PlatformSmartStore,
	PlatformCafe24,
	PlatformDemo,
}

func ParsePlatform(raw string) (Platform, bool) {
	p := Platform(strings.TrimSpace(strings.ToLower(raw)))
	for _, known := range AllPlatforms {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// ConnectorMode define se o conector toca a API real, fixtures ou nada.
type ConnectorMode string

const (
	ModeImport  ConnectorMode = "import"
	ModeFixture ConnectorMode = "fixture"
	ModeAPI     ConnectorMode = "api"
)

// ConnectorCapabilities declara o que um conector sabe fazer. É metadado
// para UI/admin; o contrato efetivo é o conjunto de métodos do conector.
type ConnectorCapabilities struct {
	ReadMetrics    bool `json:"read_metrics"`
	ReadEntities   bool `json:"read_entities"`
	ReadOrders     bool `json:"read_orders"`
	WritePause     bool `json:"write_pause"`
	WriteBudget    bool `json:"write_budget"`
	WriteBid       bool `json:"write_bid"`
	WriteNegatives bool `json:"write_negatives"`
	ReadCreatives  bool `json:"read_creatives"`
}

// CapabilitiesFor retorna as capacidades declaradas de cada plataforma.
// Plataformas ainda sem conector real ficam com tudo desligado.
func CapabilitiesFor(platform Platform) ConnectorCapabilities {
	switch platform {
	case PlatformNaver:
		return ConnectorCapabilities{
			ReadMetrics:  true,
			ReadEntities: true,
			WritePause:   true,
			WriteBudget:  true,
			WriteBid:     true,
		}
	case PlatformMeta:
		return ConnectorCapabilities{
			ReadMetrics:   true,
			ReadEntities:  true,
			WritePause:    true,
			WriteBudget:   true,
			ReadCreatives: true,
		}
	case PlatformCafe24:
		return ConnectorCapabilities{
			ReadOrders: true,
		}
	case PlatformDemo:
		return ConnectorCapabilities{
			ReadMetrics:  true,
			ReadEntities: true,
			WritePause:   true,
			WriteBudget:  true,
		}
	default:
		return ConnectorCapabilities{}
	}
}

// Connector representa uma instância configurada de integração.
type Connector struct {
	ID           string                `json:"id"`
	Platform     Platform              `json:"platform"`
	Name         string                `json:"name"`
	Enabled      bool                  `json:"enabled"`
	Config       map[string]any        `json:"config"`
	Capabilities ConnectorCapabilities `json:"capabilities"`
	LastSyncAt   *time.Time            `json:"last_sync_at"`
	LastError    *string               `json:"last_error"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// Mode extrai o modo de operação da configuração. Ausência vale import,
// que é o modo seguro (nenhuma chamada de rede).
func (c *Connector) Mode() ConnectorMode {
	raw, _ := c.Config["mode"].(string)
	switch ConnectorMode(strings.TrimSpace(strings.ToLower(raw))) {
	case ModeAPI:
		return ModeAPI
	case ModeFixture:
		return ModeFixture
	default:
		return ModeImport
	}
}

// MergeConfig aplica uma atualização parcial preservando chaves desconhecidas.
func (c *Connector) MergeConfig(patch map[string]any) {
	if c.Config == nil {
		c.Config = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		if v == nil {
			delete(c.Config, k)
			continue
		}
		c.Config[k] = v
	}
}

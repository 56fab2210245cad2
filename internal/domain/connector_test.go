package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Platform
		ok       bool
	}{
		{name: "naver é aceito", raw: "naver", expected: PlatformNaver, ok: true},
		{name: "Maiúsculas e espaços são normalizados", raw: "  Meta ", expected: PlatformMeta, ok: true},
		{name: "cafe24_analytics é aceito", raw: "cafe24_analytics", expected: PlatformCafe24, ok: true},
		{name: "Plataforma desconhecida é recusada", raw: "orkut_ads", expected: "", ok: false},
		{name: "Vazio é recusado", raw: "", expected: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ParsePlatform(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConnector_Mode(t *testing.T) {
	tests := []struct {
		name     string
		config   map[string]any
		expected ConnectorMode
	}{
		{name: "Sem configuração vale import", config: nil, expected: ModeImport},
		{name: "Modo api é respeitado", config: map[string]any{"mode": "api"}, expected: ModeAPI},
		{name: "Modo fixture é respeitado", config: map[string]any{"mode": "fixture"}, expected: ModeFixture},
		{name: "Maiúsculas são normalizadas", config: map[string]any{"mode": " API "}, expected: ModeAPI},
		{name: "Modo desconhecido cai em import", config: map[string]any{"mode": "turbo"}, expected: ModeImport},
		{name: "Modo não textual cai em import", config: map[string]any{"mode": 3}, expected: ModeImport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &Connector{Config: tt.config}
			assert.Equal(t, tt.expected, conn.Mode())
		})
	}
}

func TestConnector_MergeConfig(t *testing.T) {
	tests := []struct {
		name     string
		initial  map[string]any
		patch    map[string]any
		expected map[string]any
	}{
		{
			name:     "Chaves novas são adicionadas preservando as existentes",
			initial:  map[string]any{"mode": "fixture", "api_key": "abc"},
			patch:    map[string]any{"mode": "api"},
			expected: map[string]any{"mode": "api", "api_key": "abc"},
		},
		{
			name:     "Valor nulo remove a chave",
			initial:  map[string]any{"mode": "api", "api_key": "abc"},
			patch:    map[string]any{"api_key": nil},
			expected: map[string]any{"mode": "api"},
		},
		{
			name:     "Configuração inicial nula é criada",
			initial:  nil,
			patch:    map[string]any{"mode": "import"},
			expected: map[string]any{"mode": "import"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn := &Connector{Config: tt.initial}
			conn.MergeConfig(tt.patch)
			assert.Equal(t, tt.expected, conn.Config)
		})
	}
}

func TestCapabilitiesFor(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		validate func(t *testing.T, caps ConnectorCapabilities)
	}{
		{
			name:     "Naver lê métricas e escreve pausa, orçamento e lance",
			platform: PlatformNaver,
			validate: func(t *testing.T, caps ConnectorCapabilities) {
				assert.True(t, caps.ReadMetrics)
				assert.True(t, caps.WritePause)
				assert.True(t, caps.WriteBid)
				assert.False(t, caps.ReadOrders)
			},
		},
		{
			name:     "Cafe24 só lê pedidos",
			platform: PlatformCafe24,
			validate: func(t *testing.T, caps ConnectorCapabilities) {
				assert.True(t, caps.ReadOrders)
				assert.False(t, caps.ReadMetrics)
				assert.False(t, caps.WritePause)
			},
		},
		{
			name:     "Plataforma sem conector fica com tudo desligado",
			platform: PlatformTikTok,
			validate: func(t *testing.T, caps ConnectorCapabilities) {
				assert.Equal(t, ConnectorCapabilities{}, caps)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, CapabilitiesFor(tt.platform))
		})
	}
}

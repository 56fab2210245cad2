package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKillSwitchParams(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected KillSwitchParams
	}{
		{
			name: "Mapa nulo deve retornar os defaults",
			raw:  nil,
			expected: KillSwitchParams{
				SpendThreshold:      50000,
				ConversionThreshold: 0,
				ClicksThreshold:     1,
				EntityType:          EntityTypeCampaign,
				AutoExecute:         false,
			},
		},
		{
			name: "Parâmetros completos devem ser respeitados",
			raw: map[string]any{
				"spend_threshold":      float64(80000),
				"conversion_threshold": float64(2),
				"clicks_threshold":     float64(10),
				"entity_type":          "adgroup",
				"auto_execute":         true,
			},
			expected: KillSwitchParams{
				SpendThreshold:      80000,
				ConversionThreshold: 2,
				ClicksThreshold:     10,
				EntityType:          EntityTypeAdGroup,
				AutoExecute:         true,
			},
		},
		{
			name: "Chave legada min_clicks deve valer como clicks_threshold",
			raw: map[string]any{
				"min_clicks": float64(5),
			},
			expected: KillSwitchParams{
				SpendThreshold:      50000,
				ConversionThreshold: 0,
				ClicksThreshold:     5,
				EntityType:          EntityTypeCampaign,
				AutoExecute:         false,
			},
		},
		{
			name: "Limites negativos devem ser elevados a zero",
			raw: map[string]any{
				"spend_threshold":      float64(-100),
				"conversion_threshold": float64(-1),
				"clicks_threshold":     float64(-3),
			},
			expected: KillSwitchParams{
				SpendThreshold:      0,
				ConversionThreshold: 0,
				ClicksThreshold:     0,
				EntityType:          EntityTypeCampaign,
				AutoExecute:         false,
			},
		},
		{
			name: "Valores textuais e inteiros devem ser normalizados",
			raw: map[string]any{
				"spend_threshold":  "30000",
				"clicks_threshold": 7,
				"auto_execute":     "true",
				"entity_type":      " Campaign ",
			},
			expected: KillSwitchParams{
				SpendThreshold:      30000,
				ConversionThreshold: 0,
				ClicksThreshold:     7,
				EntityType:          EntityTypeCampaign,
				AutoExecute:         true,
			},
		},
		{
			name: "Valores inválidos devem cair nos defaults",
			raw: map[string]any{
				"spend_threshold": "muito",
				"auto_execute":    "talvez",
				"entity_type":     "",
			},
			expected: KillSwitchParams{
				SpendThreshold:      50000,
				ConversionThreshold: 0,
				ClicksThreshold:     1,
				EntityType:          EntityTypeCampaign,
				AutoExecute:         false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseKillSwitchParams(tt.raw)
			assert.Equal(t, tt.expected, result)
		})
	}
}

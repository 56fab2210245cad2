package domain

import (
	"strconv"
	"strings"
	"time"
)

// RuleType é o conjunto fechado de tipos de regra de guardrail.
type RuleType string

const (
	// RuleTypeKillSwitch pausa entidades gastando sem converter.
	RuleTypeKillSwitch RuleType = "kill_switch_spend_no_conv"
)

// Rule é uma definição declarativa de guardrail. Mutada apenas por ação
// administrativa.
type Rule struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Enabled   bool           `json:"enabled"`
	Platform  *Platform      `json:"platform"`
	RuleType  RuleType       `json:"rule_type"`
	Params    map[string]any `json:"params"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// KillSwitchParams é o esquema tipado dos parâmetros da regra de kill switch.
// O mapa genérico só existe na borda; depois dela circula este struct.
type KillSwitchParams struct {
	SpendThreshold      float64
	ConversionThreshold float64
	ClicksThreshold     float64
	EntityType          EntityType
	AutoExecute         bool
}

func defaultKillSwitchParams() KillSwitchParams {
	return KillSwitchParams{
		SpendThreshold:      50000,
		ConversionThreshold: 0,
		ClicksThreshold:     1,
		EntityType:          EntityTypeCampaign,
		AutoExecute:         false,
	}
}

// ParseKillSwitchParams normaliza o mapa de parâmetros em um struct tipado.
// Valores ausentes ou inválidos caem nos defaults; thresholds negativos são
// elevados a zero.
func ParseKillSwitchParams(raw map[string]any) KillSwitchParams {
	p := defaultKillSwitchParams()
	if raw == nil {
		return p
	}

	p.SpendThreshold = clampNonNegative(toFloat(raw["spend_threshold"], p.SpendThreshold))
	p.ConversionThreshold = clampNonNegative(toFloat(raw["conversion_threshold"], p.ConversionThreshold))

	clicks, ok := raw["clicks_threshold"]
	if !ok {
		clicks = raw["min_clicks"]
	}
	p.ClicksThreshold = clampNonNegative(toFloat(clicks, p.ClicksThreshold))

	if et, ok := raw["entity_type"].(string); ok {
		if trimmed := strings.TrimSpace(strings.ToLower(et)); trimmed != "" {
			p.EntityType = EntityType(trimmed)
		}
	}

	p.AutoExecute = toBool(raw["auto_execute"], p.AutoExecute)

	return p
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func toFloat(v any, fallback float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func toBool(v any, fallback bool) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case string:
		switch strings.TrimSpace(strings.ToLower(t)) {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return fallback
}

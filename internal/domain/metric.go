package domain

import "time"

// MetricDaily é uma observação agregada de um dia para uma entidade.
// Reingestão sobrescreve pela chave composta (upsert idempotente), nunca soma.
// O mapa Metrics carrega definições secundárias de conversão
// (conversions_all, conversions_purchase, ...) para consumo posterior sem
// nova busca na plataforma.
type MetricDaily struct {
	Platform        Platform       `json:"platform"`
	ConnectorID     string         `json:"connector_id"`
	AccountID       *string        `json:"account_id"`
	EntityType      EntityType     `json:"entity_type"`
	EntityID        string         `json:"entity_id"`
	Date            time.Time      `json:"date"`
	Spend           float64        `json:"spend"`
	Impressions     int64          `json:"impressions"`
	Clicks          int64          `json:"clicks"`
	Conversions     float64        `json:"conversions"`
	ConversionValue float64        `json:"conversion_value"`
	Metrics         map[string]any `json:"metrics"`
}

// MetricIntraday é o equivalente por balde de hora, para decisões de
// guardrail no mesmo dia.
type MetricIntraday struct {
	Platform        Platform       `json:"platform"`
	ConnectorID     string         `json:"connector_id"`
	AccountID       *string        `json:"account_id"`
	EntityType      EntityType     `json:"entity_type"`
	EntityID        string         `json:"entity_id"`
	HourTS          time.Time      `json:"hour_ts"`
	Spend           float64        `json:"spend"`
	Impressions     int64          `json:"impressions"`
	Clicks          int64          `json:"clicks"`
	Conversions     float64        `json:"conversions"`
	ConversionValue float64        `json:"conversion_value"`
	Metrics         map[string]any `json:"metrics"`
}

// IntradaySum agrega os baldes intraday de uma entidade em um dia.
type IntradaySum struct {
	Spend           float64 `json:"spend"`
	Clicks          float64 `json:"clicks"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
}

// AttributedConversions é a contagem de conversões do lado do comércio
// (eventos de conversão ligados a cliques rastreados), a fonte considerada
// verdade quando existe.
type AttributedConversions struct {
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"`
}

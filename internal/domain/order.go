package domain

import "time"

// StoreOrder é um pedido do lado do comércio, independente de plataforma de
// anúncio, com campos de caminho de entrada usados para atribuir receita
// aproximada às origens de tráfego. Chave (store, order_id), upsert idempotente.
type StoreOrder struct {
	Store            string         `json:"store"`
	OrderID          string         `json:"order_id"`
	OrderedAt        *time.Time     `json:"ordered_at"`
	Date             time.Time      `json:"date"`
	Status           *string        `json:"status"`
	Amount           float64        `json:"amount"`
	Currency         *string        `json:"currency"`
	OrderPlaceID     *string        `json:"order_place_id"`
	OrderPlaceName   *string        `json:"order_place_name"`
	InflowPath       *string        `json:"inflow_path"`
	InflowPathDetail *string        `json:"inflow_path_detail"`
	Referer          *string        `json:"referer"`
	SourceRaw        *string        `json:"source_raw"`
	Meta             map[string]any `json:"meta"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// StoreOrderSummary agrega pedidos de uma loja em um período.
type StoreOrderSummary struct {
	OrderCount  int64   `json:"order_count"`
	TotalAmount float64 `json:"total_amount"`
}

// InflowPathCount conta pedidos por caminho de entrada.
type InflowPathCount struct {
	InflowPath string `json:"inflow_path"`
	Orders     int64  `json:"orders"`
}

// TrackingLink liga um código de rastreamento a uma entidade de anúncio,
// permitindo atribuir cliques e conversões do comércio de volta à entidade.
type TrackingLink struct {
	Code           string         `json:"code"`
	DestinationURL string         `json:"destination_url"`
	Channel        *string        `json:"channel"`
	Objective      *string        `json:"objective"`
	EntityPlatform *Platform      `json:"entity_platform"`
	EntityType     *EntityType    `json:"entity_type"`
	EntityID       *string        `json:"entity_id"`
	Meta           map[string]any `json:"meta"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ClickEvent é um clique registrado em um tracking link.
type ClickEvent struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Date      time.Time      `json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	UserAgent *string        `json:"user_agent"`
	IPHash    *string        `json:"ip_hash"`
	Referer   *string        `json:"referer"`
	Query     map[string]any `json:"query"`
}

// ConversionEvent é uma conversão do comércio, opcionalmente ligada a um
// clique rastreado. (order_id, source) é único: reimportação não duplica.
type ConversionEvent struct {
	ID        string         `json:"id"`
	ClickID   *string        `json:"click_id"`
	Date      time.Time      `json:"date"`
	CreatedAt time.Time      `json:"created_at"`
	OrderID   *string        `json:"order_id"`
	Value     float64        `json:"value"`
	Currency  *string        `json:"currency"`
	Source    string         `json:"source"`
	Extra     map[string]any `json:"extra"`
}

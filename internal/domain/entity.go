package domain

import "time"

// EntityType é o tipo de objeto espelhado da plataforma.
type EntityType string

const (
	EntityTypeCampaign EntityType = "campaign"
	EntityTypeAdGroup  EntityType = "adgroup"
	EntityTypeKeyword  EntityType = "keyword"
	EntityTypeAd       EntityType = "ad"
	EntityTypeStore    EntityType = "store"
)

// Entity é um objeto da plataforma (campanha, grupo, palavra-chave, anúncio)
// espelhado localmente para hierarquia e exibição. A chave composta
// (platform, connector_id, entity_type, entity_id) é estável entre syncs.
// Remoção do lado da plataforma vira mudança de status, nunca delete.
type Entity struct {
	Platform    Platform       `json:"platform"`
	ConnectorID string         `json:"connector_id"`
	AccountID   *string        `json:"account_id"`
	EntityType  EntityType     `json:"entity_type"`
	EntityID    string         `json:"entity_id"`
	ParentType  *string        `json:"parent_type"`
	ParentID    *string        `json:"parent_id"`
	Name        *string        `json:"name"`
	Status      *string        `json:"status"`
	Meta        map[string]any `json:"meta"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

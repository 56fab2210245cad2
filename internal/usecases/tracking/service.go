// Package tracking é o lado de escrita da atribuição: cadastra tracking
// links, registra cliques vindos do redirect público e conversões vindas do
// webhook ou do pixel do comércio. O motor de guardrail lê essas tabelas
// como fonte de verdade de conversão.
package tracking

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"github.com/trafficops/ads-guardrail-api/pkg/utils"
)

const (
	defaultCurrency = "KRW"
	defaultSource   = "cafe24_js"
)

// CreateLinkInput descreve um tracking link novo ou atualizado. Código em
// branco ganha um gerado.
type CreateLinkInput struct {
	Code           string         `json:"code"`
	DestinationURL string         `json:"destination_url"`
	Channel        *string        `json:"channel"`
	Objective      *string        `json:"objective"`
	EntityPlatform *string        `json:"entity_platform"`
	EntityType     *string        `json:"entity_type"`
	EntityID       *string        `json:"entity_id"`
	Meta           map[string]any `json:"meta"`
}

// ClickInput carrega o que o redirect sabe sobre o clique. O IP nunca é
// armazenado em claro, somente o hash.
type ClickInput struct {
	Code      string
	UserAgent string
	Referer   string
	IP        string
	Query     map[string]any
}

// ConversionInput é o payload do webhook/pixel de conversão, já achatado.
type ConversionInput struct {
	ClickID  string         `json:"click_id"`
	OrderID  string         `json:"order_id"`
	Value    float64        `json:"value"`
	Currency string         `json:"currency"`
	Source   string         `json:"source"`
	Extra    map[string]any `json:"extra"`
}

type Tracker interface {
	CreateLink(input CreateLinkInput) (*domain.TrackingLink, error)
	RecordClick(input ClickInput, now time.Time) (*domain.TrackingLink, *domain.ClickEvent, error)
	RecordConversion(input ConversionInput, now time.Time) (*domain.ConversionEvent, error)
}

type Service struct {
	attribRepo repository.AttributionRepository
}

func NewService(attribRepo repository.AttributionRepository) Tracker {
	return &Service{attribRepo: attribRepo}
}

func (s *Service) CreateLink(input CreateLinkInput) (*domain.TrackingLink, error) {
	destination := strings.TrimSpace(input.DestinationURL)
	if destination == "" {
		return nil, ErrMissingDestination
	}
	if _, err := url.ParseRequestURI(destination); err != nil {
		return nil, ErrInvalidDestination
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		generated, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		code = generated
	}

	link := &domain.TrackingLink{
		Code:           code,
		DestinationURL: destination,
		Channel:        input.Channel,
		Objective:      input.Objective,
		Meta:           input.Meta,
	}

	if input.EntityPlatform != nil {
		platform, ok := domain.ParsePlatform(*input.EntityPlatform)
		if !ok {
			return nil, fmt.Errorf("plataforma desconhecida: %s", *input.EntityPlatform)
		}
		link.EntityPlatform = &platform
	}
	if input.EntityType != nil {
		entityType := domain.EntityType(strings.TrimSpace(*input.EntityType))
		link.EntityType = &entityType
	}
	link.EntityID = input.EntityID

	if err := s.attribRepo.SaveOrUpdateTrackingLink(link); err != nil {
		return nil, fmt.Errorf("erro ao gravar o tracking link: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"code":        link.Code,
		"destination": link.DestinationURL,
	}).Info("Tracking link gravado")

	return link, nil
}

// RecordClick registra o clique e devolve o link para o redirect. O clique
// carrega o dia-calendário do fuso do chamador em Date.
func (s *Service) RecordClick(input ClickInput, now time.Time) (*domain.TrackingLink, *domain.ClickEvent, error) {
	link, err := s.attribRepo.GetTrackingLink(input.Code)
	if err != nil {
		if errors.Is(err, repository.ErrTrackingLinkNotFound) {
			return nil, nil, ErrLinkNotFound
		}
		return nil, nil, err
	}

	clickID, err := utils.GeneratePrefixedID("clk")
	if err != nil {
		return nil, nil, err
	}

	event := &domain.ClickEvent{
		ID:    clickID,
		Code:  link.Code,
		Date:  now,
		Query: input.Query,
	}
	if ua := strings.TrimSpace(input.UserAgent); ua != "" {
		event.UserAgent = &ua
	}
	if ref := strings.TrimSpace(input.Referer); ref != "" {
		event.Referer = &ref
	}
	if ip := strings.TrimSpace(input.IP); ip != "" {
		hash := sha256Hex(ip)
		event.IPHash = &hash
	}

	if err := s.attribRepo.RecordClickEvent(event); err != nil {
		return nil, nil, fmt.Errorf("erro ao registrar o clique: %w", err)
	}

	return link, event, nil
}

// RecordConversion normaliza e grava a conversão. Reimportação do mesmo
// pedido pela mesma fonte é inofensiva (chave única no repositório).
func (s *Service) RecordConversion(input ConversionInput, now time.Time) (*domain.ConversionEvent, error) {
	conversionID, err := utils.GeneratePrefixedID("cvn")
	if err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = defaultCurrency
	}
	source := strings.ToLower(strings.TrimSpace(input.Source))
	if source == "" {
		source = defaultSource
	}

	event := &domain.ConversionEvent{
		ID:       conversionID,
		Date:     now,
		Value:    input.Value,
		Currency: &currency,
		Source:   source,
		Extra:    input.Extra,
	}
	if clickID := strings.TrimSpace(input.ClickID); clickID != "" {
		event.ClickID = &clickID
	}
	if orderID := strings.TrimSpace(input.OrderID); orderID != "" {
		event.OrderID = &orderID
	}

	if err := s.attribRepo.RecordConversionEvent(event); err != nil {
		return nil, fmt.Errorf("erro ao registrar a conversão: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"conversion_id": event.ID,
		"source":        event.Source,
	}).Info("Conversão registrada")

	return event, nil
}

func sha256Hex(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

package tracking

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trafficops/ads-guardrail-api/infrastructure/repository"
	repomocks "github.com/trafficops/ads-guardrail-api/infrastructure/repository/mocks"
	"github.com/trafficops/ads-guardrail-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_CreateLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAttribRepo := repomocks.NewMockAttributionRepository(ctrl)
	service := &Service{attribRepo: mockAttribRepo}

	metaPlatform := "meta"
	campaignType := "campaign"
	entityID := "cmp-001"

	tests := []struct {
		name     string
		input    CreateLinkInput
		setup    func()
		validate func(t *testing.T, link *domain.TrackingLink, err error)
	}{
		{
			name:  "Destino em branco - deve recusar",
			input: CreateLinkInput{Code: "promo", DestinationURL: "   "},
			setup: func() {},
			validate: func(t *testing.T, link *domain.TrackingLink, err error) {
				assert.Nil(t, link)
				assert.ErrorIs(t, err, ErrMissingDestination)
			},
		},
		{
			name:  "Destino sem esquema - deve recusar",
			input: CreateLinkInput{Code: "promo", DestinationURL: "loja.example.com/sale"},
			setup: func() {},
			validate: func(t *testing.T, link *domain.TrackingLink, err error) {
				assert.Nil(t, link)
				assert.ErrorIs(t, err, ErrInvalidDestination)
			},
		},
		{
			name: "Plataforma desconhecida na entidade - deve recusar",
			input: CreateLinkInput{
				Code:           "promo",
				DestinationURL: "https://loja.example.com/sale",
				EntityPlatform: ptr("orkut"),
			},
			setup: func() {},
			validate: func(t *testing.T, link *domain.TrackingLink, err error) {
				assert.Nil(t, link)
				assert.ErrorContains(t, err, "plataforma desconhecida")
			},
		},
		{
			name: "Link completo com entidade - deve gravar e manter o código informado",
			input: CreateLinkInput{
				Code:           "promo-meta",
				DestinationURL: "https://loja.example.com/sale",
				EntityPlatform: &metaPlatform,
				EntityType:     &campaignType,
				EntityID:       &entityID,
			},
			setup: func() {
				mockAttribRepo.EXPECT().SaveOrUpdateTrackingLink(gomock.Any()).DoAndReturn(func(link *domain.TrackingLink) error {
					assert.Equal(t, "promo-meta", link.Code)
					assert.Equal(t, "https://loja.example.com/sale", link.DestinationURL)
					assert.Equal(t, domain.PlatformMeta, *link.EntityPlatform)
					assert.Equal(t, domain.EntityTypeCampaign, *link.EntityType)
					assert.Equal(t, "cmp-001", *link.EntityID)
					return nil
				})
			},
			validate: func(t *testing.T, link *domain.TrackingLink, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "promo-meta", link.Code)
			},
		},
		{
			name:  "Código em branco - deve gerar um automaticamente",
			input: CreateLinkInput{DestinationURL: "https://loja.example.com/sale"},
			setup: func() {
				mockAttribRepo.EXPECT().SaveOrUpdateTrackingLink(gomock.Any()).DoAndReturn(func(link *domain.TrackingLink) error {
					assert.NotEmpty(t, link.Code)
					return nil
				})
			},
			validate: func(t *testing.T, link *domain.TrackingLink, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, link.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			link, err := service.CreateLink(tt.input)
			tt.validate(t, link, err)
		})
	}
}

func TestService_RecordClick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAttribRepo := repomocks.NewMockAttributionRepository(ctrl)
	service := &Service{attribRepo: mockAttribRepo}

	now := time.Date(2026, time.March, 10, 14, 30, 0, 0, time.UTC)
	storedLink := &domain.TrackingLink{
		Code:           "promo",
		DestinationURL: "https://loja.example.com/sale",
	}

	tests := []struct {
		name     string
		input    ClickInput
		setup    func()
		validate func(t *testing.T, link *domain.TrackingLink, click *domain.ClickEvent, err error)
	}{
		{
			name:  "Código inexistente - deve devolver link não encontrado",
			input: ClickInput{Code: "sumiu"},
			setup: func() {
				mockAttribRepo.EXPECT().GetTrackingLink("sumiu").Return(nil, repository.ErrTrackingLinkNotFound)
			},
			validate: func(t *testing.T, link *domain.TrackingLink, click *domain.ClickEvent, err error) {
				assert.Nil(t, link)
				assert.Nil(t, click)
				assert.ErrorIs(t, err, ErrLinkNotFound)
			},
		},
		{
			name: "Clique completo - deve gravar com IP em hash e query preservada",
			input: ClickInput{
				Code:      "promo",
				UserAgent: "Mozilla/5.0",
				Referer:   "https://instagram.com",
				IP:        "203.0.113.9",
				Query:     map[string]any{"utm_source": "meta"},
			},
			setup: func() {
				mockAttribRepo.EXPECT().GetTrackingLink("promo").Return(storedLink, nil)
				mockAttribRepo.EXPECT().RecordClickEvent(gomock.Any()).DoAndReturn(func(event *domain.ClickEvent) error {
					assert.True(t, strings.HasPrefix(event.ID, "clk_"))
					assert.Equal(t, "promo", event.Code)
					assert.Equal(t, now, event.Date)
					assert.Equal(t, "Mozilla/5.0", *event.UserAgent)
					assert.Equal(t, "https://instagram.com", *event.Referer)
					sum := sha256.Sum256([]byte("203.0.113.9"))
					assert.Equal(t, hex.EncodeToString(sum[:]), *event.IPHash)
					assert.Equal(t, map[string]any{"utm_source": "meta"}, event.Query)
					return nil
				})
			},
			validate: func(t *testing.T, link *domain.TrackingLink, click *domain.ClickEvent, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "https://loja.example.com/sale", link.DestinationURL)
				assert.True(t, strings.HasPrefix(click.ID, "clk_"))
			},
		},
		{
			name:  "Clique sem IP nem cabeçalhos - campos opcionais ficam nulos",
			input: ClickInput{Code: "promo"},
			setup: func() {
				mockAttribRepo.EXPECT().GetTrackingLink("promo").Return(storedLink, nil)
				mockAttribRepo.EXPECT().RecordClickEvent(gomock.Any()).DoAndReturn(func(event *domain.ClickEvent) error {
					assert.Nil(t, event.UserAgent)
					assert.Nil(t, event.Referer)
					assert.Nil(t, event.IPHash)
					return nil
				})
			},
			validate: func(t *testing.T, link *domain.TrackingLink, click *domain.ClickEvent, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, click)
			},
		},
		{
			name:  "Erro do banco ao gravar o clique - deve propagar",
			input: ClickInput{Code: "promo"},
			setup: func() {
				mockAttribRepo.EXPECT().GetTrackingLink("promo").Return(storedLink, nil)
				mockAttribRepo.EXPECT().RecordClickEvent(gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, link *domain.TrackingLink, click *domain.ClickEvent, err error) {
				assert.Nil(t, link)
				assert.Nil(t, click)
				assert.ErrorContains(t, err, "erro ao registrar o clique")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			link, click, err := service.RecordClick(tt.input, now)
			tt.validate(t, link, click, err)
		})
	}
}

func TestService_RecordConversion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAttribRepo := repomocks.NewMockAttributionRepository(ctrl)
	service := &Service{attribRepo: mockAttribRepo}

	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    ConversionInput
		setup    func()
		validate func(t *testing.T, event *domain.ConversionEvent, err error)
	}{
		{
			name: "Payload completo - deve normalizar moeda e fonte",
			input: ConversionInput{
				ClickID:  "clk_abc123",
				OrderID:  "ord-77",
				Value:    129000,
				Currency: "krw",
				Source:   "Cafe24_JS",
				Extra:    map[string]any{"order_id": "ord-77"},
			},
			setup: func() {
				mockAttribRepo.EXPECT().RecordConversionEvent(gomock.Any()).DoAndReturn(func(event *domain.ConversionEvent) error {
					assert.True(t, strings.HasPrefix(event.ID, "cvn_"))
					assert.Equal(t, "clk_abc123", *event.ClickID)
					assert.Equal(t, "ord-77", *event.OrderID)
					assert.Equal(t, float64(129000), event.Value)
					assert.Equal(t, "KRW", *event.Currency)
					assert.Equal(t, "cafe24_js", event.Source)
					assert.Equal(t, now, event.Date)
					return nil
				})
			},
			validate: func(t *testing.T, event *domain.ConversionEvent, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "cafe24_js", event.Source)
			},
		},
		{
			name:  "Payload mínimo - deve aplicar os padrões e deixar o clique nulo",
			input: ConversionInput{OrderID: "ord-88"},
			setup: func() {
				mockAttribRepo.EXPECT().RecordConversionEvent(gomock.Any()).DoAndReturn(func(event *domain.ConversionEvent) error {
					assert.Nil(t, event.ClickID)
					assert.Equal(t, "KRW", *event.Currency)
					assert.Equal(t, "cafe24_js", event.Source)
					return nil
				})
			},
			validate: func(t *testing.T, event *domain.ConversionEvent, err error) {
				assert.NoError(t, err)
				assert.Nil(t, event.ClickID)
			},
		},
		{
			name:  "Erro do banco - deve propagar",
			input: ConversionInput{OrderID: "ord-99"},
			setup: func() {
				mockAttribRepo.EXPECT().RecordConversionEvent(gomock.Any()).Return(errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, event *domain.ConversionEvent, err error) {
				assert.Nil(t, event)
				assert.ErrorContains(t, err, "erro ao registrar a conversão")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			event, err := service.RecordConversion(tt.input, now)
			tt.validate(t, event, err)
		})
	}
}

func ptr(value string) *string {
	return &value
}

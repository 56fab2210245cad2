package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trafficops/ads-guardrail-api/internal/usecases/tracking"
	"github.com/trafficops/ads-guardrail-api/pkg/apiErrors"
)

// GIF 1x1 transparente devolvido pelo pixel de conversão.
var trackingPixel = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// CreateTrackingLink cadastra ou atualiza um tracking link
func CreateTrackingLink(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req tracking.CreateLinkInput
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		link, err := service.CreateLink(req)
		if err != nil {
			if errors.Is(err, tracking.ErrMissingDestination) || errors.Is(err, tracking.ErrInvalidDestination) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
				return
			}
			logrus.WithError(err).Error("Erro ao criar tracking link")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar tracking link", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(link)
	}
}

// RedirectTracking registra o clique e redireciona ao destino do link,
// repassando os parâmetros de query e anexando cid com o id do clique.
func RedirectTracking(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := httprouter.ParamsFromContext(r.Context()).ByName("code")

		query := make(map[string]any, len(r.URL.Query()))
		for key, values := range r.URL.Query() {
			if len(values) > 0 {
				query[key] = values[0]
			}
		}

		link, click, err := service.RecordClick(tracking.ClickInput{
			Code:      code,
			UserAgent: r.UserAgent(),
			Referer:   r.Referer(),
			IP:        clientIP(r),
			Query:     query,
		}, time.Now())
		if err != nil {
			if errors.Is(err, tracking.ErrLinkNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrTrackingLinkNotFound, "Código de rastreamento não encontrado", nil)
				return
			}
			logrus.WithError(err).Error("Erro ao registrar clique")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar clique", nil)
			return
		}

		http.Redirect(w, r, destinationWithClick(link.DestinationURL, r.URL.Query(), click.ID), http.StatusFound)
	}
}

// RecordConversion recebe o webhook de conversão do comércio
func RecordConversion(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		event, err := service.RecordConversion(conversionFromPayload(payload), time.Now())
		if err != nil {
			logrus.WithError(err).Error("Erro ao registrar conversão")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar conversão", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "id": event.ID})
	}
}

// ConversionPixel registra a conversão vinda do script da loja e responde com
// um GIF transparente. Falha de gravação não quebra a página do cliente, o
// pixel sempre responde 200.
func ConversionPixel(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		input := tracking.ConversionInput{
			ClickID:  firstNonEmpty(query.Get("cid"), query.Get("click_id")),
			OrderID:  query.Get("order_id"),
			Currency: query.Get("currency"),
			Source:   query.Get("source"),
			Extra:    map[string]any{},
		}
		if raw := query.Get("value"); raw != "" {
			if value, err := strconv.ParseFloat(raw, 64); err == nil {
				input.Value = value
			}
		}
		for key, values := range query {
			if len(values) > 0 {
				input.Extra[key] = values[0]
			}
		}

		if _, err := service.RecordConversion(input, time.Now()); err != nil {
			logrus.WithError(err).Error("Erro ao registrar conversão via pixel")
		}

		w.Header().Set("Content-Type", "image/gif")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(trackingPixel)
	}
}

func conversionFromPayload(payload map[string]any) tracking.ConversionInput {
	input := tracking.ConversionInput{
		ClickID:  firstNonEmpty(payloadString(payload, "click_id"), payloadString(payload, "cid")),
		OrderID:  firstNonEmpty(payloadString(payload, "order_id"), payloadString(payload, "orderId")),
		Currency: payloadString(payload, "currency"),
		Source:   payloadString(payload, "source"),
		Extra:    payload,
	}
	if value, ok := payload["value"].(float64); ok {
		input.Value = value
	}
	return input
}

func payloadString(payload map[string]any, key string) string {
	if value, ok := payload[key].(string); ok {
		return value
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

func destinationWithClick(destination string, incoming url.Values, clickID string) string {
	target, err := url.Parse(destination)
	if err != nil {
		return destination
	}

	query := target.Query()
	for key, values := range incoming {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("cid", clickID)
	target.RawQuery = query.Encode()

	return target.String()
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

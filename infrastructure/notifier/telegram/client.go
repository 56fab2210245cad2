// Package telegram implementa a notificação e a aprovação de propostas via
// bot do Telegram: propostas novas chegam como mensagem com botões de
// aprovar/rejeitar, e um poller processa os comandos do chat.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/trafficops/ads-guardrail-api/internal/config"
)

const apiBaseURL = "https://api.telegram.org"

type client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func newClient(cfg *config.Config) *client {
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			// getUpdates usa long polling de até 30s; a margem cobre o resto.
			Timeout: 40 * time.Second,
		},
	}
}

type inlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type inlineKeyboardMarkup struct {
	InlineKeyboard [][]inlineKeyboardButton `json:"inline_keyboard"`
}

type message struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	From *struct {
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
	} `json:"from"`
	Text string `json:"text"`
}

type callbackQuery struct {
	ID   string `json:"id"`
	From struct {
		ID        int64  `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
	} `json:"from"`
	Message *message `json:"message"`
	Data    string   `json:"data"`
}

type update struct {
	UpdateID      int64          `json:"update_id"`
	Message       *message       `json:"message"`
	CallbackQuery *callbackQuery `json:"callback_query"`
}

type apiResponse struct {
	OK          bool            `json:"ok"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

func (c *client) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar o payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/bot%s/%s", apiBaseURL, c.cfg.Telegram.BotToken, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(data, &apiResp); err != nil {
		return fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("erro da API do Telegram em %s: %s", method, apiResp.Description)
	}

	if out != nil {
		if err := json.Unmarshal(apiResp.Result, out); err != nil {
			return fmt.Errorf("erro ao decodificar o resultado: %w", err)
		}
	}

	return nil
}

func (c *client) sendMessage(ctx context.Context, chatID int64, text string, keyboard *inlineKeyboardMarkup) (*message, error) {
	payload := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	if keyboard != nil {
		payload["reply_markup"] = keyboard
	}

	var sent message
	if err := c.call(ctx, "sendMessage", payload, &sent); err != nil {
		return nil, err
	}

	return &sent, nil
}

func (c *client) answerCallback(ctx context.Context, callbackID, text string) error {
	payload := map[string]any{
		"callback_query_id": callbackID,
		"text":              text,
	}
	return c.call(ctx, "answerCallbackQuery", payload, nil)
}

func (c *client) editMessageText(ctx context.Context, chatID, messageID int64, text string) error {
	payload := map[string]any{
		"chat_id":    chatID,
		"message_id": messageID,
		"text":       text,
		"parse_mode": "HTML",
	}
	return c.call(ctx, "editMessageText", payload, nil)
}

func (c *client) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	payload := map[string]any{
		"offset":  offset,
		"timeout": 30,
		"allowed_updates": []string{
			"message",
			"callback_query",
		},
	}

	var updates []update
	if err := c.call(ctx, "getUpdates", payload, &updates); err != nil {
		return nil, err
	}

	return updates, nil
}

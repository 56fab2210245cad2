package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestinationWithClick(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		incoming    url.Values
		expected    string
	}{
		{
			name:        "Sem parâmetros de entrada - só anexa o cid",
			destination: "https://loja.example.com/sale",
			incoming:    url.Values{},
			expected:    "https://loja.example.com/sale?cid=clk_abc",
		},
		{
			name:        "Parâmetros de entrada são repassados junto com o cid",
			destination: "https://loja.example.com/sale",
			incoming:    url.Values{"utm_source": {"meta"}},
			expected:    "https://loja.example.com/sale?cid=clk_abc&utm_source=meta",
		},
		{
			name:        "Destino que já tem query preserva os parâmetros originais",
			destination: "https://loja.example.com/sale?ref=home",
			incoming:    url.Values{"utm_source": {"meta"}},
			expected:    "https://loja.example.com/sale?cid=clk_abc&ref=home&utm_source=meta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, destinationWithClick(tt.destination, tt.incoming, "clk_abc"))
		})
	}
}

func TestConversionFromPayload(t *testing.T) {
	t.Run("Aliases cid e orderId entram no lugar dos campos canônicos", func(t *testing.T) {
		input := conversionFromPayload(map[string]any{
			"cid":     "clk_abc",
			"orderId": "ord-77",
			"value":   129000.0,
		})
		assert.Equal(t, "clk_abc", input.ClickID)
		assert.Equal(t, "ord-77", input.OrderID)
		assert.Equal(t, 129000.0, input.Value)
	})

	t.Run("Campos canônicos têm prioridade sobre os aliases", func(t *testing.T) {
		input := conversionFromPayload(map[string]any{
			"click_id": "clk_canonico",
			"cid":      "clk_alias",
			"order_id": "ord-1",
			"orderId":  "ord-2",
		})
		assert.Equal(t, "clk_canonico", input.ClickID)
		assert.Equal(t, "ord-1", input.OrderID)
	})

	t.Run("Payload inteiro vai para extra", func(t *testing.T) {
		payload := map[string]any{"cid": "clk_abc", "sku": "X-1"}
		input := conversionFromPayload(payload)
		assert.Equal(t, payload, input.Extra)
	})
}

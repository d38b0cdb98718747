package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicegen/invoice-generator-service/internal/model"
)

func TestFlexibleNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain number", `12.5`, 12.5},
		{"integer", `3`, 3},
		{"numeric string", `"12.5"`, 12.5},
		{"numeric string with spaces", `" 7 "`, 7},
		{"non-numeric string degrades to zero", `"abc"`, 0},
		{"boolean degrades to zero", `true`, 0},
		{"null degrades to zero", `null`, 0},
		{"object degrades to zero", `{"a":1}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n model.FlexibleNumber
			err := json.Unmarshal([]byte(tt.input), &n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, float64(n))
		})
	}
}

func TestFlexibleNumber_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(model.FlexibleNumber(12.5))
	require.NoError(t, err)
	assert.Equal(t, `12.5`, string(b))
}

func TestCreateInvoiceRequest_LenientNumericFields(t *testing.T) {
	body := `{
		"client_name": "Acme",
		"items": [{"name": "Widget", "quantity": "abc", "rate": "5", "total": 10}],
		"tax_percentage": "ten",
		"discount": "2"
	}`

	var req model.CreateInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.Len(t, req.Items, 1)
	assert.Equal(t, 0.0, float64(req.Items[0].Quantity))
	assert.Equal(t, 5.0, float64(req.Items[0].Rate))
	assert.Equal(t, 10.0, float64(req.Items[0].Total))
	assert.Equal(t, 0.0, float64(req.TaxPercentage))
	assert.Equal(t, 2.0, float64(req.Discount))
}

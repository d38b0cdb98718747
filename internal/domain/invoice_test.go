package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invoicegen/invoice-generator-service/internal/domain"
)

func TestNewInvoice_ComputesTotals(t *testing.T) {
	items := []domain.LineItem{
		{Name: "Widget", Quantity: 2, Rate: 5, Total: 10},
		{Name: "Gadget", Quantity: 1, Rate: 15, Total: 15},
	}

	invoice := domain.NewInvoice("Acme Corp", items, 10, 5)

	assert.Equal(t, 25.0, invoice.Subtotal)
	assert.Equal(t, 2.0, invoice.TaxAmount) // (25 - 5) * 10%
	assert.Equal(t, 22.0, invoice.FinalTotal)
	assert.False(t, invoice.CreatedAt.IsZero())
}

func TestNewInvoice_ZeroTaxAndDiscountDefaults(t *testing.T) {
	items := []domain.LineItem{
		{Name: "Widget", Quantity: 2, Rate: 5, Total: 10},
	}

	invoice := domain.NewInvoice("Acme", items, 0, 0)

	assert.Equal(t, 10.0, invoice.Subtotal)
	assert.Equal(t, 0.0, invoice.TaxAmount)
	assert.Equal(t, 10.0, invoice.FinalTotal)
}

func TestCalculateTotals_IgnoresCallerSuppliedDerivedFields(t *testing.T) {
	invoice := &domain.Invoice{
		ClientName: "Acme",
		Items: []domain.LineItem{
			{Name: "Widget", Total: 10},
		},
		TaxPercentage: 10,
		// Caller-supplied derived values must be overwritten
		Subtotal:   999,
		TaxAmount:  999,
		FinalTotal: 999,
	}

	invoice.CalculateTotals()

	assert.Equal(t, 10.0, invoice.Subtotal)
	assert.Equal(t, 1.0, invoice.TaxAmount)
	assert.Equal(t, 11.0, invoice.FinalTotal)
}

func TestCalculateTotals_TrustsPerItemTotal(t *testing.T) {
	// quantity * rate would be 10, but the supplied total wins
	invoice := &domain.Invoice{
		Items: []domain.LineItem{
			{Name: "Widget", Quantity: 2, Rate: 5, Total: 42},
		},
	}

	invoice.CalculateTotals()

	assert.Equal(t, 42.0, invoice.Subtotal)
}

func TestAddLineItem(t *testing.T) {
	invoice := domain.NewInvoice("Acme", []domain.LineItem{{Name: "Widget", Total: 10}}, 0, 0)
	invoice.AddLineItem(domain.LineItem{Name: "Gadget", Total: 5})
	invoice.CalculateTotals()

	assert.Len(t, invoice.Items, 2)
	assert.Equal(t, 15.0, invoice.Subtotal)
}

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name   string
		latest string
		want   string
	}{
		{"no existing invoice", "", "INV-001"},
		{"increments numeric suffix", "INV-041", "INV-042"},
		{"first increment", "INV-001", "INV-002"},
		{"zero-pads to three digits", "INV-009", "INV-010"},
		{"unbounded past 999", "INV-999", "INV-1000"},
		{"continues past 1000", "INV-1000", "INV-1001"},
		{"non-numeric suffix falls back", "INV-abc", "INV-001"},
		{"missing separator falls back", "INV041", "INV-001"},
		{"empty suffix falls back", "INV-", "INV-001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NextInvoiceNumber(tt.latest))
		})
	}
}

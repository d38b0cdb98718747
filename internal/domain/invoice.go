package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem represents a single billable entry embedded in an invoice
type LineItem struct {
	Name     string  `bson:"name" json:"name"`
	Quantity float64 `bson:"quantity" json:"quantity"`
	Rate     float64 `bson:"rate" json:"rate"`
	Total    float64 `bson:"total" json:"total"`
}

// Invoice represents the core domain entity for a billing record
type Invoice struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	InvoiceNumber string             `bson:"invoice_number" json:"invoice_number"`
	ClientName    string             `bson:"client_name" json:"client_name"`
	Items         []LineItem         `bson:"items" json:"items"`
	TaxPercentage float64            `bson:"tax_percentage" json:"tax_percentage"`
	Discount      float64            `bson:"discount" json:"discount"`
	Subtotal      float64            `bson:"subtotal" json:"subtotal"`
	TaxAmount     float64            `bson:"tax_amount" json:"tax_amount"`
	FinalTotal    float64            `bson:"final_total" json:"final_total"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}

// NewInvoice creates an invoice with computed totals and a creation timestamp.
// The invoice number is assigned separately by the service layer.
func NewInvoice(clientName string, items []LineItem, taxPercentage, discount float64) *Invoice {
	invoice := &Invoice{
		ClientName:    clientName,
		Items:         items,
		TaxPercentage: taxPercentage,
		Discount:      discount,
		CreatedAt:     time.Now(),
	}
	invoice.CalculateTotals()
	return invoice
}

// AddLineItem appends a new line item to the invoice
func (i *Invoice) AddLineItem(item LineItem) {
	i.Items = append(i.Items, item)
}

// CalculateTotals recomputes subtotal, tax amount, and final total from the
// line items. The per-item total is trusted as supplied; quantity and rate are
// not cross-checked against it.
func (i *Invoice) CalculateTotals() {
	var subtotal float64
	for _, item := range i.Items {
		subtotal += item.Total
	}
	i.Subtotal = subtotal
	i.TaxAmount = (i.Subtotal - i.Discount) * (i.TaxPercentage / 100)
	i.FinalTotal = (i.Subtotal - i.Discount) + i.TaxAmount
}

package model

import (
	"strings"

	"github.com/invoicegen/invoice-generator-service/internal/domain"
)

// LineItemRequest represents one billable entry in an invoice creation request
type LineItemRequest struct {
	Name     string         `json:"name"`
	Quantity FlexibleNumber `json:"quantity"`
	Rate     FlexibleNumber `json:"rate"`
	Total    FlexibleNumber `json:"total"`
}

// CreateInvoiceRequest represents an incoming invoice creation request.
// Numeric fields accept numbers or numeric strings; anything else degrades to
// zero rather than rejecting the request.
type CreateInvoiceRequest struct {
	ClientName    string            `json:"client_name"`
	Items         []LineItemRequest `json:"items"`
	TaxPercentage FlexibleNumber    `json:"tax_percentage"`
	Discount      FlexibleNumber    `json:"discount"`
}

// Validate checks the structural requirements of the request and returns a
// map of field name to message for every violation found.
func (r *CreateInvoiceRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if strings.TrimSpace(r.ClientName) == "" {
		errors["client_name"] = "Client name is required"
	}
	if len(r.Items) == 0 {
		errors["items"] = "At least one item is required"
	}
	return errors
}

// ToDomain converts the request to a domain invoice with computed totals
func (r *CreateInvoiceRequest) ToDomain() *domain.Invoice {
	items := make([]domain.LineItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = domain.LineItem{
			Name:     item.Name,
			Quantity: float64(item.Quantity),
			Rate:     float64(item.Rate),
			Total:    float64(item.Total),
		}
	}
	return domain.NewInvoice(r.ClientName, items, float64(r.TaxPercentage), float64(r.Discount))
}

// CreateInvoiceResponse represents the response to a successful invoice creation
type CreateInvoiceResponse struct {
	Message   string          `json:"message"`
	InvoiceID string          `json:"invoice_id"`
	Invoice   *domain.Invoice `json:"invoice"`
}

// PDFStubResponse wraps an invoice in a placeholder acknowledgment until a
// PDF rendering library is integrated.
type PDFStubResponse struct {
	Message string          `json:"message"`
	Invoice *domain.Invoice `json:"invoice"`
}

package repository

import (
	"context"
	"errors"

	"github.com/invoicegen/invoice-generator-service/internal/domain"
)

// ErrInvoiceNotFound is returned when no invoice matches the given identifier.
// A syntactically malformed identifier is reported the same way.
var ErrInvoiceNotFound = errors.New("invoice not found")

// InvoiceRepository defines the interface for invoice data storage operations
type InvoiceRepository interface {
	// CreateInvoice stores a new invoice and returns the assigned identifier
	// as an opaque string
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (string, error)

	// GetInvoiceByID retrieves an invoice by its identifier
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves all invoices, newest first
	ListInvoices(ctx context.Context) ([]*domain.Invoice, error)

	// FindByClientName retrieves invoices whose client name contains the
	// given pattern, case-insensitively, newest first
	FindByClientName(ctx context.Context, pattern string) ([]*domain.Invoice, error)

	// LatestInvoiceNumber returns the greatest stored invoice number, or an
	// empty string when the collection is empty
	LatestInvoiceNumber(ctx context.Context) (string, error)
}

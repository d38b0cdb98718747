package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/invoicegen/invoice-generator-service/internal/domain"
	"github.com/invoicegen/invoice-generator-service/internal/repository"
)

// Validation errors surfaced to the caller as client errors
var (
	ErrClientNameRequired = errors.New("missing required field: client_name")
	ErrNoItems            = errors.New("invoice must have at least one item")
)

// InvoiceService defines the interface for invoice business logic
type InvoiceService interface {
	// CreateInvoice validates the invoice, recomputes its derived totals,
	// allocates an invoice number if one is not set, and persists it
	CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error)

	// GetInvoiceByID retrieves a single invoice
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves all invoices, optionally filtered by a
	// case-insensitive client name substring
	ListInvoices(ctx context.Context, clientFilter string) ([]*domain.Invoice, error)
}

// InvoiceServiceImpl implements the InvoiceService interface
type InvoiceServiceImpl struct {
	repository repository.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(repo repository.InvoiceRepository) *InvoiceServiceImpl {
	return &InvoiceServiceImpl{
		repository: repo,
	}
}

// CreateInvoice persists a new invoice after recomputing its derived fields.
// Client-supplied values for subtotal, tax amount, and final total are never
// trusted; they are always recalculated from the line items.
func (s *InvoiceServiceImpl) CreateInvoice(ctx context.Context, invoice *domain.Invoice) (*domain.Invoice, error) {
	if invoice.ClientName == "" {
		return nil, ErrClientNameRequired
	}
	if len(invoice.Items) == 0 {
		return nil, ErrNoItems
	}

	invoice.CalculateTotals()

	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now()
	}

	if invoice.InvoiceNumber == "" {
		invoice.InvoiceNumber = s.allocateInvoiceNumber(ctx)
	}

	invoiceID, err := s.repository.CreateInvoice(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	log.Printf("Invoice %s saved with ID: %s", invoice.InvoiceNumber, invoiceID)
	return invoice, nil
}

// allocateInvoiceNumber derives the next invoice number from the greatest
// stored one. This is a read-then-write without a serialization point, so
// concurrent creations may race and produce duplicate numbers; uniqueness is
// best-effort and not enforced by a constraint.
func (s *InvoiceServiceImpl) allocateInvoiceNumber(ctx context.Context) string {
	latest, err := s.repository.LatestInvoiceNumber(ctx)
	if err != nil {
		log.Printf("Failed to query latest invoice number, falling back to %s: %v", domain.FirstInvoiceNumber, err)
		return domain.FirstInvoiceNumber
	}
	return domain.NextInvoiceNumber(latest)
}

// GetInvoiceByID retrieves a single invoice by its identifier
func (s *InvoiceServiceImpl) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.repository.GetInvoiceByID(ctx, invoiceID)
}

// ListInvoices retrieves invoices, filtered by client name when a filter is
// supplied
func (s *InvoiceServiceImpl) ListInvoices(ctx context.Context, clientFilter string) ([]*domain.Invoice, error) {
	if clientFilter != "" {
		return s.repository.FindByClientName(ctx, clientFilter)
	}
	return s.repository.ListInvoices(ctx)
}

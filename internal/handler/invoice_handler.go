package handler

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/invoicegen/invoice-generator-service/internal/model"
	"github.com/invoicegen/invoice-generator-service/internal/repository"
	"github.com/invoicegen/invoice-generator-service/internal/service"
)

// InvoiceHandler handles HTTP requests for invoice operations
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
	}
}

// RegisterRoutes registers the handler's routes with the given router
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine, middlewares ...gin.HandlerFunc) {
	group := router.Group("/v1/invoices", middlewares...)
	group.POST("", h.CreateInvoice)
	group.GET("", h.ListInvoices)
	group.GET("/:id", h.GetInvoice)
	group.GET("/generate-pdf/:id", h.GeneratePDF)
}

// CreateInvoice handles the POST /v1/invoices endpoint
// @Summary Create a new invoice
// @Description Create an invoice with computed totals and an allocated invoice number
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.CreateInvoiceRequest true "Invoice data"
// @Success 201 {object} model.CreateInvoiceResponse "Invoice created successfully"
// @Failure 400 {object} model.ErrorResponse "Missing required fields"
// @Failure 500 {object} model.ErrorResponse "Store failure"
// @Router /v1/invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req model.CreateInvoiceRequest
	if err := bindJSON(c, &req); err != nil {
		respondBadRequest(c, ErrInvalidInput)
		return
	}

	// Validate required fields before touching the model
	if validationErrors := req.Validate(); len(validationErrors) > 0 {
		field, message := "items", validationErrors["items"]
		if msg, ok := validationErrors["client_name"]; ok {
			field, message = "client_name", msg
		}
		respondBadRequest(c, message, newErrorDetail(field, message))
		return
	}

	log.Printf("Received invoice creation request for client: %s", req.ClientName)

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, service.ErrClientNameRequired) || errors.Is(err, service.ErrNoItems) {
			respondBadRequest(c, err.Error())
			return
		}
		log.Printf("Failed to save invoice: %v", err)
		respondInternalServerError(c, "Failed to save invoice - database error")
		return
	}

	respondCreated(c, model.CreateInvoiceResponse{
		Message:   "Invoice created successfully",
		InvoiceID: invoice.ID.Hex(),
		Invoice:   invoice,
	})
}

// ListInvoices handles the GET /v1/invoices endpoint
// @Summary List invoices
// @Description Get all invoices, newest first, optionally filtered by client name substring
// @Tags invoices
// @Produce json
// @Param client query string false "Case-insensitive client name filter"
// @Success 200 {array} domain.Invoice "Invoices"
// @Failure 500 {object} model.ErrorResponse "Store failure"
// @Router /v1/invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	clientFilter := c.Query("client")

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), clientFilter)
	if err != nil {
		log.Printf("Failed to list invoices: %v", err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, invoices)
}

// GetInvoice handles the GET /v1/invoices/:id endpoint
// @Summary Get an invoice
// @Description Get a single invoice by its identifier
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} domain.Invoice "Invoice"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Store failure"
// @Router /v1/invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	invoiceID := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			respondNotFound(c, "Invoice not found")
			return
		}
		log.Printf("Failed to retrieve invoice %s: %v", invoiceID, err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, invoice)
}

// GeneratePDF handles the GET /v1/invoices/generate-pdf/:id endpoint.
// Document rendering is not integrated yet; the endpoint returns the invoice
// wrapped in a placeholder acknowledgment.
// @Summary Generate a PDF for an invoice
// @Description Placeholder endpoint returning the invoice until a PDF renderer is integrated
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} model.PDFStubResponse "Placeholder payload"
// @Failure 404 {object} model.ErrorResponse "Invoice not found"
// @Failure 500 {object} model.ErrorResponse "Store failure"
// @Router /v1/invoices/generate-pdf/{id} [get]
func (h *InvoiceHandler) GeneratePDF(c *gin.Context) {
	invoiceID := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			respondNotFound(c, "Invoice not found")
			return
		}
		log.Printf("Failed to retrieve invoice %s: %v", invoiceID, err)
		respondInternalServerError(c, ErrInternalServer)
		return
	}

	respondOK(c, model.PDFStubResponse{
		Message: "PDF generation endpoint (renderer not yet integrated)",
		Invoice: invoice,
	})
}

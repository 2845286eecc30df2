package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// salesHandler handles HTTP requests for the sales journal.
type salesHandler struct {
	salesService portssvc.SalesJournalSvcFacade
}

// newSalesHandler creates a new salesHandler.
func newSalesHandler(salesService portssvc.SalesJournalSvcFacade) *salesHandler {
	return &salesHandler{salesService: salesService}
}

func (h *salesHandler) book(c *gin.Context, creditNote bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreateSalesInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for sales document", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	book := h.salesService.CreateSalesInvoiceEntry
	action := "booking sales invoice"
	if creditNote {
		book = h.salesService.CreateCreditNoteEntry
		action = "booking credit note"
	}

	entry, err := book(c.Request.Context(), companyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, action)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// createSalesInvoice books an issued customer invoice.
func (h *salesHandler) createSalesInvoice(c *gin.Context) {
	h.book(c, false)
}

// createCreditNote books a credit note mirroring an invoice.
func (h *salesHandler) createCreditNote(c *gin.Context) {
	h.book(c, true)
}

// registerSalesRoutes registers sales journal routes under a company group.
func registerSalesRoutes(group *gin.RouterGroup, salesService portssvc.SalesJournalSvcFacade) {
	h := newSalesHandler(salesService)

	invoices := group.Group("/sales-invoices")
	{
		invoices.POST("", h.createSalesInvoice)
		invoices.POST("/credit-notes", h.createCreditNote)
	}
}

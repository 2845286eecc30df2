package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// purchaseHandler handles HTTP requests for the purchase journal.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseJournalSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(purchaseService portssvc.PurchaseJournalSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: purchaseService}
}

// createPurchaseInvoice books a received supplier invoice.
func (h *purchaseHandler) createPurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createPurchaseInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.purchaseService.CreatePurchaseInvoiceEntry(c.Request.Context(), companyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "booking purchase invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// recordInvoicePayment books the cash-VAT transfer for a payment.
func (h *purchaseHandler) recordInvoicePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.RecordPurchasePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordInvoicePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.purchaseService.RecordInvoicePayment(c.Request.Context(), companyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "recording invoice payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// registerPurchaseRoutes registers purchase journal routes under a company group.
func registerPurchaseRoutes(group *gin.RouterGroup, purchaseService portssvc.PurchaseJournalSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	invoices := group.Group("/purchase-invoices")
	{
		invoices.POST("", h.createPurchaseInvoice)
		invoices.POST("/payments", h.recordInvoicePayment)
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashHandler handles HTTP requests for cash registers and their journal.
type cashHandler struct {
	cashService portssvc.CashJournalSvcFacade
}

// newCashHandler creates a new cashHandler.
func newCashHandler(cashService portssvc.CashJournalSvcFacade) *cashHandler {
	return &cashHandler{cashService: cashService}
}

// createCashRegister registers a cash register carrier.
func (h *cashHandler) createCashRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreateCashRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createCashRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	register, err := h.cashService.CreateCashRegister(c.Request.Context(), companyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "creating cash register")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashRegisterResponse(register))
}

// getCashRegister retrieves one register with its current balance.
func (h *cashHandler) getCashRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	register, err := h.cashService.GetCashRegister(c.Request.Context(), c.Param("company_id"), c.Param("cash_register_id"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieving cash register")
		return
	}

	c.JSON(http.StatusOK, dto.ToCashRegisterResponse(register))
}

// listCashRegisters retrieves all registers of the company.
func (h *cashHandler) listCashRegisters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	registers, err := h.cashService.ListCashRegisters(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondServiceError(c, logger, err, "listing cash registers")
		return
	}

	responses := make([]dto.CashRegisterResponse, len(registers))
	for i := range registers {
		responses[i] = dto.ToCashRegisterResponse(&registers[i])
	}
	c.JSON(http.StatusOK, gin.H{"cashRegisters": responses})
}

func (h *cashHandler) recordMovement(c *gin.Context, receipt bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	cashRegisterID := c.Param("cash_register_id")

	var req dto.RecordCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for cash movement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	record := h.cashService.RecordCashPayment
	if receipt {
		record = h.cashService.RecordCashReceipt
	}
	txn, err := record(c.Request.Context(), companyID, cashRegisterID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "recording cash movement")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashTransactionResponse(*txn))
}

// recordCashReceipt journals money coming into the register.
func (h *cashHandler) recordCashReceipt(c *gin.Context) {
	h.recordMovement(c, true)
}

// recordCashPayment journals money leaving the register.
func (h *cashHandler) recordCashPayment(c *gin.Context) {
	h.recordMovement(c, false)
}

// recordCashCount books an overage or shortage from a physical count.
func (h *cashHandler) recordCashCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	cashRegisterID := c.Param("cash_register_id")

	var req dto.RecordCashCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordCashCount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.cashService.RecordCashCount(c.Request.Context(), companyID, cashRegisterID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "recording cash count")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashTransactionResponse(*txn))
}

// listCashTransactions pages through the register's transaction trail.
func (h *cashHandler) listCashTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.cashService.ListCashTransactions(c.Request.Context(), c.Param("company_id"), c.Param("cash_register_id"), params)
	if err != nil {
		respondServiceError(c, logger, err, "listing cash transactions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// registerCashRoutes registers cash journal routes under a company group.
func registerCashRoutes(group *gin.RouterGroup, cashService portssvc.CashJournalSvcFacade) {
	h := newCashHandler(cashService)

	registers := group.Group("/cash-registers")
	{
		registers.POST("", h.createCashRegister)
		registers.GET("", h.listCashRegisters)
		registers.GET("/:cash_register_id", h.getCashRegister)
		registers.POST("/:cash_register_id/receipts", h.recordCashReceipt)
		registers.POST("/:cash_register_id/payments", h.recordCashPayment)
		registers.POST("/:cash_register_id/counts", h.recordCashCount)
		registers.GET("/:cash_register_id/transactions", h.listCashTransactions)
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests for bank accounts and their journal.
type bankHandler struct {
	bankService portssvc.BankJournalSvcFacade
}

// newBankHandler creates a new bankHandler.
func newBankHandler(bankService portssvc.BankJournalSvcFacade) *bankHandler {
	return &bankHandler{bankService: bankService}
}

// createBankAccount registers a bank account carrier.
func (h *bankHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.bankService.CreateBankAccount(c.Request.Context(), companyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "creating bank account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account))
}

// getBankAccount retrieves one bank account with its current balance.
func (h *bankHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.bankService.GetBankAccount(c.Request.Context(), c.Param("company_id"), c.Param("bank_account_id"))
	if err != nil {
		respondServiceError(c, logger, err, "retrieving bank account")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account))
}

// listBankAccounts retrieves all bank accounts of the company.
func (h *bankHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.bankService.ListBankAccounts(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondServiceError(c, logger, err, "listing bank accounts")
		return
	}

	responses := make([]dto.BankAccountResponse, len(accounts))
	for i := range accounts {
		responses[i] = dto.ToBankAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, gin.H{"bankAccounts": responses})
}

// recordBankTransaction journals one bank statement event.
func (h *bankHandler) recordBankTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	bankAccountID := c.Param("bank_account_id")

	var req dto.RecordBankTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordBankTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.bankService.RecordBankTransaction(c.Request.Context(), companyID, bankAccountID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "recording bank transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankTransactionResponse(*txn))
}

// recordTransfer books both legs of an internal transfer.
func (h *bankHandler) recordTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.RecordBankTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for recordTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	legs, err := h.bankService.RecordTransfer(c.Request.Context(), companyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "recording bank transfer")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"legs": dto.ToBankTransactionResponses(legs)})
}

// listBankTransactions pages through the account's transaction trail.
func (h *bankHandler) listBankTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	page, err := h.bankService.ListBankTransactions(c.Request.Context(), c.Param("company_id"), c.Param("bank_account_id"), params)
	if err != nil {
		respondServiceError(c, logger, err, "listing bank transactions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// registerBankRoutes registers bank journal routes under a company group.
func registerBankRoutes(group *gin.RouterGroup, bankService portssvc.BankJournalSvcFacade) {
	h := newBankHandler(bankService)

	accounts := group.Group("/bank-accounts")
	{
		accounts.POST("", h.createBankAccount)
		accounts.GET("", h.listBankAccounts)
		accounts.GET("/:bank_account_id", h.getBankAccount)
		accounts.POST("/:bank_account_id/transactions", h.recordBankTransaction)
		accounts.GET("/:bank_account_id/transactions", h.listBankTransactions)
	}
	group.POST("/bank-transfers", h.recordTransfer)
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/dto"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// periodHandler handles HTTP requests for accounting periods.
type periodHandler struct {
	periodService portssvc.PeriodSvcFacade
}

// newPeriodHandler creates a new periodHandler.
func newPeriodHandler(periodService portssvc.PeriodSvcFacade) *periodHandler {
	return &periodHandler{periodService: periodService}
}

// createPeriod opens a new accounting period.
func (h *periodHandler) createPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	var req dto.CreatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for createPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, err := h.periodService.CreatePeriod(c.Request.Context(), companyID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "creating accounting period")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPeriodResponse(period))
}

// listPeriods retrieves all periods of the company.
func (h *periodHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	periods, err := h.periodService.ListPeriods(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondServiceError(c, logger, err, "listing accounting periods")
		return
	}

	responses := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = dto.ToPeriodResponse(&periods[i])
	}
	c.JSON(http.StatusOK, gin.H{"periods": responses})
}

func (h *periodHandler) transition(c *gin.Context, action string, apply func(ctx *gin.Context, companyID, periodID, actorID string) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")
	periodID := c.Param("period_id")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := apply(c, companyID, periodID, actorID); err != nil {
		respondServiceError(c, logger, err, action)
		return
	}

	c.Status(http.StatusNoContent)
}

// closePeriod soft-closes an open period.
func (h *periodHandler) closePeriod(c *gin.Context) {
	h.transition(c, "closing accounting period", func(ctx *gin.Context, companyID, periodID, actorID string) error {
		return h.periodService.ClosePeriod(ctx.Request.Context(), companyID, periodID, actorID)
	})
}

// lockPeriod finalizes a period for good.
func (h *periodHandler) lockPeriod(c *gin.Context) {
	h.transition(c, "locking accounting period", func(ctx *gin.Context, companyID, periodID, actorID string) error {
		return h.periodService.LockPeriod(ctx.Request.Context(), companyID, periodID, actorID)
	})
}

// reopenPeriod reverts a soft close.
func (h *periodHandler) reopenPeriod(c *gin.Context) {
	h.transition(c, "reopening accounting period", func(ctx *gin.Context, companyID, periodID, actorID string) error {
		return h.periodService.ReopenPeriod(ctx.Request.Context(), companyID, periodID, actorID)
	})
}

// registerPeriodRoutes registers accounting period routes under a company group.
func registerPeriodRoutes(group *gin.RouterGroup, periodService portssvc.PeriodSvcFacade) {
	h := newPeriodHandler(periodService)

	periods := group.Group("/periods")
	{
		periods.POST("", h.createPeriod)
		periods.GET("", h.listPeriods)
		periods.POST("/:period_id/close", h.closePeriod)
		periods.POST("/:period_id/lock", h.lockPeriod)
		periods.POST("/:period_id/reopen", h.reopenPeriod)
	}
}

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/contazen/erp-ledger/internal/core/ports/services"
	"github.com/contazen/erp-ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// numberingHandler handles HTTP requests for document number sequences.
type numberingHandler struct {
	numberingService portssvc.NumberingSvcFacade
}

// newNumberingHandler creates a new numberingHandler.
func newNumberingHandler(numberingService portssvc.NumberingSvcFacade) *numberingHandler {
	return &numberingHandler{numberingService: numberingService}
}

// previewNextNumber returns the number the next posting on the series would
// receive. The value is advisory; only a posted entry consumes it.
func (h *numberingHandler) previewNextNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	companyID := c.Param("company_id")

	series := c.Query("series")
	if series == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "series is required"})
		return
	}

	year := time.Now().UTC().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number"})
			return
		}
		year = parsed
	}

	number, err := h.numberingService.PreviewNextNumber(c.Request.Context(), companyID, series, year)
	if err != nil {
		respondServiceError(c, logger, err, "previewing document number")
		return
	}

	c.JSON(http.StatusOK, gin.H{"series": series, "year": year, "nextNumber": number})
	logger.Debug("Document number previewed", slog.String("series", series), slog.Int("year", year))
}

// registerNumberingRoutes sets up the numbering routes on the company group.
func registerNumberingRoutes(group *gin.RouterGroup, numberingService portssvc.NumberingSvcFacade) {
	h := newNumberingHandler(numberingService)
	group.GET("/numbering/next", h.previewNextNumber)
}

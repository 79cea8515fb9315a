package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/currency_rates_app/internal/apperrors"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/ratewise/currency_rates_app/internal/dto"
	"github.com/ratewise/currency_rates_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// conversionHandler handles HTTP requests for amount conversion.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// RegisterConversionRoutes registers the conversion route.
func RegisterConversionRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)
	rg.GET("/convert", h.convert)
}

// convert godoc
// @Summary Convert an amount between two currencies
// @Description Converts an amount from one currency to another using their latest rates
// @Tags conversion
// @Produce  json
// @Param   from query int true "Source currency ID"
// @Param   to query int true "Target currency ID"
// @Param   amount query number true "Amount to convert (must be positive)"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input or non-positive amount"
// @Failure 404 {object} map[string]string "Currency not found or no rate available"
// @Failure 500 {object} map[string]string "Conversion failed"
// @Router /convert [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fromID, err := strconv.ParseInt(c.Query("from"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' currency id"})
		return
	}
	toID, err := strconv.ParseInt(c.Query("to"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' currency id"})
		return
	}
	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		logger.Warn("Non-numeric conversion amount", slog.String("amount", c.Query("amount")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	logger = logger.With(slog.Int64("from", fromID), slog.Int64("to", toID), slog.Any("amount", amount))
	logger.Info("Received conversion request")

	result, err := h.conversionService.Convert(c.Request.Context(), fromID, toID, amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput):
			logger.Warn("Invalid conversion input", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNoRateAvailable):
			logger.Warn("No rate available for conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Currency not found for conversion", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			logger.Error("Conversion failed in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
		}
		return
	}

	logger.Info("Conversion completed", slog.Any("result", result.Result))
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}

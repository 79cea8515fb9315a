package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/currency_rates_app/internal/apperrors"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/ratewise/currency_rates_app/internal/dto"
	"github.com/ratewise/currency_rates_app/internal/middleware"
)

// dateLayout is the wire format for effective dates in query parameters.
const dateLayout = "2006-01-02"

// rateHandler handles HTTP requests related to rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// RegisterRateRoutes registers routes related to rates.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("", h.createRate)
		rates.GET("", h.listRates)
		rates.GET("/by-abbreviation", h.getRatesByAbbreviationAndDate)
		rates.POST("/bulk", h.getBulkRates)
		rates.GET("/:rateID", h.getRateByID)
		rates.PUT("/:rateID", h.updateRate)
		rates.DELETE("/:rateID", h.deleteRate)
	}
}

// createRate godoc
// @Summary Create a new rate
// @Description Adds a new dated rate for a currency
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateRateRequest true "Rate details"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Owning currency not found"
// @Failure 500 {object} map[string]string "Failed to create rate"
// @Router /rates [post]
func (h *rateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create rate",
		slog.Int64("currency_id", req.CurrencyID),
		slog.Any("value", req.Value),
		slog.Time("effective_date", req.EffectiveDate),
	)

	createdRate, err := h.rateService.CreateRate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Owning currency not found", slog.Int64("currency_id", req.CurrencyID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate"})
		}
		return
	}

	logger.Info("Rate created successfully", slog.Int64("rate_id", createdRate.RateID))
	c.JSON(http.StatusCreated, dto.ToRateResponse(createdRate))
}

// listRates godoc
// @Summary List all rates
// @Description Retrieves a list of all rates, newest effective date first
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.RateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list rates")

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	logger.Info("Rates listed successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// getRateByID godoc
// @Summary Get a rate by id
// @Description Retrieves a rate by its id
// @Tags rates
// @Produce  json
// @Param   rateID path int true "Rate ID"
// @Success 200 {object} dto.RateResponse
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve rate"
// @Router /rates/{rateID} [get]
func (h *rateHandler) getRateByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID, ok := parseIDParam(c, "rateID")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("rate_id", rateID))
	logger.Info("Received request to get rate by id")

	rate, err := h.rateService.GetRateByID(c.Request.Context(), rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rate not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to get rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rate"})
		}
		return
	}

	logger.Info("Rate retrieved successfully")
	c.JSON(http.StatusOK, dto.ToRateResponse(rate))
}

// updateRate godoc
// @Summary Update a rate
// @Description Updates the value and effective date of an existing rate
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rateID path int true "Rate ID"
// @Param   rate body dto.UpdateRateRequest true "Rate details"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to update rate"
// @Router /rates/{rateID} [put]
func (h *rateHandler) updateRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID, ok := parseIDParam(c, "rateID")
	if !ok {
		return
	}

	var req dto.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("rate_id", rateID))
	logger.Info("Received request to update rate")

	updated, err := h.rateService.UpdateRate(c.Request.Context(), rateID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rate not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate"})
		}
		return
	}

	logger.Info("Rate updated successfully")
	c.JSON(http.StatusOK, dto.ToRateResponse(updated))
}

// deleteRate godoc
// @Summary Delete a rate
// @Description Deletes a rate by id
// @Tags rates
// @Produce  json
// @Param   rateID path int true "Rate ID"
// @Success 204 "Rate deleted successfully"
// @Failure 404 {object} map[string]string "Rate not found"
// @Failure 500 {object} map[string]string "Failed to delete rate"
// @Router /rates/{rateID} [delete]
func (h *rateHandler) deleteRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID, ok := parseIDParam(c, "rateID")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("rate_id", rateID))
	logger.Info("Received request to delete rate")

	if err := h.rateService.DeleteRate(c.Request.Context(), rateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Rate not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			logger.Error("Failed to delete rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate"})
		}
		return
	}

	logger.Info("Rate deleted successfully")
	c.Status(http.StatusNoContent)
}

// getRatesByAbbreviationAndDate godoc
// @Summary Get rates by abbreviation and date
// @Description Retrieves the rates of a currency for an exact effective date; empty list when nothing matches
// @Tags rates
// @Produce  json
// @Param   abbreviation query string true "Currency abbreviation (3 letters)"
// @Param   date query string true "Effective date (YYYY-MM-DD)"
// @Success 200 {array} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to retrieve rates"
// @Router /rates/by-abbreviation [get]
func (h *rateHandler) getRatesByAbbreviationAndDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	abbreviation := c.Query("abbreviation")
	if len(abbreviation) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency abbreviation must be 3 letters"})
		return
	}
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	logger = logger.With(slog.String("abbreviation", abbreviation), slog.Time("date", date))
	logger.Info("Received request to get rates by abbreviation and date")

	rates, err := h.rateService.GetRatesByAbbreviationAndDate(c.Request.Context(), abbreviation, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		return
	}

	logger.Info("Rates retrieved successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// getBulkRates godoc
// @Summary Get latest rates for multiple currencies
// @Description Retrieves the latest rate per abbreviation, silently skipping unknown ones
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   abbreviations body dto.BulkRatesRequest true "Currency abbreviations"
// @Success 200 {array} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to retrieve rates"
// @Router /rates/bulk [post]
func (h *rateHandler) getBulkRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BulkRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GetBulkRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request for bulk rates", slog.Int("count", len(req.Abbreviations)))

	rates, err := h.rateService.GetBulkRates(c.Request.Context(), req.Abbreviations)
	if err != nil {
		logger.Error("Failed to get bulk rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rates"})
		return
	}

	logger.Info("Bulk rates retrieved successfully", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

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
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	rateService     portssvc.RateReaderSvc
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade, rs portssvc.RateReaderSvc) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
		rateService:     rs,
	}
}

// RegisterCurrencyRoutes registers routes related to currencies.
func RegisterCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, rateService portssvc.RateReaderSvc) {
	h := newCurrencyHandler(currencyService, rateService)

	currencies := rg.Group("/currencies")
	{
		currencies.POST("", h.createCurrency)
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:currencyID", h.getCurrencyByID)
		currencies.GET("/:currencyID/rates", h.listCurrencyRates)
		currencies.PUT("/:currencyID", h.updateCurrency)
		currencies.DELETE("/:currencyID", h.deleteCurrency)
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// createCurrency godoc
// @Summary Create a new currency
// @Description Adds a new currency to the reference data
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Abbreviation already exists"
// @Failure 500 {object} map[string]string "Failed to create currency"
// @Router /currencies [post]
func (h *currencyHandler) createCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received request to create currency", slog.String("abbreviation", req.Abbreviation))

	createdCurrency, err := h.currencyService.CreateCurrency(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate currency", slog.String("abbreviation", req.Abbreviation))
			c.JSON(http.StatusConflict, gin.H{"error": "Currency abbreviation '" + req.Abbreviation + "' already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create currency"})
		}
		return
	}

	logger.Info("Currency created successfully", slog.Int64("currency_id", createdCurrency.CurrencyID))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(createdCurrency))
}

// getCurrencyByID godoc
// @Summary Get a currency by id
// @Description Retrieves details for a specific currency
// @Tags currencies
// @Produce  json
// @Param   currencyID path int true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Router /currencies/{currencyID} [get]
func (h *currencyHandler) getCurrencyByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID, ok := parseIDParam(c, "currencyID")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("currency_id", currencyID))
	logger.Info("Received request to get currency by id")

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	logger.Info("Currency retrieved successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves a list of all available currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list currencies")

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)))
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listCurrencyRates godoc
// @Summary List rates of a currency
// @Description Retrieves the rate history of a currency, newest first
// @Tags currencies
// @Produce  json
// @Param   currencyID path int true "Currency ID"
// @Success 200 {array} dto.RateResponse
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /currencies/{currencyID}/rates [get]
func (h *currencyHandler) listCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID, ok := parseIDParam(c, "currencyID")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("currency_id", currencyID))
	logger.Info("Received request to list currency rates")

	if _, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		}
		return
	}

	rates, err := h.rateService.ListRatesByCurrencyID(c.Request.Context(), currencyID)
	if err != nil {
		logger.Error("Failed to list rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Updates an existing currency by id
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param   currencyID path int true "Currency ID"
// @Param   currency body dto.UpdateCurrencyRequest true "Currency details"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to update currency"
// @Router /currencies/{currencyID} [put]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID, ok := parseIDParam(c, "currencyID")
	if !ok {
		return
	}

	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("currency_id", currencyID))
	logger.Info("Received request to update currency")

	updated, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update currency"})
		}
		return
	}

	logger.Info("Currency updated successfully")
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(updated))
}

// deleteCurrency godoc
// @Summary Delete a currency
// @Description Deletes a currency by id together with its rates
// @Tags currencies
// @Produce  json
// @Param   currencyID path int true "Currency ID"
// @Success 204 "Currency deleted successfully"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to delete currency"
// @Router /currencies/{currencyID} [delete]
func (h *currencyHandler) deleteCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	currencyID, ok := parseIDParam(c, "currencyID")
	if !ok {
		return
	}

	logger = logger.With(slog.Int64("currency_id", currencyID))
	logger.Info("Received request to delete currency")

	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Currency not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to delete currency in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete currency"})
		}
		return
	}

	logger.Info("Currency deleted successfully")
	c.Status(http.StatusNoContent)
}

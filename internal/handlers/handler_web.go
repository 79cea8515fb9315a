package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/currency_rates_app/internal/apperrors"
	"github.com/ratewise/currency_rates_app/internal/core/domain"
	portssvc "github.com/ratewise/currency_rates_app/internal/core/ports/services"
	"github.com/ratewise/currency_rates_app/internal/dto"
	"github.com/ratewise/currency_rates_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// webHandler serves the server-rendered HTML views. Every form post calls the
// same service operation as the corresponding API endpoint and redirects;
// the handlers never reach past the service interfaces.
type webHandler struct {
	currencyService   portssvc.CurrencySvcFacade
	rateService       portssvc.RateSvcFacade
	conversionService portssvc.ConversionSvcFacade
}

// RegisterWebRoutes registers the HTML form routes.
func RegisterWebRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := &webHandler{
		currencyService:   services.Currency,
		rateService:       services.Rate,
		conversionService: services.Conversion,
	}

	r.GET("/currencies", h.listCurrencies)
	r.GET("/currencies/new", h.newCurrencyForm)
	r.POST("/currencies", h.createCurrency)
	r.GET("/currencies/:currencyID", h.viewCurrency)
	r.GET("/currencies/:currencyID/edit", h.editCurrencyForm)
	r.POST("/currencies/:currencyID", h.updateCurrency)
	r.POST("/currencies/:currencyID/delete", h.deleteCurrency)

	r.GET("/rates/new", h.newRateForm)
	r.POST("/rates", h.createRate)
	r.GET("/rates/:rateID/edit", h.editRateForm)
	r.POST("/rates/:rateID", h.updateRate)
	r.POST("/rates/:rateID/delete", h.deleteRate)

	r.GET("/convert", h.convertForm)
	r.POST("/convert", h.convert)
}

func (h *webHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.tmpl", gin.H{"Message": message})
}

func (h *webHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to list currencies for view", slog.String("error", err.Error()))
		h.renderError(c, http.StatusInternalServerError, "Failed to list currencies")
		return
	}
	c.HTML(http.StatusOK, "currency_list.tmpl", gin.H{"Currencies": currencies})
}

func (h *webHandler) newCurrencyForm(c *gin.Context) {
	c.HTML(http.StatusOK, "currency_new.tmpl", gin.H{})
}

func (h *webHandler) createCurrency(c *gin.Context) {
	req := dto.CreateCurrencyRequest{
		Name:         c.PostForm("name"),
		Abbreviation: c.PostForm("abbreviation"),
		Symbol:       c.PostForm("symbol"),
	}
	if _, err := h.currencyService.CreateCurrency(c.Request.Context(), req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDuplicate) {
			c.HTML(http.StatusBadRequest, "currency_new.tmpl", gin.H{"Error": err.Error(), "Form": req})
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to create currency")
		return
	}
	c.Redirect(http.StatusFound, "/currencies")
}

func (h *webHandler) viewCurrency(c *gin.Context) {
	currencyID, err := strconv.ParseInt(c.Param("currencyID"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid currency id")
		return
	}
	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Currency not found")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to load currency")
		return
	}
	rates, err := h.rateService.ListRatesByCurrencyID(c.Request.Context(), currencyID)
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "Failed to load rates")
		return
	}
	c.HTML(http.StatusOK, "currency_view.tmpl", gin.H{"Currency": currency, "Rates": rates})
}

func (h *webHandler) editCurrencyForm(c *gin.Context) {
	currencyID, err := strconv.ParseInt(c.Param("currencyID"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid currency id")
		return
	}
	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), currencyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Currency not found")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to load currency")
		return
	}
	c.HTML(http.StatusOK, "currency_edit.tmpl", gin.H{"Currency": currency})
}

func (h *webHandler) updateCurrency(c *gin.Context) {
	currencyID, err := strconv.ParseInt(c.Param("currencyID"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid currency id")
		return
	}
	req := dto.UpdateCurrencyRequest{
		Name:         c.PostForm("name"),
		Abbreviation: c.PostForm("abbreviation"),
		Symbol:       c.PostForm("symbol"),
	}
	if _, err := h.currencyService.UpdateCurrency(c.Request.Context(), currencyID, req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Currency not found")
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			currency := &domain.Currency{CurrencyID: currencyID, Name: req.Name, Abbreviation: req.Abbreviation, Symbol: req.Symbol}
			c.HTML(http.StatusBadRequest, "currency_edit.tmpl", gin.H{"Error": err.Error(), "Currency": currency})
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to update currency")
		return
	}
	c.Redirect(http.StatusFound, "/currencies")
}

func (h *webHandler) deleteCurrency(c *gin.Context) {
	currencyID, err := strconv.ParseInt(c.Param("currencyID"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid currency id")
		return
	}
	if err := h.currencyService.DeleteCurrency(c.Request.Context(), currencyID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Currency not found")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to delete currency")
		return
	}
	c.Redirect(http.StatusFound, "/currencies")
}

func (h *webHandler) newRateForm(c *gin.Context) {
	currencyID, err := strconv.ParseInt(c.Query("currencyID"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid currency id")
		return
	}
	c.HTML(http.StatusOK, "rate_new.tmpl", gin.H{"CurrencyID": currencyID})
}

func (h *webHandler) createRate(c *gin.Context) {
	req, ok := h.bindRateForm(c)
	if !ok {
		return
	}
	if _, err := h.rateService.CreateRate(c.Request.Context(), *req); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Currency not found")
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.HTML(http.StatusBadRequest, "rate_new.tmpl", gin.H{"Error": err.Error(), "CurrencyID": req.CurrencyID})
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to create rate")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/currencies/%d", req.CurrencyID))
}

func (h *webHandler) editRateForm(c *gin.Context) {
	rate, ok := h.loadRate(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "rate_edit.tmpl", gin.H{"Rate": rate})
}

func (h *webHandler) updateRate(c *gin.Context) {
	rate, ok := h.loadRate(c)
	if !ok {
		return
	}
	value, err := decimal.NewFromString(c.PostForm("value"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "rate_edit.tmpl", gin.H{"Error": "Invalid rate value", "Rate": rate})
		return
	}
	effectiveDate, err := time.Parse(dateLayout, c.PostForm("effectiveDate"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "rate_edit.tmpl", gin.H{"Error": "Invalid effective date, expected YYYY-MM-DD", "Rate": rate})
		return
	}
	req := dto.UpdateRateRequest{Value: value, EffectiveDate: effectiveDate}
	if _, err := h.rateService.UpdateRate(c.Request.Context(), rate.RateID, req); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.HTML(http.StatusBadRequest, "rate_edit.tmpl", gin.H{"Error": err.Error(), "Rate": rate})
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to update rate")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/currencies/%d", rate.CurrencyID))
}

func (h *webHandler) deleteRate(c *gin.Context) {
	rate, ok := h.loadRate(c)
	if !ok {
		return
	}
	if err := h.rateService.DeleteRate(c.Request.Context(), rate.RateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Rate not found")
			return
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to delete rate")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/currencies/%d", rate.CurrencyID))
}

func (h *webHandler) convertForm(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "Failed to list currencies")
		return
	}
	c.HTML(http.StatusOK, "convert.tmpl", gin.H{"Currencies": currencies})
}

func (h *webHandler) convert(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		h.renderError(c, http.StatusInternalServerError, "Failed to list currencies")
		return
	}

	renderFormError := func(message string) {
		c.HTML(http.StatusBadRequest, "convert.tmpl", gin.H{"Currencies": currencies, "Error": message})
	}

	fromID, err := strconv.ParseInt(c.PostForm("from"), 10, 64)
	if err != nil {
		renderFormError("Invalid 'from' currency")
		return
	}
	toID, err := strconv.ParseInt(c.PostForm("to"), 10, 64)
	if err != nil {
		renderFormError("Invalid 'to' currency")
		return
	}
	amount, err := decimal.NewFromString(c.PostForm("amount"))
	if err != nil {
		renderFormError("Invalid amount")
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), fromID, toID, amount)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidInput),
			errors.Is(err, apperrors.ErrNoRateAvailable),
			errors.Is(err, apperrors.ErrNotFound):
			renderFormError(err.Error())
		default:
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Conversion failed in view", slog.String("error", err.Error()))
			h.renderError(c, http.StatusInternalServerError, "Conversion failed")
		}
		return
	}

	c.HTML(http.StatusOK, "convert.tmpl", gin.H{
		"Currencies": currencies,
		"Result":     result,
	})
}

func (h *webHandler) bindRateForm(c *gin.Context) (*dto.CreateRateRequest, bool) {
	currencyID, err := strconv.ParseInt(c.PostForm("currencyID"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid currency id")
		return nil, false
	}
	value, err := decimal.NewFromString(c.PostForm("value"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "rate_new.tmpl", gin.H{"Error": "Invalid rate value", "CurrencyID": currencyID})
		return nil, false
	}
	effectiveDate, err := time.Parse(dateLayout, c.PostForm("effectiveDate"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "rate_new.tmpl", gin.H{"Error": "Invalid effective date, expected YYYY-MM-DD", "CurrencyID": currencyID})
		return nil, false
	}
	return &dto.CreateRateRequest{CurrencyID: currencyID, Value: value, EffectiveDate: effectiveDate}, true
}

func (h *webHandler) loadRate(c *gin.Context) (*domain.Rate, bool) {
	rateID, err := strconv.ParseInt(c.Param("rateID"), 10, 64)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid rate id")
		return nil, false
	}
	rate, err := h.rateService.GetRateByID(c.Request.Context(), rateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			h.renderError(c, http.StatusNotFound, "Rate not found")
			return nil, false
		}
		h.renderError(c, http.StatusInternalServerError, "Failed to load rate")
		return nil, false
	}
	return rate, true
}

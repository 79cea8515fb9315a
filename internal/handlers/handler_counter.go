package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/currency_rates_app/internal/middleware"
)

// counterHandler exposes the process-wide request counter.
type counterHandler struct {
	counter *middleware.RequestCounter
}

// registerCounterRoutes registers the counter routes.
func registerCounterRoutes(rg *gin.RouterGroup, counter *middleware.RequestCounter) {
	h := &counterHandler{counter: counter}

	rg.GET("/counter", h.getCounter)
	rg.POST("/counter/reset", h.resetCounter)
}

// getCounter godoc
// @Summary Get the request counter
// @Description Returns the number of requests handled since start or last reset
// @Tags counter
// @Produce  json
// @Success 200 {object} map[string]int64
// @Router /counter [get]
func (h *counterHandler) getCounter(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"count": h.counter.Count()})
}

// resetCounter godoc
// @Summary Reset the request counter
// @Description Resets the request counter to zero
// @Tags counter
// @Produce  json
// @Success 200 {object} map[string]int64
// @Router /counter/reset [post]
func (h *counterHandler) resetCounter(c *gin.Context) {
	h.counter.Reset()
	c.JSON(http.StatusOK, gin.H{"count": h.counter.Count()})
}

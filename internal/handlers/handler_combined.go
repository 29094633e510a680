package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
	"github.com/SscSPs/txn_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type combinedHandler struct {
	dashboardService portssvc.DashboardService
}

// RegisterCombinedRoutes registers the combined dashboard route on rg.
func RegisterCombinedRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardService) {
	registerBindingValidators()
	h := &combinedHandler{dashboardService: dashboardService}
	rg.GET("/combined", h.getCombined)
}

// getCombined godoc
// @Summary Listing and aggregations of a month
// @Description Returns the transaction page, statistics, bar chart and pie chart for the same parameters
// @Tags reports
// @Produce json
// @Param month query string true "Month name, e.g. March"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param rowsPerPage query int false "Rows per page, values above 100 are clamped to 100" default(10) minimum(1)
// @Param search query string false "Search text"
// @Success 200 {object} dto.CombinedResponse
// @Failure 500 {object} map[string]string "Invalid input or failed to build dashboard"
// @Router /combined [get]
func (h *combinedHandler) getCombined(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	// Every failure of the combined view, including bad input, is a 500.
	var q dto.CombinedQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Failed to bind query params", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	logger = logger.With(slog.String("month", q.Month))

	view, err := h.dashboardService.Dashboard(c.Request.Context(), q.Params())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToCombinedResponse(view))
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
	"github.com/SscSPs/txn_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the month aggregations
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers the statistics, bar chart and pie chart routes on rg.
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	registerBindingValidators()
	h := newReportingHandler(reportingService)

	rg.GET("/statistics", h.getStatistics)
	rg.GET("/barchart", h.getBarChart)
	rg.GET("/piechart", h.getPieChart)
}

// bindMonth binds the month query and returns a logger scoped to it. It
// writes the error response itself and reports false when binding fails.
func bindMonth(c *gin.Context) (dto.MonthQuery, *slog.Logger, bool) {
	logger := middleware.GetLoggerFromContext(c)
	var q dto.MonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, logger, err)
		return q, logger, false
	}
	return q, logger.With(slog.String("month", q.Month)), true
}

// getStatistics godoc
// @Summary Sales statistics of a month
// @Description Sums the sale amount and counts sold and unsold transactions of the month
// @Tags reports
// @Produce json
// @Param month query string true "Month name, e.g. March"
// @Success 200 {object} dto.StatisticsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute statistics"
// @Router /statistics [get]
func (h *reportingHandler) getStatistics(c *gin.Context) {
	q, logger, ok := bindMonth(c)
	if !ok {
		return
	}

	stats, err := h.reportingService.Statistics(c.Request.Context(), q.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, dto.ToStatisticsResponse(stats))
}

// getBarChart godoc
// @Summary Price histogram of a month
// @Description Counts the month's transactions in ten fixed price ranges, in range order
// @Tags reports
// @Produce json
// @Param month query string true "Month name, e.g. March"
// @Success 200 {object} map[string]int
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute bar chart"
// @Router /barchart [get]
func (h *reportingHandler) getBarChart(c *gin.Context) {
	q, logger, ok := bindMonth(c)
	if !ok {
		return
	}

	histogram, err := h.reportingService.PriceHistogram(c.Request.Context(), q.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute bar chart")
		return
	}

	c.JSON(http.StatusOK, dto.ToBarChartResponse(histogram))
}

// getPieChart godoc
// @Summary Category breakdown of a month
// @Description Counts the month's transactions per category
// @Tags reports
// @Produce json
// @Param month query string true "Month name, e.g. March"
// @Success 200 {array} dto.CategoryCountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to compute pie chart"
// @Router /piechart [get]
func (h *reportingHandler) getPieChart(c *gin.Context) {
	q, logger, ok := bindMonth(c)
	if !ok {
		return
	}

	counts, err := h.reportingService.CategoryBreakdown(c.Request.Context(), q.Month)
	if err != nil {
		respondError(c, logger, err, "Failed to compute pie chart")
		return
	}

	logger.Debug("Pie chart computed", slog.Int("categories", len(counts)))
	c.JSON(http.StatusOK, dto.ToPieChartResponse(counts))
}

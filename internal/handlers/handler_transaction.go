package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
	"github.com/SscSPs/txn_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for the paginated listing
type transactionHandler struct {
	transactionService portssvc.TransactionReaderSvc
}

func newTransactionHandler(ts portssvc.TransactionReaderSvc) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers the listing route on rg.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionReaderSvc) {
	registerBindingValidators()
	h := newTransactionHandler(transactionService)
	rg.GET("/transactions", h.listTransactions)
}

// listTransactions godoc
// @Summary List transactions of a month
// @Description Returns one page of the month's transactions whose title or description contains the search text, or whose price equals it
// @Tags transactions
// @Produce json
// @Param month query string true "Month name, e.g. March"
// @Param page query int false "Page number" default(1) minimum(1)
// @Param rowsPerPage query int false "Rows per page, values above 100 are clamped to 100" default(10) minimum(1)
// @Param search query string false "Search text"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}

	logger = logger.With(slog.String("month", params.Month))
	logger.Info("Received request to list transactions",
		slog.Int("page", params.Page),
		slog.Int("rows_per_page", params.RowsPerPage),
		slog.String("search", params.Search))

	page, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list transactions")
		return
	}

	logger.Info("Transactions listed successfully", slog.Int64("total", page.Total), slog.Int("count", len(page.Transactions)))
	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(page))
}

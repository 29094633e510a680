package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/txn_dashboard/internal/core/ports/services"
	"github.com/SscSPs/txn_dashboard/internal/dto"
	"github.com/SscSPs/txn_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type seedHandler struct {
	seedService portssvc.SeedSvc
}

// RegisterSeedRoutes registers the on-demand reseed route on rg.
func RegisterSeedRoutes(rg *gin.RouterGroup, seedService portssvc.SeedSvc) {
	h := &seedHandler{seedService: seedService}
	rg.POST("/seed", h.postSeed)
}

// postSeed godoc
// @Summary Reload the dataset
// @Description Fetches the remote dataset and replaces every stored transaction with it
// @Tags admin
// @Produce json
// @Success 200 {object} dto.SeedResponse
// @Failure 500 {object} map[string]string "Failed to seed"
// @Router /seed [post]
func (h *seedHandler) postSeed(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Received request to reseed transactions")

	inserted, err := h.seedService.Seed(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to seed transactions")
		return
	}

	logger.Info("Transactions reseeded", slog.Int("inserted", inserted))
	c.JSON(http.StatusOK, dto.SeedResponse{Inserted: inserted})
}

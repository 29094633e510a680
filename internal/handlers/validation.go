package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/SscSPs/txn_dashboard/internal/apperrors"
	"github.com/SscSPs/txn_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerBindingValidators adds the custom tags used by the query DTOs to
// gin's validator. Binding a struct with an unregistered tag panics, so every
// route registration calls this.
func registerBindingValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
			return domain.IsMonthName(fl.Field().String())
		})
	})
}

// respondError maps a service error onto the response status: invalid input
// is the caller's fault, everything else is ours.
func respondError(c *gin.Context, logger *slog.Logger, err error, msg string) {
	if errors.Is(err, apperrors.ErrInvalidInput) {
		logger.Warn(msg, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// respondBindError reports a query string that failed binding.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind query params", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
}

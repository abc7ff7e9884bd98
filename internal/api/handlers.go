package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tractionlens/plan-engine/internal/engine"
	"github.com/tractionlens/plan-engine/internal/models"
	"github.com/tractionlens/plan-engine/internal/utils"
)

// PlanCalculator is the service behaviour the handlers depend on.
type PlanCalculator interface {
	CalculatePlan(ctx context.Context, req models.PlanRequest) (models.ReverseCalculationResult, error)
}

// ReversePlanHandler handles POST /api/v1/plans/reverse.
func ReversePlanHandler(logger *slog.Logger, svc PlanCalculator) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		var dto PlanRequestDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}

		req := FromRequestDTO(dto)
		if req.CurrentScores == nil && req.ProfileID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "profile_id is required when current_scores are not supplied"})
			return
		}

		result, err := svc.CalculatePlan(c.Request.Context(), req)
		if err != nil {
			status, msg := mapError(err)
			if status >= http.StatusInternalServerError {
				logger.Error("reverse plan failed",
					slog.String("tenant_id", req.TenantID),
					slog.String("profile_id", req.ProfileID),
					slog.Any("error", err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}

		c.JSON(http.StatusOK, ToResultDTO(result))
	}
}

func mapError(err error) (int, string) {
	var validation *engine.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, validation.Error()
	}
	var app *utils.AppError
	if errors.As(err, &app) {
		return http.StatusBadGateway, "upstream profile service unavailable"
	}
	return http.StatusInternalServerError, "internal error"
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

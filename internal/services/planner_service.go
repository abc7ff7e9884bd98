package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/tractionlens/plan-engine/internal/engine"
	"github.com/tractionlens/plan-engine/internal/metrics"
	"github.com/tractionlens/plan-engine/internal/models"
	"github.com/tractionlens/plan-engine/internal/utils"
)

// ScoreSource supplies the current five-axis snapshot for a profile.
type ScoreSource interface {
	FetchCurrentScores(ctx context.Context, tenantID, profileID string) (models.ScoreMap, error)
}

// PlannerService sequences the single upstream score fetch and the reverse
// calculation, recording metrics and latency along the way.
type PlannerService struct {
	logger    *slog.Logger
	scores    ScoreSource
	engine    *engine.Engine
	latencies *utils.LatencyTracker
}

// NewPlannerService constructs the planner facade.
func NewPlannerService(logger *slog.Logger, scores ScoreSource, planner *engine.Engine) *PlannerService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlannerService{
		logger:    logger,
		scores:    scores,
		engine:    planner,
		latencies: utils.NewLatencyTracker(1024),
	}
}

// CalculatePlan resolves current scores (inline or fetched) and runs the
// engine. Upstream fetch failures propagate as errors; the engine is never
// invoked on a failed fetch.
func (s *PlannerService) CalculatePlan(ctx context.Context, req models.PlanRequest) (models.ReverseCalculationResult, error) {
	start := time.Now()

	current := req.CurrentScores
	if current == nil {
		if s.scores == nil {
			metrics.ObserveCalculation(time.Since(start), metrics.OutcomeError)
			return models.ReverseCalculationResult{}, utils.NewAppError("planner.CalculatePlan", "no score source configured and no inline scores supplied", nil)
		}
		fetched, err := s.scores.FetchCurrentScores(ctx, req.TenantID, req.ProfileID)
		if err != nil {
			metrics.ObserveCalculation(time.Since(start), metrics.OutcomeError)
			s.logger.Error("score fetch failed",
				slog.String("tenant_id", req.TenantID),
				slog.String("profile_id", req.ProfileID),
				slog.Any("error", err))
			return models.ReverseCalculationResult{}, err
		}
		metrics.ObserveScoreFetch("upstream")
		current = fetched
	} else {
		metrics.ObserveScoreFetch("inline")
	}

	result, err := s.engine.CalculateRequirements(current, req.Goal)
	duration := time.Since(start)
	if err != nil {
		if engine.IsValidation(err) {
			metrics.ObserveCalculation(duration, metrics.OutcomeInvalid)
		} else {
			metrics.ObserveCalculation(duration, metrics.OutcomeError)
			s.logger.Error("reverse calculation failed", slog.Any("error", err))
		}
		return models.ReverseCalculationResult{}, err
	}

	s.latencies.Observe(duration)
	metrics.ObserveCalculation(duration, metrics.OutcomeSuccess)
	if count := s.latencies.Count(); count >= 20 && count%20 == 0 {
		s.logger.Info("calculation latency",
			slog.Duration("p95", s.latencies.Percentile(95)),
			slog.Int("samples", count))
	}

	return result, nil
}

// LatencyP95 returns the current p95 calculation latency.
func (s *PlannerService) LatencyP95() time.Duration {
	if s.latencies == nil {
		return 0
	}
	return s.latencies.Percentile(95)
}

// Package engine implements the reverse goal planner: given a five-axis
// performance profile and a target state, it works backward to the required
// changes, a phased action plan, feasibility and risk scoring, alternative
// scenarios, a resource allocation and a timeline.
package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tractionlens/plan-engine/internal/models"
)

// Engine is the reverse-planning core. It is a pure function of its inputs:
// the injected relationship model and template catalog are read-only, so a
// single Engine is safe for concurrent use.
type Engine struct {
	logger        *slog.Logger
	relationships RelationshipModel
	templates     TemplateCatalog
}

// New constructs an Engine with the supplied data packs.
func New(logger *slog.Logger, relationships RelationshipModel, templates TemplateCatalog) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:        logger,
		relationships: relationships,
		templates:     templates,
	}
}

// CalculateRequirements runs the full reverse-planning sequence: normalize
// the goal, compute required changes, generate the action plan, analyze
// feasibility, produce the four alternative scenarios, allocate resources and
// build the timeline. Validation failures surface before any plan
// construction; no partial results are returned.
func (e *Engine) CalculateRequirements(currentScores models.ScoreMap, goal models.GoalSpecification) (models.ReverseCalculationResult, error) {
	current, normalized, err := e.normalizeGoal(currentScores, goal)
	if err != nil {
		return models.ReverseCalculationResult{}, err
	}

	changes := e.computeRequiredChanges(current, normalized)
	plan := e.generateActionPlan(changes, normalized)
	feasibility := e.analyzeFeasibility(changes, plan, normalized)
	scenarios := e.generateScenarios(current, normalized)
	allocation := e.allocateResources(plan, normalized)
	timeline := e.buildTimeline(plan, normalized)

	e.logger.Debug("reverse calculation complete",
		slog.Int("changes", len(changes)),
		slog.Int("phases", len(plan.Phases)),
		slog.Float64("feasibility", feasibility.OverallFeasibility),
		slog.String("risk_level", string(feasibility.RiskLevel)),
	)

	return models.ReverseCalculationResult{
		PlanID:               uuid.NewString(),
		RequiredChanges:      changes,
		ActionPlan:           plan,
		Feasibility:          feasibility,
		AlternativeScenarios: scenarios,
		ResourceAllocation:   allocation,
		Timeline:             timeline,
		GeneratedAt:          time.Now().UTC(),
	}, nil
}

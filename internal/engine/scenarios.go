package engine

import (
	"math"
	"sort"

	"github.com/tractionlens/plan-engine/internal/models"
)

// generateScenarios always emits the same four alternative plans, independent
// of how risky the primary plan is: conservative, extended, focused and
// balanced. Their feasibility values are fixed constants by design.
func (e *Engine) generateScenarios(current models.ScoreMap, goal models.NormalizedGoal) []models.AlternativeScenario {
	return []models.AlternativeScenario{
		conservativeScenario(current, goal),
		extendedScenario(goal),
		focusedScenario(current, goal),
		balancedScenario(current, goal),
	}
}

// conservativeScenario moves each axis only 70% of the way to its target.
func conservativeScenario(current models.ScoreMap, goal models.NormalizedGoal) models.AlternativeScenario {
	targets := make(models.ScoreMap, len(goal.Targets))
	for axis, target := range goal.Targets {
		targets[axis] = clamp(current[axis]+0.7*(target-current[axis]), 0, 100)
	}
	return models.AlternativeScenario{
		ID:            "conservative",
		Name:          "Conservative",
		Description:   "Reach 70% of every target within the original time frame",
		Targets:       targets,
		TimeframeDays: goal.TimeframeDays,
		Feasibility:   0.85,
		TradeOffs:     []string{"Lower end state on every axis", "Materially higher chance of completion"},
	}
}

// extendedScenario keeps the targets but stretches the time frame by half.
func extendedScenario(goal models.NormalizedGoal) models.AlternativeScenario {
	return models.AlternativeScenario{
		ID:            "extended",
		Name:          "Extended Timeframe",
		Description:   "Keep all targets and extend the deadline by 50%",
		Targets:       goal.Targets.Clone(),
		TimeframeDays: int(math.Round(float64(goal.TimeframeDays) * 1.5)),
		Feasibility:   0.9,
		TradeOffs:     []string{"Full targets preserved", "Results arrive later than requested"},
	}
}

// focusedScenario keeps full targets on the top-3 priority axes and settles
// for a minimal +5 improvement everywhere else.
func focusedScenario(current models.ScoreMap, goal models.NormalizedGoal) models.AlternativeScenario {
	ranked := append([]models.AxisPriority(nil), goal.Priorities...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Weight > ranked[j].Weight })

	top := make(map[models.Axis]bool, 3)
	for i := 0; i < len(ranked) && i < 3; i++ {
		top[ranked[i].Axis] = true
	}

	targets := make(models.ScoreMap, len(models.AllAxes()))
	for _, axis := range models.AllAxes() {
		if top[axis] {
			if t, ok := goal.Targets[axis]; ok {
				targets[axis] = t
			} else {
				targets[axis] = clamp(current[axis]+5, 0, 100)
			}
			continue
		}
		targets[axis] = clamp(current[axis]+5, 0, 100)
	}

	return models.AlternativeScenario{
		ID:            "focused",
		Name:          "Focused",
		Description:   "Concentrate on the three highest-priority axes",
		Targets:       targets,
		TimeframeDays: goal.TimeframeDays,
		Feasibility:   0.8,
		TradeOffs:     []string{"Non-priority axes barely move", "Effort concentrates where it matters most"},
	}
}

// balancedScenario drives every axis toward a shared target: the midpoint of
// the current average and the overall target (default 80 when none is set).
func balancedScenario(current models.ScoreMap, goal models.NormalizedGoal) models.AlternativeScenario {
	overall := 80.0
	if goal.TargetOverall != nil {
		overall = *goal.TargetOverall
	}
	shared := clamp((current.Average()+overall)/2, 0, 100)

	targets := make(models.ScoreMap, len(models.AllAxes()))
	for _, axis := range models.AllAxes() {
		targets[axis] = shared
	}

	return models.AlternativeScenario{
		ID:            "balanced",
		Name:          "Balanced",
		Description:   "Even out the profile by pulling every axis to a shared target",
		Targets:       targets,
		TimeframeDays: goal.TimeframeDays,
		Feasibility:   0.75,
		TradeOffs:     []string{"Strong axes may sit idle", "Removes single-axis dependence"},
	}
}

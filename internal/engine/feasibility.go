package engine

import (
	"fmt"
	"math"

	"github.com/tractionlens/plan-engine/internal/models"
)

// analyzeFeasibility scores how realistic the full set of required changes is
// within the time frame, grades the plan's risk, estimates success
// probability and flags bottlenecks. Everything here is advisory; bottleneck
// detection never fails a calculation.
func (e *Engine) analyzeFeasibility(changes []models.RequiredChange, plan models.ActionPlan, goal models.NormalizedGoal) models.FeasibilityAnalysis {
	feasibility := 1.0
	for _, change := range changes {
		feasibility -= difficultyFeasibilityPenalty(change.Difficulty)
		rate := math.Abs(change.DailyRate)
		switch {
		case rate > 2:
			feasibility -= 0.15
		case rate > 1:
			feasibility -= 0.08
		}
	}
	switch {
	case goal.TimeframeDays < 30:
		feasibility -= 0.2
	case goal.TimeframeDays < 60:
		feasibility -= 0.1
	}
	feasibility = clamp(feasibility, 0.1, 1)

	riskLevel := gradeRisk(changes, plan)

	avgConfidence := 0.0
	if len(changes) > 0 {
		for _, change := range changes {
			avgConfidence += change.Confidence
		}
		avgConfidence /= float64(len(changes))
	}
	success := clamp(feasibility*avgConfidence-riskSuccessPenalty(riskLevel), 0.1, 0.95)

	bottlenecks := e.detectBottlenecks(changes, plan, goal)

	return models.FeasibilityAnalysis{
		OverallFeasibility: feasibility,
		RiskLevel:          riskLevel,
		SuccessProbability: success,
		Bottlenecks:        bottlenecks,
		Recommendations:    buildRecommendations(feasibility, riskLevel, bottlenecks),
	}
}

func difficultyFeasibilityPenalty(d models.Difficulty) float64 {
	switch d {
	case models.DifficultyModerate:
		return 0.1
	case models.DifficultyHard:
		return 0.2
	case models.DifficultyVeryHard:
		return 0.4
	default:
		return 0
	}
}

// gradeRisk combines the count of hard changes, the dependency volume and the
// critical-path length into a coarse risk level.
func gradeRisk(changes []models.RequiredChange, plan models.ActionPlan) models.RiskLevel {
	hardCount := 0
	for _, change := range changes {
		if change.Difficulty == models.DifficultyHard || change.Difficulty == models.DifficultyVeryHard {
			hardCount++
		}
	}
	score := 2*float64(hardCount) + 0.5*float64(len(plan.Dependencies)) + 0.3*float64(len(plan.CriticalPath))

	switch {
	case score <= 3:
		return models.RiskLevelLow
	case score <= 6:
		return models.RiskLevelMedium
	case score <= 10:
		return models.RiskLevelHigh
	default:
		return models.RiskLevelVeryHigh
	}
}

func riskSuccessPenalty(level models.RiskLevel) float64 {
	switch level {
	case models.RiskLevelMedium:
		return 0.1
	case models.RiskLevelHigh:
		return 0.2
	case models.RiskLevelVeryHigh:
		return 0.35
	default:
		return 0
	}
}

func (e *Engine) detectBottlenecks(changes []models.RequiredChange, plan models.ActionPlan, goal models.NormalizedGoal) []models.Bottleneck {
	bottlenecks := make([]models.Bottleneck, 0)

	var pressed []models.Axis
	for _, change := range changes {
		if math.Abs(change.DailyRate) > 1.5 {
			pressed = append(pressed, change.Axis)
		}
	}
	if len(pressed) > 0 {
		bottlenecks = append(bottlenecks, models.Bottleneck{
			Type:        models.BottleneckTime,
			Axes:        pressed,
			Description: fmt.Sprintf("%d axis(es) require more than 1.5 points of improvement per day", len(pressed)),
			Suggestion:  "Extend the time frame or reduce targets on the pressed axes",
		})
	}

	if goal.Constraints != nil && goal.Constraints.Resources != nil && goal.Constraints.Resources.MaxBudget > 0 {
		totalBudget := 0.0
		for _, phase := range plan.Phases {
			totalBudget += phase.Resources.Budget
		}
		if totalBudget > goal.Constraints.Resources.MaxBudget {
			bottlenecks = append(bottlenecks, models.Bottleneck{
				Type:        models.BottleneckResource,
				Description: fmt.Sprintf("estimated budget %.0f exceeds the %.0f cap", totalBudget, goal.Constraints.Resources.MaxBudget),
				Suggestion:  "Raise the budget cap or adopt the conservative scenario",
			})
		}
	}

	blocking := 0
	for _, dep := range plan.Dependencies {
		if dep.Type == models.DependencyBlocks {
			blocking++
		}
	}
	if blocking > 5 {
		bottlenecks = append(bottlenecks, models.Bottleneck{
			Type:        models.BottleneckDependency,
			Description: fmt.Sprintf("%d blocking dependencies constrain scheduling", blocking),
			Suggestion:  "Decouple prerequisite actions so more work can run in parallel",
		})
	}

	return bottlenecks
}

func buildRecommendations(feasibility float64, riskLevel models.RiskLevel, bottlenecks []models.Bottleneck) []string {
	recs := make([]string, 0, 2+len(bottlenecks))

	switch {
	case feasibility < 0.4:
		recs = append(recs, "The goal is unlikely to be reachable as specified; consider an alternative scenario")
	case feasibility < 0.7:
		recs = append(recs, "The goal is ambitious; monitor milestone criteria closely and replan early")
	default:
		recs = append(recs, "The goal is realistic within the chosen time frame")
	}

	switch riskLevel {
	case models.RiskLevelHigh, models.RiskLevelVeryHigh:
		recs = append(recs, "Risk level is elevated; assign explicit owners to the critical path")
	case models.RiskLevelMedium:
		recs = append(recs, "Review dependency-heavy phases before committing the plan")
	}

	for _, b := range bottlenecks {
		recs = append(recs, b.Suggestion)
	}
	return recs
}

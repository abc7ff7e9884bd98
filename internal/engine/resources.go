package engine

import (
	"fmt"
	"math"

	"github.com/tractionlens/plan-engine/internal/models"
)

// allocateResources splits the phase-level resource estimates across axes,
// scores the return on investment per axis and proposes optimizations.
func (e *Engine) allocateResources(plan models.ActionPlan, goal models.NormalizedGoal) models.ResourceAllocation {
	type axisShare struct {
		budget      float64
		hours       float64
		team        float64
		improvement float64
	}
	shares := make(map[models.Axis]*axisShare)
	share := func(axis models.Axis) *axisShare {
		s, ok := shares[axis]
		if !ok {
			s = &axisShare{}
			shares[axis] = s
		}
		return s
	}

	for _, phase := range plan.Phases {
		if len(phase.Axes) == 0 {
			continue
		}
		fraction := 1.0 / float64(len(phase.Axes))
		for _, axis := range phase.Axes {
			s := share(axis)
			s.budget += phase.Resources.Budget * fraction
			s.hours += phase.Resources.TimeHours * fraction
			s.team += float64(phase.Resources.TeamSize) * fraction
			s.improvement += math.Abs(phase.ExpectedImprovement[axis])
		}
	}

	byAxis := make(map[models.Axis]models.AxisAllocation, len(shares))
	var totalBudget, totalHours, roiSum float64
	totalTeam := 0
	for axis, s := range shares {
		roi := 0.0
		if s.budget > 0 {
			roi = s.improvement / s.budget
		}
		team := int(math.Ceil(s.team))
		byAxis[axis] = models.AxisAllocation{
			Budget:    s.budget,
			TimeHours: s.hours,
			TeamSize:  team,
			ROI:       roi,
		}
		totalBudget += s.budget
		totalHours += s.hours
		totalTeam += team
		roiSum += roi
	}

	efficiency := 1.0
	if goal.Constraints != nil && goal.Constraints.Resources != nil && goal.Constraints.Resources.MaxBudget > 0 {
		if limit := goal.Constraints.Resources.MaxBudget; totalBudget > limit {
			efficiency -= (totalBudget - limit) / limit
		}
	}
	if len(byAxis) > 0 {
		avgROI := roiSum / float64(len(byAxis))
		efficiency *= math.Min(1, avgROI)
	}
	efficiency = clamp(efficiency, 0, 1)

	return models.ResourceAllocation{
		TotalBudget:    totalBudget,
		TotalTimeHours: totalHours,
		TotalTeamSize:  totalTeam,
		ByAxis:         byAxis,
		Efficiency:     efficiency,
		Suggestions:    optimizationSuggestions(byAxis, plan),
	}
}

func optimizationSuggestions(byAxis map[models.Axis]models.AxisAllocation, plan models.ActionPlan) []string {
	suggestions := make([]string, 0, 2)

	var bestAxis, worstAxis models.Axis
	bestROI := math.Inf(-1)
	worstROI := math.Inf(1)
	for _, axis := range models.AllAxes() {
		alloc, ok := byAxis[axis]
		if !ok {
			continue
		}
		if alloc.ROI > bestROI {
			bestROI = alloc.ROI
			bestAxis = axis
		}
		if alloc.ROI < worstROI {
			worstROI = alloc.ROI
			worstAxis = axis
		}
	}
	if bestAxis != "" && worstAxis != "" && bestAxis != worstAxis && worstROI > 0 && bestROI >= 2*worstROI {
		suggestions = append(suggestions, fmt.Sprintf(
			"Reallocate budget from %s to %s (%.1fx higher return per unit spent)",
			worstAxis, bestAxis, bestROI/worstROI))
	}

	for _, phase := range plan.Phases {
		if len(phase.Axes) > 1 {
			suggestions = append(suggestions, fmt.Sprintf(
				"Phase %q spans %d axes; run its action tracks in parallel", phase.Name, len(phase.Axes)))
			break
		}
	}

	return suggestions
}

package engine

import (
	"github.com/tractionlens/plan-engine/internal/models"
)

// normalizeGoal validates the raw goal against the current scores, derives
// missing per-axis targets from the overall target, clamps everything to
// [0,100] and defaults priorities. All validation failures surface here,
// before any plan construction begins.
func (e *Engine) normalizeGoal(current models.ScoreMap, goal models.GoalSpecification) (models.ScoreMap, models.NormalizedGoal, error) {
	if goal.TimeframeDays <= 0 {
		return nil, models.NormalizedGoal{}, &ValidationError{Field: "timeframeDays", Msg: "time frame must be positive"}
	}
	if len(goal.TargetScores) == 0 && goal.TargetOverall == nil {
		return nil, models.NormalizedGoal{}, &ValidationError{Field: "targetScores", Msg: "either per-axis targets or an overall target is required"}
	}

	cleaned := make(models.ScoreMap, len(models.AllAxes()))
	for _, axis := range models.AllAxes() {
		score, ok := current[axis]
		if !ok {
			return nil, models.NormalizedGoal{}, &ValidationError{Field: "currentScores", Axis: axis, Msg: "missing current score"}
		}
		cleaned[axis] = clamp(score, 0, 100)
	}

	targets, err := resolveTargets(cleaned, goal)
	if err != nil {
		return nil, models.NormalizedGoal{}, err
	}

	if goal.Constraints != nil {
		for axis, floor := range goal.Constraints.MinScores {
			if t, ok := targets[axis]; ok && t < floor {
				targets[axis] = clamp(floor, 0, 100)
			}
		}
	}

	priorities := goal.Priorities
	if len(priorities) == 0 {
		priorities = defaultPriorities()
	} else {
		for _, p := range priorities {
			if !models.ValidAxis(p.Axis) {
				return nil, models.NormalizedGoal{}, &ValidationError{Field: "priorities", Axis: p.Axis, Msg: "unknown axis"}
			}
		}
	}

	return cleaned, models.NormalizedGoal{
		Targets:       targets,
		TargetOverall: goal.TargetOverall,
		TimeframeDays: goal.TimeframeDays,
		Constraints:   goal.Constraints,
		Priorities:    priorities,
	}, nil
}

func resolveTargets(current models.ScoreMap, goal models.GoalSpecification) (models.ScoreMap, error) {
	targets := make(models.ScoreMap)

	if len(goal.TargetScores) > 0 {
		for axis, target := range goal.TargetScores {
			if !models.ValidAxis(axis) {
				return nil, &ValidationError{Field: "targetScores", Axis: axis, Msg: "unknown axis"}
			}
			targets[axis] = clamp(target, 0, 100)
		}
		return targets, nil
	}

	overall := *goal.TargetOverall
	avg := current.Average()
	if avg == 0 {
		// Guard the overall-target ratio against a zero current average:
		// every axis takes the overall target directly instead of a NaN scale.
		for _, axis := range models.AllAxes() {
			targets[axis] = clamp(overall, 0, 100)
		}
		return targets, nil
	}

	ratio := overall / avg
	for _, axis := range models.AllAxes() {
		targets[axis] = clamp(current[axis]*ratio, 0, 100)
	}
	return targets, nil
}

func defaultPriorities() []models.AxisPriority {
	axes := models.AllAxes()
	priorities := make([]models.AxisPriority, 0, len(axes))
	weight := 1.0 / float64(len(axes))
	for _, axis := range axes {
		priorities = append(priorities, models.AxisPriority{
			Axis:        axis,
			Weight:      weight,
			Flexibility: models.FlexibilityFlexible,
		})
	}
	return priorities
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

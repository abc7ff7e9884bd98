package engine

import (
	"math"
	"sort"

	"github.com/tractionlens/plan-engine/internal/models"
)

// computeRequiredChanges derives, for every axis with a resolved target, the
// signed delta, the daily rate implied by the time frame, a difficulty tier
// and a confidence score.
func (e *Engine) computeRequiredChanges(current models.ScoreMap, goal models.NormalizedGoal) []models.RequiredChange {
	changes := make([]models.RequiredChange, 0, len(goal.Targets))
	for _, axis := range models.AllAxes() {
		target, ok := goal.Targets[axis]
		if !ok {
			continue
		}
		delta := target - current[axis]
		dailyRate := delta / float64(goal.TimeframeDays)
		difficulty := classifyDifficulty(delta, dailyRate)
		changes = append(changes, models.RequiredChange{
			Axis:                axis,
			CurrentScore:        current[axis],
			TargetScore:         target,
			RequiredImprovement: delta,
			DailyRate:           dailyRate,
			Difficulty:          difficulty,
			Confidence:          changeConfidence(delta, goal.TimeframeDays, difficulty),
		})
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Axis < changes[j].Axis })
	return changes
}

// classifyDifficulty grades a change by the magnitude of its delta and the
// daily rate it demands, monotonically in both dimensions.
func classifyDifficulty(delta, dailyRate float64) models.Difficulty {
	d := math.Abs(delta)
	r := math.Abs(dailyRate)

	switch {
	case d <= 10:
		switch {
		case r <= 0.5:
			return models.DifficultyEasy
		case r <= 1:
			return models.DifficultyModerate
		default:
			return models.DifficultyHard
		}
	case d <= 25:
		switch {
		case r <= 0.5:
			return models.DifficultyModerate
		case r <= 1:
			return models.DifficultyHard
		default:
			return models.DifficultyVeryHard
		}
	default:
		switch {
		case r <= 0.5:
			return models.DifficultyHard
		default:
			return models.DifficultyVeryHard
		}
	}
}

func difficultyConfidencePenalty(d models.Difficulty) float64 {
	switch d {
	case models.DifficultyModerate:
		return 0.1
	case models.DifficultyHard:
		return 0.2
	case models.DifficultyVeryHard:
		return 0.35
	default:
		return 0
	}
}

func changeConfidence(delta float64, timeframeDays int, difficulty models.Difficulty) float64 {
	confidence := 0.9
	confidence -= 0.005 * math.Abs(delta)
	if timeframeDays < 30 {
		confidence -= float64(30-timeframeDays) * 0.01
	}
	confidence -= difficultyConfidencePenalty(difficulty)
	return clamp(confidence, 0.3, 0.95)
}

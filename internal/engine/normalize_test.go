package engine

import (
	"errors"
	"testing"

	"github.com/tractionlens/plan-engine/internal/models"
)

func newTestEngine() *Engine {
	return New(nil, DefaultRelationshipModel(), DefaultTemplateCatalog())
}

func evenScores(value float64) models.ScoreMap {
	scores := make(models.ScoreMap)
	for _, axis := range models.AllAxes() {
		scores[axis] = value
	}
	return scores
}

func TestNormalizeRejectsNonPositiveTimeframe(t *testing.T) {
	e := newTestEngine()
	goal := models.GoalSpecification{
		TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
		TimeframeDays: 0,
	}

	_, _, err := e.normalizeGoal(evenScores(50), goal)
	if err == nil {
		t.Fatal("expected validation error for zero timeframe")
	}
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validation.Field != "timeframeDays" {
		t.Fatalf("unexpected field: %s", validation.Field)
	}
}

func TestNormalizeRequiresSomeTarget(t *testing.T) {
	e := newTestEngine()
	goal := models.GoalSpecification{TimeframeDays: 30}

	_, _, err := e.normalizeGoal(evenScores(50), goal)
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestNormalizeRequiresAllCurrentAxes(t *testing.T) {
	e := newTestEngine()
	current := evenScores(50)
	delete(current, models.AxisTeam)

	goal := models.GoalSpecification{
		TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
		TimeframeDays: 30,
	}

	_, _, err := e.normalizeGoal(current, goal)
	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if validation.Axis != models.AxisTeam {
		t.Fatalf("expected missing axis team, got %s", validation.Axis)
	}
}

func TestNormalizeDerivesTargetsFromOverall(t *testing.T) {
	e := newTestEngine()
	overall := 80.0
	goal := models.GoalSpecification{
		TargetOverall: &overall,
		TimeframeDays: 60,
	}

	_, normalized, err := e.normalizeGoal(evenScores(40), goal)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	for _, axis := range models.AllAxes() {
		if got := normalized.Targets[axis]; got != 80 {
			t.Fatalf("axis %s: expected derived target 80, got %v", axis, got)
		}
	}
}

func TestNormalizeClampsDerivedTargets(t *testing.T) {
	e := newTestEngine()
	overall := 95.0
	current := evenScores(40)
	current[models.AxisGrowth] = 80 // 80 * (95/48) would exceed 100

	goal := models.GoalSpecification{TargetOverall: &overall, TimeframeDays: 60}
	_, normalized, err := e.normalizeGoal(current, goal)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	for _, axis := range models.AllAxes() {
		if normalized.Targets[axis] > 100 || normalized.Targets[axis] < 0 {
			t.Fatalf("axis %s: target out of bounds: %v", axis, normalized.Targets[axis])
		}
	}
}

func TestNormalizeZeroAverageFallsBackToOverall(t *testing.T) {
	e := newTestEngine()
	overall := 60.0
	goal := models.GoalSpecification{TargetOverall: &overall, TimeframeDays: 90}

	_, normalized, err := e.normalizeGoal(evenScores(0), goal)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	for _, axis := range models.AllAxes() {
		if normalized.Targets[axis] != 60 {
			t.Fatalf("axis %s: expected safe-default target 60, got %v", axis, normalized.Targets[axis])
		}
	}
}

func TestNormalizeDefaultsPriorities(t *testing.T) {
	e := newTestEngine()
	goal := models.GoalSpecification{
		TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
		TimeframeDays: 30,
	}

	_, normalized, err := e.normalizeGoal(evenScores(50), goal)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(normalized.Priorities) != 5 {
		t.Fatalf("expected 5 default priorities, got %d", len(normalized.Priorities))
	}
	for _, p := range normalized.Priorities {
		if p.Weight != 0.2 {
			t.Fatalf("expected equal weight 0.2, got %v", p.Weight)
		}
		if p.Flexibility != models.FlexibilityFlexible {
			t.Fatalf("expected flexible default, got %s", p.Flexibility)
		}
	}
}

func TestNormalizeAppliesMinScoreFloors(t *testing.T) {
	e := newTestEngine()
	goal := models.GoalSpecification{
		TargetScores:  models.ScoreMap{models.AxisGrowth: 55},
		TimeframeDays: 30,
		Constraints: &models.GoalConstraints{
			MinScores: map[models.Axis]float64{models.AxisGrowth: 62},
		},
	}

	_, normalized, err := e.normalizeGoal(evenScores(50), goal)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if normalized.Targets[models.AxisGrowth] != 62 {
		t.Fatalf("expected floor-lifted target 62, got %v", normalized.Targets[models.AxisGrowth])
	}
}

func TestNormalizeRejectsUnknownTargetAxis(t *testing.T) {
	e := newTestEngine()
	goal := models.GoalSpecification{
		TargetScores:  models.ScoreMap{"velocity": 70},
		TimeframeDays: 30,
	}

	_, _, err := e.normalizeGoal(evenScores(50), goal)
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError for unknown axis, got %v", err)
	}
}

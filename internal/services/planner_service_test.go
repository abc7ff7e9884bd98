package services

import (
	"context"
	"testing"

	"github.com/tractionlens/plan-engine/internal/engine"
	"github.com/tractionlens/plan-engine/internal/models"
	"github.com/tractionlens/plan-engine/internal/utils"
)

type fakeScoreSource struct {
	scores models.ScoreMap
	err    error
	calls  int
}

func (f *fakeScoreSource) FetchCurrentScores(_ context.Context, _, _ string) (models.ScoreMap, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.scores, nil
}

func testScores() models.ScoreMap {
	return models.ScoreMap{
		models.AxisGrowth:    50,
		models.AxisEconomics: 50,
		models.AxisProduct:   50,
		models.AxisProof:     50,
		models.AxisTeam:      50,
	}
}

func newTestService(source ScoreSource) *PlannerService {
	planner := engine.New(nil, engine.DefaultRelationshipModel(), engine.DefaultTemplateCatalog())
	return NewPlannerService(nil, source, planner)
}

func TestCalculatePlanWithInlineScores(t *testing.T) {
	source := &fakeScoreSource{scores: testScores()}
	svc := newTestService(source)

	req := models.PlanRequest{
		TenantID:      "acme",
		CurrentScores: testScores(),
		Goal: models.GoalSpecification{
			TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
			TimeframeDays: 30,
		},
	}

	result, err := svc.CalculatePlan(context.Background(), req)
	if err != nil {
		t.Fatalf("CalculatePlan: %v", err)
	}
	if result.PlanID == "" {
		t.Fatal("missing plan id")
	}
	if source.calls != 0 {
		t.Fatalf("inline scores must bypass the score source, got %d calls", source.calls)
	}
	if svc.LatencyP95() <= 0 {
		t.Fatal("expected a latency sample after a successful calculation")
	}
}

func TestCalculatePlanFetchesScores(t *testing.T) {
	source := &fakeScoreSource{scores: testScores()}
	svc := newTestService(source)

	req := models.PlanRequest{
		TenantID:  "acme",
		ProfileID: "p-1",
		Goal: models.GoalSpecification{
			TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
			TimeframeDays: 30,
		},
	}

	if _, err := svc.CalculatePlan(context.Background(), req); err != nil {
		t.Fatalf("CalculatePlan: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("score source calls = %d, want 1", source.calls)
	}
}

func TestCalculatePlanFetchFailureSkipsEngine(t *testing.T) {
	source := &fakeScoreSource{err: utils.NewAppError("profile.FetchCurrentScores", "unavailable", nil)}
	svc := newTestService(source)

	req := models.PlanRequest{
		TenantID:  "acme",
		ProfileID: "p-1",
		Goal: models.GoalSpecification{
			TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
			TimeframeDays: 30,
		},
	}

	result, err := svc.CalculatePlan(context.Background(), req)
	if err == nil {
		t.Fatal("expected fetch error to propagate")
	}
	if result.PlanID != "" {
		t.Fatal("expected empty result on fetch failure")
	}
	if svc.LatencyP95() != 0 {
		t.Fatal("failed calculations must not record latency samples")
	}
}

func TestCalculatePlanValidationError(t *testing.T) {
	svc := newTestService(&fakeScoreSource{scores: testScores()})

	req := models.PlanRequest{
		TenantID:      "acme",
		CurrentScores: testScores(),
		Goal: models.GoalSpecification{
			TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
			TimeframeDays: 0,
		},
	}

	_, err := svc.CalculatePlan(context.Background(), req)
	if !engine.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCalculatePlanNoSourceNoInlineScores(t *testing.T) {
	svc := newTestService(nil)

	req := models.PlanRequest{
		TenantID:  "acme",
		ProfileID: "p-1",
		Goal: models.GoalSpecification{
			TargetScores:  models.ScoreMap{models.AxisGrowth: 60},
			TimeframeDays: 30,
		},
	}

	if _, err := svc.CalculatePlan(context.Background(), req); err == nil {
		t.Fatal("expected error when no score source is configured")
	}
}

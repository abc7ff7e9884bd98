package engine

import (
	"testing"

	"github.com/tractionlens/plan-engine/internal/models"
)

// mixedGoal produces one change in each difficulty bucket over a 30-day frame:
// growth +5 (easy), economics +14 (moderate), product +35 (very hard).
func mixedGoal() models.NormalizedGoal {
	return models.NormalizedGoal{
		Targets: models.ScoreMap{
			models.AxisGrowth:    55,
			models.AxisEconomics: 64,
			models.AxisProduct:   85,
		},
		TimeframeDays: 30,
		Priorities:    defaultPriorities(),
	}
}

func TestBuildPhasesLayoutIsContiguous(t *testing.T) {
	e := newTestEngine()
	goal := mixedGoal()
	changes := e.computeRequiredChanges(evenScores(50), goal)

	phases := e.buildPhases(changes, goal)
	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}

	expected := []struct {
		id       string
		start    int
		end      int
		soleAxis models.Axis
	}{
		{phaseQuickWins, 0, 6, models.AxisGrowth},
		{phaseCore, 6, 18, models.AxisEconomics},
		{phaseStrategic, 18, 30, models.AxisProduct},
	}
	for i, want := range expected {
		got := phases[i]
		if got.ID != want.id {
			t.Fatalf("phase %d: id = %s, want %s", i, got.ID, want.id)
		}
		if got.StartDay != want.start || got.EndDay != want.end {
			t.Fatalf("phase %s: window [%d,%d], want [%d,%d]", got.ID, got.StartDay, got.EndDay, want.start, want.end)
		}
		if len(got.Axes) != 1 || got.Axes[0] != want.soleAxis {
			t.Fatalf("phase %s: axes = %v, want [%s]", got.ID, got.Axes, want.soleAxis)
		}
	}

	// The last phase must absorb the integer-division remainder.
	if phases[len(phases)-1].EndDay != goal.TimeframeDays {
		t.Fatalf("final phase ends at %d, want %d", phases[len(phases)-1].EndDay, goal.TimeframeDays)
	}
}

func TestBuildPhasesOnlyEasyChanges(t *testing.T) {
	e := newTestEngine()
	goal := models.NormalizedGoal{
		Targets:       models.ScoreMap{models.AxisGrowth: 55, models.AxisTeam: 58},
		TimeframeDays: 30,
	}
	changes := e.computeRequiredChanges(evenScores(50), goal)

	phases := e.buildPhases(changes, goal)
	if len(phases) != 1 {
		t.Fatalf("expected a single quick-wins phase, got %d phases", len(phases))
	}
	if phases[0].ID != phaseQuickWins {
		t.Fatalf("phase id = %s, want %s", phases[0].ID, phaseQuickWins)
	}
	if phases[0].StartDay != 0 || phases[0].EndDay != 6 {
		t.Fatalf("quick wins window [%d,%d], want [0,6]", phases[0].StartDay, phases[0].EndDay)
	}
}

func TestBuildPhaseResourcesAndExpectedImprovement(t *testing.T) {
	e := newTestEngine()
	goal := mixedGoal()
	changes := e.computeRequiredChanges(evenScores(50), goal)

	phases := e.buildPhases(changes, goal)
	quickWins := phases[0]

	// +5 growth over a 6-day window: improvement and resources both pro-rated
	// by days/30.
	if !almostEqual(quickWins.ExpectedImprovement[models.AxisGrowth], 1) {
		t.Fatalf("expected improvement = %v, want 1", quickWins.ExpectedImprovement[models.AxisGrowth])
	}
	if !almostEqual(quickWins.Resources.Budget, 1000) {
		t.Fatalf("budget = %v, want 1000", quickWins.Resources.Budget)
	}
	if !almostEqual(quickWins.Resources.TimeHours, 2) {
		t.Fatalf("hours = %v, want 2", quickWins.Resources.TimeHours)
	}
	if quickWins.Resources.TeamSize != 1 {
		t.Fatalf("team size = %d, want 1", quickWins.Resources.TeamSize)
	}
}

func TestBuildActionsScalingAndPrerequisiteChain(t *testing.T) {
	e := newTestEngine()
	change := models.RequiredChange{
		Axis:                models.AxisGrowth,
		RequiredImprovement: 5,
		Difficulty:          models.DifficultyEasy,
	}

	actions := e.buildActions(phaseQuickWins, change)
	if len(actions) != 2 {
		t.Fatalf("expected 2 actions, got %d", len(actions))
	}

	first := actions[0]
	if first.ID != "quick-wins-growth-1" {
		t.Fatalf("first action id = %s", first.ID)
	}
	// scale factor 5/20 = 0.25
	if !almostEqual(first.Impact, 2) || !almostEqual(first.Effort, 1.5) {
		t.Fatalf("first action impact/effort = %v/%v, want 2/1.5", first.Impact, first.Effort)
	}
	if first.DurationDays != 5 {
		t.Fatalf("first action duration = %d, want ceil(10*sqrt(0.25)) = 5", first.DurationDays)
	}
	if len(first.Prerequisites) != 0 {
		t.Fatalf("first action must have no prerequisites, got %v", first.Prerequisites)
	}
	if len(first.Risks) != 0 {
		t.Fatalf("modest change must carry no risks, got %v", first.Risks)
	}

	second := actions[1]
	if len(second.Prerequisites) != 1 || second.Prerequisites[0] != first.ID {
		t.Fatalf("second action prerequisites = %v, want [%s]", second.Prerequisites, first.ID)
	}
}

func TestBuildActionsAttachesRisks(t *testing.T) {
	e := newTestEngine()
	// +45 product: scale factor 2.25 triggers the execution risk, and the
	// 14-day template stretches to 21 days, triggering the dependency risk.
	change := models.RequiredChange{
		Axis:                models.AxisProduct,
		RequiredImprovement: 45,
		Difficulty:          models.DifficultyVeryHard,
	}

	actions := e.buildActions(phaseStrategic, change)
	first := actions[0]
	if first.DurationDays != 21 {
		t.Fatalf("duration = %d, want 21", first.DurationDays)
	}
	if len(first.Risks) != 2 {
		t.Fatalf("expected execution and dependency risks, got %v", first.Risks)
	}
	if first.Risks[0].Category != models.RiskExecution {
		t.Fatalf("first risk = %s, want execution", first.Risks[0].Category)
	}
	if first.Risks[1].Category != models.RiskDependency {
		t.Fatalf("second risk = %s, want dependency", first.Risks[1].Category)
	}
}

func TestBuildMilestonesProRatesCriteria(t *testing.T) {
	e := newTestEngine()
	goal := mixedGoal()
	changes := e.computeRequiredChanges(evenScores(50), goal)
	phases := e.buildPhases(changes, goal)

	milestones := buildMilestones(phases, goal)
	if len(milestones) != 3 {
		t.Fatalf("expected one milestone per phase, got %d", len(milestones))
	}

	first := milestones[0]
	if first.ID != "milestone-quick-wins" || first.Day != 6 {
		t.Fatalf("unexpected first milestone: %+v", first)
	}
	// 55 * (6/30)
	if !almostEqual(first.Criteria[models.AxisGrowth], 11) {
		t.Fatalf("criteria = %v, want 11", first.Criteria[models.AxisGrowth])
	}
	if first.Importance != models.MilestoneMinor {
		t.Fatalf("importance = %s, want minor", first.Importance)
	}

	last := milestones[2]
	if last.Day != goal.TimeframeDays {
		t.Fatalf("final milestone day = %d, want %d", last.Day, goal.TimeframeDays)
	}
	if !almostEqual(last.Criteria[models.AxisProduct], 85) {
		t.Fatalf("final criteria = %v, want full target 85", last.Criteria[models.AxisProduct])
	}
}

func TestDeriveDependenciesPhaseChainAndBlocks(t *testing.T) {
	e := newTestEngine()
	goal := mixedGoal()
	changes := e.computeRequiredChanges(evenScores(50), goal)
	phases := e.buildPhases(changes, goal)

	deps := e.deriveDependencies(phases)

	// Two phase-chain enables edges plus one blocking edge per axis's
	// two-template chain. The default matrix has no influence >= 0.5 between
	// growth, economics and product in phase order.
	if len(deps) != 5 {
		t.Fatalf("expected 5 dependencies, got %d: %+v", len(deps), deps)
	}

	enables, blocks := 0, 0
	for _, dep := range deps {
		switch dep.Type {
		case models.DependencyEnables:
			enables++
		case models.DependencyBlocks:
			blocks++
		}
	}
	if enables != 2 || blocks != 3 {
		t.Fatalf("enables/blocks = %d/%d, want 2/3", enables, blocks)
	}

	if deps[0].From != phaseQuickWins || deps[0].To != phaseCore {
		t.Fatalf("first edge %s -> %s, want phase chain", deps[0].From, deps[0].To)
	}
}

func TestDeriveDependenciesHonorsInfluenceMatrix(t *testing.T) {
	strong := RelationshipModel{influence: map[models.Axis]map[models.Axis]float64{
		models.AxisGrowth: {models.AxisProduct: 0.9},
	}}
	e := New(nil, strong, DefaultTemplateCatalog())
	goal := mixedGoal()
	changes := e.computeRequiredChanges(evenScores(50), goal)
	phases := e.buildPhases(changes, goal)

	deps := e.deriveDependencies(phases)
	if len(deps) != 6 {
		t.Fatalf("expected 6 dependencies with the strong influence edge, got %d", len(deps))
	}

	found := false
	for _, dep := range deps {
		if dep.From == "quick-wins-growth-1" && dep.To == "strategic-transformations-product-1" && dep.Type == models.DependencyEnables {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing influence-driven enables edge in %+v", deps)
	}
}

func TestBuildCriticalPathPicksHighestImpactAction(t *testing.T) {
	e := newTestEngine()
	goal := mixedGoal()
	changes := e.computeRequiredChanges(evenScores(50), goal)
	phases := e.buildPhases(changes, goal)

	path := buildCriticalPath(phases)
	want := []string{
		phaseQuickWins, "quick-wins-growth-1",
		phaseCore, "core-improvements-economics-1",
		phaseStrategic, "strategic-transformations-product-1",
	}
	if len(path) != len(want) {
		t.Fatalf("critical path length = %d, want %d", len(path), len(want))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("critical path[%d] = %s, want %s", i, path[i], want[i])
		}
	}
}

package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/tractionlens/plan-engine/internal/models"
)

const (
	phaseQuickWins = "quick-wins"
	phaseCore      = "core-improvements"
	phaseStrategic = "strategic-transformations"
)

// generateActionPlan groups required changes into difficulty-tiered phases,
// expands each phase into template-scaled actions, derives milestones and
// dependency edges, and computes the heuristic critical path.
func (e *Engine) generateActionPlan(changes []models.RequiredChange, goal models.NormalizedGoal) models.ActionPlan {
	phases := e.buildPhases(changes, goal)
	milestones := buildMilestones(phases, goal)
	dependencies := e.deriveDependencies(phases)
	criticalPath := buildCriticalPath(phases)

	return models.ActionPlan{
		Phases:       phases,
		Milestones:   milestones,
		Dependencies: dependencies,
		CriticalPath: criticalPath,
	}
}

type phaseSpec struct {
	id   string
	name string
}

// buildPhases lays the difficulty groups out back-to-back from day 0:
// Quick Wins takes the first 20% of the time frame, Core Improvements the
// next 40%, Strategic Transformations whatever remains.
func (e *Engine) buildPhases(changes []models.RequiredChange, goal models.NormalizedGoal) []models.ActionPhase {
	groups := map[string][]models.RequiredChange{}
	for _, change := range changes {
		switch change.Difficulty {
		case models.DifficultyEasy:
			groups[phaseQuickWins] = append(groups[phaseQuickWins], change)
		case models.DifficultyModerate:
			groups[phaseCore] = append(groups[phaseCore], change)
		default:
			groups[phaseStrategic] = append(groups[phaseStrategic], change)
		}
	}

	tf := goal.TimeframeDays
	specs := []struct {
		phaseSpec
		duration int
	}{
		{phaseSpec{phaseQuickWins, "Quick Wins"}, tf * 20 / 100},
		{phaseSpec{phaseCore, "Core Improvements"}, tf * 40 / 100},
		{phaseSpec{phaseStrategic, "Strategic Transformations"}, -1},
	}

	phases := make([]models.ActionPhase, 0, len(specs))
	cursor := 0
	for _, spec := range specs {
		members := groups[spec.id]
		if len(members) == 0 {
			continue
		}
		duration := spec.duration
		if duration < 0 {
			duration = tf - cursor
		}
		phase := e.buildPhase(spec.phaseSpec, members, cursor, cursor+duration)
		phases = append(phases, phase)
		cursor += duration
	}
	return phases
}

func (e *Engine) buildPhase(spec phaseSpec, members []models.RequiredChange, startDay, endDay int) models.ActionPhase {
	days := endDay - startDay
	scale := float64(days) / 30.0

	axes := make([]models.Axis, 0, len(members))
	expected := make(models.ScoreMap, len(members))
	actions := make([]models.DetailedAction, 0, len(members)*2)
	var budget, hours float64
	team := 0

	for _, change := range members {
		axes = append(axes, change.Axis)
		expected[change.Axis] = change.RequiredImprovement * scale

		magnitude := math.Abs(change.RequiredImprovement)
		budget += magnitude * 1000
		hours += magnitude * 2
		team += int(math.Ceil(magnitude / 20))

		actions = append(actions, e.buildActions(spec.id, change)...)
	}

	sort.Slice(axes, func(i, j int) bool { return axes[i] < axes[j] })

	return models.ActionPhase{
		ID:                  spec.id,
		Name:                spec.name,
		StartDay:            startDay,
		EndDay:              endDay,
		Axes:                axes,
		Actions:             actions,
		ExpectedImprovement: expected,
		Resources: models.PhaseResources{
			Budget:    budget * scale,
			TimeHours: hours * scale,
			TeamSize:  int(math.Ceil(float64(team) * scale)),
		},
	}
}

// buildActions scales the axis's templates by the magnitude of the required
// improvement. Oversized scale factors and long durations pick up risks.
func (e *Engine) buildActions(phaseID string, change models.RequiredChange) []models.DetailedAction {
	templates := e.templates.ForAxis(change.Axis)
	scaleFactor := math.Abs(change.RequiredImprovement) / 20

	actions := make([]models.DetailedAction, 0, len(templates))
	var prevID string
	for i, tmpl := range templates {
		action := models.DetailedAction{
			ID:           fmt.Sprintf("%s-%s-%d", phaseID, change.Axis, i+1),
			Axis:         change.Axis,
			Name:         tmpl.Name,
			Category:     tmpl.Category,
			Impact:       tmpl.BaseImpact * scaleFactor,
			Effort:       tmpl.BaseEffort * scaleFactor,
			DurationDays: int(math.Ceil(float64(tmpl.BaseDurationDays) * math.Sqrt(scaleFactor))),
		}
		if prevID != "" {
			action.Prerequisites = []string{prevID}
		}
		if scaleFactor > 1.5 {
			action.Risks = append(action.Risks, models.Risk{
				Category:    models.RiskExecution,
				Probability: 0.4,
				Impact:      0.6,
				Mitigation:  "Split the work into smaller increments with weekly checkpoints",
			})
		}
		if action.DurationDays > 20 {
			action.Risks = append(action.Risks, models.Risk{
				Category:    models.RiskDependency,
				Probability: 0.3,
				Impact:      0.5,
				Mitigation:  "Front-load external dependencies and track them explicitly",
			})
		}
		actions = append(actions, action)
		prevID = action.ID
	}
	return actions
}

// buildMilestones places one milestone at each phase boundary with the
// pro-rated per-axis score expected by that day.
func buildMilestones(phases []models.ActionPhase, goal models.NormalizedGoal) []models.Milestone {
	milestones := make([]models.Milestone, 0, len(phases))
	for _, phase := range phases {
		criteria := make(models.ScoreMap, len(phase.Axes))
		progress := float64(phase.EndDay) / float64(goal.TimeframeDays)
		for _, axis := range phase.Axes {
			criteria[axis] = goal.Targets[axis] * progress
		}

		totalImprovement := 0.0
		for _, v := range phase.ExpectedImprovement {
			totalImprovement += math.Abs(v)
		}
		importance := models.MilestoneMinor
		switch {
		case totalImprovement > 30:
			importance = models.MilestoneCritical
		case totalImprovement > 15:
			importance = models.MilestoneMajor
		}

		milestones = append(milestones, models.Milestone{
			ID:         fmt.Sprintf("milestone-%s", phase.ID),
			Day:        phase.EndDay,
			Criteria:   criteria,
			Importance: importance,
		})
	}
	return milestones
}

// deriveDependencies links consecutive phases, turns action prerequisites
// into blocking edges, and adds enabling edges where the relationship matrix
// shows a strong cross-axis influence between an earlier and a later phase.
func (e *Engine) deriveDependencies(phases []models.ActionPhase) []models.ActionDependency {
	deps := make([]models.ActionDependency, 0)

	for i := 1; i < len(phases); i++ {
		deps = append(deps, models.ActionDependency{
			From: phases[i-1].ID,
			To:   phases[i].ID,
			Type: models.DependencyEnables,
		})
	}

	for _, phase := range phases {
		for _, action := range phase.Actions {
			for _, prereq := range action.Prerequisites {
				deps = append(deps, models.ActionDependency{
					From: prereq,
					To:   action.ID,
					Type: models.DependencyBlocks,
				})
			}
		}
	}

	const influenceThreshold = 0.5
	for i := 0; i < len(phases); i++ {
		for j := i + 1; j < len(phases); j++ {
			for _, from := range phases[i].Axes {
				for _, to := range phases[j].Axes {
					if e.relationships.Influence(from, to) >= influenceThreshold {
						deps = append(deps, models.ActionDependency{
							From: firstActionID(phases[i], from),
							To:   firstActionID(phases[j], to),
							Type: models.DependencyEnables,
						})
					}
				}
			}
		}
	}

	return deps
}

func firstActionID(phase models.ActionPhase, axis models.Axis) string {
	for _, action := range phase.Actions {
		if action.Axis == axis {
			return action.ID
		}
	}
	return phase.ID
}

// buildCriticalPath approximates the limiting chain as each phase followed by
// its highest-impact action, in phase order. This is a deliberate heuristic,
// not a full CPM solve.
func buildCriticalPath(phases []models.ActionPhase) []string {
	path := make([]string, 0, len(phases)*2)
	for _, phase := range phases {
		path = append(path, phase.ID)
		if top := highestImpactAction(phase); top != "" {
			path = append(path, top)
		}
	}
	return path
}

func highestImpactAction(phase models.ActionPhase) string {
	best := ""
	bestImpact := math.Inf(-1)
	for _, action := range phase.Actions {
		if action.Impact > bestImpact {
			bestImpact = action.Impact
			best = action.ID
		}
	}
	return best
}

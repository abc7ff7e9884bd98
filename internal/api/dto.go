package api

import (
	"time"

	"github.com/tractionlens/plan-engine/internal/models"
)

// PlanRequestDTO is the JSON body of a reverse-planning call.
type PlanRequestDTO struct {
	TenantID      string               `json:"tenant_id"`
	ProfileID     string               `json:"profile_id"`
	CurrentScores map[string]float64   `json:"current_scores,omitempty"`
	Goal          GoalSpecificationDTO `json:"goal"`
}

// GoalSpecificationDTO mirrors models.GoalSpecification on the wire.
type GoalSpecificationDTO struct {
	TargetScores  map[string]float64  `json:"target_scores,omitempty"`
	TargetOverall *float64            `json:"target_overall,omitempty"`
	TimeframeDays int                 `json:"timeframe_days"`
	Constraints   *GoalConstraintsDTO `json:"constraints,omitempty"`
	Priorities    []AxisPriorityDTO   `json:"priorities,omitempty"`
}

// GoalConstraintsDTO mirrors models.GoalConstraints.
type GoalConstraintsDTO struct {
	MaxDailyChange map[string]float64       `json:"max_daily_change,omitempty"`
	MinScores      map[string]float64       `json:"min_scores,omitempty"`
	CrossAxisDeps  []CrossAxisDependencyDTO `json:"cross_axis_deps,omitempty"`
	Resources      *ResourceConstraintsDTO  `json:"resources,omitempty"`
}

// CrossAxisDependencyDTO mirrors models.CrossAxisDependency.
type CrossAxisDependencyDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// ResourceConstraintsDTO mirrors models.ResourceConstraints.
type ResourceConstraintsDTO struct {
	MaxBudget    float64 `json:"max_budget,omitempty"`
	MaxTimeHours float64 `json:"max_time_hours,omitempty"`
	MaxTeamSize  int     `json:"max_team_size,omitempty"`
}

// AxisPriorityDTO mirrors models.AxisPriority.
type AxisPriorityDTO struct {
	Axis        string  `json:"axis"`
	Weight      float64 `json:"weight"`
	Flexibility string  `json:"flexibility,omitempty"`
}

// PlanResultDTO is the JSON rendering of a ReverseCalculationResult.
type PlanResultDTO struct {
	PlanID               string                `json:"plan_id"`
	RequiredChanges      []RequiredChangeDTO   `json:"required_changes"`
	ActionPlan           ActionPlanDTO         `json:"action_plan"`
	Feasibility          FeasibilityDTO        `json:"feasibility"`
	AlternativeScenarios []ScenarioDTO         `json:"alternative_scenarios"`
	ResourceAllocation   ResourceAllocationDTO `json:"resource_allocation"`
	Timeline             TimelineDTO           `json:"timeline"`
	GeneratedAt          time.Time             `json:"generated_at"`
}

type RequiredChangeDTO struct {
	Axis                string  `json:"axis"`
	CurrentScore        float64 `json:"current_score"`
	TargetScore         float64 `json:"target_score"`
	RequiredImprovement float64 `json:"required_improvement"`
	DailyRate           float64 `json:"daily_rate"`
	Difficulty          string  `json:"difficulty"`
	Confidence          float64 `json:"confidence"`
}

type RiskDTO struct {
	Category    string  `json:"category"`
	Probability float64 `json:"probability"`
	Impact      float64 `json:"impact"`
	Mitigation  string  `json:"mitigation"`
}

type ActionDTO struct {
	ID            string    `json:"id"`
	Axis          string    `json:"axis"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Impact        float64   `json:"impact"`
	Effort        float64   `json:"effort"`
	DurationDays  int       `json:"duration_days"`
	Prerequisites []string  `json:"prerequisites,omitempty"`
	Risks         []RiskDTO `json:"risks,omitempty"`
}

type PhaseDTO struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	StartDay            int                `json:"start_day"`
	EndDay              int                `json:"end_day"`
	Axes                []string           `json:"axes"`
	Actions             []ActionDTO        `json:"actions"`
	ExpectedImprovement map[string]float64 `json:"expected_improvement"`
	Budget              float64            `json:"budget"`
	TimeHours           float64            `json:"time_hours"`
	TeamSize            int                `json:"team_size"`
}

type MilestoneDTO struct {
	ID         string             `json:"id"`
	Day        int                `json:"day"`
	Criteria   map[string]float64 `json:"criteria"`
	Importance string             `json:"importance"`
}

type DependencyDTO struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Type    string `json:"type"`
	LagDays int    `json:"lag_days"`
}

type ActionPlanDTO struct {
	Phases       []PhaseDTO      `json:"phases"`
	Milestones   []MilestoneDTO  `json:"milestones"`
	Dependencies []DependencyDTO `json:"dependencies"`
	CriticalPath []string        `json:"critical_path"`
}

type BottleneckDTO struct {
	Type        string   `json:"type"`
	Axes        []string `json:"axes,omitempty"`
	Description string   `json:"description"`
	Suggestion  string   `json:"suggestion"`
}

type FeasibilityDTO struct {
	OverallFeasibility float64         `json:"overall_feasibility"`
	RiskLevel          string          `json:"risk_level"`
	SuccessProbability float64         `json:"success_probability"`
	Bottlenecks        []BottleneckDTO `json:"bottlenecks"`
	Recommendations    []string        `json:"recommendations"`
}

type ScenarioDTO struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Targets       map[string]float64 `json:"targets"`
	TimeframeDays int                `json:"timeframe_days"`
	Feasibility   float64            `json:"feasibility"`
	TradeOffs     []string           `json:"trade_offs"`
}

type AxisAllocationDTO struct {
	Budget    float64 `json:"budget"`
	TimeHours float64 `json:"time_hours"`
	TeamSize  int     `json:"team_size"`
	ROI       float64 `json:"roi"`
}

type ResourceAllocationDTO struct {
	TotalBudget    float64                      `json:"total_budget"`
	TotalTimeHours float64                      `json:"total_time_hours"`
	TotalTeamSize  int                          `json:"total_team_size"`
	ByAxis         map[string]AxisAllocationDTO `json:"by_axis"`
	Efficiency     float64                      `json:"efficiency"`
	Suggestions    []string                     `json:"suggestions"`
}

type PhaseWindowDTO struct {
	PhaseID        string `json:"phase_id"`
	Name           string `json:"name"`
	StartDay       int    `json:"start_day"`
	EndDay         int    `json:"end_day"`
	Parallelizable bool   `json:"parallelizable"`
}

type CriticalDateDTO struct {
	Day        int                `json:"day"`
	Label      string             `json:"label"`
	Criteria   map[string]float64 `json:"criteria"`
	Importance string             `json:"importance"`
}

type TimelineDTO struct {
	TotalDays     int               `json:"total_days"`
	Windows       []PhaseWindowDTO  `json:"windows"`
	CriticalDates []CriticalDateDTO `json:"critical_dates"`
	BufferDays    int               `json:"buffer_days"`
}

// FromRequestDTO maps the wire request into domain types.
func FromRequestDTO(dto PlanRequestDTO) models.PlanRequest {
	req := models.PlanRequest{
		TenantID:  dto.TenantID,
		ProfileID: dto.ProfileID,
		Goal: models.GoalSpecification{
			TargetOverall: dto.Goal.TargetOverall,
			TimeframeDays: dto.Goal.TimeframeDays,
		},
	}
	if dto.CurrentScores != nil {
		req.CurrentScores = toScoreMap(dto.CurrentScores)
	}
	if dto.Goal.TargetScores != nil {
		req.Goal.TargetScores = toScoreMap(dto.Goal.TargetScores)
	}
	if dto.Goal.Constraints != nil {
		req.Goal.Constraints = fromConstraintsDTO(dto.Goal.Constraints)
	}
	for _, p := range dto.Goal.Priorities {
		flexibility := models.Flexibility(p.Flexibility)
		if flexibility == "" {
			flexibility = models.FlexibilityFlexible
		}
		req.Goal.Priorities = append(req.Goal.Priorities, models.AxisPriority{
			Axis:        models.Axis(p.Axis),
			Weight:      p.Weight,
			Flexibility: flexibility,
		})
	}
	return req
}

func fromConstraintsDTO(dto *GoalConstraintsDTO) *models.GoalConstraints {
	constraints := &models.GoalConstraints{}
	if dto.MaxDailyChange != nil {
		constraints.MaxDailyChange = map[models.Axis]float64(toScoreMap(dto.MaxDailyChange))
	}
	if dto.MinScores != nil {
		constraints.MinScores = map[models.Axis]float64(toScoreMap(dto.MinScores))
	}
	for _, dep := range dto.CrossAxisDeps {
		constraints.CrossAxisDeps = append(constraints.CrossAxisDeps, models.CrossAxisDependency{
			From: models.Axis(dep.From),
			To:   models.Axis(dep.To),
		})
	}
	if dto.Resources != nil {
		constraints.Resources = &models.ResourceConstraints{
			MaxBudget:    dto.Resources.MaxBudget,
			MaxTimeHours: dto.Resources.MaxTimeHours,
			MaxTeamSize:  dto.Resources.MaxTeamSize,
		}
	}
	return constraints
}

// ToResultDTO maps a domain result into its wire representation.
func ToResultDTO(res models.ReverseCalculationResult) PlanResultDTO {
	dto := PlanResultDTO{
		PlanID:      res.PlanID,
		GeneratedAt: res.GeneratedAt,
		ActionPlan: ActionPlanDTO{
			CriticalPath: append([]string(nil), res.ActionPlan.CriticalPath...),
		},
		Feasibility: FeasibilityDTO{
			OverallFeasibility: res.Feasibility.OverallFeasibility,
			RiskLevel:          string(res.Feasibility.RiskLevel),
			SuccessProbability: res.Feasibility.SuccessProbability,
			Recommendations:    append([]string(nil), res.Feasibility.Recommendations...),
		},
		ResourceAllocation: ResourceAllocationDTO{
			TotalBudget:    res.ResourceAllocation.TotalBudget,
			TotalTimeHours: res.ResourceAllocation.TotalTimeHours,
			TotalTeamSize:  res.ResourceAllocation.TotalTeamSize,
			ByAxis:         make(map[string]AxisAllocationDTO, len(res.ResourceAllocation.ByAxis)),
			Efficiency:     res.ResourceAllocation.Efficiency,
			Suggestions:    append([]string(nil), res.ResourceAllocation.Suggestions...),
		},
		Timeline: TimelineDTO{
			TotalDays:  res.Timeline.TotalDays,
			BufferDays: res.Timeline.BufferDays,
		},
	}

	for _, change := range res.RequiredChanges {
		dto.RequiredChanges = append(dto.RequiredChanges, RequiredChangeDTO{
			Axis:                string(change.Axis),
			CurrentScore:        change.CurrentScore,
			TargetScore:         change.TargetScore,
			RequiredImprovement: change.RequiredImprovement,
			DailyRate:           change.DailyRate,
			Difficulty:          string(change.Difficulty),
			Confidence:          change.Confidence,
		})
	}

	for _, phase := range res.ActionPlan.Phases {
		phaseDTO := PhaseDTO{
			ID:                  phase.ID,
			Name:                phase.Name,
			StartDay:            phase.StartDay,
			EndDay:              phase.EndDay,
			Axes:                axesToStrings(phase.Axes),
			ExpectedImprovement: fromScoreMap(phase.ExpectedImprovement),
			Budget:              phase.Resources.Budget,
			TimeHours:           phase.Resources.TimeHours,
			TeamSize:            phase.Resources.TeamSize,
		}
		for _, action := range phase.Actions {
			actionDTO := ActionDTO{
				ID:            action.ID,
				Axis:          string(action.Axis),
				Name:          action.Name,
				Category:      action.Category,
				Impact:        action.Impact,
				Effort:        action.Effort,
				DurationDays:  action.DurationDays,
				Prerequisites: append([]string(nil), action.Prerequisites...),
			}
			for _, risk := range action.Risks {
				actionDTO.Risks = append(actionDTO.Risks, RiskDTO{
					Category:    string(risk.Category),
					Probability: risk.Probability,
					Impact:      risk.Impact,
					Mitigation:  risk.Mitigation,
				})
			}
			phaseDTO.Actions = append(phaseDTO.Actions, actionDTO)
		}
		dto.ActionPlan.Phases = append(dto.ActionPlan.Phases, phaseDTO)
	}

	for _, m := range res.ActionPlan.Milestones {
		dto.ActionPlan.Milestones = append(dto.ActionPlan.Milestones, MilestoneDTO{
			ID:         m.ID,
			Day:        m.Day,
			Criteria:   fromScoreMap(m.Criteria),
			Importance: string(m.Importance),
		})
	}

	for _, dep := range res.ActionPlan.Dependencies {
		dto.ActionPlan.Dependencies = append(dto.ActionPlan.Dependencies, DependencyDTO{
			From:    dep.From,
			To:      dep.To,
			Type:    string(dep.Type),
			LagDays: dep.LagDays,
		})
	}

	for _, b := range res.Feasibility.Bottlenecks {
		dto.Feasibility.Bottlenecks = append(dto.Feasibility.Bottlenecks, BottleneckDTO{
			Type:        string(b.Type),
			Axes:        axesToStrings(b.Axes),
			Description: b.Description,
			Suggestion:  b.Suggestion,
		})
	}

	for _, scenario := range res.AlternativeScenarios {
		dto.AlternativeScenarios = append(dto.AlternativeScenarios, ScenarioDTO{
			ID:            scenario.ID,
			Name:          scenario.Name,
			Description:   scenario.Description,
			Targets:       fromScoreMap(scenario.Targets),
			TimeframeDays: scenario.TimeframeDays,
			Feasibility:   scenario.Feasibility,
			TradeOffs:     append([]string(nil), scenario.TradeOffs...),
		})
	}

	for axis, alloc := range res.ResourceAllocation.ByAxis {
		dto.ResourceAllocation.ByAxis[string(axis)] = AxisAllocationDTO{
			Budget:    alloc.Budget,
			TimeHours: alloc.TimeHours,
			TeamSize:  alloc.TeamSize,
			ROI:       alloc.ROI,
		}
	}

	for _, window := range res.Timeline.Windows {
		dto.Timeline.Windows = append(dto.Timeline.Windows, PhaseWindowDTO{
			PhaseID:        window.PhaseID,
			Name:           window.Name,
			StartDay:       window.StartDay,
			EndDay:         window.EndDay,
			Parallelizable: window.Parallelizable,
		})
	}
	for _, date := range res.Timeline.CriticalDates {
		dto.Timeline.CriticalDates = append(dto.Timeline.CriticalDates, CriticalDateDTO{
			Day:        date.Day,
			Label:      date.Label,
			Criteria:   fromScoreMap(date.Criteria),
			Importance: string(date.Importance),
		})
	}

	return dto
}

func toScoreMap(in map[string]float64) models.ScoreMap {
	out := make(models.ScoreMap, len(in))
	for k, v := range in {
		out[models.Axis(k)] = v
	}
	return out
}

func fromScoreMap(in models.ScoreMap) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[string(k)] = v
	}
	return out
}

func axesToStrings(axes []models.Axis) []string {
	if len(axes) == 0 {
		return nil
	}
	out := make([]string, 0, len(axes))
	for _, a := range axes {
		out = append(out, string(a))
	}
	return out
}

package models

// Flexibility tags how negotiable an axis priority is.
type Flexibility string

const (
	FlexibilityFixed    Flexibility = "fixed"
	FlexibilityFlexible Flexibility = "flexible"
	FlexibilityOptional Flexibility = "optional"
)

// AxisPriority weights one axis within a goal.
type AxisPriority struct {
	Axis        Axis
	Weight      float64
	Flexibility Flexibility
}

// ResourceConstraints caps the resources a plan may assume.
type ResourceConstraints struct {
	MaxBudget    float64
	MaxTimeHours float64
	MaxTeamSize  int
}

// CrossAxisDependency declares that progress on one axis depends on another.
type CrossAxisDependency struct {
	From Axis
	To   Axis
}

// GoalConstraints bounds how a goal may be pursued. All fields are optional.
type GoalConstraints struct {
	MaxDailyChange map[Axis]float64
	MinScores      map[Axis]float64
	CrossAxisDeps  []CrossAxisDependency
	Resources      *ResourceConstraints
}

// GoalSpecification is the raw goal as supplied by the caller. Either
// TargetScores or TargetOverall must be present; TargetOverall is only used
// when no per-axis targets are given.
type GoalSpecification struct {
	TargetScores  ScoreMap
	TargetOverall *float64
	TimeframeDays int
	Constraints   *GoalConstraints
	Priorities    []AxisPriority
}

// NormalizedGoal is a GoalSpecification after validation, target derivation,
// clamping and priority defaulting. Targets contains an entry for every axis
// the plan addresses.
type NormalizedGoal struct {
	Targets       ScoreMap
	TargetOverall *float64
	TimeframeDays int
	Constraints   *GoalConstraints
	Priorities    []AxisPriority
}

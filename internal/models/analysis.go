package models

import "time"

// RiskLevel grades overall plan risk.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelVeryHigh RiskLevel = "very_high"
)

// BottleneckType enumerates the limiting factors the analyzer can flag.
type BottleneckType string

const (
	BottleneckTime       BottleneckType = "time"
	BottleneckResource   BottleneckType = "resource"
	BottleneckDependency BottleneckType = "dependency"
)

// Bottleneck describes a limiting factor and a remediation suggestion.
// Advisory only; bottlenecks never fail a calculation.
type Bottleneck struct {
	Type        BottleneckType
	Axes        []Axis
	Description string
	Suggestion  string
}

// FeasibilityAnalysis scores how realistic the full goal is.
type FeasibilityAnalysis struct {
	OverallFeasibility float64
	RiskLevel          RiskLevel
	SuccessProbability float64
	Bottlenecks        []Bottleneck
	Recommendations    []string
}

// AlternativeScenario is a precomputed fallback plan shape.
type AlternativeScenario struct {
	ID            string
	Name          string
	Description   string
	Targets       ScoreMap
	TimeframeDays int
	Feasibility   float64
	TradeOffs     []string
}

// AxisAllocation is the per-axis share of the plan's resources.
type AxisAllocation struct {
	Budget    float64
	TimeHours float64
	TeamSize  int
	ROI       float64
}

// ResourceAllocation distributes budget/time/team across axes.
type ResourceAllocation struct {
	TotalBudget    float64
	TotalTimeHours float64
	TotalTeamSize  int
	ByAxis         map[Axis]AxisAllocation
	Efficiency     float64
	Suggestions    []string
}

// ReverseCalculationResult is the full output of one planner invocation.
type ReverseCalculationResult struct {
	PlanID               string
	RequiredChanges      []RequiredChange
	ActionPlan           ActionPlan
	Feasibility          FeasibilityAnalysis
	AlternativeScenarios []AlternativeScenario
	ResourceAllocation   ResourceAllocation
	Timeline             Timeline
	GeneratedAt          time.Time
}

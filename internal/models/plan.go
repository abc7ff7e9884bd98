package models

// Difficulty classifies how hard an axis's required change is to achieve.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
	DifficultyVeryHard Difficulty = "very_hard"
)

// RequiredChange captures the per-axis gap between current and target state.
// Immutable after creation.
type RequiredChange struct {
	Axis                Axis
	CurrentScore        float64
	TargetScore         float64
	RequiredImprovement float64
	DailyRate           float64
	Difficulty          Difficulty
	Confidence          float64
}

// RiskCategory enumerates the sources of plan risk.
type RiskCategory string

const (
	RiskExecution  RiskCategory = "execution"
	RiskDependency RiskCategory = "dependency"
	RiskExternal   RiskCategory = "external"
	RiskResource   RiskCategory = "resource"
)

// Risk attaches a scored hazard and its mitigation to an action.
type Risk struct {
	Category    RiskCategory
	Probability float64
	Impact      float64
	Mitigation  string
}

// DetailedAction is a named unit of work tied to one axis.
type DetailedAction struct {
	ID            string
	Axis          Axis
	Name          string
	Category      string
	Impact        float64
	Effort        float64
	DurationDays  int
	Prerequisites []string
	Risks         []Risk
}

// PhaseResources estimates what a phase consumes.
type PhaseResources struct {
	Budget    float64
	TimeHours float64
	TeamSize  int
}

// ActionPhase is an ordered time window [StartDay, EndDay) addressing a set
// of axes. Phases are contiguous and sorted by ascending difficulty.
type ActionPhase struct {
	ID                  string
	Name                string
	StartDay            int
	EndDay              int
	Axes                []Axis
	Actions             []DetailedAction
	ExpectedImprovement ScoreMap
	Resources           PhaseResources
}

// MilestoneImportance tiers milestones by how much improvement they gate.
type MilestoneImportance string

const (
	MilestoneCritical MilestoneImportance = "critical"
	MilestoneMajor    MilestoneImportance = "major"
	MilestoneMinor    MilestoneImportance = "minor"
)

// Milestone marks expected per-axis scores at a day offset.
type Milestone struct {
	ID         string
	Day        int
	Criteria   ScoreMap
	Importance MilestoneImportance
}

// DependencyType enumerates edge semantics between plan elements.
type DependencyType string

const (
	DependencyBlocks   DependencyType = "blocks"
	DependencyEnables  DependencyType = "enables"
	DependencyOptional DependencyType = "optional"
)

// ActionDependency is a directed edge between two action or phase identifiers.
type ActionDependency struct {
	From    string
	To      string
	Type    DependencyType
	LagDays int
}

// ActionPlan bundles the generated phases, milestones, dependency graph and
// the heuristic critical path.
type ActionPlan struct {
	Phases       []ActionPhase
	Milestones   []Milestone
	Dependencies []ActionDependency
	CriticalPath []string
}

// PhaseWindow is the calendar view of a phase.
type PhaseWindow struct {
	PhaseID        string
	Name           string
	StartDay       int
	EndDay         int
	Parallelizable bool
}

// CriticalDate annotates a milestone day with its score requirements.
type CriticalDate struct {
	Day        int
	Label      string
	Criteria   ScoreMap
	Importance MilestoneImportance
}

// Timeline is the calendar-relative rendering of the plan.
type Timeline struct {
	TotalDays     int
	Windows       []PhaseWindow
	CriticalDates []CriticalDate
	BufferDays    int
}

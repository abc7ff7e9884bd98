package models

// PlanRequest represents one reverse-planning call at the service boundary.
// CurrentScores may be supplied inline; when nil the service fetches the
// latest snapshot from the profile service.
type PlanRequest struct {
	TenantID      string
	ProfileID     string
	Goal          GoalSpecification
	CurrentScores ScoreMap
}

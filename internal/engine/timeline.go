package engine

import (
	"fmt"

	"github.com/tractionlens/plan-engine/internal/models"
)

// buildTimeline converts phases and milestones into a calendar-relative view
// with a scheduling buffer.
func (e *Engine) buildTimeline(plan models.ActionPlan, goal models.NormalizedGoal) models.Timeline {
	windows := make([]models.PhaseWindow, 0, len(plan.Phases))
	for _, phase := range plan.Phases {
		windows = append(windows, models.PhaseWindow{
			PhaseID:        phase.ID,
			Name:           phase.Name,
			StartDay:       phase.StartDay,
			EndDay:         phase.EndDay,
			Parallelizable: len(phase.Axes) > 1,
		})
	}

	dates := make([]models.CriticalDate, 0, len(plan.Milestones))
	for _, m := range plan.Milestones {
		dates = append(dates, models.CriticalDate{
			Day:        m.Day,
			Label:      fmt.Sprintf("Milestone: %d axis target(s) due", len(m.Criteria)),
			Criteria:   m.Criteria.Clone(),
			Importance: m.Importance,
		})
	}

	buffer := goal.TimeframeDays / 10
	if buffer < 7 {
		buffer = 7
	}

	return models.Timeline{
		TotalDays:     goal.TimeframeDays,
		Windows:       windows,
		CriticalDates: dates,
		BufferDays:    buffer,
	}
}

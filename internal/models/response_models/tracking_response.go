package response_models

import "babylog/internal/models/db_models"

// RecentEvents is the per-baby dashboard payload: the newest events of
// each kind, independently limited and ordered.
type RecentEvents struct {
	Eliminations  []db_models.Elimination `json:"eliminations"`
	Feedings      []db_models.Feeding     `json:"feedings"`
	SleepSessions []db_models.Sleep       `json:"sleepSessions"`
	Milestones    []db_models.Milestone   `json:"milestones"`
	Measurements  []db_models.Measurement `json:"measurements"`
}

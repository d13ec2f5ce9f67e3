package domain

import "time"

type EventType string

const (
	EventSolutionStarted   EventType = "solution.started"
	EventSolutionSubmitted EventType = "solution.submitted"
	EventSolutionAccepted  EventType = "solution.accepted"
	EventSolutionRejected  EventType = "solution.rejected"
	EventProblemClosed     EventType = "problem.closed"
)

// SolutionEvent is the payload delivered to the outbound webhook.
type SolutionEvent struct {
	Type       EventType      `json:"type"`
	ProblemID  string         `json:"problem_id"`
	CompanyID  string         `json:"company_id,omitempty"`
	SolutionID string         `json:"solution_id,omitempty"`
	UserID     string         `json:"user_id,omitempty"`
	Status     SolutionStatus `json:"status,omitempty"`
	Reward     float64        `json:"reward,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

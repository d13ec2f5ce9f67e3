package domain

import "time"

type SolutionStatus string

const (
	SolutionInProgress SolutionStatus = "IN_PROGRESS"
	SolutionPending    SolutionStatus = "PENDING"
	SolutionAccepted   SolutionStatus = "ACCEPTED"
	SolutionRejected   SolutionStatus = "REJECTED"
)

var solutionTransitions = map[SolutionStatus][]SolutionStatus{
	SolutionInProgress: {SolutionPending},
	SolutionPending:    {SolutionAccepted, SolutionRejected},
}

// CanTransition reports whether the lifecycle allows moving from s to next.
// A status never transitions to itself.
func (s SolutionStatus) CanTransition(next SolutionStatus) bool {
	for _, allowed := range solutionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s SolutionStatus) IsTerminal() bool {
	return s == SolutionAccepted || s == SolutionRejected
}

// IsActive reports whether the solution still awaits work or review.
func (s SolutionStatus) IsActive() bool {
	return s == SolutionInProgress || s == SolutionPending
}

type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionReject Decision = "REJECT"
)

// Status returns the terminal status a decision leads to.
func (d Decision) Status() (SolutionStatus, bool) {
	switch d {
	case DecisionAccept:
		return SolutionAccepted, true
	case DecisionReject:
		return SolutionRejected, true
	}
	return "", false
}

// Settlement credits a solver's earnings as part of a solution update.
type Settlement struct {
	UserID string
	Amount float64
}

// SolutionUpdate is applied by storage only while the stored status equals From.
// Nil Content or SubmittedAt leave the stored values untouched.
type SolutionUpdate struct {
	ID          string
	From        SolutionStatus
	To          SolutionStatus
	Content     *string
	SubmittedAt *time.Time
	Settlement  *Settlement
}

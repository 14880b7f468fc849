package types

import (
	"fmt"
	"time"
)

// ReportStatus is the lifecycle stage of an issue report.
// Pending -> In Progress -> Resolved, forward only.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "Pending"
	ReportStatusInProgress ReportStatus = "In Progress"
	ReportStatusResolved   ReportStatus = "Resolved"
)

var reportTransitions = map[ReportStatus][]ReportStatus{
	ReportStatusPending:    {ReportStatusInProgress},
	ReportStatusInProgress: {ReportStatusResolved},
}

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved:
		return true
	}
	return false
}

func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	for _, allowed := range reportTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo wraps ErrInvalidTransition when next is not reachable
// from s.
func (s ReportStatus) TransitionTo(next ReportStatus) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: report cannot move from %s to %s", ErrInvalidTransition, s, next)
	}
	return nil
}

type Report struct {
	ID          int          `db:"id" json:"id"`
	UserID      int          `db:"user_id" json:"userId"`
	Category    string       `db:"category" json:"category"`
	Location    string       `db:"location" json:"location"`
	Description *string      `db:"description" json:"description,omitempty"`
	ImageURL    *string      `db:"image_url" json:"imageUrl,omitempty"`
	Status      ReportStatus `db:"status" json:"status"`
	CreatedAt   time.Time    `db:"created_at" json:"createdAt"`
}

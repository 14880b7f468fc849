package types

import (
	"fmt"
	"time"
)

// RequestStatus is the lifecycle stage of a document request.
// Pending -> Approved -> Ready, with Rejected reachable only from
// Pending. Ready and Rejected are terminal.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusReady    RequestStatus = "Ready"
	RequestStatusRejected RequestStatus = "Rejected"
)

var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusRejected},
	RequestStatusApproved: {RequestStatusReady},
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusReady, RequestStatusRejected:
		return true
	}
	return false
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo wraps ErrInvalidTransition when next is not reachable
// from s.
func (s RequestStatus) TransitionTo(next RequestStatus) error {
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: request cannot move from %s to %s", ErrInvalidTransition, s, next)
	}
	return nil
}

type Request struct {
	ID            int           `db:"id" json:"id"`
	UserID        int           `db:"user_id" json:"userId"`
	Type          string        `db:"type" json:"type"`
	Status        RequestStatus `db:"status" json:"status"`
	AttachmentURL *string       `db:"attachment_url" json:"attachmentUrl,omitempty"`
	UploadedAt    *time.Time    `db:"uploaded_at" json:"uploadedAt,omitempty"`
	CreatedAt     time.Time     `db:"created_at" json:"createdAt"`
}

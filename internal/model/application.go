package model

import (
	"time"

	"github.com/google/uuid"
)

// Application status values, in pipeline order. pending and injected_by_admin
// are the two entry points; accepted, rejected and discarded are terminal.
var (
	// ApplicationStatusPending indicates a fresh self-submitted application
	ApplicationStatusPending = "pending"
	// ApplicationStatusInjected indicates an admin inserted the candidate manually
	ApplicationStatusInjected = "injected_by_admin"
	// ApplicationStatusReviewing indicates a recruiter picked the application up
	ApplicationStatusReviewing = "reviewing"
	// ApplicationStatusSentToSpecialist indicates the recruiter forwarded it for evaluation
	ApplicationStatusSentToSpecialist = "sent_to_specialist"
	// ApplicationStatusEvaluating indicates a specialist is working on it
	ApplicationStatusEvaluating = "evaluating"
	// ApplicationStatusSentToCompany indicates the specialist forwarded it to the company
	ApplicationStatusSentToCompany = "sent_to_company"
	// ApplicationStatusInterviewed indicates the company held an interview
	ApplicationStatusInterviewed = "interviewed"
	// ApplicationStatusAccepted is terminal
	ApplicationStatusAccepted = "accepted"
	// ApplicationStatusRejected is terminal
	ApplicationStatusRejected = "rejected"
	// ApplicationStatusDiscarded is terminal, used when dropping an application mid-pipeline
	ApplicationStatusDiscarded = "discarded"
)

// applicationStatusRank orders the pipeline so a repeated forward request on
// an application already past that stage can be told apart from an illegal
// jump. Both entry statuses share rank 0; terminal statuses share the top.
var applicationStatusRank = map[string]int{
	ApplicationStatusPending:          0,
	ApplicationStatusInjected:         0,
	ApplicationStatusReviewing:        1,
	ApplicationStatusSentToSpecialist: 2,
	ApplicationStatusEvaluating:       3,
	ApplicationStatusSentToCompany:    4,
	ApplicationStatusInterviewed:      5,
	ApplicationStatusAccepted:         6,
	ApplicationStatusRejected:         6,
	ApplicationStatusDiscarded:        6,
}

// ApplicationStatusRank returns the pipeline position of status, or -1 for
// an unknown value.
func ApplicationStatusRank(status string) int {
	rank, ok := applicationStatusRank[status]
	if !ok {
		return -1
	}
	return rank
}

// ApplicationStatusTerminal reports whether status ends the pipeline.
func ApplicationStatusTerminal(status string) bool {
	return status == ApplicationStatusAccepted ||
		status == ApplicationStatusRejected ||
		status == ApplicationStatusDiscarded
}

// Application represents one candidate's submission to a job. CandidateEmail
// is stored lowercased and is unique per job, so re-applying with the same
// email (any casing) is rejected rather than duplicated. Status is the single
// source of truth for what every party sees.
type Application struct {
	ID             uint       `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobID          uint       `gorm:"not null;index;uniqueIndex:idx_job_candidate_email" json:"job_id"`
	Job            Job        `gorm:"foreignKey:JobID;references:ID" json:"-"`
	CandidateEmail string     `gorm:"type:text;not null;uniqueIndex:idx_job_candidate_email" json:"candidate_email"`
	CandidateName  string     `gorm:"type:text" json:"candidate_name"`
	CandidateID    *uuid.UUID `gorm:"type:uuid;index" json:"candidate_id,omitempty"`
	Status         string     `gorm:"type:text;not null" json:"status"`
	AppliedAt      time.Time  `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"applied_at"`
}

package model

import (
	"github.com/google/uuid"
)

// Recruiter-track status values for a JobAssignment.
var (
	// RecruiterStatusNotSent means the recruiter has not released the job yet
	RecruiterStatusNotSent = "not_sent"
	// RecruiterStatusSentToSpecialist means the job is released for evaluation
	RecruiterStatusSentToSpecialist = "sent_to_specialist"
)

// Specialist-track status values for a JobAssignment.
var (
	// SpecialistStatusPending means the specialist has not started yet
	SpecialistStatusPending = "pending"
	// SpecialistStatusInProgress means the specialist is screening candidates
	SpecialistStatusInProgress = "in_progress"
	// SpecialistStatusCompleted means the screening is done
	SpecialistStatusCompleted = "completed"
)

// AssignmentState is the tagged combination of the two status tracks. Only
// four pairs are legal; anything else means the release guard was bypassed.
type AssignmentState int

// Legal assignment states. The specialist track can only leave pending once
// the recruiter track reached sent_to_specialist.
const (
	AssignmentStateUnreleased AssignmentState = iota
	AssignmentStateReleased
	AssignmentStateInProgress
	AssignmentStateCompleted
	AssignmentStateInvalid
)

// JobAssignment records a job being routed to a specialist for candidate
// screening, independent of individual applications. The two status columns
// move in lock-step: releasing the recruiter track resets the specialist
// track to pending so a previous cycle's value can never leak through.
type JobAssignment struct {
	ID               uint       `gorm:"primaryKey;autoIncrement;->" json:"id"`
	JobID            uint       `gorm:"not null;uniqueIndex" json:"job_id"`
	Job              Job        `gorm:"foreignKey:JobID;references:ID" json:"-"`
	SpecialistID     *uuid.UUID `gorm:"type:uuid;index" json:"specialist_id,omitempty"`
	Specialist       *User      `gorm:"foreignKey:SpecialistID;references:ID" json:"-"`
	RecruiterStatus  string     `gorm:"type:text;not null;default:'not_sent'" json:"recruiter_status"`
	SpecialistStatus string     `gorm:"type:text;not null;default:'pending'" json:"specialist_status"`
}

// State folds the two status columns into the tagged state value.
func (a *JobAssignment) State() AssignmentState {
	switch {
	case a.RecruiterStatus == RecruiterStatusNotSent && a.SpecialistStatus == SpecialistStatusPending:
		return AssignmentStateUnreleased
	case a.RecruiterStatus == RecruiterStatusSentToSpecialist && a.SpecialistStatus == SpecialistStatusPending:
		return AssignmentStateReleased
	case a.RecruiterStatus == RecruiterStatusSentToSpecialist && a.SpecialistStatus == SpecialistStatusInProgress:
		return AssignmentStateInProgress
	case a.RecruiterStatus == RecruiterStatusSentToSpecialist && a.SpecialistStatus == SpecialistStatusCompleted:
		return AssignmentStateCompleted
	}
	return AssignmentStateInvalid
}

// Released reports whether the recruiter handed the job to the specialist.
func (a *JobAssignment) Released() bool {
	return a.RecruiterStatus == RecruiterStatusSentToSpecialist
}

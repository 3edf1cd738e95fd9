package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification kinds emitted by the lifecycle state machine.
var (
	// NotificationJobPublished fires when a job post is created and charged
	NotificationJobPublished = "job_published"
	// NotificationApplicationReceived fires on a new application
	NotificationApplicationReceived = "application_received"
	// NotificationApplicationAdvanced fires when an application moves forward in the pipeline
	NotificationApplicationAdvanced = "application_advanced"
	// NotificationApplicationConcluded fires when an application reaches a terminal status
	NotificationApplicationConcluded = "application_concluded"
	// NotificationAssignmentReleased fires when a recruiter releases a job to a specialist
	NotificationAssignmentReleased = "assignment_released"
	// NotificationAssignmentProgress fires when the specialist track changes
	NotificationAssignmentProgress = "assignment_progress"
)

// Notification is one inbox entry for a user. The state machine emits them
// best-effort after each accepted transition; delivery never blocks or rolls
// back the transition itself.
type Notification struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Kind      string    `gorm:"type:text;not null" json:"kind"`
	Payload   string    `gorm:"type:text" json:"payload"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

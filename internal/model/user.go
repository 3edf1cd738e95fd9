// Package model contain gorm model for recording data to database
package model

import (
	"time"

	"github.com/google/uuid"
)

// Role constants for every account kind the marketplace knows about.
var (
	// RoleCandidate is a job seeker applying to posted jobs
	RoleCandidate = "candidate"
	// RoleCompany is a paying account that spends credits to post jobs
	RoleCompany = "company"
	// RoleRecruiter is internal staff triaging incoming applications
	RoleRecruiter = "recruiter"
	// RoleSpecialist is internal staff evaluating candidates released by a recruiter
	RoleSpecialist = "specialist"
	// RoleAdmin has full access, including injecting candidates manually
	RoleAdmin = "admin"
)

// User is the account record shared by every role.
// Credits is only meaningful for company accounts; it is the balance
// job postings are charged against.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username  string    `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Email     *string   `gorm:"type:text" json:"email"`
	Password  string    `gorm:"type:text" json:"-"`
	Role      string    `gorm:"type:text;not null" json:"role"`
	Credits   int       `gorm:"not null;default:0" json:"credits"`
	CreatedAt time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"created_at"`
}

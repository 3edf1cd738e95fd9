package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EditableJobInfo is the part of a job post the company fills in.
// Profile, Seniority and WorkMode are the pricing-relevant fields; editing
// them later never changes the already charged CreditCost.
type EditableJobInfo struct {
	Title     string         `gorm:"type:text" json:"title"`
	Desc      string         `gorm:"type:text" json:"desc"`
	Req       string         `gorm:"type:text" json:"req"`
	Profile   string         `gorm:"type:text" json:"profile"`
	Seniority string         `gorm:"type:text" json:"seniority"`
	WorkMode  string         `gorm:"type:text" json:"work_mode"`
	Location  string         `gorm:"type:text" json:"location"`
	Salary    string         `gorm:"type:text" json:"salary"`
	Tags      pq.StringArray `gorm:"type:text[]" json:"tags"`
	Expiring  *time.Time     `gorm:"type:timestamp" json:"expiring,omitempty"`
}

// Job is gorm model for a paid job posting. CreditCost is snapshotted from
// the pricing resolver at creation time and never recomputed, so historical
// postings are immune to pricing-table changes.
type Job struct {
	ID        uint      `gorm:"primaryKey;autoIncrement;->" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index;<-:create" json:"company_id"`
	Company   User      `gorm:"foreignKey:CompanyID;references:ID" json:"-"`
	EditableJobInfo
	CreditCost    int            `gorm:"not null;<-:create" json:"credit_cost"`
	MatchedRuleID *uint          `gorm:"<-:create" json:"matched_rule_id,omitempty"`
	PostTime      time.Time      `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;->" json:"post_time"`
	Applications  []Application  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"applications,omitempty"`
	Assignment    *JobAssignment `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"assignment,omitempty"`
}

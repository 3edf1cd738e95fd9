package model

// PricingRule maps job attributes to a credit cost. Location-scoped rules
// (Location non-nil) take precedence over location-agnostic ones. Rules are
// loaded by the pricing table administrator and never mutated here; when
// several active rules tie on the same triple the lowest ID wins, so the
// autoincrement ID doubles as the insertion-order tie-break.
type PricingRule struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Profile   string  `gorm:"type:text;not null;index:idx_pricing_lookup" json:"profile"`
	Seniority string  `gorm:"type:text;not null;index:idx_pricing_lookup" json:"seniority"`
	WorkMode  string  `gorm:"type:text;not null;index:idx_pricing_lookup" json:"work_mode"`
	Location  *string `gorm:"type:text" json:"location"`
	Credits   int     `gorm:"not null" json:"credits"`
	IsActive  bool    `gorm:"not null;default:true" json:"is_active"`
}

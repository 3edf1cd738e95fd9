// Package pricing resolves how many credits a job posting costs. The
// resolver is a pure read over the pricing table; the same inputs always
// produce the same quote, so the UI preview and the server-side charge can
// never disagree.
package pricing

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

// DefaultCredits is charged when no active pricing rule matches, and for
// incomplete lookups that never reach the table.
const DefaultCredits = 5

// Quote is the resolver's answer. MatchedRuleID is only meaningful when
// Found is true.
type Quote struct {
	Credits       int  `json:"credits"`
	Found         bool `json:"found"`
	MatchedRuleID uint `json:"matched_rule_id,omitempty"`
}

// Resolver looks up credit costs in the pricing table.
type Resolver struct {
	DB *database.DBinstanceStruct
}

// NewResolver creates a new Resolver backed by the given database.
func NewResolver(db *database.DBinstanceStruct) *Resolver {
	return &Resolver{DB: db}
}

// lookupStep narrows or relaxes the rule query for one fallback stage.
type lookupStep struct {
	name  string
	scope func(*gorm.DB) *gorm.DB
}

// Lookup order: rules scoped to the bare triple (location IS NULL) are the
// primary match; only when none exists is the location constraint dropped so
// older location-scoped rows can still answer. Within a step ties are broken
// by lowest ID (insertion order).
var lookupSteps = []lookupStep{
	{
		name: "location_null",
		scope: func(q *gorm.DB) *gorm.DB {
			return q.Where("location IS NULL")
		},
	},
	{
		name: "any_location",
		scope: func(q *gorm.DB) *gorm.DB {
			return q
		},
	},
}

// ResolveCreditCost returns the credit cost for the given job attributes.
// Empty inputs short-circuit to the default without querying the table.
// Storage failures propagate to the caller; a rule is never fabricated.
func (r *Resolver) ResolveCreditCost(profile, seniority, workMode string) (Quote, error) {
	if profile == "" || seniority == "" || workMode == "" {
		return Quote{Credits: DefaultCredits, Found: false}, nil
	}

	for _, step := range lookupSteps {
		var rule model.PricingRule
		q := r.DB.
			Where("profile = ? AND seniority = ? AND work_mode = ? AND is_active = ?",
				profile, seniority, workMode, true)
		q = step.scope(q)

		err := q.Order("id ASC").First(&rule).Error
		if err == nil {
			return Quote{
				Credits:       rule.Credits,
				Found:         true,
				MatchedRuleID: rule.ID,
			}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return Quote{}, err
		}
	}

	return Quote{Credits: DefaultCredits, Found: false}, nil
}

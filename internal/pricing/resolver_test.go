package pricing

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var teardown func(context.Context) error
	teardown, testDB, err = database.GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	code := m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if teardown != nil {
		_ = teardown(ctx)
	}
	os.Exit(code)
}

func TestResolve_PrefersUnscopedRule(t *testing.T) {
	r := NewResolver(testDB)

	// Rules 1 (NULL, 3cr), 2 (Monterrey, 9cr) and 4 (NULL, 4cr) all cover
	// the triple; the NULL-location rule with the lowest ID must win.
	quote, err := r.ResolveCreditCost("Tecnología", "Jr", "remote")
	assert.NoError(t, err)
	assert.True(t, quote.Found)
	assert.Equal(t, 3, quote.Credits)
	assert.Equal(t, uint(1), quote.MatchedRuleID)
}

func TestResolve_FallsBackToLocationScopedRule(t *testing.T) {
	r := NewResolver(testDB)

	// No NULL-location rule exists for Tecnología/Sr/remote, so the lookup
	// relaxes and finds rule 3 (CDMX).
	quote, err := r.ResolveCreditCost("Tecnología", "Sr", "remote")
	assert.NoError(t, err)
	assert.True(t, quote.Found)
	assert.Equal(t, 7, quote.Credits)
	assert.Equal(t, uint(3), quote.MatchedRuleID)
}

func TestResolve_IgnoresInactiveRules(t *testing.T) {
	r := NewResolver(testDB)

	// Rule 5 covers Diseño/Mid/hybrid but is inactive.
	quote, err := r.ResolveCreditCost("Diseño", "Mid", "hybrid")
	assert.NoError(t, err)
	assert.False(t, quote.Found)
	assert.Equal(t, DefaultCredits, quote.Credits)
}

func TestResolve_DefaultWhenNoRuleMatches(t *testing.T) {
	r := NewResolver(testDB)

	quote, err := r.ResolveCreditCost("Ventas", "Jr", "onsite")
	assert.NoError(t, err)
	assert.False(t, quote.Found)
	assert.Equal(t, DefaultCredits, quote.Credits)
	assert.Zero(t, quote.MatchedRuleID)
}

func TestResolve_EmptyInputShortCircuits(t *testing.T) {
	r := NewResolver(testDB)

	for _, args := range [][3]string{
		{"", "Jr", "remote"},
		{"Tecnología", "", "remote"},
		{"Tecnología", "Jr", ""},
		{"", "", ""},
	} {
		quote, err := r.ResolveCreditCost(args[0], args[1], args[2])
		assert.NoError(t, err)
		assert.False(t, quote.Found)
		assert.Equal(t, DefaultCredits, quote.Credits)
	}
}

func TestResolve_Deterministic(t *testing.T) {
	r := NewResolver(testDB)

	first, err := r.ResolveCreditCost("Tecnología", "Jr", "remote")
	assert.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := r.ResolveCreditCost("Tecnología", "Jr", "remote")
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

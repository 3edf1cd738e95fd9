package database

import (
	"context"
	"log"
	"testing"
	"time"

	// Load env
	_ "github.com/joho/godotenv/autoload"
)

var testDB *DBinstanceStruct

func TestMain(m *testing.M) {
	td, db, err := GetTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}
	testDB = db

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if td != nil {
		_ = td(ctx)
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()

	if stats["status"] != "up" {
		t.Fatalf("expected status to be up, got %s", stats["status"])
	}

	if _, ok := stats["error"]; ok {
		t.Fatalf("expected error not to be present")
	}

	if stats["message"] != "It's healthy" {
		t.Fatalf("expected message to be 'It's healthy', got %s", stats["message"])
	}
}

func TestSeedData(t *testing.T) {
	if TestCompanyUser1.Credits != 100 {
		t.Fatalf("company_user_1 not seeded as expected: %+v", TestCompanyUser1)
	}
	if len(TestPricingRules) != 5 {
		t.Fatalf("expected 5 seeded pricing rules, got %d", len(TestPricingRules))
	}
	if TestAssignment1.JobID != TestJob1.ID {
		t.Fatalf("assignment 1 not linked to job 1")
	}
}

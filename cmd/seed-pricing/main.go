// Command seed-pricing loads pricing rules from a JSON file into the pricing
// table. Existing rules with the same ID are updated, new ones inserted.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm/clause"

	"github.com/Inakat-Human-Resources/inakat-sub004/internal/database"
	"github.com/Inakat-Human-Resources/inakat-sub004/internal/model"
)

func main() {
	path := flag.String("file", "pricing_rules.json", "path to the pricing rules JSON file")
	flag.Parse()

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *path, err)
	}

	var rules []model.PricingRule
	if err := json.Unmarshal(raw, &rules); err != nil {
		log.Fatalf("Failed to parse %s: %v", *path, err)
	}
	if len(rules) == 0 {
		log.Fatalf("%s contains no rules", *path)
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialize: %v", err)
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&rules).Error; err != nil {
		log.Fatalf("Failed to upsert pricing rules: %v", err)
	}

	fmt.Printf("Loaded %d pricing rules from %s\n", len(rules), *path)
}

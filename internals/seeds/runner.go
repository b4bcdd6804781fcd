// internals/seeds/runner.go
package seeds

import (
	"log"
	"strings"

	"gorm.io/gorm"

	"perseverantia_backend/internals/configs"
)

// Run executes the seeders when SEED_ON_BOOT=true.
func Run(db *gorm.DB) {
	if !strings.EqualFold(configs.GetEnv("SEED_ON_BOOT", "false"), "true") {
		return
	}
	log.Println("🌱 Running seeders...")
	if err := SeedEvents(db); err != nil {
		log.Printf("❌ Seeding failed: %v", err)
		return
	}
	log.Println("✅ Seeding complete")
}

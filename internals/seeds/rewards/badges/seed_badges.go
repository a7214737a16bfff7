package badges

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"ecolearn_backend/internals/features/rewards/badge/model"
)

type BadgeSeed struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	UnlockCriteria string `json:"unlock_criteria"`
}

// SeedBadgesFromJSON loads the starter badge set; existing names are skipped.
func SeedBadgesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading badge seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []BadgeSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.BadgeModel
		if err := db.Where("badge_name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Badge '%s' already exists, skipped.", data.Name)
			continue
		}

		badge := model.BadgeModel{
			BadgeName:           data.Name,
			BadgeDescription:    data.Description,
			BadgeUnlockCriteria: data.UnlockCriteria,
		}
		if err := db.Create(&badge).Error; err != nil {
			log.Printf("❌ Failed to insert badge '%s': %v", data.Name, err)
		} else {
			log.Printf("✅ Seeded badge '%s'", data.Name)
		}
	}
}

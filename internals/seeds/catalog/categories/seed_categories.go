package categories

import (
	"encoding/json"
	"log"
	"os"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"ecolearn_backend/internals/features/catalog/category/model"
)

type CategorySeed struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	GradeMin    *int     `json:"grade_min"`
	GradeMax    *int     `json:"grade_max"`
	Streams     []string `json:"streams"`
	SubTopics   []string `json:"subtopics"`
}

// SeedCategoriesFromJSON loads the starter taxonomy. Existing category names
// are skipped so the seeder is safe to re-run.
func SeedCategoriesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading category seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read seed file: %v", err)
	}

	var inputs []CategorySeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode seed JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.CategoryModel
		if err := db.Where("category_name = ?", data.Name).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Category '%s' already exists, skipped.", data.Name)
			continue
		}

		cat := model.CategoryModel{
			CategoryName:        data.Name,
			CategoryDescription: data.Description,
			CategoryGradeMin:    data.GradeMin,
			CategoryGradeMax:    data.GradeMax,
			CategoryStreams:     pq.StringArray(data.Streams),
		}
		if err := db.Create(&cat).Error; err != nil {
			log.Printf("❌ Failed to insert category '%s': %v", data.Name, err)
			continue
		}

		for _, name := range data.SubTopics {
			sub := model.SubTopicModel{
				SubTopicCategoryID: cat.CategoryID,
				SubTopicName:       name,
			}
			if err := db.Create(&sub).Error; err != nil {
				log.Printf("❌ Failed to insert subtopic '%s': %v", name, err)
			}
		}
		log.Printf("✅ Seeded category '%s' with %d subtopics", data.Name, len(data.SubTopics))
	}
}

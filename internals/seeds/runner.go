package seeds

import (
	"gorm.io/gorm"

	categories "ecolearn_backend/internals/seeds/catalog/categories"
	badges "ecolearn_backend/internals/seeds/rewards/badges"
)

// RunAllSeeds loads the starter content. Each seeder is idempotent, so the
// runner may be called on every boot of a fresh environment.
func RunAllSeeds(db *gorm.DB) {
	categories.SeedCategoriesFromJSON(db, "internals/seeds/catalog/categories/data_categories.json")
	badges.SeedBadgesFromJSON(db, "internals/seeds/rewards/badges/data_badges.json")
}

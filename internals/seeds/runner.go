package seeds

import (
	holidays "pesantrenku_backend/internals/seeds/boarding/holidays"

	"gorm.io/gorm"
)

// RunAllSeeds — dipanggil manual saat setup environment baru.
func RunAllSeeds(db *gorm.DB) {
	//* Boarding
	holidays.SeedHolidaysFromJSON(db, "internals/seeds/boarding/holidays/data_holidays.json")
}

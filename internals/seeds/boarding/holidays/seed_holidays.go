package holidays

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/boarding/holidays/model"
)

// Struktur sesuai dengan dto.CreateBoardingHolidayRequest
type HolidaySeed struct {
	BoardingHolidayDate       string `json:"boarding_holiday_date"`
	BoardingHolidayName       string `json:"boarding_holiday_name"`
	BoardingHolidayIsNational bool   `json:"boarding_holiday_is_national"`
}

func SeedHolidaysFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var holidays []HolidaySeed
	if err := json.Unmarshal(file, &holidays); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, h := range holidays {
		date, err := time.Parse("2006-01-02", h.BoardingHolidayDate)
		if err != nil {
			log.Printf("⚠️ Tanggal %s tidak valid, lewati...", h.BoardingHolidayDate)
			continue
		}

		var existing model.BoardingHolidayModel
		if err := db.Where("boarding_holiday_date = ?", h.BoardingHolidayDate).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Hari libur %s sudah ada, lewati...", h.BoardingHolidayDate)
			continue
		}

		newHoliday := model.BoardingHolidayModel{
			BoardingHolidayDate:       date,
			BoardingHolidayName:       h.BoardingHolidayName,
			BoardingHolidayIsNational: h.BoardingHolidayIsNational,
		}
		if err := db.Create(&newHoliday).Error; err != nil {
			log.Printf("❌ Gagal insert hari libur %s: %v", h.BoardingHolidayDate, err)
			continue
		}
		log.Printf("✅ Hari libur %s (%s) berhasil di-seed", h.BoardingHolidayDate, h.BoardingHolidayName)
	}
}

// file: internals/features/boarding/holidays/model/boarding_holiday_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   BoardingHolidayModel — map ke tabel boarding_holidays
   Satu baris per tanggal (unik); dipakai sebagai lookup set
   oleh Occurrence Resolver.
   ======================================================= */

type BoardingHolidayModel struct {
	// PK
	BoardingHolidayID uuid.UUID `json:"boarding_holiday_id" gorm:"type:uuid;primaryKey;column:boarding_holiday_id;default:gen_random_uuid()"`

	BoardingHolidayDate       time.Time `json:"boarding_holiday_date" gorm:"type:date;not null;uniqueIndex;column:boarding_holiday_date"`
	BoardingHolidayName       string    `json:"boarding_holiday_name" gorm:"type:varchar(100);not null;column:boarding_holiday_name"`
	BoardingHolidayIsNational bool      `json:"boarding_holiday_is_national" gorm:"type:boolean;not null;default:true;column:boarding_holiday_is_national"`

	// Timestamps
	BoardingHolidayCreatedAt time.Time      `json:"boarding_holiday_created_at" gorm:"column:boarding_holiday_created_at;not null;autoCreateTime"`
	BoardingHolidayUpdatedAt time.Time      `json:"boarding_holiday_updated_at" gorm:"column:boarding_holiday_updated_at;not null;autoUpdateTime"`
	BoardingHolidayDeletedAt gorm.DeletedAt `json:"boarding_holiday_deleted_at" gorm:"column:boarding_holiday_deleted_at;index"`
}

func (BoardingHolidayModel) TableName() string {
	return "boarding_holidays"
}

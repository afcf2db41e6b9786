// file: internals/features/boarding/dormitories/model/boarding_dormitory_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   BoardingDormitoryModel — map ke tabel boarding_dormitories
   ======================================================= */

type BoardingDormitoryModel struct {
	// PK
	BoardingDormitoryID uuid.UUID `json:"boarding_dormitory_id" gorm:"type:uuid;primaryKey;column:boarding_dormitory_id;default:gen_random_uuid()"`

	BoardingDormitoryName        string  `json:"boarding_dormitory_name" gorm:"type:varchar(100);not null;uniqueIndex;column:boarding_dormitory_name"`
	BoardingDormitoryGender      *string `json:"boarding_dormitory_gender,omitempty" gorm:"type:varchar(1);column:boarding_dormitory_gender"` // L | P
	BoardingDormitoryCapacity    *int    `json:"boarding_dormitory_capacity,omitempty" gorm:"type:int;column:boarding_dormitory_capacity"`
	BoardingDormitoryDescription *string `json:"boarding_dormitory_description,omitempty" gorm:"type:text;column:boarding_dormitory_description"`

	// Wali asrama penanggung jawab (opsional)
	BoardingDormitoryGuardianUserID *uuid.UUID `json:"boarding_dormitory_guardian_user_id,omitempty" gorm:"type:uuid;column:boarding_dormitory_guardian_user_id"`

	// Timestamps
	BoardingDormitoryCreatedAt time.Time      `json:"boarding_dormitory_created_at" gorm:"column:boarding_dormitory_created_at;not null;autoCreateTime"`
	BoardingDormitoryUpdatedAt time.Time      `json:"boarding_dormitory_updated_at" gorm:"column:boarding_dormitory_updated_at;not null;autoUpdateTime"`
	BoardingDormitoryDeletedAt gorm.DeletedAt `json:"boarding_dormitory_deleted_at" gorm:"column:boarding_dormitory_deleted_at;index"`
}

func (BoardingDormitoryModel) TableName() string {
	return "boarding_dormitories"
}

// file: internals/features/school/timetable/model/class_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ClassScheduleModel — map ke tabel class_schedules
   Jadwal pelajaran mingguan: satu baris = satu slot
   (kelas, mapel, guru) pada hari tertentu.
   Dihapus permanen saat delete (tidak ada kebutuhan retensi).
   ======================================================= */

type ClassScheduleModel struct {
	// PK
	ClassScheduleID uuid.UUID `json:"class_schedule_id" gorm:"type:uuid;primaryKey;column:class_schedule_id;default:gen_random_uuid()"`

	// Referensi eksternal (tidak divalidasi keberadaannya di sini)
	ClassScheduleClassID   uuid.UUID `json:"class_schedule_class_id" gorm:"type:uuid;not null;column:class_schedule_class_id;index"`
	ClassScheduleSubjectID uuid.UUID `json:"class_schedule_subject_id" gorm:"type:uuid;not null;column:class_schedule_subject_id"`
	ClassScheduleTeacherID uuid.UUID `json:"class_schedule_teacher_id" gorm:"type:uuid;not null;column:class_schedule_teacher_id;index"`

	// Pola mingguan: 0=Senin .. 6=Minggu
	ClassScheduleDayOfWeek int       `json:"class_schedule_day_of_week" gorm:"type:int;not null;column:class_schedule_day_of_week"`
	ClassScheduleStartTime time.Time `json:"class_schedule_start_time" gorm:"type:time;not null;column:class_schedule_start_time"`
	ClassScheduleEndTime   time.Time `json:"class_schedule_end_time" gorm:"type:time;not null;column:class_schedule_end_time"`

	// Timestamps
	ClassScheduleCreatedAt time.Time `json:"class_schedule_created_at" gorm:"column:class_schedule_created_at;not null;autoCreateTime"`
	ClassScheduleUpdatedAt time.Time `json:"class_schedule_updated_at" gorm:"column:class_schedule_updated_at;not null;autoUpdateTime"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}

// file: internals/features/school/class_attendance/model/class_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	battm "pesantrenku_backend/internals/features/boarding/attendance/model"
)

/* =======================================================
   ClassAttendanceModel — map ke tabel class_attendances
   Absensi pelajaran: satu baris per identitas
   (jadwal, peserta, tanggal). Enum status & jenis peserta
   dipakai bersama dengan absensi asrama.
   ======================================================= */

type ClassAttendanceModel struct {
	// PK
	ClassAttendanceID uuid.UUID `json:"class_attendance_id" gorm:"type:uuid;primaryKey;column:class_attendance_id;default:gen_random_uuid()"`

	ClassAttendanceScheduleID uuid.UUID `json:"class_attendance_schedule_id" gorm:"type:uuid;not null;column:class_attendance_schedule_id;uniqueIndex:uq_class_attendance_identity,priority:1"`
	ClassAttendanceClassID    uuid.UUID `json:"class_attendance_class_id" gorm:"type:uuid;not null;column:class_attendance_class_id;index"`

	// participantRef
	ClassAttendanceParticipantKind battm.ParticipantKind `json:"class_attendance_participant_kind" gorm:"type:varchar(10);not null;column:class_attendance_participant_kind;uniqueIndex:uq_class_attendance_identity,priority:2"`
	ClassAttendanceParticipantID   uuid.UUID             `json:"class_attendance_participant_id" gorm:"type:uuid;not null;column:class_attendance_participant_id;uniqueIndex:uq_class_attendance_identity,priority:3"`

	ClassAttendanceDate time.Time `json:"class_attendance_date" gorm:"type:date;not null;column:class_attendance_date;uniqueIndex:uq_class_attendance_identity,priority:4"`

	ClassAttendanceStatus battm.AttendanceStatus `json:"class_attendance_status" gorm:"type:varchar(10);not null;column:class_attendance_status"`
	ClassAttendanceNotes  *string                `json:"class_attendance_notes,omitempty" gorm:"type:varchar(150);column:class_attendance_notes"`

	ClassAttendanceRecordedByUserID uuid.UUID `json:"class_attendance_recorded_by_user_id" gorm:"type:uuid;not null;column:class_attendance_recorded_by_user_id"`

	// Snapshot slot jadwal saat pencatatan (mapel, guru, jam).
	ClassAttendanceScheduleSnapshot datatypes.JSON `json:"class_attendance_schedule_snapshot,omitempty" gorm:"type:jsonb;column:class_attendance_schedule_snapshot"`

	// Timestamps
	ClassAttendanceCreatedAt time.Time `json:"class_attendance_created_at" gorm:"column:class_attendance_created_at;not null;autoCreateTime"`
	ClassAttendanceUpdatedAt time.Time `json:"class_attendance_updated_at" gorm:"column:class_attendance_updated_at;not null;autoUpdateTime"`
}

func (ClassAttendanceModel) TableName() string {
	return "class_attendances"
}

// file: internals/features/boarding/attendance/model/boarding_attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   Enum status absensi
   ======================================================= */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present" // hadir
	AttendanceSick    AttendanceStatus = "sick"    // sakit
	AttendanceExcused AttendanceStatus = "excused" // izin
	AttendanceAbsent  AttendanceStatus = "absent"  // alpa
)

/* =======================================================
   Tagged union peserta: santri atau peserta eksternal.
   Kind + id menggantikan pola dua kolom nullable.
   ======================================================= */

type ParticipantKind string

const (
	ParticipantStudent  ParticipantKind = "student"
	ParticipantExternal ParticipantKind = "external"
)

/* =======================================================
   BoardingAttendanceModel — map ke tabel boarding_attendances
   Satu baris per identitas (template, asrama, peserta, tanggal);
   unique index komposit = penjaga upsert di level storage.
   ======================================================= */

type BoardingAttendanceModel struct {
	// PK
	BoardingAttendanceID uuid.UUID `json:"boarding_attendance_id" gorm:"type:uuid;primaryKey;column:boarding_attendance_id;default:gen_random_uuid()"`

	// occurrenceRef
	BoardingAttendanceTemplateID  uuid.UUID `json:"boarding_attendance_template_id" gorm:"type:uuid;not null;column:boarding_attendance_template_id;uniqueIndex:uq_boarding_attendance_identity,priority:1"`
	BoardingAttendanceDormitoryID uuid.UUID `json:"boarding_attendance_dormitory_id" gorm:"type:uuid;not null;column:boarding_attendance_dormitory_id;uniqueIndex:uq_boarding_attendance_identity,priority:2"`

	// participantRef
	BoardingAttendanceParticipantKind ParticipantKind `json:"boarding_attendance_participant_kind" gorm:"type:varchar(10);not null;column:boarding_attendance_participant_kind;uniqueIndex:uq_boarding_attendance_identity,priority:3"`
	BoardingAttendanceParticipantID   uuid.UUID       `json:"boarding_attendance_participant_id" gorm:"type:uuid;not null;column:boarding_attendance_participant_id;uniqueIndex:uq_boarding_attendance_identity,priority:4"`

	BoardingAttendanceDate time.Time `json:"boarding_attendance_date" gorm:"type:date;not null;column:boarding_attendance_date;uniqueIndex:uq_boarding_attendance_identity,priority:5"`

	BoardingAttendanceStatus AttendanceStatus `json:"boarding_attendance_status" gorm:"type:varchar(10);not null;column:boarding_attendance_status"`
	BoardingAttendanceNotes  *string          `json:"boarding_attendance_notes,omitempty" gorm:"type:varchar(150);column:boarding_attendance_notes"`

	BoardingAttendanceRecordedByUserID uuid.UUID `json:"boarding_attendance_recorded_by_user_id" gorm:"type:uuid;not null;column:boarding_attendance_recorded_by_user_id"`

	// Snapshot occurrence saat pencatatan (nama + jam kegiatan),
	// supaya riwayat tetap terbaca walau template berubah.
	BoardingAttendanceOccurrenceSnapshot datatypes.JSON `json:"boarding_attendance_occurrence_snapshot,omitempty" gorm:"type:jsonb;column:boarding_attendance_occurrence_snapshot"`

	// Timestamps
	BoardingAttendanceCreatedAt time.Time `json:"boarding_attendance_created_at" gorm:"column:boarding_attendance_created_at;not null;autoCreateTime"`
	BoardingAttendanceUpdatedAt time.Time `json:"boarding_attendance_updated_at" gorm:"column:boarding_attendance_updated_at;not null;autoUpdateTime"`
}

func (BoardingAttendanceModel) TableName() string {
	return "boarding_attendances"
}

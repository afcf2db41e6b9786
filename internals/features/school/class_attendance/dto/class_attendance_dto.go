// file: internals/features/school/class_attendance/dto/class_attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	battm "pesantrenku_backend/internals/features/boarding/attendance/model"
	m "pesantrenku_backend/internals/features/school/class_attendance/model"
)

/* =========================================================
   Requests
   ========================================================= */

type MarkClassAttendanceRequest struct {
	ClassAttendanceScheduleID string `json:"class_attendance_schedule_id" validate:"required,uuid4"`

	ClassAttendanceParticipantKind string `json:"class_attendance_participant_kind" validate:"required,oneof=student external"`
	ClassAttendanceParticipantID   string `json:"class_attendance_participant_id"   validate:"required,uuid4"`

	ClassAttendanceDate   string  `json:"class_attendance_date"   validate:"required,datetime=2006-01-02"`
	ClassAttendanceStatus string  `json:"class_attendance_status" validate:"required,oneof=present sick excused absent"`
	ClassAttendanceNotes  *string `json:"class_attendance_notes,omitempty" validate:"omitempty,max=150"`
}

func (r *MarkClassAttendanceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// BatchMarkClassAttendanceRequest — satu slot jadwal + tanggal, banyak peserta.
type BatchMarkClassAttendanceRequest struct {
	ClassAttendanceScheduleID string `json:"class_attendance_schedule_id" validate:"required,uuid4"`
	ClassAttendanceDate       string `json:"class_attendance_date"        validate:"required,datetime=2006-01-02"`

	Items []BatchMarkItem `json:"items" validate:"required,min=1,dive"`
}

type BatchMarkItem struct {
	ParticipantKind string  `json:"participant_kind" validate:"required,oneof=student external"`
	ParticipantID   string  `json:"participant_id"   validate:"required,uuid4"`
	Status          string  `json:"status"           validate:"required,oneof=present sick excused absent"`
	Notes           *string `json:"notes,omitempty"  validate:"omitempty,max=150"`
}

func (r *BatchMarkClassAttendanceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func ApplyNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	s := strings.TrimSpace(*notes)
	if s == "" {
		return nil
	}
	return &s
}

/* =========================================================
   Response
   ========================================================= */

type ClassAttendanceResponse struct {
	ClassAttendanceID uuid.UUID `json:"class_attendance_id"`

	ClassAttendanceScheduleID uuid.UUID `json:"class_attendance_schedule_id"`
	ClassAttendanceClassID    uuid.UUID `json:"class_attendance_class_id"`

	ClassAttendanceParticipantKind battm.ParticipantKind `json:"class_attendance_participant_kind"`
	ClassAttendanceParticipantID   uuid.UUID             `json:"class_attendance_participant_id"`

	ClassAttendanceDate   string                 `json:"class_attendance_date"`
	ClassAttendanceStatus battm.AttendanceStatus `json:"class_attendance_status"`
	ClassAttendanceNotes  *string                `json:"class_attendance_notes,omitempty"`

	ClassAttendanceRecordedByUserID uuid.UUID      `json:"class_attendance_recorded_by_user_id"`
	ClassAttendanceScheduleSnapshot datatypes.JSON `json:"class_attendance_schedule_snapshot,omitempty"`

	ClassAttendanceCreatedAt time.Time `json:"class_attendance_created_at"`
	ClassAttendanceUpdatedAt time.Time `json:"class_attendance_updated_at"`
}

func NewClassAttendanceResponse(src *m.ClassAttendanceModel) ClassAttendanceResponse {
	return ClassAttendanceResponse{
		ClassAttendanceID:               src.ClassAttendanceID,
		ClassAttendanceScheduleID:       src.ClassAttendanceScheduleID,
		ClassAttendanceClassID:          src.ClassAttendanceClassID,
		ClassAttendanceParticipantKind:  src.ClassAttendanceParticipantKind,
		ClassAttendanceParticipantID:    src.ClassAttendanceParticipantID,
		ClassAttendanceDate:             src.ClassAttendanceDate.Format("2006-01-02"),
		ClassAttendanceStatus:           src.ClassAttendanceStatus,
		ClassAttendanceNotes:            src.ClassAttendanceNotes,
		ClassAttendanceRecordedByUserID: src.ClassAttendanceRecordedByUserID,
		ClassAttendanceScheduleSnapshot: src.ClassAttendanceScheduleSnapshot,
		ClassAttendanceCreatedAt:        src.ClassAttendanceCreatedAt,
		ClassAttendanceUpdatedAt:        src.ClassAttendanceUpdatedAt,
	}
}

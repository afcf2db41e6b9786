// file: internals/features/boarding/attendance/dto/boarding_attendance_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/boarding/attendance/model"
)

func strPtrOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

/* =========================================================
   Requests
   ========================================================= */

// MarkBoardingAttendanceRequest — satu peserta, satu occurrence, satu tanggal.
type MarkBoardingAttendanceRequest struct {
	BoardingAttendanceTemplateID  string `json:"boarding_attendance_template_id"  validate:"required,uuid4"`
	BoardingAttendanceDormitoryID string `json:"boarding_attendance_dormitory_id" validate:"required,uuid4"`

	BoardingAttendanceParticipantKind string `json:"boarding_attendance_participant_kind" validate:"required,oneof=student external"`
	BoardingAttendanceParticipantID   string `json:"boarding_attendance_participant_id"   validate:"required,uuid4"`

	BoardingAttendanceDate   string  `json:"boarding_attendance_date"   validate:"required,datetime=2006-01-02"`
	BoardingAttendanceStatus string  `json:"boarding_attendance_status" validate:"required,oneof=present sick excused absent"`
	BoardingAttendanceNotes  *string `json:"boarding_attendance_notes,omitempty" validate:"omitempty,max=150"`
}

func (r *MarkBoardingAttendanceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// BatchMarkBoardingAttendanceRequest — satu occurrence + tanggal,
// banyak peserta; hasil dilaporkan per-item.
type BatchMarkBoardingAttendanceRequest struct {
	BoardingAttendanceTemplateID  string `json:"boarding_attendance_template_id"  validate:"required,uuid4"`
	BoardingAttendanceDormitoryID string `json:"boarding_attendance_dormitory_id" validate:"required,uuid4"`
	BoardingAttendanceDate        string `json:"boarding_attendance_date"         validate:"required,datetime=2006-01-02"`

	Items []BatchMarkItem `json:"items" validate:"required,min=1,dive"`
}

type BatchMarkItem struct {
	ParticipantKind string  `json:"participant_kind" validate:"required,oneof=student external"`
	ParticipantID   string  `json:"participant_id"   validate:"required,uuid4"`
	Status          string  `json:"status"           validate:"required,oneof=present sick excused absent"`
	Notes           *string `json:"notes,omitempty"  validate:"omitempty,max=150"`
}

func (r *BatchMarkBoardingAttendanceRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ApplyNotes menormalkan notes (trim, kosong → nil).
func ApplyNotes(notes *string) *string { return strPtrOrNil(notes) }

/* =========================================================
   Response
   ========================================================= */

type BoardingAttendanceResponse struct {
	BoardingAttendanceID          uuid.UUID          `json:"boarding_attendance_id"`
	BoardingAttendanceTemplateID  uuid.UUID          `json:"boarding_attendance_template_id"`
	BoardingAttendanceDormitoryID uuid.UUID          `json:"boarding_attendance_dormitory_id"`

	BoardingAttendanceParticipantKind m.ParticipantKind `json:"boarding_attendance_participant_kind"`
	BoardingAttendanceParticipantID   uuid.UUID         `json:"boarding_attendance_participant_id"`

	BoardingAttendanceDate   string             `json:"boarding_attendance_date"` // YYYY-MM-DD
	BoardingAttendanceStatus m.AttendanceStatus `json:"boarding_attendance_status"`
	BoardingAttendanceNotes  *string            `json:"boarding_attendance_notes,omitempty"`

	BoardingAttendanceRecordedByUserID uuid.UUID `json:"boarding_attendance_recorded_by_user_id"`

	BoardingAttendanceCreatedAt time.Time `json:"boarding_attendance_created_at"`
	BoardingAttendanceUpdatedAt time.Time `json:"boarding_attendance_updated_at"`
}

func NewBoardingAttendanceResponse(src *m.BoardingAttendanceModel) BoardingAttendanceResponse {
	return BoardingAttendanceResponse{
		BoardingAttendanceID:               src.BoardingAttendanceID,
		BoardingAttendanceTemplateID:       src.BoardingAttendanceTemplateID,
		BoardingAttendanceDormitoryID:      src.BoardingAttendanceDormitoryID,
		BoardingAttendanceParticipantKind:  src.BoardingAttendanceParticipantKind,
		BoardingAttendanceParticipantID:    src.BoardingAttendanceParticipantID,
		BoardingAttendanceDate:             src.BoardingAttendanceDate.Format("2006-01-02"),
		BoardingAttendanceStatus:           src.BoardingAttendanceStatus,
		BoardingAttendanceNotes:            src.BoardingAttendanceNotes,
		BoardingAttendanceRecordedByUserID: src.BoardingAttendanceRecordedByUserID,
		BoardingAttendanceCreatedAt:        src.BoardingAttendanceCreatedAt,
		BoardingAttendanceUpdatedAt:        src.BoardingAttendanceUpdatedAt,
	}
}

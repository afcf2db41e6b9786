// file: internals/features/school/timetable/dto/class_schedule_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

var (
	layoutT1 = "15:04"    // TIME (HH:mm)
	layoutT2 = "15:04:05" // TIME (HH:mm:ss)
)

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time")
	}
	// coba HH:mm lalu HH:mm:ss
	if t, err := time.Parse(layoutT1, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutT2, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time format (want HH:mm or HH:mm:ss)")
}

/* =======================================================
   Request DTOs
   - Jam dikirim sebagai string agar simpel dari FE
   ======================================================= */

type CreateClassScheduleRequest struct {
	ClassScheduleClassID   string `json:"class_schedule_class_id"   validate:"required,uuid4"`
	ClassScheduleSubjectID string `json:"class_schedule_subject_id" validate:"required,uuid4"`
	ClassScheduleTeacherID string `json:"class_schedule_teacher_id" validate:"required,uuid4"`
	ClassScheduleDayOfWeek *int   `json:"class_schedule_day_of_week" validate:"required,gte=0,lte=6"`
	ClassScheduleStartTime string `json:"class_schedule_start_time" validate:"required"` // "HH:mm" / "HH:mm:ss"
	ClassScheduleEndTime   string `json:"class_schedule_end_time"   validate:"required"`
}

// UpdateClassScheduleRequest — update penuh (PUT-like)
type UpdateClassScheduleRequest struct {
	ClassScheduleClassID   string `json:"class_schedule_class_id"   validate:"required,uuid4"`
	ClassScheduleSubjectID string `json:"class_schedule_subject_id" validate:"required,uuid4"`
	ClassScheduleTeacherID string `json:"class_schedule_teacher_id" validate:"required,uuid4"`
	ClassScheduleDayOfWeek *int   `json:"class_schedule_day_of_week" validate:"required,gte=0,lte=6"`
	ClassScheduleStartTime string `json:"class_schedule_start_time" validate:"required"`
	ClassScheduleEndTime   string `json:"class_schedule_end_time"   validate:"required"`
}

/* =======================================================
   Convert & Apply
   ======================================================= */

func applyTimes(dst *m.ClassScheduleModel, startStr, endStr string) error {
	startTime, err := parseTime(startStr)
	if err != nil {
		return fmt.Errorf("class_schedule_start_time: %w", err)
	}
	endTime, err := parseTime(endStr)
	if err != nil {
		return fmt.Errorf("class_schedule_end_time: %w", err)
	}
	if !endTime.After(startTime) {
		return errors.New("class_schedule_end_time must be greater than start_time")
	}
	dst.ClassScheduleStartTime = startTime
	dst.ClassScheduleEndTime = endTime
	return nil
}

func (r *CreateClassScheduleRequest) ApplyToModel(dst *m.ClassScheduleModel) error {
	classID, _ := uuid.Parse(r.ClassScheduleClassID)
	subjectID, _ := uuid.Parse(r.ClassScheduleSubjectID)
	teacherID, _ := uuid.Parse(r.ClassScheduleTeacherID)

	if err := applyTimes(dst, r.ClassScheduleStartTime, r.ClassScheduleEndTime); err != nil {
		return err
	}

	dst.ClassScheduleClassID = classID
	dst.ClassScheduleSubjectID = subjectID
	dst.ClassScheduleTeacherID = teacherID
	dst.ClassScheduleDayOfWeek = *r.ClassScheduleDayOfWeek
	return nil
}

func (r *UpdateClassScheduleRequest) ApplyToModel(dst *m.ClassScheduleModel) error {
	classID, _ := uuid.Parse(r.ClassScheduleClassID)
	subjectID, _ := uuid.Parse(r.ClassScheduleSubjectID)
	teacherID, _ := uuid.Parse(r.ClassScheduleTeacherID)

	if err := applyTimes(dst, r.ClassScheduleStartTime, r.ClassScheduleEndTime); err != nil {
		return err
	}

	dst.ClassScheduleClassID = classID
	dst.ClassScheduleSubjectID = subjectID
	dst.ClassScheduleTeacherID = teacherID
	dst.ClassScheduleDayOfWeek = *r.ClassScheduleDayOfWeek
	return nil
}

func (r *CreateClassScheduleRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpdateClassScheduleRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   Response DTO
   ======================================================= */

type ClassScheduleResponse struct {
	ClassScheduleID        uuid.UUID `json:"class_schedule_id"`
	ClassScheduleClassID   uuid.UUID `json:"class_schedule_class_id"`
	ClassScheduleSubjectID uuid.UUID `json:"class_schedule_subject_id"`
	ClassScheduleTeacherID uuid.UUID `json:"class_schedule_teacher_id"`
	ClassScheduleDayOfWeek int       `json:"class_schedule_day_of_week"`
	ClassScheduleStartTime string    `json:"class_schedule_start_time"` // HH:mm:ss
	ClassScheduleEndTime   string    `json:"class_schedule_end_time"`
	ClassScheduleCreatedAt time.Time `json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `json:"class_schedule_updated_at"`
}

func NewClassScheduleResponse(src *m.ClassScheduleModel) ClassScheduleResponse {
	return ClassScheduleResponse{
		ClassScheduleID:        src.ClassScheduleID,
		ClassScheduleClassID:   src.ClassScheduleClassID,
		ClassScheduleSubjectID: src.ClassScheduleSubjectID,
		ClassScheduleTeacherID: src.ClassScheduleTeacherID,
		ClassScheduleDayOfWeek: src.ClassScheduleDayOfWeek,
		ClassScheduleStartTime: src.ClassScheduleStartTime.Format(layoutT2),
		ClassScheduleEndTime:   src.ClassScheduleEndTime.Format(layoutT2),
		ClassScheduleCreatedAt: src.ClassScheduleCreatedAt,
		ClassScheduleUpdatedAt: src.ClassScheduleUpdatedAt,
	}
}

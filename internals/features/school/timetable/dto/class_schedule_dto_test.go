// file: internals/features/school/timetable/dto/class_schedule_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/school/timetable/model"
)

func intPtr(i int) *int { return &i }

func validCreateRequest() CreateClassScheduleRequest {
	return CreateClassScheduleRequest{
		ClassScheduleClassID:   uuid.New().String(),
		ClassScheduleSubjectID: uuid.New().String(),
		ClassScheduleTeacherID: uuid.New().String(),
		ClassScheduleDayOfWeek: intPtr(0),
		ClassScheduleStartTime: "07:00",
		ClassScheduleEndTime:   "08:00",
	}
}

func TestCreateApplyToModel(t *testing.T) {
	req := validCreateRequest()

	var dst m.ClassScheduleModel
	if err := req.ApplyToModel(&dst); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}

	if dst.ClassScheduleDayOfWeek != 0 {
		t.Errorf("day_of_week = %d, want 0", dst.ClassScheduleDayOfWeek)
	}
	if got := dst.ClassScheduleStartTime.Format("15:04"); got != "07:00" {
		t.Errorf("start = %s, want 07:00", got)
	}
	if got := dst.ClassScheduleEndTime.Format("15:04"); got != "08:00" {
		t.Errorf("end = %s, want 08:00", got)
	}
}

func TestCreateApplyToModel_TimeValidation(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"end == start", "07:00", "07:00"},
		{"end < start", "08:00", "07:00"},
		{"format salah", "7 pagi", "08:00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validCreateRequest()
			req.ClassScheduleStartTime = c.start
			req.ClassScheduleEndTime = c.end

			var dst m.ClassScheduleModel
			if err := req.ApplyToModel(&dst); err == nil {
				t.Errorf("start=%s end=%s harus ditolak", c.start, c.end)
			}
		})
	}
}

func TestCreateApplyToModel_SecondsAccepted(t *testing.T) {
	req := validCreateRequest()
	req.ClassScheduleStartTime = "07:00:30"
	req.ClassScheduleEndTime = "08:15:00"

	var dst m.ClassScheduleModel
	if err := req.ApplyToModel(&dst); err != nil {
		t.Fatalf("format HH:mm:ss harus diterima: %v", err)
	}
	if got := dst.ClassScheduleEndTime.Format("15:04:05"); got != "08:15:00" {
		t.Errorf("end = %s, want 08:15:00", got)
	}
}

// file: internals/features/school/class_attendance/service/ledger_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	battm "pesantrenku_backend/internals/features/boarding/attendance/model"
)

func markInput(status battm.AttendanceStatus, notes *string) MarkInput {
	return MarkInput{
		ScheduleID:      uuid.MustParse("44444444-4444-4444-4444-444444444444"),
		ParticipantKind: battm.ParticipantStudent,
		ParticipantID:   uuid.MustParse("55555555-5555-5555-5555-555555555555"),
		Date:            time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:          status,
		Notes:           notes,
		RecordedBy:      uuid.New(),
	}
}

// Dua mark untuk tuple (jadwal, peserta, tanggal) yang sama harus berakhir
// sebagai satu record dengan status terakhir.
func TestMarkTwiceSameIdentity_SingleRecordLatestWins(t *testing.T) {
	classID := uuid.New()
	snapshot := datatypes.JSON(`{"subject_id":"x"}`)

	first := markInput(battm.AttendanceAbsent, nil)
	record := newAttendanceRecord(first, classID, snapshot)

	if record.ClassAttendanceStatus != battm.AttendanceAbsent {
		t.Fatalf("status awal = %s, want absent", record.ClassAttendanceStatus)
	}

	note := "ternyata izin, surat menyusul"
	second := markInput(battm.AttendanceExcused, &note)
	applyMark(&record, second, snapshot)

	if record.ClassAttendanceStatus != battm.AttendanceExcused {
		t.Errorf("status akhir = %s, want excused", record.ClassAttendanceStatus)
	}
	if record.ClassAttendanceNotes == nil || *record.ClassAttendanceNotes != note {
		t.Errorf("notes tidak terkoreksi: %v", record.ClassAttendanceNotes)
	}
	if record.ClassAttendanceScheduleID != first.ScheduleID ||
		record.ClassAttendanceParticipantKind != first.ParticipantKind ||
		record.ClassAttendanceParticipantID != first.ParticipantID ||
		!record.ClassAttendanceDate.Equal(first.Date) {
		t.Error("kolom identitas berubah setelah koreksi status")
	}
	if record.ClassAttendanceClassID != classID {
		t.Error("class_id snapshot dari jadwal tidak boleh berubah")
	}
}

func TestMarkUpdateColumns_IdentityNeverTouched(t *testing.T) {
	in := markInput(battm.AttendanceSick, nil)
	cols := markUpdateColumns(in, datatypes.JSON(`{}`))

	want := []string{
		"class_attendance_status",
		"class_attendance_notes",
		"class_attendance_recorded_by_user_id",
		"class_attendance_schedule_snapshot",
	}
	if len(cols) != len(want) {
		t.Fatalf("jumlah kolom update = %d, want %d: %v", len(cols), len(want), cols)
	}
	for _, k := range want {
		if _, ok := cols[k]; !ok {
			t.Errorf("kolom %s hilang dari update", k)
		}
	}
	for _, forbidden := range []string{
		"class_attendance_id",
		"class_attendance_schedule_id",
		"class_attendance_class_id",
		"class_attendance_participant_kind",
		"class_attendance_participant_id",
		"class_attendance_date",
	} {
		if _, ok := cols[forbidden]; ok {
			t.Errorf("kolom identitas %s tidak boleh ikut di-update", forbidden)
		}
	}
}

// file: internals/features/boarding/attendance/service/ledger_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "pesantrenku_backend/internals/features/boarding/attendance/model"
)

func strPtr(s string) *string { return &s }

func markInput(status m.AttendanceStatus, notes *string) MarkInput {
	return MarkInput{
		TemplateID:      uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		DormitoryID:     uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		ParticipantKind: m.ParticipantStudent,
		ParticipantID:   uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		Date:            time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		Status:          status,
		Notes:           notes,
		RecordedBy:      uuid.New(),
	}
}

// Koreksi status pada identitas yang sama harus berakhir sebagai SATU record
// dengan status terakhir — bukan record kedua.
func TestMarkTwiceSameIdentity_SingleRecordLatestWins(t *testing.T) {
	first := markInput(m.AttendancePresent, nil)
	record := newAttendanceRecord(first, datatypes.JSON(`{"name":"Tahajud"}`))

	if record.BoardingAttendanceStatus != m.AttendancePresent {
		t.Fatalf("status awal = %s, want present", record.BoardingAttendanceStatus)
	}

	// mark kedua: tuple identitas sama, status dikoreksi jadi sakit
	second := markInput(m.AttendanceSick, strPtr("demam sejak subuh"))
	applyMark(&record, second, datatypes.JSON(`{"name":"Tahajud"}`))

	if record.BoardingAttendanceStatus != m.AttendanceSick {
		t.Errorf("status akhir = %s, want sick (status terakhir menang)", record.BoardingAttendanceStatus)
	}
	if record.BoardingAttendanceNotes == nil || *record.BoardingAttendanceNotes != "demam sejak subuh" {
		t.Errorf("notes tidak ikut terkoreksi: %v", record.BoardingAttendanceNotes)
	}
	if record.BoardingAttendanceRecordedByUserID != second.RecordedBy {
		t.Error("recorded_by harus menunjuk pencatat terakhir")
	}

	// identitas tidak boleh bergeser — koreksi menimpa record yang sama
	if record.BoardingAttendanceTemplateID != first.TemplateID ||
		record.BoardingAttendanceDormitoryID != first.DormitoryID ||
		record.BoardingAttendanceParticipantKind != first.ParticipantKind ||
		record.BoardingAttendanceParticipantID != first.ParticipantID ||
		!record.BoardingAttendanceDate.Equal(first.Date) {
		t.Error("kolom identitas berubah setelah koreksi status")
	}
}

// Kolom identitas tidak boleh masuk daftar kolom update: jalur update tidak
// boleh memindahkan record ke identitas lain (unique index tetap satu record
// per tuple).
func TestMarkUpdateColumns_IdentityNeverTouched(t *testing.T) {
	in := markInput(m.AttendanceExcused, strPtr("izin pulang"))
	cols := markUpdateColumns(in, datatypes.JSON(`{}`))

	want := []string{
		"boarding_attendance_status",
		"boarding_attendance_notes",
		"boarding_attendance_recorded_by_user_id",
		"boarding_attendance_occurrence_snapshot",
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
		"boarding_attendance_id",
		"boarding_attendance_template_id",
		"boarding_attendance_dormitory_id",
		"boarding_attendance_participant_kind",
		"boarding_attendance_participant_id",
		"boarding_attendance_date",
	} {
		if _, ok := cols[forbidden]; ok {
			t.Errorf("kolom identitas %s tidak boleh ikut di-update", forbidden)
		}
	}
}

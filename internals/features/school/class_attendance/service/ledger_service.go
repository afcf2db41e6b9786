// file: internals/features/school/class_attendance/service/ledger_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	battm "pesantrenku_backend/internals/features/boarding/attendance/model"
	holSvc "pesantrenku_backend/internals/features/boarding/holidays/service"
	m "pesantrenku_backend/internals/features/school/class_attendance/model"
	schedModel "pesantrenku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Attendance Ledger (pelajaran)
   Upsert per identitas (jadwal, peserta, tanggal).
   Applicability: tanggal harus jatuh di hari jadwal itu.
   ======================================================= */

var (
	ErrScheduleNotFound = errors.New("jadwal tidak ditemukan")
	ErrWrongDay         = errors.New("tanggal tidak jatuh pada hari jadwal tersebut")
)

type Ledger struct {
	DB *gorm.DB
}

type MarkInput struct {
	ScheduleID      uuid.UUID
	ParticipantKind battm.ParticipantKind
	ParticipantID   uuid.UUID
	Date            time.Time
	Status          battm.AttendanceStatus
	Notes           *string
	RecordedBy      uuid.UUID
}

// snapshot slot jadwal yang disimpan bersama record
type scheduleSnapshot struct {
	SubjectID uuid.UUID `json:"subject_id"`
	TeacherID uuid.UUID `json:"teacher_id"`
	DayOfWeek int       `json:"day_of_week"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

// markUpdateColumns: kolom non-identitas yang ditimpa saat record untuk
// tuple (jadwal, peserta, tanggal) sudah ada.
func markUpdateColumns(in MarkInput, snapshot datatypes.JSON) map[string]any {
	return map[string]any{
		"class_attendance_status":              in.Status,
		"class_attendance_notes":               in.Notes,
		"class_attendance_recorded_by_user_id": in.RecordedBy,
		"class_attendance_schedule_snapshot":   snapshot,
	}
}

func applyMark(record *m.ClassAttendanceModel, in MarkInput, snapshot datatypes.JSON) {
	record.ClassAttendanceStatus = in.Status
	record.ClassAttendanceNotes = in.Notes
	record.ClassAttendanceRecordedByUserID = in.RecordedBy
	record.ClassAttendanceScheduleSnapshot = snapshot
}

func newAttendanceRecord(in MarkInput, classID uuid.UUID, snapshot datatypes.JSON) m.ClassAttendanceModel {
	return m.ClassAttendanceModel{
		ClassAttendanceScheduleID:       in.ScheduleID,
		ClassAttendanceClassID:          classID,
		ClassAttendanceParticipantKind:  in.ParticipantKind,
		ClassAttendanceParticipantID:    in.ParticipantID,
		ClassAttendanceDate:             in.Date,
		ClassAttendanceStatus:           in.Status,
		ClassAttendanceNotes:            in.Notes,
		ClassAttendanceRecordedByUserID: in.RecordedBy,
		ClassAttendanceScheduleSnapshot: snapshot,
	}
}

// Mark meng-upsert satu catatan absensi pelajaran. Bool kedua menandakan
// apakah call ini insert (true) atau menimpa record lama (false).
func (l *Ledger) Mark(ctx context.Context, in MarkInput) (*m.ClassAttendanceModel, bool, error) {
	// 1) Ambil jadwal + cek hari
	var sched schedModel.ClassScheduleModel
	if err := l.DB.WithContext(ctx).
		First(&sched, "class_schedule_id = ?", in.ScheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrScheduleNotFound
		}
		return nil, false, err
	}
	if holSvc.WeekdayOrdinal(in.Date) != sched.ClassScheduleDayOfWeek {
		return nil, false, ErrWrongDay
	}

	snapshot, err := sonic.Marshal(scheduleSnapshot{
		SubjectID: sched.ClassScheduleSubjectID,
		TeacherID: sched.ClassScheduleTeacherID,
		DayOfWeek: sched.ClassScheduleDayOfWeek,
		StartTime: sched.ClassScheduleStartTime.Format("15:04"),
		EndTime:   sched.ClassScheduleEndTime.Format("15:04"),
	})
	if err != nil {
		return nil, false, err
	}

	// 2) Upsert; unique index komposit menjaga race di level storage.
	var record m.ClassAttendanceModel
	inserted := false
	err = l.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		er := tx.
			Where("class_attendance_schedule_id = ?", in.ScheduleID).
			Where("class_attendance_participant_kind = ?", in.ParticipantKind).
			Where("class_attendance_participant_id = ?", in.ParticipantID).
			Where("class_attendance_date = ?", in.Date.Format("2006-01-02")).
			First(&record).Error

		switch {
		case er == nil:
			if er2 := tx.Model(&record).Updates(markUpdateColumns(in, snapshot)).Error; er2 != nil {
				return er2
			}
			applyMark(&record, in, snapshot)
			return nil

		case errors.Is(er, gorm.ErrRecordNotFound):
			record = newAttendanceRecord(in, sched.ClassScheduleClassID, snapshot)
			if er2 := tx.Create(&record).Error; er2 != nil {
				return er2
			}
			inserted = true
			return nil

		default:
			return er
		}
	})
	if err != nil {
		return nil, false, err
	}
	return &record, inserted, nil
}

/* =======================================================
   Recap
   ======================================================= */

type RecapFilter struct {
	ScheduleID    *uuid.UUID
	ClassID       *uuid.UUID
	ParticipantID *uuid.UUID
	DateFrom      time.Time
	DateTo        time.Time
}

func (l *Ledger) Recap(ctx context.Context, f RecapFilter) (map[battm.AttendanceStatus]int64, error) {
	q := l.DB.WithContext(ctx).
		Model(&m.ClassAttendanceModel{}).
		Where("class_attendance_date BETWEEN ? AND ?",
			f.DateFrom.Format("2006-01-02"), f.DateTo.Format("2006-01-02"))

	if f.ScheduleID != nil {
		q = q.Where("class_attendance_schedule_id = ?", *f.ScheduleID)
	}
	if f.ClassID != nil {
		q = q.Where("class_attendance_class_id = ?", *f.ClassID)
	}
	if f.ParticipantID != nil {
		q = q.Where("class_attendance_participant_id = ?", *f.ParticipantID)
	}

	type row struct {
		Status battm.AttendanceStatus
		Total  int64
	}
	var rows []row
	if err := q.
		Select("class_attendance_status AS status, COUNT(*) AS total").
		Group("class_attendance_status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := map[battm.AttendanceStatus]int64{
		battm.AttendancePresent: 0,
		battm.AttendanceSick:    0,
		battm.AttendanceExcused: 0,
		battm.AttendanceAbsent:  0,
	}
	for _, r := range rows {
		counts[r.Status] = r.Total
	}
	return counts, nil
}

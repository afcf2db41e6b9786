// file: internals/features/school/timetable/service/conflict_detector.go
package service

import (
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/school/timetable/model"
)

/* =======================================================
   Conflict Detector — murni, tanpa side effect.
   Dua entri bentrok bila resource sama + hari sama +
   interval [start,end) saling tumpang tindih.
   ======================================================= */

type ResourceKind string

const (
	ResourceRoom    ResourceKind = "room"    // kelas/ruang: key = class_id
	ResourceTeacher ResourceKind = "teacher" // guru: key = teacher_id
)

// ConflictInfo membawa identitas entri yang bentrok + jenis resource-nya,
// dipakai controller untuk respons 409 terstruktur.
type ConflictInfo struct {
	ScheduleID uuid.UUID    `json:"schedule_id"`
	Resource   ResourceKind `json:"resource"`
	DayOfWeek  int          `json:"day_of_week"`
	StartTime  string       `json:"start_time"`
	EndTime    string       `json:"end_time"`
}

// secondOfDay menormalkan kolom TIME ke detik-sejak-tengah-malam supaya
// perbandingan tidak terganggu komponen tanggal hasil scan driver.
// Granularitas detik: input DTO menerima HH:mm:ss, jadi tumpang tindih
// di bawah satu menit tetap harus terdeteksi.
func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Overlaps: semantik half-open — start == end lawan dianggap TIDAK bentrok,
// jadi jadwal back-to-back selalu sah.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return secondOfDay(aStart) < secondOfDay(bEnd) && secondOfDay(aEnd) > secondOfDay(bStart)
}

// FindConflict mencari entri pertama yang bentrok dengan kandidat pada
// resource tertentu. excludeID membuat update tidak bentrok dengan dirinya
// sendiri.
func FindConflict(existing []m.ClassScheduleModel, cand *m.ClassScheduleModel, excludeID *uuid.UUID, kind ResourceKind) *ConflictInfo {
	for i := range existing {
		ex := &existing[i]

		if excludeID != nil && ex.ClassScheduleID == *excludeID {
			continue
		}
		if ex.ClassScheduleDayOfWeek != cand.ClassScheduleDayOfWeek {
			continue
		}

		switch kind {
		case ResourceRoom:
			if ex.ClassScheduleClassID != cand.ClassScheduleClassID {
				continue
			}
		case ResourceTeacher:
			if ex.ClassScheduleTeacherID != cand.ClassScheduleTeacherID {
				continue
			}
		default:
			continue
		}

		if Overlaps(ex.ClassScheduleStartTime, ex.ClassScheduleEndTime, cand.ClassScheduleStartTime, cand.ClassScheduleEndTime) {
			return &ConflictInfo{
				ScheduleID: ex.ClassScheduleID,
				Resource:   kind,
				DayOfWeek:  ex.ClassScheduleDayOfWeek,
				StartTime:  ex.ClassScheduleStartTime.Format("15:04:05"),
				EndTime:    ex.ClassScheduleEndTime.Format("15:04:05"),
			}
		}
	}
	return nil
}

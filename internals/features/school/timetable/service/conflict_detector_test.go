// file: internals/features/school/timetable/service/conflict_detector_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/school/timetable/model"
)

func tm(hh, mm int) time.Time {
	return time.Date(2000, 1, 1, hh, mm, 0, 0, time.UTC)
}

func tms(hh, mm, ss int) time.Time {
	return time.Date(2000, 1, 1, hh, mm, ss, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identik", tm(7, 0), tm(8, 0), tm(7, 0), tm(8, 0), true},
		{"sebagian", tm(7, 0), tm(8, 0), tm(7, 30), tm(8, 30), true},
		{"b di dalam a", tm(7, 0), tm(9, 0), tm(7, 30), tm(8, 0), true},
		{"back-to-back: a.end == b.start", tm(7, 0), tm(8, 0), tm(8, 0), tm(9, 0), false},
		{"back-to-back: b.end == a.start", tm(8, 0), tm(9, 0), tm(7, 0), tm(8, 0), false},
		{"terpisah jauh", tm(7, 0), tm(8, 0), tm(10, 0), tm(11, 0), false},
		{"start sama, durasi beda", tm(7, 0), tm(7, 30), tm(7, 0), tm(9, 0), true},
		{"tumpang tindih 30 detik", tms(7, 0, 0), tms(8, 0, 30), tms(8, 0, 0), tms(9, 0, 0), true},
		{"back-to-back presisi detik", tms(7, 0, 0), tms(8, 0, 30), tms(8, 0, 30), tms(9, 0, 0), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
				t.Errorf("Overlaps(%v-%v, %v-%v) = %v, want %v",
					c.aStart.Format("15:04"), c.aEnd.Format("15:04"),
					c.bStart.Format("15:04"), c.bEnd.Format("15:04"), got, c.want)
			}
			// simetri: urutan argumen tidak boleh mengubah hasil
			if got := Overlaps(c.bStart, c.bEnd, c.aStart, c.aEnd); got != c.want {
				t.Errorf("Overlaps tidak simetris untuk case %q", c.name)
			}
		})
	}
}

func mkSchedule(classID, teacherID uuid.UUID, day int, start, end time.Time) m.ClassScheduleModel {
	return m.ClassScheduleModel{
		ClassScheduleID:        uuid.New(),
		ClassScheduleClassID:   classID,
		ClassScheduleSubjectID: uuid.New(),
		ClassScheduleTeacherID: teacherID,
		ClassScheduleDayOfWeek: day,
		ClassScheduleStartTime: start,
		ClassScheduleEndTime:   end,
	}
}

func TestFindConflict_RoomSameSlot(t *testing.T) {
	classA := uuid.New()
	teacher1 := uuid.New()
	teacher2 := uuid.New()

	// Matematika di kelas A, Senin 07:00-08:00
	existing := []m.ClassScheduleModel{
		mkSchedule(classA, teacher1, 0, tm(7, 0), tm(8, 0)),
	}

	// Fisika di kelas A, Senin 07:30-08:30 → bentrok ruang walau gurunya beda
	cand := mkSchedule(classA, teacher2, 0, tm(7, 30), tm(8, 30))

	got := FindConflict(existing, &cand, nil, ResourceRoom)
	if got == nil {
		t.Fatal("mengharapkan konflik ruang, dapat nil")
	}
	if got.Resource != ResourceRoom {
		t.Errorf("resource = %s, want %s", got.Resource, ResourceRoom)
	}
	if got.ScheduleID != existing[0].ClassScheduleID {
		t.Errorf("schedule_id tidak menunjuk entri yang bentrok")
	}

	// guru berbeda → tidak ada konflik guru
	if c := FindConflict(existing, &cand, nil, ResourceTeacher); c != nil {
		t.Errorf("tidak mengharapkan konflik guru, dapat %+v", c)
	}
}

func TestFindConflict_TeacherAcrossRooms(t *testing.T) {
	classA := uuid.New()
	classB := uuid.New()
	teacher := uuid.New()

	// Ust. Ahmad mengajar di kelas A, Selasa 09:00-10:00
	existing := []m.ClassScheduleModel{
		mkSchedule(classA, teacher, 1, tm(9, 0), tm(10, 0)),
	}

	// Ust. Ahmad dijadwalkan lagi di kelas B, Selasa 09:30-10:30
	cand := mkSchedule(classB, teacher, 1, tm(9, 30), tm(10, 30))

	if c := FindConflict(existing, &cand, nil, ResourceRoom); c != nil {
		t.Errorf("kelas berbeda, tidak mengharapkan konflik ruang: %+v", c)
	}

	got := FindConflict(existing, &cand, nil, ResourceTeacher)
	if got == nil {
		t.Fatal("mengharapkan konflik guru, dapat nil")
	}
	if got.Resource != ResourceTeacher {
		t.Errorf("resource = %s, want %s", got.Resource, ResourceTeacher)
	}
}

func TestFindConflict_DifferentDayNoConflict(t *testing.T) {
	classA := uuid.New()
	teacher := uuid.New()

	existing := []m.ClassScheduleModel{
		mkSchedule(classA, teacher, 0, tm(7, 0), tm(8, 0)),
	}
	cand := mkSchedule(classA, teacher, 3, tm(7, 0), tm(8, 0)) // Kamis

	if c := FindConflict(existing, &cand, nil, ResourceRoom); c != nil {
		t.Errorf("hari berbeda, tidak mengharapkan konflik: %+v", c)
	}
}

func TestFindConflict_BackToBackAllowed(t *testing.T) {
	classA := uuid.New()
	teacher := uuid.New()

	existing := []m.ClassScheduleModel{
		mkSchedule(classA, teacher, 0, tm(7, 0), tm(8, 0)),
	}
	cand := mkSchedule(classA, teacher, 0, tm(8, 0), tm(9, 0))

	if c := FindConflict(existing, &cand, nil, ResourceRoom); c != nil {
		t.Errorf("back-to-back harus sah: %+v", c)
	}
	if c := FindConflict(existing, &cand, nil, ResourceTeacher); c != nil {
		t.Errorf("back-to-back harus sah untuk guru juga: %+v", c)
	}
}

func TestFindConflict_ExcludeSelfOnUpdate(t *testing.T) {
	classA := uuid.New()
	teacher := uuid.New()

	self := mkSchedule(classA, teacher, 0, tm(7, 0), tm(8, 0))
	existing := []m.ClassScheduleModel{self}

	// update entri itu sendiri: geser 15 menit, masih tumpang tindih dirinya
	cand := self
	cand.ClassScheduleStartTime = tm(7, 15)
	cand.ClassScheduleEndTime = tm(8, 15)

	if c := FindConflict(existing, &cand, &self.ClassScheduleID, ResourceRoom); c != nil {
		t.Errorf("update tidak boleh bentrok dengan dirinya sendiri: %+v", c)
	}
	// tanpa exclude → terdeteksi
	if c := FindConflict(existing, &cand, nil, ResourceRoom); c == nil {
		t.Error("tanpa excludeID seharusnya terdeteksi bentrok")
	}
}

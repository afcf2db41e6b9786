// file: internals/features/school/timetable/controller/class_schedule_controller_test.go
package controller

import (
	"reflect"
	"sort"
	"testing"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/school/timetable/model"
)

func TestConflictLockKeys(t *testing.T) {
	classID := uuid.New()
	teacherID := uuid.New()

	cand := m.ClassScheduleModel{
		ClassScheduleClassID:   classID,
		ClassScheduleTeacherID: teacherID,
		ClassScheduleDayOfWeek: 2,
	}

	keys := conflictLockKeys(&cand)
	if len(keys) != 2 {
		t.Fatalf("want 2 kunci (kelas + guru), got %d", len(keys))
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("kunci harus terurut agar bebas deadlock: %v", keys)
	}

	// dua kandidat dengan pasangan resource sama harus menghasilkan kunci
	// identik — itulah yang membuat insert konkuren saling menunggu
	same := m.ClassScheduleModel{
		ClassScheduleClassID:   classID,
		ClassScheduleTeacherID: teacherID,
		ClassScheduleDayOfWeek: 2,
	}
	if got := conflictLockKeys(&same); !reflect.DeepEqual(got, keys) {
		t.Errorf("resource sama harus menghasilkan kunci sama: %v vs %v", got, keys)
	}

	// hari berbeda → kunci berbeda (tidak boleh saling memblokir)
	otherDay := cand
	otherDay.ClassScheduleDayOfWeek = 3
	if got := conflictLockKeys(&otherDay); reflect.DeepEqual(got, keys) {
		t.Error("hari berbeda tidak boleh berbagi kunci lock")
	}

	// kandidat dengan guru sama tapi kelas beda tetap berbagi kunci guru
	otherClass := cand
	otherClass.ClassScheduleClassID = uuid.New()
	shared := 0
	for _, a := range conflictLockKeys(&otherClass) {
		for _, b := range keys {
			if a == b {
				shared++
			}
		}
	}
	if shared != 1 {
		t.Errorf("kandidat dengan guru sama harus berbagi tepat satu kunci, got %d", shared)
	}
}

// file: internals/features/boarding/occurrences/service/occurrence_resolver_test.go
package service

import (
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	actModel "pesantrenku_backend/internals/features/boarding/activities/model"
)

func tm(hh, mm int) time.Time {
	return time.Date(2000, 1, 1, hh, mm, 0, 0, time.UTC)
}

func mkTemplate(name string, start, end time.Time) actModel.ActivityTemplateModel {
	return actModel.ActivityTemplateModel{
		ActivityTemplateID:                    uuid.New(),
		ActivityTemplateName:                  name,
		ActivityTemplateStartTime:             start,
		ActivityTemplateEndTime:               end,
		ActivityTemplateAppliesAllDormitories: true,
		ActivityTemplateAppliesAllDays:        true,
		ActivityTemplateExcludeOnHolidays:     true,
		ActivityTemplateIsActive:              true,
	}
}

func names(templates []actModel.ActivityTemplateModel) []string {
	out := make([]string, 0, len(templates))
	for i := range templates {
		out = append(out, templates[i].ActivityTemplateName)
	}
	return out
}

// "Tahajud" berlaku semua asrama & semua hari: muncul di asrama mana pun.
func TestFilterApplicable_AllScopes(t *testing.T) {
	tahajud := mkTemplate("Tahajud", tm(3, 30), tm(4, 30))
	tahajud.ActivityTemplateExcludeOnHolidays = false

	templates := []actModel.ActivityTemplateModel{tahajud}

	for ordinal := 0; ordinal <= 6; ordinal++ {
		got := FilterApplicable(templates, uuid.New(), ordinal, false)
		if len(got) != 1 {
			t.Errorf("ordinal %d: want 1 occurrence, got %d", ordinal, len(got))
		}
	}
	// exclude_on_holidays=false → tetap muncul di hari libur
	if got := FilterApplicable(templates, uuid.New(), 5, true); len(got) != 1 {
		t.Errorf("hari libur: want 1 occurrence, got %d", len(got))
	}
}

// "Olahraga Pagi" hanya Sabtu + exclude_on_holidays: hilang saat Sabtu libur,
// muncul lagi Sabtu biasa.
func TestFilterApplicable_HolidayExclusion(t *testing.T) {
	olahraga := mkTemplate("Olahraga Pagi", tm(6, 0), tm(7, 0))
	olahraga.ActivityTemplateAppliesAllDays = false
	olahraga.ActivityTemplateWeekdayScope = pq.Int64Array{5} // Sabtu
	olahraga.ActivityTemplateExcludeOnHolidays = true

	templates := []actModel.ActivityTemplateModel{olahraga}
	dorm := uuid.New()

	// Sabtu libur nasional → tidak muncul
	if got := FilterApplicable(templates, dorm, 5, true); len(got) != 0 {
		t.Errorf("Sabtu libur: want 0, got %v", names(got))
	}
	// Sabtu biasa → muncul
	if got := FilterApplicable(templates, dorm, 5, false); len(got) != 1 {
		t.Errorf("Sabtu biasa: want 1, got %v", names(got))
	}
	// Minggu biasa → bukan hari dalam scope
	if got := FilterApplicable(templates, dorm, 6, false); len(got) != 0 {
		t.Errorf("Minggu: want 0, got %v", names(got))
	}
}

func TestFilterApplicable_DormitoryScope(t *testing.T) {
	dormPutra := uuid.New()
	dormPutri := uuid.New()

	kajian := mkTemplate("Kajian Kitab", tm(18, 30), tm(19, 30))
	kajian.ActivityTemplateAppliesAllDormitories = false
	kajian.ActivityTemplateDormitoryScope = pq.StringArray{dormPutra.String()}

	templates := []actModel.ActivityTemplateModel{kajian}

	if got := FilterApplicable(templates, dormPutra, 0, false); len(got) != 1 {
		t.Errorf("asrama dalam scope: want 1, got %d", len(got))
	}
	if got := FilterApplicable(templates, dormPutri, 0, false); len(got) != 0 {
		t.Errorf("asrama di luar scope: want 0, got %d", len(got))
	}
}

func TestFilterApplicable_InactiveSkipped(t *testing.T) {
	nonaktif := mkTemplate("Kegiatan Lama", tm(5, 0), tm(6, 0))
	nonaktif.ActivityTemplateIsActive = false

	if got := FilterApplicable([]actModel.ActivityTemplateModel{nonaktif}, uuid.New(), 0, false); len(got) != 0 {
		t.Errorf("template nonaktif harus di-skip, got %d", len(got))
	}
}

// Hasil resolve harus deterministik: urut jam mulai, lalu nama,
// dan pemanggilan berulang menghasilkan list identik.
func TestFilterApplicable_DeterministicOrder(t *testing.T) {
	templates := []actModel.ActivityTemplateModel{
		mkTemplate("Sorogan", tm(5, 0), tm(6, 0)),
		mkTemplate("Tahajud", tm(3, 30), tm(4, 30)),
		mkTemplate("Subuh Berjamaah", tm(4, 30), tm(5, 0)),
		mkTemplate("Apel Pagi", tm(5, 0), tm(5, 15)), // jam sama dengan Sorogan → urut nama
	}
	dorm := uuid.New()

	first := FilterApplicable(templates, dorm, 2, false)
	want := []string{"Tahajud", "Subuh Berjamaah", "Apel Pagi", "Sorogan"}
	if got := names(first); !reflect.DeepEqual(got, want) {
		t.Errorf("urutan = %v, want %v", got, want)
	}

	// idempotent: resolve ulang input yang sama → hasil sama persis
	second := FilterApplicable(templates, dorm, 2, false)
	if !reflect.DeepEqual(names(first), names(second)) {
		t.Errorf("resolve ulang menghasilkan urutan berbeda: %v vs %v", names(first), names(second))
	}
}

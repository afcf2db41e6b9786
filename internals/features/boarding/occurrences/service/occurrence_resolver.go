// file: internals/features/boarding/occurrences/service/occurrence_resolver.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	actModel "pesantrenku_backend/internals/features/boarding/activities/model"
	calendar "pesantrenku_backend/internals/features/boarding/holidays/service"
)

/* =======================================================
   Occurrence Resolver
   Menurunkan template kegiatan aktif menjadi occurrence
   konkret untuk satu (asrama, tanggal). Fungsi murni atas
   (templates, holiday, dormitoryID, date) — hasilnya tidak
   pernah dijadikan ground truth yang di-cache.
   ======================================================= */

// Occurrence — derived value, tidak pernah dipersist.
// Identitasnya = (template_id, dormitory_id, date).
type Occurrence struct {
	TemplateID  uuid.UUID `json:"template_id"`
	DormitoryID uuid.UUID `json:"dormitory_id"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Name        string    `json:"name"`
	StartTime   string    `json:"start_time"` // HH:mm:ss
	EndTime     string    `json:"end_time"`
}

func secondOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// FilterApplicable — inti resolver, murni & deterministik:
// 1) hanya template aktif, 2) scope asrama cocok, 3) scope hari cocok,
// 4) bukan (hari libur && exclude_on_holidays), 5) urut jam mulai lalu nama.
func FilterApplicable(templates []actModel.ActivityTemplateModel, dormitoryID uuid.UUID, weekdayOrdinal int, isHoliday bool) []actModel.ActivityTemplateModel {
	out := make([]actModel.ActivityTemplateModel, 0, len(templates))
	for i := range templates {
		t := &templates[i]
		if !t.ActivityTemplateIsActive {
			continue
		}
		if !t.AppliesToDormitory(dormitoryID) {
			continue
		}
		if !t.AppliesToWeekday(weekdayOrdinal) {
			continue
		}
		if isHoliday && t.ActivityTemplateExcludeOnHolidays {
			continue
		}
		out = append(out, *t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		si := secondOfDay(out[i].ActivityTemplateStartTime)
		sj := secondOfDay(out[j].ActivityTemplateStartTime)
		if si != sj {
			return si < sj
		}
		return out[i].ActivityTemplateName < out[j].ActivityTemplateName
	})
	return out
}

type Resolver struct {
	DB *gorm.DB
}

// ResolveForDate memuat template aktif + status libur lalu mendelegasikan
// ke FilterApplicable. Read-only, aman dipanggil konkuren tanpa batas.
func (r *Resolver) ResolveForDate(ctx context.Context, dormitoryID uuid.UUID, date time.Time) ([]Occurrence, error) {
	var templates []actModel.ActivityTemplateModel
	if err := r.DB.WithContext(ctx).
		Where("activity_template_is_active = ?", true).
		Find(&templates).Error; err != nil {
		return nil, err
	}

	holiday, err := calendar.IsHoliday(ctx, r.DB, date)
	if err != nil {
		return nil, err
	}

	applicable := FilterApplicable(templates, dormitoryID, calendar.WeekdayOrdinal(date), holiday)

	occurrences := make([]Occurrence, 0, len(applicable))
	for i := range applicable {
		t := &applicable[i]
		occurrences = append(occurrences, Occurrence{
			TemplateID:  t.ActivityTemplateID,
			DormitoryID: dormitoryID,
			Date:        date.Format("2006-01-02"),
			Name:        t.ActivityTemplateName,
			StartTime:   t.ActivityTemplateStartTime.Format("15:04:05"),
			EndTime:     t.ActivityTemplateEndTime.Format("15:04:05"),
		})
	}
	return occurrences, nil
}

// IsApplicable — dipakai Attendance Ledger untuk re-derive applicability
// sebelum menulis: template harus muncul di hasil resolve (asrama, tanggal).
func (r *Resolver) IsApplicable(ctx context.Context, templateID, dormitoryID uuid.UUID, date time.Time) (*Occurrence, error) {
	occurrences, err := r.ResolveForDate(ctx, dormitoryID, date)
	if err != nil {
		return nil, err
	}
	for i := range occurrences {
		if occurrences[i].TemplateID == templateID {
			return &occurrences[i], nil
		}
	}
	return nil, nil
}

// file: internals/features/boarding/holidays/service/calendar_resolver.go
package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	m "pesantrenku_backend/internals/features/boarding/holidays/model"
)

/* =======================================================
   Calendar Resolver
   - WeekdayOrdinal: ordinal hari Senin-first (0..6).
     Label nama hari urusan presentasi, bukan engine ini.
   - IsHoliday: true bila ada entri libur aktif di tanggal itu.
   ======================================================= */

// WeekdayOrdinal: Senin=0 .. Minggu=6.
// time.Weekday milik Go Sunday-first, jadi digeser.
func WeekdayOrdinal(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// IsHoliday mengecek keberadaan entri libur pada tanggal eksak.
func IsHoliday(ctx context.Context, db *gorm.DB, date time.Time) (bool, error) {
	var n int64
	err := db.WithContext(ctx).
		Model(&m.BoardingHolidayModel{}).
		Where("boarding_holiday_date = ?", date.Format("2006-01-02")).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// file: internals/features/boarding/holidays/service/calendar_resolver_test.go
package service

import (
	"testing"
	"time"
)

func TestWeekdayOrdinal(t *testing.T) {
	cases := []struct {
		date string
		want int
	}{
		{"2026-01-05", 0}, // Senin
		{"2026-01-06", 1}, // Selasa
		{"2026-01-07", 2}, // Rabu
		{"2026-01-08", 3}, // Kamis
		{"2026-01-09", 4}, // Jumat
		{"2026-01-10", 5}, // Sabtu
		{"2026-01-11", 6}, // Minggu
		{"2026-01-12", 0}, // Senin lagi
		{"2026-01-17", 5}, // Sabtu minggu berikutnya
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatalf("parse %s: %v", c.date, err)
		}
		if got := WeekdayOrdinal(d); got != c.want {
			t.Errorf("WeekdayOrdinal(%s %s) = %d, want %d", c.date, d.Weekday(), got, c.want)
		}
	}
}

// file: internals/features/boarding/holidays/dto/boarding_holiday_dto_test.go
package dto

import (
	"errors"
	"testing"
)

func TestParseDateYYYYMMDD(t *testing.T) {
	d, err := ParseDateYYYYMMDD("2026-01-10")
	if err != nil {
		t.Fatalf("2026-01-10 harus valid: %v", err)
	}
	if got := d.Format("2006-01-02"); got != "2026-01-10" {
		t.Errorf("roundtrip = %s", got)
	}

	for _, bad := range []string{"", "10-01-2026", "2026/01/10", "2026-13-01", "kemarin"} {
		if _, err := ParseDateYYYYMMDD(bad); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("%q harus ditolak dengan ErrInvalidDate, dapat %v", bad, err)
		}
	}
}

func TestCreateToModel(t *testing.T) {
	req := CreateBoardingHolidayRequest{
		BoardingHolidayDate: "2026-01-10",
		BoardingHolidayName: "  Hari Libur Nasional  ",
	}
	model, err := req.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if model.BoardingHolidayName != "Hari Libur Nasional" {
		t.Errorf("name = %q, harus di-trim", model.BoardingHolidayName)
	}
	if !model.BoardingHolidayIsNational {
		t.Error("default is_national harus true")
	}
}

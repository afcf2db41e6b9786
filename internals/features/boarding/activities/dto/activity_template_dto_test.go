// file: internals/features/boarding/activities/dto/activity_template_dto_test.go
package dto

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	m "pesantrenku_backend/internals/features/boarding/activities/model"
)

func boolPtr(b bool) *bool { return &b }

func TestCreateApplyToModel_Defaults(t *testing.T) {
	req := CreateActivityTemplateRequest{
		ActivityTemplateName:      "  Tahajud  ",
		ActivityTemplateStartTime: "03:30",
		ActivityTemplateEndTime:   "04:30",
	}

	var dst m.ActivityTemplateModel
	if err := req.ApplyToModel(&dst); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}

	if dst.ActivityTemplateName != "Tahajud" {
		t.Errorf("name = %q, want %q (trimmed)", dst.ActivityTemplateName, "Tahajud")
	}
	if !dst.ActivityTemplateAppliesAllDormitories || !dst.ActivityTemplateAppliesAllDays {
		t.Error("default scope harus berlaku semua asrama & semua hari")
	}
	if !dst.ActivityTemplateExcludeOnHolidays {
		t.Error("default exclude_on_holidays harus true")
	}
	if !dst.ActivityTemplateIsActive {
		t.Error("default is_active harus true")
	}
	if got := dst.ActivityTemplateStartTime.Format("15:04"); got != "03:30" {
		t.Errorf("start = %s, want 03:30", got)
	}
	if got := dst.ActivityTemplateEndTime.Format("15:04"); got != "04:30" {
		t.Errorf("end = %s, want 04:30", got)
	}
}

func TestCreateApplyToModel_EndMustBeAfterStart(t *testing.T) {
	cases := []struct {
		name       string
		start, end string
	}{
		{"end == start", "06:00", "06:00"},
		{"end < start", "07:00", "06:00"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := CreateActivityTemplateRequest{
				ActivityTemplateName:      "Olahraga Pagi",
				ActivityTemplateStartTime: c.start,
				ActivityTemplateEndTime:   c.end,
			}
			var dst m.ActivityTemplateModel
			if err := req.ApplyToModel(&dst); !errors.Is(err, ErrEndNotAfterStart) {
				t.Errorf("err = %v, want ErrEndNotAfterStart", err)
			}
		})
	}
}

func TestCreateApplyToModel_ScopeCompleteness(t *testing.T) {
	base := CreateActivityTemplateRequest{
		ActivityTemplateName:      "Kajian Kitab",
		ActivityTemplateStartTime: "18:30",
		ActivityTemplateEndTime:   "19:30",
	}

	t.Run("scope asrama kosong saat applies_all=false", func(t *testing.T) {
		req := base
		req.ActivityTemplateAppliesAllDormitories = boolPtr(false)
		var dst m.ActivityTemplateModel
		if err := req.ApplyToModel(&dst); !errors.Is(err, ErrEmptyDormScope) {
			t.Errorf("err = %v, want ErrEmptyDormScope", err)
		}
	})

	t.Run("scope hari kosong saat applies_all=false", func(t *testing.T) {
		req := base
		req.ActivityTemplateAppliesAllDays = boolPtr(false)
		var dst m.ActivityTemplateModel
		if err := req.ApplyToModel(&dst); !errors.Is(err, ErrEmptyWeekdayScope) {
			t.Errorf("err = %v, want ErrEmptyWeekdayScope", err)
		}
	})
}

func TestCreateApplyToModel_ScopeNormalization(t *testing.T) {
	dormA := uuid.New().String()
	dormB := uuid.New().String()

	req := CreateActivityTemplateRequest{
		ActivityTemplateName:      "Sorogan",
		ActivityTemplateStartTime: "05:00",
		ActivityTemplateEndTime:   "06:00",

		ActivityTemplateAppliesAllDormitories: boolPtr(false),
		ActivityTemplateDormitoryScope:        []string{dormA, dormB, dormA}, // duplikat

		ActivityTemplateAppliesAllDays: boolPtr(false),
		ActivityTemplateWeekdayScope:   []int{5, 6, 5},
	}

	var dst m.ActivityTemplateModel
	if err := req.ApplyToModel(&dst); err != nil {
		t.Fatalf("ApplyToModel: %v", err)
	}

	if len(dst.ActivityTemplateDormitoryScope) != 2 {
		t.Errorf("dormitory scope = %v, duplikat harus hilang", dst.ActivityTemplateDormitoryScope)
	}
	if len(dst.ActivityTemplateWeekdayScope) != 2 {
		t.Errorf("weekday scope = %v, duplikat harus hilang", dst.ActivityTemplateWeekdayScope)
	}

	// weekend scope harus cocok dengan matcher model
	if !dst.AppliesToWeekday(5) || !dst.AppliesToWeekday(6) {
		t.Error("Sabtu & Minggu harus masuk scope")
	}
	if dst.AppliesToWeekday(0) {
		t.Error("Senin tidak boleh masuk scope")
	}
}

func TestUpdateApplyToModel_ClearsStaleScope(t *testing.T) {
	dorm := uuid.New()

	// model lama ber-scope terbatas
	var dst m.ActivityTemplateModel
	create := CreateActivityTemplateRequest{
		ActivityTemplateName:                  "Kajian Kitab",
		ActivityTemplateStartTime:             "18:30",
		ActivityTemplateEndTime:               "19:30",
		ActivityTemplateAppliesAllDormitories: boolPtr(false),
		ActivityTemplateDormitoryScope:        []string{dorm.String()},
	}
	if err := create.ApplyToModel(&dst); err != nil {
		t.Fatalf("create: %v", err)
	}

	// update kembali ke "berlaku semua" → scope lama wajib dikosongkan
	update := UpdateActivityTemplateRequest{
		ActivityTemplateName:                  "Kajian Kitab",
		ActivityTemplateStartTime:             "18:30",
		ActivityTemplateEndTime:               "19:30",
		ActivityTemplateAppliesAllDormitories: true,
		ActivityTemplateAppliesAllDays:        true,
		ActivityTemplateExcludeOnHolidays:     true,
		ActivityTemplateIsActive:              true,
	}
	if err := update.ApplyToModel(&dst); err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(dst.ActivityTemplateDormitoryScope) != 0 {
		t.Errorf("scope lama masih tersisa: %v", dst.ActivityTemplateDormitoryScope)
	}
	if !dst.AppliesToDormitory(uuid.New()) {
		t.Error("setelah applies_all=true, asrama mana pun harus cocok")
	}
}

func TestParseTime_Formats(t *testing.T) {
	if _, err := parseTime("07:30"); err != nil {
		t.Errorf("HH:mm harus diterima: %v", err)
	}
	if _, err := parseTime("07:30:15"); err != nil {
		t.Errorf("HH:mm:ss harus diterima: %v", err)
	}
	if _, err := parseTime("7.30"); err == nil {
		t.Error("format salah harus ditolak")
	}
}

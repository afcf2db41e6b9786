// file: internals/features/boarding/activities/dto/activity_template_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	m "pesantrenku_backend/internals/features/boarding/activities/model"
)

var (
	layoutT1 = "15:04"
	layoutT2 = "15:04:05"
)

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty time")
	}
	if t, err := time.Parse(layoutT1, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(layoutT2, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time format (want HH:mm or HH:mm:ss)")
}

/* =========================================================
   Requests
   ========================================================= */

type CreateActivityTemplateRequest struct {
	ActivityTemplateName      string `json:"activity_template_name" validate:"required,max=100"`
	ActivityTemplateStartTime string `json:"activity_template_start_time" validate:"required"` // "HH:mm" / "HH:mm:ss"
	ActivityTemplateEndTime   string `json:"activity_template_end_time"   validate:"required"`

	ActivityTemplateAppliesAllDormitories *bool    `json:"activity_template_applies_all_dormitories" validate:"omitempty"`
	ActivityTemplateDormitoryScope        []string `json:"activity_template_dormitory_scope" validate:"omitempty,dive,uuid4"`

	ActivityTemplateAppliesAllDays *bool `json:"activity_template_applies_all_days" validate:"omitempty"`
	ActivityTemplateWeekdayScope   []int `json:"activity_template_weekday_scope" validate:"omitempty,dive,gte=0,lte=6"`

	ActivityTemplateExcludeOnHolidays *bool `json:"activity_template_exclude_on_holidays" validate:"omitempty"`
	ActivityTemplateIsActive          *bool `json:"activity_template_is_active" validate:"omitempty"`
}

var (
	ErrEndNotAfterStart  = errors.New("activity_template_end_time must be greater than start_time")
	ErrEmptyDormScope    = errors.New("activity_template_dormitory_scope wajib diisi bila tidak berlaku untuk semua asrama")
	ErrEmptyWeekdayScope = errors.New("activity_template_weekday_scope wajib diisi bila tidak berlaku setiap hari")
)

func (r *CreateActivityTemplateRequest) ApplyToModel(dst *m.ActivityTemplateModel) error {
	startTime, err := parseTime(r.ActivityTemplateStartTime)
	if err != nil {
		return fmt.Errorf("activity_template_start_time: %w", err)
	}
	endTime, err := parseTime(r.ActivityTemplateEndTime)
	if err != nil {
		return fmt.Errorf("activity_template_end_time: %w", err)
	}
	if !endTime.After(startTime) {
		return ErrEndNotAfterStart
	}

	appliesAllDorms := true
	if r.ActivityTemplateAppliesAllDormitories != nil {
		appliesAllDorms = *r.ActivityTemplateAppliesAllDormitories
	}
	appliesAllDays := true
	if r.ActivityTemplateAppliesAllDays != nil {
		appliesAllDays = *r.ActivityTemplateAppliesAllDays
	}

	// scope wajib non-empty saat flag "berlaku semua" dimatikan
	if !appliesAllDorms && len(r.ActivityTemplateDormitoryScope) == 0 {
		return ErrEmptyDormScope
	}
	if !appliesAllDays && len(r.ActivityTemplateWeekdayScope) == 0 {
		return ErrEmptyWeekdayScope
	}

	dst.ActivityTemplateName = strings.TrimSpace(r.ActivityTemplateName)
	dst.ActivityTemplateStartTime = startTime
	dst.ActivityTemplateEndTime = endTime

	dst.ActivityTemplateAppliesAllDormitories = appliesAllDorms
	dst.ActivityTemplateDormitoryScope = nil
	if !appliesAllDorms {
		dst.ActivityTemplateDormitoryScope = normalizeDormScope(r.ActivityTemplateDormitoryScope)
	}

	dst.ActivityTemplateAppliesAllDays = appliesAllDays
	dst.ActivityTemplateWeekdayScope = nil
	if !appliesAllDays {
		dst.ActivityTemplateWeekdayScope = normalizeWeekdayScope(r.ActivityTemplateWeekdayScope)
	}

	dst.ActivityTemplateExcludeOnHolidays = true
	if r.ActivityTemplateExcludeOnHolidays != nil {
		dst.ActivityTemplateExcludeOnHolidays = *r.ActivityTemplateExcludeOnHolidays
	}
	dst.ActivityTemplateIsActive = true
	if r.ActivityTemplateIsActive != nil {
		dst.ActivityTemplateIsActive = *r.ActivityTemplateIsActive
	}
	return nil
}

// UpdateActivityTemplateRequest — update penuh (PUT-like), field scope
// mengikuti aturan yang sama dengan create.
type UpdateActivityTemplateRequest struct {
	ActivityTemplateName      string `json:"activity_template_name" validate:"required,max=100"`
	ActivityTemplateStartTime string `json:"activity_template_start_time" validate:"required"`
	ActivityTemplateEndTime   string `json:"activity_template_end_time"   validate:"required"`

	ActivityTemplateAppliesAllDormitories bool     `json:"activity_template_applies_all_dormitories"`
	ActivityTemplateDormitoryScope        []string `json:"activity_template_dormitory_scope" validate:"omitempty,dive,uuid4"`

	ActivityTemplateAppliesAllDays bool  `json:"activity_template_applies_all_days"`
	ActivityTemplateWeekdayScope   []int `json:"activity_template_weekday_scope" validate:"omitempty,dive,gte=0,lte=6"`

	ActivityTemplateExcludeOnHolidays bool `json:"activity_template_exclude_on_holidays"`
	ActivityTemplateIsActive          bool `json:"activity_template_is_active"`
}

func (r *UpdateActivityTemplateRequest) ApplyToModel(dst *m.ActivityTemplateModel) error {
	startTime, err := parseTime(r.ActivityTemplateStartTime)
	if err != nil {
		return fmt.Errorf("activity_template_start_time: %w", err)
	}
	endTime, err := parseTime(r.ActivityTemplateEndTime)
	if err != nil {
		return fmt.Errorf("activity_template_end_time: %w", err)
	}
	if !endTime.After(startTime) {
		return ErrEndNotAfterStart
	}

	if !r.ActivityTemplateAppliesAllDormitories && len(r.ActivityTemplateDormitoryScope) == 0 {
		return ErrEmptyDormScope
	}
	if !r.ActivityTemplateAppliesAllDays && len(r.ActivityTemplateWeekdayScope) == 0 {
		return ErrEmptyWeekdayScope
	}

	dst.ActivityTemplateName = strings.TrimSpace(r.ActivityTemplateName)
	dst.ActivityTemplateStartTime = startTime
	dst.ActivityTemplateEndTime = endTime

	dst.ActivityTemplateAppliesAllDormitories = r.ActivityTemplateAppliesAllDormitories
	dst.ActivityTemplateDormitoryScope = nil
	if !r.ActivityTemplateAppliesAllDormitories {
		dst.ActivityTemplateDormitoryScope = normalizeDormScope(r.ActivityTemplateDormitoryScope)
	}

	dst.ActivityTemplateAppliesAllDays = r.ActivityTemplateAppliesAllDays
	dst.ActivityTemplateWeekdayScope = nil
	if !r.ActivityTemplateAppliesAllDays {
		dst.ActivityTemplateWeekdayScope = normalizeWeekdayScope(r.ActivityTemplateWeekdayScope)
	}

	dst.ActivityTemplateExcludeOnHolidays = r.ActivityTemplateExcludeOnHolidays
	dst.ActivityTemplateIsActive = r.ActivityTemplateIsActive
	return nil
}

// dedup + buang string kosong; id sudah lolos validasi uuid4
func normalizeDormScope(in []string) pq.StringArray {
	seen := make(map[string]struct{}, len(in))
	out := make(pq.StringArray, 0, len(in))
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func normalizeWeekdayScope(in []int) pq.Int64Array {
	seen := make(map[int]struct{}, len(in))
	out := make(pq.Int64Array, 0, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, int64(d))
	}
	return out
}

func (r *CreateActivityTemplateRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *UpdateActivityTemplateRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =========================================================
   Response
   ========================================================= */

type ActivityTemplateResponse struct {
	ActivityTemplateID        uuid.UUID `json:"activity_template_id"`
	ActivityTemplateName      string    `json:"activity_template_name"`
	ActivityTemplateStartTime string    `json:"activity_template_start_time"` // HH:mm:ss
	ActivityTemplateEndTime   string    `json:"activity_template_end_time"`

	ActivityTemplateAppliesAllDormitories bool     `json:"activity_template_applies_all_dormitories"`
	ActivityTemplateDormitoryScope        []string `json:"activity_template_dormitory_scope,omitempty"`

	ActivityTemplateAppliesAllDays bool    `json:"activity_template_applies_all_days"`
	ActivityTemplateWeekdayScope   []int64 `json:"activity_template_weekday_scope,omitempty"`

	ActivityTemplateExcludeOnHolidays bool `json:"activity_template_exclude_on_holidays"`
	ActivityTemplateIsActive          bool `json:"activity_template_is_active"`

	ActivityTemplateCreatedAt time.Time `json:"activity_template_created_at"`
	ActivityTemplateUpdatedAt time.Time `json:"activity_template_updated_at"`
}

func NewActivityTemplateResponse(src *m.ActivityTemplateModel) ActivityTemplateResponse {
	return ActivityTemplateResponse{
		ActivityTemplateID:                    src.ActivityTemplateID,
		ActivityTemplateName:                  src.ActivityTemplateName,
		ActivityTemplateStartTime:             src.ActivityTemplateStartTime.Format(layoutT2),
		ActivityTemplateEndTime:               src.ActivityTemplateEndTime.Format(layoutT2),
		ActivityTemplateAppliesAllDormitories: src.ActivityTemplateAppliesAllDormitories,
		ActivityTemplateDormitoryScope:        src.ActivityTemplateDormitoryScope,
		ActivityTemplateAppliesAllDays:        src.ActivityTemplateAppliesAllDays,
		ActivityTemplateWeekdayScope:          src.ActivityTemplateWeekdayScope,
		ActivityTemplateExcludeOnHolidays:     src.ActivityTemplateExcludeOnHolidays,
		ActivityTemplateIsActive:              src.ActivityTemplateIsActive,
		ActivityTemplateCreatedAt:             src.ActivityTemplateCreatedAt,
		ActivityTemplateUpdatedAt:             src.ActivityTemplateUpdatedAt,
	}
}

// file: internals/features/boarding/activities/model/activity_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

/* =======================================================
   ActivityTemplateModel — map ke tabel boarding_activity_templates
   Template kegiatan asrama berulang. Tidak pernah hard delete:
   riwayat absensi harus tetap bisa menunjuk ke template-nya,
   jadi nonaktif hanya lewat flag is_active.
   ======================================================= */

type ActivityTemplateModel struct {
	// PK
	ActivityTemplateID uuid.UUID `json:"activity_template_id" gorm:"type:uuid;primaryKey;column:activity_template_id;default:gen_random_uuid()"`

	ActivityTemplateName string `json:"activity_template_name" gorm:"type:varchar(100);not null;column:activity_template_name"`

	// Jam kegiatan (interval half-open, end eksklusif)
	ActivityTemplateStartTime time.Time `json:"activity_template_start_time" gorm:"type:time;not null;column:activity_template_start_time"`
	ActivityTemplateEndTime   time.Time `json:"activity_template_end_time" gorm:"type:time;not null;column:activity_template_end_time"`

	// Scope asrama: semua, atau himpunan id asrama (uuid[])
	ActivityTemplateAppliesAllDormitories bool           `json:"activity_template_applies_all_dormitories" gorm:"type:boolean;not null;default:true;column:activity_template_applies_all_dormitories"`
	ActivityTemplateDormitoryScope        pq.StringArray `json:"activity_template_dormitory_scope,omitempty" gorm:"type:uuid[];column:activity_template_dormitory_scope"`

	// Scope hari: semua, atau himpunan ordinal 0..6 Senin-first (int[])
	ActivityTemplateAppliesAllDays bool          `json:"activity_template_applies_all_days" gorm:"type:boolean;not null;default:true;column:activity_template_applies_all_days"`
	ActivityTemplateWeekdayScope   pq.Int64Array `json:"activity_template_weekday_scope,omitempty" gorm:"type:int[];column:activity_template_weekday_scope"`

	ActivityTemplateExcludeOnHolidays bool `json:"activity_template_exclude_on_holidays" gorm:"type:boolean;not null;default:true;column:activity_template_exclude_on_holidays"`
	ActivityTemplateIsActive          bool `json:"activity_template_is_active" gorm:"type:boolean;not null;default:true;column:activity_template_is_active"`

	// Timestamps
	ActivityTemplateCreatedAt time.Time `json:"activity_template_created_at" gorm:"column:activity_template_created_at;not null;autoCreateTime"`
	ActivityTemplateUpdatedAt time.Time `json:"activity_template_updated_at" gorm:"column:activity_template_updated_at;not null;autoUpdateTime"`
}

func (ActivityTemplateModel) TableName() string {
	return "boarding_activity_templates"
}

/* =======================================================
   Scope Matcher
   ======================================================= */

// AppliesToDormitory: berlaku untuk semua asrama, atau asrama ada di scope.
func (t *ActivityTemplateModel) AppliesToDormitory(dormitoryID uuid.UUID) bool {
	if t.ActivityTemplateAppliesAllDormitories {
		return true
	}
	idStr := dormitoryID.String()
	for _, s := range t.ActivityTemplateDormitoryScope {
		if s == idStr {
			return true
		}
	}
	return false
}

// AppliesToWeekday: berlaku setiap hari, atau ordinal ada di scope.
func (t *ActivityTemplateModel) AppliesToWeekday(ordinal int) bool {
	if t.ActivityTemplateAppliesAllDays {
		return true
	}
	for _, d := range t.ActivityTemplateWeekdayScope {
		if int(d) == ordinal {
			return true
		}
	}
	return false
}

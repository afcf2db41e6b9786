// file: internals/features/boarding/activities/controller/activity_template_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	helper "pesantrenku_backend/internals/helpers"
	helperAuth "pesantrenku_backend/internals/helpers/auth"

	d "pesantrenku_backend/internals/features/boarding/activities/dto"
	m "pesantrenku_backend/internals/features/boarding/activities/model"
)

type ActivityTemplateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ActivityTemplateController {
	return &ActivityTemplateController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create
   ========================= */

func (ctl *ActivityTemplateController) Create(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("kegiatan asrama"))
	}

	var req d.CreateActivityTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ActivityTemplate.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var model m.ActivityTemplateModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// Tidak ada pengecekan bentrok antar-template: kegiatan paralel
	// pada asrama yang sama memang diizinkan.
	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Template kegiatan dibuat", d.NewActivityTemplateResponse(&model))
}

/* =========================
   Update (full)
   ========================= */

func (ctl *ActivityTemplateController) Update(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("kegiatan asrama"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ActivityTemplateModel
	if err := ctl.DB.
		Where("activity_template_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "template not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateActivityTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ApplyToModel(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Template kegiatan diperbarui", d.NewActivityTemplateResponse(&existing))
}

/* =========================
   Deactivate — tidak ada hard delete untuk template
   ========================= */

func (ctl *ActivityTemplateController) Deactivate(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("kegiatan asrama"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ActivityTemplateModel
	if err := ctl.DB.
		Where("activity_template_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "template not found")
		}
		return helper.WritePGError(c, err)
	}

	if existing.ActivityTemplateIsActive {
		if err := ctl.DB.Model(&existing).
			Update("activity_template_is_active", false).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		existing.ActivityTemplateIsActive = false
	}

	return helper.JsonUpdated(c, "Template kegiatan dinonaktifkan", d.NewActivityTemplateResponse(&existing))
}

/* =========================
   List
   ========================= */

func (ctl *ActivityTemplateController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.ActivityTemplateModel{})

	// default hanya yang aktif; ?include_inactive=true untuk semua
	if !strings.EqualFold(strings.TrimSpace(c.Query("include_inactive")), "true") {
		q = q.Where("activity_template_is_active = ?", true)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ActivityTemplateModel
	if err := q.
		Order("activity_template_start_time ASC, activity_template_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	items := make([]d.ActivityTemplateResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewActivityTemplateResponse(&rows[i]))
	}

	return helper.JsonList(c, "Daftar template kegiatan", items, helper.BuildPagination(total, p, len(items)))
}

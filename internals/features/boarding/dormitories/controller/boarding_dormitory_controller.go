// file: internals/features/boarding/dormitories/controller/boarding_dormitory_controller.go
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

	d "pesantrenku_backend/internals/features/boarding/dormitories/dto"
	m "pesantrenku_backend/internals/features/boarding/dormitories/model"
)

type BoardingDormitoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BoardingDormitoryController {
	return &BoardingDormitoryController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *BoardingDormitoryController) Create(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("asrama"))
	}

	var req d.CreateBoardingDormitoryRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[BoardingDormitory.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var model m.BoardingDormitoryModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Asrama dibuat", d.NewBoardingDormitoryResponse(&model))
}

func (ctl *BoardingDormitoryController) Update(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("asrama"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.BoardingDormitoryModel
	if err := ctl.DB.
		Where("boarding_dormitory_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "dormitory not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateBoardingDormitoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.Apply(&existing); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Save(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Asrama diperbarui", d.NewBoardingDormitoryResponse(&existing))
}

func (ctl *BoardingDormitoryController) Delete(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("asrama"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.BoardingDormitoryModel
	if err := ctl.DB.
		Where("boarding_dormitory_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "dormitory not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Asrama dihapus", d.NewBoardingDormitoryResponse(&existing))
}

func (ctl *BoardingDormitoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.BoardingDormitoryModel{})

	if s := strings.TrimSpace(c.Query("guardian_user_id")); s != "" {
		guardianID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "guardian_user_id tidak valid")
		}
		q = q.Where("boarding_dormitory_guardian_user_id = ?", guardianID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.BoardingDormitoryModel
	if err := q.
		Order("boarding_dormitory_name ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	items := make([]d.BoardingDormitoryResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewBoardingDormitoryResponse(&rows[i]))
	}

	return helper.JsonList(c, "Daftar asrama", items, helper.BuildPagination(total, p, len(items)))
}

// file: internals/features/boarding/holidays/controller/boarding_holiday_controller.go
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

	d "pesantrenku_backend/internals/features/boarding/holidays/dto"
	m "pesantrenku_backend/internals/features/boarding/holidays/model"
	svc "pesantrenku_backend/internals/features/boarding/holidays/service"
)

type BoardingHolidayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BoardingHolidayController {
	return &BoardingHolidayController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   CRUD hari libur
   ========================= */

func (ctl *BoardingHolidayController) Create(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.AcademicStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorStaff("kalender libur"))
	}

	var req d.CreateBoardingHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[BoardingHoliday.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	// unique index tanggal = penjaga race; duplikat → 409 via mapping SQLSTATE
	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Hari libur ditambahkan", d.NewBoardingHolidayResponse(&model))
}

func (ctl *BoardingHolidayController) Update(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.AcademicStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorStaff("kalender libur"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.BoardingHolidayModel
	if err := ctl.DB.
		Where("boarding_holiday_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "holiday not found")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateBoardingHolidayRequest
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

	return helper.JsonUpdated(c, "Hari libur diperbarui", d.NewBoardingHolidayResponse(&existing))
}

func (ctl *BoardingHolidayController) Delete(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.AcademicStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorStaff("kalender libur"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.BoardingHolidayModel
	if err := ctl.DB.
		Where("boarding_holiday_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "holiday not found")
		}
		return helper.WritePGError(c, err)
	}

	// soft delete → tanggalnya lepas dari lookup set resolver
	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Hari libur dihapus", d.NewBoardingHolidayResponse(&existing))
}

func (ctl *BoardingHolidayController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).Model(&m.BoardingHolidayModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.BoardingHolidayModel
	if err := q.
		Order("boarding_holiday_date ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	items := make([]d.BoardingHolidayResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewBoardingHolidayResponse(&rows[i]))
	}

	return helper.JsonList(c, "Daftar hari libur", items, helper.BuildPagination(total, p, len(items)))
}

/* =========================
   Utilitas kalender (spec §6)
   ========================= */

// CalendarLookup: GET /calendar?date=YYYY-MM-DD →
// {weekday_ordinal, is_holiday}
func (ctl *BoardingHolidayController) CalendarLookup(c *fiber.Ctx) error {
	date, err := d.ParseDateYYYYMMDD(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	holiday, err := svc.IsHoliday(c.Context(), ctl.DB, date)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Info kalender", fiber.Map{
		"date":            date.Format("2006-01-02"),
		"weekday_ordinal": svc.WeekdayOrdinal(date),
		"is_holiday":      holiday,
	})
}

// file: internals/features/boarding/occurrences/controller/agenda_controller.go
package controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "pesantrenku_backend/internals/helpers"

	dormModel "pesantrenku_backend/internals/features/boarding/dormitories/model"
	holDto "pesantrenku_backend/internals/features/boarding/holidays/dto"
	svc "pesantrenku_backend/internals/features/boarding/occurrences/service"
)

type AgendaController struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AgendaController {
	return &AgendaController{DB: db}
}

/* =========================
   Agenda per asrama
   GET /agenda/:dormitory_id?date=YYYY-MM-DD
   ========================= */

func (ctl *AgendaController) ForDormitory(c *fiber.Ctx) error {
	dormitoryID, err := uuid.Parse(strings.TrimSpace(c.Params("dormitory_id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "dormitory_id tidak valid")
	}
	date, err := holDto.ParseDateYYYYMMDD(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	resolver := svc.Resolver{DB: ctl.DB}
	occurrences, err := resolver.ResolveForDate(c.Context(), dormitoryID, date)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Agenda kegiatan asrama", fiber.Map{
		"dormitory_id": dormitoryID,
		"date":         date.Format("2006-01-02"),
		"occurrences":  occurrences,
	})
}

/* =========================
   Agenda seluruh asrama (batch)
   GET /agenda?date=YYYY-MM-DD
   Kegagalan satu asrama dilaporkan per-item, tidak
   membatalkan hasil asrama lainnya.
   ========================= */

func (ctl *AgendaController) ForAllDormitories(c *fiber.Ctx) error {
	date, err := holDto.ParseDateYYYYMMDD(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var dormitories []dormModel.BoardingDormitoryModel
	if err := ctl.DB.WithContext(c.Context()).
		Order("boarding_dormitory_name ASC").
		Find(&dormitories).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	resolver := svc.Resolver{DB: ctl.DB}

	results := make([]fiber.Map, 0, len(dormitories))
	failures := make([]fiber.Map, 0)
	for i := range dormitories {
		dorm := &dormitories[i]
		occurrences, rerr := resolver.ResolveForDate(c.Context(), dorm.BoardingDormitoryID, date)
		if rerr != nil {
			log.Printf("[Agenda.ForAllDormitories] resolve %s error: %v", dorm.BoardingDormitoryID, rerr)
			failures = append(failures, fiber.Map{
				"dormitory_id":   dorm.BoardingDormitoryID,
				"dormitory_name": dorm.BoardingDormitoryName,
				"error":          rerr.Error(),
			})
			continue
		}
		results = append(results, fiber.Map{
			"dormitory_id":   dorm.BoardingDormitoryID,
			"dormitory_name": dorm.BoardingDormitoryName,
			"occurrences":    occurrences,
		})
	}

	return helper.JsonOK(c, "Agenda kegiatan seluruh asrama", fiber.Map{
		"date":     date.Format("2006-01-02"),
		"results":  results,
		"failures": failures,
	})
}

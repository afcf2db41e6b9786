// file: internals/features/boarding/attendance/controller/boarding_attendance_controller.go
package controller

import (
	"errors"
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

	d "pesantrenku_backend/internals/features/boarding/attendance/dto"
	m "pesantrenku_backend/internals/features/boarding/attendance/model"
	svc "pesantrenku_backend/internals/features/boarding/attendance/service"
	holDto "pesantrenku_backend/internals/features/boarding/holidays/dto"
)

type BoardingAttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BoardingAttendanceController {
	return &BoardingAttendanceController{DB: db, Validate: v}
}

/* =========================
   Mark — satu peserta
   ========================= */

func (ctl *BoardingAttendanceController) Mark(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("absensi asrama"))
	}

	recordedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.MarkBoardingAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[BoardingAttendance.Mark] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	templateID, _ := uuid.Parse(req.BoardingAttendanceTemplateID)
	dormitoryID, _ := uuid.Parse(req.BoardingAttendanceDormitoryID)
	participantID, _ := uuid.Parse(req.BoardingAttendanceParticipantID)
	date, err := holDto.ParseDateYYYYMMDD(req.BoardingAttendanceDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ledger := svc.Ledger{DB: ctl.DB}
	record, inserted, err := ledger.Mark(c.Context(), svc.MarkInput{
		TemplateID:      templateID,
		DormitoryID:     dormitoryID,
		ParticipantKind: m.ParticipantKind(req.BoardingAttendanceParticipantKind),
		ParticipantID:   participantID,
		Date:            date,
		Status:          m.AttendanceStatus(req.BoardingAttendanceStatus),
		Notes:           d.ApplyNotes(req.BoardingAttendanceNotes),
		RecordedBy:      recordedBy,
	})
	if err != nil {
		if errors.Is(err, svc.ErrNotApplicable) {
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		}
		log.Printf("[BoardingAttendance.Mark] error: %v", err)
		return helper.WritePGError(c, err)
	}

	msg := "Absensi diperbarui"
	if inserted {
		msg = "Absensi dicatat"
	}
	return helper.JsonOK(c, msg, fiber.Map{
		"inserted": inserted,
		"record":   d.NewBoardingAttendanceResponse(record),
	})
}

/* =========================
   BatchMark — satu occurrence, banyak peserta.
   Kegagalan per-item tidak membatalkan item lain.
   ========================= */

func (ctl *BoardingAttendanceController) BatchMark(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.BoardingStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorGuardian("absensi asrama"))
	}

	recordedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.BatchMarkBoardingAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	templateID, _ := uuid.Parse(req.BoardingAttendanceTemplateID)
	dormitoryID, _ := uuid.Parse(req.BoardingAttendanceDormitoryID)
	date, err := holDto.ParseDateYYYYMMDD(req.BoardingAttendanceDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ledger := svc.Ledger{DB: ctl.DB}

	saved := 0
	results := make([]fiber.Map, 0, len(req.Items))
	for _, item := range req.Items {
		participantID, _ := uuid.Parse(item.ParticipantID)

		record, inserted, merr := ledger.Mark(c.Context(), svc.MarkInput{
			TemplateID:      templateID,
			DormitoryID:     dormitoryID,
			ParticipantKind: m.ParticipantKind(item.ParticipantKind),
			ParticipantID:   participantID,
			Date:            date,
			Status:          m.AttendanceStatus(item.Status),
			Notes:           d.ApplyNotes(item.Notes),
			RecordedBy:      recordedBy,
		})
		if merr != nil {
			results = append(results, fiber.Map{
				"participant_id": item.ParticipantID,
				"error":          merr.Error(),
			})
			continue
		}
		saved++
		results = append(results, fiber.Map{
			"participant_id": item.ParticipantID,
			"record_id":      record.BoardingAttendanceID,
			"inserted":       inserted,
		})
	}

	return helper.JsonOK(c, "Absensi asrama tersimpan", fiber.Map{
		"saved":   saved,
		"total":   len(req.Items),
		"results": results,
	})
}

/* =========================
   Recap
   GET /recap?date_from=&date_to=&dormitory_id=&template_id=&participant_id=
   ========================= */

func (ctl *BoardingAttendanceController) Recap(c *fiber.Ctx) error {
	dateFrom, err := holDto.ParseDateYYYYMMDD(c.Query("date_from"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date_from: "+err.Error())
	}
	dateTo, err := holDto.ParseDateYYYYMMDD(c.Query("date_to"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "date_to: "+err.Error())
	}
	if dateTo.Before(dateFrom) {
		return helper.JsonError(c, http.StatusBadRequest, "date_to harus >= date_from")
	}

	filter := svc.RecapFilter{DateFrom: dateFrom, DateTo: dateTo}
	if s := strings.TrimSpace(c.Query("dormitory_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "dormitory_id tidak valid")
		}
		filter.DormitoryID = &id
	}
	if s := strings.TrimSpace(c.Query("template_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "template_id tidak valid")
		}
		filter.TemplateID = &id
	}
	if s := strings.TrimSpace(c.Query("participant_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "participant_id tidak valid")
		}
		filter.ParticipantID = &id
	}

	ledger := svc.Ledger{DB: ctl.DB}
	counts, err := ledger.Recap(c.Context(), filter)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "Rekap absensi asrama", fiber.Map{
		"date_from": dateFrom.Format("2006-01-02"),
		"date_to":   dateTo.Format("2006-01-02"),
		"counts":    counts,
	})
}

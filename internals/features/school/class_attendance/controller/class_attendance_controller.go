// file: internals/features/school/class_attendance/controller/class_attendance_controller.go
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

	battm "pesantrenku_backend/internals/features/boarding/attendance/model"
	holDto "pesantrenku_backend/internals/features/boarding/holidays/dto"
	d "pesantrenku_backend/internals/features/school/class_attendance/dto"
	svc "pesantrenku_backend/internals/features/school/class_attendance/service"
)

type ClassAttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassAttendanceController {
	return &ClassAttendanceController{DB: db, Validate: v}
}

func writeMarkError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrScheduleNotFound):
		return helper.JsonError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, svc.ErrWrongDay):
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("[ClassAttendance] error: %v", err)
		return helper.WritePGError(c, err)
	}
}

/* =========================
   Mark — satu peserta
   ========================= */

func (ctl *ClassAttendanceController) Mark(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.ClassAttendanceStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorTeacher("absensi pelajaran"))
	}

	recordedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.MarkClassAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	scheduleID, _ := uuid.Parse(req.ClassAttendanceScheduleID)
	participantID, _ := uuid.Parse(req.ClassAttendanceParticipantID)
	date, err := holDto.ParseDateYYYYMMDD(req.ClassAttendanceDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ledger := svc.Ledger{DB: ctl.DB}
	record, inserted, err := ledger.Mark(c.Context(), svc.MarkInput{
		ScheduleID:      scheduleID,
		ParticipantKind: battm.ParticipantKind(req.ClassAttendanceParticipantKind),
		ParticipantID:   participantID,
		Date:            date,
		Status:          battm.AttendanceStatus(req.ClassAttendanceStatus),
		Notes:           d.ApplyNotes(req.ClassAttendanceNotes),
		RecordedBy:      recordedBy,
	})
	if err != nil {
		return writeMarkError(c, err)
	}

	msg := "Absensi diperbarui"
	if inserted {
		msg = "Absensi dicatat"
	}
	return helper.JsonOK(c, msg, fiber.Map{
		"inserted": inserted,
		"record":   d.NewClassAttendanceResponse(record),
	})
}

/* =========================
   BatchMark — satu slot jadwal, banyak peserta
   ========================= */

func (ctl *ClassAttendanceController) BatchMark(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.ClassAttendanceStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorTeacher("absensi pelajaran"))
	}

	recordedBy, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.BatchMarkClassAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	scheduleID, _ := uuid.Parse(req.ClassAttendanceScheduleID)
	date, err := holDto.ParseDateYYYYMMDD(req.ClassAttendanceDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	ledger := svc.Ledger{DB: ctl.DB}

	saved := 0
	results := make([]fiber.Map, 0, len(req.Items))
	for _, item := range req.Items {
		participantID, _ := uuid.Parse(item.ParticipantID)

		record, inserted, merr := ledger.Mark(c.Context(), svc.MarkInput{
			ScheduleID:      scheduleID,
			ParticipantKind: battm.ParticipantKind(item.ParticipantKind),
			ParticipantID:   participantID,
			Date:            date,
			Status:          battm.AttendanceStatus(item.Status),
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
			"record_id":      record.ClassAttendanceID,
			"inserted":       inserted,
		})
	}

	return helper.JsonOK(c, "Absensi pelajaran tersimpan", fiber.Map{
		"saved":   saved,
		"total":   len(req.Items),
		"results": results,
	})
}

/* =========================
   Recap
   GET /recap?date_from=&date_to=&schedule_id=&class_id=&participant_id=
   ========================= */

func (ctl *ClassAttendanceController) Recap(c *fiber.Ctx) error {
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
	if s := strings.TrimSpace(c.Query("schedule_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "schedule_id tidak valid")
		}
		filter.ScheduleID = &id
	}
	if s := strings.TrimSpace(c.Query("class_id")); s != "" {
		id, perr := uuid.Parse(s)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id tidak valid")
		}
		filter.ClassID = &id
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

	return helper.JsonOK(c, "Rekap absensi pelajaran", fiber.Map{
		"date_from": dateFrom.Format("2006-01-02"),
		"date_to":   dateTo.Format("2006-01-02"),
		"counts":    counts,
	})
}

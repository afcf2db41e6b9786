// file: internals/features/school/timetable/controller/class_schedule_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pesantrenku_backend/internals/constants"
	helper "pesantrenku_backend/internals/helpers"
	helperAuth "pesantrenku_backend/internals/helpers/auth"

	d "pesantrenku_backend/internals/features/school/timetable/dto"
	m "pesantrenku_backend/internals/features/school/timetable/model"
	svc "pesantrenku_backend/internals/features/school/timetable/service"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassScheduleController {
	return &ClassScheduleController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

// errScheduleConflict dipakai sebagai sentinel keluar dari Transaction;
// detail bentroknya dibawa lewat variabel di scope pemanggil.
var errScheduleConflict = errors.New("schedule conflict")

// conflictLockKeys: kunci advisory lock per (resource, hari) milik kandidat.
// Diurutkan supaya dua transaksi yang menyentuh pasangan resource yang sama
// mengambil lock dengan urutan sama (bebas deadlock).
func conflictLockKeys(cand *m.ClassScheduleModel) []string {
	keys := []string{
		fmt.Sprintf("class_schedules:class:%s:%d", cand.ClassScheduleClassID, cand.ClassScheduleDayOfWeek),
		fmt.Sprintf("class_schedules:teacher:%s:%d", cand.ClassScheduleTeacherID, cand.ClassScheduleDayOfWeek),
	}
	sort.Strings(keys)
	return keys
}

// checkConflicts menjalankan detektor terhadap set resource kelas dulu, lalu
// set resource guru. FOR UPDATE pada baris existing tidak cukup saat kedua
// transaksi sama-sama belum punya baris di (resource, hari) itu — keduanya
// men-scan nol baris lalu insert. Advisory lock per (resource, hari) membuat
// transaksi kedua menunggu commit transaksi pertama sebelum men-scan, sehingga
// check-then-write benar-benar terserialisasi.
func checkConflicts(tx *gorm.DB, cand *m.ClassScheduleModel, excludeID *uuid.UUID) (*svc.ConflictInfo, error) {
	for _, key := range conflictLockKeys(cand) {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtextextended(?, 0))", key).Error; err != nil {
			return nil, err
		}
	}

	var classRows []m.ClassScheduleModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("class_schedule_class_id = ? AND class_schedule_day_of_week = ?",
			cand.ClassScheduleClassID, cand.ClassScheduleDayOfWeek).
		Find(&classRows).Error; err != nil {
		return nil, err
	}
	if hit := svc.FindConflict(classRows, cand, excludeID, svc.ResourceRoom); hit != nil {
		return hit, nil
	}

	var teacherRows []m.ClassScheduleModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("class_schedule_teacher_id = ? AND class_schedule_day_of_week = ?",
			cand.ClassScheduleTeacherID, cand.ClassScheduleDayOfWeek).
		Find(&teacherRows).Error; err != nil {
		return nil, err
	}
	if hit := svc.FindConflict(teacherRows, cand, excludeID, svc.ResourceTeacher); hit != nil {
		return hit, nil
	}
	return nil, nil
}

/* =========================
   Create
   ========================= */

func (ctl *ClassScheduleController) Create(c *fiber.Ctx) error {
	// 🔐 staf akademik
	if !helperAuth.HasAnyRole(c, constants.AcademicStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorStaff("jadwal pelajaran"))
	}

	var req d.CreateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[ClassSchedule.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var model m.ClassScheduleModel
	if err := req.ApplyToModel(&model); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var conflict *svc.ConflictInfo
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		hit, er := checkConflicts(tx, &model, nil)
		if er != nil {
			return er
		}
		if hit != nil {
			conflict = hit
			return errScheduleConflict
		}
		return tx.Create(&model).Error
	}); err != nil {
		if errors.Is(err, errScheduleConflict) {
			return helper.JsonErrorWithDetails(c, http.StatusConflict, "Jadwal bentrok", conflict)
		}
		log.Printf("[ClassSchedule.Create] TX error: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Jadwal pelajaran dibuat", d.NewClassScheduleResponse(&model))
}

/* =========================
   Update (full)
   ========================= */

func (ctl *ClassScheduleController) Update(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.AcademicStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorStaff("jadwal pelajaran"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var req d.UpdateClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existing m.ClassScheduleModel
	var conflict *svc.ConflictInfo
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("class_schedule_id = ?", id).
			First(&existing).Error; er != nil {
			return er
		}

		if er := req.ApplyToModel(&existing); er != nil {
			return fiber.NewError(http.StatusBadRequest, er.Error())
		}

		// excludeID = id: entri tidak boleh bentrok dengan dirinya sendiri
		hit, er := checkConflicts(tx, &existing, &id)
		if er != nil {
			return er
		}
		if hit != nil {
			conflict = hit
			return errScheduleConflict
		}
		return tx.Save(&existing).Error
	}); err != nil {
		if errors.Is(err, errScheduleConflict) {
			return helper.JsonErrorWithDetails(c, http.StatusConflict, "Jadwal bentrok", conflict)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "schedule not found")
		}
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ClassSchedule.Update] TX error: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Jadwal pelajaran diperbarui", d.NewClassScheduleResponse(&existing))
}

/* =========================
   Delete — hard delete, tanpa retensi
   ========================= */

func (ctl *ClassScheduleController) Delete(c *fiber.Ctx) error {
	if !helperAuth.HasAnyRole(c, constants.AcademicStaff) {
		return helper.JsonError(c, http.StatusForbidden, constants.RoleErrorStaff("jadwal pelajaran"))
	}

	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	var existing m.ClassScheduleModel
	if err := ctl.DB.
		Where("class_schedule_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "schedule not found")
		}
		return helper.WritePGError(c, err)
	}

	if err := ctl.DB.Delete(&existing).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Jadwal pelajaran dihapus", d.NewClassScheduleResponse(&existing))
}

/* =========================
   List — filter kelas / guru / hari, urut hari lalu jam mulai
   ========================= */

func (ctl *ClassScheduleController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.ClassScheduleModel{})

	if s := strings.TrimSpace(c.Query("class_id")); s != "" {
		classID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "class_id tidak valid")
		}
		q = q.Where("class_schedule_class_id = ?", classID)
	}
	if s := strings.TrimSpace(c.Query("teacher_id")); s != "" {
		teacherID, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, http.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("class_schedule_teacher_id = ?", teacherID)
	}
	if s := strings.TrimSpace(c.Query("day_of_week")); s != "" {
		day, err := strconv.Atoi(s)
		if err != nil || day < 0 || day > 6 {
			return helper.JsonError(c, http.StatusBadRequest, "day_of_week harus 0..6")
		}
		q = q.Where("class_schedule_day_of_week = ?", day)
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassScheduleModel
	if err := q.
		Order("class_schedule_day_of_week ASC, class_schedule_start_time ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	items := make([]d.ClassScheduleResponse, 0, len(rows))
	for i := range rows {
		items = append(items, d.NewClassScheduleResponse(&rows[i]))
	}

	return helper.JsonList(c, "Daftar jadwal pelajaran", items, helper.BuildPagination(total, p, len(items)))
}

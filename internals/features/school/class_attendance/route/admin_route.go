// file: internals/features/school/class_attendance/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "pesantrenku_backend/internals/features/school/class_attendance/controller"
	"pesantrenku_backend/internals/middlewares"
)

// ClassAttendanceRoutes — pencatatan & rekap absensi pelajaran.
func ClassAttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.New(db, validator.New())

	r := api.Group("/class-attendances")
	r.Post("/", middlewares.AttendanceRateLimiter(), ctl.Mark)
	r.Post("/batch", middlewares.AttendanceRateLimiter(), ctl.BatchMark)
	r.Get("/recap", ctl.Recap)
}

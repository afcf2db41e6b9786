// file: internals/features/boarding/attendance/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceCtl "pesantrenku_backend/internals/features/boarding/attendance/controller"
	"pesantrenku_backend/internals/middlewares"
)

// BoardingAttendanceRoutes — endpoint pencatatan & rekap absensi asrama.
// Penulisan dilindungi rate limiter tersendiri karena dipanggil beruntun
// saat pengasuh mengabsen satu asrama penuh.
func BoardingAttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceCtl.New(db, validator.New())

	r := api.Group("/boarding-attendances")
	r.Post("/", middlewares.AttendanceRateLimiter(), ctl.Mark)
	r.Post("/batch", middlewares.AttendanceRateLimiter(), ctl.BatchMark)
	r.Get("/recap", ctl.Recap)
}

// file: internals/route/details/school_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	// ====== School features ======
	ClassAttendanceRoutes "pesantrenku_backend/internals/features/school/class_attendance/route"
	TimetableRoutes "pesantrenku_backend/internals/features/school/timetable/route"
)

/* ===================== ADMIN ===================== */
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	TimetableRoutes.TimetableAdminRoutes(r, db, v)
	ClassAttendanceRoutes.ClassAttendanceRoutes(r, db)
}

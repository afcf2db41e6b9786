// file: internals/route/details/boarding_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	// ====== Boarding features ======
	ActivityRoutes "pesantrenku_backend/internals/features/boarding/activities/route"
	BoardingAttendanceRoutes "pesantrenku_backend/internals/features/boarding/attendance/route"
	DormitoryRoutes "pesantrenku_backend/internals/features/boarding/dormitories/route"
	HolidayRoutes "pesantrenku_backend/internals/features/boarding/holidays/route"
	AgendaRoutes "pesantrenku_backend/internals/features/boarding/occurrences/route"
)

/* ===================== PUBLIC ===================== */
// Kalender harian boleh dibaca tanpa login (dipakai widget landing page).
func BoardingPublicRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	HolidayRoutes.CalendarPublicRoutes(r, db, v)
}

/* ===================== PRIVATE (USER) ===================== */
// Agenda per asrama & rekap: butuh login, tidak butuh role khusus.
func BoardingUserRoutes(r fiber.Router, db *gorm.DB) {
	AgendaRoutes.AgendaRoutes(r, db)
}

/* ===================== ADMIN ===================== */
func BoardingAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	ActivityRoutes.ActivityAdminRoutes(r, db, v)
	DormitoryRoutes.DormitoryAdminRoutes(r, db, v)
	HolidayRoutes.HolidayAdminRoutes(r, db, v)
	BoardingAttendanceRoutes.BoardingAttendanceRoutes(r, db)
}

// file: internals/features/school/timetable/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schedctl "pesantrenku_backend/internals/features/school/timetable/controller"
)

// TimetableAdminRoutes mendaftarkan route jadwal pelajaran (CRUD penuh).
func TimetableAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := schedctl.New(db, v)

	grp := admin.Group("/class-schedules")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

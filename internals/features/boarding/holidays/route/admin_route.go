// file: internals/features/boarding/holidays/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holctl "pesantrenku_backend/internals/features/boarding/holidays/controller"
)

// HolidayAdminRoutes mendaftarkan route kalender libur (CRUD).
func HolidayAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := holctl.New(db, v)

	grp := admin.Group("/boarding-holidays")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

// CalendarPublicRoutes: lookup kalender boleh diakses tanpa role khusus.
func CalendarPublicRoutes(public fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := holctl.New(db, v)
	public.Get("/calendar", ctl.CalendarLookup)
}

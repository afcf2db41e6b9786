// file: internals/features/boarding/activities/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	actctl "pesantrenku_backend/internals/features/boarding/activities/controller"
)

// ActivityAdminRoutes mendaftarkan route template kegiatan asrama.
// Tidak ada route DELETE: template hanya bisa dinonaktifkan.
func ActivityAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := actctl.New(db, v)

	grp := admin.Group("/activity-templates")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Post("/:id/deactivate", ctl.Deactivate)
}

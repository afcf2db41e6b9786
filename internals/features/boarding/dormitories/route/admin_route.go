// file: internals/features/boarding/dormitories/route/admin_route.go
package routes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dormctl "pesantrenku_backend/internals/features/boarding/dormitories/controller"
)

// DormitoryAdminRoutes mendaftarkan route asrama (CRUD).
func DormitoryAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := dormctl.New(db, v)

	grp := admin.Group("/boarding-dormitories")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

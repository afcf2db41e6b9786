// file: internals/features/boarding/occurrences/route/user_route.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	agendactl "pesantrenku_backend/internals/features/boarding/occurrences/controller"
)

// AgendaRoutes: resolver occurrence dipakai untuk render agenda
// dan mengisi form absensi.
func AgendaRoutes(private fiber.Router, db *gorm.DB) {
	ctl := agendactl.New(db)

	grp := private.Group("/boarding-agenda")
	grp.Get("/", ctl.ForAllDormitories)
	grp.Get("/:dormitory_id", ctl.ForDormitory)
}

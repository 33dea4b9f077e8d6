// file: internals/features/home/brochures/route/brochure_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/constants"
	brochureController "templeku_backend/internals/features/home/brochures/controller"
	middleware "templeku_backend/internals/middlewares/auth"
)

func BrochureUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := brochureController.NewBrochureController(db)

	grp := r.Group("/brochures")
	grp.Get("/", ctrl.List)
}

func BrochureAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := brochureController.NewBrochureController(db)

	grp := r.Group("/brochures",
		middleware.RequireRoles(constants.StaffAndAbove...),
	)
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}

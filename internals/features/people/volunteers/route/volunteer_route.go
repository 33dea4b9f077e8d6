// file: internals/features/people/volunteers/route/volunteer_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/constants"
	volunteerController "templeku_backend/internals/features/people/volunteers/controller"
	middleware "templeku_backend/internals/middlewares/auth"
)

func VolunteerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := volunteerController.NewVolunteerController(db)

	grp := r.Group("/volunteers",
		middleware.RequireRoles(constants.StaffAndAbove...),
	)
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}

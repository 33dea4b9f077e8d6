// file: internals/features/home/announcements/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/constants"
	annController "templeku_backend/internals/features/home/announcements/controller"
	middleware "templeku_backend/internals/middlewares/auth"
)

func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementController(db)

	grp := r.Group("/announcements")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
}

func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementController(db)

	grp := r.Group("/announcements",
		middleware.RequireRoles(constants.StaffAndAbove...),
	)
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}

// file: internals/features/home/message_templates/route/message_template_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/constants"
	tmplController "templeku_backend/internals/features/home/message_templates/controller"
	middleware "templeku_backend/internals/middlewares/auth"
)

func MessageTemplateAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := tmplController.NewMessageTemplateController(db)

	grp := r.Group("/message-templates",
		middleware.RequireRoles(constants.StaffAndAbove...),
	)
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Post("/:id/preview", ctrl.Preview)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}

// file: internals/features/home/broadcasts/route/broadcast_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/constants"
	broadcastController "templeku_backend/internals/features/home/broadcasts/controller"
	outboxService "templeku_backend/internals/features/notifications/outbox/service"
	"templeku_backend/internals/middlewares"
	middleware "templeku_backend/internals/middlewares/auth"
)

func BroadcastAdminRoutes(r fiber.Router, db *gorm.DB, outbox *outboxService.Outbox) {
	ctrl := broadcastController.NewBroadcastController(db, outbox)

	grp := r.Group("/broadcasts",
		middleware.RequireRoles(constants.AdminAndAbove...),
	)
	grp.Post("/", middlewares.BroadcastRateLimiter(), ctrl.Create)
	grp.Get("/", ctrl.List)
}

// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/configs"
	"templeku_backend/internals/route/details"

	outboxService "templeku_backend/internals/features/notifications/outbox/service"
	middleware "templeku_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three API surfaces:
//
//	/api/public : no token, read-only public content
//	/api/u      : logged-in members
//	/api/a      : temple staff and admins
func SetupRoutes(app *fiber.App, db *gorm.DB, outbox *outboxService.Outbox) {
	jwt := middleware.AuthJWT(middleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	public := app.Group("/api/public")
	details.PublicRoutes(public, db)

	user := app.Group("/api/u", jwt)
	details.UserRoutes(user, db, outbox)

	admin := app.Group("/api/a", jwt)
	details.AdminRoutes(admin, db, outbox)
}

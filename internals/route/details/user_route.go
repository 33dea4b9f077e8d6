// file: internals/route/details/user_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annRoute "templeku_backend/internals/features/home/announcements/route"
	brochureRoute "templeku_backend/internals/features/home/brochures/route"
	outboxService "templeku_backend/internals/features/notifications/outbox/service"
	scheduleRoute "templeku_backend/internals/features/rituals/schedule/route"
	seriesRoute "templeku_backend/internals/features/rituals/series/route"
)

// UserRoutes is the logged-in member surface: schedule browsing plus the
// public content, scoped by the temple in the token.
func UserRoutes(r fiber.Router, db *gorm.DB, outbox *outboxService.Outbox) {
	scheduleRoute.ScheduleUserRoutes(r, db, outbox)
	seriesRoute.RitualSeriesUserRoutes(r, db)
	annRoute.AnnouncementUserRoutes(r, db)
	brochureRoute.BrochureUserRoutes(r, db)
}

// file: internals/route/details/admin_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annRoute "templeku_backend/internals/features/home/announcements/route"
	broadcastRoute "templeku_backend/internals/features/home/broadcasts/route"
	brochureRoute "templeku_backend/internals/features/home/brochures/route"
	tmplRoute "templeku_backend/internals/features/home/message_templates/route"
	outboxService "templeku_backend/internals/features/notifications/outbox/service"
	volunteerRoute "templeku_backend/internals/features/people/volunteers/route"
	scheduleRoute "templeku_backend/internals/features/rituals/schedule/route"
	seriesRoute "templeku_backend/internals/features/rituals/series/route"
)

// AdminRoutes is the staff surface. Role checks live in the feature route
// files so each feature declares its own floor.
func AdminRoutes(r fiber.Router, db *gorm.DB, outbox *outboxService.Outbox) {
	seriesRoute.RitualSeriesAdminRoutes(r, db)
	scheduleRoute.ScheduleAdminRoutes(r, db, outbox)

	annRoute.AnnouncementAdminRoutes(r, db)
	brochureRoute.BrochureAdminRoutes(r, db)
	tmplRoute.MessageTemplateAdminRoutes(r, db)
	broadcastRoute.BroadcastAdminRoutes(r, db, outbox)

	volunteerRoute.VolunteerAdminRoutes(r, db)
}

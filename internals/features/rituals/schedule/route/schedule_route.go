// file: internals/features/rituals/schedule/route/schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/constants"
	"templeku_backend/internals/features/notifications/outbox/service"
	scheduleController "templeku_backend/internals/features/rituals/schedule/controller"
	scheduleService "templeku_backend/internals/features/rituals/schedule/service"
	middleware "templeku_backend/internals/middlewares/auth"
)

// ScheduleUserRoutes exposes the read-only schedule view for logged-in
// members (calendar, day and list views share one endpoint).
func ScheduleUserRoutes(r fiber.Router, db *gorm.DB, outbox *service.Outbox) {
	ctrl := scheduleController.NewScheduleController(scheduleService.NewScheduleService(db, outbox))

	grp := r.Group("/schedule")
	grp.Get("/", ctrl.Query)
}

// ScheduleAdminRoutes exposes exception and status management to staff.
func ScheduleAdminRoutes(r fiber.Router, db *gorm.DB, outbox *service.Outbox) {
	ctrl := scheduleController.NewScheduleController(scheduleService.NewScheduleService(db, outbox))

	grp := r.Group("/schedule",
		middleware.RequireRoles(constants.StaffAndAbove...),
	)
	grp.Get("/", ctrl.Query)
	grp.Post("/exceptions", ctrl.CreateException)
	grp.Get("/exceptions", ctrl.ListExceptions)
	grp.Delete("/exceptions/:series_id/:date", ctrl.DeleteException)
	grp.Post("/status", ctrl.UpdateStatus)
	grp.Get("/status-history", ctrl.StatusHistory)
}

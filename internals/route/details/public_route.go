// file: internals/route/details/public_route.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "templeku_backend/internals/features/home/announcements/controller"
	brochureController "templeku_backend/internals/features/home/brochures/controller"
)

// PublicRoutes is the unauthenticated surface. Handlers here still scope by
// temple, read from the X-Temple-ID header hydrated in locals by the
// identity helper.
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	ann := annController.NewAnnouncementController(db)
	r.Get("/announcements", ann.List)
	r.Get("/announcements/:id", ann.GetByID)

	brochure := brochureController.NewBrochureController(db)
	r.Get("/brochures", brochure.List)
}

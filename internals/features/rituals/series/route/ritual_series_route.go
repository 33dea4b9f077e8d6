// file: internals/features/rituals/series/route/ritual_series_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"templeku_backend/internals/constants"
	seriesController "templeku_backend/internals/features/rituals/series/controller"
	middleware "templeku_backend/internals/middlewares/auth"
)

// RitualSeriesUserRoutes lets members browse the series catalogue.
func RitualSeriesUserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := seriesController.NewRitualSeriesController(db)

	grp := r.Group("/ritual-series")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
}

// RitualSeriesAdminRoutes covers the full series lifecycle.
func RitualSeriesAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := seriesController.NewRitualSeriesController(db)

	grp := r.Group("/ritual-series",
		middleware.RequireRoles(constants.AdminAndAbove...),
	)
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
	grp.Put("/:id", ctrl.Update)
	grp.Post("/:id/retire", ctrl.Retire)
	grp.Delete("/:id", ctrl.Delete)
}

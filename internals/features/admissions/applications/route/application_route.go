// file: internals/features/admissions/applications/route/application_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	applicationCtl "kampusku_backend/internals/features/admissions/applications/controller"
)

// ApplicationUserRoutes — pendaftaran & pelacakan milik student sendiri
func ApplicationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := applicationCtl.NewApplicationController(db)

	r.Post("/applications", ctl.Create)
	r.Get("/applications", ctl.ListMine)
	r.Get("/applications/track/:code", ctl.Track)
	r.Get("/applications/:id", ctl.GetByID)
	r.Get("/applications/:id/tracking", ctl.ListTracking)
}

// ApplicationAdminRoutes — review & monitoring, khusus staff reviewer
func ApplicationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := applicationCtl.NewAdminApplicationController(db)

	r.Get("/applications", ctl.List)
	r.Get("/applications/stats", ctl.Stats)
	r.Post("/applications/:id/review", ctl.Review)
}

// file: internals/features/admissions/profiles/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileCtl "kampusku_backend/internals/features/admissions/profiles/controller"
)

// ProfileUserRoutes — semua endpoint profil milik user login
func ProfileUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := profileCtl.NewProfileController(db)

	profile := r.Group("/profile")
	profile.Get("/", ctl.GetMine)
	profile.Put("/personal", ctl.UpsertPersonal)
	profile.Put("/contact", ctl.UpsertContact)
	profile.Post("/education", ctl.AddEducationalRecord)
	profile.Delete("/education/:id", ctl.DeleteEducationalRecord)
	profile.Put("/medical", ctl.UpsertMedical)
}

// file: internals/features/admissions/programs/route/program_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	programCtl "kampusku_backend/internals/features/admissions/programs/controller"
)

// ProgramUserRoutes — read-only untuk user login (student & staff)
func ProgramUserRoutes(r fiber.Router, db *gorm.DB) {
	lookup := programCtl.NewLookupController(db)
	ctl := programCtl.NewProgramController(db)

	r.Get("/degrees", lookup.ListDegrees)
	r.Get("/institutes", lookup.ListInstitutes)
	r.Get("/sessions", ctl.ListSessions)
	r.Get("/programs", ctl.ListPrograms)
	r.Get("/offerings", ctl.ListOfferings)
}

// ProgramAdminRoutes — mutasi data referensi, khusus staff
func ProgramAdminRoutes(r fiber.Router, db *gorm.DB) {
	lookup := programCtl.NewLookupController(db)
	ctl := programCtl.NewProgramController(db)

	r.Post("/degrees", lookup.CreateDegree)
	r.Post("/institutes", lookup.CreateInstitute)
	r.Post("/sessions", ctl.CreateSession)
	r.Post("/programs", ctl.CreateProgram)
	r.Post("/offerings", ctl.CreateOffering)
}

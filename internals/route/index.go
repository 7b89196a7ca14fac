// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kampusku_backend/internals/constants"
	applicationRoute "kampusku_backend/internals/features/admissions/applications/route"
	paymentRoute "kampusku_backend/internals/features/admissions/payments/route"
	profileRoute "kampusku_backend/internals/features/admissions/profiles/route"
	programRoute "kampusku_backend/internals/features/admissions/programs/route"
	authRoute "kampusku_backend/internals/features/users/auth/route"
	authMiddleware "kampusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	public := app.Group("/api/auth")
	authRoute.AuthPublicRoutes(public, db)

	// Webhook gateway: publik, diverifikasi via signature
	log.Println("[INFO] Setting up Payment webhook...")
	paymentRoute.PaymentWebhookRoutes(app, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	authRoute.AuthPrivateRoutes(private, db)
	profileRoute.ProfileUserRoutes(private, db)
	programRoute.ProgramUserRoutes(private, db)
	applicationRoute.ApplicationUserRoutes(private, db)
	paymentRoute.PaymentUserRoutes(private, db)

	// ===================== ADMIN (STAFF) =====================
	// Satu prefix /api/a, role check per concern
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")

	reviewer := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorReviewer("review aplikasi"), constants.ReviewerRoles...),
	)
	applicationRoute.ApplicationAdminRoutes(reviewer, db)

	accountant := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAccountant("verifikasi pembayaran"), constants.AccountantRoles...),
	)
	paymentRoute.PaymentAdminRoutes(accountant, db)

	dataEntry := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorDataEntry("data referensi"), constants.DataEntryRoles...),
	)
	programRoute.ProgramAdminRoutes(dataEntry, db)
}

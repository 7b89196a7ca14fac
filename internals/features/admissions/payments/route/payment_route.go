// file: internals/features/admissions/payments/route/payment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtl "kampusku_backend/internals/features/admissions/payments/controller"
)

// PaymentUserRoutes — pembayaran milik student sendiri
func PaymentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewPaymentController(db)

	r.Post("/payments", ctl.Create)
	r.Post("/payments/:id/checkout", ctl.Checkout)
	r.Get("/payment-methods", ctl.ListMethods)
	r.Get("/applications/:id/payments", ctl.ListByApplication)
}

// PaymentAdminRoutes — verifikasi, khusus accountant (+ admin)
func PaymentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewAdminPaymentController(db)

	r.Get("/payments", ctl.List)
	r.Post("/payments/:id/verify", ctl.Verify)
	r.Post("/payments/:id/reject", ctl.Reject)
	r.Post("/payment-methods", ctl.CreateMethod)
}

// PaymentWebhookRoutes — endpoint publik untuk notifikasi gateway.
// Path-nya masuk daftar skip di auth middleware.
func PaymentWebhookRoutes(app fiber.Router, db *gorm.DB) {
	ctl := paymentCtl.NewWebhookController(db)
	app.Post("/api/payments/notification", ctl.HandleNotification)
}

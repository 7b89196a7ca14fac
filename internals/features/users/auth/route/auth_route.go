// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtl "kampusku_backend/internals/features/users/auth/controller"
	"kampusku_backend/internals/middlewares"
)

// AuthPublicRoutes: register & login (tanpa JWT)
func AuthPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AuthPrivateRoutes: butuh JWT valid
func AuthPrivateRoutes(r fiber.Router, db *gorm.DB) {
	ctl := authCtl.NewAuthController(db)

	auth := r.Group("/auth")
	auth.Post("/logout", ctl.Logout)
	auth.Get("/me", ctl.Me)
}

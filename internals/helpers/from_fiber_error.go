package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError — error handler level app: error yang lolos sampai Fiber
// (mis. fiber.NewError dari webhook, 404 route, method not allowed) dibungkus
// ke envelope JSON yang sama dengan response lain.
// Jika bukan *fiber.Error, fallback ke 500 dengan pesan asli.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}

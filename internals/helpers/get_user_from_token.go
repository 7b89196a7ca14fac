// file: internals/helpers/get_user_from_token.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kampusku_backend/internals/constants"
)

// GetUserIDFromToken mengambil user_id dari Locals (diset AuthMiddleware)
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak ada di token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id tidak valid")
	}
	return id, nil
}

// GetUserRoleFromToken mengambil role dari Locals (diset AuthMiddleware)
func GetUserRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - role tidak ada di token")
	}
	return role, nil
}

// IsStaff cek apakah requester memegang role staff (bukan student)
func IsStaff(c *fiber.Ctx) bool {
	role, ok := c.Locals("userRole").(string)
	return ok && constants.IsStaffRole(role)
}

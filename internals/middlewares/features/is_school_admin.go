package middleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "escolaviva_backend/internals/helpers/auth"
)

// IsSchoolAdmin: exige papel de staff (admin/teacher) na escola ativa do token.
func IsSchoolAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		schoolID, err := helperAuth.GetSchoolIDFromToken(c)
		if err != nil {
			return err
		}
		if !helperAuth.IsSchoolAdmin(c, schoolID) {
			return fiber.NewError(fiber.StatusForbidden, "Acesso negado")
		}
		return c.Next()
	}
}

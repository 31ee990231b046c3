package middlewares

import (
	"os"

	"bookie/helpers"

	"github.com/gofiber/fiber/v2"
)

// ProviderAuth guards provider callback endpoints (exposure push). The
// provider sends its company key in the body, matching the key it was
// issued.
func ProviderAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			CompanyKey string `json:"company_key"`
		}

		if err := c.BodyParser(&body); err != nil {
			return helpers.JSONError(c, "INVALID_JSON")
		}

		if body.CompanyKey != os.Getenv("PROVIDER_COMPANY_KEY") {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "COMPANY_KEY_ERROR")
		}

		return c.Next()
	}
}

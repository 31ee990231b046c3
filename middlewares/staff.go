package middlewares

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"

	"bookie/helpers"

	"github.com/gofiber/fiber/v2"
)

// StaffAuth guards the staff-only surface (funding decisions, settlement
// instructions, exposure limits). Requests carry an HMAC of the staff key
// computed with the staff secret.
func StaffAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("X-Staff-Signature")
		if signature == "" {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "STAFF_SIGNATURE_REQUIRED")
		}

		staffKey := os.Getenv("STAFF_API_KEY")
		staffSecret := os.Getenv("STAFF_API_SECRET")

		h := hmac.New(sha256.New, []byte(staffSecret))
		h.Write([]byte(staffKey + staffSecret))
		expected := hex.EncodeToString(h.Sum(nil))

		if !hmac.Equal([]byte(signature), []byte(expected)) {
			return helpers.JSONErrorStatus(c, fiber.StatusUnauthorized, "INVALID_SIGNATURE")
		}

		return c.Next()
	}
}

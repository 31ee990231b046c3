package helpers

import "github.com/gofiber/fiber/v2"

func envelope(success bool, message string, data any) fiber.Map {
	return fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	}
}

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(envelope(true, message, data))
}

// JSONError is the 400 shorthand for request-shape failures caught in a
// controller. Engine errors go through BusinessError instead, which picks
// the status itself.
func JSONError(c *fiber.Ctx, message string) error {
	return JSONErrorStatus(c, fiber.StatusBadRequest, message)
}

func JSONErrorStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(envelope(false, message, nil))
}

package helpers

import (
	"errors"
	"fmt"

	"bookie/services/betting"
	"bookie/services/funding"
	"bookie/services/ledger"

	"github.com/gofiber/fiber/v2"
)

// BusinessError maps engine errors to the platform's error-code envelope.
// Business-rule rejections get a specific message and code; anything else
// is a generic retryable failure with no partial effect implied.
func BusinessError(c *fiber.Ctx, err error) error {
	code, status, msg := classify(err)
	body := envelope(false, msg, nil)
	body["error_code"] = code
	return c.Status(status).JSON(body)
}

func classify(err error) (code int, status int, msg string) {
	switch {
	case errors.Is(err, betting.ErrInvalidStake):
		return 101, fiber.StatusBadRequest,
			fmt.Sprintf("stake must be between %d and %d", betting.MinStake, betting.MaxStake)
	case errors.Is(err, betting.ErrInvalidPrice):
		return 102, fiber.StatusBadRequest, "price must be greater than 1"
	case errors.Is(err, betting.ErrInvalidBetType):
		return 103, fiber.StatusBadRequest, "bet type must be back or lay"
	case errors.Is(err, betting.ErrExposureExceeded):
		return 201, fiber.StatusUnprocessableEntity, "exposure limit exceeded"
	case errors.Is(err, betting.ErrInsufficientFunds),
		errors.Is(err, funding.ErrInsufficientFunds):
		return 202, fiber.StatusUnprocessableEntity, "insufficient funds"
	case errors.Is(err, betting.ErrAlreadySettled):
		return 301, fiber.StatusConflict, "bet already settled"
	case errors.Is(err, funding.ErrAlreadyDecided):
		return 302, fiber.StatusConflict, "request already decided"
	case errors.Is(err, ledger.ErrAccountNotFound):
		return 401, fiber.StatusNotFound, "account not found"
	case errors.Is(err, ledger.ErrAccountBanned):
		return 402, fiber.StatusForbidden, "account banned or inactive"
	case errors.Is(err, funding.ErrRequestNotFound):
		return 403, fiber.StatusNotFound, "funding request not found"
	case errors.Is(err, funding.ErrOfferNotFound):
		return 404, fiber.StatusNotFound, "offer not found"
	case errors.Is(err, funding.ErrInvalidAmount):
		return 104, fiber.StatusBadRequest, "amount must be positive"
	case errors.Is(err, ledger.ErrConcurrencyConflict):
		return 501, fiber.StatusServiceUnavailable, "account busy, try again"
	default:
		return 500, fiber.StatusInternalServerError, "something went wrong, try again"
	}
}

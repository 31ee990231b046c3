package account

import (
	"errors"
	"strings"

	"bookie/database"
	"bookie/helpers"
	"bookie/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	AccountCode string `json:"account_code"`
	Currency    string `json:"currency"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.AccountCode == "" {
		return helpers.JSONError(c, "ACCOUNT_CODE_REQUIRED")
	}
	if req.Currency == "" {
		req.Currency = "INR"
	}

	acc := models.Account{
		AccountCode:   req.AccountCode,
		Currency:      req.Currency,
		ExposureLimit: models.DefaultExposureLimit,
		IsActive:      true,
	}

	// The unique index on account_code is the duplicate guard; a
	// pre-read would just race against concurrent registrations.
	if err := database.DB.Create(&acc).Error; err != nil {
		if isDuplicateErr(err) {
			return helpers.JSONError(c, "ACCOUNT_ALREADY_EXISTS")
		}
		return helpers.JSONError(c, "FAILED_TO_CREATE_ACCOUNT")
	}

	return helpers.JSONSuccess(c, "Account created", fiber.Map{
		"account_code":   acc.AccountCode,
		"currency":       acc.Currency,
		"exposure_limit": acc.ExposureLimit,
	})
}

// isDuplicateErr matches gorm's translated duplicate-key error and the
// raw postgres unique_violation SQLSTATE.
func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "23505")
}

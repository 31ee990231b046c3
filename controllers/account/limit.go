package account

import (
	"bookie/database"
	"bookie/helpers"
	"bookie/models"
	"bookie/services/ledger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SetLimitRequest struct {
	ExposureLimit int64 `json:"exposure_limit"`
}

// SetExposureLimit is staff tooling: the limit is a non-positive bound on
// worst-case liability.
func SetExposureLimit(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return helpers.JSONError(c, "ACCOUNT_CODE_REQUIRED")
	}

	var req SetLimitRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.ExposureLimit > 0 {
		return helpers.JSONError(c, "EXPOSURE_LIMIT_MUST_BE_NON_POSITIVE")
	}

	err := ledger.WithAccount(database.DB, code, func(tx *gorm.DB, acc *models.Account) error {
		return tx.Model(acc).Update("exposure_limit", req.ExposureLimit).Error
	})
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	return helpers.JSONSuccess(c, "Exposure limit updated", fiber.Map{
		"account_code":   code,
		"exposure_limit": req.ExposureLimit,
	})
}

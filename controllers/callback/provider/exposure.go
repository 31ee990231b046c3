package provider

import (
	"time"

	"bookie/database"
	"bookie/helpers"
	"bookie/services/ledger"

	"github.com/gofiber/fiber/v2"
)

type ExposurePushRequest struct {
	CompanyKey  string `json:"company_key"`
	AccountCode string `json:"account_code"`
	Exposure    int64  `json:"exposure"`
	ReportedAt  string `json:"reported_at"`
}

// ExposurePush is the casino-provider override signal: it sets the
// account's exposure directly, bypassing bet placement, but still runs
// under the per-account lock like every other mutation.
func ExposurePush(c *fiber.Ctx) error {
	var req ExposurePushRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.AccountCode == "" {
		return helpers.JSONError(c, "ACCOUNT_CODE_REQUIRED")
	}
	if req.Exposure > 0 {
		return helpers.JSONError(c, "EXPOSURE_MUST_BE_NON_POSITIVE")
	}

	reportedAt := time.Now()
	if req.ReportedAt != "" {
		if t, err := time.Parse(time.RFC3339, req.ReportedAt); err == nil {
			reportedAt = t
		}
	}

	acc, err := ledger.OverrideExposure(database.DB, req.AccountCode, req.Exposure, reportedAt)
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	return helpers.JSONSuccess(c, "Exposure updated", fiber.Map{
		"account_code":  acc.AccountCode,
		"exposure":      acc.Exposure,
		"exposure_time": acc.ExposureTime,
	})
}

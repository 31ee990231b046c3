package account

import (
	"bookie/cache"
	"bookie/database"
	"bookie/helpers"
	"bookie/models"

	"github.com/gofiber/fiber/v2"
)

// Snapshot is the read-only account view consumed by UI and reports. It
// is eventually consistent: served from the redis cache when present,
// from the database otherwise.
func Snapshot(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return helpers.JSONError(c, "ACCOUNT_CODE_REQUIRED")
	}

	if snap := cache.GetSnapshot(c.Context(), code); snap != nil {
		return helpers.JSONSuccess(c, "Snapshot retrieved", snap)
	}

	var acc models.Account
	if err := database.DB.Where("account_code = ?", code).First(&acc).Error; err != nil {
		return helpers.JSONError(c, "ACCOUNT_NOT_FOUND")
	}

	snap := cache.AccountSnapshot{
		AccountCode:      acc.AccountCode,
		SpendableBalance: acc.SpendableBalance,
		BonusBalance:     acc.BonusBalance,
		Exposure:         acc.Exposure,
		WageringProgress: acc.WageringProgress,
	}
	cache.RefreshSnapshot(c.Context(), &acc)

	return helpers.JSONSuccess(c, "Snapshot retrieved", snap)
}

// Transactions lists an account's audit trail, newest first.
func Transactions(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return helpers.JSONError(c, "ACCOUNT_CODE_REQUIRED")
	}

	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	var trxs []models.Transaction
	if err := database.DB.
		Where("account_code = ?", code).
		Order("id DESC").
		Limit(limit).
		Find(&trxs).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_TRANSACTIONS")
	}

	return helpers.JSONSuccess(c, "Transactions retrieved", trxs)
}

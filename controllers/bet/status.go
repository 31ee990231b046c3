package bet

import (
	"bookie/database"
	"bookie/helpers"
	"bookie/models"

	"github.com/gofiber/fiber/v2"
)

func Status(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_BET_ID")
	}

	var b models.Bet
	if err := database.DB.First(&b, id).Error; err != nil {
		return helpers.JSONError(c, "BET_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Bet retrieved", fiber.Map{
		"bet_id":         b.ID,
		"account_code":   b.AccountCode,
		"category":       b.Category,
		"bet_type":       b.BetType,
		"status":         b.Status,
		"market_ref":     b.MarketRef,
		"selection_ref":  b.SelectionRef,
		"stake":          b.Stake,
		"price":          b.Price,
		"liability":      b.Liability,
		"pnl":            b.Pnl,
		"balance_before": b.BalanceBefore,
		"balance_after":  b.BalanceAfter,
		"bonus_used":     b.BonusUsed,
	})
}

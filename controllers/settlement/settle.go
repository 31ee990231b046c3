package settlement

import (
	"bookie/database"
	"bookie/helpers"
	"bookie/services/betting"
	"bookie/services/settlement"

	"github.com/gofiber/fiber/v2"
)

type SettleRequest struct {
	MarketRef        string `json:"market_ref"`
	WinningSelection string `json:"winning_selection"`
	Voided           bool   `json:"voided"`
}

// Settle applies a market outcome to every open bet on the market. Safe
// to re-run: already-settled bets are reported as skipped.
func Settle(c *fiber.Ctx) error {
	var req SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.MarketRef == "" {
		return helpers.JSONError(c, "MARKET_REF_REQUIRED")
	}
	if !req.Voided && req.WinningSelection == "" {
		return helpers.JSONError(c, "WINNING_SELECTION_OR_VOID_REQUIRED")
	}

	report, err := settlement.SettleMarket(database.DB, req.MarketRef, betting.Outcome{
		WinningSelection: req.WinningSelection,
		Voided:           req.Voided,
	})
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	return helpers.JSONSuccess(c, "Market settled", report)
}

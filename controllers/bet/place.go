package bet

import (
	"bookie/database"
	"bookie/helpers"
	"bookie/models"
	"bookie/services/betting"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type PlaceRequest struct {
	AccountCode  string          `json:"account_code"`
	Category     string          `json:"category"`
	BetType      string          `json:"bet_type"`
	Stake        int64           `json:"stake"`
	Price        decimal.Decimal `json:"price"`
	MarketRef    string          `json:"market_ref"`
	SelectionRef string          `json:"selection_ref"`
}

func Place(c *fiber.Ctx) error {
	var req PlaceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.AccountCode == "" || req.MarketRef == "" || req.SelectionRef == "" {
		return helpers.JSONError(c, "ACCOUNT_MARKET_AND_SELECTION_REQUIRED")
	}

	b, acc, err := betting.Place(database.DB, betting.PlaceInput{
		AccountCode:  req.AccountCode,
		Category:     models.BetCategory(req.Category),
		BetType:      models.BetType(req.BetType),
		Stake:        req.Stake,
		Price:        req.Price,
		MarketRef:    req.MarketRef,
		SelectionRef: req.SelectionRef,
	})
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	return helpers.JSONSuccess(c, "Bet placed", fiber.Map{
		"bet_id":        b.ID,
		"status":        b.Status,
		"liability":     b.Liability,
		"balance_after": acc.SpendableBalance,
	})
}

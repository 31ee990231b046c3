package funding

import (
	"bookie/database"
	"bookie/helpers"
	"bookie/services/funding"

	"github.com/gofiber/fiber/v2"
)

type DepositRequestBody struct {
	AccountCode string `json:"account_code"`
	Amount      int64  `json:"amount"`
	OfferID     *uint  `json:"offer_id,omitempty"`
	Remark      string `json:"remark"`
}

func RequestDeposit(c *fiber.Ctx) error {
	var req DepositRequestBody
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.AccountCode == "" {
		return helpers.JSONError(c, "ACCOUNT_CODE_REQUIRED")
	}

	dr, err := funding.RequestDeposit(database.DB, req.AccountCode, req.Amount, req.OfferID, req.Remark)
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	return helpers.JSONSuccess(c, "Deposit requested", fiber.Map{
		"request_id": dr.ID,
		"status":     dr.Status,
		"amount":     dr.Amount,
	})
}

type WithdrawalRequestBody struct {
	AccountCode string `json:"account_code"`
	Amount      int64  `json:"amount"`
	Remark      string `json:"remark"`
}

func RequestWithdrawal(c *fiber.Ctx) error {
	var req WithdrawalRequestBody
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.AccountCode == "" {
		return helpers.JSONError(c, "ACCOUNT_CODE_REQUIRED")
	}

	wr, err := funding.RequestWithdrawal(database.DB, req.AccountCode, req.Amount, req.Remark)
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	return helpers.JSONSuccess(c, "Withdrawal requested", fiber.Map{
		"request_id": wr.ID,
		"status":     wr.Status,
		"amount":     wr.Amount,
	})
}

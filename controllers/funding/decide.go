package funding

import (
	"bookie/database"
	"bookie/helpers"
	"bookie/services/funding"

	"github.com/gofiber/fiber/v2"
)

type DecisionBody struct {
	Decision string `json:"decision"` // approve | reject
	Remark   string `json:"remark"`
}

func (d *DecisionBody) approve() (bool, bool) {
	switch d.Decision {
	case "approve":
		return true, true
	case "reject":
		return false, true
	}
	return false, false
}

// DecideDeposit is the staff decision endpoint. Approval credits the
// ledger exactly once; rejection is a pure status transition.
func DecideDeposit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_REQUEST_ID")
	}

	var body DecisionBody
	if err := c.BodyParser(&body); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	approve, ok := body.approve()
	if !ok {
		return helpers.JSONError(c, "DECISION_MUST_BE_APPROVE_OR_REJECT")
	}

	req, acc, err := funding.DecideDeposit(database.DB, uint(id), approve, body.Remark)
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	data := fiber.Map{
		"request_id":    req.ID,
		"status":        req.Status,
		"bonus_granted": req.BonusGranted,
	}
	if acc != nil {
		data["spendable_balance"] = acc.SpendableBalance
		data["bonus_balance"] = acc.BonusBalance
	}
	return helpers.JSONSuccess(c, "Deposit decision applied", data)
}

func DecideWithdrawal(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_REQUEST_ID")
	}

	var body DecisionBody
	if err := c.BodyParser(&body); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	approve, ok := body.approve()
	if !ok {
		return helpers.JSONError(c, "DECISION_MUST_BE_APPROVE_OR_REJECT")
	}

	req, acc, err := funding.DecideWithdrawal(database.DB, uint(id), approve, body.Remark)
	if err != nil {
		return helpers.BusinessError(c, err)
	}

	data := fiber.Map{
		"request_id": req.ID,
		"status":     req.Status,
	}
	if acc != nil {
		data["spendable_balance"] = acc.SpendableBalance
	}
	return helpers.JSONSuccess(c, "Withdrawal decision applied", data)
}

package betting

import (
	"encoding/json"
	"fmt"
	"time"

	"bookie/models"
	"bookie/services/ledger"

	"gorm.io/gorm"
)

// SettleAmounts describes the ledger effect of moving an OPEN bet to a
// terminal state. Liability is always released from exposure; what comes
// back to the balances depends on the result.
type SettleAmounts struct {
	CreditSpendable int64
	CreditBonus     int64
	Exposure        int64
	Pnl             int64
}

// ComputeSettle derives the settlement amounts for a bet.
//
//	VOID: the locked liability is returned to where it was drawn from.
//	LOST: the loss is realized; the already-debited liability stays gone.
//	WON:  the liability comes back plus the winnings, winnings always to
//	      the spendable balance, the bonus-funded portion back to bonus.
func ComputeSettle(bet *models.Bet, result models.BetStatus) SettleAmounts {
	released := bet.Liability
	fromSpendable := released - bet.BonusUsed

	switch result {
	case models.BetVoid:
		return SettleAmounts{
			CreditSpendable: fromSpendable,
			CreditBonus:     bet.BonusUsed,
			Exposure:        released,
			Pnl:             0,
		}
	case models.BetLost:
		return SettleAmounts{
			Exposure: released,
			Pnl:      -released,
		}
	case models.BetWon:
		payout := Payout(bet.Category, bet.BetType, bet.Stake, bet.Price)
		return SettleAmounts{
			CreditSpendable: fromSpendable + payout,
			CreditBonus:     bet.BonusUsed,
			Exposure:        released,
			Pnl:             payout,
		}
	}
	return SettleAmounts{}
}

// Transition settles a single bet. The caller must hold the bet's account
// lock inside tx. Settlement is write-once: a bet already out of OPEN
// returns ErrAlreadySettled and changes nothing.
func Transition(tx *gorm.DB, acc *models.Account, bet *models.Bet, result models.BetStatus, detail map[string]any) error {
	if !result.Terminal() {
		return fmt.Errorf("not a terminal bet status: %s", result)
	}
	if bet.Status != models.BetOpen {
		return ErrAlreadySettled
	}

	amounts := ComputeSettle(bet, result)

	if detail == nil {
		detail = make(map[string]any)
	}
	var old map[string]any
	_ = json.Unmarshal(bet.SettleDetail, &old)
	for k, v := range old {
		if _, ok := detail[k]; !ok {
			detail[k] = v
		}
	}
	detail["settledAt"] = time.Now().Format(time.RFC3339)
	detail["result"] = string(result)
	detail["pnl"] = amounts.Pnl
	newDetail, _ := json.Marshal(detail)

	// Race-safe gate: only one writer can move the row out of OPEN.
	res := tx.Model(bet).
		Where("id = ? AND status = ?", bet.ID, models.BetOpen).
		Updates(map[string]any{
			"status":        result,
			"pnl":           amounts.Pnl,
			"settle_detail": newDetail,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadySettled
	}

	before := acc.SpendableBalance
	if err := ledger.ApplyDelta(tx, acc, ledger.Delta{
		Spendable: amounts.CreditSpendable,
		Bonus:     amounts.CreditBonus,
		Exposure:  amounts.Exposure,
	}); err != nil {
		return err
	}

	trxType := models.TrxCredit
	note := fmt.Sprintf("bet settlement %s", result)
	if _, err := ledger.Record(tx, acc, trxType, amounts.CreditSpendable, before, acc.SpendableBalance,
		fmt.Sprintf("bet:%d", bet.ID), note); err != nil {
		return err
	}

	bet.Status = result
	bet.Pnl = amounts.Pnl
	bet.SettleDetail = newDetail
	return nil
}

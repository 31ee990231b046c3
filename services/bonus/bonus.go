package bonus

import (
	"time"

	"bookie/models"

	"gorm.io/gorm"
)

// Compute returns the bonus granted for a deposit against an offer's
// rules. Ineligibility is not an error, it just grants nothing: the
// deposit itself still goes through.
func Compute(offer *models.Offer, amount int64, alreadyUsed bool, now time.Time) int64 {
	if offer == nil {
		return 0
	}
	if amount < offer.MinDeposit {
		return 0
	}
	if !offer.ValidAt(now) {
		return 0
	}
	if !offer.IsReusable && alreadyUsed {
		return 0
	}

	granted := offer.Value
	if offer.IsPercentage {
		granted = amount * offer.Value / 100
	}
	if offer.MaxCredit > 0 && granted > offer.MaxCredit {
		granted = offer.MaxCredit
	}
	if granted < 0 {
		granted = 0
	}
	return granted
}

// Used reports whether the account already consumed this offer on a
// previously approved deposit.
func Used(tx *gorm.DB, accountCode string, offerID uint) (bool, error) {
	var n int64
	err := tx.Model(&models.DepositRequest{}).
		Where("account_code = ? AND offer_id = ? AND status = ?",
			accountCode, offerID, models.FundingApproved).
		Count(&n).Error
	return n > 0, err
}

package funding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookie/cache"
	"bookie/metrics"
	"bookie/models"
	"bookie/services/bonus"
	"bookie/services/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrRequestNotFound   = errors.New("funding request not found")
	ErrAlreadyDecided    = errors.New("request already decided")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOfferNotFound     = errors.New("offer not found")
)

// RequestDeposit records a funding attempt. No money moves until staff
// approve it.
func RequestDeposit(db *gorm.DB, accountCode string, amount int64, offerID *uint, remark string) (*models.DepositRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var acc models.Account
	if err := db.Where("account_code = ? AND is_active = true", accountCode).
		First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, err
	}

	if offerID != nil {
		var offer models.Offer
		if err := db.First(&offer, *offerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrOfferNotFound
			}
			return nil, err
		}
	}

	req := models.DepositRequest{
		AccountID:   acc.ID,
		AccountCode: acc.AccountCode,
		Amount:      amount,
		Status:      models.FundingPending,
		OfferID:     offerID,
		Remark:      remark,
	}
	if err := db.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func RequestWithdrawal(db *gorm.DB, accountCode string, amount int64, remark string) (*models.WithdrawalRequest, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var acc models.Account
	if err := db.Where("account_code = ? AND is_active = true", accountCode).
		First(&acc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrAccountNotFound
		}
		return nil, err
	}

	// Soft check only; the binding check happens again at approval since
	// the balance may change in between.
	if amount > acc.SpendableBalance {
		return nil, ErrInsufficientFunds
	}

	req := models.WithdrawalRequest{
		AccountID:   acc.ID,
		AccountCode: acc.AccountCode,
		Amount:      amount,
		Status:      models.FundingPending,
		Remark:      remark,
	}
	if err := db.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// DecideDeposit applies a staff decision. Approval credits the amount,
// computes the offer bonus once, and resets wagering progress; rejection
// never touches the ledger.
func DecideDeposit(db *gorm.DB, requestID uint, approve bool, remark string) (*models.DepositRequest, *models.Account, error) {
	var req models.DepositRequest
	if err := db.First(&req, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, err
	}
	if req.Status != models.FundingPending {
		return nil, nil, ErrAlreadyDecided
	}

	if !approve {
		if err := rejectDeposit(db, &req, remark); err != nil {
			return nil, nil, err
		}
		metrics.FundingDecisions.WithLabelValues("deposit", "reject").Inc()
		return &req, nil, nil
	}

	var out *models.Account
	err := ledger.WithAccount(db, req.AccountCode, func(tx *gorm.DB, acc *models.Account) error {
		// Re-read under lock so two staff decisions cannot both apply.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, requestID).Error; err != nil {
			return err
		}
		if req.Status != models.FundingPending {
			return ErrAlreadyDecided
		}

		granted := int64(0)
		toBonusBalance := false
		if req.OfferID != nil {
			var offer models.Offer
			if err := tx.First(&offer, *req.OfferID).Error; err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return err
				}
			} else {
				used, err := bonus.Used(tx, req.AccountCode, offer.ID)
				if err != nil {
					return err
				}
				granted = bonus.Compute(&offer, req.Amount, used, time.Now())
				toBonusBalance = offer.IsBonus
			}
		}

		before := acc.SpendableBalance
		amounts := ComputeApproval(acc.WageringProgress, req.Amount, granted, toBonusBalance)

		if err := ledger.ApplyDelta(tx, acc, amounts.Delta); err != nil {
			return err
		}

		afterAmount := before + amounts.AmountLeg
		if _, err := ledger.Record(tx, acc, models.TrxCredit, amounts.AmountLeg, before, afterAmount,
			fmt.Sprintf("deposit:%d", req.ID), "deposit approved"); err != nil {
			return err
		}
		if granted > 0 {
			if _, err := ledger.Record(tx, acc, models.TrxCredit, amounts.BonusLeg, afterAmount, acc.SpendableBalance,
				fmt.Sprintf("deposit:%d", req.ID), "deposit bonus"); err != nil {
				return err
			}
		}

		res := tx.Model(&req).
			Where("id = ? AND status = ?", req.ID, models.FundingPending).
			Updates(map[string]any{
				"status":        models.FundingApproved,
				"bonus_granted": granted,
				"remark":        remark,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyDecided
		}

		req.Status = models.FundingApproved
		req.BonusGranted = granted
		req.Remark = remark
		out = acc
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	metrics.FundingDecisions.WithLabelValues("deposit", "approve").Inc()
	cache.RefreshSnapshot(context.Background(), out)
	return &req, out, nil
}

// DecideWithdrawal debits the spendable balance on approval, re-checking
// affordability at approval time.
func DecideWithdrawal(db *gorm.DB, requestID uint, approve bool, remark string) (*models.WithdrawalRequest, *models.Account, error) {
	var req models.WithdrawalRequest
	if err := db.First(&req, requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRequestNotFound
		}
		return nil, nil, err
	}
	if req.Status != models.FundingPending {
		return nil, nil, ErrAlreadyDecided
	}

	if !approve {
		res := db.Model(&req).
			Where("id = ? AND status = ?", req.ID, models.FundingPending).
			Updates(map[string]any{"status": models.FundingRejected, "remark": remark})
		if res.Error != nil {
			return nil, nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil, ErrAlreadyDecided
		}
		req.Status = models.FundingRejected
		req.Remark = remark
		metrics.FundingDecisions.WithLabelValues("withdrawal", "reject").Inc()
		return &req, nil, nil
	}

	var out *models.Account
	err := ledger.WithAccount(db, req.AccountCode, func(tx *gorm.DB, acc *models.Account) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&req, requestID).Error; err != nil {
			return err
		}
		if req.Status != models.FundingPending {
			return ErrAlreadyDecided
		}

		if req.Amount > acc.SpendableBalance {
			return ErrInsufficientFunds
		}

		before := acc.SpendableBalance
		if err := ledger.ApplyDelta(tx, acc, ledger.Delta{Spendable: -req.Amount}); err != nil {
			return err
		}

		if _, err := ledger.Record(tx, acc, models.TrxDebit, req.Amount, before, acc.SpendableBalance,
			fmt.Sprintf("withdrawal:%d", req.ID), "withdrawal approved"); err != nil {
			return err
		}

		res := tx.Model(&req).
			Where("id = ? AND status = ?", req.ID, models.FundingPending).
			Updates(map[string]any{"status": models.FundingApproved, "remark": remark})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyDecided
		}

		req.Status = models.FundingApproved
		req.Remark = remark
		out = acc
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	metrics.FundingDecisions.WithLabelValues("withdrawal", "approve").Inc()
	cache.RefreshSnapshot(context.Background(), out)
	return &req, out, nil
}

func rejectDeposit(db *gorm.DB, req *models.DepositRequest, remark string) error {
	res := db.Model(req).
		Where("id = ? AND status = ?", req.ID, models.FundingPending).
		Updates(map[string]any{"status": models.FundingRejected, "remark": remark})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyDecided
	}
	req.Status = models.FundingRejected
	req.Remark = remark
	return nil
}

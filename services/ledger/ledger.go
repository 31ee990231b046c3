package ledger

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bookie/logger"
	"bookie/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountBanned       = errors.New("account banned or inactive")
	ErrConcurrencyConflict = errors.New("account busy, retry")
)

const (
	maxLockRetries = 3
	retryBackoff   = 50 * time.Millisecond
)

// Delta is the only way any component changes an account's money fields.
// All values are signed currency minor units.
type Delta struct {
	Spendable int64
	Bonus     int64
	Exposure  int64
	Wagering  int64
}

// Apply mutates the in-memory account. It does not persist anything.
func Apply(acc *models.Account, d Delta) error {
	if acc == nil {
		return ErrAccountNotFound
	}
	if acc.IsBanned || !acc.IsActive {
		return ErrAccountBanned
	}

	acc.SpendableBalance += d.Spendable
	acc.BonusBalance += d.Bonus
	acc.Exposure += d.Exposure
	acc.WageringProgress += d.Wagering
	return nil
}

// ApplyDelta applies d to an account already locked inside tx and persists
// the changed fields. Callers pair every successful call with exactly one
// recorded Transaction in the same tx.
func ApplyDelta(tx *gorm.DB, acc *models.Account, d Delta) error {
	if err := Apply(acc, d); err != nil {
		return err
	}

	return tx.Model(acc).Updates(map[string]any{
		"spendable_balance": acc.SpendableBalance,
		"bonus_balance":     acc.BonusBalance,
		"exposure":          acc.Exposure,
		"wagering_progress": acc.WageringProgress,
	}).Error
}

// WithAccount runs fn inside a DB transaction holding the account's row
// lock. Every read-modify-write of balance, exposure, or wagering fields
// must go through here: the FOR UPDATE lock is what serializes concurrent
// placements, settlements, and funding approvals on the same account.
// Lock and serialization failures are retried with backoff before
// surfacing as ErrConcurrencyConflict.
func WithAccount(db *gorm.DB, accountCode string, fn func(tx *gorm.DB, acc *models.Account) error) error {
	var lastErr error

	for attempt := 0; attempt <= maxLockRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(retryBackoff * time.Duration(attempt))
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var acc models.Account
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("account_code = ?", accountCode).
				First(&acc).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrAccountNotFound
				}
				return err
			}
			return fn(tx, &acc)
		})

		if err == nil || !retryable(err) {
			return err
		}

		lastErr = err
		logger.L.Warn("account lock conflict, retrying",
			zap.String("account", accountCode), zap.Int("attempt", attempt+1), zap.Error(err))
	}

	logger.L.Error("account lock retries exhausted",
		zap.String("account", accountCode), zap.Error(lastErr))
	return ErrConcurrencyConflict
}

// retryable matches postgres serialization_failure, deadlock_detected and
// lock_not_available SQLSTATEs.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "40001") ||
		strings.Contains(msg, "40P01") ||
		strings.Contains(msg, "55P03")
}

// Record appends an immutable audit transaction inside tx. before/after
// are spendable-balance snapshots around this event.
func Record(tx *gorm.DB, acc *models.Account, trxType models.TrxType, amount int64, before, after int64, reference, note string) (*models.Transaction, error) {
	trx := models.Transaction{
		AccountID:     acc.ID,
		AccountCode:   acc.AccountCode,
		TrxType:       trxType,
		Amount:        amount,
		Status:        models.TrxSuccess,
		BalanceBefore: before,
		BalanceAfter:  after,
		RefID:         uuid.New().String(),
		Reference:     reference,
		Note:          note,
	}

	if err := tx.Create(&trx).Error; err != nil {
		return nil, err
	}
	return &trx, nil
}

// OverrideExposure applies a provider-reported exposure value directly.
// It still goes through the account lock like every other mutation.
func OverrideExposure(db *gorm.DB, accountCode string, exposure int64, reportedAt time.Time) (*models.Account, error) {
	var out *models.Account

	err := WithAccount(db, accountCode, func(tx *gorm.DB, acc *models.Account) error {
		if acc.IsBanned || !acc.IsActive {
			return ErrAccountBanned
		}

		prev := acc.Exposure
		acc.Exposure = exposure
		acc.ExposureTime = &reportedAt

		if err := tx.Model(acc).Updates(map[string]any{
			"exposure":      acc.Exposure,
			"exposure_time": acc.ExposureTime,
		}).Error; err != nil {
			return err
		}

		note := fmt.Sprintf("provider exposure override %d -> %d", prev, exposure)
		if _, err := Record(tx, acc, models.TrxCredit, 0, acc.SpendableBalance, acc.SpendableBalance, "exposure-override", note); err != nil {
			return err
		}

		out = acc
		return nil
	})

	return out, err
}

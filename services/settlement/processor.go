package settlement

import (
	"context"
	"errors"

	"bookie/cache"
	"bookie/logger"
	"bookie/metrics"
	"bookie/models"
	"bookie/services/betting"
	"bookie/services/ledger"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Report struct {
	MarketRef string `json:"market_ref"`
	Settled   int    `json:"settled"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}

// SettleMarket applies an outcome to every OPEN bet on a market. Each bet
// settles in its own account-locked transaction, so one bad account never
// blocks the rest of the batch, and re-running the same instruction just
// skips the bets that are already terminal.
func SettleMarket(db *gorm.DB, marketRef string, out betting.Outcome) (*Report, error) {
	var open []models.Bet
	if err := db.Where("market_ref = ? AND status = ?", marketRef, models.BetOpen).
		Find(&open).Error; err != nil {
		return nil, err
	}

	report := &Report{MarketRef: marketRef}

	for i := range open {
		betID := open[i].ID
		accountCode := open[i].AccountCode

		var (
			settled *models.Account
			result  models.BetStatus
		)
		err := ledger.WithAccount(db, accountCode, func(tx *gorm.DB, acc *models.Account) error {
			// Re-read the bet under the lock; it may have settled since
			// the batch was listed.
			var bet models.Bet
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&bet, betID).Error; err != nil {
				return err
			}

			result = betting.Decide(&bet, out)
			if err := betting.Transition(tx, acc, &bet, result, map[string]any{
				"marketRef":        marketRef,
				"winningSelection": out.WinningSelection,
				"voided":           out.Voided,
			}); err != nil {
				return err
			}

			settled = acc
			return nil
		})

		switch {
		case err == nil:
			report.Settled++
			afterSettle(settled, result)
		case errors.Is(err, betting.ErrAlreadySettled):
			report.Skipped++
		default:
			report.Failed++
			metrics.SettlementFailures.Inc()
			logger.L.Error("bet settlement failed",
				zap.Uint("bet", betID),
				zap.String("account", accountCode),
				zap.String("market", marketRef),
				zap.Error(err))
		}
	}

	logger.L.Info("market settled",
		zap.String("market", marketRef),
		zap.Int("settled", report.Settled),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))

	return report, nil
}

// afterSettle records a committed settlement. It runs outside the
// transaction: a rolled-back retry inside WithAccount must not count, and
// redis stays out of the critical section.
func afterSettle(acc *models.Account, result models.BetStatus) {
	metrics.BetsSettled.WithLabelValues(string(result)).Inc()
	cache.RefreshSnapshot(context.Background(), acc)
}

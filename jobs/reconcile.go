package jobs

import (
	"time"

	"bookie/database"
	"bookie/logger"
	"bookie/metrics"
	"bookie/models"

	"go.uber.org/zap"
)

// StartReconcileScheduler periodically re-derives each account's exposure
// and transaction sum from first principles and flags drift. It never
// repairs anything on its own; mismatches are for staff to chase.
func StartReconcileScheduler() {
	ticker := time.NewTicker(5 * time.Minute)
	go func() {
		for {
			<-ticker.C
			if err := ReconcileOnce(); err != nil {
				logger.L.Error("reconciliation pass failed", zap.Error(err))
			}
		}
	}()
}

func ReconcileOnce() error {
	var accounts []models.Account
	if err := database.DB.Find(&accounts).Error; err != nil {
		return err
	}

	for i := range accounts {
		acc := &accounts[i]

		var openLiability int64
		if err := database.DB.Model(&models.Bet{}).
			Where("account_code = ? AND status = ?", acc.AccountCode, models.BetOpen).
			Select("COALESCE(SUM(liability), 0)").
			Scan(&openLiability).Error; err != nil {
			return err
		}

		// A recent provider override makes the derived exposure stale by
		// definition; skip those accounts.
		overridden := acc.ExposureTime != nil && time.Since(*acc.ExposureTime) < time.Hour

		if !overridden && acc.Exposure != -openLiability {
			metrics.ReconcileMismatches.Inc()
			logger.L.Warn("exposure drift",
				zap.String("account", acc.AccountCode),
				zap.Int64("stored", acc.Exposure),
				zap.Int64("derived", -openLiability))
		}

		var creditSum, debitSum int64
		if err := database.DB.Model(&models.Transaction{}).
			Where("account_code = ? AND status = ? AND trx_type = ?", acc.AccountCode, models.TrxSuccess, models.TrxCredit).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&creditSum).Error; err != nil {
			return err
		}
		if err := database.DB.Model(&models.Transaction{}).
			Where("account_code = ? AND status = ? AND trx_type = ?", acc.AccountCode, models.TrxSuccess, models.TrxDebit).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&debitSum).Error; err != nil {
			return err
		}

		if acc.SpendableBalance != creditSum-debitSum {
			metrics.ReconcileMismatches.Inc()
			logger.L.Warn("transaction-sum drift",
				zap.String("account", acc.AccountCode),
				zap.Int64("spendable", acc.SpendableBalance),
				zap.Int64("tx_sum", creditSum-debitSum))
		}
	}

	return nil
}

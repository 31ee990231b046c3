package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bookie/logger"
	"bookie/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Rdb is nil when REDIS_ADDR is unset; callers must treat the cache as
// best-effort and fall back to the database.
var Rdb *redis.Client

const snapshotTTL = 30 * time.Second

func Connect(addr string) error {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return err
	}

	Rdb = rdb
	return nil
}

type AccountSnapshot struct {
	AccountCode      string `json:"account_code"`
	SpendableBalance int64  `json:"spendable_balance"`
	BonusBalance     int64  `json:"bonus_balance"`
	Exposure         int64  `json:"exposure"`
	WageringProgress int64  `json:"wagering_progress"`
}

func snapshotKey(accountCode string) string {
	return fmt.Sprintf("account:snapshot:%s", accountCode)
}

// RefreshSnapshot is called after a ledger commit, never inside the
// account critical section.
func RefreshSnapshot(ctx context.Context, acc *models.Account) {
	if Rdb == nil {
		return
	}

	snap := AccountSnapshot{
		AccountCode:      acc.AccountCode,
		SpendableBalance: acc.SpendableBalance,
		BonusBalance:     acc.BonusBalance,
		Exposure:         acc.Exposure,
		WageringProgress: acc.WageringProgress,
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}

	if err := Rdb.Set(ctx, snapshotKey(acc.AccountCode), raw, snapshotTTL).Err(); err != nil {
		logger.L.Warn("snapshot cache refresh failed",
			zap.String("account", acc.AccountCode), zap.Error(err))
	}
}

// GetSnapshot returns a cached snapshot, or nil on miss or when redis is
// not configured.
func GetSnapshot(ctx context.Context, accountCode string) *AccountSnapshot {
	if Rdb == nil {
		return nil
	}

	raw, err := Rdb.Get(ctx, snapshotKey(accountCode)).Bytes()
	if err != nil {
		return nil
	}

	var snap AccountSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil
	}
	return &snap
}

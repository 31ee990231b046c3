package betting

import (
	"context"
	"errors"
	"fmt"

	"bookie/cache"
	"bookie/metrics"
	"bookie/models"
	"bookie/services/ledger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidStake      = errors.New("stake out of range")
	ErrInvalidPrice      = errors.New("price must be greater than 1")
	ErrInvalidBetType    = errors.New("bet type must be back or lay")
	ErrExposureExceeded  = errors.New("exposure limit exceeded")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAlreadySettled    = errors.New("bet already settled")
)

type PlaceInput struct {
	AccountCode  string
	Category     models.BetCategory
	BetType      models.BetType
	Stake        int64
	Price        decimal.Decimal
	MarketRef    string
	SelectionRef string
}

// Validate runs the checks that need no account state, before any lock is
// taken.
func (in *PlaceInput) Validate() error {
	if in.Stake < MinStake || in.Stake > MaxStake {
		return ErrInvalidStake
	}
	if !in.Price.GreaterThan(one) {
		return ErrInvalidPrice
	}
	switch in.Category {
	case models.CategorySports, models.CategorySportsFancy:
		if in.BetType != models.BetTypeBack && in.BetType != models.BetTypeLay {
			return ErrInvalidBetType
		}
	case models.CategoryCasino:
		if in.BetType == "" {
			in.BetType = models.BetTypeBack
		}
	default:
		return fmt.Errorf("unknown bet category %q", in.Category)
	}
	return nil
}

// Place creates an OPEN bet: exposure check, liability debit, audit row,
// all inside the account's critical section. Nothing is persisted on any
// rejection path.
func Place(db *gorm.DB, in PlaceInput) (*models.Bet, *models.Account, error) {
	if err := in.Validate(); err != nil {
		metrics.BetsRejected.WithLabelValues("validation").Inc()
		return nil, nil, err
	}

	liability := Liability(in.Category, in.BetType, in.Stake, in.Price)

	var (
		bet *models.Bet
		out *models.Account
	)

	err := ledger.WithAccount(db, in.AccountCode, func(tx *gorm.DB, acc *models.Account) error {
		if acc.IsBanned || !acc.IsActive {
			return ledger.ErrAccountBanned
		}

		if !CanAccept(acc, liability) {
			return ErrExposureExceeded
		}

		fromSpendable := liability
		bonusUsed := int64(0)
		if fromSpendable > acc.SpendableBalance {
			bonusUsed = fromSpendable - acc.SpendableBalance
			fromSpendable = acc.SpendableBalance
		}
		if bonusUsed > acc.BonusBalance {
			return ErrInsufficientFunds
		}

		before := acc.SpendableBalance

		b := models.Bet{
			AccountID:     acc.ID,
			AccountCode:   acc.AccountCode,
			Category:      in.Category,
			BetType:       in.BetType,
			Status:        models.BetOpen,
			MarketRef:     in.MarketRef,
			SelectionRef:  in.SelectionRef,
			Stake:         in.Stake,
			Price:         in.Price,
			Liability:     liability,
			BalanceBefore: before,
			BalanceAfter:  before - fromSpendable,
			BonusUsed:     bonusUsed,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}

		if err := ledger.ApplyDelta(tx, acc, ledger.Delta{
			Spendable: -fromSpendable,
			Bonus:     -bonusUsed,
			Exposure:  -liability,
			Wagering:  in.Stake,
		}); err != nil {
			return err
		}

		note := "bet placement"
		if bonusUsed > 0 {
			note = fmt.Sprintf("bet placement (bonus used %d)", bonusUsed)
		}
		// Amount is the spendable movement only, so the transaction sum
		// stays reconcilable against the spendable balance.
		if _, err := ledger.Record(tx, acc, models.TrxDebit, fromSpendable, before, acc.SpendableBalance,
			fmt.Sprintf("bet:%d", b.ID), note); err != nil {
			return err
		}

		bet = &b
		out = acc
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrExposureExceeded):
			metrics.BetsRejected.WithLabelValues("exposure").Inc()
		case errors.Is(err, ErrInsufficientFunds):
			metrics.BetsRejected.WithLabelValues("funds").Inc()
		}
		return nil, nil, err
	}

	metrics.BetsPlaced.Inc()
	cache.RefreshSnapshot(context.Background(), out)
	return bet, out, nil
}

package betting

import (
	"bookie/models"

	"github.com/shopspring/decimal"
)

const (
	MinStake  int64 = 100
	MaxStake  int64 = 500_000
	MaxPayout int64 = 2_000_000
)

// Quoted prices above 4.0 are priced as 4.0 for liability and payout, so a
// single runaway price cannot blow up platform risk.
var maxOdds = decimal.NewFromInt(4)

var one = decimal.NewFromInt(1)

func ClampOdds(price decimal.Decimal) decimal.Decimal {
	if price.GreaterThan(maxOdds) {
		return maxOdds
	}
	return price
}

// Liability is the amount locked up at placement.
// Back bets risk the stake; lay bets risk stake*(odds-1); casino-style
// bets are stake-based.
func Liability(category models.BetCategory, betType models.BetType, stake int64, price decimal.Decimal) int64 {
	if category == models.CategoryCasino {
		return stake
	}
	if betType == models.BetTypeLay {
		return decimal.NewFromInt(stake).
			Mul(ClampOdds(price).Sub(one)).
			Round(0).IntPart()
	}
	return stake
}

// Payout is the winnings credited on a WON bet, on top of the released
// liability. For a winning lay the layer collects the backer's stake.
func Payout(category models.BetCategory, betType models.BetType, stake int64, price decimal.Decimal) int64 {
	var p int64
	if category != models.CategoryCasino && betType == models.BetTypeLay {
		p = stake
	} else {
		p = decimal.NewFromInt(stake).
			Mul(ClampOdds(price).Sub(one)).
			Round(0).IntPart()
	}

	if p > MaxPayout {
		p = MaxPayout
	}
	return p
}

type Outcome struct {
	WinningSelection string `json:"winning_selection"`
	Voided           bool   `json:"voided"`
}

// Decide maps a market outcome to this bet's terminal state. A back (or
// casino) bet wins when its selection won; a lay bet wins when it did not.
func Decide(bet *models.Bet, out Outcome) models.BetStatus {
	if out.Voided {
		return models.BetVoid
	}

	won := bet.SelectionRef == out.WinningSelection
	if bet.Category != models.CategoryCasino && bet.BetType == models.BetTypeLay {
		won = !won
	}

	if won {
		return models.BetWon
	}
	return models.BetLost
}

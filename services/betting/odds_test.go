package betting

import (
	"testing"

	"bookie/models"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestClampOdds(t *testing.T) {
	cases := []struct {
		price string
		want  string
	}{
		{"1.5", "1.5"},
		{"4", "4"},
		{"4.01", "4"},
		{"9.0", "4"},
	}
	for _, tc := range cases {
		got := ClampOdds(dec(tc.price))
		if !got.Equal(dec(tc.want)) {
			t.Errorf("ClampOdds(%s) = %s, want %s", tc.price, got, tc.want)
		}
	}
}

func TestLiability(t *testing.T) {
	cases := []struct {
		name     string
		category models.BetCategory
		betType  models.BetType
		stake    int64
		price    string
		want     int64
	}{
		{"back risks stake", models.CategorySports, models.BetTypeBack, 1000, "2.5", 1000},
		{"lay risks stake*(odds-1)", models.CategorySports, models.BetTypeLay, 1000, "2.0", 1000},
		{"lay at 3.5", models.CategorySports, models.BetTypeLay, 1000, "3.5", 2500},
		{"lay clamped at 4", models.CategorySports, models.BetTypeLay, 1000, "9.0", 3000},
		{"fancy lay", models.CategorySportsFancy, models.BetTypeLay, 200, "1.95", 190},
		{"casino is stake-based", models.CategoryCasino, models.BetTypeBack, 500, "9.0", 500},
	}
	for _, tc := range cases {
		got := Liability(tc.category, tc.betType, tc.stake, dec(tc.price))
		if got != tc.want {
			t.Errorf("%s: Liability = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestPayout(t *testing.T) {
	cases := []struct {
		name     string
		category models.BetCategory
		betType  models.BetType
		stake    int64
		price    string
		want     int64
	}{
		{"back win pays stake*(odds-1)", models.CategorySports, models.BetTypeBack, 1000, "2.5", 1500},
		{"back win clamped to odds 4", models.CategorySports, models.BetTypeBack, 1000, "9.0", 3000},
		{"lay win pays backer stake", models.CategorySports, models.BetTypeLay, 1000, "2.0", 1000},
		{"casino win", models.CategoryCasino, models.BetTypeBack, 500, "2.0", 500},
		{"platform max payout cap", models.CategorySports, models.BetTypeBack, 500_000, "9.0", MaxPayout},
	}
	for _, tc := range cases {
		got := Payout(tc.category, tc.betType, tc.stake, dec(tc.price))
		if got != tc.want {
			t.Errorf("%s: Payout = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestDecide(t *testing.T) {
	back := &models.Bet{Category: models.CategorySports, BetType: models.BetTypeBack, SelectionRef: "home"}
	lay := &models.Bet{Category: models.CategorySports, BetType: models.BetTypeLay, SelectionRef: "home"}
	casino := &models.Bet{Category: models.CategoryCasino, BetType: models.BetTypeBack, SelectionRef: "red"}

	cases := []struct {
		name string
		bet  *models.Bet
		out  Outcome
		want models.BetStatus
	}{
		{"back wins when selection wins", back, Outcome{WinningSelection: "home"}, models.BetWon},
		{"back loses when selection loses", back, Outcome{WinningSelection: "away"}, models.BetLost},
		{"lay wins when selection loses", lay, Outcome{WinningSelection: "away"}, models.BetWon},
		{"lay loses when selection wins", lay, Outcome{WinningSelection: "home"}, models.BetLost},
		{"void outcome voids everything", back, Outcome{Voided: true}, models.BetVoid},
		{"casino follows selection", casino, Outcome{WinningSelection: "red"}, models.BetWon},
	}
	for _, tc := range cases {
		if got := Decide(tc.bet, tc.out); got != tc.want {
			t.Errorf("%s: Decide = %s, want %s", tc.name, got, tc.want)
		}
	}
}

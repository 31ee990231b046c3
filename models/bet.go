package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BetCategory string

const (
	CategorySports      BetCategory = "sports"
	CategorySportsFancy BetCategory = "sports_fancy"
	CategoryCasino      BetCategory = "casino"
)

type BetType string

const (
	BetTypeBack BetType = "back"
	BetTypeLay  BetType = "lay"
)

type BetStatus string

const (
	BetOpen BetStatus = "OPEN"
	BetWon  BetStatus = "WON"
	BetLost BetStatus = "LOST"
	BetVoid BetStatus = "VOID"
)

func (s BetStatus) Terminal() bool {
	return s == BetWon || s == BetLost || s == BetVoid
}

type Bet struct {
	gorm.Model

	AccountID   uint   `gorm:"index"`
	AccountCode string `gorm:"index;size:32" json:"account_code"`

	Category BetCategory `gorm:"size:16;index" json:"category"`
	BetType  BetType     `gorm:"size:8" json:"bet_type"`
	Status   BetStatus   `gorm:"size:8;index" json:"status"`

	MarketRef    string `gorm:"index;size:64" json:"market_ref"`
	SelectionRef string `gorm:"size:64" json:"selection_ref"`

	Stake     int64           `json:"stake"`
	Price     decimal.Decimal `gorm:"type:numeric(10,3)" json:"price"`
	Liability int64           `json:"liability"`

	// Pnl is set exactly once, at settlement.
	Pnl int64 `json:"pnl"`

	BalanceBefore int64 `json:"balance_before"`
	BalanceAfter  int64 `json:"balance_after"`
	BonusUsed     int64 `json:"bonus_used"`

	SettleDetail datatypes.JSON `json:"settle_detail,omitempty"`
}

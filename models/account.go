package models

import (
	"time"

	"gorm.io/gorm"
)

const DefaultExposureLimit int64 = -200_000

type Account struct {
	gorm.Model

	AccountCode string `gorm:"uniqueIndex;size:32" json:"account_code"`
	Currency    string `gorm:"size:8" json:"currency"`

	// All amounts are currency minor units.
	SpendableBalance int64 `json:"spendable_balance"`
	BonusBalance     int64 `json:"bonus_balance"`

	// Exposure is the worst-case liability across open bets, kept <= 0.
	Exposure      int64      `json:"exposure"`
	ExposureLimit int64      `json:"exposure_limit"`
	ExposureTime  *time.Time `json:"exposure_time,omitempty"`

	// Cumulative stake since the last approved deposit.
	WageringProgress int64 `json:"wagering_progress"`

	IsActive bool `gorm:"default:true" json:"is_active"`
	IsBanned bool `gorm:"default:false" json:"is_banned"`

	Bets         []Bet         `gorm:"foreignKey:AccountID"`
	Transactions []Transaction `gorm:"foreignKey:AccountID"`
}

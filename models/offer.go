package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Offer is a promotional rule. The ledger only ever reads offers.
type Offer struct {
	gorm.Model

	Name         string `gorm:"size:64" json:"name"`
	Value        int64  `json:"value"`
	IsPercentage bool   `json:"is_percentage"`
	MinDeposit   int64  `json:"min_deposit"`
	MaxCredit    int64  `json:"max_credit"`

	// IsBonus routes the granted amount to the bonus balance instead of
	// the spendable balance.
	IsBonus    bool `json:"is_bonus"`
	IsReusable bool `json:"is_reusable"`

	ValidFrom *time.Time `json:"valid_from,omitempty"`
	ValidTo   *time.Time `json:"valid_to,omitempty"`

	Metadata datatypes.JSON `json:"metadata,omitempty"`
}

// ValidAt reports whether the offer's validity window covers t.
func (o *Offer) ValidAt(t time.Time) bool {
	if o.ValidFrom != nil && t.Before(*o.ValidFrom) {
		return false
	}
	if o.ValidTo != nil && t.After(*o.ValidTo) {
		return false
	}
	return true
}

package models

import "gorm.io/gorm"

type FundingStatus string

const (
	FundingPending  FundingStatus = "pending"
	FundingApproved FundingStatus = "approved"
	FundingRejected FundingStatus = "rejected"
)

type DepositRequest struct {
	gorm.Model

	AccountID   uint   `gorm:"index"`
	AccountCode string `gorm:"index;size:32" json:"account_code"`

	Amount int64         `json:"amount"`
	Status FundingStatus `gorm:"size:16;index" json:"status"`

	OfferID *uint `gorm:"index" json:"offer_id,omitempty"`
	// BonusGranted is computed once, at approval.
	BonusGranted int64 `json:"bonus_granted"`

	Remark string `gorm:"size:255" json:"remark"`
}

type WithdrawalRequest struct {
	gorm.Model

	AccountID   uint   `gorm:"index"`
	AccountCode string `gorm:"index;size:32" json:"account_code"`

	Amount int64         `json:"amount"`
	Status FundingStatus `gorm:"size:16;index" json:"status"`

	Remark string `gorm:"size:255" json:"remark"`
}

package models

import "gorm.io/gorm"

type TrxType string

const (
	TrxCredit TrxType = "credit"
	TrxDebit  TrxType = "debit"
)

type TrxStatus string

const (
	TrxPending  TrxStatus = "pending"
	TrxSuccess  TrxStatus = "success"
	TrxRejected TrxStatus = "rejected"
	TrxReverted TrxStatus = "reverted"
)

// Transaction is append-only: rows are never updated after creation except
// the single allowed pending -> terminal status transition.
type Transaction struct {
	gorm.Model

	AccountID   uint   `gorm:"index"`
	AccountCode string `gorm:"index;size:32" json:"account_code"`

	TrxType TrxType   `gorm:"size:8" json:"trx_type"`
	Amount  int64     `json:"amount"`
	Status  TrxStatus `gorm:"size:16;index" json:"status"`

	BalanceBefore int64 `json:"balance_before"`
	BalanceAfter  int64 `json:"balance_after"`

	RefID     string `gorm:"size:64;index" json:"ref_id"`
	Reference string `gorm:"size:64;index" json:"reference"`
	Note      string `gorm:"size:255" json:"note"`
}

// Signed returns the transaction's effect on the spendable balance.
func (t *Transaction) Signed() int64 {
	if t.TrxType == TrxDebit {
		return -t.Amount
	}
	return t.Amount
}

package funding

import (
	"testing"
	"time"

	"bookie/models"
	"bookie/services/bonus"
	"bookie/services/ledger"
)

// Deposit of 5000 against a 10%-up-to-2000 bonus offer: the amount goes
// to the spendable balance, the 500 grant to the bonus balance, and the
// wagering counter restarts.
func TestComputeApproval_PercentageBonusOffer(t *testing.T) {
	offer := &models.Offer{
		Value:        10,
		IsPercentage: true,
		MinDeposit:   1000,
		MaxCredit:    2000,
		IsBonus:      true,
		IsReusable:   true,
	}
	granted := bonus.Compute(offer, 5000, false, time.Now())
	if granted != 500 {
		t.Fatalf("granted = %d, want 500", granted)
	}

	acc := &models.Account{
		SpendableBalance: 1200,
		BonusBalance:     80,
		WageringProgress: 7777,
		IsActive:         true,
	}

	amounts := ComputeApproval(acc.WageringProgress, 5000, granted, offer.IsBonus)
	if err := ledger.Apply(acc, amounts.Delta); err != nil {
		t.Fatalf("Apply() = %v", err)
	}

	if acc.SpendableBalance != 6200 {
		t.Errorf("spendable = %d, want 6200", acc.SpendableBalance)
	}
	if acc.BonusBalance != 580 {
		t.Errorf("bonus = %d, want 580", acc.BonusBalance)
	}
	if acc.WageringProgress != 0 {
		t.Errorf("wagering = %d, want 0 after deposit", acc.WageringProgress)
	}

	// Bonus-balance grants leave the audited spendable legs at just the
	// deposit amount.
	if amounts.AmountLeg != 5000 || amounts.BonusLeg != 0 {
		t.Errorf("audit legs = %d/%d, want 5000/0", amounts.AmountLeg, amounts.BonusLeg)
	}
}

func TestComputeApproval_SpendableRoutedOffer(t *testing.T) {
	acc := &models.Account{
		SpendableBalance: 1000,
		WageringProgress: 300,
		IsActive:         true,
	}

	amounts := ComputeApproval(acc.WageringProgress, 5000, 300, false)
	if err := ledger.Apply(acc, amounts.Delta); err != nil {
		t.Fatalf("Apply() = %v", err)
	}

	if acc.SpendableBalance != 6300 {
		t.Errorf("spendable = %d, want 6300", acc.SpendableBalance)
	}
	if acc.BonusBalance != 0 {
		t.Errorf("bonus = %d, want 0", acc.BonusBalance)
	}
	if acc.WageringProgress != 0 {
		t.Errorf("wagering = %d, want 0 after deposit", acc.WageringProgress)
	}

	// The audited legs together cover the whole spendable movement.
	if amounts.AmountLeg+amounts.BonusLeg != amounts.Delta.Spendable {
		t.Errorf("audit legs %d+%d do not cover spendable delta %d",
			amounts.AmountLeg, amounts.BonusLeg, amounts.Delta.Spendable)
	}
}

func TestComputeApproval_NoOffer(t *testing.T) {
	amounts := ComputeApproval(900, 2000, 0, false)

	if amounts.Delta.Spendable != 2000 || amounts.Delta.Bonus != 0 {
		t.Errorf("delta = %+v, want spendable 2000 and no bonus", amounts.Delta)
	}
	if amounts.Delta.Wagering != -900 {
		t.Errorf("wagering delta = %d, want -900", amounts.Delta.Wagering)
	}
	if amounts.AmountLeg != 2000 || amounts.BonusLeg != 0 {
		t.Errorf("audit legs = %d/%d, want 2000/0", amounts.AmountLeg, amounts.BonusLeg)
	}
}

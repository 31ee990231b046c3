package ledger

import (
	"errors"
	"fmt"
	"testing"

	"bookie/models"
)

func TestApply(t *testing.T) {
	acc := &models.Account{
		SpendableBalance: 5000,
		BonusBalance:     500,
		Exposure:         -1000,
		WageringProgress: 2000,
		IsActive:         true,
	}

	err := Apply(acc, Delta{Spendable: -300, Bonus: -100, Exposure: -400, Wagering: 400})
	if err != nil {
		t.Fatalf("Apply() = %v", err)
	}

	if acc.SpendableBalance != 4700 {
		t.Errorf("spendable = %d, want 4700", acc.SpendableBalance)
	}
	if acc.BonusBalance != 400 {
		t.Errorf("bonus = %d, want 400", acc.BonusBalance)
	}
	if acc.Exposure != -1400 {
		t.Errorf("exposure = %d, want -1400", acc.Exposure)
	}
	if acc.WageringProgress != 2400 {
		t.Errorf("wagering = %d, want 2400", acc.WageringProgress)
	}
}

func TestApply_BannedAndInactive(t *testing.T) {
	banned := &models.Account{IsActive: true, IsBanned: true}
	if err := Apply(banned, Delta{Spendable: 100}); !errors.Is(err, ErrAccountBanned) {
		t.Errorf("banned account: %v, want ErrAccountBanned", err)
	}

	inactive := &models.Account{IsActive: false}
	if err := Apply(inactive, Delta{Spendable: 100}); !errors.Is(err, ErrAccountBanned) {
		t.Errorf("inactive account: %v, want ErrAccountBanned", err)
	}

	if err := Apply(nil, Delta{}); !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("nil account: %v, want ErrAccountNotFound", err)
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("record not found"), false},
		{fmt.Errorf("ERROR: could not serialize access (SQLSTATE 40001)"), true},
		{fmt.Errorf("ERROR: deadlock detected (SQLSTATE 40P01)"), true},
		{fmt.Errorf("ERROR: could not obtain lock (SQLSTATE 55P03)"), true},
	}
	for _, tc := range cases {
		if got := retryable(tc.err); got != tc.want {
			t.Errorf("retryable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestTransactionSigned(t *testing.T) {
	credit := &models.Transaction{TrxType: models.TrxCredit, Amount: 700}
	if credit.Signed() != 700 {
		t.Errorf("credit signed = %d, want 700", credit.Signed())
	}
	debit := &models.Transaction{TrxType: models.TrxDebit, Amount: 700}
	if debit.Signed() != -700 {
		t.Errorf("debit signed = %d, want -700", debit.Signed())
	}
}

package funding

import "bookie/services/ledger"

// ApprovalAmounts describes the ledger effect of approving a deposit: the
// amount always lands in the spendable balance, the offer grant goes
// wherever the offer routes it, and the wagering counter restarts.
//
// AmountLeg and BonusLeg are the spendable movements audited on the two
// transaction rows; a grant routed to the bonus balance leaves BonusLeg
// zero so the transaction sum stays reconcilable against the spendable
// balance.
type ApprovalAmounts struct {
	Delta     ledger.Delta
	AmountLeg int64
	BonusLeg  int64
}

func ComputeApproval(wageringProgress, amount, granted int64, toBonusBalance bool) ApprovalAmounts {
	a := ApprovalAmounts{
		Delta: ledger.Delta{
			Spendable: amount,
			Wagering:  -wageringProgress, // rollover restarts on deposit
		},
		AmountLeg: amount,
	}

	if granted > 0 {
		if toBonusBalance {
			a.Delta.Bonus = granted
		} else {
			a.Delta.Spendable += granted
			a.BonusLeg = granted
		}
	}
	return a
}

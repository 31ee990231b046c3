package betting

import "bookie/models"

// CanAccept reports whether the account can carry one more liability
// without crossing its exposure limit. Hitting the limit exactly is
// allowed; one unit past it is not.
//
// The caller must hold the account row lock: checking headroom and
// debiting exposure have to sit in the same critical section or two
// concurrent bets can both pass against a stale exposure value.
func CanAccept(acc *models.Account, liability int64) bool {
	return acc.Exposure-liability >= acc.ExposureLimit
}

package betting

import (
	"testing"

	"bookie/models"
)

func TestCanAccept_Boundary(t *testing.T) {
	acc := &models.Account{
		Exposure:      -150_000,
		ExposureLimit: models.DefaultExposureLimit,
	}

	// Landing exactly on the limit is accepted.
	if !CanAccept(acc, 50_000) {
		t.Error("liability reaching the limit exactly should be accepted")
	}
	// One unit past the limit is not.
	if CanAccept(acc, 50_001) {
		t.Error("liability one unit past the limit should be rejected")
	}
}

func TestCanAccept_ZeroExposure(t *testing.T) {
	acc := &models.Account{ExposureLimit: -1000}

	if !CanAccept(acc, 1000) {
		t.Error("full headroom should be usable")
	}
	if CanAccept(acc, 1001) {
		t.Error("liability past the limit should be rejected")
	}
}

package helpers

import (
	"errors"
	"fmt"
	"testing"

	"bookie/services/betting"
	"bookie/services/funding"
	"bookie/services/ledger"

	"github.com/gofiber/fiber/v2"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   int
		wantStatus int
	}{
		{"invalid stake", betting.ErrInvalidStake, 101, fiber.StatusBadRequest},
		{"invalid price", betting.ErrInvalidPrice, 102, fiber.StatusBadRequest},
		{"invalid bet type", betting.ErrInvalidBetType, 103, fiber.StatusBadRequest},
		{"exposure exceeded", betting.ErrExposureExceeded, 201, fiber.StatusUnprocessableEntity},
		{"insufficient funds on bet", betting.ErrInsufficientFunds, 202, fiber.StatusUnprocessableEntity},
		{"insufficient funds on withdrawal", funding.ErrInsufficientFunds, 202, fiber.StatusUnprocessableEntity},
		{"already settled", betting.ErrAlreadySettled, 301, fiber.StatusConflict},
		{"already decided", funding.ErrAlreadyDecided, 302, fiber.StatusConflict},
		{"account not found", ledger.ErrAccountNotFound, 401, fiber.StatusNotFound},
		{"account banned", ledger.ErrAccountBanned, 402, fiber.StatusForbidden},
		{"request not found", funding.ErrRequestNotFound, 403, fiber.StatusNotFound},
		{"offer not found", funding.ErrOfferNotFound, 404, fiber.StatusNotFound},
		{"invalid amount", funding.ErrInvalidAmount, 104, fiber.StatusBadRequest},
		{"concurrency conflict", ledger.ErrConcurrencyConflict, 501, fiber.StatusServiceUnavailable},
		{"wrapped sentinel", fmt.Errorf("place bet: %w", betting.ErrExposureExceeded), 201, fiber.StatusUnprocessableEntity},
		{"unknown", errors.New("pq: connection reset"), 500, fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, status, msg := classify(tt.err)
		if code != tt.wantCode || status != tt.wantStatus {
			t.Errorf("%s: classify() = (%d, %d), want (%d, %d)", tt.name, code, status, tt.wantCode, tt.wantStatus)
		}
		if msg == "" {
			t.Errorf("%s: classify() returned empty message", tt.name)
		}
	}
}

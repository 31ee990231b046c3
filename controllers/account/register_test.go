package account

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestIsDuplicateErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"translated", gorm.ErrDuplicatedKey, true},
		{"wrapped translated", fmt.Errorf("create account: %w", gorm.ErrDuplicatedKey), true},
		{"raw sqlstate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_accounts_account_code" (SQLSTATE 23505)`), true},
		{"other gorm error", gorm.ErrRecordNotFound, false},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		if got := isDuplicateErr(tt.err); got != tt.want {
			t.Errorf("%s: isDuplicateErr() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

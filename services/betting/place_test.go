package betting

import (
	"errors"
	"testing"

	"bookie/models"
)

func TestPlaceInputValidate(t *testing.T) {
	base := func() PlaceInput {
		return PlaceInput{
			AccountCode:  "u1",
			Category:     models.CategorySports,
			BetType:      models.BetTypeBack,
			Stake:        1000,
			Price:        dec("2.5"),
			MarketRef:    "m1",
			SelectionRef: "home",
		}
	}

	cases := []struct {
		name    string
		mutate  func(*PlaceInput)
		wantErr error
	}{
		{"valid", func(in *PlaceInput) {}, nil},
		{"stake below minimum", func(in *PlaceInput) { in.Stake = 99 }, ErrInvalidStake},
		{"stake at minimum", func(in *PlaceInput) { in.Stake = MinStake }, nil},
		{"stake at maximum", func(in *PlaceInput) { in.Stake = MaxStake }, nil},
		{"stake above maximum", func(in *PlaceInput) { in.Stake = MaxStake + 1 }, ErrInvalidStake},
		{"price at 1 invalid", func(in *PlaceInput) { in.Price = dec("1.0") }, ErrInvalidPrice},
		{"sports needs back or lay", func(in *PlaceInput) { in.BetType = "" }, ErrInvalidBetType},
	}

	for _, tc := range cases {
		in := base()
		tc.mutate(&in)
		err := in.Validate()
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: Validate() = %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestPlaceInputValidate_CasinoDefaultsBack(t *testing.T) {
	in := PlaceInput{
		AccountCode:  "u1",
		Category:     models.CategoryCasino,
		Stake:        500,
		Price:        dec("2.0"),
		MarketRef:    "round-9",
		SelectionRef: "red",
	}
	if err := in.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if in.BetType != models.BetTypeBack {
		t.Errorf("casino bet type = %q, want back", in.BetType)
	}
}

func TestPlaceInputValidate_UnknownCategory(t *testing.T) {
	in := PlaceInput{Category: "bingo", Stake: 1000, Price: dec("2.0")}
	if err := in.Validate(); err == nil {
		t.Error("expected error for unknown category")
	}
}

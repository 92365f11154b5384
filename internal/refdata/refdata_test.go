package refdata

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"RELIANCE-EQ", "RELIANCE"},
		{"HDFCBANK28OCT25FUT", "HDFCBANK"},
		{"M&M28OCT25FUT", "M&M"},
		{"M&M-EQ", "M&M"},
		{"BANKNIFTY", "BANKNIFTY"},
		{" infy-eq ", "INFY"},
		{"TCS", "TCS"},
	}
	for _, tc := range cases {
		if got := NormalizeSymbol(tc.in); got != tc.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUniverseSizes(t *testing.T) {
	nifty := NiftyUniverse()
	if len(nifty.Stocks) != 48 {
		t.Errorf("nifty stocks = %d, want 48", len(nifty.Stocks))
	}
	if len(nifty.Futures) != 47 {
		t.Errorf("nifty futures = %d, want 47", len(nifty.Futures))
	}

	bank := BankNiftyUniverse()
	if len(bank.Stocks) != 12 {
		t.Errorf("bank stocks = %d, want 12", len(bank.Stocks))
	}
	if len(bank.Futures) != 12 {
		t.Errorf("bank futures = %d, want 12", len(bank.Futures))
	}
}

func TestWeightFor(t *testing.T) {
	nifty := NiftyUniverse()
	if w := nifty.WeightFor("RELIANCE28OCT25FUT"); w != 9.5 {
		t.Errorf("RELIANCE weight = %v, want 9.5", w)
	}
	if w := nifty.WeightFor("UNKNOWN-EQ"); w != 0 {
		t.Errorf("unknown symbol weight = %v, want 0", w)
	}

	bank := BankNiftyUniverse()
	if w := bank.WeightFor("HDFCBANK-EQ"); w != 23.5 {
		t.Errorf("HDFCBANK weight = %v, want 23.5", w)
	}
}

func TestTokenListsMatchInstruments(t *testing.T) {
	for _, u := range Universes() {
		if len(u.StockTokens()) != len(u.Stocks) {
			t.Errorf("%s: stock token count mismatch", u.Index)
		}
		if len(u.FuturesTokens()) != len(u.Futures) {
			t.Errorf("%s: futures token count mismatch", u.Index)
		}
	}
}

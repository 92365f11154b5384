// Package refdata holds the static instrument universes tracked by the
// service: index constituents, their futures contracts, and the
// aggregation weight tables.
package refdata

import (
	"regexp"
	"strings"

	"SentiPulse/internal/domain/models"
)

// Instrument describes one tradable instrument in a universe.
type Instrument struct {
	Token   string
	Symbol  string
	Name    string
	Company string
	Weight  float64
}

// Universe is the full instrument set for one index.
type Universe struct {
	Index   models.Index
	Stocks  []Instrument
	Futures []Instrument
	Weights map[string]float64
}

// Universes returns all tracked universes in reporting order.
func Universes() []*Universe {
	return []*Universe{NiftyUniverse(), BankNiftyUniverse()}
}

// UniverseFor returns the universe for the given index.
func UniverseFor(idx models.Index) *Universe {
	if idx == models.IndexBankNifty {
		return BankNiftyUniverse()
	}
	return NiftyUniverse()
}

// StockTokens returns the NSE tokens of all constituents.
func (u *Universe) StockTokens() []string {
	tokens := make([]string, 0, len(u.Stocks))
	for _, in := range u.Stocks {
		tokens = append(tokens, in.Token)
	}
	return tokens
}

// FuturesTokens returns the NFO tokens of all constituent futures.
func (u *Universe) FuturesTokens() []string {
	tokens := make([]string, 0, len(u.Futures))
	for _, in := range u.Futures {
		tokens = append(tokens, in.Token)
	}
	return tokens
}

// WeightFor returns the aggregation weight of a normalized symbol,
// or 0 when the symbol is not part of the weight table.
func (u *Universe) WeightFor(symbol string) float64 {
	return u.Weights[NormalizeSymbol(symbol)]
}

var futuresSuffix = regexp.MustCompile(`\d{2}[A-Z]{3}\d{2}FUT$`)

// NormalizeSymbol strips the cash segment suffix ("-EQ") and the futures
// expiry suffix (e.g. "28OCT25FUT") so both instrument kinds map to the
// same underlying name.
func NormalizeSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.TrimSuffix(s, "-EQ")
	s = futuresSuffix.ReplaceAllString(s, "")
	return s
}

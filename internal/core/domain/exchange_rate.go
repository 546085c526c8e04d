package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSource tells where a rate used in a calculation came from.
type RateSource string

const (
	RateSourceIdentity RateSource = "identity" // from == to
	RateSourceLive     RateSource = "live"     // fetched during this call
	RateSourceCached   RateSource = "cached"   // fresh cache hit
	RateSourceStale    RateSource = "stale"    // expired cache, refresh failed
	RateSourceStatic   RateSource = "static"   // hardcoded fallback
)

// RateTable is a full cross-rate matrix over the supported currencies.
// Rates[A][B] is the number of units of B bought by one unit of A.
type RateTable struct {
	Base      string                                `json:"base"`
	Rates     map[string]map[string]decimal.Decimal `json:"rates"`
	FetchedAt time.Time                             `json:"fetchedAt"`
}

// RateQuote is a single pair rate together with its provenance.
type RateQuote struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Rate      decimal.Decimal `json:"rate"`
	Source    RateSource      `json:"source"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Converted decimal.Decimal `json:"converted"`
	Quote     RateQuote       `json:"quote"`
}

// RateSnapshot is a persisted copy of the base quotes of one successful fetch.
type RateSnapshot struct {
	SnapshotID string                     `json:"snapshotID"`
	Base       string                     `json:"base"`
	Quotes     map[string]decimal.Decimal `json:"quotes"`
	FetchedAt  time.Time                  `json:"fetchedAt"`
}

var staticEURQuotes = map[string]decimal.Decimal{
	CurrencyUSD: decimal.RequireFromString("1.08"),
	CurrencyGBP: decimal.RequireFromString("0.86"),
	CurrencyCHF: decimal.RequireFromString("0.97"),
}

// StaticEURQuotes returns the hardcoded EUR-based quotes used when no live or cached rate exists.
func StaticEURQuotes() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(staticEURQuotes))
	for k, v := range staticEURQuotes {
		out[k] = v
	}
	return out
}

// StaticRateTable builds the fallback cross-rate table. Its FetchedAt is the zero time.
func StaticRateTable() *RateTable {
	return NewCrossRateTable(CurrencyEUR, staticEURQuotes, time.Time{})
}

// NewCrossRateTable derives the full matrix from quotes expressed per one unit of base:
// rate[A][B] = quote[B] / quote[A]. Quotes outside the supported set, or not
// strictly positive, are ignored; the base quote is always 1.
func NewCrossRateTable(base string, quotes map[string]decimal.Decimal, fetchedAt time.Time) *RateTable {
	base = NormalizeCurrencyCode(base)
	usable := map[string]decimal.Decimal{base: decimal.NewFromInt(1)}
	for code, q := range quotes {
		code = NormalizeCurrencyCode(code)
		if code == base || !IsSupportedCurrency(code) || !q.IsPositive() {
			continue
		}
		usable[code] = q
	}

	rates := make(map[string]map[string]decimal.Decimal, len(usable))
	for from, qFrom := range usable {
		row := make(map[string]decimal.Decimal, len(usable))
		for to, qTo := range usable {
			if from == to {
				row[to] = decimal.NewFromInt(1)
				continue
			}
			row[to] = qTo.Div(qFrom)
		}
		rates[from] = row
	}

	return &RateTable{Base: base, Rates: rates, FetchedAt: fetchedAt}
}

// Rate looks up a pair. Missing or non-positive entries report false.
func (t *RateTable) Rate(from, to string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	row, ok := t.Rates[from]
	if !ok {
		return decimal.Zero, false
	}
	r, ok := row[to]
	if !ok || !r.IsPositive() {
		return decimal.Zero, false
	}
	return r, true
}

// IsFresh reports whether the table was fetched less than staleAfter before now.
func (t *RateTable) IsFresh(now time.Time, staleAfter time.Duration) bool {
	if t == nil || t.FetchedAt.IsZero() {
		return false
	}
	return now.Sub(t.FetchedAt) < staleAfter
}

// Currencies lists the codes present in the table.
func (t *RateTable) Currencies() []string {
	codes := make([]string, 0, len(t.Rates))
	for _, c := range SupportedCurrencyCodes() {
		if _, ok := t.Rates[c]; ok {
			codes = append(codes, c)
		}
	}
	return codes
}

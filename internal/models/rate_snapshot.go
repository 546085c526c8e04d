package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot represents a row of the rate_snapshots table.
type RateSnapshot struct {
	SnapshotID   string    `db:"snapshot_id"`
	BaseCurrency string    `db:"base_currency"`
	FetchedAt    time.Time `db:"fetched_at"`
}

// RateSnapshotQuote is one quote of a snapshot, in units of quote currency per base unit.
type RateSnapshotQuote struct {
	SnapshotID   string          `db:"snapshot_id"`
	CurrencyCode string          `db:"currency_code"`
	Rate         decimal.Decimal `db:"rate"`
}

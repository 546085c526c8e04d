package mapping

import (
	"sort"

	"github.com/evokeessence/evoke_backend/internal/core/domain"
	"github.com/evokeessence/evoke_backend/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelRateSnapshot splits a domain RateSnapshot into its header row and quote rows.
// Quotes are ordered by currency code so inserts are deterministic.
func ToModelRateSnapshot(d domain.RateSnapshot) (models.RateSnapshot, []models.RateSnapshotQuote) {
	header := models.RateSnapshot{
		SnapshotID:   d.SnapshotID,
		BaseCurrency: d.Base,
		FetchedAt:    d.FetchedAt,
	}
	codes := make([]string, 0, len(d.Quotes))
	for code := range d.Quotes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	quotes := make([]models.RateSnapshotQuote, 0, len(codes))
	for _, code := range codes {
		quotes = append(quotes, models.RateSnapshotQuote{
			SnapshotID:   d.SnapshotID,
			CurrencyCode: code,
			Rate:         d.Quotes[code],
		})
	}
	return header, quotes
}

// ToDomainRateSnapshot joins a snapshot header with its quote rows.
func ToDomainRateSnapshot(header models.RateSnapshot, quotes []models.RateSnapshotQuote) domain.RateSnapshot {
	byCode := make(map[string]decimal.Decimal, len(quotes))
	for _, q := range quotes {
		byCode[q.CurrencyCode] = q.Rate
	}
	return domain.RateSnapshot{
		SnapshotID: header.SnapshotID,
		Base:       header.BaseCurrency,
		Quotes:     byCode,
		FetchedAt:  header.FetchedAt,
	}
}

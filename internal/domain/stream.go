package domain

import (
	"github.com/shopspring/decimal"
)

// Frequency is the payout cadence of an income stream.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyAnnually Frequency = "annually"
)

// PeriodsPerYear returns the fixed annualization factor for the frequency and
// false for an unrecognized value.
func (f Frequency) PeriodsPerYear() (int64, bool) {
	switch f {
	case FrequencyWeekly:
		return 52, true
	case FrequencyBiweekly:
		return 26, true
	case FrequencyMonthly:
		return 12, true
	case FrequencyAnnually:
		return 1, true
	}
	return 0, false
}

// StreamType categorizes the source of an income stream.
type StreamType string

const (
	StreamTypeW2         StreamType = "w2"
	StreamTypeFreelance  StreamType = "freelance"
	StreamTypeGig        StreamType = "gig"
	StreamTypeRental     StreamType = "rental"
	StreamTypeSideHustle StreamType = "side-hustle"
	StreamTypeOther      StreamType = "other"
)

// IsValid reports whether the stream type is one of the known categories.
func (st StreamType) IsValid() bool {
	switch st {
	case StreamTypeW2, StreamTypeFreelance, StreamTypeGig, StreamTypeRental, StreamTypeSideHustle, StreamTypeOther:
		return true
	}
	return false
}

// IncomeStream represents one recurring income source in a household.
// StabilityRating is a 1..5 subjective consistency score; 5 is fully reliable.
type IncomeStream struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Amount          decimal.Decimal `json:"amount" yaml:"amount"`
	Frequency       Frequency       `json:"frequency" yaml:"frequency"`
	Type            StreamType      `json:"type" yaml:"type"`
	StabilityRating int             `json:"stability_rating" yaml:"stability_rating"`
}

// StreamSummary aggregates a collection of income streams.
type StreamSummary struct {
	TotalAnnual    decimal.Decimal                `json:"total_annual"`
	ReliableAnnual decimal.Decimal                `json:"reliable_annual"`
	ByType         map[StreamType]decimal.Decimal `json:"by_type"`
	StreamCount    int                            `json:"stream_count"`
}

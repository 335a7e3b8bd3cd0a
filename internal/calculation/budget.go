package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/internal/domain"
)

// proportionTolerance is the allowed drift when checking that budget
// proportions sum to 1.0.
var proportionTolerance = decimal.NewFromFloat(0.001)

// DefaultBudgetRules returns the 50/30/20 needs/wants/savings split.
func DefaultBudgetRules() domain.BudgetRules {
	return domain.BudgetRules{
		Needs:   decimal.NewFromFloat(0.50),
		Wants:   decimal.NewFromFloat(0.30),
		Savings: decimal.NewFromFloat(0.20),
	}
}

// DefaultStabilityWeights maps a 1..5 stability rating to the reliability
// weight applied to a stream's annualized amount. The values are tunable
// constants; the mapping must stay strictly increasing with rating 5 at 1.0.
func DefaultStabilityWeights() map[int]decimal.Decimal {
	return map[int]decimal.Decimal{
		1: decimal.NewFromFloat(0.50),
		2: decimal.NewFromFloat(0.65),
		3: decimal.NewFromFloat(0.80),
		4: decimal.NewFromFloat(0.90),
		5: decimal.NewFromFloat(1.00),
	}
}

// BudgetAllocator splits net income into fixed proportions and aggregates
// multi-stream household income.
type BudgetAllocator struct {
	Proportions      domain.BudgetRules
	StabilityWeights map[int]decimal.Decimal
	Logger           Logger
}

// NewBudgetAllocator creates an allocator from the configured rule set.
// Zero-valued proportions fall back to 50/30/20.
func NewBudgetAllocator(rules *domain.Rules, logger Logger) *BudgetAllocator {
	if logger == nil {
		logger = NopLogger{}
	}
	proportions := rules.Budget
	if proportions.Needs.IsZero() && proportions.Wants.IsZero() && proportions.Savings.IsZero() {
		proportions = DefaultBudgetRules()
	}
	weights := rules.StabilityWeights
	if len(weights) == 0 {
		weights = DefaultStabilityWeights()
	}
	return &BudgetAllocator{
		Proportions:      proportions,
		StabilityWeights: weights,
		Logger:           logger,
	}
}

// ValidateProportions checks that the three proportions sum to 1.0 within
// tolerance and that none is negative.
func ValidateProportions(p domain.BudgetRules) error {
	if p.Needs.IsNegative() || p.Wants.IsNegative() || p.Savings.IsNegative() {
		return fmt.Errorf("%w: budget proportions cannot be negative", domain.ErrInvalidConfiguration)
	}
	sum := p.Needs.Add(p.Wants).Add(p.Savings)
	if sum.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(proportionTolerance) {
		return fmt.Errorf("%w: budget proportions sum to %s, expected 1.0",
			domain.ErrInvalidConfiguration, sum.String())
	}
	return nil
}

// Allocate splits a net monthly figure into needs/wants/savings. Savings is
// computed as the remainder so the three parts always sum to the input.
func (ba *BudgetAllocator) Allocate(netMonthlyIncome decimal.Decimal) (*domain.BudgetAllocation, error) {
	if netMonthlyIncome.IsNegative() {
		return nil, fmt.Errorf("%w: net monthly income cannot be negative", domain.ErrInvalidInput)
	}
	if err := ValidateProportions(ba.Proportions); err != nil {
		return nil, err
	}

	needs := netMonthlyIncome.Mul(ba.Proportions.Needs)
	wants := netMonthlyIncome.Mul(ba.Proportions.Wants)
	savings := netMonthlyIncome.Sub(needs).Sub(wants)

	return &domain.BudgetAllocation{
		NetMonthlyIncome: netMonthlyIncome,
		Needs:            needs,
		Wants:            wants,
		Savings:          savings,
	}, nil
}

// AnnualizeStream converts a stream's per-period amount to an annual figure
// using the fixed period count for its frequency.
func AnnualizeStream(stream domain.IncomeStream) (decimal.Decimal, error) {
	periods, ok := stream.Frequency.PeriodsPerYear()
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: unknown frequency %q", domain.ErrInvalidInput, stream.Frequency)
	}
	return stream.Amount.Mul(decimal.NewFromInt(periods)), nil
}

// AggregateStreams computes the combined and reliability-weighted annual
// figures for a household's income streams, plus a per-type breakdown.
// Insertion order of the collection does not affect the result.
func (ba *BudgetAllocator) AggregateStreams(streams []domain.IncomeStream) (*domain.StreamSummary, error) {
	summary := &domain.StreamSummary{
		TotalAnnual:    decimal.Zero,
		ReliableAnnual: decimal.Zero,
		ByType:         make(map[domain.StreamType]decimal.Decimal),
		StreamCount:    len(streams),
	}

	for _, stream := range streams {
		if stream.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: stream %q has negative amount", domain.ErrInvalidInput, stream.Name)
		}
		weight, ok := ba.StabilityWeights[stream.StabilityRating]
		if !ok {
			return nil, fmt.Errorf("%w: stream %q has stability rating %d, expected 1..5",
				domain.ErrInvalidInput, stream.Name, stream.StabilityRating)
		}
		annual, err := AnnualizeStream(stream)
		if err != nil {
			return nil, err
		}

		summary.TotalAnnual = summary.TotalAnnual.Add(annual)
		summary.ReliableAnnual = summary.ReliableAnnual.Add(annual.Mul(weight))
		summary.ByType[stream.Type] = summary.ByType[stream.Type].Add(annual)
	}

	ba.Logger.Debugf("aggregated %d streams: total %s, reliable %s",
		len(streams), summary.TotalAnnual.StringFixed(2), summary.ReliableAnnual.StringFixed(2))

	return summary, nil
}

package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/internal/domain"
)

// DefaultInflationHorizons are the year offsets projected when the caller
// does not supply any.
func DefaultInflationHorizons() []int {
	return []int{1, 3, 5, 10}
}

// InflationProjector compounds purchasing-power decay over a set of horizons.
type InflationProjector struct {
	Horizons []int
	Logger   Logger
}

// NewInflationProjector creates a projector from the configured rule set.
func NewInflationProjector(rules *domain.Rules, logger Logger) *InflationProjector {
	if logger == nil {
		logger = NopLogger{}
	}
	horizons := rules.Inflation.Horizons
	if len(horizons) == 0 {
		horizons = DefaultInflationHorizons()
	}
	return &InflationProjector{Horizons: horizons, Logger: logger}
}

// Project compounds the decay curve for each year offset. A zero present
// value short-circuits to an empty result rather than producing NaN ratios.
func (ipr *InflationProjector) Project(presentValue, annualRatePercent decimal.Decimal, yearOffsets []int) ([]domain.InflationPoint, error) {
	if presentValue.IsNegative() {
		return nil, fmt.Errorf("%w: present value cannot be negative", domain.ErrInvalidInput)
	}
	if annualRatePercent.IsNegative() {
		return nil, fmt.Errorf("%w: inflation rate cannot be negative", domain.ErrInvalidInput)
	}
	if presentValue.IsZero() {
		return nil, nil
	}
	if len(yearOffsets) == 0 {
		yearOffsets = ipr.Horizons
	}

	rate := annualRatePercent.Div(decimal.NewFromInt(100))
	base := decimal.NewFromInt(1).Add(rate)
	hundred := decimal.NewFromInt(100)

	points := make([]domain.InflationPoint, 0, len(yearOffsets))
	for _, offset := range yearOffsets {
		if offset < 0 {
			return nil, fmt.Errorf("%w: year offset cannot be negative", domain.ErrInvalidInput)
		}
		factor := base.Pow(decimal.NewFromInt(int64(offset)))
		purchasingPower := presentValue.Div(factor)
		percentLoss := decimal.NewFromInt(1).Sub(purchasingPower.Div(presentValue)).Mul(hundred)
		raiseNeeded := factor.Sub(decimal.NewFromInt(1)).Mul(hundred)

		points = append(points, domain.InflationPoint{
			YearOffset:      offset,
			PurchasingPower: purchasingPower,
			PercentLoss:     percentLoss,
			RaiseNeeded:     raiseNeeded,
		})
	}
	return points, nil
}

package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/internal/domain"
	"github.com/finlens/finance-calculator/pkg/dateutil"
)

// Annualization always uses 365 days regardless of leap year. The published
// calculators behave this way and downstream figures are calibrated to it.
var daysPerYear = decimal.NewFromInt(365)

// NormalizePeriod computes the worked-day count between startDate and
// asOfDate, clamping the effective start to January 1 of asOfDate's year.
// Both endpoints count, so a single day of work yields 1.
func NormalizePeriod(startDate, asOfDate time.Time) (int, error) {
	if dateutil.DateOnly(asOfDate).Before(dateutil.DateOnly(startDate)) {
		return 0, fmt.Errorf("%w: as-of date %s precedes start date %s",
			domain.ErrInvalidRange, asOfDate.Format("2006-01-02"), startDate.Format("2006-01-02"))
	}
	effectiveStart := dateutil.ClampToYearOf(startDate, asOfDate)
	return dateutil.DaysInclusive(effectiveStart, asOfDate), nil
}

// IncomeProjector extrapolates year-to-date income to daily, weekly, monthly,
// and annual rates.
type IncomeProjector struct {
	Logger Logger
}

// NewIncomeProjector creates a new income projector
func NewIncomeProjector(logger Logger) *IncomeProjector {
	if logger == nil {
		logger = NopLogger{}
	}
	return &IncomeProjector{Logger: logger}
}

// Project normalizes the date range and derives the projection rates from the
// year-to-date gross figure.
func (ip *IncomeProjector) Project(input domain.ProjectionInput) (*domain.ProjectionResult, error) {
	if input.YearToDateIncome.IsNegative() {
		return nil, fmt.Errorf("%w: year-to-date income cannot be negative", domain.ErrInvalidInput)
	}

	daysWorked, err := NormalizePeriod(input.StartDate, input.AsOfDate)
	if err != nil {
		return nil, err
	}

	dailyRate := input.YearToDateIncome.Div(decimal.NewFromInt(int64(daysWorked)))
	annualRate := dailyRate.Mul(daysPerYear)

	result := &domain.ProjectionResult{
		DaysWorked:  daysWorked,
		DailyRate:   dailyRate,
		WeeklyRate:  dailyRate.Mul(decimal.NewFromInt(7)),
		MonthlyRate: annualRate.Div(decimal.NewFromInt(12)),
		AnnualRate:  annualRate,
	}

	ip.Logger.Debugf("projected income: %d days worked, daily %s, annual %s",
		daysWorked, dailyRate.StringFixed(2), annualRate.StringFixed(2))

	return result, nil
}

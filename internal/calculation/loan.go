package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/internal/domain"
)

// LoanAmortizer generates fixed-payment amortization schedules.
type LoanAmortizer struct {
	Logger Logger
}

// NewLoanAmortizer creates a new loan amortizer
func NewLoanAmortizer(logger Logger) *LoanAmortizer {
	if logger == nil {
		logger = NopLogger{}
	}
	return &LoanAmortizer{Logger: logger}
}

// MonthlyPayment computes the fixed payment from the standard annuity formula.
// A zero rate takes the explicit principal/term branch so the formula's
// denominator never reaches zero.
func MonthlyPayment(params domain.LoanParameters) decimal.Decimal {
	termMonths := decimal.NewFromInt(int64(params.TermMonths))
	monthlyRate := params.AnnualRatePercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
	if monthlyRate.IsZero() {
		return params.Principal.Div(termMonths)
	}
	growth := decimal.NewFromInt(1).Add(monthlyRate).Pow(termMonths)
	return params.Principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
}

// Amortize produces the full period-by-period schedule for a loan. The
// principal portion of each payment is clamped to the remaining balance, so
// the final balance lands exactly on zero and the schedule may end before
// the stated term.
func (la *LoanAmortizer) Amortize(params domain.LoanParameters) (*domain.AmortizationResult, error) {
	if params.Principal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: principal must be positive", domain.ErrInvalidInput)
	}
	if params.TermMonths <= 0 {
		return nil, fmt.Errorf("%w: term must be a positive number of months", domain.ErrInvalidInput)
	}
	if params.AnnualRatePercent.IsNegative() {
		return nil, fmt.Errorf("%w: annual rate cannot be negative", domain.ErrInvalidInput)
	}

	monthlyRate := params.AnnualRatePercent.Div(decimal.NewFromInt(100)).Div(decimal.NewFromInt(12))
	payment := MonthlyPayment(params)

	schedule := make([]domain.AmortizationEntry, 0, params.TermMonths)
	balance := params.Principal
	totalInterest := decimal.Zero

	for period := 1; period <= params.TermMonths; period++ {
		interest := balance.Mul(monthlyRate)
		principalPortion := decimal.Min(payment.Sub(interest), balance)
		balance = balance.Sub(principalPortion)
		totalInterest = totalInterest.Add(interest)

		schedule = append(schedule, domain.AmortizationEntry{
			Period:           period,
			InterestPortion:  interest,
			PrincipalPortion: principalPortion,
			RemainingBalance: balance,
		})

		if balance.IsZero() {
			break
		}
	}

	la.Logger.Debugf("amortized %s over %d months at %s%%: payment %s, total interest %s",
		params.Principal.StringFixed(2), params.TermMonths, params.AnnualRatePercent.String(),
		payment.StringFixed(2), totalInterest.StringFixed(2))

	return &domain.AmortizationResult{
		Parameters:     params,
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		TotalPaid:      params.Principal.Add(totalInterest),
		Schedule:       schedule,
	}, nil
}

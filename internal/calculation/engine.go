package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finlens/finance-calculator/internal/domain"
)

// Engine orchestrates all financial calculations. Every operation is a pure
// function of its inputs and the injected rule set; the engine holds no
// mutable state, so a single instance can serve concurrent callers.
type Engine struct {
	Rules         *domain.Rules
	Projector     *IncomeProjector
	TaxEstimator  *TaxEstimator
	Allocator     *BudgetAllocator
	Amortizer     *LoanAmortizer
	Affordability *AffordabilityEvaluator
	Inflation     *InflationProjector
	Logger        Logger
}

// NewEngine creates an engine with the built-in default rules.
func NewEngine() *Engine {
	return NewEngineWithRules(&domain.Rules{}, nil)
}

// NewEngineWithRules creates an engine from a configured rule set. A nil
// logger falls back to the no-op logger.
func NewEngineWithRules(rules *domain.Rules, logger Logger) *Engine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Engine{
		Rules:         rules,
		Projector:     NewIncomeProjector(logger),
		TaxEstimator:  NewTaxEstimator(rules, logger),
		Allocator:     NewBudgetAllocator(rules, logger),
		Amortizer:     NewLoanAmortizer(logger),
		Affordability: NewAffordabilityEvaluator(rules, logger),
		Inflation:     NewInflationProjector(rules, logger),
		Logger:        logger,
	}
}

// SetLogger sets the logger for the engine and all component calculators.
// Passing nil restores the no-op logger.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	e.Logger = l
	e.Projector.Logger = l
	e.TaxEstimator.Logger = l
	e.Allocator.Logger = l
	e.Amortizer.Logger = l
	e.Affordability.Logger = l
	e.Inflation.Logger = l
}

// ProjectIncome extrapolates a year-to-date gross figure to annualized rates.
func (e *Engine) ProjectIncome(startDate, asOfDate time.Time, ytdIncome decimal.Decimal) (*domain.ProjectionResult, error) {
	return e.Projector.Project(domain.ProjectionInput{
		StartDate:        startDate,
		AsOfDate:         asOfDate,
		YearToDateIncome: ytdIncome,
	})
}

// EstimateTaxes computes the withholding estimate for an annual gross figure.
func (e *Engine) EstimateTaxes(grossAnnualIncome decimal.Decimal) (*domain.TaxEstimate, error) {
	return e.TaxEstimator.Estimate(grossAnnualIncome)
}

// AllocateBudget splits a net monthly figure into needs/wants/savings.
func (e *Engine) AllocateBudget(netMonthlyIncome decimal.Decimal) (*domain.BudgetAllocation, error) {
	return e.Allocator.Allocate(netMonthlyIncome)
}

// AggregateIncomeStreams aggregates a household's income streams.
func (e *Engine) AggregateIncomeStreams(streams []domain.IncomeStream) (*domain.StreamSummary, error) {
	return e.Allocator.AggregateStreams(streams)
}

// AmortizeLoan computes the fixed-payment amortization schedule for a loan.
func (e *Engine) AmortizeLoan(params domain.LoanParameters) (*domain.AmortizationResult, error) {
	return e.Amortizer.Amortize(params)
}

// EvaluateAffordability applies a ratio threshold to an income figure.
func (e *Engine) EvaluateAffordability(incomeFigure, ratio decimal.Decimal, candidateAmount *decimal.Decimal) (*domain.AffordabilityResult, error) {
	return e.Affordability.Evaluate(incomeFigure, ratio, candidateAmount)
}

// ProjectInflationImpact compounds purchasing-power decay over year offsets.
// An empty offsets slice uses the configured horizons.
func (e *Engine) ProjectInflationImpact(presentValue, ratePercent decimal.Decimal, yearOffsets []int) ([]domain.InflationPoint, error) {
	return e.Inflation.Project(presentValue, ratePercent, yearOffsets)
}

// RunPaycheck composes the full pipeline for one paycheck input: normalize the
// period, project the annual rate, estimate withholding on it, and allocate
// the resulting net monthly income.
func (e *Engine) RunPaycheck(startDate, asOfDate time.Time, ytdIncome decimal.Decimal) (*domain.PaycheckSummary, error) {
	projection, err := e.ProjectIncome(startDate, asOfDate, ytdIncome)
	if err != nil {
		return nil, err
	}
	taxes, err := e.EstimateTaxes(projection.AnnualRate)
	if err != nil {
		return nil, err
	}
	budget, err := e.AllocateBudget(taxes.NetIncome.Div(decimal.NewFromInt(12)))
	if err != nil {
		return nil, err
	}
	return &domain.PaycheckSummary{
		Projection: *projection,
		Taxes:      *taxes,
		Budget:     *budget,
	}, nil
}

package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlens/finance-calculator/internal/domain"
)

func TestEvaluateRentRule(t *testing.T) {
	evaluator := NewAffordabilityEvaluator(&domain.Rules{}, nil)

	// $6,000 gross monthly at the 30% rent rule caps rent at $1,800.
	result, err := evaluator.Evaluate(decimal.NewFromInt(6000), decimal.NewFromFloat(0.30), nil)
	require.NoError(t, err)

	assert.True(t, result.MaxAffordable.Equal(decimal.NewFromInt(1800)),
		"expected 1800, got %s", result.MaxAffordable)
	assert.Nil(t, result.IsAffordable, "no verdict without a candidate amount")
}

func TestEvaluateWithCandidate(t *testing.T) {
	evaluator := NewAffordabilityEvaluator(&domain.Rules{}, nil)

	tests := []struct {
		name      string
		candidate int64
		expectOK  bool
	}{
		{"under the cap", 1500, true},
		{"exactly at the cap", 1800, true},
		{"over the cap", 1801, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := decimal.NewFromInt(tt.candidate)
			result, err := evaluator.Evaluate(decimal.NewFromInt(6000), decimal.NewFromFloat(0.30), &candidate)
			require.NoError(t, err)
			require.NotNil(t, result.IsAffordable)
			assert.Equal(t, tt.expectOK, *result.IsAffordable)
		})
	}
}

func TestEvaluateNamedRules(t *testing.T) {
	evaluator := NewAffordabilityEvaluator(&domain.Rules{}, nil)
	income := decimal.NewFromInt(5000)

	tests := []struct {
		rule     string
		expected int64
	}{
		{RuleRent, 1500},            // 30%
		{RuleAutoPayment, 600},      // 12%
		{RuleMortgageFront, 1400},   // 28%
		{RuleMortgageBackEnd, 1800}, // 36%
	}

	for _, tt := range tests {
		t.Run(tt.rule, func(t *testing.T) {
			result, err := evaluator.EvaluateRule(tt.rule, income, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.rule, result.RuleName)
			assert.True(t, result.MaxAffordable.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, result.MaxAffordable)
		})
	}
}

func TestEvaluateUnknownRule(t *testing.T) {
	evaluator := NewAffordabilityEvaluator(&domain.Rules{}, nil)

	_, err := evaluator.EvaluateRule("yacht", decimal.NewFromInt(5000), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEvaluateRejectsNegativeInputs(t *testing.T) {
	evaluator := NewAffordabilityEvaluator(&domain.Rules{}, nil)

	_, err := evaluator.Evaluate(decimal.NewFromInt(-1), decimal.NewFromFloat(0.30), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = evaluator.Evaluate(decimal.NewFromInt(1000), decimal.NewFromFloat(-0.30), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEvaluateZeroIncome(t *testing.T) {
	evaluator := NewAffordabilityEvaluator(&domain.Rules{}, nil)

	candidate := decimal.NewFromInt(100)
	result, err := evaluator.Evaluate(decimal.Zero, decimal.NewFromFloat(0.30), &candidate)
	require.NoError(t, err)
	assert.True(t, result.MaxAffordable.IsZero())
	require.NotNil(t, result.IsAffordable)
	assert.False(t, *result.IsAffordable)
}

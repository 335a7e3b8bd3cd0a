package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlens/finance-calculator/internal/domain"
)

func TestAllocateDefault503020(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{}, nil)

	allocation, err := allocator.Allocate(decimal.NewFromInt(4000))
	require.NoError(t, err)

	assert.True(t, allocation.Needs.Equal(decimal.NewFromInt(2000)), "needs: got %s", allocation.Needs)
	assert.True(t, allocation.Wants.Equal(decimal.NewFromInt(1200)), "wants: got %s", allocation.Wants)
	assert.True(t, allocation.Savings.Equal(decimal.NewFromInt(800)), "savings: got %s", allocation.Savings)
}

func TestAllocatePartsAlwaysSumToInput(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{}, nil)

	inputs := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(0.01),
		decimal.NewFromFloat(3333.33),
		decimal.NewFromFloat(123456.78),
	}
	for _, net := range inputs {
		allocation, err := allocator.Allocate(net)
		require.NoError(t, err)
		sum := allocation.Needs.Add(allocation.Wants).Add(allocation.Savings)
		assert.True(t, sum.Equal(net), "parts sum %s, expected %s", sum, net)
	}
}

func TestAllocateCustomProportions(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{
		Budget: domain.BudgetRules{
			Needs:   decimal.NewFromFloat(0.60),
			Wants:   decimal.NewFromFloat(0.20),
			Savings: decimal.NewFromFloat(0.20),
		},
	}, nil)

	allocation, err := allocator.Allocate(decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.True(t, allocation.Needs.Equal(decimal.NewFromInt(3000)))
	assert.True(t, allocation.Wants.Equal(decimal.NewFromInt(1000)))
	assert.True(t, allocation.Savings.Equal(decimal.NewFromInt(1000)))
}

func TestAllocateRejectsBadProportions(t *testing.T) {
	tests := []struct {
		name  string
		rules domain.BudgetRules
	}{
		{"sum above one", domain.BudgetRules{
			Needs:   decimal.NewFromFloat(0.50),
			Wants:   decimal.NewFromFloat(0.40),
			Savings: decimal.NewFromFloat(0.20),
		}},
		{"sum below one", domain.BudgetRules{
			Needs:   decimal.NewFromFloat(0.50),
			Wants:   decimal.NewFromFloat(0.30),
			Savings: decimal.NewFromFloat(0.10),
		}},
		{"negative proportion", domain.BudgetRules{
			Needs:   decimal.NewFromFloat(1.20),
			Wants:   decimal.NewFromFloat(-0.40),
			Savings: decimal.NewFromFloat(0.20),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allocator := NewBudgetAllocator(&domain.Rules{Budget: tt.rules}, nil)
			_, err := allocator.Allocate(decimal.NewFromInt(1000))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
		})
	}
}

func TestAllocateToleratesTinyProportionDrift(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{
		Budget: domain.BudgetRules{
			Needs:   decimal.NewFromFloat(0.5),
			Wants:   decimal.NewFromFloat(0.3),
			Savings: decimal.NewFromFloat(0.2005),
		},
	}, nil)

	_, err := allocator.Allocate(decimal.NewFromInt(1000))
	assert.NoError(t, err)
}

func TestAllocateRejectsNegativeIncome(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{}, nil)
	_, err := allocator.Allocate(decimal.NewFromInt(-500))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAggregateStreams(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{}, nil)

	streams := []domain.IncomeStream{
		{ID: "salary", Name: "Day job", Amount: decimal.NewFromInt(5000), Frequency: domain.FrequencyMonthly, Type: domain.StreamTypeW2, StabilityRating: 5},
		{ID: "gig", Name: "Weekend gigs", Amount: decimal.NewFromInt(1000), Frequency: domain.FrequencyMonthly, Type: domain.StreamTypeGig, StabilityRating: 2},
	}

	summary, err := allocator.AggregateStreams(streams)
	require.NoError(t, err)

	assert.True(t, summary.TotalAnnual.Equal(decimal.NewFromInt(72000)),
		"total annual: expected 72000, got %s", summary.TotalAnnual)

	// 60000*1.0 + 12000*0.65 = 67800 with the default weights.
	assert.True(t, summary.ReliableAnnual.Equal(decimal.NewFromInt(67800)),
		"reliable annual: expected 67800, got %s", summary.ReliableAnnual)
	assert.True(t, summary.ReliableAnnual.LessThan(summary.TotalAnnual),
		"reliable must be strictly less than total when a sub-5 rating is present")

	assert.True(t, summary.ByType[domain.StreamTypeW2].Equal(decimal.NewFromInt(60000)))
	assert.True(t, summary.ByType[domain.StreamTypeGig].Equal(decimal.NewFromInt(12000)))
	assert.Equal(t, 2, summary.StreamCount)
}

func TestAggregateStreamsOrderIndependent(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{}, nil)

	streams := []domain.IncomeStream{
		{ID: "a", Amount: decimal.NewFromInt(800), Frequency: domain.FrequencyWeekly, Type: domain.StreamTypeW2, StabilityRating: 4},
		{ID: "b", Amount: decimal.NewFromInt(1200), Frequency: domain.FrequencyBiweekly, Type: domain.StreamTypeFreelance, StabilityRating: 3},
		{ID: "c", Amount: decimal.NewFromInt(9000), Frequency: domain.FrequencyAnnually, Type: domain.StreamTypeRental, StabilityRating: 1},
	}
	reversed := []domain.IncomeStream{streams[2], streams[1], streams[0]}

	forward, err := allocator.AggregateStreams(streams)
	require.NoError(t, err)
	backward, err := allocator.AggregateStreams(reversed)
	require.NoError(t, err)

	assert.True(t, forward.TotalAnnual.Equal(backward.TotalAnnual))
	assert.True(t, forward.ReliableAnnual.Equal(backward.ReliableAnnual))
}

func TestAnnualizeStreamFrequencies(t *testing.T) {
	tests := []struct {
		frequency domain.Frequency
		amount    int64
		expected  int64
	}{
		{domain.FrequencyWeekly, 500, 26000},
		{domain.FrequencyBiweekly, 1000, 26000},
		{domain.FrequencyMonthly, 2000, 24000},
		{domain.FrequencyAnnually, 50000, 50000},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			annual, err := AnnualizeStream(domain.IncomeStream{
				Amount:    decimal.NewFromInt(tt.amount),
				Frequency: tt.frequency,
			})
			require.NoError(t, err)
			assert.True(t, annual.Equal(decimal.NewFromInt(tt.expected)),
				"expected %d, got %s", tt.expected, annual)
		})
	}
}

func TestAggregateStreamsRejectsBadInput(t *testing.T) {
	allocator := NewBudgetAllocator(&domain.Rules{}, nil)

	t.Run("unknown frequency", func(t *testing.T) {
		_, err := allocator.AggregateStreams([]domain.IncomeStream{
			{ID: "x", Amount: decimal.NewFromInt(100), Frequency: "quarterly", StabilityRating: 3},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rating out of range", func(t *testing.T) {
		_, err := allocator.AggregateStreams([]domain.IncomeStream{
			{ID: "x", Amount: decimal.NewFromInt(100), Frequency: domain.FrequencyMonthly, StabilityRating: 6},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := allocator.AggregateStreams([]domain.IncomeStream{
			{ID: "x", Amount: decimal.NewFromInt(-100), Frequency: domain.FrequencyMonthly, StabilityRating: 3},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestDefaultStabilityWeightsMonotonic(t *testing.T) {
	weights := DefaultStabilityWeights()
	previous := decimal.Zero
	for rating := 1; rating <= 5; rating++ {
		weight := weights[rating]
		assert.True(t, weight.GreaterThan(previous), "weight must increase with rating")
		assert.True(t, weight.LessThanOrEqual(decimal.NewFromInt(1)))
		previous = weight
	}
	assert.True(t, weights[5].Equal(decimal.NewFromInt(1)), "rating 5 must map to 1.0")
}

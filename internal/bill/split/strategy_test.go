package split

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_Create(t *testing.T) {
	f := NewSplitStrategyFactory()
	allocation := Allocation{0.7, 0.3}

	equal, err := f.Create(SplitTypeEqual, 2, allocation)
	require.NoError(t, err)
	assert.Equal(t, SplitTypeEqual, equal.Type())

	deal, err := f.Create(SplitTypeDeal, 2, allocation)
	require.NoError(t, err)
	assert.Equal(t, SplitTypeDeal, deal.Type())

	_, err = f.Create(SplitType("EXACT"), 2, allocation)
	assert.EqualError(t, err, "unknown split type: EXACT")
}

func TestEqualStrategy_Calculate(t *testing.T) {
	s := &EqualStrategy{Roommates: 3}

	shares, err := s.Calculate(90)
	require.NoError(t, err)
	assert.Equal(t, []float64{30, 30, 30}, shares)

	shares, err = s.Calculate(-12)
	require.NoError(t, err)
	assert.Equal(t, []float64{-4, -4, -4}, shares)
}

func TestEqualStrategy_Validate(t *testing.T) {
	assert.ErrorIs(t, (&EqualStrategy{}).Validate(10), ErrNoRoommates)
	assert.ErrorIs(t, (&EqualStrategy{Roommates: 2}).Validate(math.NaN()), ErrNotANumber)
	assert.ErrorIs(t, (&EqualStrategy{Roommates: 2}).Validate(math.Inf(1)), ErrNotANumber)
}

func TestDealStrategy_Calculate(t *testing.T) {
	s := &DealStrategy{Allocation: Allocation{0.5, 0.25, 0.25}}

	shares, err := s.Calculate(200)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 50, 50}, shares)
	assert.InDelta(t, 200, Sum(shares), 1e-9)
}

func TestDealStrategy_Validate(t *testing.T) {
	assert.ErrorIs(t, (&DealStrategy{}).Validate(10), ErrEmptyDeal)
	assert.NoError(t, (&DealStrategy{Allocation: Allocation{1}}).Validate(0))
}

func TestRoundToTwoDecimals(t *testing.T) {
	assert.Equal(t, 10.13, RoundToTwoDecimals(10.126))
	assert.Equal(t, -3.33, RoundToTwoDecimals(-10.0/3))
}

package split

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evenDeal(ratios, roommates int) []float64 {
	deal := make([]float64, ratios)
	for i := range deal {
		deal[i] = 1.0 / float64(roommates)
	}
	return deal
}

func TestDealValidator_FullDealReturnedUnchanged(t *testing.T) {
	v := NewDealValidator(DefaultMaxRoommates)

	for n := MinRoommates; n <= DefaultMaxRoommates; n++ {
		deal := evenDeal(n, n)
		allocation, err := v.Validate(n, deal)
		require.NoError(t, err, "roommates=%d", n)
		assert.Equal(t, Allocation(deal), allocation)
	}
}

func TestDealValidator_AutoFill(t *testing.T) {
	v := NewDealValidator(DefaultMaxRoommates)

	for n := MinRoommates; n <= DefaultMaxRoommates; n++ {
		allocation, err := v.Validate(n, evenDeal(n-1, n))
		require.NoError(t, err, "roommates=%d", n)
		assert.Len(t, allocation, n)
		assert.True(t, roundsToOne(allocation.Sum()))
		assert.InDelta(t, 1.0/float64(n), allocation[n-1], 1e-9)
	}
}

func TestDealValidator_AutoFillCompletesSecondShare(t *testing.T) {
	v := NewDealValidator(0)

	allocation, err := v.Validate(2, []float64{0.6})
	require.NoError(t, err)
	require.Len(t, allocation, 2)
	assert.Equal(t, 0.6, allocation[0])
	assert.InDelta(t, 0.4, allocation[1], 1e-9)
}

func TestDealValidator_DoesNotMutateInput(t *testing.T) {
	v := NewDealValidator(0)
	deal := make([]float64, 1, 4)
	deal[0] = 0.25

	allocation, err := v.Validate(2, deal)
	require.NoError(t, err)

	allocation[0] = 0.9
	assert.Equal(t, []float64{0.25}, deal)
	assert.Equal(t, 0.0, deal[:2][1])
}

func TestDealValidator_Errors(t *testing.T) {
	v := NewDealValidator(DefaultMaxRoommates)

	testCases := []struct {
		name      string
		roommates int
		deal      []float64
		sentinel  error
		contains  string
	}{
		{"too few roommates", 1, []float64{1.0}, ErrTooFewRoommates, "at least 2"},
		{"too many roommates", 11, evenDeal(11, 11), ErrTooManyRoommates, "maximum allowed (10)"},
		{"sum too high", 2, []float64{0.5, 0.7}, ErrDealSum, "add up to"},
		{"sum too low", 3, []float64{0.3, 0.3, 0.2}, ErrDealSum, "must add up to 1.0"},
		{"sum just below tolerance", 2, []float64{0.5, 0.45}, ErrDealSum, "must add up to 1.0"},
		{"auto-fill overflow", 3, []float64{0.5, 0.5}, ErrDealOverflow, "too high"},
		{"auto-fill exactly one", 2, []float64{1.0}, ErrDealOverflow, "too high"},
		{"too short", 4, []float64{0.5, 0.5}, ErrDealLength, "do not match"},
		{"too long", 2, []float64{0.25, 0.25, 0.5}, ErrDealLength, "do not match"},
		{"empty deal", 2, nil, ErrDealLength, "do not match"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			allocation, err := v.Validate(tc.roommates, tc.deal)
			require.Error(t, err)
			assert.Nil(t, allocation)
			assert.ErrorIs(t, err, tc.sentinel)
			assert.Contains(t, err.Error(), tc.contains)

			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}

func TestDealValidator_LengthMismatchForAllCounts(t *testing.T) {
	v := NewDealValidator(DefaultMaxRoommates)

	for n := MinRoommates; n <= DefaultMaxRoommates; n++ {
		for _, length := range []int{n - 2, n + 1, n + 3} {
			if length < 0 {
				continue
			}
			_, err := v.Validate(n, evenDeal(length, n))
			assert.ErrorIs(t, err, ErrDealLength, "roommates=%d length=%d", n, length)
		}
	}
}

func TestDealValidator_ShiftedSumsRejected(t *testing.T) {
	v := NewDealValidator(DefaultMaxRoommates)

	for n := MinRoommates; n <= DefaultMaxRoommates; n++ {
		higher := evenDeal(n, n)
		higher[n-1] += 0.1
		_, err := v.Validate(n, higher)
		assert.ErrorIs(t, err, ErrDealSum, "roommates=%d", n)

		lower := evenDeal(n, n)
		lower[n-1] -= 0.1
		_, err = v.Validate(n, lower)
		assert.ErrorIs(t, err, ErrDealSum, "roommates=%d", n)

		doubled := evenDeal(n-1, n)
		doubled[n-2] *= 2
		_, err = v.Validate(n, doubled)
		assert.ErrorIs(t, err, ErrDealOverflow, "roommates=%d", n)
	}
}

func TestDealValidator_OneDecimalTolerance(t *testing.T) {
	v := NewDealValidator(0)

	for _, deal := range [][]float64{{0.5, 0.46}, {0.5, 0.549}, {0.25, 0.75}} {
		allocation, err := v.Validate(2, deal)
		require.NoError(t, err, "deal=%v", deal)
		assert.Equal(t, Allocation(deal), allocation)
	}

	_, err := v.Validate(2, []float64{0.5, 0.45})
	assert.ErrorIs(t, err, ErrDealSum)
}

func TestDealValidator_CustomMaximum(t *testing.T) {
	v := NewDealValidator(3)
	assert.Equal(t, 3, v.MaxRoommates())

	_, err := v.Validate(4, evenDeal(4, 4))
	assert.ErrorIs(t, err, ErrTooManyRoommates)

	_, err = v.Validate(3, evenDeal(2, 3))
	assert.NoError(t, err)
}

package split

import (
	"errors"
	"fmt"
)

const (
	// MinRoommates is the smallest household worth splitting a bill for
	MinRoommates = 2

	// DefaultMaxRoommates caps the roommate count unless configured otherwise
	DefaultMaxRoommates = 10

	// AutoFillCeiling is the highest partial deal sum that may be auto-filled.
	// Product decision: the filled-in roommate always keeps at least 0.01.
	AutoFillCeiling = 0.99
)

var (
	ErrTooFewRoommates  = errors.New("too few roommates")
	ErrTooManyRoommates = errors.New("too many roommates")
	ErrDealSum          = errors.New("deal must add up to 1.0")
	ErrDealOverflow     = errors.New("deal sum too high to auto-fill")
	ErrDealLength       = errors.New("roommate count and deal length do not match")
)

// Allocation holds one ratio per roommate, summing to 1.0
type Allocation []float64

// Sum returns the total of all ratios
func (a Allocation) Sum() float64 {
	return Sum(a)
}

// ConfigurationError reports a roommate count or deal that cannot be used.
// Err is one of the sentinel errors above.
type ConfigurationError struct {
	Err    error
	Detail string
}

func (e *ConfigurationError) Error() string {
	return e.Detail
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configError(err error, format string, args ...any) error {
	return &ConfigurationError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// DealValidator checks a roommate count against a deal and completes the deal
// when exactly one ratio is missing.
type DealValidator struct {
	maxRoommates int
}

// NewDealValidator creates a validator; maxRoommates <= 0 selects DefaultMaxRoommates
func NewDealValidator(maxRoommates int) *DealValidator {
	if maxRoommates <= 0 {
		maxRoommates = DefaultMaxRoommates
	}
	return &DealValidator{maxRoommates: maxRoommates}
}

// MaxRoommates returns the configured upper bound
func (v *DealValidator) MaxRoommates() int {
	return v.maxRoommates
}

// Validate returns the allocation for roommates. A full-length deal must round
// to 1.0 at one decimal and is returned unchanged. A deal one ratio short is
// completed with 1.0 - sum(deal). The input slice is never modified.
func (v *DealValidator) Validate(roommates int, deal []float64) (Allocation, error) {
	if roommates < MinRoommates {
		return nil, configError(ErrTooFewRoommates,
			"roommates is (%d), we need at least %d", roommates, MinRoommates)
	}
	if roommates > v.maxRoommates {
		return nil, configError(ErrTooManyRoommates,
			"roommates (%d) bigger than maximum allowed (%d)", roommates, v.maxRoommates)
	}

	total := Sum(deal)

	switch len(deal) {
	case roommates:
		if !roundsToOne(total) {
			return nil, configError(ErrDealSum, "deal (%.1f) must add up to 1.0", total)
		}
		allocation := make(Allocation, len(deal))
		copy(allocation, deal)
		return allocation, nil

	case roommates - 1:
		if total > AutoFillCeiling {
			return nil, configError(ErrDealOverflow,
				"sum of deal (%.2f) is too high, cannot fill", total)
		}
		allocation := make(Allocation, len(deal), roommates)
		copy(allocation, deal)
		return append(allocation, 1.0-total), nil

	default:
		return nil, configError(ErrDealLength,
			"roommates (%d) and deal values (%d) do not match", roommates, len(deal))
	}
}

package split

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// SplitType defines the type of split strategy
type SplitType string

const (
	SplitTypeEqual SplitType = "EQUAL"
	SplitTypeDeal  SplitType = "DEAL"
)

// Strategy is the interface that all split strategies must implement
type Strategy interface {
	// Calculate computes one share per roommate for the given charge total
	Calculate(total float64) ([]float64, error)

	// Type returns the type identifier for this strategy
	Type() SplitType

	// Validate checks if the strategy can split a charge
	Validate(total float64) error
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewSplitStrategyFactory creates a new factory instance
func NewSplitStrategyFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy for splitType, bound to the roommates and allocation
func (f *Factory) Create(splitType SplitType, roommates int, allocation Allocation) (Strategy, error) {
	switch splitType {
	case SplitTypeEqual:
		return &EqualStrategy{Roommates: roommates}, nil
	case SplitTypeDeal:
		return &DealStrategy{Allocation: allocation}, nil
	default:
		return nil, fmt.Errorf("unknown split type: %s", splitType)
	}
}

var (
	ErrNoRoommates = errors.New("at least one roommate is required")
	ErrEmptyDeal   = errors.New("deal allocation is empty")
	ErrNotANumber  = errors.New("amount is not a finite number")
)

// Sum adds values in order. Callers rely on the order being preserved so that
// concatenated lists sum to the same float as re-summing them.
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// RoundToTwoDecimals rounds a float to 2 decimal places
func RoundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// roundsToOne reports whether value rounds to 1.0 at one decimal. The exact
// binary value is rounded, so 0.5+0.45 (0.94999...) does not qualify.
func roundsToOne(value float64) bool {
	return strconv.FormatFloat(value, 'f', 1, 64) == "1.0"
}

func checkFinite(total float64) error {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return ErrNotANumber
	}
	return nil
}

package split

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides a charge identically among all roommates
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits
type EqualStrategy struct {
	Roommates int
}

// Type returns the split type identifier
func (s *EqualStrategy) Type() SplitType {
	return SplitTypeEqual
}

// Validate checks if the inputs are valid for an equal split
func (s *EqualStrategy) Validate(total float64) error {
	if s.Roommates < 1 {
		return ErrNoRoommates
	}
	return checkFinite(total)
}

// Calculate gives every roommate total / Roommates at full precision.
// Negative totals (refunds, credits) are split the same way.
func (s *EqualStrategy) Calculate(total float64) ([]float64, error) {
	if err := s.Validate(total); err != nil {
		return nil, err
	}

	share := total / float64(s.Roommates)
	shares := make([]float64, s.Roommates)
	for i := range shares {
		shares[i] = share
	}
	return shares, nil
}

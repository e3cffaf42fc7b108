package split

// =============================================================================
// DEAL SPLIT STRATEGY
// Divides a charge proportionally to each roommate's ratio in the allocation
// =============================================================================

// DealStrategy implements the Strategy interface for weighted splits
type DealStrategy struct {
	Allocation Allocation
}

// Type returns the split type identifier
func (s *DealStrategy) Type() SplitType {
	return SplitTypeDeal
}

// Validate checks if the inputs are valid for a deal split
func (s *DealStrategy) Validate(total float64) error {
	if len(s.Allocation) == 0 {
		return ErrEmptyDeal
	}
	return checkFinite(total)
}

// Calculate returns total * ratio for every roommate, in allocation order
func (s *DealStrategy) Calculate(total float64) ([]float64, error) {
	if err := s.Validate(total); err != nil {
		return nil, err
	}

	shares := make([]float64, len(s.Allocation))
	for i, ratio := range s.Allocation {
		shares[i] = total * ratio
	}
	return shares, nil
}

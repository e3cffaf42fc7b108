package bill

import (
	"github.com/shopspring/decimal"
)

// ValidateDealRequest represents the request to check a deal
type ValidateDealRequest struct {
	Roommates int       `json:"roommates" validate:"required,min=2"`
	Deal      []float64 `json:"deal" validate:"required,min=1"`
}

// BillRequest represents one bill in a split request
type BillRequest struct {
	Name        string    `json:"name,omitempty"`
	EqualValues []float64 `json:"equal_values"`
	DealValues  []float64 `json:"deal_values"`
}

// SplitRequest represents the request to split a list of bills
type SplitRequest struct {
	Roommates int            `json:"roommates" validate:"required,min=2"`
	Deal      []float64      `json:"deal" validate:"required,min=1"`
	Bills     []*BillRequest `json:"bills" validate:"required,min=1"`
}

// AllocationResponse represents a validated deal
type AllocationResponse struct {
	Roommates  int       `json:"roommates"`
	Allocation []float64 `json:"allocation"`
}

// ShareResponse represents one roommate's share; amounts are rounded to cents
type ShareResponse struct {
	Roommate   int             `json:"roommate"`
	Ratio      float64         `json:"ratio"`
	EqualShare decimal.Decimal `json:"equal_share"`
	DealShare  decimal.Decimal `json:"deal_share"`
	Total      decimal.Decimal `json:"total"`
}

// ReportResponse represents the split of one bill or of the whole session
type ReportResponse struct {
	Title      string           `json:"title"`
	EqualTotal decimal.Decimal  `json:"equal_total"`
	DealTotal  decimal.Decimal  `json:"deal_total"`
	Total      decimal.Decimal  `json:"total"`
	Shares     []*ShareResponse `json:"shares"`
}

// SessionResponse represents every bill report plus the summary
type SessionResponse struct {
	SessionID  string            `json:"session_id"`
	Roommates  int               `json:"roommates"`
	Allocation []float64         `json:"allocation"`
	Bills      []*ReportResponse `json:"bills"`
	Summary    *ReportResponse   `json:"summary"`
}

// ToEntry converts a request bill to an Entry
func (b *BillRequest) ToEntry() Entry {
	return NewEntry(b.Name, b.EqualValues, b.DealValues)
}

// ToResponse converts a Report to a ReportResponse DTO
func (r *Report) ToResponse() *ReportResponse {
	resp := &ReportResponse{
		Title:      r.Title,
		EqualTotal: cents(r.EqualTotal),
		DealTotal:  cents(r.DealTotal),
		Total:      cents(r.Total()),
		Shares:     make([]*ShareResponse, len(r.Shares)),
	}
	for i, s := range r.Shares {
		resp.Shares[i] = &ShareResponse{
			Roommate:   s.Roommate,
			Ratio:      s.Ratio,
			EqualShare: cents(s.EqualShare),
			DealShare:  cents(s.DealShare),
			Total:      cents(s.Total),
		}
	}
	return resp
}

func cents(amount float64) decimal.Decimal {
	return decimal.NewFromFloat(amount).Round(2)
}

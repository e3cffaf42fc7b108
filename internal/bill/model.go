package bill

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fkhayef/billsplit/internal/bill/split"
)

// Entry represents one recorded bill
type Entry struct {
	Name        string    `json:"name"`
	EqualValues []float64 `json:"equal_values"` // Split evenly among roommates
	DealValues  []float64 `json:"deal_values"`  // Split according to the deal
}

// NewEntry copies the value lists so the entry cannot change once recorded
func NewEntry(name string, equalValues, dealValues []float64) Entry {
	return Entry{
		Name:        name,
		EqualValues: append([]float64(nil), equalValues...),
		DealValues:  append([]float64(nil), dealValues...),
	}
}

// EqualTotal returns the sum of the equally split values
func (e Entry) EqualTotal() float64 {
	return split.Sum(e.EqualValues)
}

// DealTotal returns the sum of the values split by deal
func (e Entry) DealTotal() float64 {
	return split.Sum(e.DealValues)
}

// Session is the list of bills recorded during one run
type Session struct {
	ID    uuid.UUID
	bills []Entry
}

// NewSession starts an empty session with a fresh ID
func NewSession() *Session {
	return &Session{ID: uuid.New()}
}

// Add appends a bill. An empty name is replaced with "Bill <n>".
func (s *Session) Add(entry Entry) Entry {
	if entry.Name == "" {
		entry.Name = DefaultBillName(len(s.bills) + 1)
	}
	entry = NewEntry(entry.Name, entry.EqualValues, entry.DealValues)
	s.bills = append(s.bills, entry)
	return entry
}

// Bills returns the recorded bills in order
func (s *Session) Bills() []Entry {
	return append([]Entry(nil), s.bills...)
}

// Len returns the number of recorded bills
func (s *Session) Len() int {
	return len(s.bills)
}

// Combined concatenates every bill's value lists in recording order
func (s *Session) Combined() (equalValues, dealValues []float64) {
	for _, b := range s.bills {
		equalValues = append(equalValues, b.EqualValues...)
		dealValues = append(dealValues, b.DealValues...)
	}
	return equalValues, dealValues
}

// DefaultBillName names the nth bill of a session
func DefaultBillName(n int) string {
	return fmt.Sprintf("Bill %d", n)
}

// Share is one roommate's part of a report
type Share struct {
	Roommate   int     `json:"roommate"` // 1-based
	Ratio      float64 `json:"ratio"`
	EqualShare float64 `json:"equal_share"`
	DealShare  float64 `json:"deal_share"`
	Total      float64 `json:"total"`
}

// Report holds the computed split of one bill or of a whole session
type Report struct {
	Title      string
	EqualTotal float64
	DealTotal  float64
	Shares     []Share
	Text       string
}

// Total returns the full amount to be paid
func (r *Report) Total() float64 {
	return r.EqualTotal + r.DealTotal
}

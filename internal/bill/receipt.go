package bill

import (
	"fmt"
	"strings"

	"github.com/fkhayef/billsplit/internal/bill/split"
)

const (
	// ReceiptFileName is the fixed name of the saved receipt
	ReceiptFileName = "receipt.txt"

	// DefaultColumnWidth is the width of each receipt table column
	DefaultColumnWidth = 12

	// MinColumnWidth fits the column headers
	MinColumnWidth = 6

	receiptTitle = "ELECTRICITY BILL RECEIPT"
)

// RenderReceipt lays out one two-column table per bill (equal split on the
// left, deal split on the right) followed by the summary text.
//
// The shorter column is padded with zeros and the column totals are the sums
// of the padded columns, so they always match the unpadded sums.
func RenderReceipt(session *Session, allocation split.Allocation, summary *Report, columnWidth int) string {
	if columnWidth < MinColumnWidth {
		columnWidth = MinColumnWidth
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", receiptTitle)
	fmt.Fprintf(&b, "Session: %s\n", session.ID)
	fmt.Fprintf(&b, "Roommates: %d\n", len(allocation))
	fmt.Fprintf(&b, "Deal: %s\n\n", formatRatios(allocation))

	for _, entry := range session.Bills() {
		writeTable(&b, entry, columnWidth)
		b.WriteString("\n")
	}

	if summary != nil {
		b.WriteString(summary.Text)
	}

	return b.String()
}

func writeTable(b *strings.Builder, entry Entry, width int) {
	rows := max(len(entry.EqualValues), len(entry.DealValues))
	equal := padValues(entry.EqualValues, rows)
	deal := padValues(entry.DealValues, rows)

	border := "+" + strings.Repeat("-", width+2) + "+" + strings.Repeat("-", width+2) + "+\n"

	fmt.Fprintf(b, "%s\n", entry.Name)
	b.WriteString(border)
	fmt.Fprintf(b, "| %-*s | %-*s |\n", width, "EQUAL", width, "DEAL")
	b.WriteString(border)
	for i := 0; i < rows; i++ {
		fmt.Fprintf(b, "| %*.2f | %*.2f |\n", width, equal[i], width, deal[i])
	}
	b.WriteString(border)
	fmt.Fprintf(b, "| %*.2f | %*.2f |\n", width, split.Sum(equal), width, split.Sum(deal))
	b.WriteString(border)
}

// padValues extends values with zeros up to n entries
func padValues(values []float64, n int) []float64 {
	padded := make([]float64, n)
	copy(padded, values)
	return padded
}

func formatRatios(allocation split.Allocation) string {
	parts := make([]string, len(allocation))
	for i, ratio := range allocation {
		parts[i] = fmt.Sprintf("%.2f", ratio)
	}
	return strings.Join(parts, ", ")
}

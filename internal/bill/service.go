package bill

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/fkhayef/billsplit/internal/bill/split"
)

const (
	reportTitle  = "PAYMENT REPORT"
	summaryTitle = "SUMMARY"
)

// Common errors
var (
	ErrNoBills           = errors.New("session has no bills")
	ErrNoReceiptStore    = errors.New("no receipt store configured")
	ErrAllocationMissing = errors.New("allocation is required")
)

// Options tunes presentation and side effects of a Service
type Options struct {
	ColumnWidth int       // Receipt column width, DefaultColumnWidth when zero
	Out         io.Writer // Verbose reports are written here
	Logger      *zap.Logger
}

// Service computes bill reports for one allocation
type Service struct {
	repo       *Repository
	allocation split.Allocation
	equal      split.Strategy
	deal       split.Strategy
	opts       Options
}

// NewService creates a bill service. The allocation must come from
// split.DealValidator; repo may be nil when receipts are never saved.
func NewService(repo *Repository, splitFactory *split.Factory, allocation split.Allocation, opts Options) (*Service, error) {
	if len(allocation) == 0 {
		return nil, ErrAllocationMissing
	}

	equal, err := splitFactory.Create(split.SplitTypeEqual, len(allocation), allocation)
	if err != nil {
		return nil, err
	}
	deal, err := splitFactory.Create(split.SplitTypeDeal, len(allocation), allocation)
	if err != nil {
		return nil, err
	}

	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = DefaultColumnWidth
	}

	return &Service{
		repo:       repo,
		allocation: append(split.Allocation(nil), allocation...),
		equal:      equal,
		deal:       deal,
		opts:       opts,
	}, nil
}

// Roommates returns the number of roommates sharing the bills
func (s *Service) Roommates() int {
	return len(s.allocation)
}

// Allocation returns a copy of the deal ratios
func (s *Service) Allocation() split.Allocation {
	return append(split.Allocation(nil), s.allocation...)
}

// Report splits the given values. The text is always returned; with verbose
// it is also written to the interactive output.
func (s *Service) Report(equalValues, dealValues []float64, verbose bool) (*Report, error) {
	return s.report(reportTitle, equalValues, dealValues, verbose)
}

// ReportEntry reports a single recorded bill under its name
func (s *Service) ReportEntry(entry Entry, verbose bool) (*Report, error) {
	return s.report(reportTitle+": "+entry.Name, entry.EqualValues, entry.DealValues, verbose)
}

// Summary reports every bill of the session at once. The value lists are
// concatenated and split again rather than adding up per-bill results.
func (s *Service) Summary(session *Session, verbose bool) (*Report, error) {
	if session.Len() == 0 {
		return nil, ErrNoBills
	}
	equalValues, dealValues := session.Combined()
	return s.report(summaryTitle, equalValues, dealValues, verbose)
}

// Check reports whether the values can be split without any amount
// overflowing to infinity.
func (s *Service) Check(equalValues, dealValues []float64) error {
	_, err := s.compute("", equalValues, dealValues)
	return err
}

func (s *Service) report(title string, equalValues, dealValues []float64, verbose bool) (*Report, error) {
	report, err := s.compute(title, equalValues, dealValues)
	if err != nil {
		return nil, err
	}
	report.Text = renderReport(report)

	s.opts.Logger.Debug("bill split",
		zap.String("title", title),
		zap.Int("equal_values", len(equalValues)),
		zap.Int("deal_values", len(dealValues)),
		zap.Float64("total", report.Total()),
	)

	if verbose {
		if _, err := io.WriteString(s.opts.Out, report.Text); err != nil {
			return nil, fmt.Errorf("failed to print report: %w", err)
		}
	}

	return report, nil
}

func (s *Service) compute(title string, equalValues, dealValues []float64) (*Report, error) {
	equalTotal := split.Sum(equalValues)
	dealTotal := split.Sum(dealValues)

	equalShares, err := s.equal.Calculate(equalTotal)
	if err != nil {
		return nil, fmt.Errorf("equal split: %w", err)
	}
	dealShares, err := s.deal.Calculate(dealTotal)
	if err != nil {
		return nil, fmt.Errorf("deal split: %w", err)
	}

	report := &Report{
		Title:      title,
		EqualTotal: equalTotal,
		DealTotal:  dealTotal,
		Shares:     make([]Share, len(s.allocation)),
	}
	for i, ratio := range s.allocation {
		report.Shares[i] = Share{
			Roommate:   i + 1,
			Ratio:      ratio,
			EqualShare: equalShares[i],
			DealShare:  dealShares[i],
			Total:      equalShares[i] + dealShares[i],
		}
		if !finite(report.Shares[i].Total) {
			return nil, fmt.Errorf("share of roommate %d: %w", i+1, split.ErrNotANumber)
		}
	}
	if !finite(report.Total()) {
		return nil, fmt.Errorf("total: %w", split.ErrNotANumber)
	}

	return report, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Receipt renders the receipt for every bill of the session followed by the summary
func (s *Service) Receipt(session *Session) (string, error) {
	summary, err := s.Summary(session, false)
	if err != nil {
		return "", err
	}
	return RenderReceipt(session, s.allocation, summary, s.opts.ColumnWidth), nil
}

// SaveReceipt renders the receipt and writes it through the repository
func (s *Service) SaveReceipt(ctx context.Context, session *Session) (string, error) {
	if s.repo == nil {
		return "", ErrNoReceiptStore
	}

	content, err := s.Receipt(session)
	if err != nil {
		return "", err
	}

	path, err := s.repo.SaveReceipt(ctx, content)
	if err != nil {
		return "", err
	}

	s.opts.Logger.Info("receipt written",
		zap.String("path", path),
		zap.String("session", session.ID.String()),
		zap.Int("bills", session.Len()),
	)
	return path, nil
}

func renderReport(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "========== %s ==========\n", r.Title)
	fmt.Fprintf(&b, "Total amount to be paid: %.2f\n", r.Total())
	for _, share := range r.Shares {
		fmt.Fprintf(&b, "Roomie n.%d with deal ratio %.2f will pay:\n", share.Roommate, share.Ratio)
		fmt.Fprintf(&b, "%.2f for the equal share and %.2f according to the deal.\n", share.EqualShare, share.DealShare)
		fmt.Fprintf(&b, "\tTOTAL: %.2f\n\n", share.Total)
	}

	return b.String()
}

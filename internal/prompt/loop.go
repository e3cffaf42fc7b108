// Package prompt runs the interactive read loop that records bills.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/fkhayef/billsplit/internal/bill"
)

// ErrQuit is returned when the user quits. Nothing is saved after a quit.
var ErrQuit = errors.New("quit requested")

const (
	inputHint     = "(value), (n) for next mode, (r) to restart, (q) to quit"
	invalidInput  = "Please give only numerical input the next time!"
	overflowInput = "That value makes the total too large to split, it was not added!"
	continueQuery = "Do you want to continue? [y, n]"
)

// state of the value collection for the current bill
type state int

const (
	collectingEqual state = iota
	collectingDeal
)

func (s state) announcement() string {
	if s == collectingDeal {
		return "enter the values that should be split according to the deal:"
	}
	return "enter the values that should be split equally:"
}

// Loop drives one interactive session
type Loop struct {
	scanner *bufio.Scanner
	out     io.Writer
	service *bill.Service
	logger  *zap.Logger
}

// NewLoop creates a loop reading lines from in and printing to out
func NewLoop(in io.Reader, out io.Writer, service *bill.Service, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		scanner: bufio.NewScanner(in),
		out:     out,
		service: service,
		logger:  logger,
	}
}

// Run records bills until the user declines to continue, then prints the
// summary of the whole session. It returns ErrQuit, together with the bills
// recorded so far, when the user quits or input ends mid-bill.
func (l *Loop) Run() (*bill.Session, error) {
	session := bill.NewSession()

	fmt.Fprintln(l.out, welcome)
	fmt.Fprint(l.out, art)
	fmt.Fprint(l.out, "First, ")

	for {
		entry, err := l.collectBill(session)
		if err != nil {
			return session, err
		}

		recorded := session.Add(entry)
		l.logger.Debug("bill recorded",
			zap.String("bill", recorded.Name),
			zap.Int("equal_values", len(recorded.EqualValues)),
			zap.Int("deal_values", len(recorded.DealValues)),
		)

		if _, err := l.service.ReportEntry(recorded, true); err != nil {
			return session, err
		}

		more, err := l.askContinue()
		if err != nil {
			return session, err
		}
		if !more {
			break
		}
	}

	if _, err := l.service.Summary(session, true); err != nil {
		return session, err
	}
	return session, nil
}

// collectBill asks for a name and then the equal and deal values of the next
// bill. A number or command typed at the name prompt is taken as the first
// value input, and the bill keeps its default name.
func (l *Loop) collectBill(session *bill.Session) (bill.Entry, error) {
	c := &collector{session: session, service: l.service, name: bill.DefaultBillName(session.Len() + 1)}

	line, err := l.readLine(fmt.Sprintf("name of the bill [%s]:", c.name))
	if err != nil {
		return bill.Entry{}, err
	}
	tok, err := parseToken(line)
	if err != nil || tok.kind == tokenValue {
		if err != nil && line != "" {
			c.name = line
		}
		fmt.Fprintln(l.out, c.state.announcement())
	}
	if err == nil {
		if _, err := l.apply(c, tok); err != nil {
			return bill.Entry{}, err
		}
	}

	for {
		line, err := l.readLine(inputHint)
		if err != nil {
			return bill.Entry{}, err
		}

		tok, err := parseToken(line)
		if err != nil {
			l.logger.Debug("invalid input", zap.Error(err))
			fmt.Fprintln(l.out, invalidInput)
			continue
		}

		done, err := l.apply(c, tok)
		if err != nil {
			return bill.Entry{}, err
		}
		if done {
			return c.entry(), nil
		}
	}
}

// apply feeds one token to the collector and reports whether the bill is
// complete. Commands print the announcement of the state they lead to.
func (l *Loop) apply(c *collector, tok token) (bool, error) {
	switch tok.kind {
	case tokenQuit:
		return false, ErrQuit

	case tokenRestart:
		c.equalValues, c.dealValues = nil, nil
		c.state = collectingEqual
		fmt.Fprintln(l.out, c.state.announcement())

	case tokenNext:
		if c.state == collectingDeal {
			return true, nil
		}
		c.state = collectingDeal
		fmt.Fprintln(l.out, c.state.announcement())

	case tokenValue:
		if err := c.add(tok.value); err != nil {
			l.logger.Debug("value rejected", zap.Float64("value", tok.value), zap.Error(err))
			fmt.Fprintln(l.out, overflowInput)
		}
	}
	return false, nil
}

// collector holds the values of the bill being entered
type collector struct {
	session     *bill.Session
	service     *bill.Service
	name        string
	state       state
	equalValues []float64
	dealValues  []float64
}

// add appends value to the list of the current state unless the bill or the
// session summary could then no longer be split.
func (c *collector) add(value float64) error {
	equalValues, dealValues := c.equalValues, c.dealValues
	if c.state == collectingEqual {
		equalValues = append(slices.Clip(equalValues), value)
	} else {
		dealValues = append(slices.Clip(dealValues), value)
	}

	if err := c.service.Check(equalValues, dealValues); err != nil {
		return err
	}
	sessionEqual, sessionDeal := c.session.Combined()
	if err := c.service.Check(append(sessionEqual, equalValues...), append(sessionDeal, dealValues...)); err != nil {
		return err
	}

	c.equalValues, c.dealValues = equalValues, dealValues
	return nil
}

func (c *collector) entry() bill.Entry {
	return bill.NewEntry(c.name, c.equalValues, c.dealValues)
}

// askContinue reports whether another bill follows. End of input means no.
func (l *Loop) askContinue() (bool, error) {
	answer, err := l.readLine(continueQuery)
	if errors.Is(err, ErrQuit) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// readLine prints the prompt and returns the trimmed next line.
// End of input is reported as ErrQuit.
func (l *Loop) readLine(prompt string) (string, error) {
	fmt.Fprintln(l.out, prompt)
	if l.scanner.Scan() {
		return strings.TrimSpace(l.scanner.Text()), nil
	}
	if err := l.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", ErrQuit
}

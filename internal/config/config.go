package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/fkhayef/billsplit/internal/bill"
	"github.com/fkhayef/billsplit/internal/bill/split"
)

// Command selects what the binary runs
type Command string

const (
	CommandRun   Command = "run"
	CommandServe Command = "serve"
)

var (
	ErrUsage          = errors.New("invalid command line")
	ErrInvalidEnv     = errors.New("invalid environment variable")
	ErrUnexpectedArgs = errors.New("unexpected arguments")
	ErrColumnWidth    = errors.New("column width too small")
)

// DefaultDeal is used when neither BILLSPLIT_DEAL nor -deal is given
var DefaultDeal = []float64{0.67, 0.33}

// Config holds all application configuration
type Config struct {
	Command      Command
	Roommates    int
	Deal         []float64
	MaxRoommates int
	Save         bool
	ReceiptDir   string
	ColumnWidth  int
	Verbose      bool
	LogLevel     string
	Port         string
}

// Load reads .env (if present), environment variables and then the command
// line. Flags override the environment. args excludes the program name.
func Load(args []string, output io.Writer) (*Config, error) {
	// Missing .env is fine, the environment may carry everything
	_ = godotenv.Load()

	cfg := &Config{
		Command:    CommandRun,
		ReceiptDir: getEnv("BILLSPLIT_RECEIPT_DIR", "."),
		LogLevel:   getEnv("BILLSPLIT_LOG_LEVEL", ""),
		Port:       getEnv("PORT", "8080"),
	}

	var err error
	if cfg.Roommates, err = getEnvInt("BILLSPLIT_ROOMMATES", 2); err != nil {
		return nil, err
	}
	if cfg.MaxRoommates, err = getEnvInt("BILLSPLIT_MAX_ROOMMATES", split.DefaultMaxRoommates); err != nil {
		return nil, err
	}
	if cfg.ColumnWidth, err = getEnvInt("BILLSPLIT_COLUMN_WIDTH", bill.DefaultColumnWidth); err != nil {
		return nil, err
	}
	if cfg.Save, err = getEnvBool("BILLSPLIT_SAVE", false); err != nil {
		return nil, err
	}
	if cfg.Deal, err = getEnvDeal("BILLSPLIT_DEAL", DefaultDeal); err != nil {
		return nil, err
	}

	if len(args) > 0 && args[0] == string(CommandServe) {
		cfg.Command = CommandServe
		args = args[1:]
	}

	if err := cfg.parseFlags(args, output); err != nil {
		return nil, err
	}

	if cfg.ColumnWidth < bill.MinColumnWidth {
		return nil, fmt.Errorf("%w: %d, need at least %d", ErrColumnWidth, cfg.ColumnWidth, bill.MinColumnWidth)
	}

	return cfg, nil
}

func (c *Config) parseFlags(args []string, output io.Writer) error {
	fs := flag.NewFlagSet("billsplit", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { usage(fs, output) }

	deal := &dealFlag{values: c.Deal}

	fs.IntVar(&c.Roommates, "r", c.Roommates, "number of roommates (shorthand)")
	fs.IntVar(&c.Roommates, "roommates", c.Roommates, "number of roommates")
	fs.Var(deal, "d", "deal ratios (shorthand)")
	fs.Var(deal, "deal", "how the bill shall be split, floats adding up to 1 (e.g. 0.6 0.4); one missing value is filled in automatically")
	fs.BoolVar(&c.Save, "s", c.Save, "save a receipt (shorthand)")
	fs.BoolVar(&c.Save, "save", c.Save, "save "+bill.ReceiptFileName+" on normal completion")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "verbose logging (shorthand)")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "enable debug logging")
	fs.IntVar(&c.MaxRoommates, "max-roommates", c.MaxRoommates, "largest accepted roommate count")
	fs.IntVar(&c.ColumnWidth, "column-width", c.ColumnWidth, "receipt column width")
	fs.StringVar(&c.ReceiptDir, "receipt-dir", c.ReceiptDir, "directory the receipt is written to")
	fs.StringVar(&c.Port, "port", c.Port, "port for the serve command")

	// Like nargs='+': bare numbers after -deal belong to the deal
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		value, err := strconv.ParseFloat(rest[0], 64)
		if err != nil || !deal.set {
			return fmt.Errorf("%w: %w: %s", ErrUsage, ErrUnexpectedArgs, strings.Join(rest, " "))
		}
		deal.values = append(deal.values, value)
		rest = rest[1:]
	}

	c.Deal = deal.values
	return nil
}

func usage(fs *flag.FlagSet, output io.Writer) {
	fmt.Fprintf(output, `Utility to split the electricity bill among 2 or more roommates, using non equal multipliers

Usage:
  billsplit [flags]          interactive calculator
  billsplit serve [flags]    HTTP API

Flags:
`)
	fs.PrintDefaults()
}

// dealFlag collects deal ratios. The first Set replaces the default.
type dealFlag struct {
	values []float64
	set    bool
}

func (d *dealFlag) String() string {
	if d == nil {
		return ""
	}
	return formatDeal(d.values)
}

func (d *dealFlag) Set(s string) error {
	values, err := parseDeal(s)
	if err != nil {
		return err
	}
	if !d.set {
		d.values = nil
		d.set = true
	}
	d.values = append(d.values, values...)
	return nil
}

// parseDeal accepts ratios separated by commas and/or whitespace
func parseDeal(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("empty deal")
	}

	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid deal value %q", f)
		}
		values[i] = v
	}
	return values, nil
}

func formatDeal(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidEnv, key, value)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidEnv, key, value)
	}
	return b, nil
}

func getEnvDeal(key string, defaultValue []float64) ([]float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return append([]float64(nil), defaultValue...), nil
	}
	deal, err := parseDeal(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidEnv, key, err)
	}
	return deal, nil
}

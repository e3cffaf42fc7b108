package prompt

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned for input that is neither a number nor a command
var ErrInvalidValue = errors.New("not a numerical value")

type tokenKind int

const (
	tokenValue tokenKind = iota
	tokenNext
	tokenRestart
	tokenQuit
)

type token struct {
	kind  tokenKind
	value float64
}

// parseToken reads one line of input. Commands are case-insensitive and may
// be given in full or by their first letter.
func parseToken(line string) (token, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "next":
		return token{kind: tokenNext}, nil
	case "r", "restart":
		return token{kind: tokenRestart}, nil
	case "q", "quit":
		return token{kind: tokenQuit}, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return token{}, fmt.Errorf("%w: %q", ErrInvalidValue, line)
	}
	return token{kind: tokenValue, value: value}, nil
}

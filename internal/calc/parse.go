package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseMode selects how user-entered value strings are parsed.
type ParseMode uint8

const (
	// ParseLenient reads the longest numeric prefix; garbage yields NaN,
	// which then propagates through every total it touches.
	ParseLenient ParseMode = iota
	// ParseStrict rejects anything that is not a complete finite number.
	ParseStrict
)

// ErrInvalidParseMode is returned by ParseParseMode.
var ErrInvalidParseMode = errors.New("invalid parse mode")

func (m ParseMode) String() string {
	switch m {
	case ParseLenient:
		return "lenient"
	case ParseStrict:
		return "strict"
	default:
		return fmt.Sprintf("ParseMode(%d)", uint8(m))
	}
}

// ParseParseMode parses "lenient" / "strict". Empty means lenient.
func ParseParseMode(s string) (ParseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return ParseLenient, nil
	case "strict":
		return ParseStrict, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidParseMode, s)
	}
}

// ParseError reports a value string rejected in strict mode.
type ParseError struct {
	Field string // e.g. "buffs[1].value"
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	// ErrNotNumber is returned in strict mode when the input is not entirely a decimal literal.
	ErrNotNumber = errors.New("value is not a decimal number")
	// ErrNotFinite is returned in strict mode for Infinity and out-of-range literals.
	ErrNotFinite = errors.New("value is not a finite number")
)

// ParseValue parses a user-entered value string according to mode.
func ParseValue(s string, mode ParseMode) (float64, error) {
	if mode == ParseStrict {
		return parseStrict(s)
	}
	return ParseLenientFloat(s), nil
}

// parseStrict accepts exactly the inputs ParseLenientFloat reads in full,
// so a value accepted in strict mode is the same value lenient mode gives.
func parseStrict(s string) (float64, error) {
	s = strings.TrimFunc(s, isJSSpace)
	n := scanNumber(s)
	if n == 0 || n != len(s) {
		return 0, ErrNotNumber
	}
	v := literalValue(s)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// ParseLenientFloat mirrors the browser's parseFloat:
// leading whitespace is skipped, then the longest decimal literal prefix
// (optional sign, digits, fraction, exponent) or "Infinity" is read.
// No prefix at all gives NaN. Hex, digit separators and other radix forms
// are not recognised: "0x10" reads as 0, "1_000" as 1.
func ParseLenientFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, isJSSpace)
	n := scanNumber(s)
	if n == 0 {
		return math.NaN()
	}
	return literalValue(s[:n])
}

// isJSSpace — пробельные символы в смысле parseFloat:
// ASCII whitespace, NBSP, BOM, line/paragraph separators и категория Zs.
// U+0085 сюда не входит.
func isJSSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', '\u00A0', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// scanNumber returns the length of the longest numeric literal prefix of s,
// 0 when there is none.
func scanNumber(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return i + len("Infinity")
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

// literalValue converts a literal accepted by scanNumber.
func literalValue(lit string) float64 {
	switch strings.TrimLeft(lit, "+-") {
	case "Infinity":
		if lit[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		// Out of range: strconv already returns ±Inf or ±0.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

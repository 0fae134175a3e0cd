package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidPriceRange = errors.New("invalid price range")

// ParseError reports a price range string that does not have the "$A-B" shape.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("domain: parse price range %q: %s", e.Input, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidPriceRange
}

// PriceRange is a validated price band. The zero value is not a valid range.
type PriceRange struct {
	Currency string
	Low      int
	High     int
}

// ParsePriceRange parses "$A-B". The currency symbol is optional on either
// bound but must match when present on both.
func ParsePriceRange(s string) (PriceRange, error) {
	raw := strings.TrimSpace(s)
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return PriceRange{}, &ParseError{Input: s, Reason: `expected "$A-B"`}
	}

	lowSym, low, err := splitAmount(parts[0])
	if err != nil {
		return PriceRange{}, &ParseError{Input: s, Reason: "lower bound: " + err.Error()}
	}
	highSym, high, err := splitAmount(parts[1])
	if err != nil {
		return PriceRange{}, &ParseError{Input: s, Reason: "upper bound: " + err.Error()}
	}
	if lowSym != "" && highSym != "" && lowSym != highSym {
		return PriceRange{}, &ParseError{Input: s, Reason: "mixed currency symbols"}
	}
	if low > high {
		return PriceRange{}, &ParseError{Input: s, Reason: "lower bound above upper bound"}
	}

	cur := lowSym
	if cur == "" {
		cur = highSym
	}
	if cur == "" {
		cur = "$"
	}
	return PriceRange{Currency: cur, Low: low, High: high}, nil
}

// MustParsePriceRange is for static tables only.
func MustParsePriceRange(s string) PriceRange {
	pr, err := ParsePriceRange(s)
	if err != nil {
		panic(err)
	}
	return pr
}

func splitAmount(s string) (string, int, error) {
	s = strings.TrimSpace(s)
	sym := ""
	if strings.HasPrefix(s, "$") {
		sym = "$"
		s = s[1:]
	}
	if s == "" {
		return "", 0, errors.New("missing amount")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return "", 0, fmt.Errorf("not an integer: %q", s)
	}
	if n < 0 {
		return "", 0, errors.New("negative amount")
	}
	return sym, n, nil
}

// Valid reports whether the range came out of ParsePriceRange.
func (p PriceRange) Valid() bool {
	return p.Currency != "" && p.Low >= 0 && p.Low <= p.High
}

func (p PriceRange) String() string {
	return fmt.Sprintf("%s%d-%d", p.Currency, p.Low, p.High)
}

// Format renders an amount with the range's currency symbol.
func (p PriceRange) Format(amount int) string {
	return p.Currency + strconv.Itoa(amount)
}

func (p PriceRange) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, ErrInvalidPriceRange
	}
	return []byte(p.String()), nil
}

func (p *PriceRange) UnmarshalText(b []byte) error {
	v, err := ParsePriceRange(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Package balance parses and formats NEAR token amounts.
package balance

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// NEARDecimals is the number of yoctoNEAR digits in one NEAR
const NEARDecimals = 24

const (
	unitNEAR      = "near"
	unitYoctoNEAR = "yoctonear"
)

// amountPattern splits "<number><unit>" with optional whitespace between them
var amountPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]*)\s*([A-Za-z]+)$`)

// Balance is an amount of NEAR tokens held as an integer count of yoctoNEAR
type Balance struct {
	yocto decimal.Decimal
}

// ParseError is returned when a string is not a valid NEAR amount
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid NEAR amount %q: %s (example: 10NEAR or 0.5near or 10000yoctonear)", e.Input, e.Reason)
}

// Parse parses amounts like "10NEAR", "0.5 near" or "10000yoctonear"
func Parse(s string) (Balance, error) {
	input := strings.TrimSpace(s)
	m := amountPattern.FindStringSubmatch(input)
	if m == nil || m[1] == "" || m[1] == "." {
		return Balance{}, &ParseError{Input: input, Reason: "expected a number followed by a unit"}
	}
	number, unit := m[1], strings.ToLower(m[2])

	value, err := decimal.NewFromString(number)
	if err != nil {
		return Balance{}, &ParseError{Input: input, Reason: err.Error()}
	}

	switch unit {
	case unitNEAR:
		if frac := fractionDigits(number); frac > NEARDecimals {
			return Balance{}, &ParseError{
				Input:  input,
				Reason: fmt.Sprintf("too many fractional digits (%d, maximum %d)", frac, NEARDecimals),
			}
		}
		return Balance{yocto: value.Shift(NEARDecimals)}, nil
	case unitYoctoNEAR:
		if !value.IsInteger() {
			return Balance{}, &ParseError{Input: input, Reason: "yoctoNEAR amounts must be whole numbers"}
		}
		return Balance{yocto: value}, nil
	default:
		return Balance{}, &ParseError{Input: input, Reason: fmt.Sprintf("unknown unit %q (use NEAR or yoctoNEAR)", m[2])}
	}
}

// MustParse is like Parse but panics on error
func MustParse(s string) Balance {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// fractionDigits counts digits after the decimal point, ignoring trailing zeros
func fractionDigits(number string) int {
	_, frac, found := strings.Cut(number, ".")
	if !found {
		return 0
	}
	return len(strings.TrimRight(frac, "0"))
}

// Yocto returns the amount as an integer string of yoctoNEAR
func (b Balance) Yocto() string {
	return b.yocto.StringFixed(0)
}

// IsZero reports whether the amount is zero
func (b Balance) IsZero() bool {
	return b.yocto.IsZero()
}

// Equal reports whether two balances hold the same amount
func (b Balance) Equal(other Balance) bool {
	return b.yocto.Equal(other.yocto)
}

// String renders the amount in NEAR, e.g. "0.1 NEAR"
func (b Balance) String() string {
	if b.yocto.IsZero() {
		return "0 NEAR"
	}
	return b.yocto.Shift(-NEARDecimals).String() + " NEAR"
}

// MarshalJSON implements json.Marshaler
func (b Balance) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (b *Balance) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := Parse(str)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (b Balance) MarshalYAML() (interface{}, error) {
	return b.String(), nil
}

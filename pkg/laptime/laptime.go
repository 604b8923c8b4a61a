// Package laptime converts between lap time text (M:SS.mmm) and seconds.
package laptime

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mpapenbr/laplog/pkg/model"
)

// Invalid is rendered for non-finite values
const Invalid = "-:--.---"

var (
	sixty    = decimal.NewFromInt(60)
	thousand = decimal.NewFromInt(1000)
)

// Parse converts text like "1:02.852" to seconds.
func Parse(text string) (float64, error) {
	d, err := ParseDecimal(text)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ParseDecimal converts text like "1:02.852" to an exact decimal number
// of seconds.
func ParseDecimal(text string) (decimal.Decimal, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return decimal.Zero, fmt.Errorf("%w: lap time %q: expected M:SS.mmm",
			model.ErrFormat, text)
	}
	secParts := strings.Split(parts[1], ".")
	if len(secParts) != 2 {
		return decimal.Zero, fmt.Errorf("%w: lap time %q: expected SS.mmm",
			model.ErrFormat, text)
	}
	minutes, err := parseUint(text, "minutes", parts[0])
	if err != nil {
		return decimal.Zero, err
	}
	seconds, err := parseUint(text, "seconds", secParts[0])
	if err != nil {
		return decimal.Zero, err
	}
	if seconds > 59 {
		return decimal.Zero, fmt.Errorf("%w: lap time %q: seconds out of range",
			model.ErrFormat, text)
	}
	if len(secParts[1]) != 3 {
		return decimal.Zero, fmt.Errorf("%w: lap time %q: milliseconds need 3 digits",
			model.ErrFormat, text)
	}
	millis, err := parseUint(text, "milliseconds", secParts[1])
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(minutes*60 + seconds).
		Add(decimal.New(millis, -3)), nil
}

func parseUint(text, name, part string) (int64, error) {
	// no signs allowed
	v, err := strconv.ParseUint(part, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: lap time %q: invalid %s %q",
			model.ErrFormat, text, name, part)
	}
	return int64(v), nil
}

// Format renders seconds as M:SS.mmm. Sub-millisecond remainders are
// truncated. Negative values get a leading "-".
func Format(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Invalid
	}
	// NewFromFloat uses the shortest representation, so 62.852 stays
	// 62.852 instead of 62.85199999...
	return FormatDecimal(decimal.NewFromFloat(seconds))
}

func FormatDecimal(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	totalMillis := d.Mul(thousand).Truncate(0)
	wholeSeconds := totalMillis.Div(thousand).Truncate(0)
	millis := totalMillis.Sub(wholeSeconds.Mul(thousand)).IntPart()
	minutes := wholeSeconds.Div(sixty).Truncate(0)
	secs := wholeSeconds.Sub(minutes.Mul(sixty)).IntPart()
	return fmt.Sprintf("%s%s:%02d.%03d", sign, minutes.String(), secs, millis)
}

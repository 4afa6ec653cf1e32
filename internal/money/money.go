package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Parse converts user-entered amount text into an exact decimal.
// Grouping separators and surrounding whitespace are tolerated so that
// pasted display values ("125,000") round-trip.
func Parse(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// Formatter renders amounts with locale thousands grouping. Amounts stay
// exact decimals everywhere else; formatting happens only at the
// presentation boundary.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter creates a Formatter for a BCP 47 locale tag and currency
// code. An unparseable tag falls back to English grouping.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// Format renders an amount with grouping, e.g. "125,000" or "1,250.50".
func (f *Formatter) Format(d decimal.Decimal) string {
	opts := []number.Option{number.MaxFractionDigits(2)}
	if !d.Equal(d.Truncate(0)) {
		opts = append(opts, number.MinFractionDigits(2))
	}
	return f.printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), opts...))
}

// FormatWithCurrency renders an amount prefixed with the currency code,
// e.g. "NGN 125,000".
func (f *Formatter) FormatWithCurrency(d decimal.Decimal) string {
	return f.currency + " " + f.Format(d)
}

package record

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencyPrefix precedes every printed amount.
const CurrencyPrefix = "PKR "

var printer = message.NewPrinter(language.English)

// FormatCNIC groups a 13-digit national identity number as
// AAAAA-BBBBBBB-C. Separators in the input are ignored; any other digit count
// returns the input unchanged.
func FormatCNIC(cnic string) string {
	var digits strings.Builder
	for _, r := range cnic {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 13 {
		return cnic
	}
	return d[:5] + "-" + d[5:12] + "-" + d[12:]
}

// FormatMoney prints an amount with thousands separators, for example
// "PKR 2,500,000". Fractions are kept to two places when present.
func FormatMoney(v decimal.Decimal) string {
	return CurrencyPrefix + groupDigits(v)
}

func groupDigits(v decimal.Decimal) string {
	v = v.Round(2)
	whole := v.Truncate(0)
	s := printer.Sprintf("%d", whole.IntPart())
	if v.IsNegative() && whole.IsZero() {
		s = "-" + s
	}
	frac := v.Sub(whole).Abs()
	if frac.IsZero() {
		return s
	}
	fs := strings.TrimPrefix(frac.StringFixed(2), "0")
	return s + strings.TrimRight(fs, "0")
}

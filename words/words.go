// Package words spells out currency amounts in English using the South Asian
// grouping of Hundred, Thousand, Lakh (10^5) and Crore (10^7).
//
// The output is the form printed on receipts, for example
//
//	words.Int(2500000) == "Twenty Five Lakh Only"
//	words.Int(1234)    == "One Thousand Two Hundred and Thirty Four Only"
package words

import (
	"math"
	"strings"
)

const (
	lakh  = 100_000
	crore = 10_000_000

	// Suffix terminates every non-zero amount.
	Suffix = " Only"
)

// maxAmount bounds the float input so the integer conversion cannot overflow.
const maxAmount = 1e18

var (
	ones  = [...]string{"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine"}
	teens = [...]string{"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	tens  = [...]string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety"}
)

// ToWords converts the integer part of v to words.
//
// Zero yields "Zero". NaN, infinities, negative values and values too large
// to represent yield the empty string. Fractions are discarded.
func ToWords(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v >= maxAmount {
		return ""
	}
	return Int(int64(math.Floor(v)))
}

// Int converts n to words. Negative values yield the empty string.
func Int(n int64) string {
	switch {
	case n < 0:
		return ""
	case n == 0:
		return "Zero"
	}
	return strings.TrimSpace(convert(n)) + Suffix
}

func convert(n int64) string {
	switch {
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	case n < 100:
		return tens[n/10] + join(" ", n%10, convert)
	case n < 1000:
		return ones[n/100] + " Hundred" + join(" and ", n%100, convert)
	case n < lakh:
		return convert(n/1000) + " Thousand" + join(" ", n%1000, convert)
	case n < crore:
		return convert(n/lakh) + " Lakh" + join(" ", n%lakh, convert)
	default:
		return convert(n/crore) + " Crore" + join(" ", n%crore, convert)
	}
}

// join renders rest with sep in front of it, or nothing when rest is zero.
func join(sep string, rest int64, f func(int64) string) string {
	if rest == 0 {
		return ""
	}
	return sep + f(rest)
}

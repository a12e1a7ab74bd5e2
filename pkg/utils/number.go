package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxExponent bounds the exponent LeadingDecimal will apply. Larger ones
// are left in the unparsed tail.
const maxExponent = 18

// LeadingDecimal parses the longest numeric prefix of s, after leading
// whitespace: an optional sign, digits, a single fractional part and an
// optional exponent ("1e3", "2.5E-1"). ok is false when no digits were found.
func LeadingDecimal(s string) (d decimal.Decimal, ok bool) {
	s = strings.TrimLeft(s, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		frac := end + 1
		for frac < len(s) && isDigit(s[frac]) {
			frac++
			digits++
		}
		if frac > end+1 || digits > 0 {
			end = frac
		}
	}
	if digits == 0 {
		return decimal.Zero, false
	}

	num := strings.TrimSuffix(s[:end], ".")
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}

	if exp, found := leadingExponent(s[end:]); found {
		d = d.Shift(exp)
	}
	return d, true
}

// leadingExponent parses an "e" or "E" exponent at the start of s.
func leadingExponent(s string) (int32, bool) {
	if len(s) < 2 || (s[0] != 'e' && s[0] != 'E') {
		return 0, false
	}
	end := 1
	if s[end] == '-' || s[end] == '+' {
		end++
	}
	start := end
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return 0, false
	}

	exp, err := strconv.Atoi(s[1:end])
	if err != nil || exp > maxExponent || exp < -maxExponent {
		return 0, false
	}
	return int32(exp), true
}

// LeadingInt parses the unsigned run of digits at the start of s. ok is
// false when there are no digits or the value does not fit in an int64.
func LeadingInt(s string) (n int64, ok bool) {
	for i := 0; i < len(s) && isDigit(s[i]); i++ {
		digit := int64(s[i] - '0')
		if n > (math.MaxInt64-digit)/10 {
			return 0, false
		}
		n = n*10 + digit
		ok = true
	}
	return n, ok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

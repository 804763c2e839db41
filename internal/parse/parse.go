// Package parse holds the tolerant value parsers used by the CSV import
// pipeline. Spreadsheet exports are messy: amounts arrive with currency
// symbols, thousands separators, and accounting-style parentheses, and
// dates arrive in whatever format the source system felt like. Nothing
// here ever returns an error; malformed input degrades to a safe default
// and the caller decides whether that is worth a warning.
package parse

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var slashDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2}|\d{4})$`)

// Amount parses a currency-like string into a decimal. Currency symbols,
// thousands separators, surrounding quotes, and whitespace are stripped;
// a parenthesized value is negative. Empty, dash, or unparseable input
// yields zero.
func Amount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) > 1 {
		neg = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if s == "" || s == "-" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if neg {
		return d.Neg()
	}
	return d
}

// FormatAmount renders a decimal with exactly two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FlexibleDate parses MM/DD/YY, MM/DD/YYYY, and a handful of generic
// date layouts. Two-digit years below 50 map to 20xx, the rest to 19xx.
// Empty or unparseable input falls back to now with ok=false so the
// caller can surface the degraded parse as a warning.
func FlexibleDate(s string, now time.Time) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"`)
	s = strings.TrimSpace(s)
	if s == "" {
		return now, false
	}

	if m := slashDate.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if len(m[3]) == 2 {
			year = expandYear(year)
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
		}
		return now, false
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339, "Jan 2, 2006", "January 2, 2006"} {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return now, false
}

// expandYear maps a two-digit year: <50 -> 20xx, >=50 -> 19xx.
func expandYear(yy int) int {
	if yy < 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

// MonthKey returns the canonical "M/YY" key for the calendar month
// containing t. Any two dates in the same month yield the same key.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%d/%02d", int(t.Month()), t.Year()%100)
}

// MonthKeyParts splits a "M/YY" (or "M/YYYY") key into its calendar year
// and month. ok is false for anything that is not a month key.
func MonthKeyParts(key string) (year, month int, ok bool) {
	parts := strings.SplitN(key, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, false
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	if len(parts[1]) <= 2 {
		year = expandYear(year)
	}
	return year, month, true
}

// IsDateHeader reports whether a CSV header cell looks like an M/D/YY or
// M/D/YYYY date, marking it as a monthly schedule column.
func IsDateHeader(s string) bool {
	return slashDate.MatchString(strings.TrimSpace(s))
}

// SortMonthKeys orders month keys chronologically, year first. Keys that
// fail to parse sort to the end in their original order.
func SortMonthKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		yi, mi, oki := MonthKeyParts(keys[i])
		yj, mj, okj := MonthKeyParts(keys[j])
		if oki != okj {
			return oki
		}
		if yi != yj {
			return yi < yj
		}
		return mi < mj
	})
}

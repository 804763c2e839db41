package parse

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1234.56", "1234.56"},
		{"$1,234.56", "1234.56"},
		{`"1,234.56"`, "1234.56"},
		{"(40,500.00)", "-40500"},
		{"($250.00)", "-250"},
		{" 42 ", "42"},
		{"", "0"},
		{"-", "0"},
		{"n/a", "0"},
		{"12.3.4", "0"},
		{"-17.50", "-17.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.True(t, Amount(tt.in).Equal(dec(tt.want)),
				"Amount(%q) = %s, want %s", tt.in, Amount(tt.in), tt.want)
		})
	}
}

func TestAmount_FormatRoundTrip(t *testing.T) {
	for _, s := range []string{"0.00", "1.05", "-1234.50", "99999.99"} {
		d := dec(s)
		assert.True(t, Amount(FormatAmount(d)).Equal(d))
	}
}

func TestFlexibleDate_TwoAndFourDigitYears(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	short, ok := FlexibleDate("2/1/25", now)
	require.True(t, ok)
	long, ok := FlexibleDate("02/01/2025", now)
	require.True(t, ok)
	assert.Equal(t, MonthKey(short), MonthKey(long))
	assert.Equal(t, "2/25", MonthKey(short))

	old, ok := FlexibleDate("3/1/99", now)
	require.True(t, ok)
	assert.Equal(t, 1999, old.Year())
}

func TestFlexibleDate_FallbackIsVisible(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	got, ok := FlexibleDate("not a date", now)
	assert.False(t, ok)
	assert.Equal(t, now, got)

	got, ok = FlexibleDate("", now)
	assert.False(t, ok)
	assert.Equal(t, now, got)

	// Out-of-range calendar values degrade too.
	_, ok = FlexibleDate("13/40/25", now)
	assert.False(t, ok)
}

func TestFlexibleDate_ISO(t *testing.T) {
	now := time.Now()
	got, ok := FlexibleDate("2025-02-01", now)
	require.True(t, ok)
	assert.Equal(t, "2/25", MonthKey(got))
}

func TestMonthKeyParts(t *testing.T) {
	year, month, ok := MonthKeyParts("2/25")
	require.True(t, ok)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 2, month)

	year, month, ok = MonthKeyParts("12/99")
	require.True(t, ok)
	assert.Equal(t, 1999, year)
	assert.Equal(t, 12, month)

	_, _, ok = MonthKeyParts("13/25")
	assert.False(t, ok)
	_, _, ok = MonthKeyParts("Vendor")
	assert.False(t, ok)
}

func TestIsDateHeader(t *testing.T) {
	assert.True(t, IsDateHeader("1/31/25"))
	assert.True(t, IsDateHeader("12/31/2024"))
	assert.False(t, IsDateHeader("Cost"))
	assert.False(t, IsDateHeader("# of life (months)"))
}

func TestSortMonthKeys(t *testing.T) {
	keys := []string{"1/25", "11/24", "2/25", "12/24"}
	SortMonthKeys(keys)
	assert.Equal(t, []string{"11/24", "12/24", "1/25", "2/25"}, keys)
}

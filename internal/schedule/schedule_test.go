package schedule

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetline-dev/assetline/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func TestStraightLine_EvenSplit(t *testing.T) {
	entries := StraightLine(dec("3600.00"), date(2024, 1, 15), 36)
	require.Len(t, entries, 36)
	assert.True(t, entries["1/24"].Equal(dec("100.00")))
	assert.True(t, entries["12/26"].Equal(dec("100.00")))
}

func TestStraightLine_SumsExactlyToPrincipal(t *testing.T) {
	// 1000 / 3 rounds to 333.33; the final month absorbs the remainder.
	entries := StraightLine(dec("1000.00"), date(2025, 1, 1), 3)
	require.Len(t, entries, 3)
	assert.True(t, entries["1/25"].Equal(dec("333.33")))
	assert.True(t, entries["2/25"].Equal(dec("333.33")))
	assert.True(t, entries["3/25"].Equal(dec("333.34")))

	total := decimal.Zero
	for _, v := range entries {
		total = total.Add(v)
	}
	assert.True(t, total.Equal(dec("1000.00")))
}

func TestStraightLine_YearRollover(t *testing.T) {
	entries := StraightLine(dec("300.00"), date(2024, 11, 30), 3)
	require.Len(t, entries, 3)
	assert.Contains(t, entries, "11/24")
	assert.Contains(t, entries, "12/24")
	assert.Contains(t, entries, "1/25")
}

func TestStraightLine_Idempotent(t *testing.T) {
	a := StraightLine(dec("4500.00"), date(2025, 3, 1), 18)
	b := StraightLine(dec("4500.00"), date(2025, 3, 1), 18)
	assert.Equal(t, a, b)
}

func TestStraightLine_ZeroTerm(t *testing.T) {
	assert.Empty(t, StraightLine(dec("100.00"), date(2025, 1, 1), 0))
}

func TestMonthsElapsed(t *testing.T) {
	assert.Equal(t, 12, MonthsElapsed(date(2024, 1, 15), date(2025, 1, 2)))
	assert.Equal(t, 0, MonthsElapsed(date(2025, 1, 15), date(2025, 1, 31)))
	assert.Equal(t, 0, MonthsElapsed(date(2026, 1, 1), date(2025, 1, 1)))
}

func TestAccumulatedToDate_Scenario(t *testing.T) {
	// cost=3600, life=36 -> monthlyDep=100; after 12 months accum=1200, nbv=2400.
	monthly := MonthlyAmount(dec("3600.00"), 36)
	assert.True(t, monthly.Equal(dec("100.00")))

	accum, nbv := AccumulatedToDate(dec("3600.00"), monthly, date(2024, 1, 1), date(2025, 1, 1))
	assert.True(t, accum.Equal(dec("1200.00")))
	assert.True(t, nbv.Equal(dec("2400.00")))
}

func TestAccumulatedToDate_CapsAtCost(t *testing.T) {
	accum, nbv := AccumulatedToDate(dec("1200.00"), dec("100.00"), date(2020, 1, 1), date(2025, 1, 1))
	assert.True(t, accum.Equal(dec("1200.00")))
	assert.True(t, nbv.IsZero())
}

func TestRegenerateAsset(t *testing.T) {
	a := &model.Asset{
		Cost:        dec("3600.00"),
		LifeMonths:  36,
		DateInPlace: date(2024, 1, 15),
	}
	RegenerateAsset(a, date(2025, 1, 2))

	assert.True(t, a.MonthlyDep.Equal(dec("100.00")))
	assert.True(t, a.AccumDep.Equal(dec("1200.00")))
	assert.True(t, a.NBV.Equal(dec("2400.00")))
	assert.Len(t, a.DepSchedule, 36)

	// Sum never exceeds cost.
	total := decimal.Zero
	for _, v := range a.DepSchedule {
		total = total.Add(v)
	}
	assert.True(t, total.LessThanOrEqual(a.Cost))
}

func TestGeneratePrepaid(t *testing.T) {
	p := &model.Prepaid{
		InitialAmount: dec("12000.00"),
		StartDate:     date(2025, 1, 1),
		TermMonths:    12,
	}
	GeneratePrepaid(p)

	assert.True(t, p.MonthlyAmortization.Equal(dec("1000.00")))
	require.Len(t, p.Schedule, 12)
	assert.True(t, p.Schedule["1/25"].Amortization.Equal(dec("1000.00")))
	assert.True(t, p.Schedule["1/25"].RemainingBalance.Equal(dec("11000.00")))
	// Remaining balance after the last scheduled month is zero.
	assert.True(t, p.Schedule["12/25"].RemainingBalance.IsZero())
	assert.Equal(t, date(2025, 12, 1), p.EndDate)
}

func TestRecalcPrepaid_EditedActualMonth(t *testing.T) {
	// Four posted months at 1000/mo; month 3's actual is overridden to
	// 1500, so the balance month 4 starts from drops to 8500.
	p := &model.Prepaid{
		InitialAmount: dec("12000.00"),
		TermMonths:    12,
		Schedule: map[string]model.AmortEntry{
			"1/25": {Amortization: dec("1000.00"), IsActual: true},
			"2/25": {Amortization: dec("1000.00"), IsActual: true},
			"3/25": {Amortization: dec("1500.00"), IsActual: true},
			"4/25": {Amortization: dec("1000.00"), IsActual: true},
		},
	}
	RecalcPrepaid(p)

	assert.True(t, p.Schedule["3/25"].RemainingBalance.Equal(dec("8500.00")),
		"balance entering month 4 should be 12000 - (1000+1000+1500)")
	assert.True(t, p.Schedule["4/25"].RemainingBalance.Equal(dec("7500.00")))
	assert.True(t, p.CurrentBalance.Equal(dec("7500.00")))
	// (12000 - 7500) / 4 actual months.
	assert.True(t, p.MonthlyAmortization.Equal(dec("1125.00")))
}

func TestRecalcPrepaid_FloorsAtZero(t *testing.T) {
	p := &model.Prepaid{
		InitialAmount: dec("1000.00"),
		Schedule: map[string]model.AmortEntry{
			"1/25": {Amortization: dec("800.00"), IsActual: true},
			"2/25": {Amortization: dec("800.00"), IsActual: true},
		},
	}
	RecalcPrepaid(p)

	assert.True(t, p.Schedule["2/25"].RemainingBalance.IsZero())
	assert.True(t, p.CurrentBalance.IsZero())
	assert.True(t, p.IsFullyAmortized())
}

func TestRecalcPrepaid_NoActuals_LeavesMonthlyUnchanged(t *testing.T) {
	p := &model.Prepaid{
		InitialAmount:       dec("1200.00"),
		MonthlyAmortization: dec("100.00"),
		Schedule: map[string]model.AmortEntry{
			"1/25": {Amortization: dec("100.00")},
		},
	}
	RecalcPrepaid(p)
	assert.True(t, p.MonthlyAmortization.Equal(dec("100.00")))
	assert.True(t, p.CurrentBalance.Equal(dec("1100.00")))
}

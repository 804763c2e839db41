// Package schedule derives monthly depreciation and amortization
// schedules. All generation is straight-line; per-month amounts round to
// 2 decimal places with the rounding remainder folded into the final
// month so a schedule always sums exactly to its principal.
package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/model"
	"github.com/assetline-dev/assetline/internal/parse"
)

// MonthlyAmount returns principal / termMonths rounded to 2 decimal
// places, zero when termMonths is not positive.
func MonthlyAmount(principal decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	return principal.Div(decimal.NewFromInt(int64(termMonths))).Round(2)
}

// StraightLine emits termMonths consecutive monthly entries of
// principal/termMonths, the first in startDate's month and each later
// entry exactly one calendar month on. The final month absorbs the
// rounding remainder.
func StraightLine(principal decimal.Decimal, startDate time.Time, termMonths int) map[string]decimal.Decimal {
	entries := make(map[string]decimal.Decimal, termMonths)
	if termMonths <= 0 {
		return entries
	}

	monthly := MonthlyAmount(principal, termMonths)
	cursor := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	recognized := decimal.Zero

	for i := 0; i < termMonths; i++ {
		amount := monthly
		if i == termMonths-1 {
			amount = principal.Sub(recognized)
		}
		entries[parse.MonthKey(cursor)] = amount
		recognized = recognized.Add(amount)
		cursor = cursor.AddDate(0, 1, 0)
	}
	return entries
}

// MonthsElapsed counts whole calendar months from start to now, never
// negative. A start in the current month counts as zero.
func MonthsElapsed(start, now time.Time) int {
	elapsed := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month())
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// AccumulatedToDate computes accumulated depreciation and net book value
// as of now. Accumulated depreciation is capped at cost.
func AccumulatedToDate(cost, monthlyDep decimal.Decimal, start, now time.Time) (accumDep, nbv decimal.Decimal) {
	accumDep = monthlyDep.Mul(decimal.NewFromInt(int64(MonthsElapsed(start, now))))
	if accumDep.GreaterThan(cost) {
		accumDep = cost
	}
	return accumDep, cost.Sub(accumDep)
}

// RegenerateAsset recomputes an asset's derived fields from cost, life,
// and date in place: monthly depreciation, the full straight-line
// schedule, accumulated depreciation to now, and net book value. Called
// after any edit to LifeMonths or DateInPlace.
func RegenerateAsset(a *model.Asset, now time.Time) {
	a.MonthlyDep = MonthlyAmount(a.Cost, a.LifeMonths)
	a.DepSchedule = StraightLine(a.Cost, a.DateInPlace, a.LifeMonths)
	a.AccumDep, a.NBV = AccumulatedToDate(a.Cost, a.MonthlyDep, a.DateInPlace, now)
}

// GeneratePrepaid builds a full-term amortization schedule for a prepaid
// with no imported per-month data. Entries are not marked actual; the
// remaining balance after the last month is exactly zero.
func GeneratePrepaid(p *model.Prepaid) {
	p.MonthlyAmortization = MonthlyAmount(p.InitialAmount, p.TermMonths)
	p.Schedule = make(map[string]model.AmortEntry, p.TermMonths)

	amounts := StraightLine(p.InitialAmount, p.StartDate, p.TermMonths)
	remainingByKey := walkRemaining(p.InitialAmount, amounts)
	for key, amount := range amounts {
		p.Schedule[key] = model.AmortEntry{
			Amortization:     amount,
			RemainingBalance: remainingByKey[key],
		}
	}
	p.CurrentBalance = p.InitialAmount
	if len(amounts) > 0 {
		p.CurrentBalance = decimal.Zero
	}
	p.EndDate = p.StartDate.AddDate(0, p.TermMonths-1, 0)
}

// RecalcPrepaid walks a prepaid's schedule in chronological order,
// recomputing every remaining balance from the initial amount with a
// floor of zero. CurrentBalance becomes the last entry's remaining
// balance, and MonthlyAmortization is re-derived over the actual entries
// when any exist.
func RecalcPrepaid(p *model.Prepaid) {
	keys := make([]string, 0, len(p.Schedule))
	for key := range p.Schedule {
		keys = append(keys, key)
	}
	if len(keys) == 0 {
		return
	}
	parse.SortMonthKeys(keys)

	remaining := p.InitialAmount
	actuals := 0
	for _, key := range keys {
		entry := p.Schedule[key]
		remaining = remaining.Sub(entry.Amortization)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		entry.RemainingBalance = remaining
		p.Schedule[key] = entry
		if entry.IsActual {
			actuals++
		}
	}

	p.CurrentBalance = p.Schedule[keys[len(keys)-1]].RemainingBalance
	if actuals > 0 {
		p.MonthlyAmortization = p.InitialAmount.
			Sub(p.CurrentBalance).
			Div(decimal.NewFromInt(int64(actuals))).
			Round(2)
	}
}

func walkRemaining(initial decimal.Decimal, amounts map[string]decimal.Decimal) map[string]decimal.Decimal {
	keys := make([]string, 0, len(amounts))
	for key := range amounts {
		keys = append(keys, key)
	}
	parse.SortMonthKeys(keys)

	out := make(map[string]decimal.Decimal, len(amounts))
	remaining := initial
	for _, key := range keys {
		remaining = remaining.Sub(amounts[key])
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
		out[key] = remaining
	}
	return out
}

// Package reconcile sums record schedules per period, compares them to
// general-ledger balances, and generates balanced journal entries for a
// close month. All aggregation is commutative summing; record order
// never matters.
package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/assetline-dev/assetline/internal/accounts"
	"github.com/assetline-dev/assetline/internal/model"
)

// MonthlyTotal sums each active record's schedule value at monthKey.
func MonthlyTotal(records []model.Record, monthKey string) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if !r.Active() {
			continue
		}
		total = total.Add(r.ScheduleFor(monthKey))
	}
	return total
}

// GrandTotal sums monthly totals across all given month keys.
func GrandTotal(records []model.Record, monthKeys []string) decimal.Decimal {
	total := decimal.Zero
	for _, key := range monthKeys {
		total = total.Add(MonthlyTotal(records, key))
	}
	return total
}

// Variance is the GL balance minus the internally computed total.
func Variance(glBalance, monthlyTotal decimal.Decimal) decimal.Decimal {
	return glBalance.Sub(monthlyTotal)
}

// ReportRow is one month of a reconciliation report.
type ReportRow struct {
	MonthKey  string
	Total     decimal.Decimal
	GLBalance decimal.Decimal
	Variance  decimal.Decimal
}

// Report reconciles records against GL balances for the given months.
// The aggregate variance is the simple sum of per-month variances.
func Report(records []model.Record, glBalances map[string]decimal.Decimal, monthKeys []string) (rows []ReportRow, aggregateVariance decimal.Decimal) {
	for _, key := range monthKeys {
		total := MonthlyTotal(records, key)
		gl := glBalances[key]
		v := Variance(gl, total)
		rows = append(rows, ReportRow{
			MonthKey:  key,
			Total:     total,
			GLBalance: gl,
			Variance:  v,
		})
		aggregateVariance = aggregateVariance.Add(v)
	}
	return rows, aggregateVariance
}

// AssetJournalEntries emits one balanced debit/credit pair per
// department with non-zero depreciation in the month. The credit account
// depends on the asset type, so departments are split per type. Lines
// come out in deterministic department order.
func AssetJournalEntries(assets []*model.Asset, monthKey string, codes accounts.Codes) []model.JournalLine {
	type group struct {
		department string
		assetType  model.AssetType
	}
	totals := make(map[group]decimal.Decimal)
	for _, a := range assets {
		amount := a.ScheduleFor(monthKey)
		if amount.IsZero() {
			continue
		}
		g := group{department: a.Department, assetType: a.AssetType}
		totals[g] = totals[g].Add(amount)
	}

	groups := make([]group, 0, len(totals))
	for g := range totals {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].department != groups[j].department {
			return groups[i].department < groups[j].department
		}
		return groups[i].assetType < groups[j].assetType
	})

	var lines []model.JournalLine
	for _, g := range groups {
		amount := totals[g]
		memo := "Monthly depreciation " + monthKey
		lines = append(lines,
			model.JournalLine{
				Account:    codes.DepreciationExpense,
				Debit:      amount,
				Memo:       memo,
				Department: g.department,
			},
			model.JournalLine{
				Account:    codes.AccumDepFor(g.assetType),
				Credit:     amount,
				Memo:       memo,
				Department: g.department,
			},
		)
	}
	return lines
}

// AccrualJournalEntries treats all active accruals as a single pool and
// emits one debit to the accrual expense account offset by one credit to
// the accrued-liability account. A zero pool emits nothing.
func AccrualJournalEntries(accruals []*model.Accrual, monthKey string, codes accounts.Codes) []model.JournalLine {
	total := decimal.Zero
	for _, a := range accruals {
		if !a.Active() {
			continue
		}
		total = total.Add(a.ScheduleFor(monthKey))
	}
	if total.IsZero() {
		return nil
	}

	memo := "Monthly accrual " + monthKey
	return []model.JournalLine{
		{Account: codes.AccrualExpense, Debit: total, Memo: memo},
		{Account: codes.AccruedLiability, Credit: total, Memo: memo},
	}
}

// PrepaidJournalEntries pools active prepaid amortization for the month
// into one debit to the amortization expense account offset by a credit
// to the prepaid asset account.
func PrepaidJournalEntries(prepaids []*model.Prepaid, monthKey string, codes accounts.Codes) []model.JournalLine {
	total := decimal.Zero
	for _, p := range prepaids {
		if !p.Active() {
			continue
		}
		total = total.Add(p.ScheduleFor(monthKey))
	}
	if total.IsZero() {
		return nil
	}

	memo := "Prepaid amortization " + monthKey
	return []model.JournalLine{
		{Account: codes.PrepaidExpense, Debit: total, Memo: memo},
		{Account: codes.PrepaidAsset, Credit: total, Memo: memo},
	}
}
